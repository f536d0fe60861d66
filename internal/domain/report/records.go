package report

import (
	"context"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry as one of the three revenue shares
// of an order. The set on the wire is closed; anything else is folded into
// EntryTypeOther rather than dropped.
type EntryType string

const (
	EntryTypeVendor    EntryType = "VENDOR"
	EntryTypeLogistics EntryType = "LOGISTICS"
	EntryTypeAshobox   EntryType = "ASHOBOX"
	EntryTypeOther     EntryType = "OTHER"
)

// Canonical returns the entry type itself when it is one of the known
// shares, and EntryTypeOther for any unrecognized value.
func (t EntryType) Canonical() EntryType {
	switch t {
	case EntryTypeVendor, EntryTypeLogistics, EntryTypeAshobox:
		return t
	default:
		return EntryTypeOther
	}
}

// VendorStatus is the approval status of a vendor account.
type VendorStatus string

const (
	VendorStatusApproved VendorStatus = "APPROVED"
	VendorStatusPending  VendorStatus = "PENDING"
	VendorStatusRejected VendorStatus = "REJECTED"
)

// Order is a marketplace order as supplied by the remote data service.
// CreatedAt is kept as the raw string the collaborator sent; it is parsed
// only where a time component is actually needed.
type Order struct {
	ID          int64           `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   string          `json:"createdAt"`
	Status      string          `json:"status"`
}

// LedgerEntry is a single attributed financial line item tied to an order.
type LedgerEntry struct {
	ID               int64           `json:"id"`
	OrderID          int64           `json:"orderId"`
	VendorID         *int64          `json:"vendorId"`
	VendorName       string          `json:"vendorName,omitempty"`
	EntryType        EntryType       `json:"entryType"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	CreatedAt        string          `json:"createdAt"`
	PaymentReference string          `json:"paymentReference"`
}

// VendorStat is the per-vendor performance record used for ranking.
type VendorStat struct {
	ID            int64           `json:"id"`
	BusinessName  string          `json:"businessName"`
	Status        VendorStatus    `json:"status"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	CreatedAt     string          `json:"createdAt"`
}

// Snapshot is an immutable point-in-time view of the transactional records
// all report views are derived from. A new snapshot replaces the previous
// one wholesale; nothing here is ever mutated in place.
type Snapshot struct {
	Orders  []Order
	Ledger  []LedgerEntry
	Vendors []VendorStat
}

// SnapshotSource supplies report snapshots from the remote data service.
type SnapshotSource interface {
	FetchOrders(ctx context.Context) ([]Order, error)
	FetchLedgerEntries(ctx context.Context) ([]LedgerEntry, error)
	FetchVendorStats(ctx context.Context) ([]VendorStat, error)
}
