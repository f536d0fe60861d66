package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ashobox/backoffice/internal/domain/shared"
)

// ProductStatus is a moderation state. The marketplace transmits pending
// products as "Active", so that literal is kept on the wire and normalized
// through Normalize before any comparison.
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "Active"
	ProductStatusApproved ProductStatus = "Approved"
	ProductStatusRejected ProductStatus = "Rejected"
)

// Normalize maps wire spellings onto the three moderation states.
// Unrecognized values are treated as pending rather than rejected, the
// marketplace has introduced new listing states before.
func (s ProductStatus) Normalize() ProductStatus {
	switch ProductStatus(strings.TrimSpace(string(s))) {
	case ProductStatusApproved:
		return ProductStatusApproved
	case ProductStatusRejected:
		return ProductStatusRejected
	default:
		return ProductStatusPending
	}
}

// Label is the human reading of the state, used in activity summaries.
func (s ProductStatus) Label() string {
	switch s.Normalize() {
	case ProductStatusApproved:
		return "approved"
	case ProductStatusRejected:
		return "rejected"
	default:
		return "pending review"
	}
}

// IsValid reports whether the value names one of the three states exactly.
// Wire payloads go through Normalize instead; IsValid guards operator input.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusPending, ProductStatusApproved, ProductStatusRejected:
		return true
	}
	return false
}

// Product is the back-office working copy of a marketplace listing. The
// marketplace remains the system of record; this copy exists so the
// operator sees the effect of a moderation action immediately, before the
// next full refresh.
type Product struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	VendorID           int64           `json:"vendorId"`
	VendorBusinessName string          `json:"vendorBusinessName"`
	CategoryName       string          `json:"categoryName"`
	Status             ProductStatus   `json:"status"`
	Tags               []string        `json:"tags"`
	Thumbnails         []string        `json:"thumbnails"`
	Stock              int64           `json:"stock"`
	Material           string          `json:"material"`
	Views              int64           `json:"views"`
	CreatedAt          string          `json:"createdAt"`
}

// Approve moves the product to Approved. Approving an approved product is
// a no-op; every other state may be approved, including Rejected, because
// moderation decisions are reversible.
func (p *Product) Approve() bool {
	return p.transition(ProductStatusApproved)
}

// Reject moves the product to Rejected. Rejecting a rejected product is a
// no-op. Approved products may be rejected; a decision is never final.
func (p *Product) Reject() bool {
	return p.transition(ProductStatusRejected)
}

// ReturnToPending puts a decided product back in the review queue.
func (p *Product) ReturnToPending() bool {
	return p.transition(ProductStatusPending)
}

// ApplyStatus transitions to an operator-supplied target state. The target
// must name one of the three states exactly. The returned bool is false
// when the product was already in the target state, in which case nothing
// changed and no remote call is warranted.
func (p *Product) ApplyStatus(target ProductStatus) (bool, error) {
	if !target.IsValid() {
		return false, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown product status %q", target))
	}
	return p.transition(target), nil
}

func (p *Product) transition(target ProductStatus) bool {
	if p.Status.Normalize() == target.Normalize() {
		return false
	}
	p.Status = target
	return true
}

// ReplaceTags swaps the whole tag set. Tags carry no per-state rules;
// rejected and pending products are tagged the same way approved ones are.
// The incoming slice is copied so later caller mutations cannot leak in,
// and a nil slice clears the set.
func (p *Product) ReplaceTags(tags []string) {
	replaced := make([]string, len(tags))
	copy(replaced, tags)
	p.Tags = replaced
}

// IsPending reports whether the product still awaits a moderation decision.
func (p *Product) IsPending() bool {
	return p.Status.Normalize() == ProductStatusPending
}

// ProductSource fetches the full listing set from the marketplace.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// ModerationGateway pushes moderation decisions back to the marketplace.
// Implementations return the remote failure unchanged; callers decide what
// the failure means for their local copy.
type ModerationGateway interface {
	UpdateProductStatus(ctx context.Context, productID int64, status ProductStatus, reason string) error
	UpdateProductTags(ctx context.Context, productID int64, tags []string) error
}
