package finance

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Payout is one vendor disbursement as recorded by the marketplace. The
// reference is the caller-supplied idempotency key; the marketplace stores
// it verbatim and performs no de-duplication.
type Payout struct {
	ID                 int64           `json:"id"`
	VendorID           int64           `json:"vendorId"`
	VendorBusinessName string          `json:"vendorBusinessName"`
	Amount             decimal.Decimal `json:"amount"`
	Reference          string          `json:"reference"`
	Status             string          `json:"status"`
	ReceiptURL         string          `json:"receiptUrl"`
	Notes              string          `json:"notes"`
	CreatedAt          string          `json:"createdAt"`
}

// PayoutRequest carries the fields of a new payout record.
type PayoutRequest struct {
	VendorID   int64           `json:"vendorId"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference"`
	ReceiptURL string          `json:"receiptUrl"`
	Notes      string          `json:"notes"`
}

// PayoutSource fetches the recorded payout history.
type PayoutSource interface {
	FetchPayouts(ctx context.Context) ([]Payout, error)
}

// PayoutGateway records a payout with the marketplace. The write is not
// retried and not de-duplicated; the reference is the only idempotency
// handle and it belongs to the caller.
type PayoutGateway interface {
	RecordPayout(ctx context.Context, req PayoutRequest) (string, error)
}

// NewPayoutReference generates a default payout reference. It is a
// convenience for operators who do not supply their own, not a uniqueness
// guarantee: two calls within the same millisecond can collide on the
// random suffix.
func NewPayoutReference() string {
	return fmt.Sprintf("PAY-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}
