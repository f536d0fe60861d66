package report

import (
	"fmt"
	"time"

	"github.com/ashobox/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// monthLabels is the fixed bucket order for monthly revenue. Every result
// contains exactly these twelve buckets regardless of input.
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// createdAtLayouts are the timestamp formats the remote data service is
// known to emit.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// MonthBucket is one calendar-month revenue bucket.
type MonthBucket struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyRevenue sums order totals into twelve calendar-month buckets in
// Jan..Dec order. The year component is ignored, so orders from different
// years in the same calendar month are merged. An order with an unparsable
// createdAt fails the whole aggregation; records are never silently skipped
// or coerced into a bucket.
func MonthlyRevenue(orders []Order) ([]MonthBucket, error) {
	totals := [12]decimal.Decimal{}
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, order := range orders {
		createdAt, err := ParseCreatedAt(order.CreatedAt)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_TIMESTAMP",
				fmt.Sprintf("order %d has unparsable createdAt %q", order.ID, order.CreatedAt))
		}
		month := int(createdAt.Month()) - 1
		totals[month] = totals[month].Add(order.TotalAmount)
	}

	buckets := make([]MonthBucket, len(monthLabels))
	for i, label := range monthLabels {
		buckets[i] = MonthBucket{Label: label, Total: totals[i]}
	}
	return buckets, nil
}

// ParseCreatedAt parses a createdAt string in any of the formats the remote
// data service emits.
func ParseCreatedAt(value string) (time.Time, error) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", value)
}
