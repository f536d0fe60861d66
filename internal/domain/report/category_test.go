package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id int64, entryType EntryType, amount float64) LedgerEntry {
	return LedgerEntry{
		ID:        id,
		OrderID:   id * 10,
		EntryType: entryType,
		Amount:    decimal.NewFromFloat(amount),
		Currency:  "NGN",
		CreatedAt: "2025-02-01T00:00:00Z",
	}
}

func TestAggregateByType(t *testing.T) {
	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, AggregateByType(nil))
	})

	t.Run("one entry per observed category in first-seen order", func(t *testing.T) {
		totals := AggregateByType([]LedgerEntry{
			entry(1, EntryTypeLogistics, 50),
			entry(2, EntryTypeVendor, 800),
			entry(3, EntryTypeLogistics, 70),
			entry(4, EntryTypeAshobox, 30),
			entry(5, EntryTypeVendor, 200),
		})
		require.Len(t, totals, 3)

		assert.Equal(t, EntryTypeLogistics, totals[0].Category)
		assert.True(t, totals[0].TotalAmount.Equal(decimal.NewFromInt(120)))
		assert.Equal(t, 2, totals[0].Count)

		assert.Equal(t, EntryTypeVendor, totals[1].Category)
		assert.True(t, totals[1].TotalAmount.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, 2, totals[1].Count)

		assert.Equal(t, EntryTypeAshobox, totals[2].Category)
		assert.True(t, totals[2].TotalAmount.Equal(decimal.NewFromInt(30)))
		assert.Equal(t, 1, totals[2].Count)
	})

	t.Run("no zero-filling of absent categories", func(t *testing.T) {
		totals := AggregateByType([]LedgerEntry{entry(1, EntryTypeVendor, 10)})
		require.Len(t, totals, 1)
		assert.Equal(t, EntryTypeVendor, totals[0].Category)
	})

	t.Run("unknown entry types are kept, never dropped", func(t *testing.T) {
		totals := AggregateByType([]LedgerEntry{
			entry(1, EntryTypeVendor, 10),
			entry(2, EntryType("PROMO"), 5),
		})
		require.Len(t, totals, 2)
		assert.Equal(t, EntryType("PROMO"), totals[1].Category)
	})
}

func TestEntryTypeCanonical(t *testing.T) {
	assert.Equal(t, EntryTypeVendor, EntryTypeVendor.Canonical())
	assert.Equal(t, EntryTypeLogistics, EntryTypeLogistics.Canonical())
	assert.Equal(t, EntryTypeAshobox, EntryTypeAshobox.Canonical())
	assert.Equal(t, EntryTypeOther, EntryType("PROMO").Canonical())
	assert.Equal(t, EntryTypeOther, EntryType("").Canonical())
}
