package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statVendor(id int64, orders int64, revenue, earnings float64) VendorStat {
	return VendorStat{
		ID:            id,
		BusinessName:  "Vendor",
		Status:        VendorStatusApproved,
		TotalOrders:   orders,
		TotalRevenue:  decimal.NewFromFloat(revenue),
		TotalEarnings: decimal.NewFromFloat(earnings),
		CreatedAt:     "2025-01-01T00:00:00Z",
	}
}

func TestLedgerDistribution(t *testing.T) {
	t.Run("annotates each category with its share", func(t *testing.T) {
		slices := LedgerDistribution([]LedgerEntry{
			entry(1, EntryTypeVendor, 750),
			entry(2, EntryTypeLogistics, 250),
		})
		require.Len(t, slices, 2)
		assert.True(t, slices[0].PercentOfTotal.Equal(decimal.NewFromInt(75)))
		assert.True(t, slices[1].PercentOfTotal.Equal(decimal.NewFromInt(25)))
	})

	t.Run("zero grand total yields zero percentages", func(t *testing.T) {
		slices := LedgerDistribution([]LedgerEntry{
			entry(1, EntryTypeVendor, 0),
			entry(2, EntryTypeAshobox, 0),
		})
		require.Len(t, slices, 2)
		for _, slice := range slices {
			assert.True(t, slice.PercentOfTotal.IsZero())
		}
	})

	t.Run("folds unknown entry types into OTHER", func(t *testing.T) {
		slices := LedgerDistribution([]LedgerEntry{
			entry(1, EntryType("PROMO"), 40),
			entry(2, EntryType("REFUND"), 60),
		})
		require.Len(t, slices, 1)
		assert.Equal(t, EntryTypeOther, slices[0].Category)
		assert.True(t, slices[0].TotalAmount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 2, slices[0].Count)
	})

	t.Run("does not mutate the input entry types", func(t *testing.T) {
		entries := []LedgerEntry{entry(1, EntryType("PROMO"), 40)}
		LedgerDistribution(entries)
		assert.Equal(t, EntryType("PROMO"), entries[0].EntryType)
	})
}

func TestTopVendorRanking(t *testing.T) {
	t.Run("ranked holds five, cards hold three", func(t *testing.T) {
		var vendors []VendorStat
		for i := int64(1); i <= 8; i++ {
			vendors = append(vendors, statVendor(i, i, float64(i*100), float64(i*10)))
		}
		ranking := TopVendorRanking(vendors)
		require.Len(t, ranking.Ranked, 5)
		require.Len(t, ranking.Cards, 3)
		assert.Equal(t, int64(8), ranking.Ranked[0].ID)
		assert.Equal(t, int64(4), ranking.Ranked[4].ID)
		assert.Equal(t, int64(6), ranking.Cards[2].ID)
	})

	t.Run("summary covers exactly the card subset", func(t *testing.T) {
		ranking := TopVendorRanking([]VendorStat{
			statVendor(1, 10, 1000, 500),
			statVendor(2, 20, 2000, 400),
			statVendor(3, 30, 3000, 300),
			statVendor(4, 40, 4000, 200),
			statVendor(5, 50, 5000, 100),
		})
		require.Len(t, ranking.Cards, 3)
		assert.Equal(t, int64(60), ranking.Summary.SumOrders)
		assert.True(t, ranking.Summary.SumRevenue.Equal(decimal.NewFromInt(6000)))
		assert.True(t, ranking.Summary.SumEarnings.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("fewer vendors than the cutoffs", func(t *testing.T) {
		ranking := TopVendorRanking([]VendorStat{statVendor(1, 5, 500, 50)})
		assert.Len(t, ranking.Ranked, 1)
		assert.Len(t, ranking.Cards, 1)
		assert.Equal(t, int64(5), ranking.Summary.SumOrders)
	})

	t.Run("empty vendor set yields empty views and zero summary", func(t *testing.T) {
		ranking := TopVendorRanking(nil)
		assert.Empty(t, ranking.Ranked)
		assert.Empty(t, ranking.Cards)
		assert.True(t, ranking.Summary.SumRevenue.IsZero())
	})
}

func TestAssemble(t *testing.T) {
	t.Run("builds all three views from one snapshot", func(t *testing.T) {
		overview, err := Assemble(Snapshot{
			Orders:  []Order{order(1, 900, "2025-07-01T00:00:00Z")},
			Ledger:  []LedgerEntry{entry(1, EntryTypeVendor, 700), entry(2, EntryTypeAshobox, 200)},
			Vendors: []VendorStat{statVendor(1, 1, 900, 700)},
		})
		require.NoError(t, err)
		require.Len(t, overview.MonthlyRevenue, 12)
		assert.True(t, overview.MonthlyRevenue[6].Total.Equal(decimal.NewFromInt(900)))
		assert.Len(t, overview.LedgerDistribution, 2)
		assert.Len(t, overview.TopVendors.Ranked, 1)
	})

	t.Run("propagates a bucketing failure", func(t *testing.T) {
		_, err := Assemble(Snapshot{Orders: []Order{order(1, 1, "bogus")}})
		require.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("maps canonical categories to fee cards", func(t *testing.T) {
		summary := Summarize(Snapshot{
			Orders: []Order{order(1, 1000, "2025-01-01"), order(2, 500, "2025-02-01")},
			Ledger: []LedgerEntry{
				entry(1, EntryTypeVendor, 800),
				entry(2, EntryTypeAshobox, 120),
				entry(3, EntryTypeLogistics, 80),
				entry(4, EntryType("PROMO"), 999),
			},
			Vendors: []VendorStat{
				statVendor(1, 1, 1000, 800),
				{ID: 2, BusinessName: "Pending Co", Status: VendorStatusPending},
			},
		})
		assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(1500)))
		assert.True(t, summary.VendorEarnings.Equal(decimal.NewFromInt(800)))
		assert.True(t, summary.AshoboxFees.Equal(decimal.NewFromInt(120)))
		assert.True(t, summary.LogisticsFees.Equal(decimal.NewFromInt(80)))
		assert.Equal(t, int64(2), summary.TotalOrders)
		assert.Equal(t, int64(1), summary.ActiveVendors)
	})

	t.Run("empty snapshot yields all zeros", func(t *testing.T) {
		summary := Summarize(Snapshot{})
		assert.True(t, summary.TotalRevenue.IsZero())
		assert.Zero(t, summary.TotalOrders)
		assert.Zero(t, summary.ActiveVendors)
	})
}
