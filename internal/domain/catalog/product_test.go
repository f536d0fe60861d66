package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingProduct() *Product {
	return &Product{
		ID:                 42,
		Name:               "Aso Oke Wrap",
		Price:              decimal.NewFromInt(15000),
		VendorID:           7,
		VendorBusinessName: "Ade Textiles",
		Status:             ProductStatusPending,
		Tags:               []string{"fabric"},
		CreatedAt:          "2025-04-01T00:00:00Z",
	}
}

func TestProductStatusNormalize(t *testing.T) {
	assert.Equal(t, ProductStatusPending, ProductStatus("Active").Normalize())
	assert.Equal(t, ProductStatusApproved, ProductStatus("Approved").Normalize())
	assert.Equal(t, ProductStatusRejected, ProductStatus("Rejected").Normalize())
	assert.Equal(t, ProductStatusPending, ProductStatus("Draft").Normalize())
	assert.Equal(t, ProductStatusPending, ProductStatus("").Normalize())
	assert.Equal(t, ProductStatusApproved, ProductStatus(" Approved ").Normalize())
}

func TestProductTransitions(t *testing.T) {
	t.Run("every ordered pair of distinct states is legal", func(t *testing.T) {
		states := []ProductStatus{ProductStatusPending, ProductStatusApproved, ProductStatusRejected}
		for _, from := range states {
			for _, to := range states {
				if from == to {
					continue
				}
				p := pendingProduct()
				p.Status = from
				changed, err := p.ApplyStatus(to)
				require.NoError(t, err, "%s -> %s", from, to)
				assert.True(t, changed, "%s -> %s", from, to)
				assert.Equal(t, to, p.Status)
			}
		}
	})

	t.Run("self-transition is an idempotent no-op", func(t *testing.T) {
		p := pendingProduct()
		p.Status = ProductStatusApproved
		changed, err := p.ApplyStatus(ProductStatusApproved)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, ProductStatusApproved, p.Status)
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		p := pendingProduct()
		_, err := p.ApplyStatus(ProductStatus("Archived"))
		require.Error(t, err)
		assert.Equal(t, ProductStatusPending, p.Status)
	})

	t.Run("decisions are reversible end to end", func(t *testing.T) {
		p := pendingProduct()
		assert.True(t, p.Approve())
		assert.True(t, p.Reject())
		assert.True(t, p.ReturnToPending())
		assert.True(t, p.IsPending())
		assert.True(t, p.Approve())
		assert.Equal(t, ProductStatusApproved, p.Status)
	})

	t.Run("approve on an approved product does not change state", func(t *testing.T) {
		p := pendingProduct()
		p.Status = ProductStatusApproved
		assert.False(t, p.Approve())
	})
}

func TestReplaceTags(t *testing.T) {
	t.Run("replaces wholesale, never merges", func(t *testing.T) {
		p := pendingProduct()
		p.ReplaceTags([]string{"ankara", "handmade"})
		assert.Equal(t, []string{"ankara", "handmade"}, p.Tags)
	})

	t.Run("nil clears the set", func(t *testing.T) {
		p := pendingProduct()
		p.ReplaceTags(nil)
		assert.Empty(t, p.Tags)
	})

	t.Run("detaches from the caller's slice", func(t *testing.T) {
		incoming := []string{"ankara"}
		p := pendingProduct()
		p.ReplaceTags(incoming)
		incoming[0] = "mutated"
		assert.Equal(t, []string{"ankara"}, p.Tags)
	})

	t.Run("independent of moderation state", func(t *testing.T) {
		p := pendingProduct()
		p.Status = ProductStatusRejected
		p.ReplaceTags([]string{"flagged"})
		assert.Equal(t, ProductStatusRejected, p.Status)
		assert.Equal(t, []string{"flagged"}, p.Tags)
	})
}
