package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ashobox/backoffice/internal/domain/catalog"
	"github.com/ashobox/backoffice/internal/domain/shared"
)

type fakeProducts struct {
	products []catalog.Product
	err      error
}

func (f *fakeProducts) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

type fakeGateway struct {
	statusCalls int
	tagCalls    int
	lastStatus  catalog.ProductStatus
	lastReason  string
	lastTags    []string
	err         error
	block       chan struct{}
}

func (f *fakeGateway) UpdateProductStatus(ctx context.Context, productID int64, status catalog.ProductStatus, reason string) error {
	if f.block != nil {
		<-f.block
	}
	f.statusCalls++
	f.lastStatus = status
	f.lastReason = reason
	return f.err
}

func (f *fakeGateway) UpdateProductTags(ctx context.Context, productID int64, tags []string) error {
	f.tagCalls++
	f.lastTags = tags
	return f.err
}

func queueProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Aso Oke Wrap", VendorBusinessName: "Ade Textiles", CategoryName: "Fabrics", Status: catalog.ProductStatusPending},
		{ID: 2, Name: "Bead Necklace", VendorBusinessName: "Bisi Beads", CategoryName: "Jewelry", Status: catalog.ProductStatusApproved},
		{ID: 3, Name: "Ankara Shirt", VendorBusinessName: "Ade Textiles", CategoryName: "Fabrics", Status: catalog.ProductStatusPending},
	}
}

func TestListQueue(t *testing.T) {
	svc := NewService(&fakeProducts{products: queueProducts()}, &fakeGateway{}, zap.NewNop())

	t.Run("pending count covers the whole set", func(t *testing.T) {
		queue, err := svc.ListQueue(context.Background(), "necklace", "")
		require.NoError(t, err)
		assert.Len(t, queue.Products, 1)
		assert.Equal(t, 2, queue.PendingCount)
	})

	t.Run("search matches vendor business name", func(t *testing.T) {
		queue, err := svc.ListQueue(context.Background(), "ade", "")
		require.NoError(t, err)
		assert.Len(t, queue.Products, 2)
	})

	t.Run("category filter is exact and case-insensitive", func(t *testing.T) {
		queue, err := svc.ListQueue(context.Background(), "", "fabrics")
		require.NoError(t, err)
		assert.Len(t, queue.Products, 2)
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("pushes the transition and returns the updated copy", func(t *testing.T) {
		gateway := &fakeGateway{}
		svc := NewService(&fakeProducts{products: queueProducts()}, gateway, zap.NewNop())

		product, err := svc.SetStatus(context.Background(), 1, catalog.ProductStatusApproved, "")
		require.NoError(t, err)
		assert.Equal(t, catalog.ProductStatusApproved, product.Status)
		assert.Equal(t, 1, gateway.statusCalls)
	})

	t.Run("idempotent request skips the remote call", func(t *testing.T) {
		gateway := &fakeGateway{}
		svc := NewService(&fakeProducts{products: queueProducts()}, gateway, zap.NewNop())

		product, err := svc.SetStatus(context.Background(), 2, catalog.ProductStatusApproved, "")
		require.NoError(t, err)
		assert.Equal(t, catalog.ProductStatusApproved, product.Status)
		assert.Zero(t, gateway.statusCalls)
	})

	t.Run("remote failure surfaces unchanged", func(t *testing.T) {
		gateway := &fakeGateway{err: shared.NewDomainError("REMOTE_UNAVAILABLE", "status write refused")}
		svc := NewService(&fakeProducts{products: queueProducts()}, gateway, zap.NewNop())

		_, err := svc.SetStatus(context.Background(), 1, catalog.ProductStatusRejected, "counterfeit")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status write refused")
	})

	t.Run("unknown product", func(t *testing.T) {
		svc := NewService(&fakeProducts{products: queueProducts()}, &fakeGateway{}, zap.NewNop())

		_, err := svc.SetStatus(context.Background(), 999, catalog.ProductStatusApproved, "")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("second submit while in flight is refused", func(t *testing.T) {
		gateway := &fakeGateway{block: make(chan struct{})}
		svc := NewService(&fakeProducts{products: queueProducts()}, gateway, zap.NewNop())

		done := make(chan error, 1)
		go func() {
			_, err := svc.SetStatus(context.Background(), 1, catalog.ProductStatusApproved, "")
			done <- err
		}()

		require.Eventually(t, func() bool {
			svc.mu.Lock()
			defer svc.mu.Unlock()
			_, busy := svc.inFlight[1]
			return busy
		}, time.Second, time.Millisecond)

		_, err := svc.SetStatus(context.Background(), 1, catalog.ProductStatusRejected, "dup")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACTION_IN_FLIGHT", domainErr.Code)

		close(gateway.block)
		require.NoError(t, <-done)

		// The flag clears once the first action finishes.
		_, err = svc.SetStatus(context.Background(), 1, catalog.ProductStatusRejected, "late")
		require.NoError(t, err)
	})
}

func TestReplaceTags(t *testing.T) {
	t.Run("pushes the full replacement", func(t *testing.T) {
		gateway := &fakeGateway{}
		svc := NewService(&fakeProducts{products: queueProducts()}, gateway, zap.NewNop())

		product, err := svc.ReplaceTags(context.Background(), 2, []string{"wizkid", "rema"})
		require.NoError(t, err)
		assert.Equal(t, []string{"wizkid", "rema"}, product.Tags)
		assert.Equal(t, []string{"wizkid", "rema"}, gateway.lastTags)
		assert.Equal(t, 1, gateway.tagCalls)
	})

	t.Run("remote failure surfaces unchanged", func(t *testing.T) {
		gateway := &fakeGateway{err: shared.NewDomainError("REMOTE_UNAVAILABLE", "tag write refused")}
		svc := NewService(&fakeProducts{products: queueProducts()}, gateway, zap.NewNop())

		_, err := svc.ReplaceTags(context.Background(), 2, []string{"davido"})
		require.Error(t, err)
	})
}
