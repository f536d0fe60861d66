package moderation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ashobox/backoffice/internal/domain/catalog"
	"github.com/ashobox/backoffice/internal/domain/shared"
)

// Queue is the moderation work list: the filtered product set plus the
// count of products still awaiting a decision across the whole set, not
// just the filtered subset.
type Queue struct {
	Products     []catalog.Product `json:"products"`
	PendingCount int               `json:"pendingCount"`
}

// Service drives moderation actions against the marketplace. It tracks one
// in-flight flag per product so a double-submit from the UI is refused
// instead of racing the remote write.
type Service struct {
	products catalog.ProductSource
	gateway  catalog.ModerationGateway
	logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewService creates a new moderation Service.
func NewService(products catalog.ProductSource, gateway catalog.ModerationGateway, logger *zap.Logger) *Service {
	return &Service{
		products: products,
		gateway:  gateway,
		logger:   logger,
		inFlight: make(map[int64]struct{}),
	}
}

// ListQueue fetches the product set and applies search and category
// filters. Search matches product name and vendor business name; the
// category filter is an exact match on the category name, case-insensitive.
func (s *Service) ListQueue(ctx context.Context, search, category string) (Queue, error) {
	products, err := s.products.FetchProducts(ctx)
	if err != nil {
		return Queue{}, err
	}

	pending := 0
	for _, p := range products {
		if p.IsPending() {
			pending++
		}
	}

	filtered := shared.FilterBySubstring(products, search,
		func(p catalog.Product) string { return p.Name },
		func(p catalog.Product) string { return p.VendorBusinessName },
	)
	if category != "" {
		kept := make([]catalog.Product, 0, len(filtered))
		for _, p := range filtered {
			if strings.EqualFold(p.CategoryName, category) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	return Queue{Products: filtered, PendingCount: pending}, nil
}

// SetStatus transitions a product to the requested moderation state. The
// transition is applied to a working copy first; when it is a no-op the
// remote is never called. On remote failure the error is returned as-is
// and the caller's view keeps the previous state.
func (s *Service) SetStatus(ctx context.Context, productID int64, status catalog.ProductStatus, reason string) (*catalog.Product, error) {
	if err := s.begin(productID); err != nil {
		return nil, err
	}
	defer s.end(productID)

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	changed, err := product.ApplyStatus(status)
	if err != nil {
		return nil, err
	}
	if !changed {
		s.logger.Debug("moderation no-op",
			zap.Int64("product_id", productID),
			zap.String("status", string(status)))
		return product, nil
	}

	if err := s.gateway.UpdateProductStatus(ctx, productID, status, reason); err != nil {
		return nil, err
	}

	s.logger.Info("product moderated",
		zap.Int64("product_id", productID),
		zap.String("status", status.Label()))
	return product, nil
}

// ReplaceTags replaces a product's tag set wholesale. Tags are independent
// of the moderation state; a rejected product can be retagged.
func (s *Service) ReplaceTags(ctx context.Context, productID int64, tags []string) (*catalog.Product, error) {
	if err := s.begin(productID); err != nil {
		return nil, err
	}
	defer s.end(productID)

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.UpdateProductTags(ctx, productID, tags); err != nil {
		return nil, err
	}

	product.ReplaceTags(tags)
	s.logger.Info("product tags replaced",
		zap.Int64("product_id", productID),
		zap.Int("tag_count", len(tags)))
	return product, nil
}

func (s *Service) findProduct(ctx context.Context, productID int64) (*catalog.Product, error) {
	products, err := s.products.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == productID {
			return &products[i], nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("product %d not found", productID))
}

func (s *Service) begin(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[productID]; busy {
		return shared.NewDomainError("ACTION_IN_FLIGHT", fmt.Sprintf("an action for product %d is already in flight", productID))
	}
	s.inFlight[productID] = struct{}{}
	return nil
}

func (s *Service) end(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, productID)
}
