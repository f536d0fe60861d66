package payout

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ashobox/backoffice/internal/domain/finance"
	"github.com/ashobox/backoffice/internal/domain/shared"
)

// Summary totals the payout rows shown under a search.
type Summary struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ListView is the payout table: the filtered rows and their summary.
type ListView struct {
	Payouts []finance.Payout `json:"payouts"`
	Summary Summary          `json:"summary"`
}

// Service lists and records vendor payouts.
type Service struct {
	source  finance.PayoutSource
	gateway finance.PayoutGateway
	logger  *zap.Logger
}

// NewService creates a new payout Service.
func NewService(source finance.PayoutSource, gateway finance.PayoutGateway, logger *zap.Logger) *Service {
	return &Service{
		source:  source,
		gateway: gateway,
		logger:  logger,
	}
}

// List returns payouts matching the search term across reference, vendor
// business name and status, summarized over the matching rows.
func (s *Service) List(ctx context.Context, search string) (ListView, error) {
	payouts, err := s.source.FetchPayouts(ctx)
	if err != nil {
		return ListView{}, err
	}

	filtered := shared.FilterBySubstring(payouts, search,
		func(p finance.Payout) string { return p.Reference },
		func(p finance.Payout) string { return p.VendorBusinessName },
		func(p finance.Payout) string { return p.Status },
	)

	summary := Summary{Count: len(filtered), TotalAmount: decimal.Zero}
	for _, p := range filtered {
		summary.TotalAmount = summary.TotalAmount.Add(p.Amount)
	}

	return ListView{Payouts: filtered, Summary: summary}, nil
}

// Record sends a payout record to the marketplace. A blank reference is
// defaulted from the generator before the write; the marketplace echoes the
// stored reference back. The write is not retried.
func (s *Service) Record(ctx context.Context, req finance.PayoutRequest) (string, error) {
	if req.Reference == "" {
		req.Reference = finance.NewPayoutReference()
	}

	reference, err := s.gateway.RecordPayout(ctx, req)
	if err != nil {
		return "", err
	}

	s.logger.Info("payout recorded",
		zap.Int64("vendor_id", req.VendorID),
		zap.String("reference", reference))
	return reference, nil
}

// NewReference exposes the reference generator to the HTTP surface.
func (s *Service) NewReference() string {
	return finance.NewPayoutReference()
}
