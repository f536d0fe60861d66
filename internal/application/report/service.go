package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/ashobox/backoffice/internal/domain/report"
	"github.com/ashobox/backoffice/internal/domain/shared"
)

// Service builds the reporting views. Every call fetches a fresh snapshot
// from the marketplace and recomputes from scratch; nothing is cached
// between calls.
type Service struct {
	source report.SnapshotSource
	logger *zap.Logger
}

// NewService creates a new report Service.
func NewService(source report.SnapshotSource, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

func (s *Service) snapshot(ctx context.Context) (report.Snapshot, error) {
	orders, err := s.source.FetchOrders(ctx)
	if err != nil {
		return report.Snapshot{}, err
	}
	ledger, err := s.source.FetchLedgerEntries(ctx)
	if err != nil {
		return report.Snapshot{}, err
	}
	vendors, err := s.source.FetchVendorStats(ctx)
	if err != nil {
		return report.Snapshot{}, err
	}
	return report.Snapshot{Orders: orders, Ledger: ledger, Vendors: vendors}, nil
}

// Overview fetches a snapshot and assembles the full report view.
func (s *Service) Overview(ctx context.Context) (*report.Overview, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := report.Assemble(snapshot)
	if err != nil {
		s.logger.Warn("report assembly failed",
			zap.Int("orders", len(snapshot.Orders)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("report overview assembled",
		zap.Int("orders", len(snapshot.Orders)),
		zap.Int("ledger_entries", len(snapshot.Ledger)),
		zap.Int("vendors", len(snapshot.Vendors)))
	return overview, nil
}

// FinancialSummary fetches a snapshot and computes the summary cards.
func (s *Service) FinancialSummary(ctx context.Context) (report.FinancialSummary, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return report.FinancialSummary{}, err
	}
	return report.Summarize(snapshot), nil
}

// Vendors returns vendor stats filtered by business name.
func (s *Service) Vendors(ctx context.Context, search string) ([]report.VendorStat, error) {
	vendors, err := s.source.FetchVendorStats(ctx)
	if err != nil {
		return nil, err
	}
	return shared.FilterBySubstring(vendors, search,
		func(v report.VendorStat) string { return v.BusinessName },
	), nil
}
