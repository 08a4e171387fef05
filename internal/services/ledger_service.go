// Package services orchestrates ledger operations across the store, the
// query engine and the aggregation engine.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"ledger/internal/core"
	"ledger/internal/export"
	"ledger/internal/query"
	"ledger/internal/report"
	"ledger/internal/storage"
)

// LedgerService is the orchestration layer the CLI talks to.
type LedgerService struct {
	repo   *storage.Repository
	engine *query.Engine
}

func NewLedgerService(repo *storage.Repository) *LedgerService {
	return &LedgerService{
		repo:   repo,
		engine: query.NewEngine(repo),
	}
}

// Add validates the date and appends a new record, returning its id.
// A malformed date is rejected before anything reaches the store. The
// amount is accepted as-is: zero and negative values (refunds) are
// permitted.
func (s *LedgerService) Add(ctx context.Context, date string, amount float64, category, description string) (int64, error) {
	if !core.IsValidDate(date) {
		return 0, fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", core.ErrValidation, date)
	}

	id, err := s.repo.Insert(ctx, date, amount, category, description)
	if err != nil {
		return 0, fmt.Errorf("add expense: %w", err)
	}
	return id, nil
}

// Records returns the full ledger in insertion order.
func (s *LedgerService) Records(ctx context.Context) ([]core.ExpenseRecord, error) {
	return s.repo.All(ctx)
}

// Filter returns the records matching f, in insertion order.
func (s *LedgerService) Filter(ctx context.Context, f query.Filter) ([]core.ExpenseRecord, error) {
	return s.engine.Filter(ctx, f)
}

// Search returns the records whose description contains keyword.
func (s *LedgerService) Search(ctx context.Context, keyword string) ([]core.ExpenseRecord, error) {
	return s.engine.Search(ctx, keyword)
}

// Summarize computes the summary statistics for the period selected by f.
// A period with no records yields the degenerate zero summary.
func (s *LedgerService) Summarize(ctx context.Context, f query.Filter) (report.Summary, error) {
	records, err := s.engine.Filter(ctx, f)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(records)
}

// CategoryBreakdown returns per-category totals for the period selected
// by f, the shape a proportional chart consumes.
func (s *LedgerService) CategoryBreakdown(ctx context.Context, f query.Filter) (map[string]float64, error) {
	records, err := s.engine.Filter(ctx, f)
	if err != nil {
		return nil, err
	}
	return report.CategoryTotals(records), nil
}

// MonthlyTrend returns month-bucketed totals for the period selected by
// f, sorted ascending by month.
func (s *LedgerService) MonthlyTrend(ctx context.Context, f query.Filter) ([]report.MonthTotal, error) {
	records, err := s.engine.Filter(ctx, f)
	if err != nil {
		return nil, err
	}
	return report.MonthlyTotals(records)
}

// ExportAll dumps the full ledger to every sink and returns the number of
// exported records.
func (s *LedgerService) ExportAll(ctx context.Context, sinks ...export.Sink) (int, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("read ledger: %w", err)
	}
	if err := export.Export(ctx, records, sinks...); err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Ledger export complete", "records", len(records), "sinks", len(sinks))
	return len(records), nil
}

func (s *LedgerService) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}
