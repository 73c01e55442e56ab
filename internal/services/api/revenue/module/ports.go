package module

import (
	"context"

	"shopdash/internal/services/api/revenue/domain"
	revenuesvc "shopdash/internal/services/api/revenue/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptRevenuePort struct{ svc revenuesvc.Service }

// Summary returns the revenue page cards
func (a adaptRevenuePort) Summary(ctx context.Context) (domain.Summary, error) {
	return a.svc.Summary(ctx)
}

// Series returns revenue over time
func (a adaptRevenuePort) Series(ctx context.Context, in domain.SeriesInput) ([]domain.SeriesPoint, error) {
	return a.svc.Series(ctx, in)
}
