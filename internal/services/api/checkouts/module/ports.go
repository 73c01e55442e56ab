package module

import (
	"context"

	"shopdash/internal/services/api/checkouts/domain"
	checkoutssvc "shopdash/internal/services/api/checkouts/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCheckoutsPort struct{ svc checkoutssvc.Service }

// Summary returns the abandoned checkout page cards
func (a adaptCheckoutsPort) Summary(ctx context.Context) (domain.Summary, error) {
	return a.svc.Summary(ctx)
}

// Series returns abandonments over time
func (a adaptCheckoutsPort) Series(ctx context.Context, in domain.SeriesInput) ([]domain.SeriesPoint, error) {
	return a.svc.Series(ctx, in)
}
