package module

import (
	"context"

	"shopdash/internal/services/api/orders/domain"
	orderssvc "shopdash/internal/services/api/orders/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptOrdersPort struct{ svc orderssvc.Service }

// Summary returns the order page cards
func (a adaptOrdersPort) Summary(ctx context.Context) (domain.Summary, error) {
	return a.svc.Summary(ctx)
}

// Series returns orders over time
func (a adaptOrdersPort) Series(ctx context.Context, in domain.SeriesInput) ([]domain.SeriesPoint, error) {
	return a.svc.Series(ctx, in)
}
