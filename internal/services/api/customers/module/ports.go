package module

import (
	"context"

	"shopdash/internal/services/api/customers/domain"
	customerssvc "shopdash/internal/services/api/customers/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCustomersPort struct{ svc customerssvc.Service }

// Summary returns the customer page cards
func (a adaptCustomersPort) Summary(ctx context.Context) (domain.Summary, error) {
	return a.svc.Summary(ctx)
}

// Regions returns the unique-customer geography breakdown
func (a adaptCustomersPort) Regions(ctx context.Context) (domain.Regions, error) {
	return a.svc.Regions(ctx)
}
