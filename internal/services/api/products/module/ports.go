package module

import (
	"context"

	"shopdash/internal/services/api/products/domain"
	productssvc "shopdash/internal/services/api/products/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptProductsPort struct{ svc productssvc.Service }

// Summary returns the product page cards
func (a adaptProductsPort) Summary(ctx context.Context) (domain.Summary, error) {
	return a.svc.Summary(ctx)
}

// PriceBins returns the live catalog price histogram
func (a adaptProductsPort) PriceBins(ctx context.Context) ([]domain.PriceBin, error) {
	return a.svc.PriceBins(ctx)
}
