package module

import (
	"context"

	"shopdash/internal/services/api/journey/domain"
	journeysvc "shopdash/internal/services/api/journey/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptJourneyPort struct{ svc journeysvc.Service }

// Summary returns the journey page cards
func (a adaptJourneyPort) Summary(ctx context.Context) (domain.Summary, error) {
	return a.svc.Summary(ctx)
}

// BounceRates returns the short-visit and per-page bounce rates
func (a adaptJourneyPort) BounceRates(ctx context.Context) (domain.Bounce, error) {
	return a.svc.BounceRates(ctx)
}
