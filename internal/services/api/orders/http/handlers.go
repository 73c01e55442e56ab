// Package http provides http transport for orders
package http

import (
	stdhttp "net/http"

	"shopdash/internal/modkit/httpkit"
	"shopdash/internal/services/api/orders/domain"
	svc "shopdash/internal/services/api/orders/service"
)

// Register mounts order endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/summary", h.summary)
	httpkit.PostJSON[domain.PreviewInput](r, "/preview", h.preview)
	httpkit.Get(r, "/weekpart", h.weekpart)
	httpkit.Get(r, "/weekdays", h.weekdays)
	httpkit.Get(r, "/hours", h.hours)
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)
	httpkit.PostJSON[domain.ValuedInput](r, "/valued", h.valued)
	httpkit.PostJSON[domain.ReferrersInput](r, "/referrers", h.referrers)
}

type handlers struct{ svc svc.Service }

// @Summary Order page cards
// @Tags Orders
// @Produce json
// @Success 200 {object} domain.Summary "ok"
// @Router /orders/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}

// @Summary Date-filtered order preview with picker bounds
// @Tags Orders
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Query"
// @Success 200 {object} domain.Preview "ok"
// @Router /orders/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Orders by weekday vs weekend
// @Tags Orders
// @Produce json
// @Success 200 {object} domain.WeekpartSplit "ok"
// @Router /orders/weekpart [get]
func (h *handlers) weekpart(r *stdhttp.Request) (any, error) {
	return h.svc.Weekpart(r.Context())
}

// @Summary Orders by day of week, Monday first
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.RankedRow "ok"
// @Router /orders/weekdays [get]
func (h *handlers) weekdays(r *stdhttp.Request) (any, error) {
	return h.svc.Weekdays(r.Context())
}

// @Summary Orders by hour of day, 1..24
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.HourCount "ok"
// @Router /orders/hours [get]
func (h *handlers) hours(r *stdhttp.Request) (any, error) {
	return h.svc.Hours(r.Context())
}

// @Summary Orders over time at day, month, quarter or year granularity
// @Tags Orders
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Query"
// @Success 200 {array} domain.SeriesPoint "ok"
// @Router /orders/series [post]
func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

// @Summary Highest or least valued orders
// @Tags Orders
// @Accept json
// @Produce json
// @Param payload body domain.ValuedInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /orders/valued [post]
func (h *handlers) valued(r *stdhttp.Request, in domain.ValuedInput) (any, error) {
	return h.svc.Valued(r.Context(), in)
}

// @Summary Orders per referring site
// @Tags Orders
// @Accept json
// @Produce json
// @Param payload body domain.ReferrersInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /orders/referrers [post]
func (h *handlers) referrers(r *stdhttp.Request, in domain.ReferrersInput) (any, error) {
	return h.svc.Referrers(r.Context(), in)
}
