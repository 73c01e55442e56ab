// Package http provides http transport for revenue
package http

import (
	stdhttp "net/http"

	"shopdash/internal/modkit/httpkit"
	"shopdash/internal/services/api/revenue/domain"
	svc "shopdash/internal/services/api/revenue/service"
)

// Register mounts revenue endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/summary", h.summary)
	httpkit.PostJSON[domain.PreviewInput](r, "/preview", h.preview)
	httpkit.Get(r, "/weekpart", h.weekpart)
	httpkit.Get(r, "/weekdays", h.weekdays)
	httpkit.Get(r, "/hours", h.hours)
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)
	httpkit.PostJSON[domain.ReferrersInput](r, "/referrers", h.referrers)
}

type handlers struct{ svc svc.Service }

// @Summary Revenue page cards
// @Tags Revenue
// @Produce json
// @Success 200 {object} domain.Summary "ok"
// @Router /revenue/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}

// @Summary Date-filtered revenue preview with picker bounds
// @Tags Revenue
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Query"
// @Success 200 {object} domain.Preview "ok"
// @Router /revenue/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Revenue by weekday vs weekend
// @Tags Revenue
// @Produce json
// @Success 200 {object} domain.WeekpartMoney "ok"
// @Router /revenue/weekpart [get]
func (h *handlers) weekpart(r *stdhttp.Request) (any, error) {
	return h.svc.Weekpart(r.Context())
}

// @Summary Revenue by day of week, Monday first
// @Tags Revenue
// @Produce json
// @Success 200 {array} domain.MoneyRow "ok"
// @Router /revenue/weekdays [get]
func (h *handlers) weekdays(r *stdhttp.Request) (any, error) {
	return h.svc.Weekdays(r.Context())
}

// @Summary Revenue by hour of day, 1..24
// @Tags Revenue
// @Produce json
// @Success 200 {array} domain.HourMoney "ok"
// @Router /revenue/hours [get]
func (h *handlers) hours(r *stdhttp.Request) (any, error) {
	return h.svc.Hours(r.Context())
}

// @Summary Revenue over time at day, month, quarter or year granularity
// @Tags Revenue
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Query"
// @Success 200 {array} domain.SeriesPoint "ok"
// @Router /revenue/series [post]
func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

// @Summary Revenue per referring site
// @Tags Revenue
// @Accept json
// @Produce json
// @Param payload body domain.ReferrersInput true "Query"
// @Success 200 {array} domain.MoneyRow "ok"
// @Router /revenue/referrers [post]
func (h *handlers) referrers(r *stdhttp.Request, in domain.ReferrersInput) (any, error) {
	return h.svc.Referrers(r.Context(), in)
}
