// Package http provides http transport for abandoned checkouts
package http

import (
	stdhttp "net/http"

	"shopdash/internal/modkit/httpkit"
	"shopdash/internal/services/api/checkouts/domain"
	svc "shopdash/internal/services/api/checkouts/service"
)

// Register mounts abandoned checkout endpoints on the given router
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

// @Summary Abandoned checkout page cards
// @Tags Checkouts
// @Produce json
// @Success 200 {object} domain.Summary "ok"
// @Router /checkouts/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}

// @Summary Date-filtered abandoned checkout preview with picker bounds
// @Tags Checkouts
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Query"
// @Success 200 {object} domain.Preview "ok"
// @Router /checkouts/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Abandonments by weekday vs weekend
// @Tags Checkouts
// @Produce json
// @Success 200 {object} domain.WeekpartSplit "ok"
// @Router /checkouts/weekpart [get]
func (h *handlers) weekpart(r *stdhttp.Request) (any, error) {
	return h.svc.Weekpart(r.Context())
}

// @Summary Abandonments by day of week, Monday first
// @Tags Checkouts
// @Produce json
// @Success 200 {array} domain.RankedRow "ok"
// @Router /checkouts/weekdays [get]
func (h *handlers) weekdays(r *stdhttp.Request) (any, error) {
	return h.svc.Weekdays(r.Context())
}

// @Summary Abandonments by hour of day, 1..24
// @Tags Checkouts
// @Produce json
// @Success 200 {array} domain.HourCount "ok"
// @Router /checkouts/hours [get]
func (h *handlers) hours(r *stdhttp.Request) (any, error) {
	return h.svc.Hours(r.Context())
}

// @Summary Abandonments over time at day, month, quarter or year granularity
// @Tags Checkouts
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Query"
// @Success 200 {array} domain.SeriesPoint "ok"
// @Router /checkouts/series [post]
func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

// @Summary Abandoned orders per referring site
// @Tags Checkouts
// @Accept json
// @Produce json
// @Param payload body domain.ReferrersInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /checkouts/referrers [post]
func (h *handlers) referrers(r *stdhttp.Request, in domain.ReferrersInput) (any, error) {
	return h.svc.Referrers(r.Context(), in)
}
