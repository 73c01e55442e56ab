// Package http provides http transport for the customer journey
package http

import (
	stdhttp "net/http"

	"shopdash/internal/modkit/httpkit"
	"shopdash/internal/services/api/journey/domain"
	svc "shopdash/internal/services/api/journey/service"
)

// Register mounts journey endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/summary", h.summary)
	httpkit.PostJSON[domain.PreviewInput](r, "/preview", h.preview)

	httpkit.Get(r, "/sessions/weekpart", h.sessionsWeekpart)
	httpkit.Get(r, "/sessions/weekdays", h.sessionsWeekdays)
	httpkit.Get(r, "/sessions/hours", h.sessionsHours)
	httpkit.PostJSON[domain.SeriesInput](r, "/sessions/series", h.sessionsSeries)
	httpkit.PostJSON[domain.TopNInput](r, "/sessions/top", h.sessionsTop)
	httpkit.Get(r, "/sessions/longest", h.sessionsLongest)

	httpkit.PostJSON[domain.TopNInput](r, "/products/viewed", h.productsViewed)
	httpkit.PostJSON[domain.TopNInput](r, "/collections/viewed", h.collectionsViewed)
	httpkit.PostJSON[domain.TopNInput](r, "/cart/added", h.cartAdded)
	httpkit.Get(r, "/cart/total", h.cartTotal)
	httpkit.Get(r, "/search/terms", h.searchTerms)

	httpkit.Get(r, "/pages/time", h.pagesTime)
	httpkit.Get(r, "/pages/viewers", h.pagesViewers)
	httpkit.Get(r, "/products/time", h.productsTime)
	httpkit.Get(r, "/collections/time", h.collectionsTime)
	httpkit.Get(r, "/bounce", h.bounce)
}

type handlers struct{ svc svc.Service }

// @Summary Journey page cards
// @Tags Journey
// @Produce json
// @Success 200 {object} domain.Summary "ok"
// @Router /journey/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}

// @Summary Date-filtered page view preview with picker bounds
// @Tags Journey
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Query"
// @Success 200 {object} domain.Preview "ok"
// @Router /journey/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Sessions by weekday vs weekend
// @Tags Journey
// @Produce json
// @Success 200 {object} domain.WeekpartSplit "ok"
// @Router /journey/sessions/weekpart [get]
func (h *handlers) sessionsWeekpart(r *stdhttp.Request) (any, error) {
	return h.svc.SessionsWeekpart(r.Context())
}

// @Summary Sessions by day of week, Monday first
// @Tags Journey
// @Produce json
// @Success 200 {array} domain.RankedRow "ok"
// @Router /journey/sessions/weekdays [get]
func (h *handlers) sessionsWeekdays(r *stdhttp.Request) (any, error) {
	return h.svc.SessionsWeekdays(r.Context())
}

// @Summary Sessions by hour of day, 1..24
// @Tags Journey
// @Produce json
// @Success 200 {array} domain.HourCount "ok"
// @Router /journey/sessions/hours [get]
func (h *handlers) sessionsHours(r *stdhttp.Request) (any, error) {
	return h.svc.SessionsHours(r.Context())
}

// @Summary Sessions over time at day, month, quarter or year granularity
// @Tags Journey
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Query"
// @Success 200 {array} domain.SeriesPoint "ok"
// @Router /journey/sessions/series [post]
func (h *handlers) sessionsSeries(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.SessionsSeries(r.Context(), in)
}

// @Summary Visitors with the most sessions
// @Tags Journey
// @Accept json
// @Produce json
// @Param payload body domain.TopNInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /journey/sessions/top [post]
func (h *handlers) sessionsTop(r *stdhttp.Request, in domain.TopNInput) (any, error) {
	return h.svc.SessionsTop(r.Context(), in)
}

// @Summary Ten longest sessions by total dwell time
// @Tags Journey
// @Produce json
// @Success 200 {array} domain.LongestRow "ok"
// @Router /journey/sessions/longest [get]
func (h *handlers) sessionsLongest(r *stdhttp.Request) (any, error) {
	return h.svc.SessionsLongest(r.Context())
}

// @Summary Most viewed products by unique visitors
// @Tags Journey
// @Accept json
// @Produce json
// @Param payload body domain.TopNInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /journey/products/viewed [post]
func (h *handlers) productsViewed(r *stdhttp.Request, in domain.TopNInput) (any, error) {
	return h.svc.ProductsViewed(r.Context(), in)
}

// @Summary Most viewed collections by unique visitors
// @Tags Journey
// @Accept json
// @Produce json
// @Param payload body domain.TopNInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /journey/collections/viewed [post]
func (h *handlers) collectionsViewed(r *stdhttp.Request, in domain.TopNInput) (any, error) {
	return h.svc.CollectionsViewed(r.Context(), in)
}

// @Summary Products most added to the cart by unique visitors
// @Tags Journey
// @Accept json
// @Produce json
// @Param payload body domain.TopNInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /journey/cart/added [post]
func (h *handlers) cartAdded(r *stdhttp.Request, in domain.TopNInput) (any, error) {
	return h.svc.CartAdded(r.Context(), in)
}

// @Summary Total cart-add volume
// @Tags Journey
// @Produce json
// @Success 200 {object} domain.CartTotal "ok"
// @Router /journey/cart/total [get]
func (h *handlers) cartTotal(r *stdhttp.Request) (any, error) {
	return h.svc.CartTotal(r.Context())
}

// @Summary Search term frequencies
// @Tags Journey
// @Produce json
// @Success 200 {array} domain.RankedRow "ok"
// @Router /journey/search/terms [get]
func (h *handlers) searchTerms(r *stdhttp.Request) (any, error) {
	return h.svc.SearchTerms(r.Context())
}

// @Summary Average and total dwell time per page type
// @Tags Journey
// @Produce json
// @Success 200 {array} domain.PageTimeRow "ok"
// @Router /journey/pages/time [get]
func (h *handlers) pagesTime(r *stdhttp.Request) (any, error) {
	return h.svc.PagesTime(r.Context())
}

// @Summary Unique viewers per page type
// @Tags Journey
// @Produce json
// @Success 200 {array} domain.RankedRow "ok"
// @Router /journey/pages/viewers [get]
func (h *handlers) pagesViewers(r *stdhttp.Request) (any, error) {
	return h.svc.PagesViewers(r.Context())
}

// @Summary Total dwell time per product page
// @Tags Journey
// @Produce json
// @Success 200 {array} domain.TimedRow "ok"
// @Router /journey/products/time [get]
func (h *handlers) productsTime(r *stdhttp.Request) (any, error) {
	return h.svc.ProductsTime(r.Context())
}

// @Summary Total dwell time per collection page
// @Tags Journey
// @Produce json
// @Success 200 {array} domain.TimedRow "ok"
// @Router /journey/collections/time [get]
func (h *handlers) collectionsTime(r *stdhttp.Request) (any, error) {
	return h.svc.CollectionsTime(r.Context())
}

// @Summary Short-visit rate and per-page bounce rates
// @Tags Journey
// @Produce json
// @Success 200 {object} domain.Bounce "ok"
// @Router /journey/bounce [get]
func (h *handlers) bounce(r *stdhttp.Request) (any, error) {
	return h.svc.BounceRates(r.Context())
}
