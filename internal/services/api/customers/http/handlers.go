// Package http provides http transport for customers
package http

import (
	stdhttp "net/http"

	"shopdash/internal/modkit/httpkit"
	"shopdash/internal/services/api/customers/domain"
	svc "shopdash/internal/services/api/customers/service"
)

// Register mounts customer endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/summary", h.summary)
	httpkit.PostJSON[domain.PreviewInput](r, "/preview", h.preview)
	httpkit.PostJSON[domain.SpendersInput](r, "/spenders", h.spenders)
	httpkit.Get(r, "/repeat", h.repeat)
	httpkit.Get(r, "/regions", h.regions)
}

type handlers struct{ svc svc.Service }

// @Summary Customer page cards
// @Tags Customers
// @Produce json
// @Success 200 {object} domain.Summary "ok"
// @Router /customers/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}

// @Summary Date-filtered customer preview with picker bounds
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Query"
// @Success 200 {object} domain.Preview "ok"
// @Router /customers/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Highest or lowest spending customers
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.SpendersInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /customers/spenders [post]
func (h *handlers) spenders(r *stdhttp.Request, in domain.SpendersInput) (any, error) {
	return h.svc.Spenders(r.Context(), in)
}

// @Summary Customers with two or more orders
// @Tags Customers
// @Produce json
// @Success 200 {array} domain.RepeatRow "ok"
// @Router /customers/repeat [get]
func (h *handlers) repeat(r *stdhttp.Request) (any, error) {
	return h.svc.Repeat(r.Context())
}

// @Summary Unique customers per province and country
// @Tags Customers
// @Produce json
// @Success 200 {object} domain.Regions "ok"
// @Router /customers/regions [get]
func (h *handlers) regions(r *stdhttp.Request) (any, error) {
	return h.svc.Regions(r.Context())
}
