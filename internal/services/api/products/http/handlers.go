// Package http provides http transport for products
package http

import (
	stdhttp "net/http"

	"shopdash/internal/modkit/httpkit"
	"shopdash/internal/services/api/products/domain"
	svc "shopdash/internal/services/api/products/service"
)

// Register mounts product endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/summary", h.summary)
	httpkit.PostJSON[domain.PreviewInput](r, "/preview", h.preview)
	httpkit.PostJSON[domain.TypesInput](r, "/types", h.types)
	httpkit.PostJSON[domain.SoldInput](r, "/sold", h.sold)
	httpkit.PostJSON[domain.PricedInput](r, "/priced", h.priced)
	httpkit.Get(r, "/unsold", h.unsold)
	httpkit.Get(r, "/pricebins", h.pricebins)
}

type handlers struct{ svc svc.Service }

// @Summary Product page cards
// @Tags Products
// @Produce json
// @Success 200 {object} domain.Summary "ok"
// @Router /products/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}

// @Summary Date-filtered catalog preview with picker bounds
// @Tags Products
// @Accept json
// @Produce json
// @Param payload body domain.PreviewInput true "Query"
// @Success 200 {object} domain.Preview "ok"
// @Router /products/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.PreviewInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Live products per product type
// @Tags Products
// @Accept json
// @Produce json
// @Param payload body domain.TypesInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /products/types [post]
func (h *handlers) types(r *stdhttp.Request, in domain.TypesInput) (any, error) {
	return h.svc.Types(r.Context(), in)
}

// @Summary Most sold products by quantity
// @Tags Products
// @Accept json
// @Produce json
// @Param payload body domain.SoldInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /products/sold [post]
func (h *handlers) sold(r *stdhttp.Request, in domain.SoldInput) (any, error) {
	return h.svc.Sold(r.Context(), in)
}

// @Summary Most or least priced live products
// @Tags Products
// @Accept json
// @Produce json
// @Param payload body domain.PricedInput true "Query"
// @Success 200 {array} domain.RankedRow "ok"
// @Router /products/priced [post]
func (h *handlers) priced(r *stdhttp.Request, in domain.PricedInput) (any, error) {
	return h.svc.Priced(r.Context(), in)
}

// @Summary Live products that never sold, oldest publish first
// @Tags Products
// @Produce json
// @Success 200 {array} domain.UnsoldRow "ok"
// @Router /products/unsold [get]
func (h *handlers) unsold(r *stdhttp.Request) (any, error) {
	return h.svc.Unsold(r.Context())
}

// @Summary Price-range histogram over live variant prices
// @Tags Products
// @Produce json
// @Success 200 {array} domain.PriceBin "ok"
// @Router /products/pricebins [get]
func (h *handlers) pricebins(r *stdhttp.Request) (any, error) {
	return h.svc.PriceBins(r.Context())
}
