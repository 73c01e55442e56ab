// Package module wires orders into the API using modkit
package module

import (
	"net/http"

	modkit "shopdash/internal/modkit"
	"shopdash/internal/modkit/httpkit"
	str "shopdash/internal/platform/strings"
	ordershttp "shopdash/internal/services/api/orders/http"
	ordersrepo "shopdash/internal/services/api/orders/repo"
	orderssvc "shopdash/internal/services/api/orders/service"
)

// Module implements the orders module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc orderssvc.Service
}

// New constructs the orders module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("orders"), modkit.WithPrefix("/orders")}, opts...)...)

	repo := ordersrepo.NewSnap()
	svc := orderssvc.New(deps.Data, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptOrdersPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ordershttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
