// Package api provides the HTTP API for the application
package api

import (
	"shopdash/internal/dataset"
	"shopdash/internal/platform/config"
	"shopdash/internal/platform/logger"
	phttp "shopdash/internal/platform/net/http"
	"shopdash/internal/platform/net/middleware"

	"shopdash/internal/modkit"
	"shopdash/internal/modkit/httpkit"
	"shopdash/internal/modkit/module"
	"shopdash/internal/modkit/swaggerkit"

	checkoutsmod "shopdash/internal/services/api/checkouts/module"
	customersmod "shopdash/internal/services/api/customers/module"
	journeymod "shopdash/internal/services/api/journey/module"
	metamod "shopdash/internal/services/api/meta/module"
	ordersmod "shopdash/internal/services/api/orders/module"
	productsmod "shopdash/internal/services/api/products/module"
	revenuemod "shopdash/internal/services/api/revenue/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *dataset.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules; the store doubles as the snapshot reader
	deps := modkit.Deps{
		Cfg:  opt.Config,
		Data: opt.Store,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Data: opt.Store})),
		ordersmod.New(deps),
		checkoutsmod.New(deps),
		revenuemod.New(deps),
		customersmod.New(deps),
		productsmod.New(deps),
		journeymod.New(deps),
	}

	// versioned API with a common middleware stack; every response is tied to
	// the dataset load that served it
	mws := append(httpkit.CommonStack(), middleware.DatasetLoad(func() string {
		if snap := opt.Store.Snapshot(); snap != nil {
			return snap.LoadID.String()
		}
		return ""
	}))
	httpkit.MountAPIV1(r, mws, func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
