// @title         Shopdash API
// @version       0.1.0
// @description   Read only analytics endpoints over storefront CSV exports

package main

import (
	"context"

	"shopdash/internal/dataset"
	"shopdash/internal/platform/config"
	"shopdash/internal/platform/logger"
	phttp "shopdash/internal/platform/net/http"

	"shopdash/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	dataCfg := root.Prefix("SERVICE_DATA_") // dataset locations live under SERVICE_DATA_*

	// bring up logging early
	l := logger.Get()

	// load the CSV snapshot before serving anything
	st, err := dataset.Open(
		context.Background(),
		dataset.Config{
			ManifestPath: dataCfg.MayString("MANIFEST", ""),
			Dir:          dataCfg.MayString("DIR", "./data"),
		},
		dataset.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("dataset.Open failed")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
