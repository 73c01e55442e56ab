// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"sort"
	"time"

	"shopdash/internal/core/version"
	"shopdash/internal/dataset"
	"shopdash/internal/modkit/httpkit"
)

// Datasets is satisfied by the dataset store
type Datasets interface {
	Snapshot() *dataset.Snapshot
	Reload(stdctx.Context) (*dataset.Snapshot, error)
	LogoPath() string
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Data        Datasets
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/datasets", h.datasets)
	httpkit.Post(r, "/reload", h.reload)

	if d.Data != nil && d.Data.LogoPath() != "" {
		r.Handle("/logo", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, d.Data.LogoPath())
		}))
	}
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"shopdash-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"shopdash-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// TableStatus summarizes one loaded table
type TableStatus struct {
	Name     string   `json:"name" example:"orders"`
	Rows     int      `json:"rows" example:"5012"`
	Columns  []string `json:"columns"`
	Missing  []string `json:"missing,omitempty"`
	Warnings int      `json:"warnings" example:"3"`
	Error    string   `json:"error,omitempty"`
}

// DatasetsResponse reports the current snapshot and its tables
type DatasetsResponse struct {
	LoadID   string        `json:"load_id" example:"7b1c9a1e-0b0e-4f6a-9c80-0a9f3f1d2e44"`
	LoadedAt string        `json:"loaded_at" example:"2025-09-03T13:00:00Z"`
	Tables   []TableStatus `json:"tables"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/datasets Meta metaDatasets
// @Summary Current snapshot and per-table load status
// @Tags Meta
// @Produce json
// @Success 200 type DatasetsResponse ok
// @Router /meta/datasets [get]
func (h *handlers) datasets(_ *http.Request) (any, error) {
	return snapshotResponse(h.deps.Data.Snapshot()), nil
}

// swagger:route POST /meta/reload Meta metaReload
// @Summary Re-read the CSV datasets and swap the snapshot
// @Tags Meta
// @Produce json
// @Success 200 type DatasetsResponse ok
// @Router /meta/reload [post]
func (h *handlers) reload(r *http.Request) (any, error) {
	snap, err := h.deps.Data.Reload(r.Context())
	if err != nil {
		return nil, err
	}
	return snapshotResponse(snap), nil
}

func snapshotResponse(snap *dataset.Snapshot) DatasetsResponse {
	tables := make([]TableStatus, 0, len(snap.Tables))
	for _, info := range snap.Tables {
		var warnings int
		for _, n := range info.Warnings {
			warnings += n
		}
		tables = append(tables, TableStatus{
			Name:     info.Name,
			Rows:     info.Rows,
			Columns:  info.Columns,
			Missing:  info.Missing,
			Warnings: warnings,
			Error:    info.LoadErr,
		})
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return DatasetsResponse{
		LoadID:   snap.LoadID.String(),
		LoadedAt: snap.LoadedAt.UTC().Format(time.RFC3339),
		Tables:   tables,
	}
}
