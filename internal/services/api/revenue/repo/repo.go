// Package repo provides snapshot access for revenue workflows
package repo

import (
	"context"
	"time"

	"shopdash/internal/dataset"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
)

// Repo is the minimal read surface for revenue workflows
type Repo interface {
	// Orders returns one row per Order_ID inside the window, first occurrence wins
	Orders(ctx context.Context, w ptime.Window) ([]dataset.OrderLine, error)
	// Bounds returns the min and max Order_Created_At over the whole table
	Bounds(ctx context.Context) (min, max *time.Time, err error)
}

type (
	// Snap is a binder that binds the repo to a snapshot Reader
	Snap struct{}
	// queries implements the Repo interface
	queries struct{ r repokit.Reader }
)

// NewSnap returns a binder for the snapshot-backed repo
func NewSnap() repokit.Binder[Repo] { return Snap{} }

// Bind wires a Reader to the repo
func (Snap) Bind(r repokit.Reader) Repo { return &queries{r: r} }

func (q *queries) Orders(_ context.Context, w ptime.Window) ([]dataset.OrderLine, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("orders", "Order_ID", "Order_Total_Price", "Order_Created_At"); err != nil {
		return nil, err
	}
	lines := make([]dataset.OrderLine, 0, len(snap.Orders))
	for _, row := range snap.Orders {
		if w.Contains(row.CreatedAt) {
			lines = append(lines, row)
		}
	}
	return dataset.DedupOrders(lines), nil
}

func (q *queries) Bounds(_ context.Context) (*time.Time, *time.Time, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("orders", "Order_Created_At"); err != nil {
		return nil, nil, err
	}
	var min, max *time.Time
	for _, row := range snap.Orders {
		if row.CreatedAt == nil {
			continue
		}
		if min == nil || row.CreatedAt.Before(*min) {
			min = row.CreatedAt
		}
		if max == nil || row.CreatedAt.After(*max) {
			max = row.CreatedAt
		}
	}
	return min, max, nil
}
