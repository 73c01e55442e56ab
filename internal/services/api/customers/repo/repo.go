// Package repo provides snapshot access for customer workflows
package repo

import (
	"context"
	"time"

	"shopdash/internal/dataset"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
)

// Repo is the minimal read surface for customer workflows
type Repo interface {
	// Customers returns customer rows inside the window on Customer_Created_At
	Customers(ctx context.Context, w ptime.Window) ([]dataset.Customer, error)
	// Bounds returns the min and max Customer_Created_At over the whole table
	Bounds(ctx context.Context) (min, max *time.Time, err error)
	// Orders returns one row per Order_ID over the whole order table
	Orders(ctx context.Context) ([]dataset.OrderLine, error)
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

func (q *queries) Customers(_ context.Context, w ptime.Window) ([]dataset.Customer, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("customers", "Customer_ID", "Customer_Created_At"); err != nil {
		return nil, err
	}
	out := make([]dataset.Customer, 0, len(snap.Customers))
	for _, row := range snap.Customers {
		if w.Contains(row.CreatedAt) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (q *queries) Bounds(_ context.Context) (*time.Time, *time.Time, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("customers", "Customer_Created_At"); err != nil {
		return nil, nil, err
	}
	var min, max *time.Time
	for _, row := range snap.Customers {
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

func (q *queries) Orders(_ context.Context) ([]dataset.OrderLine, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("orders", "Order_ID", "Customer_ID"); err != nil {
		return nil, err
	}
	return dataset.DedupOrders(snap.Orders), nil
}
