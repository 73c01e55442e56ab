// Package repo provides snapshot access for product workflows
package repo

import (
	"context"
	"time"

	"shopdash/internal/dataset"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
)

// Repo is the minimal read surface for product workflows
type Repo interface {
	// Products returns catalog rows inside the window on Product_Created_At
	Products(ctx context.Context, w ptime.Window) ([]dataset.ProductVariant, error)
	// Live returns catalog rows with Product_Published_At present
	Live(ctx context.Context) ([]dataset.ProductVariant, error)
	// Bounds returns the min and max Product_Created_At over the whole table
	Bounds(ctx context.Context) (min, max *time.Time, err error)
	// OrderLines returns the raw line-item grained order table
	OrderLines(ctx context.Context) ([]dataset.OrderLine, error)
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

func (q *queries) Products(_ context.Context, w ptime.Window) ([]dataset.ProductVariant, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("products", "Product_ID", "Product_Created_At"); err != nil {
		return nil, err
	}
	out := make([]dataset.ProductVariant, 0, len(snap.Products))
	for _, row := range snap.Products {
		if w.Contains(row.CreatedAt) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (q *queries) Live(_ context.Context) ([]dataset.ProductVariant, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("products", "Product_ID", "Product_Published_At"); err != nil {
		return nil, err
	}
	out := make([]dataset.ProductVariant, 0, len(snap.Products))
	for _, row := range snap.Products {
		if row.PublishedAt != nil {
			out = append(out, row)
		}
	}
	return out, nil
}

func (q *queries) Bounds(_ context.Context) (*time.Time, *time.Time, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("products", "Product_Created_At"); err != nil {
		return nil, nil, err
	}
	var min, max *time.Time
	for _, row := range snap.Products {
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

func (q *queries) OrderLines(_ context.Context) ([]dataset.OrderLine, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("orders", "Order_ID", "Product_ID"); err != nil {
		return nil, err
	}
	return snap.Orders, nil
}
