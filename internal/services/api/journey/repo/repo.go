// Package repo provides snapshot access for customer journey workflows
package repo

import (
	"context"
	"time"

	"shopdash/internal/dataset"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
)

// Repo is the minimal read surface for journey workflows
type Repo interface {
	// Events returns raw page views inside the window on Event_Time
	Events(ctx context.Context, w ptime.Window) ([]dataset.JourneyEvent, error)
	// Visits returns the first page view per (Customer_IP, session) pair
	Visits(ctx context.Context, w ptime.Window) ([]dataset.JourneyEvent, error)
	// Bounds returns the min and max Event_Time over the whole table
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

func (q *queries) Events(_ context.Context, w ptime.Window) ([]dataset.JourneyEvent, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("journey_events", "Customer_IP", "session", "Event", "Event_Time"); err != nil {
		return nil, err
	}
	out := make([]dataset.JourneyEvent, 0, len(snap.Journey))
	for _, row := range snap.Journey {
		if w.Contains(row.EventTime) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (q *queries) Visits(ctx context.Context, w ptime.Window) ([]dataset.JourneyEvent, error) {
	events, err := q.Events(ctx, w)
	if err != nil {
		return nil, err
	}
	return dataset.FirstEvents(events), nil
}

func (q *queries) Bounds(_ context.Context) (*time.Time, *time.Time, error) {
	snap := q.r.Snapshot()
	if err := snap.Require("journey_events", "Event_Time"); err != nil {
		return nil, nil, err
	}
	var min, max *time.Time
	for _, row := range snap.Journey {
		if row.EventTime == nil {
			continue
		}
		if min == nil || row.EventTime.Before(*min) {
			min = row.EventTime
		}
		if max == nil || row.EventTime.After(*max) {
			max = row.EventTime
		}
	}
	return min, max, nil
}
