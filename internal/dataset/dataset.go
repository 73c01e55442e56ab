// Package dataset loads the five storefront CSV exports into typed in-memory
// tables shared read-only by every feature module
package dataset

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	errs "shopdash/internal/platform/errors"
	"shopdash/internal/platform/logger"
)

// Config selects where the flat files live
// ManifestPath wins when set, otherwise conventional names under Dir
type Config struct {
	ManifestPath string
	Dir          string
}

// Snapshot is one immutable load of all five tables
// modules read it without locks; Reload publishes a fresh one atomically
type Snapshot struct {
	LoadID   uuid.UUID
	LoadedAt time.Time

	Customers []Customer
	Orders    []OrderLine
	Checkouts []CheckoutLine
	Products  []ProductVariant
	Journey   []JourneyEvent

	Tables map[string]TableInfo
}

// Require fails with a not-found error when any named column was absent from
// the table's source file, so the one metric degrades and the rest stay up
func (s *Snapshot) Require(table string, cols ...string) error {
	info, ok := s.Tables[table]
	if !ok {
		return errs.NotFoundf("unknown dataset %q", table)
	}
	if info.LoadErr != "" && len(info.Columns) == 0 {
		return errs.NotFoundf("dataset %q could not be loaded: %s", table, info.LoadErr)
	}
	for _, c := range cols {
		if !info.Has(c) {
			return errs.NotFoundf("dataset %q is missing column %q", table, c)
		}
	}
	return nil
}

// Store owns the current snapshot and knows how to rebuild it from disk
type Store struct {
	log   logger.Logger
	m     *Manifest
	clock func() time.Time
	cur   atomic.Pointer[Snapshot]
}

// Option mutates Store during Open
type Option func(*Store)

// WithLogger sets the logger used during loads
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock overrides the load timestamp source
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// Open reads every table once and returns a ready Store
// a single bad file degrades to an empty table rather than failing the boot
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{
		log:   *logger.Named("dataset"),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.ManifestPath != "" {
		m, err := LoadManifest(cfg.ManifestPath)
		if err != nil {
			return nil, errs.Wrapf(err, errs.ErrorCodeInvalidArgument,
				"dataset manifest %q", cfg.ManifestPath)
		}
		s.m = m
	} else {
		s.m = DefaultManifest(cfg.Dir)
	}

	if _, err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the current immutable load
func (s *Store) Snapshot() *Snapshot { return s.cur.Load() }

// LogoPath returns the sidebar logo location from the manifest
func (s *Store) LogoPath() string { return s.m.Logo }

// Reload re-reads the flat files and swaps in the new snapshot
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		LoadID:   uuid.New(),
		LoadedAt: s.clock().UTC(),
		Tables:   map[string]TableInfo{},
	}

	var info TableInfo
	snap.Customers, info = loadCustomers(s.m.Datasets.Customers, s.log)
	snap.Tables[info.Name] = info
	snap.Orders, info = loadOrders(s.m.Datasets.Orders, s.log)
	snap.Tables[info.Name] = info
	snap.Checkouts, info = loadCheckouts(s.m.Datasets.AbandonedCheckouts, s.log)
	snap.Tables[info.Name] = info
	snap.Products, info = loadProducts(s.m.Datasets.Products, s.log)
	snap.Tables[info.Name] = info
	snap.Journey, info = loadJourney(s.m.Datasets.JourneyEvents, s.log)
	snap.Tables[info.Name] = info

	s.cur.Store(snap)
	s.log.Info().
		Str("load_id", snap.LoadID.String()).
		Int("customers", len(snap.Customers)).
		Int("orders", len(snap.Orders)).
		Int("checkouts", len(snap.Checkouts)).
		Int("products", len(snap.Products)).
		Int("journey", len(snap.Journey)).
		Msg("datasets loaded")
	return snap, nil
}
