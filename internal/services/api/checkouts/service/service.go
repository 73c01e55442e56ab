// Package service contains abandoned checkout workflows
package service

import (
	"context"
	"time"

	"shopdash/internal/core/aggregate"
	"shopdash/internal/core/timeseries"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
	"shopdash/internal/services/api/checkouts/domain"
	"shopdash/internal/services/api/checkouts/repo"
)

// Service defines the abandoned checkouts service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the abandoned checkouts service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	reader repokit.Reader
	now    func() time.Time
}

// New constructs an abandoned checkouts service
func New(reader repokit.Reader, binder repokit.Binder[repo.Repo]) *Svc {
	if reader == nil {
		panic("checkouts.Service requires a non nil Reader")
	}
	if binder == nil {
		panic("checkouts.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(reader), binder: binder, reader: reader, now: time.Now}
}

// WithClock overrides the series end date source, for tests
func (s *Svc) WithClock(now func() time.Time) *Svc {
	s.now = now
	return s
}

// Summary computes the abandoned checkout cards
func (s *Svc) Summary(ctx context.Context) (domain.Summary, error) {
	rows, err := s.Repo.Checkouts(ctx, ptime.Window{})
	if err != nil {
		return domain.Summary{}, err
	}

	perCustomer := map[string]int{}
	for _, c := range rows {
		perCustomer[c.CustomerID]++
	}
	var most int
	var sum float64
	for _, n := range perCustomer {
		sum += float64(n)
		if n > most {
			most = n
		}
	}
	var avg float64
	if len(perCustomer) > 0 {
		avg = aggregate.Round2(sum / float64(len(perCustomer)))
	}
	return domain.Summary{
		TotalAbandoned:          len(rows),
		AvgAbandonedPerCustomer: avg,
		MostAbandonedByCustomer: most,
	}, nil
}

// Preview returns date-filtered rows plus the picker bounds
func (s *Svc) Preview(ctx context.Context, in domain.PreviewInput) (domain.Preview, error) {
	w, err := ptime.ParseWindow(in.Range.Start, in.Range.End)
	if err != nil {
		return domain.Preview{}, err
	}
	rows, err := s.Repo.Checkouts(ctx, w)
	if err != nil {
		return domain.Preview{}, err
	}
	min, max, err := s.Repo.Bounds(ctx)
	if err != nil {
		return domain.Preview{}, err
	}

	out := make([]domain.CheckoutRow, 0, len(rows))
	for _, c := range rows {
		var created string
		if c.CreatedAt != nil {
			created = c.CreatedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, domain.CheckoutRow{
			OrderID:       c.OrderID,
			CustomerID:    c.CustomerID,
			ReferringSite: c.ReferringSite,
			CreatedAt:     created,
		})
	}
	return domain.Preview{
		Rows:  out,
		Total: len(out),
		Min:   fmtDate(min),
		Max:   fmtDate(max),
	}, nil
}

// Weekpart splits deduplicated abandonments by weekday vs weekend
func (s *Svc) Weekpart(ctx context.Context) (domain.WeekpartSplit, error) {
	ts, err := s.createdTimes(ctx)
	if err != nil {
		return domain.WeekpartSplit{}, err
	}
	return aggregate.Weekpart(ts), nil
}

// Weekdays counts abandonments per day of week, Monday first
func (s *Svc) Weekdays(ctx context.Context) ([]domain.RankedRow, error) {
	ts, err := s.createdTimes(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ByWeekday(ts), nil
}

// Hours counts abandonments per hour of day, rebased 1..24
func (s *Svc) Hours(ctx context.Context) ([]domain.HourCount, error) {
	ts, err := s.createdTimes(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ByHour(ts), nil
}

// Series counts abandonments per bucket with zero-filled days underneath
func (s *Svc) Series(ctx context.Context, in domain.SeriesInput) ([]domain.SeriesPoint, error) {
	w, err := ptime.ParseWindow(in.Range.Start, in.Range.End)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.Checkouts(ctx, w)
	if err != nil {
		return nil, err
	}
	obs := make([]timeseries.Obs, 0, len(rows))
	for _, c := range rows {
		if c.CreatedAt != nil {
			obs = append(obs, timeseries.Obs{At: *c.CreatedAt, Value: 1})
		}
	}
	g := timeseries.Granularity(in.Granularity)
	if !g.Valid() {
		g = timeseries.Day
	}
	return timeseries.Series(obs, s.now(), g), nil
}

// Referrers counts abandoned orders per referring site, missing site bucketed
// as Unknown
func (s *Svc) Referrers(ctx context.Context, in domain.ReferrersInput) ([]domain.RankedRow, error) {
	rows, err := s.Repo.Checkouts(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	counts := map[string]float64{}
	order := []string{}
	for _, c := range rows {
		site := c.ReferringSite
		if site == "" {
			site = "Unknown"
		}
		if _, ok := counts[site]; !ok {
			order = append(order, site)
		}
		counts[site]++
	}
	ranked := make([]aggregate.Row, 0, len(order))
	for _, site := range order {
		ranked = append(ranked, aggregate.Row{Label: site, Value: counts[site]})
	}
	n := in.N
	if n == 0 {
		n = 10
	}
	return aggregate.TopN(ranked, n), nil
}

func (s *Svc) createdTimes(ctx context.Context) ([]time.Time, error) {
	rows, err := s.Repo.Checkouts(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	ts := make([]time.Time, 0, len(rows))
	for _, c := range rows {
		if c.CreatedAt != nil {
			ts = append(ts, *c.CreatedAt)
		}
	}
	return ts, nil
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(ptime.DateLayout)
}
