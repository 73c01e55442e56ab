// Package service contains order workflows
package service

import (
	"context"
	"time"

	"shopdash/internal/core/aggregate"
	"shopdash/internal/core/display"
	"shopdash/internal/core/timeseries"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
	"shopdash/internal/services/api/orders/domain"
	"shopdash/internal/services/api/orders/repo"
)

// Service defines the orders service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the orders service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	reader repokit.Reader
	now    func() time.Time
}

// New constructs an orders service
func New(reader repokit.Reader, binder repokit.Binder[repo.Repo]) *Svc {
	if reader == nil {
		panic("orders.Service requires a non nil Reader")
	}
	if binder == nil {
		panic("orders.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(reader), binder: binder, reader: reader, now: time.Now}
}

// WithClock overrides the series end date source, for tests
func (s *Svc) WithClock(now func() time.Time) *Svc {
	s.now = now
	return s
}

// Summary computes the order page cards
func (s *Svc) Summary(ctx context.Context) (domain.Summary, error) {
	orders, err := s.Repo.Orders(ctx, ptime.Window{})
	if err != nil {
		return domain.Summary{}, err
	}

	perCustomer := map[string]int{}
	var cancelled int
	prices := make([]float64, 0, len(orders))
	for _, o := range orders {
		perCustomer[o.CustomerID]++
		if o.CancelledAt != nil {
			cancelled++
		}
		prices = append(prices, o.TotalPrice)
	}

	var most int
	var sum float64
	for _, n := range perCustomer {
		sum += float64(n)
		if n > most {
			most = n
		}
	}
	var avgPerCustomer float64
	if len(perCustomer) > 0 {
		avgPerCustomer = aggregate.Round2(sum / float64(len(perCustomer)))
	}
	avgValue := aggregate.Round2(aggregate.Mean(prices))

	return domain.Summary{
		TotalOrders:          len(orders),
		AvgOrdersPerCustomer: avgPerCustomer,
		CancelledOrders:      cancelled,
		MostOrdersByCustomer: most,
		AvgOrderValue:        avgValue,
		AvgOrderValueDisplay: display.Euro(avgValue),
	}, nil
}

// Preview returns date-filtered rows plus the picker bounds
func (s *Svc) Preview(ctx context.Context, in domain.PreviewInput) (domain.Preview, error) {
	w, err := ptime.ParseWindow(in.Range.Start, in.Range.End)
	if err != nil {
		return domain.Preview{}, err
	}
	orders, err := s.Repo.Orders(ctx, w)
	if err != nil {
		return domain.Preview{}, err
	}
	min, max, err := s.Repo.Bounds(ctx)
	if err != nil {
		return domain.Preview{}, err
	}

	rows := make([]domain.OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, domain.OrderRow{
			OrderID:       o.OrderID,
			CustomerID:    o.CustomerID,
			CustomerName:  o.CustomerName,
			TotalPrice:    o.TotalPrice,
			ReferringSite: o.ReferringSite,
			CreatedAt:     fmtTime(o.CreatedAt),
			CancelledAt:   fmtTime(o.CancelledAt),
		})
	}
	return domain.Preview{
		Rows:  rows,
		Total: len(rows),
		Min:   fmtDate(min),
		Max:   fmtDate(max),
	}, nil
}

// Weekpart splits deduplicated orders by weekday vs weekend
func (s *Svc) Weekpart(ctx context.Context) (domain.WeekpartSplit, error) {
	ts, err := s.createdTimes(ctx)
	if err != nil {
		return domain.WeekpartSplit{}, err
	}
	return aggregate.Weekpart(ts), nil
}

// Weekdays counts orders per day of week, Monday first
func (s *Svc) Weekdays(ctx context.Context) ([]domain.RankedRow, error) {
	ts, err := s.createdTimes(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ByWeekday(ts), nil
}

// Hours counts orders per hour of day, rebased 1..24
func (s *Svc) Hours(ctx context.Context) ([]domain.HourCount, error) {
	ts, err := s.createdTimes(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ByHour(ts), nil
}

// Series counts orders per bucket with zero-filled days underneath
func (s *Svc) Series(ctx context.Context, in domain.SeriesInput) ([]domain.SeriesPoint, error) {
	w, err := ptime.ParseWindow(in.Range.Start, in.Range.End)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.Orders(ctx, w)
	if err != nil {
		return nil, err
	}
	obs := make([]timeseries.Obs, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt != nil {
			obs = append(obs, timeseries.Obs{At: *o.CreatedAt, Value: 1})
		}
	}
	return timeseries.Series(obs, s.now(), granularity(in.Granularity)), nil
}

// Valued ranks orders by total price, top or bottom N
func (s *Svc) Valued(ctx context.Context, in domain.ValuedInput) ([]domain.RankedRow, error) {
	orders, err := s.Repo.Orders(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	rows := make([]aggregate.Row, 0, len(orders))
	for _, o := range orders {
		if o.CustomerName == "" {
			continue
		}
		rows = append(rows, aggregate.Row{Label: o.CustomerName, Value: o.TotalPrice})
	}
	n := defaultN(in.N)
	if in.Order == "bottom" {
		return aggregate.BottomN(rows, n), nil
	}
	return aggregate.TopN(rows, n), nil
}

// Referrers counts deduplicated orders per referring site
func (s *Svc) Referrers(ctx context.Context, in domain.ReferrersInput) ([]domain.RankedRow, error) {
	orders, err := s.Repo.Orders(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	counts := map[string]float64{}
	order := []string{}
	for _, o := range orders {
		site := o.ReferringSite
		if site == "" {
			site = "Unknown"
		}
		if _, ok := counts[site]; !ok {
			order = append(order, site)
		}
		counts[site]++
	}
	rows := make([]aggregate.Row, 0, len(order))
	for _, site := range order {
		rows = append(rows, aggregate.Row{Label: site, Value: counts[site]})
	}
	return aggregate.TopN(rows, defaultN(in.N)), nil
}

func (s *Svc) createdTimes(ctx context.Context) ([]time.Time, error) {
	orders, err := s.Repo.Orders(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	ts := make([]time.Time, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt != nil {
			ts = append(ts, *o.CreatedAt)
		}
	}
	return ts, nil
}

func granularity(s string) timeseries.Granularity {
	g := timeseries.Granularity(s)
	if !g.Valid() {
		return timeseries.Day
	}
	return g
}

func defaultN(n int) int {
	if n == 0 {
		return 10
	}
	return n
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(ptime.DateLayout)
}
