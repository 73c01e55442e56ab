// Package service contains revenue workflows
package service

import (
	"context"
	"time"

	"shopdash/internal/core/aggregate"
	"shopdash/internal/core/display"
	"shopdash/internal/core/timeseries"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
	"shopdash/internal/services/api/revenue/domain"
	"shopdash/internal/services/api/revenue/repo"
)

// Service defines the revenue service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the revenue service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	reader repokit.Reader
	now    func() time.Time
}

// New constructs a revenue service
func New(reader repokit.Reader, binder repokit.Binder[repo.Repo]) *Svc {
	if reader == nil {
		panic("revenue.Service requires a non nil Reader")
	}
	if binder == nil {
		panic("revenue.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(reader), binder: binder, reader: reader, now: time.Now}
}

// WithClock overrides the series end date source, for tests
func (s *Svc) WithClock(now func() time.Time) *Svc {
	s.now = now
	return s
}

// Summary computes the revenue cards over deduplicated orders
func (s *Svc) Summary(ctx context.Context) (domain.Summary, error) {
	orders, err := s.Repo.Orders(ctx, ptime.Window{})
	if err != nil {
		return domain.Summary{}, err
	}

	var total, refunds float64
	for _, o := range orders {
		total += o.TotalPrice
		refunds += o.RefundAmount
	}
	var avg float64
	if len(orders) > 0 {
		avg = total / float64(len(orders))
	}
	total = aggregate.Round2(total)
	refunds = aggregate.Round2(refunds)
	avg = aggregate.Round2(avg)
	return domain.Summary{
		TotalRevenue:        total,
		TotalRevenueDisplay: display.Euro(total),
		AvgRevenuePerOrder:  avg,
		AvgRevenueDisplay:   display.Euro(avg),
		TotalRefunds:        refunds,
		TotalRefundsDisplay: display.Euro(refunds),
	}, nil
}

// Preview returns date-filtered orders plus the picker bounds
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

	rows := make([]domain.RevenueRow, 0, len(orders))
	for _, o := range orders {
		var created string
		if o.CreatedAt != nil {
			created = o.CreatedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, domain.RevenueRow{
			OrderID:       o.OrderID,
			CustomerName:  o.CustomerName,
			TotalPrice:    o.TotalPrice,
			RefundAmount:  o.RefundAmount,
			ReferringSite: o.ReferringSite,
			CreatedAt:     created,
		})
	}
	return domain.Preview{
		Rows:  rows,
		Total: len(rows),
		Min:   fmtDate(min),
		Max:   fmtDate(max),
	}, nil
}

// Weekpart splits revenue sums by weekday vs weekend
func (s *Svc) Weekpart(ctx context.Context) (domain.WeekpartMoney, error) {
	samples, err := s.samples(ctx)
	if err != nil {
		return domain.WeekpartMoney{}, err
	}
	split := aggregate.WeekpartSum(samples)
	return domain.WeekpartMoney{
		WeekdayTotal:   split.WeekdayTotal,
		WeekdayDisplay: display.Euro(split.WeekdayTotal),
		WeekendTotal:   split.WeekendTotal,
		WeekendDisplay: display.Euro(split.WeekendTotal),
		WeekdayPct:     split.WeekdayPct,
		WeekendPct:     split.WeekendPct,
	}, nil
}

// Weekdays sums revenue per day of week, Monday first
func (s *Svc) Weekdays(ctx context.Context) ([]domain.MoneyRow, error) {
	samples, err := s.samples(ctx)
	if err != nil {
		return nil, err
	}
	rows := aggregate.ByWeekdaySum(samples)
	out := make([]domain.MoneyRow, len(rows))
	for i, r := range rows {
		out[i] = domain.MoneyRow{Label: r.Label, Value: r.Value, Display: display.Euro(r.Value)}
	}
	return out, nil
}

// Hours sums revenue per hour of day, rebased 1..24
func (s *Svc) Hours(ctx context.Context) ([]domain.HourMoney, error) {
	samples, err := s.samples(ctx)
	if err != nil {
		return nil, err
	}
	sums := aggregate.ByHourSum(samples)
	out := make([]domain.HourMoney, len(sums))
	for i, h := range sums {
		out[i] = domain.HourMoney{Hour: h.Hour, Value: h.Count, Display: display.Euro(h.Count)}
	}
	return out, nil
}

// Series sums revenue per bucket with zero-filled days underneath
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
			obs = append(obs, timeseries.Obs{At: *o.CreatedAt, Value: o.TotalPrice})
		}
	}
	g := timeseries.Granularity(in.Granularity)
	if !g.Valid() {
		g = timeseries.Day
	}
	return timeseries.Series(obs, s.now(), g), nil
}

// Referrers sums revenue per referring site, missing site bucketed as Unknown
func (s *Svc) Referrers(ctx context.Context, in domain.ReferrersInput) ([]domain.MoneyRow, error) {
	orders, err := s.Repo.Orders(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	order := []string{}
	for _, o := range orders {
		site := o.ReferringSite
		if site == "" {
			site = "Unknown"
		}
		if _, ok := sums[site]; !ok {
			order = append(order, site)
		}
		sums[site] += o.TotalPrice
	}
	ranked := make([]aggregate.Row, 0, len(order))
	for _, site := range order {
		ranked = append(ranked, aggregate.Row{Label: site, Value: aggregate.Round2(sums[site])})
	}
	n := in.N
	if n == 0 {
		n = 10
	}
	top := aggregate.TopN(ranked, n)
	out := make([]domain.MoneyRow, len(top))
	for i, r := range top {
		out[i] = domain.MoneyRow{Label: r.Label, Value: r.Value, Display: display.Euro(r.Value)}
	}
	return out, nil
}

func (s *Svc) samples(ctx context.Context) ([]aggregate.Sample, error) {
	orders, err := s.Repo.Orders(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	out := make([]aggregate.Sample, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt != nil {
			out = append(out, aggregate.Sample{At: *o.CreatedAt, Value: o.TotalPrice})
		}
	}
	return out, nil
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(ptime.DateLayout)
}
