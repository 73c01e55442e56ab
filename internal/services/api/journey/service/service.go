// Package service contains customer journey workflows
package service

import (
	"context"
	"sort"
	"time"

	"shopdash/internal/core/aggregate"
	"shopdash/internal/core/display"
	"shopdash/internal/core/timeseries"
	"shopdash/internal/dataset"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
	"shopdash/internal/services/api/journey/domain"
	"shopdash/internal/services/api/journey/repo"
)

// pageEvents are the tracked page types, in their fixed presentation order
var pageEvents = []string{"Cart", "Home", "Product", "Collection"}

const (
	cartAddEvent = "Cart Add"

	// a visit under 30 seconds of total dwell counts as a short visit; a page
	// is bounced when the visit ends on it within 10 seconds
	shortVisitCutoff  = 30.0
	bounceCutoff      = 10.0
	longestTableLimit = 10
)

// Service defines the journey service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the journey service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	reader repokit.Reader
	now    func() time.Time
}

// New constructs a journey service
func New(reader repokit.Reader, binder repokit.Binder[repo.Repo]) *Svc {
	if reader == nil {
		panic("journey.Service requires a non nil Reader")
	}
	if binder == nil {
		panic("journey.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(reader), binder: binder, reader: reader, now: time.Now}
}

// WithClock overrides the series end date source, for tests
func (s *Svc) WithClock(now func() time.Time) *Svc {
	s.now = now
	return s
}

// Summary computes the journey page cards
func (s *Svc) Summary(ctx context.Context) (domain.Summary, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return domain.Summary{}, err
	}

	maxSession := map[string]int{}
	for _, e := range events {
		if cur, ok := maxSession[e.CustomerIP]; !ok || e.Session > cur {
			maxSession[e.CustomerIP] = e.Session
		}
	}
	var repeat, totalSessions int
	for _, max := range maxSession {
		totalSessions += max
		if max >= aggregate.RepeatThreshold {
			repeat++
		}
	}

	durations := visitDurations(events)
	var totalDuration float64
	for _, d := range durations {
		totalDuration += d.seconds
	}
	var avgDuration float64
	if len(durations) > 0 {
		avgDuration = aggregate.Round2(totalDuration / float64(len(durations)))
	}
	var avgSessions float64
	if len(maxSession) > 0 {
		avgSessions = aggregate.Round2(float64(totalSessions) / float64(len(maxSession)))
	}

	return domain.Summary{
		TotalViewers:           len(maxSession),
		RepeatViewers:          repeat,
		TotalSessions:          totalSessions,
		TotalDuration:          aggregate.Round2(totalDuration),
		TotalDurationDisplay:   display.Seconds(totalDuration),
		AvgDuration:            avgDuration,
		AvgDurationDisplay:     display.Seconds(avgDuration),
		AvgSessionsPerCustomer: avgSessions,
	}, nil
}

// Preview returns date-filtered page views plus the picker bounds
func (s *Svc) Preview(ctx context.Context, in domain.PreviewInput) (domain.Preview, error) {
	w, err := ptime.ParseWindow(in.Range.Start, in.Range.End)
	if err != nil {
		return domain.Preview{}, err
	}
	events, err := s.Repo.Events(ctx, w)
	if err != nil {
		return domain.Preview{}, err
	}
	min, max, err := s.Repo.Bounds(ctx)
	if err != nil {
		return domain.Preview{}, err
	}

	rows := make([]domain.EventRow, 0, len(events))
	for _, e := range events {
		var at string
		if e.EventTime != nil {
			at = e.EventTime.UTC().Format(time.RFC3339)
		}
		rows = append(rows, domain.EventRow{
			CustomerIP:     e.CustomerIP,
			Session:        e.Session,
			Event:          e.Event,
			EventTime:      at,
			TimeOnPage:     e.TimeOnPage,
			ProductName:    e.ProductName,
			CollectionName: e.CollectionName,
			SearchTerm:     e.SearchTerm,
		})
	}
	return domain.Preview{
		Rows:  rows,
		Total: len(rows),
		Min:   fmtDate(min),
		Max:   fmtDate(max),
	}, nil
}

// SessionsWeekpart splits visits by weekday vs weekend on their first event
func (s *Svc) SessionsWeekpart(ctx context.Context) (domain.WeekpartSplit, error) {
	ts, err := s.visitTimes(ctx)
	if err != nil {
		return domain.WeekpartSplit{}, err
	}
	return aggregate.Weekpart(ts), nil
}

// SessionsWeekdays counts visits per day of week, Monday first
func (s *Svc) SessionsWeekdays(ctx context.Context) ([]domain.RankedRow, error) {
	ts, err := s.visitTimes(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ByWeekday(ts), nil
}

// SessionsHours counts visits per hour of day, rebased 1..24
func (s *Svc) SessionsHours(ctx context.Context) ([]domain.HourCount, error) {
	ts, err := s.visitTimes(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ByHour(ts), nil
}

// SessionsSeries counts distinct sessions per visitor per day, zero-filled,
// then rolls the days up to the requested granularity
func (s *Svc) SessionsSeries(ctx context.Context, in domain.SeriesInput) ([]domain.SeriesPoint, error) {
	w, err := ptime.ParseWindow(in.Range.Start, in.Range.End)
	if err != nil {
		return nil, err
	}
	events, err := s.Repo.Events(ctx, w)
	if err != nil {
		return nil, err
	}

	type dayVisit struct {
		day     string
		ip      string
		session int
	}
	seen := map[dayVisit]struct{}{}
	obs := []timeseries.Obs{}
	for _, e := range events {
		if e.EventTime == nil {
			continue
		}
		k := dayVisit{day: e.EventTime.UTC().Format(ptime.DateLayout), ip: e.CustomerIP, session: e.Session}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		obs = append(obs, timeseries.Obs{At: *e.EventTime, Value: 1})
	}

	g := timeseries.Granularity(in.Granularity)
	if !g.Valid() {
		g = timeseries.Day
	}
	return timeseries.Series(obs, s.now(), g), nil
}

// SessionsTop ranks visitors by their highest session number
func (s *Svc) SessionsTop(ctx context.Context, in domain.TopNInput) ([]domain.RankedRow, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	maxSession := map[string]int{}
	order := []string{}
	for _, e := range events {
		if _, ok := maxSession[e.CustomerIP]; !ok {
			order = append(order, e.CustomerIP)
		}
		if e.Session > maxSession[e.CustomerIP] {
			maxSession[e.CustomerIP] = e.Session
		}
	}
	rows := make([]aggregate.Row, 0, len(order))
	for _, ip := range order {
		rows = append(rows, aggregate.Row{Label: ip, Value: float64(maxSession[ip])})
	}
	return aggregate.TopN(rows, defaultN(in.N)), nil
}

// SessionsLongest lists the ten longest visits by total dwell time
func (s *Svc) SessionsLongest(ctx context.Context) ([]domain.LongestRow, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	durations := visitDurations(events)
	sort.SliceStable(durations, func(i, j int) bool { return durations[i].seconds > durations[j].seconds })
	if len(durations) > longestTableLimit {
		durations = durations[:longestTableLimit]
	}

	out := make([]domain.LongestRow, len(durations))
	for i, d := range durations {
		out[i] = domain.LongestRow{
			CustomerIP: d.ip,
			Session:    d.session,
			Seconds:    aggregate.Round2(d.seconds),
			Display:    display.Seconds(d.seconds),
			Date:       fmtDate(d.first),
		}
	}
	return out, nil
}

// ProductsViewed ranks products by unique visitors on their product page
func (s *Svc) ProductsViewed(ctx context.Context, in domain.TopNInput) ([]domain.RankedRow, error) {
	return s.uniqueViewers(ctx, "Product", func(e dataset.JourneyEvent) string { return e.ProductName }, in.N)
}

// CollectionsViewed ranks collections by unique visitors
func (s *Svc) CollectionsViewed(ctx context.Context, in domain.TopNInput) ([]domain.RankedRow, error) {
	return s.uniqueViewers(ctx, "Collection", func(e dataset.JourneyEvent) string { return e.CollectionName }, in.N)
}

// CartAdded ranks products by unique visitors who added them to the cart
func (s *Svc) CartAdded(ctx context.Context, in domain.TopNInput) ([]domain.RankedRow, error) {
	return s.uniqueViewers(ctx, cartAddEvent, func(e dataset.JourneyEvent) string { return e.ProductName }, in.N)
}

// CartTotal sums unique cart-adding visitors over all products
func (s *Svc) CartTotal(ctx context.Context) (domain.CartTotal, error) {
	rows, err := s.uniqueViewers(ctx, cartAddEvent, func(e dataset.JourneyEvent) string { return e.ProductName }, 0)
	if err != nil {
		return domain.CartTotal{}, err
	}
	var total float64
	for _, r := range rows {
		total += r.Value
	}
	return domain.CartTotal{TotalAdded: int(total)}, nil
}

// SearchTerms counts how often each term was searched, most frequent first
func (s *Svc) SearchTerms(ctx context.Context) ([]domain.RankedRow, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	counts := map[string]float64{}
	order := []string{}
	for _, e := range events {
		if e.SearchTerm == "" {
			continue
		}
		if _, ok := counts[e.SearchTerm]; !ok {
			order = append(order, e.SearchTerm)
		}
		counts[e.SearchTerm]++
	}
	rows := make([]aggregate.Row, 0, len(order))
	for _, term := range order {
		rows = append(rows, aggregate.Row{Label: term, Value: counts[term]})
	}
	return aggregate.SortDesc(rows), nil
}

// PagesTime reports average and total dwell time per tracked page type
func (s *Svc) PagesTime(ctx context.Context) ([]domain.PageTimeRow, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, e := range events {
		sums[e.Event] += e.TimeOnPage
		counts[e.Event]++
	}
	out := make([]domain.PageTimeRow, len(pageEvents))
	for i, ev := range pageEvents {
		var avg float64
		if counts[ev] > 0 {
			avg = aggregate.Round2(sums[ev] / float64(counts[ev]))
		}
		out[i] = domain.PageTimeRow{
			Event:        ev,
			AvgSeconds:   avg,
			AvgDisplay:   display.Seconds(avg),
			TotalSeconds: aggregate.Round2(sums[ev]),
			TotalDisplay: display.Seconds(sums[ev]),
		}
	}
	return out, nil
}

// PagesViewers counts unique visitors per tracked page type
func (s *Svc) PagesViewers(ctx context.Context) ([]domain.RankedRow, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	viewers := map[string]map[string]struct{}{}
	for _, e := range events {
		if viewers[e.Event] == nil {
			viewers[e.Event] = map[string]struct{}{}
		}
		viewers[e.Event][e.CustomerIP] = struct{}{}
	}
	out := make([]domain.RankedRow, len(pageEvents))
	for i, ev := range pageEvents {
		out[i] = domain.RankedRow{Label: ev, Value: float64(len(viewers[ev]))}
	}
	return out, nil
}

// ProductsTime sums dwell time per product page, longest first
func (s *Svc) ProductsTime(ctx context.Context) ([]domain.TimedRow, error) {
	return s.dwellTotals(ctx, "Product", func(e dataset.JourneyEvent) string { return e.ProductName })
}

// CollectionsTime sums dwell time per collection page, longest first
func (s *Svc) CollectionsTime(ctx context.Context) ([]domain.TimedRow, error) {
	return s.dwellTotals(ctx, "Collection", func(e dataset.JourneyEvent) string { return e.CollectionName })
}

// BounceRates computes the short-visit rate and the per-page bounce rates
//
// A short visit is a visitor whose dwell across all page views stays under 30
// seconds. A page bounces a visit when it is the visit's final event and was
// left within 10 seconds; the rate is against every visitor who saw that page.
func (s *Svc) BounceRates(ctx context.Context) (domain.Bounce, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return domain.Bounce{}, err
	}

	perIP := map[string]float64{}
	for _, e := range events {
		perIP[e.CustomerIP] += e.TimeOnPage
	}
	var short int
	for _, total := range perIP {
		if total < shortVisitCutoff {
			short++
		}
	}

	viewers := map[string]map[string]struct{}{}
	for _, e := range events {
		if viewers[e.Event] == nil {
			viewers[e.Event] = map[string]struct{}{}
		}
		viewers[e.Event][e.CustomerIP] = struct{}{}
	}
	bounced := map[string]int{}
	for _, e := range dataset.LastEvents(events) {
		if e.TimeOnPage < bounceCutoff {
			bounced[e.Event]++
		}
	}

	perPage := make([]domain.RankedRow, len(pageEvents))
	for i, ev := range pageEvents {
		perPage[i] = domain.RankedRow{
			Label: ev,
			Value: aggregate.Percent(float64(bounced[ev]), float64(len(viewers[ev]))),
		}
	}
	return domain.Bounce{
		ShortVisitPct: aggregate.Percent(float64(short), float64(len(perIP))),
		PerPage:       perPage,
	}, nil
}

type visitDuration struct {
	ip      string
	session int
	seconds float64
	first   *time.Time
}

// visitDurations sums dwell time per (Customer_IP, session) pair, keeping the
// first event time seen for each visit
func visitDurations(events []dataset.JourneyEvent) []visitDuration {
	type key struct {
		ip      string
		session int
	}
	idx := map[key]int{}
	out := []visitDuration{}
	for _, e := range events {
		k := key{ip: e.CustomerIP, session: e.Session}
		i, ok := idx[k]
		if !ok {
			idx[k] = len(out)
			out = append(out, visitDuration{ip: e.CustomerIP, session: e.Session, first: e.EventTime})
			i = len(out) - 1
		}
		out[i].seconds += e.TimeOnPage
	}
	return out
}

func (s *Svc) visitTimes(ctx context.Context) ([]time.Time, error) {
	visits, err := s.Repo.Visits(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	ts := make([]time.Time, 0, len(visits))
	for _, v := range visits {
		if v.EventTime != nil {
			ts = append(ts, *v.EventTime)
		}
	}
	return ts, nil
}

func (s *Svc) uniqueViewers(ctx context.Context, event string, label func(dataset.JourneyEvent) string, n int) ([]domain.RankedRow, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	viewers := map[string]map[string]struct{}{}
	order := []string{}
	for _, e := range events {
		if e.Event != event {
			continue
		}
		l := label(e)
		if l == "" {
			continue
		}
		if viewers[l] == nil {
			viewers[l] = map[string]struct{}{}
			order = append(order, l)
		}
		viewers[l][e.CustomerIP] = struct{}{}
	}
	rows := make([]aggregate.Row, 0, len(order))
	for _, l := range order {
		rows = append(rows, aggregate.Row{Label: l, Value: float64(len(viewers[l]))})
	}
	if n == 0 {
		return aggregate.SortDesc(rows), nil
	}
	return aggregate.TopN(rows, n), nil
}

func (s *Svc) dwellTotals(ctx context.Context, event string, label func(dataset.JourneyEvent) string) ([]domain.TimedRow, error) {
	events, err := s.Repo.Events(ctx, ptime.Window{})
	if err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	order := []string{}
	for _, e := range events {
		if e.Event != event {
			continue
		}
		l := label(e)
		if l == "" {
			continue
		}
		if _, ok := sums[l]; !ok {
			order = append(order, l)
		}
		sums[l] += e.TimeOnPage
	}
	rows := make([]aggregate.Row, 0, len(order))
	for _, l := range order {
		rows = append(rows, aggregate.Row{Label: l, Value: sums[l]})
	}
	ranked := aggregate.SortDesc(rows)

	out := make([]domain.TimedRow, len(ranked))
	for i, r := range ranked {
		out[i] = domain.TimedRow{
			Label:   r.Label,
			Seconds: aggregate.Round2(r.Value),
			Display: display.Seconds(r.Value),
		}
	}
	return out, nil
}

func defaultN(n int) int {
	if n == 0 {
		return 10
	}
	return n
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(ptime.DateLayout)
}
