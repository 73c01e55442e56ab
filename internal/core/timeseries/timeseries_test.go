package timeseries

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaily_ZeroFillsEveryDateThroughToday(t *testing.T) {
	t.Parallel()

	obs := []Obs{
		{At: time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC), Value: 2},
		{At: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Value: 1},
	}
	now := day(2024, 3, 6)

	got := Daily(obs, now)
	if len(got) != 6 {
		t.Fatalf("daily series has %d rows, want 6 (2024-03-01..06)", len(got))
	}
	for i, p := range got {
		want := day(2024, 3, 1).AddDate(0, 0, i)
		if !p.Date.Equal(want) {
			t.Fatalf("row %d date = %v, want %v (no gaps allowed)", i, p.Date, want)
		}
	}
	if got[0].Value != 2 || got[3].Value != 1 {
		t.Fatalf("observed days wrong: %v", got)
	}
	for _, i := range []int{1, 2, 4, 5} {
		if got[i].Value != 0 {
			t.Fatalf("day %d should be zero-filled, got %v", i, got[i].Value)
		}
	}
}

func TestDaily_EmptyInputIsEmptySeries(t *testing.T) {
	t.Parallel()

	if got := Daily(nil, day(2024, 3, 6)); len(got) != 0 {
		t.Fatalf("empty input should yield empty series, got %v", got)
	}
}

func TestDaily_ConservesTotals(t *testing.T) {
	t.Parallel()

	obs := []Obs{
		{At: day(2024, 1, 10), Value: 10},
		{At: day(2024, 1, 10), Value: 5},
		{At: day(2024, 2, 29), Value: 7},
		{At: day(2023, 12, 31), Value: 3},
	}
	now := day(2024, 3, 15)

	var raw float64
	for _, o := range obs {
		raw += o.Value
	}
	var bucketed float64
	for _, p := range Daily(obs, now) {
		bucketed += p.Value
	}
	if raw != bucketed {
		t.Fatalf("re-bucketing changed the total: raw=%v daily=%v", raw, bucketed)
	}
}

func TestRollups_AssociativeWithDirectBucketing(t *testing.T) {
	t.Parallel()

	obs := []Obs{
		{At: day(2023, 11, 2), Value: 1},
		{At: day(2023, 12, 30), Value: 4},
		{At: day(2024, 1, 1), Value: 2},
		{At: day(2024, 1, 31), Value: 2},
		{At: day(2024, 4, 10), Value: 6},
	}
	now := day(2024, 5, 1)
	daily := Daily(obs, now)

	// direct per-granularity sums from raw observations
	direct := func(label func(time.Time) string) map[string]float64 {
		m := map[string]float64{}
		for _, o := range obs {
			m[label(o.At.UTC())] += o.Value
		}
		return m
	}

	months := direct(func(d time.Time) string { return d.Format("2006-01") })
	for _, p := range Monthly(daily) {
		if p.Value != months[p.Label] {
			t.Fatalf("month %s: rollup=%v direct=%v", p.Label, p.Value, months[p.Label])
		}
	}

	years := direct(func(d time.Time) string { return d.Format("2006") })
	for _, p := range Yearly(daily) {
		if p.Value != years[p.Label] {
			t.Fatalf("year %s: rollup=%v direct=%v", p.Label, p.Value, years[p.Label])
		}
	}
}

func TestRollups_ChronologicalOrder(t *testing.T) {
	t.Parallel()

	// spans a year boundary so lexicographic vs first-seen ordering differ
	obs := []Obs{
		{At: day(2024, 2, 1), Value: 1},
		{At: day(2023, 10, 1), Value: 1},
	}
	now := day(2024, 4, 2)
	daily := Daily(obs, now)

	months := Monthly(daily)
	for i := 1; i < len(months); i++ {
		if months[i-1].Label >= months[i].Label {
			t.Fatalf("months out of order: %q before %q", months[i-1].Label, months[i].Label)
		}
	}
	if months[0].Label != "2023-10" {
		t.Fatalf("first month = %q, want 2023-10", months[0].Label)
	}

	quarters := Quarterly(daily)
	wantQ := []string{"2023-Q4", "2024-Q1", "2024-Q2"}
	if len(quarters) != len(wantQ) {
		t.Fatalf("quarters = %v, want labels %v", quarters, wantQ)
	}
	for i, q := range quarters {
		if q.Label != wantQ[i] {
			t.Fatalf("quarter %d = %q, want %q", i, q.Label, wantQ[i])
		}
	}
}

func TestQuarterly_LabelFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Time
		want string
	}{
		{day(2024, 1, 15), "2024-Q1"},
		{day(2024, 3, 31), "2024-Q1"},
		{day(2024, 4, 1), "2024-Q2"},
		{day(2024, 9, 30), "2024-Q3"},
		{day(2024, 12, 31), "2024-Q4"},
	}
	for _, tc := range cases {
		got := Quarterly([]DayPoint{{Date: tc.in, Value: 1}})
		if len(got) != 1 || got[0].Label != tc.want {
			t.Fatalf("Quarterly(%v) = %v, want label %q", tc.in, got, tc.want)
		}
	}
}

func TestSeries_GranularitySwitch(t *testing.T) {
	t.Parallel()

	obs := []Obs{{At: day(2024, 3, 1), Value: 1}}
	now := day(2024, 3, 3)

	if got := Series(obs, now, Day); len(got) != 3 || got[0].Label != "2024-03-01" {
		t.Fatalf("day series = %v", got)
	}
	if got := Series(obs, now, Month); len(got) != 1 || got[0].Label != "2024-03" {
		t.Fatalf("month series = %v", got)
	}
	if got := Series(obs, now, Quarter); len(got) != 1 || got[0].Label != "2024-Q1" {
		t.Fatalf("quarter series = %v", got)
	}
	if got := Series(obs, now, Year); len(got) != 1 || got[0].Label != "2024" {
		t.Fatalf("year series = %v", got)
	}
}

func TestGranularity_Valid(t *testing.T) {
	t.Parallel()

	for _, g := range []Granularity{Day, Month, Quarter, Year} {
		if !g.Valid() {
			t.Fatalf("%q should be valid", g)
		}
	}
	if Granularity("week").Valid() {
		t.Fatal("week is not a supported granularity")
	}
}
