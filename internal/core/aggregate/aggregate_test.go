package aggregate

import (
	"testing"
	"time"
)

func TestTopN_MonotonicNonIncreasing(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{"a", 3}, {"b", 9}, {"c", 1}, {"d", 9}, {"e", 7}, {"f", 2}, {"g", 5},
	}
	got := TopN(rows, 5)
	if len(got) != 5 {
		t.Fatalf("TopN length = %d, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Value > got[i-1].Value {
			t.Fatalf("values must be non-increasing: %v", got)
		}
	}
	// stable: "b" appears before "d" at equal value
	if got[0].Label != "b" || got[1].Label != "d" {
		t.Fatalf("ties must keep source order, got %v", got[:2])
	}
}

func TestBottomN_MonotonicNonDecreasing(t *testing.T) {
	t.Parallel()

	rows := []Row{{"a", 3}, {"b", 9}, {"c", 1}, {"d", 7}}
	got := BottomN(rows, 2)
	if len(got) != 2 {
		t.Fatalf("BottomN length = %d, want 2", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Value < got[i-1].Value {
			t.Fatalf("values must be non-decreasing: %v", got)
		}
	}
}

func TestTopN_ClampsToAvailable(t *testing.T) {
	t.Parallel()

	rows := []Row{{"a", 1}, {"b", 2}}
	if got := TopN(rows, 50); len(got) != 2 {
		t.Fatalf("N beyond available should clamp, got %d rows", len(got))
	}
	if got := TopN(rows, 0); len(got) != 1 {
		t.Fatalf("N below one should clamp to one, got %d rows", len(got))
	}
	if got := TopN(nil, 5); len(got) != 0 {
		t.Fatalf("empty input should stay empty, got %v", got)
	}
}

func TestWeekpart_ExampleScenario(t *testing.T) {
	t.Parallel()

	// four orders on Monday, Tuesday, Saturday, Sunday
	ts := []time.Time{
		time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),  // Monday
		time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),  // Tuesday
		time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC),  // Saturday
		time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC), // Sunday
	}
	s := Weekpart(ts)
	if s.WeekdayCount != 2 || s.WeekendCount != 2 {
		t.Fatalf("split = %+v, want 2/2", s)
	}
	if s.WeekdayPct != 50 || s.WeekendPct != 50 {
		t.Fatalf("percentages = %+v, want 50/50", s)
	}
	if s.WeekdayCount+s.WeekendCount != len(ts) {
		t.Fatal("split counts must sum to the input size")
	}

	dist := ByWeekday(ts)
	want := map[string]float64{
		"Monday": 1, "Tuesday": 1, "Wednesday": 0, "Thursday": 0,
		"Friday": 0, "Saturday": 1, "Sunday": 1,
	}
	if len(dist) != 7 || dist[0].Label != "Monday" {
		t.Fatalf("distribution must be 7 rows Monday-first, got %v", dist)
	}
	for _, r := range dist {
		if r.Value != want[r.Label] {
			t.Fatalf("%s = %v, want %v", r.Label, r.Value, want[r.Label])
		}
	}
}

func TestWeekpart_EmptyInput(t *testing.T) {
	t.Parallel()

	s := Weekpart(nil)
	if s.WeekdayCount != 0 || s.WeekendCount != 0 || s.WeekdayPct != 0 || s.WeekendPct != 0 {
		t.Fatalf("empty input should be all zero, got %+v", s)
	}
}

func TestWeekpartSum_SplitsRevenue(t *testing.T) {
	t.Parallel()

	samples := []Sample{
		{At: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), Value: 30},  // Monday
		{At: time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC), Value: 10},  // Saturday
		{At: time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC), Value: 60}, // Sunday
	}
	s := WeekpartSum(samples)
	if s.WeekdayTotal != 30 || s.WeekendTotal != 70 {
		t.Fatalf("totals = %+v, want 30/70", s)
	}
	if s.WeekdayPct != 30 || s.WeekendPct != 70 {
		t.Fatalf("percentages = %+v, want 30/70", s)
	}

	dist := ByWeekdaySum(samples)
	if len(dist) != 7 || dist[0].Label != "Monday" || dist[0].Value != 30 {
		t.Fatalf("distribution = %v", dist)
	}
	if dist[5].Value != 10 || dist[6].Value != 60 {
		t.Fatalf("weekend sums = %v/%v, want 10/60", dist[5].Value, dist[6].Value)
	}
}

func TestByHourSum_RebasedSums(t *testing.T) {
	t.Parallel()

	samples := []Sample{
		{At: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), Value: 5},
		{At: time.Date(2024, 3, 5, 0, 30, 0, 0, time.UTC), Value: 7},
		{At: time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC), Value: 9},
	}
	got := ByHourSum(samples)
	if len(got) != 24 {
		t.Fatalf("hour sums = %d entries, want 24", len(got))
	}
	if got[0].Hour != 1 || got[0].Count != 12 {
		t.Fatalf("midnight bucket = %+v, want hour 1 sum 12", got[0])
	}
	if got[23].Hour != 24 || got[23].Count != 9 {
		t.Fatalf("23:00 bucket = %+v, want hour 24 sum 9", got[23])
	}
}

func TestByHour_AlwaysTwentyFourEntries(t *testing.T) {
	t.Parallel()

	for _, ts := range [][]time.Time{
		nil,
		{time.Date(2024, 3, 4, 0, 5, 0, 0, time.UTC)},  // hour 0 -> bucket 1
		{time.Date(2024, 3, 4, 23, 5, 0, 0, time.UTC)}, // hour 23 -> bucket 24
	} {
		got := ByHour(ts)
		if len(got) != 24 {
			t.Fatalf("hour distribution must have 24 entries, got %d", len(got))
		}
		if got[0].Hour != 1 || got[23].Hour != 24 {
			t.Fatalf("hours must be rebased 1..24, got %d..%d", got[0].Hour, got[23].Hour)
		}
	}

	got := ByHour([]time.Time{
		time.Date(2024, 3, 4, 0, 5, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC),
	})
	if got[0].Count != 1 || got[23].Count != 1 {
		t.Fatalf("midnight should land in bucket 1 and 23h in bucket 24, got %v", got)
	}
}

func TestPercent_GuardsZeroDenominator(t *testing.T) {
	t.Parallel()

	if got := Percent(5, 0); got != 0 {
		t.Fatalf("Percent with zero denominator = %v, want 0", got)
	}
	if got := Percent(1, 3); got != 33.33 {
		t.Fatalf("Percent(1,3) = %v, want 33.33", got)
	}
	for _, c := range []struct{ num, den float64 }{{0, 0}, {0, 7}, {3, 7}, {7, 7}} {
		got := Percent(c.num, c.den)
		if got < 0 || got > 100 {
			t.Fatalf("Percent(%v,%v) = %v, outside [0,100]", c.num, c.den, got)
		}
	}
}

func TestReductions_EmptyInputs(t *testing.T) {
	t.Parallel()

	if Sum(nil) != 0 || Mean(nil) != 0 || Max(nil) != 0 || Quantile(nil, 0.5) != 0 {
		t.Fatal("reductions over empty input must be zero")
	}
}

func TestQuantile_LinearInterpolation(t *testing.T) {
	t.Parallel()

	vs := []float64{1, 2, 3, 4}
	if got := Quantile(vs, 0.25); got != 1.75 {
		t.Fatalf("q1 = %v, want 1.75", got)
	}
	if got := Quantile(vs, 0.75); got != 3.25 {
		t.Fatalf("q3 = %v, want 3.25", got)
	}
	if got := Quantile([]float64{9}, 0.5); got != 9 {
		t.Fatalf("single point quantile = %v, want 9", got)
	}
}

func TestPriceBins_FreedmanDiaconis(t *testing.T) {
	t.Parallel()

	prices := []float64{5, 10, 15, 20, 25, 30, 35, 40}
	bins := PriceBins(prices)
	if len(bins) == 0 {
		t.Fatal("expected at least one bin")
	}

	var counted int
	for _, b := range bins {
		if b.Low < 0 {
			t.Fatalf("lower edge must not be negative: %+v", b)
		}
		counted += b.Count
	}
	if counted != len(prices) {
		t.Fatalf("bins hold %d prices, want %d", counted, len(prices))
	}
}

func TestPriceBins_DegenerateInputs(t *testing.T) {
	t.Parallel()

	if got := PriceBins(nil); got != nil {
		t.Fatalf("no prices should yield no bins, got %v", got)
	}

	uniform := PriceBins([]float64{12.5, 12.5, 12.5})
	if len(uniform) != 1 || uniform[0].Count != 3 {
		t.Fatalf("identical prices should collapse to one bin, got %v", uniform)
	}

	single := PriceBins([]float64{7})
	if len(single) != 1 || single[0].Count != 1 {
		t.Fatalf("single price should yield one bin, got %v", single)
	}
}

func TestClampN(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, avail, want int }{
		{5, 10, 5},
		{50, 3, 3},
		{0, 3, 1},
		{-2, 3, 1},
		{1, 0, 0},
	}
	for _, c := range cases {
		if got := ClampN(c.n, c.avail); got != c.want {
			t.Fatalf("ClampN(%d,%d) = %d, want %d", c.n, c.avail, got, c.want)
		}
	}
}
