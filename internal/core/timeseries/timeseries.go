// Package timeseries turns timestamped observations into zero-filled calendar
// series at day, month, quarter and year granularity
//
// The daily series is the source of truth: it always spans every date from the
// earliest observation through today with explicit zeros, and the coarser
// granularities are rollups of that series. Rolling up without the zero fill
// would silently drop inactive days from day charts and undercount partial
// months, so callers should never bucket raw observations directly
package timeseries

import (
	"fmt"
	"sort"
	"time"
)

// Granularity selects a rollup of the daily series
type Granularity string

const (
	Day     Granularity = "day"
	Month   Granularity = "month"
	Quarter Granularity = "quarter"
	Year    Granularity = "year"
)

// Valid reports whether g is one of the four supported granularities
func (g Granularity) Valid() bool {
	switch g {
	case Day, Month, Quarter, Year:
		return true
	}
	return false
}

// Obs is a single timestamped observation
// counting passes Value 1, summing passes the measured quantity
type Obs struct {
	At    time.Time
	Value float64
}

// DayPoint is one calendar date of the zero-filled daily series
type DayPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Point is one labelled bucket of a rollup series
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Count wraps bare timestamps as unit observations
func Count(ts []time.Time) []Obs {
	obs := make([]Obs, 0, len(ts))
	for _, t := range ts {
		obs = append(obs, Obs{At: t, Value: 1})
	}
	return obs
}

func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Daily groups observations by UTC calendar date and reindexes the result over
// the contiguous range [earliest observed date, today], filling gaps with zero
// an input with no observations yields an empty series
func Daily(obs []Obs, now time.Time) []DayPoint {
	if len(obs) == 0 {
		return nil
	}

	byDay := make(map[time.Time]float64, len(obs))
	var min time.Time
	for i, o := range obs {
		d := dateOf(o.At)
		byDay[d] += o.Value
		if i == 0 || d.Before(min) {
			min = d
		}
	}

	end := dateOf(now)
	if end.Before(min) {
		end = min
	}

	n := int(end.Sub(min).Hours()/24) + 1
	out := make([]DayPoint, 0, n)
	for d := min; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, DayPoint{Date: d, Value: byDay[d]})
	}
	return out
}

// Monthly rolls the daily series up by calendar month, labels "YYYY-MM",
// sorted chronologically
func Monthly(daily []DayPoint) []Point {
	return rollup(daily, func(d time.Time) string {
		return d.Format("2006-01")
	})
}

// Quarterly rolls the daily series up by calendar quarter, labels "YYYY-Qn",
// sorted chronologically
func Quarterly(daily []DayPoint) []Point {
	return rollup(daily, func(d time.Time) string {
		return fmt.Sprintf("%04d-Q%d", d.Year(), (int(d.Month())-1)/3+1)
	})
}

// Yearly rolls the daily series up by calendar year, labels "YYYY"
func Yearly(daily []DayPoint) []Point {
	return rollup(daily, func(d time.Time) string {
		return fmt.Sprintf("%04d", d.Year())
	})
}

// rollup sums daily values per label; label formats here sort
// lexicographically in chronological order
func rollup(daily []DayPoint, label func(time.Time) string) []Point {
	if len(daily) == 0 {
		return nil
	}
	sums := make(map[string]float64, len(daily)/28+1)
	labels := make([]string, 0, len(daily)/28+1)
	for _, p := range daily {
		l := label(p.Date)
		if _, ok := sums[l]; !ok {
			labels = append(labels, l)
		}
		sums[l] += p.Value
	}
	sort.Strings(labels)
	out := make([]Point, 0, len(labels))
	for _, l := range labels {
		out = append(out, Point{Label: l, Value: sums[l]})
	}
	return out
}

// Series produces the requested granularity in one call
// Day returns day labels "YYYY-MM-DD" for a uniform wire shape
func Series(obs []Obs, now time.Time, g Granularity) []Point {
	daily := Daily(obs, now)
	switch g {
	case Month:
		return Monthly(daily)
	case Quarter:
		return Quarterly(daily)
	case Year:
		return Yearly(daily)
	default:
		out := make([]Point, 0, len(daily))
		for _, p := range daily {
			out = append(out, Point{Label: p.Date.Format("2006-01-02"), Value: p.Value})
		}
		return out
	}
}
