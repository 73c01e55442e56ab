// Package aggregate holds the one-shot reductions behind the dashboard cards
// and ranked charts: top-N selection, weekday/weekend and hour splits, guarded
// ratios and Freedman-Diaconis price binning
//
// Every reduction treats an empty input as a valid zero result
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// RepeatThreshold marks an entity as repeat when it has this many or more
// associated orders or sessions; fixed business rule, not configurable
const RepeatThreshold = 2

// Row is a labelled ranking value, one bar of a ranked chart
type Row struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ClampN bounds an interactive top-N request to [1, available]
func ClampN(n, available int) int {
	if n < 1 {
		n = 1
	}
	if n > available {
		n = available
	}
	return n
}

// TopN returns the n largest rows by value, ties broken by source order
func TopN(rows []Row, n int) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out[:ClampN(n, len(out))]
}

// BottomN returns the n smallest rows by value, ties broken by source order
func BottomN(rows []Row, n int) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out[:ClampN(n, len(out))]
}

// SortDesc orders rows largest first, stable
func SortDesc(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// IsWeekend reports Saturday or Sunday for a UTC timestamp
func IsWeekend(t time.Time) bool {
	// Monday=0 .. Sunday=6
	return (int(t.UTC().Weekday())+6)%7 >= 5
}

// WeekpartSplit is the weekday-vs-weekend breakdown of a set of timestamps
type WeekpartSplit struct {
	WeekdayCount int     `json:"weekday_count"`
	WeekendCount int     `json:"weekend_count"`
	WeekdayPct   float64 `json:"weekday_pct"`
	WeekendPct   float64 `json:"weekend_pct"`
}

// Weekpart splits timestamps by weekday vs weekend
// counts always sum to len(ts); an empty input reports zero percentages
func Weekpart(ts []time.Time) WeekpartSplit {
	var s WeekpartSplit
	for _, t := range ts {
		if IsWeekend(t) {
			s.WeekendCount++
		} else {
			s.WeekdayCount++
		}
	}
	total := float64(s.WeekdayCount + s.WeekendCount)
	s.WeekdayPct = Percent(float64(s.WeekdayCount), total)
	s.WeekendPct = Percent(float64(s.WeekendCount), total)
	return s
}

// Sample pairs a timestamp with a value for weighted splits
type Sample struct {
	At    time.Time
	Value float64
}

// WeightedWeekpart is the weekday-vs-weekend breakdown of summed values
type WeightedWeekpart struct {
	WeekdayTotal float64 `json:"weekday_total"`
	WeekendTotal float64 `json:"weekend_total"`
	WeekdayPct   float64 `json:"weekday_pct"`
	WeekendPct   float64 `json:"weekend_pct"`
}

// WeekpartSum splits summed sample values by weekday vs weekend
func WeekpartSum(samples []Sample) WeightedWeekpart {
	var s WeightedWeekpart
	for _, v := range samples {
		if IsWeekend(v.At) {
			s.WeekendTotal += v.Value
		} else {
			s.WeekdayTotal += v.Value
		}
	}
	total := s.WeekdayTotal + s.WeekendTotal
	s.WeekdayTotal = Round2(s.WeekdayTotal)
	s.WeekendTotal = Round2(s.WeekendTotal)
	s.WeekdayPct = Percent(s.WeekdayTotal, total)
	s.WeekendPct = Percent(s.WeekendTotal, total)
	return s
}

// weekdays in the fixed Monday-first presentation order
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ByWeekday counts timestamps per day of week
// always 7 rows, Monday first, zero-filled
func ByWeekday(ts []time.Time) []Row {
	counts := make([]float64, 7)
	for _, t := range ts {
		counts[(int(t.UTC().Weekday())+6)%7]++
	}
	out := make([]Row, 7)
	for i, name := range weekdayNames {
		out[i] = Row{Label: name, Value: counts[i]}
	}
	return out
}

// ByWeekdaySum sums sample values per day of week
// always 7 rows, Monday first, zero-filled
func ByWeekdaySum(samples []Sample) []Row {
	sums := make([]float64, 7)
	for _, v := range samples {
		sums[(int(v.At.UTC().Weekday())+6)%7] += v.Value
	}
	out := make([]Row, 7)
	for i, name := range weekdayNames {
		out[i] = Row{Label: name, Value: Round2(sums[i])}
	}
	return out
}

// HourCount is one hour of the rebased hour-of-day distribution
type HourCount struct {
	Hour  int     `json:"hour"`
	Count float64 `json:"count"`
}

// ByHour counts timestamps per hour of day, rebased to 1..24
// always 24 rows regardless of input
func ByHour(ts []time.Time) []HourCount {
	counts := make([]float64, 24)
	for _, t := range ts {
		counts[t.UTC().Hour()]++
	}
	out := make([]HourCount, 24)
	for i := range counts {
		out[i] = HourCount{Hour: i + 1, Count: counts[i]}
	}
	return out
}

// ByHourSum sums sample values per hour of day, rebased to 1..24
// always 24 rows regardless of input
func ByHourSum(samples []Sample) []HourCount {
	sums := make([]float64, 24)
	for _, v := range samples {
		sums[v.At.UTC().Hour()] += v.Value
	}
	out := make([]HourCount, 24)
	for i := range sums {
		out[i] = HourCount{Hour: i + 1, Count: Round2(sums[i])}
	}
	return out
}

// Round2 rounds to two decimals, the display precision of every card
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percent is num/den as a percentage rounded to 2 decimals, 0 when den is 0
func Percent(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return Round2(num / den * 100)
}

// Sum adds values, 0 on empty
func Sum(vs []float64) float64 {
	var s float64
	for _, v := range vs {
		s += v
	}
	return s
}

// Mean averages values, 0 on empty
func Mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	return Sum(vs) / float64(len(vs))
}

// Max returns the largest value, 0 on empty
func Max(vs []float64) float64 {
	var m float64
	for i, v := range vs {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Quantile interpolates the q-th quantile (0..1) linearly between order
// statistics, matching the dataframe convention the bins were tuned against
func Quantile(vs []float64, q float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	s := make([]float64, len(vs))
	copy(s, vs)
	sort.Float64s(s)

	pos := q * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return s[lo]
	}
	frac := pos - float64(lo)
	return s[lo] + (s[hi]-s[lo])*frac
}

// Bin is one bucket of a price histogram
type Bin struct {
	Label string  `json:"label"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// PriceBins buckets prices into a histogram whose width follows the
// Freedman-Diaconis rule, 2*IQR/n^(1/3), falling back to range/5 when the IQR
// is zero or there is at most one point; lower bounds never go negative
func PriceBins(prices []float64) []Bin {
	if len(prices) == 0 {
		return nil
	}

	min, max := prices[0], prices[0]
	for _, p := range prices {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	span := max - min
	if span == 0 {
		// all prices identical: one bucket holds everything
		low := math.Max(0, Round2(min))
		return []Bin{{
			Label: fmt.Sprintf("%v - %v", low, Round2(max)),
			Low:   low,
			High:  Round2(max),
			Count: len(prices),
		}}
	}

	iqr := Quantile(prices, 0.75) - Quantile(prices, 0.25)
	n := float64(len(prices))

	var width float64
	if iqr > 0 && n > 1 {
		width = 2 * iqr / math.Cbrt(n)
	} else {
		width = span / 5
	}

	bins := int(span / width)
	if bins < 1 {
		bins = 1
	}
	step := span / float64(bins)

	out := make([]Bin, bins)
	for i := range out {
		low := min + float64(i)*step
		high := low + step
		out[i] = Bin{
			Low:  math.Max(0, Round2(low)),
			High: Round2(high),
		}
		out[i].Label = fmt.Sprintf("%v - %v", out[i].Low, out[i].High)
	}
	for _, p := range prices {
		i := int((p - min) / step)
		if i >= bins { // max lands in the last bucket
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}
