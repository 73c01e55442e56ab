// Package domain holds DTOs for customer journey http and service contracts
package domain

import (
	"shopdash/internal/core/aggregate"
	"shopdash/internal/core/timeseries"
)

// RangeFilter bounds a query to an inclusive UTC date interval
type RangeFilter struct {
	Start string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	End   string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-12-31"`
}

// Summary is the card row at the top of the journey page
type Summary struct {
	TotalViewers           int     `json:"total_viewers" example:"3120"`
	RepeatViewers          int     `json:"repeat_viewers" example:"411"`
	TotalSessions          int     `json:"total_sessions" example:"4150"`
	TotalDuration          float64 `json:"total_duration" example:"1922400"`
	TotalDurationDisplay   string  `json:"total_duration_display" example:"534 hr 0 min"`
	AvgDuration            float64 `json:"avg_duration" example:"463.23"`
	AvgDurationDisplay     string  `json:"avg_duration_display" example:"0 hr 7 min"`
	AvgSessionsPerCustomer float64 `json:"avg_sessions_per_customer" example:"1.33"`
}

// PreviewInput filters the journey table for the preview grid
type PreviewInput struct {
	Range RangeFilter `json:"range"`
}

// EventRow is one page view in the preview grid
type EventRow struct {
	CustomerIP     string  `json:"customer_ip" example:"10.1.2.3"`
	Session        int     `json:"session" example:"2"`
	Event          string  `json:"event" example:"Product"`
	EventTime      string  `json:"event_time,omitempty" example:"2024-02-01T09:30:00Z"`
	TimeOnPage     float64 `json:"time_on_page" example:"42.5"`
	ProductName    string  `json:"product_name,omitempty" example:"Espresso Cup"`
	CollectionName string  `json:"collection_name,omitempty" example:"Kitchen"`
	SearchTerm     string  `json:"search_term,omitempty" example:"mug"`
}

// Preview is the filtered grid plus the column bounds for date pickers
type Preview struct {
	Rows  []EventRow `json:"rows"`
	Total int        `json:"total" example:"50210"`
	Min   string     `json:"min,omitempty" example:"2023-06-02"`
	Max   string     `json:"max,omitempty" example:"2024-12-30"`
}

// SeriesInput selects a granularity for the sessions-over-time chart
type SeriesInput struct {
	Range       RangeFilter `json:"range"`
	Granularity string      `json:"granularity,omitempty" validate:"omitempty,oneof=day month quarter year" example:"month"`
}

// TopNInput bounds a ranked chart
type TopNInput struct {
	N int `json:"n,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
}

// LongestRow is one visit in the longest-sessions table
type LongestRow struct {
	CustomerIP string  `json:"customer_ip" example:"10.1.2.3"`
	Session    int     `json:"session" example:"2"`
	Seconds    float64 `json:"seconds" example:"3912"`
	Display    string  `json:"display" example:"1 hr 5 min"`
	Date       string  `json:"date,omitempty" example:"2024-02-01"`
}

// TimedRow is a labelled duration with its display form
type TimedRow struct {
	Label   string  `json:"label" example:"Product"`
	Seconds float64 `json:"seconds" example:"84210"`
	Display string  `json:"display" example:"23 hr 23 min"`
}

// PageTimeRow is the per-page-type dwell time breakdown
type PageTimeRow struct {
	Event        string  `json:"event" example:"Product"`
	AvgSeconds   float64 `json:"avg_seconds" example:"46.2"`
	AvgDisplay   string  `json:"avg_display" example:"0 hr 0 min"`
	TotalSeconds float64 `json:"total_seconds" example:"84210"`
	TotalDisplay string  `json:"total_display" example:"23 hr 23 min"`
}

// CartTotal is the overall cart-add volume
type CartTotal struct {
	TotalAdded int `json:"total_added" example:"612"`
}

// Bounce carries the short-visit rate and the per-page bounce rates
type Bounce struct {
	ShortVisitPct float64     `json:"short_visit_pct" example:"12.41"`
	PerPage       []RankedRow `json:"per_page"`
}

// Wire shapes shared with the core reductions
type (
	// RankedRow is one bar of a ranked chart
	RankedRow = aggregate.Row
	// WeekpartSplit is the weekday vs weekend breakdown
	WeekpartSplit = aggregate.WeekpartSplit
	// HourCount is one hour of the 1..24 distribution
	HourCount = aggregate.HourCount
	// SeriesPoint is one bucket of a time series
	SeriesPoint = timeseries.Point
)
