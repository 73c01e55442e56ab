// Package domain holds DTOs for revenue http and service contracts
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

// Summary is the card row at the top of the revenue page
type Summary struct {
	TotalRevenue          float64 `json:"total_revenue" example:"115736.40"`
	TotalRevenueDisplay   string  `json:"total_revenue_display" example:"€115,736.40"`
	AvgRevenuePerOrder    float64 `json:"avg_revenue_per_order" example:"86.21"`
	AvgRevenueDisplay     string  `json:"avg_revenue_display" example:"€86.21"`
	TotalRefunds          float64 `json:"total_refunds" example:"1204.99"`
	TotalRefundsDisplay   string  `json:"total_refunds_display" example:"€1,204.99"`
}

// PreviewInput filters the order table for the preview grid
type PreviewInput struct {
	Range RangeFilter `json:"range"`
}

// RevenueRow is one deduplicated order in the preview grid
type RevenueRow struct {
	OrderID       string  `json:"order_id" example:"1001"`
	CustomerName  string  `json:"customer_name" example:"Ada Lovelace"`
	TotalPrice    float64 `json:"total_price" example:"120.50"`
	RefundAmount  float64 `json:"refund_amount,omitempty" example:"0"`
	ReferringSite string  `json:"referring_site,omitempty" example:"google.com"`
	CreatedAt     string  `json:"created_at,omitempty" example:"2024-02-01T09:30:00Z"`
}

// Preview is the filtered grid plus the column bounds for date pickers
type Preview struct {
	Rows  []RevenueRow `json:"rows"`
	Total int          `json:"total" example:"1342"`
	Min   string       `json:"min,omitempty" example:"2023-06-02"`
	Max   string       `json:"max,omitempty" example:"2024-12-30"`
}

// WeekpartMoney is the weekday vs weekend revenue split with display strings
type WeekpartMoney struct {
	WeekdayTotal   float64 `json:"weekday_total" example:"82110.20"`
	WeekdayDisplay string  `json:"weekday_display" example:"€82,110.20"`
	WeekendTotal   float64 `json:"weekend_total" example:"33626.20"`
	WeekendDisplay string  `json:"weekend_display" example:"€33,626.20"`
	WeekdayPct     float64 `json:"weekday_pct" example:"70.95"`
	WeekendPct     float64 `json:"weekend_pct" example:"29.05"`
}

// MoneyRow is a labelled revenue value with its euro display form
type MoneyRow struct {
	Label   string  `json:"label" example:"Monday"`
	Value   float64 `json:"value" example:"12040.10"`
	Display string  `json:"display" example:"€12,040.10"`
}

// HourMoney is one hour of the 1..24 revenue distribution
type HourMoney struct {
	Hour    int     `json:"hour" example:"14"`
	Value   float64 `json:"value" example:"9120.55"`
	Display string  `json:"display" example:"€9,120.55"`
}

// SeriesInput selects a granularity for the revenue-over-time chart
type SeriesInput struct {
	Range       RangeFilter `json:"range"`
	Granularity string      `json:"granularity,omitempty" validate:"omitempty,oneof=day month quarter year" example:"month"`
}

// ReferrersInput ranks referring sites by revenue
type ReferrersInput struct {
	N int `json:"n,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
}

// Wire shapes shared with the core reductions
type (
	// RankedRow is one bar of a ranked chart
	RankedRow = aggregate.Row
	// SeriesPoint is one bucket of a time series
	SeriesPoint = timeseries.Point
)
