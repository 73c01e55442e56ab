// Package domain holds DTOs for abandoned checkout http and service contracts
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

// Summary is the card row at the top of the abandoned checkouts page
type Summary struct {
	TotalAbandoned          int     `json:"total_abandoned" example:"219"`
	AvgAbandonedPerCustomer float64 `json:"avg_abandoned_per_customer" example:"1.24"`
	MostAbandonedByCustomer int     `json:"most_abandoned_by_customer" example:"6"`
}

// PreviewInput filters the checkout table for the preview grid
type PreviewInput struct {
	Range RangeFilter `json:"range"`
}

// CheckoutRow is one deduplicated abandoned checkout in the preview grid
type CheckoutRow struct {
	OrderID       string `json:"order_id" example:"9001"`
	CustomerID    string `json:"customer_id" example:"c42"`
	ReferringSite string `json:"referring_site,omitempty" example:"bing.com"`
	CreatedAt     string `json:"created_at,omitempty" example:"2024-02-02T11:00:00Z"`
}

// Preview is the filtered grid plus the column bounds for date pickers
type Preview struct {
	Rows  []CheckoutRow `json:"rows"`
	Total int           `json:"total" example:"219"`
	Min   string        `json:"min,omitempty" example:"2023-06-02"`
	Max   string        `json:"max,omitempty" example:"2024-12-30"`
}

// SeriesInput selects a granularity for the abandonments-over-time chart
type SeriesInput struct {
	Range       RangeFilter `json:"range"`
	Granularity string      `json:"granularity,omitempty" validate:"omitempty,oneof=day month quarter year" example:"month"`
}

// ReferrersInput ranks referring sites by abandoned order count
type ReferrersInput struct {
	N int `json:"n,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
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
