// Package domain holds DTOs for orders http and service contracts
package domain

import (
	"shopdash/internal/core/aggregate"
	"shopdash/internal/core/timeseries"
)

// RangeFilter bounds a query to an inclusive UTC date interval
// empty bounds leave the range open on that side
type RangeFilter struct {
	Start string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	End   string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-12-31"`
}

// Summary is the card row at the top of the orders page
type Summary struct {
	TotalOrders          int     `json:"total_orders" example:"1342"`
	AvgOrdersPerCustomer float64 `json:"avg_orders_per_customer" example:"1.73"`
	CancelledOrders      int     `json:"cancelled_orders" example:"12"`
	MostOrdersByCustomer int     `json:"most_orders_by_customer" example:"9"`
	AvgOrderValue        float64 `json:"avg_order_value" example:"86.21"`
	AvgOrderValueDisplay string  `json:"avg_order_value_display" example:"€86.21"`
}

// PreviewInput filters the order table for the preview grid
type PreviewInput struct {
	Range RangeFilter `json:"range"`
}

// OrderRow is one deduplicated order in the preview grid
type OrderRow struct {
	OrderID       string  `json:"order_id" example:"1001"`
	CustomerID    string  `json:"customer_id" example:"c42"`
	CustomerName  string  `json:"customer_name" example:"Ada Lovelace"`
	TotalPrice    float64 `json:"total_price" example:"120.50"`
	ReferringSite string  `json:"referring_site,omitempty" example:"google.com"`
	CreatedAt     string  `json:"created_at,omitempty" example:"2024-02-01T09:30:00Z"`
	CancelledAt   string  `json:"cancelled_at,omitempty"`
}

// Preview is the filtered grid plus the column bounds for date pickers
type Preview struct {
	Rows  []OrderRow `json:"rows"`
	Total int        `json:"total" example:"1342"`
	Min   string     `json:"min,omitempty" example:"2023-06-02"`
	Max   string     `json:"max,omitempty" example:"2024-12-30"`
}

// SeriesInput selects a granularity for the orders-over-time chart
type SeriesInput struct {
	Range       RangeFilter `json:"range"`
	Granularity string      `json:"granularity,omitempty" validate:"omitempty,oneof=day month quarter year" example:"month"`
}

// ValuedInput ranks orders by total price
type ValuedInput struct {
	N     int    `json:"n,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
	Order string `json:"order,omitempty" validate:"omitempty,oneof=top bottom" example:"top"`
}

// ReferrersInput ranks referring sites by order count
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
