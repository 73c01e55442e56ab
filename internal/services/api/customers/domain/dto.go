// Package domain holds DTOs for customer http and service contracts
package domain

import "shopdash/internal/core/aggregate"

// RangeFilter bounds a query to an inclusive UTC date interval
type RangeFilter struct {
	Start string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	End   string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-12-31"`
}

// Summary is the card row at the top of the customers page
type Summary struct {
	ListedCustomers int `json:"listed_customers" example:"892"`
	PayingCustomers int `json:"paying_customers" example:"774"`
	RepeatCustomers int `json:"repeat_customers" example:"213"`
}

// PreviewInput filters the customer table for the preview grid
type PreviewInput struct {
	Range RangeFilter `json:"range"`
}

// CustomerRow is one customer in the preview grid
type CustomerRow struct {
	CustomerID string `json:"customer_id" example:"c42"`
	Name       string `json:"name" example:"Ada Lovelace"`
	Province   string `json:"province,omitempty" example:"Utrecht"`
	Country    string `json:"country,omitempty" example:"Netherlands"`
	CreatedAt  string `json:"created_at,omitempty" example:"2023-11-02T08:00:00Z"`
}

// Preview is the filtered grid plus the column bounds for date pickers
type Preview struct {
	Rows  []CustomerRow `json:"rows"`
	Total int           `json:"total" example:"892"`
	Min   string        `json:"min,omitempty" example:"2023-01-14"`
	Max   string        `json:"max,omitempty" example:"2024-12-30"`
}

// SpendersInput ranks customer names by summed order total
type SpendersInput struct {
	N     int    `json:"n,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
	Order string `json:"order,omitempty" validate:"omitempty,oneof=top bottom" example:"top"`
}

// RepeatRow is one repeat customer in the summary table
type RepeatRow struct {
	Name            string  `json:"name" example:"Ada Lovelace"`
	OrdersPlaced    int     `json:"orders_placed" example:"4"`
	TotalSpending   float64 `json:"total_spending" example:"402.10"`
	SpendingDisplay string  `json:"spending_display" example:"€402.10"`
}

// Regions is the unique-customer geography breakdown
type Regions struct {
	Provinces []RankedRow `json:"provinces"`
	Countries []RankedRow `json:"countries"`
}

// RankedRow is one bar of a ranked chart
type RankedRow = aggregate.Row
