// Package domain holds DTOs for product http and service contracts
package domain

import "shopdash/internal/core/aggregate"

// RangeFilter bounds a query to an inclusive UTC date interval
type RangeFilter struct {
	Start string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	End   string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-12-31"`
}

// Summary is the card row at the top of the products page
type Summary struct {
	AvgProductsPerCustomer float64 `json:"avg_products_per_customer" example:"2.31"`
	LiveProducts           int     `json:"live_products" example:"148"`
}

// PreviewInput filters the product table for the preview grid
type PreviewInput struct {
	Range RangeFilter `json:"range"`
}

// ProductRow is one catalog variant in the preview grid
type ProductRow struct {
	ProductID   string  `json:"product_id" example:"p7"`
	Title       string  `json:"title" example:"Espresso Cup"`
	Type        string  `json:"type,omitempty" example:"Kitchen"`
	Price       float64 `json:"price" example:"14.95"`
	PublishedAt string  `json:"published_at,omitempty" example:"2023-09-12T00:00:00Z"`
	CreatedAt   string  `json:"created_at,omitempty" example:"2023-09-01T00:00:00Z"`
}

// Preview is the filtered grid plus the column bounds for date pickers
type Preview struct {
	Rows  []ProductRow `json:"rows"`
	Total int          `json:"total" example:"231"`
	Min   string       `json:"min,omitempty" example:"2023-01-14"`
	Max   string       `json:"max,omitempty" example:"2024-12-30"`
}

// TypesInput ranks product types by live catalog count
type TypesInput struct {
	N int `json:"n,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
}

// SoldInput ranks products by ordered quantity
type SoldInput struct {
	N int `json:"n,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
}

// PricedInput ranks live products by variant price
type PricedInput struct {
	N     int    `json:"n,omitempty" validate:"omitempty,min=1,max=50" example:"10"`
	Order string `json:"order,omitempty" validate:"omitempty,oneof=top bottom" example:"top"`
}

// UnsoldRow is one live product that never appears on an order
type UnsoldRow struct {
	Title       string `json:"title" example:"Espresso Cup"`
	PublishedAt string `json:"published_at,omitempty" example:"2023-09-12"`
}

// Wire shapes shared with the core reductions
type (
	// RankedRow is one bar of a ranked chart
	RankedRow = aggregate.Row
	// PriceBin is one bucket of the price histogram
	PriceBin = aggregate.Bin
)
