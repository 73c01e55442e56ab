package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context) (Summary, error)
	Preview(ctx context.Context, in PreviewInput) (Preview, error)
	Types(ctx context.Context, in TypesInput) ([]RankedRow, error)
	Sold(ctx context.Context, in SoldInput) ([]RankedRow, error)
	Priced(ctx context.Context, in PricedInput) ([]RankedRow, error)
	Unsold(ctx context.Context) ([]UnsoldRow, error)
	PriceBins(ctx context.Context) ([]PriceBin, error)
}
