package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context) (Summary, error)
	Preview(ctx context.Context, in PreviewInput) (Preview, error)
	Spenders(ctx context.Context, in SpendersInput) ([]RankedRow, error)
	Repeat(ctx context.Context) ([]RepeatRow, error)
	Regions(ctx context.Context) (Regions, error)
}
