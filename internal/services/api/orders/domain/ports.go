package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context) (Summary, error)
	Preview(ctx context.Context, in PreviewInput) (Preview, error)
	Weekpart(ctx context.Context) (WeekpartSplit, error)
	Weekdays(ctx context.Context) ([]RankedRow, error)
	Hours(ctx context.Context) ([]HourCount, error)
	Series(ctx context.Context, in SeriesInput) ([]SeriesPoint, error)
	Valued(ctx context.Context, in ValuedInput) ([]RankedRow, error)
	Referrers(ctx context.Context, in ReferrersInput) ([]RankedRow, error)
}
