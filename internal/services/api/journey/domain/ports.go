package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context) (Summary, error)
	Preview(ctx context.Context, in PreviewInput) (Preview, error)

	SessionsWeekpart(ctx context.Context) (WeekpartSplit, error)
	SessionsWeekdays(ctx context.Context) ([]RankedRow, error)
	SessionsHours(ctx context.Context) ([]HourCount, error)
	SessionsSeries(ctx context.Context, in SeriesInput) ([]SeriesPoint, error)
	SessionsTop(ctx context.Context, in TopNInput) ([]RankedRow, error)
	SessionsLongest(ctx context.Context) ([]LongestRow, error)

	ProductsViewed(ctx context.Context, in TopNInput) ([]RankedRow, error)
	CollectionsViewed(ctx context.Context, in TopNInput) ([]RankedRow, error)
	CartAdded(ctx context.Context, in TopNInput) ([]RankedRow, error)
	CartTotal(ctx context.Context) (CartTotal, error)
	SearchTerms(ctx context.Context) ([]RankedRow, error)

	PagesTime(ctx context.Context) ([]PageTimeRow, error)
	PagesViewers(ctx context.Context) ([]RankedRow, error)
	ProductsTime(ctx context.Context) ([]TimedRow, error)
	CollectionsTime(ctx context.Context) ([]TimedRow, error)
	BounceRates(ctx context.Context) (Bounce, error)
}
