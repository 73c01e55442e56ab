package service

import (
	"context"
	"testing"
	"time"

	"shopdash/internal/dataset"
	errs "shopdash/internal/platform/errors"
	"shopdash/internal/services/api/orders/domain"
	"shopdash/internal/services/api/orders/repo"
)

type fakeReader struct{ snap *dataset.Snapshot }

func (f *fakeReader) Snapshot() *dataset.Snapshot { return f.snap }

func ts(y int, m time.Month, d, hh int) *time.Time {
	t := time.Date(y, m, d, hh, 0, 0, 0, time.UTC)
	return &t
}

func snapWith(orders []dataset.OrderLine) *dataset.Snapshot {
	return &dataset.Snapshot{
		Orders: orders,
		Tables: map[string]dataset.TableInfo{
			"orders": {
				Name: "orders",
				Rows: len(orders),
				Columns: []string{
					"Order_ID", "Customer_ID", "Customer_Name", "Order_Total_Price",
					"Order_Referring_Site", "Order_Created_At", "Order_Cancelled_At",
				},
			},
		},
	}
}

func newSvc(orders []dataset.OrderLine) *Svc {
	s := New(&fakeReader{snap: snapWith(orders)}, repo.NewSnap())
	return s.WithClock(func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) })
}

func TestSummary_DedupsAndGuards(t *testing.T) {
	t.Parallel()

	orders := []dataset.OrderLine{
		{OrderID: "o1", CustomerID: "c1", CustomerName: "Ada", TotalPrice: 100, CreatedAt: ts(2024, 3, 4, 9)},
		{OrderID: "o1", CustomerID: "c1", CustomerName: "Ada", TotalPrice: 100, CreatedAt: ts(2024, 3, 4, 9)}, // second line item
		{OrderID: "o2", CustomerID: "c1", CustomerName: "Ada", TotalPrice: 50, CreatedAt: ts(2024, 3, 5, 9), CancelledAt: ts(2024, 3, 6, 0)},
		{OrderID: "o3", CustomerID: "c2", CustomerName: "Grace", TotalPrice: 30, CreatedAt: ts(2024, 3, 9, 9)},
	}
	got, err := newSvc(orders).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.TotalOrders != 3 {
		t.Fatalf("TotalOrders = %d, want 3 (line items must dedup)", got.TotalOrders)
	}
	if got.CancelledOrders != 1 {
		t.Fatalf("CancelledOrders = %d, want 1", got.CancelledOrders)
	}
	if got.MostOrdersByCustomer != 2 {
		t.Fatalf("MostOrdersByCustomer = %d, want 2", got.MostOrdersByCustomer)
	}
	if got.AvgOrdersPerCustomer != 1.5 {
		t.Fatalf("AvgOrdersPerCustomer = %v, want 1.5", got.AvgOrdersPerCustomer)
	}
	if got.AvgOrderValue != 60 {
		t.Fatalf("AvgOrderValue = %v, want 60", got.AvgOrderValue)
	}
	if got.AvgOrderValueDisplay != "€60.00" {
		t.Fatalf("AvgOrderValueDisplay = %q", got.AvgOrderValueDisplay)
	}
}

func TestSummary_EmptyTableIsZero(t *testing.T) {
	t.Parallel()

	got, err := newSvc(nil).Summary(context.Background())
	if err != nil {
		t.Fatalf("empty table must be a valid zero result: %v", err)
	}
	if got.TotalOrders != 0 || got.AvgOrdersPerCustomer != 0 || got.AvgOrderValue != 0 {
		t.Fatalf("expected zeroes, got %+v", got)
	}
}

func TestSummary_MissingColumnDegrades(t *testing.T) {
	t.Parallel()

	snap := &dataset.Snapshot{
		Tables: map[string]dataset.TableInfo{
			"orders": {Name: "orders", Columns: []string{"Order_ID"}}, // no Order_Created_At
		},
	}
	s := New(&fakeReader{snap: snap}, repo.NewSnap())
	_, err := s.Summary(context.Background())
	if err == nil {
		t.Fatal("missing column should degrade to an error")
	}
	if !errs.IsCode(err, errs.ErrorCodeNotFound) {
		t.Fatalf("expected not-found code, got %v", err)
	}
}

func TestPreview_FiltersAndBounds(t *testing.T) {
	t.Parallel()

	orders := []dataset.OrderLine{
		{OrderID: "o1", CreatedAt: ts(2024, 1, 10, 9)},
		{OrderID: "o2", CreatedAt: ts(2024, 2, 20, 23)},
		{OrderID: "o3", CreatedAt: ts(2024, 3, 5, 1)},
	}
	got, err := newSvc(orders).Preview(context.Background(), domain.PreviewInput{
		Range: domain.RangeFilter{Start: "2024-02-01", End: "2024-02-29"},
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if got.Total != 1 || got.Rows[0].OrderID != "o2" {
		t.Fatalf("filtered rows = %+v, want just o2", got.Rows)
	}
	// bounds come from the whole column, not the filtered slice
	if got.Min != "2024-01-10" || got.Max != "2024-03-05" {
		t.Fatalf("bounds = %s..%s", got.Min, got.Max)
	}
}

func TestSeries_ZeroFillAndConservation(t *testing.T) {
	t.Parallel()

	orders := []dataset.OrderLine{
		{OrderID: "o1", CreatedAt: ts(2024, 3, 1, 9)},
		{OrderID: "o2", CreatedAt: ts(2024, 3, 1, 17)},
		{OrderID: "o3", CreatedAt: ts(2024, 3, 8, 9)},
	}
	got, err := newSvc(orders).Series(context.Background(), domain.SeriesInput{Granularity: "day"})
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	// clock pins today to 2024-03-10: 1st..10th inclusive
	if len(got) != 10 {
		t.Fatalf("daily series = %d points, want 10", len(got))
	}
	var total float64
	for _, p := range got {
		total += p.Value
	}
	if total != 3 {
		t.Fatalf("series total = %v, want 3 orders", total)
	}

	monthly, err := newSvc(orders).Series(context.Background(), domain.SeriesInput{Granularity: "month"})
	if err != nil {
		t.Fatalf("Series month: %v", err)
	}
	if len(monthly) != 1 || monthly[0].Label != "2024-03" || monthly[0].Value != 3 {
		t.Fatalf("monthly = %+v", monthly)
	}
}

func TestValued_TopAndBottom(t *testing.T) {
	t.Parallel()

	orders := []dataset.OrderLine{
		{OrderID: "o1", CustomerName: "Ada", TotalPrice: 10, CreatedAt: ts(2024, 3, 1, 9)},
		{OrderID: "o2", CustomerName: "Grace", TotalPrice: 90, CreatedAt: ts(2024, 3, 2, 9)},
		{OrderID: "o3", CustomerName: "Linus", TotalPrice: 40, CreatedAt: ts(2024, 3, 3, 9)},
	}
	svc := newSvc(orders)

	top, err := svc.Valued(context.Background(), domain.ValuedInput{N: 2, Order: "top"})
	if err != nil {
		t.Fatalf("Valued top: %v", err)
	}
	if len(top) != 2 || top[0].Label != "Grace" || top[1].Label != "Linus" {
		t.Fatalf("top = %+v", top)
	}

	bottom, err := svc.Valued(context.Background(), domain.ValuedInput{N: 1, Order: "bottom"})
	if err != nil {
		t.Fatalf("Valued bottom: %v", err)
	}
	if len(bottom) != 1 || bottom[0].Label != "Ada" {
		t.Fatalf("bottom = %+v", bottom)
	}
}

func TestReferrers_MissingSiteIsUnknown(t *testing.T) {
	t.Parallel()

	orders := []dataset.OrderLine{
		{OrderID: "o1", ReferringSite: "google.com", CreatedAt: ts(2024, 3, 1, 9)},
		{OrderID: "o2", ReferringSite: "", CreatedAt: ts(2024, 3, 2, 9)},
		{OrderID: "o3", ReferringSite: "google.com", CreatedAt: ts(2024, 3, 3, 9)},
	}
	got, err := newSvc(orders).Referrers(context.Background(), domain.ReferrersInput{N: 10})
	if err != nil {
		t.Fatalf("Referrers: %v", err)
	}
	if len(got) != 2 || got[0].Label != "google.com" || got[0].Value != 2 {
		t.Fatalf("referrers = %+v", got)
	}
	if got[1].Label != "Unknown" || got[1].Value != 1 {
		t.Fatalf("missing site should bucket as Unknown, got %+v", got[1])
	}
}
