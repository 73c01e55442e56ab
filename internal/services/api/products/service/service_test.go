package service

import (
	"context"
	"testing"
	"time"

	"shopdash/internal/dataset"
	errs "shopdash/internal/platform/errors"
	"shopdash/internal/services/api/products/domain"
	"shopdash/internal/services/api/products/repo"
)

type fakeReader struct{ snap *dataset.Snapshot }

func (f *fakeReader) Snapshot() *dataset.Snapshot { return f.snap }

func ts(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func snapWith(products []dataset.ProductVariant, orders []dataset.OrderLine) *dataset.Snapshot {
	return &dataset.Snapshot{
		Products: products,
		Orders:   orders,
		Tables: map[string]dataset.TableInfo{
			"products": {
				Name: "products",
				Rows: len(products),
				Columns: []string{
					"Product_ID", "Product_Title", "Product_Type", "Variant_Price",
					"Product_Published_At", "Product_Created_At",
				},
			},
			"orders": {
				Name:    "orders",
				Rows:    len(orders),
				Columns: []string{"Order_ID", "Customer_ID", "Product_ID", "Product_Name", "Product_Quantity"},
			},
		},
	}
}

func newSvc(products []dataset.ProductVariant, orders []dataset.OrderLine) *Svc {
	return New(&fakeReader{snap: snapWith(products, orders)}, repo.NewSnap())
}

func TestSummary_AvgProductsAndLiveCount(t *testing.T) {
	t.Parallel()

	products := []dataset.ProductVariant{
		{ProductID: "p1", Title: "Cup", PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p1", Title: "Cup", PublishedAt: ts(2023, 9, 1)}, // second variant
		{ProductID: "p2", Title: "Plate", PublishedAt: ts(2023, 9, 2)},
		{ProductID: "p3", Title: "Draft"}, // unpublished
	}
	orders := []dataset.OrderLine{
		{OrderID: "o1", CustomerID: "c1", ProductID: "p1"},
		{OrderID: "o1", CustomerID: "c1", ProductID: "p2"},
		{OrderID: "o2", CustomerID: "c2", ProductID: "p1"},
	}
	got, err := newSvc(products, orders).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.LiveProducts != 2 {
		t.Fatalf("LiveProducts = %d, want 2 (variants collapse, drafts excluded)", got.LiveProducts)
	}
	if got.AvgProductsPerCustomer != 1.5 {
		t.Fatalf("AvgProductsPerCustomer = %v, want 1.5", got.AvgProductsPerCustomer)
	}
}

func TestSummary_MissingColumnDegrades(t *testing.T) {
	t.Parallel()

	snap := &dataset.Snapshot{
		Tables: map[string]dataset.TableInfo{
			"orders":   {Name: "orders", Columns: []string{"Order_ID", "Product_ID"}},
			"products": {Name: "products", Columns: []string{"Product_ID"}}, // no Product_Published_At
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

func TestTypes_MissingTypeIsNoType(t *testing.T) {
	t.Parallel()

	products := []dataset.ProductVariant{
		{ProductID: "p1", Type: "Kitchen", PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p2", Type: "Kitchen", PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p3", Type: "", PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p4", Type: "Garden"}, // unpublished stays out
	}
	got, err := newSvc(products, nil).Types(context.Background(), domain.TypesInput{N: 10})
	if err != nil {
		t.Fatalf("Types: %v", err)
	}
	if len(got) != 2 || got[0].Label != "Kitchen" || got[0].Value != 2 {
		t.Fatalf("types = %+v", got)
	}
	if got[1].Label != "No Type" || got[1].Value != 1 {
		t.Fatalf("missing type should bucket as No Type, got %+v", got[1])
	}
}

func TestSold_SumsQuantityOverLineItems(t *testing.T) {
	t.Parallel()

	orders := []dataset.OrderLine{
		{OrderID: "o1", ProductID: "p1", ProductName: "Cup", Quantity: 2},
		{OrderID: "o1", ProductID: "p2", ProductName: "Plate", Quantity: 1},
		{OrderID: "o2", ProductID: "p1", ProductName: "Cup", Quantity: 3},
	}
	got, err := newSvc(nil, orders).Sold(context.Background(), domain.SoldInput{N: 10})
	if err != nil {
		t.Fatalf("Sold: %v", err)
	}
	if len(got) != 2 || got[0].Label != "Cup" || got[0].Value != 5 {
		t.Fatalf("sold = %+v", got)
	}
}

func TestPriced_MaxForTopMinForBottom(t *testing.T) {
	t.Parallel()

	products := []dataset.ProductVariant{
		{ProductID: "p1", Title: "Cup", VariantPrice: 10, PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p1", Title: "Cup", VariantPrice: 25, PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p2", Title: "Plate", VariantPrice: 15, PublishedAt: ts(2023, 9, 1)},
	}
	svc := newSvc(products, nil)

	top, err := svc.Priced(context.Background(), domain.PricedInput{N: 1, Order: "top"})
	if err != nil {
		t.Fatalf("Priced top: %v", err)
	}
	if len(top) != 1 || top[0].Label != "Cup" || top[0].Value != 25 {
		t.Fatalf("top = %+v, want Cup at its max variant price", top)
	}

	bottom, err := svc.Priced(context.Background(), domain.PricedInput{N: 1, Order: "bottom"})
	if err != nil {
		t.Fatalf("Priced bottom: %v", err)
	}
	if len(bottom) != 1 || bottom[0].Label != "Cup" || bottom[0].Value != 10 {
		t.Fatalf("bottom = %+v, want Cup at its min variant price", bottom)
	}
}

func TestUnsold_LiveNeverOrderedOldestFirst(t *testing.T) {
	t.Parallel()

	products := []dataset.ProductVariant{
		{ProductID: "p1", Title: "Cup", PublishedAt: ts(2023, 9, 5)},
		{ProductID: "p2", Title: "Plate", PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p3", Title: "Bowl", PublishedAt: ts(2023, 9, 3)},
		{ProductID: "p4", Title: "Draft"}, // unpublished
	}
	orders := []dataset.OrderLine{
		{OrderID: "o1", ProductID: "p1", ProductName: "Cup"},
	}
	got, err := newSvc(products, orders).Unsold(context.Background())
	if err != nil {
		t.Fatalf("Unsold: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unsold = %+v, want Plate and Bowl", got)
	}
	if got[0].Title != "Plate" || got[1].Title != "Bowl" {
		t.Fatalf("order = %+v, want oldest publish first", got)
	}
	if got[0].PublishedAt != "2023-09-01" {
		t.Fatalf("published date = %q", got[0].PublishedAt)
	}
}

func TestPriceBins_CoversLivePrices(t *testing.T) {
	t.Parallel()

	products := []dataset.ProductVariant{
		{ProductID: "p1", VariantPrice: 5, PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p2", VariantPrice: 10, PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p3", VariantPrice: 50, PublishedAt: ts(2023, 9, 1)},
		{ProductID: "p4", VariantPrice: 999}, // unpublished stays out
	}
	got, err := newSvc(products, nil).PriceBins(context.Background())
	if err != nil {
		t.Fatalf("PriceBins: %v", err)
	}
	var counted int
	for _, b := range got {
		counted += b.Count
	}
	if counted != 3 {
		t.Fatalf("bins hold %d prices, want 3 live variants", counted)
	}
}
