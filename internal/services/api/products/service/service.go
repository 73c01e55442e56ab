// Package service contains product catalog workflows
package service

import (
	"context"
	"sort"
	"time"

	"shopdash/internal/core/aggregate"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
	"shopdash/internal/services/api/products/domain"
	"shopdash/internal/services/api/products/repo"
)

// Service defines the products service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the products service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	reader repokit.Reader
}

// New constructs a products service
func New(reader repokit.Reader, binder repokit.Binder[repo.Repo]) *Svc {
	if reader == nil {
		panic("products.Service requires a non nil Reader")
	}
	if binder == nil {
		panic("products.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(reader), binder: binder, reader: reader}
}

// Summary computes the products page cards
func (s *Svc) Summary(ctx context.Context) (domain.Summary, error) {
	lines, err := s.Repo.OrderLines(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	live, err := s.Repo.Live(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	perCustomer := map[string]map[string]struct{}{}
	for _, l := range lines {
		if l.ProductID == "" {
			continue
		}
		if perCustomer[l.CustomerID] == nil {
			perCustomer[l.CustomerID] = map[string]struct{}{}
		}
		perCustomer[l.CustomerID][l.ProductID] = struct{}{}
	}
	var sum float64
	for _, products := range perCustomer {
		sum += float64(len(products))
	}
	var avg float64
	if len(perCustomer) > 0 {
		avg = aggregate.Round2(sum / float64(len(perCustomer)))
	}

	liveIDs := map[string]struct{}{}
	for _, p := range live {
		liveIDs[p.ProductID] = struct{}{}
	}
	return domain.Summary{
		AvgProductsPerCustomer: avg,
		LiveProducts:           len(liveIDs),
	}, nil
}

// Preview returns date-filtered catalog rows plus the picker bounds
func (s *Svc) Preview(ctx context.Context, in domain.PreviewInput) (domain.Preview, error) {
	w, err := ptime.ParseWindow(in.Range.Start, in.Range.End)
	if err != nil {
		return domain.Preview{}, err
	}
	products, err := s.Repo.Products(ctx, w)
	if err != nil {
		return domain.Preview{}, err
	}
	min, max, err := s.Repo.Bounds(ctx)
	if err != nil {
		return domain.Preview{}, err
	}

	rows := make([]domain.ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, domain.ProductRow{
			ProductID:   p.ProductID,
			Title:       p.Title,
			Type:        p.Type,
			Price:       p.VariantPrice,
			PublishedAt: fmtRFC(p.PublishedAt),
			CreatedAt:   fmtRFC(p.CreatedAt),
		})
	}
	return domain.Preview{
		Rows:  rows,
		Total: len(rows),
		Min:   fmtDate(min),
		Max:   fmtDate(max),
	}, nil
}

// Types counts live products per product type, missing type bucketed as No Type
func (s *Svc) Types(ctx context.Context, in domain.TypesInput) ([]domain.RankedRow, error) {
	live, err := s.Repo.Live(ctx)
	if err != nil {
		return nil, err
	}
	byType := map[string]map[string]struct{}{}
	for _, p := range live {
		typ := p.Type
		if typ == "" {
			typ = "No Type"
		}
		if byType[typ] == nil {
			byType[typ] = map[string]struct{}{}
		}
		byType[typ][p.ProductID] = struct{}{}
	}
	rows := make([]aggregate.Row, 0, len(byType))
	for typ, ids := range byType {
		rows = append(rows, aggregate.Row{Label: typ, Value: float64(len(ids))})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return aggregate.TopN(rows, defaultN(in.N)), nil
}

// Sold ranks products by total ordered quantity over the raw line items
func (s *Svc) Sold(ctx context.Context, in domain.SoldInput) ([]domain.RankedRow, error) {
	lines, err := s.Repo.OrderLines(ctx)
	if err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	order := []string{}
	for _, l := range lines {
		if l.ProductName == "" {
			continue
		}
		if _, ok := sums[l.ProductName]; !ok {
			order = append(order, l.ProductName)
		}
		sums[l.ProductName] += l.Quantity
	}
	rows := make([]aggregate.Row, 0, len(order))
	for _, name := range order {
		rows = append(rows, aggregate.Row{Label: name, Value: sums[name]})
	}
	return aggregate.TopN(rows, defaultN(in.N)), nil
}

// Priced ranks live products by variant price, the max variant per product for
// top and the min variant per product for bottom
func (s *Svc) Priced(ctx context.Context, in domain.PricedInput) ([]domain.RankedRow, error) {
	live, err := s.Repo.Live(ctx)
	if err != nil {
		return nil, err
	}
	bottom := in.Order == "bottom"
	prices := map[string]float64{}
	order := []string{}
	for _, p := range live {
		if p.Title == "" {
			continue
		}
		cur, ok := prices[p.Title]
		if !ok {
			order = append(order, p.Title)
			prices[p.Title] = p.VariantPrice
			continue
		}
		if bottom && p.VariantPrice < cur {
			prices[p.Title] = p.VariantPrice
		}
		if !bottom && p.VariantPrice > cur {
			prices[p.Title] = p.VariantPrice
		}
	}
	rows := make([]aggregate.Row, 0, len(order))
	for _, title := range order {
		rows = append(rows, aggregate.Row{Label: title, Value: prices[title]})
	}
	if bottom {
		return aggregate.BottomN(rows, defaultN(in.N)), nil
	}
	return aggregate.TopN(rows, defaultN(in.N)), nil
}

// Unsold lists live products that never appear on an order, oldest publish first
func (s *Svc) Unsold(ctx context.Context) ([]domain.UnsoldRow, error) {
	live, err := s.Repo.Live(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := s.Repo.OrderLines(ctx)
	if err != nil {
		return nil, err
	}
	ordered := map[string]struct{}{}
	for _, l := range lines {
		if l.ProductID != "" {
			ordered[l.ProductID] = struct{}{}
		}
	}

	type candidate struct {
		title     string
		published *time.Time
	}
	seen := map[string]struct{}{}
	unsold := []candidate{}
	for _, p := range live {
		if _, ok := ordered[p.ProductID]; ok {
			continue
		}
		if _, ok := seen[p.ProductID]; ok {
			continue
		}
		seen[p.ProductID] = struct{}{}
		unsold = append(unsold, candidate{title: p.Title, published: p.PublishedAt})
	}
	sort.SliceStable(unsold, func(i, j int) bool {
		return unsold[i].published.Before(*unsold[j].published)
	})

	out := make([]domain.UnsoldRow, len(unsold))
	for i, c := range unsold {
		out[i] = domain.UnsoldRow{Title: c.title, PublishedAt: fmtDate(c.published)}
	}
	return out, nil
}

// PriceBins buckets live variant prices into a histogram
func (s *Svc) PriceBins(ctx context.Context) ([]domain.PriceBin, error) {
	live, err := s.Repo.Live(ctx)
	if err != nil {
		return nil, err
	}
	prices := make([]float64, 0, len(live))
	for _, p := range live {
		prices = append(prices, p.VariantPrice)
	}
	return aggregate.PriceBins(prices), nil
}

func defaultN(n int) int {
	if n == 0 {
		return 10
	}
	return n
}

func fmtRFC(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(ptime.DateLayout)
}
