// Package service contains customer workflows
package service

import (
	"context"
	"sort"
	"time"

	"shopdash/internal/core/aggregate"
	"shopdash/internal/core/display"
	"shopdash/internal/modkit/repokit"
	ptime "shopdash/internal/platform/time"
	"shopdash/internal/services/api/customers/domain"
	"shopdash/internal/services/api/customers/repo"
)

// Service defines the customers service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the customers service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	reader repokit.Reader
}

// New constructs a customers service
func New(reader repokit.Reader, binder repokit.Binder[repo.Repo]) *Svc {
	if reader == nil {
		panic("customers.Service requires a non nil Reader")
	}
	if binder == nil {
		panic("customers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(reader), binder: binder, reader: reader}
}

// Summary computes the customers page cards
func (s *Svc) Summary(ctx context.Context) (domain.Summary, error) {
	customers, err := s.Repo.Customers(ctx, ptime.Window{})
	if err != nil {
		return domain.Summary{}, err
	}
	orders, err := s.Repo.Orders(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	listed := map[string]struct{}{}
	for _, c := range customers {
		listed[c.ID] = struct{}{}
	}
	perCustomer := map[string]int{}
	for _, o := range orders {
		perCustomer[o.CustomerID]++
	}
	var repeat int
	for _, n := range perCustomer {
		if n >= aggregate.RepeatThreshold {
			repeat++
		}
	}
	return domain.Summary{
		ListedCustomers: len(listed),
		PayingCustomers: len(perCustomer),
		RepeatCustomers: repeat,
	}, nil
}

// Preview returns date-filtered customers plus the picker bounds
func (s *Svc) Preview(ctx context.Context, in domain.PreviewInput) (domain.Preview, error) {
	w, err := ptime.ParseWindow(in.Range.Start, in.Range.End)
	if err != nil {
		return domain.Preview{}, err
	}
	customers, err := s.Repo.Customers(ctx, w)
	if err != nil {
		return domain.Preview{}, err
	}
	min, max, err := s.Repo.Bounds(ctx)
	if err != nil {
		return domain.Preview{}, err
	}

	rows := make([]domain.CustomerRow, 0, len(customers))
	for _, c := range customers {
		var created string
		if c.CreatedAt != nil {
			created = c.CreatedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, domain.CustomerRow{
			CustomerID: c.ID,
			Name:       c.Name,
			Province:   c.Province,
			Country:    c.Country,
			CreatedAt:  created,
		})
	}
	return domain.Preview{
		Rows:  rows,
		Total: len(rows),
		Min:   fmtDate(min),
		Max:   fmtDate(max),
	}, nil
}

// Spenders ranks customer names by summed order total, highest or lowest first
func (s *Svc) Spenders(ctx context.Context, in domain.SpendersInput) ([]domain.RankedRow, error) {
	orders, err := s.Repo.Orders(ctx)
	if err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	order := []string{}
	for _, o := range orders {
		if o.CustomerName == "" {
			continue
		}
		if _, ok := sums[o.CustomerName]; !ok {
			order = append(order, o.CustomerName)
		}
		sums[o.CustomerName] += o.TotalPrice
	}
	rows := make([]aggregate.Row, 0, len(order))
	for _, name := range order {
		rows = append(rows, aggregate.Row{Label: name, Value: aggregate.Round2(sums[name])})
	}
	n := in.N
	if n == 0 {
		n = 10
	}
	if in.Order == "bottom" {
		return aggregate.BottomN(rows, n), nil
	}
	return aggregate.TopN(rows, n), nil
}

// Repeat lists customers with at least two distinct orders, busiest first
func (s *Svc) Repeat(ctx context.Context) ([]domain.RepeatRow, error) {
	orders, err := s.Repo.Orders(ctx)
	if err != nil {
		return nil, err
	}
	type bucket struct {
		orders   int
		spending float64
	}
	byName := map[string]*bucket{}
	order := []string{}
	for _, o := range orders {
		if o.CustomerName == "" {
			continue
		}
		b, ok := byName[o.CustomerName]
		if !ok {
			b = &bucket{}
			byName[o.CustomerName] = b
			order = append(order, o.CustomerName)
		}
		b.orders++
		b.spending += o.TotalPrice
	}

	out := make([]domain.RepeatRow, 0, len(order))
	for _, name := range order {
		b := byName[name]
		if b.orders < aggregate.RepeatThreshold {
			continue
		}
		spending := aggregate.Round2(b.spending)
		out = append(out, domain.RepeatRow{
			Name:            name,
			OrdersPlaced:    b.orders,
			TotalSpending:   spending,
			SpendingDisplay: display.Euro(spending),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrdersPlaced > out[j].OrdersPlaced })
	return out, nil
}

// Regions counts unique customers per province and per country
func (s *Svc) Regions(ctx context.Context) (domain.Regions, error) {
	customers, err := s.Repo.Customers(ctx, ptime.Window{})
	if err != nil {
		return domain.Regions{}, err
	}
	provinces := map[string]map[string]struct{}{}
	countries := map[string]map[string]struct{}{}
	for _, c := range customers {
		addUnique(provinces, c.Province, c.ID)
		addUnique(countries, c.Country, c.ID)
	}
	return domain.Regions{
		Provinces: uniqueRows(provinces),
		Countries: uniqueRows(countries),
	}, nil
}

func addUnique(m map[string]map[string]struct{}, label, id string) {
	if label == "" {
		label = "Unknown"
	}
	if m[label] == nil {
		m[label] = map[string]struct{}{}
	}
	m[label][id] = struct{}{}
}

func uniqueRows(m map[string]map[string]struct{}) []domain.RankedRow {
	rows := make([]aggregate.Row, 0, len(m))
	for label, ids := range m {
		rows = append(rows, aggregate.Row{Label: label, Value: float64(len(ids))})
	}
	// map iteration order is random; fix label order before the stable sort
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return aggregate.SortDesc(rows)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(ptime.DateLayout)
}
