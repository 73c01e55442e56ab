package dataset

import "time"

// Customer is one row of the customers table
type Customer struct {
	ID        string
	Name      string
	Province  string
	Country   string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// OrderLine is one row of the orders table
// one order may span multiple rows, one per line item; use DedupOrders before
// any aggregation that assumes one logical order per Order_ID
type OrderLine struct {
	OrderID       string
	CustomerID    string
	CustomerName  string
	TotalPrice    float64
	RefundAmount  float64
	ReferringSite string
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
	CancelledAt   *time.Time
	ProductID     string
	ProductName   string
	Quantity      float64
}

// CheckoutLine is one row of the abandoned checkouts table
// same line-item grain as OrderLine
type CheckoutLine struct {
	OrderID       string
	CustomerID    string
	ReferringSite string
	CreatedAt     *time.Time
}

// ProductVariant is one row of the products table (one row per variant)
type ProductVariant struct {
	ProductID        string
	Title            string
	Type             string
	VariantPrice     float64
	PublishedAt      *time.Time
	CreatedAt        *time.Time
	VariantCreatedAt *time.Time
}

// JourneyEvent is one row of the customer journey table (one row per page view)
// Session is a per-IP monotonically increasing visit counter
type JourneyEvent struct {
	CustomerIP     string
	Session        int
	Event          string
	EventTime      *time.Time
	TimeOnPage     float64
	ProductID      string
	ProductName    string
	CollectionName string
	SearchTerm     string
}

// DedupOrders keeps the first row seen per Order_ID
// order-level fields (total price, refund, timestamps) are taken from that row
func DedupOrders(rows []OrderLine) []OrderLine {
	seen := make(map[string]struct{}, len(rows))
	out := make([]OrderLine, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.OrderID]; ok {
			continue
		}
		seen[r.OrderID] = struct{}{}
		out = append(out, r)
	}
	return out
}

// DedupCheckouts keeps the first row seen per Order_ID
func DedupCheckouts(rows []CheckoutLine) []CheckoutLine {
	seen := make(map[string]struct{}, len(rows))
	out := make([]CheckoutLine, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.OrderID]; ok {
			continue
		}
		seen[r.OrderID] = struct{}{}
		out = append(out, r)
	}
	return out
}

type visitKey struct {
	ip      string
	session int
}

// FirstEvents keeps the first row seen per (Customer_IP, session) pair
// use it when counting visits rather than page views
func FirstEvents(rows []JourneyEvent) []JourneyEvent {
	seen := make(map[visitKey]struct{}, len(rows))
	out := make([]JourneyEvent, 0, len(rows))
	for _, r := range rows {
		k := visitKey{ip: r.CustomerIP, session: r.Session}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// LastEvents keeps the last row seen per (Customer_IP, session) pair
// bounce detection looks at the final event of each visit
func LastEvents(rows []JourneyEvent) []JourneyEvent {
	idx := make(map[visitKey]int, len(rows))
	out := make([]JourneyEvent, 0, len(rows))
	for _, r := range rows {
		k := visitKey{ip: r.CustomerIP, session: r.Session}
		if i, ok := idx[k]; ok {
			out[i] = r
			continue
		}
		idx[k] = len(out)
		out = append(out, r)
	}
	return out
}
