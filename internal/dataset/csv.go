package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"shopdash/internal/platform/logger"
)

// timestamp layouts the loader accepts, tried in order
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TableInfo is the load report for a single table, served by the meta module
type TableInfo struct {
	Name     string         `json:"name"`
	Path     string         `json:"path"`
	Rows     int            `json:"rows"`
	Columns  []string       `json:"columns"`
	Missing  []string       `json:"missing_columns,omitempty"`
	Warnings map[string]int `json:"parse_warnings,omitempty"`
	LoadErr  string         `json:"load_error,omitempty"`
}

// Has reports whether the source file carried the named column
func (t TableInfo) Has(col string) bool {
	return slices.Contains(t.Columns, col)
}

// loader reads one CSV file and decodes typed fields out of its records
// a value that fails to parse becomes the zero value, warned once per column
type loader struct {
	info TableInfo
	idx  map[string]int
	miss map[string]bool
	log  logger.Logger
}

func newLoader(name, path string, log logger.Logger) *loader {
	return &loader{
		info: TableInfo{Name: name, Path: path, Warnings: map[string]int{}},
		idx:  map[string]int{},
		miss: map[string]bool{},
		log:  log,
	}
}

// read pulls the full file into memory
// a missing or unreadable file degrades to an empty table, never an error
func (l *loader) read() [][]string {
	f, err := os.Open(l.info.Path)
	if err != nil {
		l.info.LoadErr = err.Error()
		l.log.Warn().Str("table", l.info.Name).Str("path", l.info.Path).Err(err).
			Msg("dataset file unavailable, serving empty table")
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows tolerated, short rows read as empty fields

	head, err := r.Read()
	if err != nil {
		if err != io.EOF {
			l.info.LoadErr = err.Error()
			l.log.Warn().Str("table", l.info.Name).Err(err).Msg("dataset header unreadable")
		}
		return nil
	}
	for i, h := range head {
		name := strings.TrimSpace(h)
		l.idx[name] = i
		l.info.Columns = append(l.info.Columns, name)
	}

	var recs [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.info.LoadErr = err.Error()
			l.log.Warn().Str("table", l.info.Name).Err(err).Msg("dataset truncated mid file")
			break
		}
		recs = append(recs, rec)
	}
	l.info.Rows = len(recs)
	return recs
}

// field returns the raw cell for col, tracking absent columns once
func (l *loader) field(rec []string, col string) (string, bool) {
	i, ok := l.idx[col]
	if !ok {
		if !l.miss[col] {
			l.miss[col] = true
			l.info.Missing = append(l.info.Missing, col)
			l.log.Warn().Str("table", l.info.Name).Str("column", col).
				Msg("expected column missing, dependent metrics degrade")
		}
		return "", false
	}
	if i >= len(rec) {
		return "", false
	}
	return strings.TrimSpace(rec[i]), true
}

func (l *loader) warn(col, raw string, err error) {
	l.info.Warnings[col]++
	if l.info.Warnings[col] == 1 {
		l.log.Warn().Str("table", l.info.Name).Str("column", col).Str("value", raw).Err(err).
			Msg("value failed to parse, coerced to missing")
	}
}

func (l *loader) str(rec []string, col string) string {
	s, _ := l.field(rec, col)
	return s
}

func (l *loader) f64(rec []string, col string) float64 {
	raw, ok := l.field(rec, col)
	if !ok || raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		l.warn(col, raw, err)
		return 0
	}
	return v
}

func (l *loader) int(rec []string, col string) int {
	raw, ok := l.field(rec, col)
	if !ok || raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		// sessions sometimes arrive as "2.0"
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			l.warn(col, raw, err)
			return 0
		}
		return int(f)
	}
	return v
}

// ts coerces a timestamp cell to UTC, nil when empty or unparseable
func (l *loader) ts(rec []string, col string) *time.Time {
	raw, ok := l.field(rec, col)
	if !ok || raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			u := t.UTC()
			return &u
		}
	}
	l.warn(col, raw, errInvalidTime)
	return nil
}

var errInvalidTime = &timeParseError{}

type timeParseError struct{}

func (*timeParseError) Error() string { return "unrecognized timestamp layout" }

func loadCustomers(path string, log logger.Logger) ([]Customer, TableInfo) {
	l := newLoader("customers", path, log)
	recs := l.read()
	rows := make([]Customer, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, Customer{
			ID:        l.str(rec, "Customer_ID"),
			Name:      l.str(rec, "Customer_Name"),
			Province:  l.str(rec, "Customer_Province"),
			Country:   l.str(rec, "Customer_Country"),
			CreatedAt: l.ts(rec, "Customer_Created_At"),
			UpdatedAt: l.ts(rec, "Customer_Updated_At"),
		})
	}
	return rows, l.info
}

func loadOrders(path string, log logger.Logger) ([]OrderLine, TableInfo) {
	l := newLoader("orders", path, log)
	recs := l.read()
	rows := make([]OrderLine, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, OrderLine{
			OrderID:       l.str(rec, "Order_ID"),
			CustomerID:    l.str(rec, "Customer_ID"),
			CustomerName:  l.str(rec, "Customer_Name"),
			TotalPrice:    l.f64(rec, "Order_Total_Price"),
			RefundAmount:  l.f64(rec, "Order_Refund_Amount"),
			ReferringSite: l.str(rec, "Order_Referring_Site"),
			CreatedAt:     l.ts(rec, "Order_Created_At"),
			UpdatedAt:     l.ts(rec, "Order_Updated_At"),
			CancelledAt:   l.ts(rec, "Order_Cancelled_At"),
			ProductID:     l.str(rec, "Product_ID"),
			ProductName:   l.str(rec, "Product_Name"),
			Quantity:      l.f64(rec, "Product_Quantity"),
		})
	}
	return rows, l.info
}

func loadCheckouts(path string, log logger.Logger) ([]CheckoutLine, TableInfo) {
	l := newLoader("abandoned_checkouts", path, log)
	recs := l.read()
	rows := make([]CheckoutLine, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, CheckoutLine{
			OrderID:       l.str(rec, "Order_ID"),
			CustomerID:    l.str(rec, "Customer_ID"),
			ReferringSite: l.str(rec, "Order_Referring_Site"),
			CreatedAt:     l.ts(rec, "Order_Created_At"),
		})
	}
	return rows, l.info
}

func loadProducts(path string, log logger.Logger) ([]ProductVariant, TableInfo) {
	l := newLoader("products", path, log)
	recs := l.read()
	rows := make([]ProductVariant, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, ProductVariant{
			ProductID:        l.str(rec, "Product_ID"),
			Title:            l.str(rec, "Product_Title"),
			Type:             l.str(rec, "Product_Type"),
			VariantPrice:     l.f64(rec, "Variant_Price"),
			PublishedAt:      l.ts(rec, "Product_Published_At"),
			CreatedAt:        l.ts(rec, "Product_Created_At"),
			VariantCreatedAt: l.ts(rec, "Variant_Created_At"),
		})
	}
	return rows, l.info
}

func loadJourney(path string, log logger.Logger) ([]JourneyEvent, TableInfo) {
	l := newLoader("journey_events", path, log)
	recs := l.read()
	rows := make([]JourneyEvent, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, JourneyEvent{
			CustomerIP:     l.str(rec, "Customer_IP"),
			Session:        l.int(rec, "session"),
			Event:          l.str(rec, "Event"),
			EventTime:      l.ts(rec, "Event_Time"),
			TimeOnPage:     l.f64(rec, "Time_On_Page"),
			ProductID:      l.str(rec, "Product_ID"),
			ProductName:    l.str(rec, "Product_Name"),
			CollectionName: l.str(rec, "Collection_Name"),
			SearchTerm:     l.str(rec, "Search_Term"),
		})
	}
	return rows, l.info
}
