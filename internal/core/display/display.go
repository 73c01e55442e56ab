// Package display renders aggregated values into the human forms the
// dashboard cards and tooltips show; conversion always happens after
// aggregation, never before
package display

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Seconds renders a duration measured in seconds as "H hr M min"
func Seconds(v float64) string {
	total := int(math.Floor(v))
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	return printer.Sprintf("%d hr %d min", h, m)
}

// Euro renders a money amount with thousand separators, "€1,234.56"
func Euro(v float64) string {
	return printer.Sprintf("€%.2f", v)
}
