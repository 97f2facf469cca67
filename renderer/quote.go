// Package renderer turns domain values into markdown tables for the
// terminal.
package renderer

import (
	"fmt"
	"strings"

	"cointrade"
)

// Quotes renders a quote listing as a markdown table, one row per currency.
func Quotes(quotes []cointrade.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market\n\n")
	fmt.Fprintln(&b, "| Rank | Name | Symbol | Price |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|")
	for _, q := range quotes {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			q.Rank,
			q.Name,
			q.Symbol,
			q.Price.FullString(),
		)
	}
	return b.String()
}
