package renderer

import (
	"fmt"
	"strings"

	"cointrade"
)

// Transaction renders a single executed trade to a one-line confirmation.
func Transaction(tx cointrade.Transaction) string {
	return tx.String()
}

// Transactions renders the ledger as a markdown table, oldest first.
func Transactions(ledger cointrade.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	if len(ledger) == 0 {
		fmt.Fprintln(&b, "The ledger is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Type | Symbol | Amount | Price | Value | Time |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|")
	for _, tx := range ledger {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			title(string(tx.Side)),
			tx.Symbol,
			tx.Amount,
			tx.Price.FullString(),
			tx.Value,
			tx.Time.Format("2006-01-02 15:04:05"),
		)
	}
	return b.String()
}

// title upper-cases the first letter, the way the history has always been
// displayed.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
