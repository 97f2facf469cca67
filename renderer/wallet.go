package renderer

import (
	"fmt"
	"strings"

	"cointrade"
)

// Wallet renders the wallet view: the cash balance and one row per held
// symbol, priced live.
func Wallet(report cointrade.WalletReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Wallet %s\n\n", report.User)
	fmt.Fprintf(&b, "Cash balance: **%s**\n\n", report.Balance)

	if len(report.Positions) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Amount | Average Purchase Price | Current Price | Profit (%) |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, p := range report.Positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			p.Symbol,
			p.NetAmount,
			p.AverageCost.FullString(),
			p.Price.FullString(),
			p.Profit.SignedString(),
		)
	}
	return b.String()
}
