package cointrade

import (
	"slices"
)

// Ledger is the chronological sequence of a user's transactions, oldest
// first. It is append-only: holdings and balances are derived by replaying
// it, never by editing it.
type Ledger []Transaction

// BySymbol returns a predicate that filters transactions by symbol.
func BySymbol(symbol string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Symbol == symbol }
}

// BySide returns a predicate that filters transactions by side.
func BySide(side Side) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Side == side }
}

// Filter returns the transactions accepted by all predicates, in ledger order.
func (l Ledger) Filter(filters ...func(Transaction) bool) Ledger {
	var out Ledger
	for _, tx := range l {
		accept := true
		for _, filter := range filters {
			if !filter(tx) {
				accept = false
				break
			}
		}
		if accept {
			out = append(out, tx)
		}
	}
	return out
}

// Symbols returns every symbol that appears in the ledger, sorted.
func (l Ledger) Symbols() []string {
	visited := make(map[string]struct{})
	for _, tx := range l {
		visited[tx.Symbol] = struct{}{}
	}
	symbols := make([]string, 0, len(visited))
	for symbol := range visited {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// AvailableAmount computes the quantity of symbol the owner may still sell:
// the sum of purchased amounts minus the sum of sold amounts.
func (l Ledger) AvailableAmount(symbol string) Quantity {
	var amount Quantity
	for _, tx := range l.Filter(BySymbol(symbol), BySide(Purchase)) {
		amount = amount.Add(tx.Amount)
	}
	for _, tx := range l.Filter(BySymbol(symbol), BySide(Sell)) {
		amount = amount.Sub(tx.Amount)
	}
	return amount
}

// RecomputeBalance replays the ledger over an opening cash balance. The
// stored balance cell must always agree with it; this is the audit
// cross-check the append-only design exists for.
func RecomputeBalance(opening Money, l Ledger) Money {
	balance := opening
	for _, tx := range l {
		switch tx.Side {
		case Purchase:
			balance = balance.Sub(tx.Value)
		case Sell:
			balance = balance.Add(tx.Value)
		}
	}
	return balance
}
