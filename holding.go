package cointrade

import "fmt"

// Holding is the derived net position for one symbol. It is never stored;
// it is recomputed from the ledger on demand.
type Holding struct {
	Symbol    string
	NetAmount Quantity // purchases minus sells
	CostBasis Money    // cumulative cash spent acquiring the net amount
}

// ComputeHolding folds the ledger in chronological order into the holding
// for symbol. Purchases add amount and amount×price to the cost basis.
// A sell subtracts amount, and reduces the cost basis at the sale price,
// not at the average purchase price.
func ComputeHolding(l Ledger, symbol string) Holding {
	h := Holding{Symbol: symbol}
	for _, tx := range l.Filter(BySymbol(symbol)) {
		switch tx.Side {
		case Purchase:
			h.NetAmount = h.NetAmount.Add(tx.Amount)
			h.CostBasis = h.CostBasis.Add(tx.Price.Mul(tx.Amount))
		case Sell:
			h.NetAmount = h.NetAmount.Sub(tx.Amount)
			h.CostBasis = h.CostBasis.Sub(tx.Price.Mul(tx.Amount))
		}
	}
	return h
}

// ComputeHoldings folds the ledger into one holding per symbol with a
// positive net amount, sorted by symbol. Zero and negative positions are
// omitted entirely, they are not shown as zero rows.
func ComputeHoldings(l Ledger) []Holding {
	var holdings []Holding
	for _, symbol := range l.Symbols() {
		h := ComputeHolding(l, symbol)
		if h.NetAmount.IsPositive() {
			holdings = append(holdings, h)
		}
	}
	return holdings
}

// AverageCost returns the average purchase price of the held amount.
// It is undefined for a zero or negative position: callers must exclude
// such holdings rather than divide.
func (h Holding) AverageCost() (Money, error) {
	if !h.NetAmount.IsPositive() {
		return Money{}, fmt.Errorf("no average cost for %s: net amount is %s", h.Symbol, h.NetAmount)
	}
	return h.CostBasis.Div(h.NetAmount), nil
}

// ProfitPercent returns the unrealized gain of holding at currentPrice,
// relative to the average cost. A position whose cost basis has been sold
// down to zero (or below) has no meaningful gain ratio: it reports zero,
// which the renderer shows as "-".
func ProfitPercent(currentPrice, averageCost Money) Percent {
	if !averageCost.IsPositive() {
		return 0
	}
	diff := currentPrice.Sub(averageCost)
	return Percent(diff.Decimal().Div(averageCost.Decimal()).InexactFloat64() * 100)
}
