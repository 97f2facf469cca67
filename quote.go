package cointrade

import "context"

// Quote is a point-in-time price observation for one crypto currency.
// It is ephemeral: consumed at decision time, never persisted.
type Quote struct {
	Name   string // full currency name, e.g. "Bitcoin"
	Symbol string // ticker symbol, e.g. "BTC"
	Rank   int    // market-cap rank
	Price  Money  // unit price in the requested fiat currency
}

// QuoteSource provides live prices. Implementations must return
// ErrSymbolNotFound for a symbol unknown to the market, and wrap transport
// or remote failures in ErrTransient; they must never block indefinitely.
type QuoteSource interface {
	// Quote returns the current quote for a single symbol.
	Quote(ctx context.Context, symbol, fiat string) (Quote, error)
	// List returns one page of quotes ordered by market-cap rank.
	List(ctx context.Context, page, pageSize int, fiat string) ([]Quote, error)
}
