// Package cointrade implements a single-user cryptocurrency paper-trading
// account: a simulated cash balance, an append-only ledger of purchases and
// sells, and the portfolio accounting derived from it.
//
// The core pieces are:
//   - Ledger Store: a durable, append-only transaction log plus one mutable
//     balance cell per user, backed by SQLite. Transactions are never edited
//     or deleted, so the balance is always recomputable from history.
//   - Portfolio Calculator: pure functions folding the ledger into per-symbol
//     holdings (net amount, cost basis, average cost) and profit against a
//     live price.
//   - Trading Engine: validates a buy or sell against the live quote, the
//     cash balance and the current inventory, then commits the balance update
//     and the ledger append as one storage transaction.
//
// Live prices come from a QuoteSource, an interface over a CoinMarketCap
// style HTTP API. This package is the foundation of the `coin` command-line
// tool.
package cointrade
