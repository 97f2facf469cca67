package cointrade

import (
	"context"
	"fmt"
	"time"
)

// WalletStore is the slice of the ledger store the trading engine needs.
// *Store implements it.
type WalletStore interface {
	Balance(ctx context.Context, user string) (Money, error)
	Transactions(ctx context.Context, user string) (Ledger, error)
	ExecuteTrade(ctx context.Context, tx Transaction, newBalance Money) error
}

// Engine validates and executes trades for one user's wallet. All
// collaborators are injected; the engine holds no global state.
type Engine struct {
	store  WalletStore
	quotes QuoteSource
	user   string
	fiat   string
	now    func() time.Time
}

// NewEngine creates a trading engine bound to one user and one fiat
// reporting currency.
func NewEngine(store WalletStore, quotes QuoteSource, user, fiat string) *Engine {
	return &Engine{
		store:  store,
		quotes: quotes,
		user:   user,
		fiat:   fiat,
		now:    time.Now,
	}
}

// Buy purchases amount of symbol at the live price. It fails with
// ErrSymbolNotFound, ErrInvalidAmount or ErrInsufficientFunds before any
// state is touched; on success the balance debit and the ledger append are
// committed as one unit.
func (e *Engine) Buy(ctx context.Context, symbol string, amount Quantity) (Transaction, error) {
	quote, err := e.quotes.Quote(ctx, symbol, e.fiat)
	if err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	balance, err := e.store.Balance(ctx, e.user)
	if err != nil {
		return Transaction{}, err
	}
	cost := quote.Price.Mul(amount)
	if balance.LessThan(cost) {
		return Transaction{}, fmt.Errorf("%w: %s %s costs %s, balance is %s",
			ErrInsufficientFunds, amount, quote.Symbol, cost, balance)
	}

	tx := NewPurchase(e.user, quote.Symbol, amount, quote.Price, e.now())
	if err := e.store.ExecuteTrade(ctx, tx, balance.Sub(cost)); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Sell sells amount of symbol at the live price. It fails with
// ErrSymbolNotFound, ErrInvalidAmount or ErrInsufficientHoldings before any
// state is touched; on success the balance credit and the ledger append are
// committed as one unit.
func (e *Engine) Sell(ctx context.Context, symbol string, amount Quantity) (Transaction, error) {
	quote, err := e.quotes.Quote(ctx, symbol, e.fiat)
	if err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	ledger, err := e.store.Transactions(ctx, e.user)
	if err != nil {
		return Transaction{}, err
	}
	available := ledger.AvailableAmount(quote.Symbol)
	if available.LessThan(amount) {
		return Transaction{}, fmt.Errorf("%w: cannot sell %s %s, only %s available",
			ErrInsufficientHoldings, amount, quote.Symbol, available)
	}

	balance, err := e.store.Balance(ctx, e.user)
	if err != nil {
		return Transaction{}, err
	}

	tx := NewSell(e.user, quote.Symbol, amount, quote.Price, e.now())
	if err := e.store.ExecuteTrade(ctx, tx, balance.Add(tx.Value)); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Position is one row of the wallet view: a held symbol priced live.
type Position struct {
	Holding
	AverageCost Money   // cost basis divided by the net amount
	Price       Money   // live unit price
	Profit      Percent // live price against average cost
}

// WalletReport is the state of a wallet: the cash balance and every
// positive position, priced live.
type WalletReport struct {
	User      string
	Balance   Money
	Positions []Position
}

// Portfolio derives the wallet view: cash balance plus one live-priced row
// per symbol with a positive net amount.
func (e *Engine) Portfolio(ctx context.Context) (WalletReport, error) {
	report := WalletReport{User: e.user}

	balance, err := e.store.Balance(ctx, e.user)
	if err != nil {
		return report, err
	}
	report.Balance = balance

	ledger, err := e.store.Transactions(ctx, e.user)
	if err != nil {
		return report, err
	}

	for _, h := range ComputeHoldings(ledger) {
		avg, err := h.AverageCost()
		if err != nil {
			// ComputeHoldings only yields positive positions.
			return report, err
		}
		quote, err := e.quotes.Quote(ctx, h.Symbol, e.fiat)
		if err != nil {
			return report, err
		}
		report.Positions = append(report.Positions, Position{
			Holding:     h,
			AverageCost: avg,
			Price:       quote.Price,
			Profit:      ProfitPercent(quote.Price, avg),
		})
	}
	return report, nil
}

// History returns the user's full ledger, oldest first.
func (e *Engine) History(ctx context.Context) (Ledger, error) {
	return e.store.Transactions(ctx, e.user)
}
