package cointrade

import (
	"fmt"
	"time"
)

// Side identifies the direction of a trade.
type Side string

const (
	// Purchase adds to a position and debits the cash balance.
	Purchase Side = "purchase"
	// Sell trims a position and credits the cash balance.
	Sell Side = "sell"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Purchase:
		return Purchase, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction side: %q", s)
	}
}

// Transaction is one executed trade. It is immutable once written to the
// ledger; the insertion order defines the replay order.
type Transaction struct {
	User   string    // wallet owner
	Side   Side      // purchase or sell
	Symbol string    // asset ticker symbol, e.g. "BTC"
	Amount Quantity  // asset quantity traded
	Price  Money     // unit price at execution time
	Value  Money     // Amount × Price, the cash debited or credited
	Time   time.Time // execution time
}

// NewPurchase creates a purchase transaction, deriving the cash value from
// the amount and the unit price.
func NewPurchase(user, symbol string, amount Quantity, price Money, at time.Time) Transaction {
	return Transaction{
		User:   user,
		Side:   Purchase,
		Symbol: symbol,
		Amount: amount,
		Price:  price,
		Value:  price.Mul(amount),
		Time:   at,
	}
}

// NewSell creates a sell transaction, deriving the cash value from the
// amount and the unit price.
func NewSell(user, symbol string, amount Quantity, price Money, at time.Time) Transaction {
	return Transaction{
		User:   user,
		Side:   Sell,
		Symbol: symbol,
		Amount: amount,
		Price:  price,
		Value:  price.Mul(amount),
		Time:   at,
	}
}

func (t Transaction) Equal(o Transaction) bool {
	return t.User == o.User &&
		t.Side == o.Side &&
		t.Symbol == o.Symbol &&
		t.Amount.Equal(o.Amount) &&
		t.Price.Equal(o.Price) &&
		t.Value.Equal(o.Value) &&
		t.Time.Equal(o.Time)
}

func (t Transaction) String() string {
	switch t.Side {
	case Purchase:
		return fmt.Sprintf("Bought %s %s for %s", t.Amount, t.Symbol, t.Value)
	case Sell:
		return fmt.Sprintf("Sold %s %s for %s", t.Amount, t.Symbol, t.Value)
	default:
		return string(t.Side)
	}
}
