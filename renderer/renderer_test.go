package renderer

import (
	"strings"
	"testing"
	"time"

	"cointrade"
)

func usd(v float64) cointrade.Money { return cointrade.M(v, "USD") }

func TestQuotes(t *testing.T) {
	md := Quotes([]cointrade.Quote{
		{Name: "Bitcoin", Symbol: "BTC", Rank: 1, Price: usd(60000)},
		{Name: "Ethereum", Symbol: "ETH", Rank: 2, Price: usd(2500)},
	})

	for _, want := range []string{"| Rank |", "Bitcoin", "BTC", "Ethereum", "$2500"} {
		if !strings.Contains(md, want) {
			t.Errorf("Quotes() output missing %q:\n%s", want, md)
		}
	}
}

func TestWallet(t *testing.T) {
	h := cointrade.ComputeHolding(cointrade.Ledger{
		cointrade.NewPurchase("alice", "BTC", cointrade.Q(2), usd(100), time.Now()),
	}, "BTC")
	avg, err := h.AverageCost()
	if err != nil {
		t.Fatalf("AverageCost() unexpected error: %v", err)
	}

	md := Wallet(cointrade.WalletReport{
		User:    "alice",
		Balance: usd(800),
		Positions: []cointrade.Position{{
			Holding:     h,
			AverageCost: avg,
			Price:       usd(150),
			Profit:      cointrade.ProfitPercent(usd(150), avg),
		}},
	})

	for _, want := range []string{"Wallet alice", "$800.00", "| BTC |", "+50.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("Wallet() output missing %q:\n%s", want, md)
		}
	}
}

func TestWalletEmpty(t *testing.T) {
	md := Wallet(cointrade.WalletReport{User: "alice", Balance: usd(1000)})
	if !strings.Contains(md, "No open positions.") {
		t.Errorf("Wallet() output missing empty notice:\n%s", md)
	}
}

func TestTransactions(t *testing.T) {
	when := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	md := Transactions(cointrade.Ledger{
		cointrade.NewPurchase("alice", "BTC", cointrade.Q(2), usd(100), when),
		cointrade.NewSell("alice", "BTC", cointrade.Q(1), usd(150), when.Add(time.Hour)),
	})

	for _, want := range []string{"| Purchase |", "| Sell |", "2025-06-01 10:30:00"} {
		if !strings.Contains(md, want) {
			t.Errorf("Transactions() output missing %q:\n%s", want, md)
		}
	}
}

func TestTransactionsEmpty(t *testing.T) {
	md := Transactions(nil)
	if !strings.Contains(md, "The ledger is empty.") {
		t.Errorf("Transactions() output missing empty notice:\n%s", md)
	}
}
