package cointrade

import "testing"

func TestComputeHolding(t *testing.T) {
	ledger := Ledger{
		NewPurchase("alice", "BTC", Q(2), USD(100), at(0)),
		NewPurchase("alice", "ETH", Q(10), USD(20), at(1)),
		NewPurchase("alice", "BTC", Q(1), USD(130), at(2)),
		NewSell("alice", "BTC", Q(1), USD(150), at(3)),
	}

	testCases := []struct {
		name          string
		symbol        string
		wantNetAmount Quantity
		wantCostBasis Money
	}{
		{
			name:          "two purchases and a sell",
			symbol:        "BTC",
			wantNetAmount: Q(2),
			// 2*100 + 1*130 - 1*150: the sell reduces the basis at the
			// sale price, not the average purchase price.
			wantCostBasis: USD(180),
		},
		{
			name:          "single purchase",
			symbol:        "ETH",
			wantNetAmount: Q(10),
			wantCostBasis: USD(200),
		},
		{
			name:          "symbol never traded",
			symbol:        "DOGE",
			wantNetAmount: Q(0),
			wantCostBasis: Money{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := ComputeHolding(ledger, tc.symbol)
			if !h.NetAmount.Equal(tc.wantNetAmount) {
				t.Errorf("ComputeHolding(%q).NetAmount = %s, want %s", tc.symbol, h.NetAmount, tc.wantNetAmount)
			}
			if !h.CostBasis.Decimal().Equal(tc.wantCostBasis.Decimal()) {
				t.Errorf("ComputeHolding(%q).CostBasis = %s, want %s", tc.symbol, h.CostBasis, tc.wantCostBasis)
			}
		})
	}
}

func TestComputeHoldingIsDeterministic(t *testing.T) {
	ledger := Ledger{
		NewPurchase("alice", "BTC", Q(2), USD(100), at(0)),
		NewSell("alice", "BTC", Q(1), USD(150), at(1)),
	}

	first := ComputeHolding(ledger, "BTC")
	second := ComputeHolding(ledger, "BTC")

	if !first.NetAmount.Equal(second.NetAmount) || !first.CostBasis.Equal(second.CostBasis) {
		t.Errorf("two folds of the same ledger differ: %+v vs %+v", first, second)
	}
}

func TestHoldingCostBasisAfterSell(t *testing.T) {
	// Selling half of a 2 @ $100 position at $150 leaves a basis of
	// 200-150=50, not the $100 a weighted-average method would leave.
	ledger := Ledger{
		NewPurchase("alice", "BTC", Q(2), USD(100), at(0)),
		NewSell("alice", "BTC", Q(1), USD(150), at(1)),
	}

	h := ComputeHolding(ledger, "BTC")
	if want := USD(50); !h.CostBasis.Equal(want) {
		t.Errorf("CostBasis = %s, want %s", h.CostBasis, want)
	}
	avg, err := h.AverageCost()
	if err != nil {
		t.Fatalf("AverageCost() unexpected error: %v", err)
	}
	if want := USD(50); !avg.Equal(want) {
		t.Errorf("AverageCost() = %s, want %s", avg, want)
	}
}

func TestComputeHoldingsOmitsClosedPositions(t *testing.T) {
	ledger := Ledger{
		NewPurchase("alice", "BTC", Q(1), USD(100), at(0)),
		NewPurchase("alice", "ETH", Q(5), USD(20), at(1)),
		NewSell("alice", "BTC", Q(1), USD(120), at(2)), // closes BTC
	}

	holdings := ComputeHoldings(ledger)
	if len(holdings) != 1 {
		t.Fatalf("ComputeHoldings() returned %d holdings, want 1", len(holdings))
	}
	if holdings[0].Symbol != "ETH" {
		t.Errorf("ComputeHoldings()[0].Symbol = %q, want %q", holdings[0].Symbol, "ETH")
	}
}

func TestAverageCostRequiresPositivePosition(t *testing.T) {
	testCases := []struct {
		name    string
		holding Holding
		wantErr bool
	}{
		{name: "positive", holding: Holding{Symbol: "BTC", NetAmount: Q(2), CostBasis: USD(200)}},
		{name: "zero", holding: Holding{Symbol: "BTC"}, wantErr: true},
		{name: "negative", holding: Holding{Symbol: "BTC", NetAmount: Q(-1)}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			avg, err := tc.holding.AverageCost()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("AverageCost() = %s, want error", avg)
				}
				return
			}
			if err != nil {
				t.Fatalf("AverageCost() unexpected error: %v", err)
			}
			if want := USD(100); !avg.Equal(want) {
				t.Errorf("AverageCost() = %s, want %s", avg, want)
			}
		})
	}
}

func TestProfitPercent(t *testing.T) {
	testCases := []struct {
		name    string
		current Money
		average Money
		want    Percent
	}{
		{name: "gain", current: USD(150), average: USD(100), want: 50},
		{name: "loss", current: USD(80), average: USD(100), want: -20},
		{name: "flat", current: USD(100), average: USD(100), want: 0},
		// A basis sold down to zero has no gain ratio; it must report
		// zero, never divide.
		{name: "zero average cost", current: USD(150), average: USD(0), want: 0},
		{name: "negative average cost", current: USD(150), average: USD(-10), want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProfitPercent(tc.current, tc.average)
			if !got.Equal(tc.want) {
				t.Errorf("ProfitPercent(%s, %s) = %s, want %s", tc.current, tc.average, got, tc.want)
			}
		})
	}
}
