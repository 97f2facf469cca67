package cointrade

import "testing"

func TestNewPurchaseDerivesValue(t *testing.T) {
	tx := NewPurchase("alice", "BTC", Q(2), USD(100), at(0))

	if want := USD(200); !tx.Value.Equal(want) {
		t.Errorf("Value = %s, want %s", tx.Value, want)
	}
	if tx.Side != Purchase {
		t.Errorf("Side = %q, want %q", tx.Side, Purchase)
	}
}

func TestNewSellDerivesValue(t *testing.T) {
	tx := NewSell("alice", "BTC", Q(0.5), USD(150), at(0))

	if want := USD(75); !tx.Value.Equal(want) {
		t.Errorf("Value = %s, want %s", tx.Value, want)
	}
	if tx.Side != Sell {
		t.Errorf("Side = %q, want %q", tx.Side, Sell)
	}
}

func TestParseSide(t *testing.T) {
	testCases := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{in: "purchase", want: Purchase},
		{in: "sell", want: Sell},
		{in: "short", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSide(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseSide(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSide(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseSide(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransactionString(t *testing.T) {
	buy := NewPurchase("alice", "BTC", Q(2), USD(100), at(0))
	if got, want := buy.String(), "Bought 2 BTC for $200.00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	sell := NewSell("alice", "BTC", Q(1), USD(150), at(1))
	if got, want := sell.String(), "Sold 1 BTC for $150.00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
