package cointrade

import "fmt"

// Percent is a profit or loss ratio, in percent points. It is display
// arithmetic only: position gains are computed from it, never money amounts,
// so a float is precise enough.
type Percent float64

// Equal compares two percentages up to display precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString returns the percentage with an explicit sign, the way the
// wallet view reports profit. Zero is shown as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
