package scoring

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fixed business thresholds. Ratio tiers use strict greater-than.
var (
	ltvHighThreshold     = decimal.NewFromInt(90)
	ltvElevatedThreshold = decimal.NewFromInt(80)

	dtiHighThreshold     = decimal.NewFromInt(50)
	dtiElevatedThreshold = decimal.NewFromInt(40)

	hundred = decimal.NewFromInt(100)
)

const (
	// Per-loan and pool-average credit score cut-offs.
	creditScorePoor = 650 // below this adds risk
	creditScoreGood = 700 // at or above this reduces risk

	// Rating bands: <= aaaMaxScore is AAA, <= bbbMaxScore is BBB, the rest is C.
	aaaMaxScore = 2
	bbbMaxScore = 5
)

// percentOf returns part/whole*100, or ErrArithmeticFault if whole is zero.
func percentOf(part, whole decimal.Decimal) (decimal.Decimal, error) {
	if whole.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: division by zero", ErrArithmeticFault)
	}
	return part.Mul(hundred).Div(whole), nil
}
