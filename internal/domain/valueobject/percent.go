// Package valueobject contains domain value objects for the Expense Tracker.
package valueobject

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent returns round(part / whole * 100) as an integer.
// A zero whole yields 0.
func Percent(part, whole decimal.Decimal) int {
	if whole.IsZero() {
		return 0
	}
	return int(part.Mul(hundred).Div(whole).Round(0).IntPart())
}

// Band classifies a usage percentage for display.
type Band string

const (
	BandNominal    Band = "nominal"
	BandWarning    Band = "warning"
	BandOverBudget Band = "over_budget"
)

// Banding thresholds; each band includes its upper bound.
const (
	NominalUpperBound = 75
	WarningUpperBound = 100
)

// BandFor returns the band for a usage percentage:
// up to 75 is nominal, 76 to 100 is a warning, above 100 is over budget.
func BandFor(percent int) Band {
	switch {
	case percent <= NominalUpperBound:
		return BandNominal
	case percent <= WarningUpperBound:
		return BandWarning
	default:
		return BandOverBudget
	}
}
