package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds an amount to cents, half away from zero. Non-finite values
// become 0 so they never reach a display or a comparison.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// Sum adds amounts after rounding each to cents, so a total always equals
// the sum of the figures displayed next to it.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(Round(v)))
	}
	return total.Round(2).InexactFloat64()
}

// Sub returns a-b in cents.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(Round(a)).Sub(decimal.NewFromFloat(Round(b))).Round(2).InexactFloat64()
}

// MarginPct returns margin as a percentage of revenue. It is 0 whenever there
// is no positive revenue to divide by.
func MarginPct(margin, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return margin / revenue * 100
}

// ApplyDiscount returns price reduced by pct percent. Discounts at or above
// 100 yield zero or negative prices.
func ApplyDiscount(price, pct float64) float64 {
	return price * (1 - pct/100.0)
}
