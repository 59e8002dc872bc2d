package domain

import "math"

// PeriodsPerYear returns how many times a cost of this frequency is charged
// in a year. One-off costs count once.
func (f Frequency) PeriodsPerYear() (float64, bool) {
	switch f {
	case FrequencyMensile:
		return 12, true
	case FrequencyTrimestrale:
		return 4, true
	case FrequencySemestrale:
		return 2, true
	case FrequencyAnnuale, FrequencyUnaTantum:
		return 1, true
	default:
		return 0, false
	}
}

// Annualized returns the yearly amount of a cost item.
func (c CostItem) Annualized() (float64, error) {
	periods, ok := c.Frequency.PeriodsPerYear()
	if !ok {
		return 0, Invalid("frequency", "unknown frequency %q for cost %s", c.Frequency, c.ID)
	}
	if math.IsNaN(c.Amount) || math.IsInf(c.Amount, 0) {
		return 0, Invalid("amount", "cost %s has a non-finite amount", c.ID)
	}
	return c.Amount * periods, nil
}

// AnnualCost sums the annualized amount of every cost item.
func AnnualCost(costs []CostItem) (float64, error) {
	total := 0.0
	for _, c := range costs {
		amount, err := c.Annualized()
		if err != nil {
			return 0, err
		}
		total += amount
	}
	return total, nil
}
