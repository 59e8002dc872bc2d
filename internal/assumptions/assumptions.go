package assumptions

import (
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/pricing"
)

// Assumptions holds the business parameters shared by the quote, dashboard
// and scenario engines. Values differ per operation and per year.
type Assumptions struct {
	LotsPerYear         float64           `json:"lots_per_year"`
	BreakEvenThreshold  float64           `json:"break_even_threshold"`
	ReferenceLotRevenue float64           `json:"reference_lot_revenue"`
	ReferenceUnitCount  float64           `json:"reference_unit_count"`
	SpaceSlots          int               `json:"space_slots"`
	StationSlots        int               `json:"station_slots"`
	NoGoDays            int               `json:"no_go_days"`
	WarningDays         int               `json:"warning_days"`
	Prices              pricing.PriceList `json:"prices"`
}

// Default returns the parameters of the reference lot.
func Default() Assumptions {
	return Assumptions{
		LotsPerYear:         3,
		BreakEvenThreshold:  46200,
		ReferenceLotRevenue: 19300,
		ReferenceUnitCount:  16,
		SpaceSlots:          18,
		StationSlots:        10,
		NoGoDays:            14,
		WarningDays:         30,
		Prices:              pricing.DefaultPriceList(),
	}
}

// Validate rejects parameter sets that would divide by zero or invert the
// go/no-go windows.
func (a Assumptions) Validate() error {
	if a.LotsPerYear <= 0 {
		return domain.Invalid("lots_per_year", "must be greater than 0")
	}
	if a.ReferenceUnitCount <= 0 {
		return domain.Invalid("reference_unit_count", "must be greater than 0")
	}
	if a.BreakEvenThreshold < 0 {
		return domain.Invalid("break_even_threshold", "must be 0 or greater")
	}
	if a.ReferenceLotRevenue < 0 {
		return domain.Invalid("reference_lot_revenue", "must be 0 or greater")
	}
	if a.SpaceSlots < 0 || a.StationSlots < 0 {
		return domain.Invalid("slots", "must be 0 or greater")
	}
	if a.NoGoDays < 0 || a.WarningDays < a.NoGoDays {
		return domain.Invalid("warning_days", "must be at least no_go_days (%d)", a.NoGoDays)
	}
	return a.Prices.Validate()
}

// AllocatedCost spreads an annual cost evenly over the lots of a year.
func (a Assumptions) AllocatedCost(annualCost float64) float64 {
	return annualCost / a.LotsPerYear
}

// Annualize projects a per-lot figure onto a full year.
func (a Assumptions) Annualize(lotFigure float64) float64 {
	return lotFigure * a.LotsPerYear
}
