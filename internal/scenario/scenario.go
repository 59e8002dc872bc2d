package scenario

import (
	"math"
	"strings"

	"github.com/Simplici0/adlots/internal/assumptions"
	"github.com/Simplici0/adlots/internal/dashboard"
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/money"
)

// Params is a hypothetical state of the business. Occupancies are percentages
// of the configured slots, variations are relative changes in percent.
type Params struct {
	SpaceOccupancyPct    float64 `json:"space_occupancy_pct"`
	StationOccupancyPct  float64 `json:"station_occupancy_pct"`
	AvgPriceVariationPct float64 `json:"avg_price_variation_pct"`
	CostVariationPct     float64 `json:"cost_variation_pct"`
}

func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"space_occupancy_pct", p.SpaceOccupancyPct},
		{"station_occupancy_pct", p.StationOccupancyPct},
		{"avg_price_variation_pct", p.AvgPriceVariationPct},
		{"cost_variation_pct", p.CostVariationPct},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return domain.Invalid(f.name, "must be a finite number")
		}
	}

	if p.SpaceOccupancyPct < 0 || p.SpaceOccupancyPct > 100 {
		return domain.Invalid("space_occupancy_pct", "must be between 0 and 100, got %v", p.SpaceOccupancyPct)
	}
	if p.StationOccupancyPct < 0 || p.StationOccupancyPct > 100 {
		return domain.Invalid("station_occupancy_pct", "must be between 0 and 100, got %v", p.StationOccupancyPct)
	}
	if p.AvgPriceVariationPct <= -100 {
		return domain.Invalid("avg_price_variation_pct", "must be greater than -100, got %v", p.AvgPriceVariationPct)
	}
	if p.CostVariationPct <= -100 {
		return domain.Invalid("cost_variation_pct", "must be greater than -100, got %v", p.CostVariationPct)
	}
	return nil
}

// Variation is the difference between a scenario and the live baseline.
type Variation struct {
	RevenueDelta float64 `json:"revenue_delta"`
	MarginDelta  float64 `json:"margin_delta"`
}

type Result struct {
	Name               string     `json:"name"`
	Params             Params     `json:"params"`
	AvgBasePrice       float64    `json:"avg_base_price"`
	AdjustedAvgPrice   float64    `json:"adjusted_avg_price"`
	AdjustedAnnualCost float64    `json:"adjusted_annual_cost"`
	UnitsSold          int        `json:"units_sold"`
	StationsSold       int        `json:"stations_sold"`
	LotRevenue         float64    `json:"lot_revenue"`
	AnnualRevenue      float64    `json:"annual_revenue"`
	AnnualMargin       float64    `json:"annual_margin"`
	MarginPct          float64    `json:"margin_pct"`
	BreakEvenReached   bool       `json:"break_even_reached"`
	VariationVsBase    *Variation `json:"variation_vs_base,omitempty"`
}

// Simulate projects one year of business under p. When baseline is not nil
// the result carries the deltas against it.
func Simulate(name string, p Params, costs []domain.CostItem, baseline *dashboard.Baseline, a assumptions.Assumptions) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, domain.Invalid("name", "scenario name is required")
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	annualCost, err := domain.AnnualCost(costs)
	if err != nil {
		return Result{}, err
	}

	avgBase := a.ReferenceLotRevenue / a.ReferenceUnitCount
	avgAdjusted := avgBase * (1 + p.AvgPriceVariationPct/100)
	adjustedCost := annualCost * (1 + p.CostVariationPct/100)

	units := int(math.Round(p.SpaceOccupancyPct / 100 * float64(a.SpaceSlots)))
	stations := int(math.Round(p.StationOccupancyPct / 100 * float64(a.StationSlots)))

	lotRevenue := float64(units)*avgAdjusted + float64(stations)*a.Prices.StationPrice()
	annualRevenue := a.Annualize(lotRevenue)
	annualMargin := annualRevenue - adjustedCost

	res := Result{
		Name:               name,
		Params:             p,
		AvgBasePrice:       money.Round(avgBase),
		AdjustedAvgPrice:   money.Round(avgAdjusted),
		AdjustedAnnualCost: money.Round(adjustedCost),
		UnitsSold:          units,
		StationsSold:       stations,
		LotRevenue:         money.Round(lotRevenue),
		AnnualRevenue:      money.Round(annualRevenue),
		AnnualMargin:       money.Round(annualMargin),
		MarginPct:          money.Round(money.MarginPct(annualMargin, annualRevenue)),
		BreakEvenReached:   annualRevenue >= a.BreakEvenThreshold,
	}
	if baseline != nil {
		res.VariationVsBase = &Variation{
			RevenueDelta: money.Round(annualRevenue - baseline.AnnualRevenue),
			MarginDelta:  money.Round(annualMargin - baseline.AnnualMargin),
		}
	}
	return res, nil
}
