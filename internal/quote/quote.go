package quote

import (
	"fmt"
	"math"

	"github.com/Simplici0/adlots/internal/assumptions"
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/money"
	"github.com/Simplici0/adlots/internal/pricing"
)

// SpaceLine asks for Quantity spaces of one tier at one discount.
type SpaceLine struct {
	UnitType domain.UnitType `json:"unit_type"`
	Quantity int             `json:"quantity"`
	Discount float64         `json:"discount"`
}

// StationLine asks for one station. Stations are always sold one at a time.
type StationLine struct {
	StationNumber int     `json:"station_number"`
	Discount      float64 `json:"discount"`
}

// Request is the input of a quote. Client and lot references are echoed back
// and not resolved.
type Request struct {
	ClientID string        `json:"client_id"`
	LotID    string        `json:"lot_id"`
	Spaces   []SpaceLine   `json:"spaces"`
	Stations []StationLine `json:"stations"`
}

// LineResult is one priced row of the breakdown.
type LineResult struct {
	Kind          string          `json:"kind"`
	UnitType      domain.UnitType `json:"unit_type,omitempty"`
	StationNumber int             `json:"station_number,omitempty"`
	Quantity      int             `json:"quantity"`
	ListPrice     float64         `json:"list_price"`
	Discount      float64         `json:"discount"`
	UnitNet       float64         `json:"unit_net"`
	LineTotal     float64         `json:"line_total"`
}

const (
	KindSpace   = "SPACE"
	KindStation = "STATION"
)

// Result is the priced quote.
type Result struct {
	ClientID      string       `json:"client_id"`
	LotID         string       `json:"lot_id"`
	Lines         []LineResult `json:"lines"`
	TotalRevenue  float64      `json:"total_revenue"`
	AnnualCost    float64      `json:"annual_cost"`
	AllocatedCost float64      `json:"allocated_cost"`
	GrossMargin   float64      `json:"gross_margin"`
	MarginPct     float64      `json:"margin_pct"`
}

// Calculate prices every line of the request and compares the revenue with
// the share of annual structural cost allocated to one lot.
//
// Discounts are not range checked: a discount of 100% or more gives a zero or
// negative net price.
func Calculate(req Request, costs []domain.CostItem, a assumptions.Assumptions) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, err
	}
	if err := validate(req); err != nil {
		return Result{}, err
	}

	lines := make([]LineResult, 0, len(req.Spaces)+len(req.Stations))
	lineTotals := make([]float64, 0, cap(lines))

	for _, sl := range req.Spaces {
		listPrice, err := a.Prices.SpacePrice(sl.UnitType)
		if err != nil {
			return Result{}, err
		}
		unitNet := money.Round(pricing.NetPrice(listPrice, sl.Discount))
		lineTotal := money.Round(unitNet * float64(sl.Quantity))
		lineTotals = append(lineTotals, lineTotal)

		lines = append(lines, LineResult{
			Kind:      KindSpace,
			UnitType:  sl.UnitType,
			Quantity:  sl.Quantity,
			ListPrice: listPrice,
			Discount:  sl.Discount,
			UnitNet:   unitNet,
			LineTotal: lineTotal,
		})
	}

	stationPrice := a.Prices.StationPrice()
	for _, st := range req.Stations {
		unitNet := money.Round(pricing.NetPrice(stationPrice, st.Discount))
		lineTotals = append(lineTotals, unitNet)

		lines = append(lines, LineResult{
			Kind:          KindStation,
			StationNumber: st.StationNumber,
			Quantity:      1,
			ListPrice:     stationPrice,
			Discount:      st.Discount,
			UnitNet:       unitNet,
			LineTotal:     unitNet,
		})
	}

	annualCost, err := domain.AnnualCost(costs)
	if err != nil {
		return Result{}, err
	}
	// Totals are built from the displayed cents so that they add up.
	totalRevenue := money.Sum(lineTotals...)
	allocatedCost := money.Round(a.AllocatedCost(annualCost))
	grossMargin := money.Sub(totalRevenue, allocatedCost)

	return Result{
		ClientID:      req.ClientID,
		LotID:         req.LotID,
		Lines:         lines,
		TotalRevenue:  totalRevenue,
		AnnualCost:    money.Round(annualCost),
		AllocatedCost: allocatedCost,
		GrossMargin:   grossMargin,
		MarginPct:     money.Round(money.MarginPct(grossMargin, totalRevenue)),
	}, nil
}

func validate(req Request) error {
	for i, sl := range req.Spaces {
		field := fmt.Sprintf("spaces[%d]", i)
		if sl.Quantity < 1 {
			return domain.Invalid(field+".quantity", "must be at least 1, got %d", sl.Quantity)
		}
		if !finite(sl.Discount) {
			return domain.Invalid(field+".discount", "must be a finite number")
		}
	}

	seen := make(map[int]bool, len(req.Stations))
	for i, st := range req.Stations {
		field := fmt.Sprintf("stations[%d]", i)
		if st.StationNumber < 1 {
			return domain.Invalid(field+".station_number", "must be positive, got %d", st.StationNumber)
		}
		if seen[st.StationNumber] {
			return domain.Invalid(field+".station_number", "station %d is quoted twice", st.StationNumber)
		}
		seen[st.StationNumber] = true
		if !finite(st.Discount) {
			return domain.Invalid(field+".discount", "must be a finite number")
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
