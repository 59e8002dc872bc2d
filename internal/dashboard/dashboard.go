package dashboard

import (
	"fmt"
	"time"

	"github.com/Simplici0/adlots/internal/assumptions"
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/money"
)

// Input is everything a dashboard is computed from.
type Input struct {
	Snapshot domain.Snapshot
	Selector LotSelector
	Today    time.Time
	// FunnelLotID restricts the funnel to one lot. Empty counts every opportunity.
	FunnelLotID string
}

type Occupancy struct {
	SpacesSold    int     `json:"spaces_sold"`
	SpacesTotal   int     `json:"spaces_total"`
	SpacePct      float64 `json:"space_pct"`
	StationsSold  int     `json:"stations_sold"`
	StationsTotal int     `json:"stations_total"`
	StationPct    float64 `json:"station_pct"`
}

type Revenue struct {
	Spaces          float64 `json:"spaces"`
	Stations        float64 `json:"stations"`
	Current         float64 `json:"current"`
	ProjectedAnnual float64 `json:"projected_annual"`
	Target          float64 `json:"target"`
	TargetPct       float64 `json:"target_pct"`
}

type Costs struct {
	Annual    float64 `json:"annual"`
	Allocated float64 `json:"allocated"`
}

type Margin struct {
	Lot       float64 `json:"lot"`
	LotPct    float64 `json:"lot_pct"`
	Annual    float64 `json:"annual"`
	AnnualPct float64 `json:"annual_pct"`
}

// BreakEven compares projected annual revenue with the yearly threshold.
// Display bands are derived separately with BreakEvenBand.
type BreakEven struct {
	Threshold       float64 `json:"threshold"`
	ProjectedAnnual float64 `json:"projected_annual"`
	Pct             float64 `json:"pct"`
}

type Cash struct {
	In      float64 `json:"in"`
	Out     float64 `json:"out"`
	Balance float64 `json:"balance"`
}

// Data is the derived dashboard of the current lot. It is never cached.
type Data struct {
	Lot       domain.Lot `json:"lot"`
	Occupancy Occupancy  `json:"occupancy"`
	Revenue   Revenue    `json:"revenue"`
	Costs     Costs      `json:"costs"`
	Margin    Margin     `json:"margin"`
	BreakEven BreakEven  `json:"break_even"`
	GoNoGo    GoNoGo     `json:"go_no_go"`
	Funnel    Funnel     `json:"funnel"`
	Cash      Cash       `json:"cash"`
}

// Baseline is the current-state annual figures used to compare scenarios.
type Baseline struct {
	AnnualRevenue float64 `json:"annual_revenue"`
	AnnualMargin  float64 `json:"annual_margin"`
}

func (d *Data) Baseline() Baseline {
	return Baseline{
		AnnualRevenue: d.Revenue.ProjectedAnnual,
		AnnualMargin:  d.Margin.Annual,
	}
}

// Build computes the dashboard of the lot picked by in.Selector. It returns
// nil and no error when no lot is selected.
func Build(in Input, a assumptions.Assumptions) (*Data, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if in.Selector == nil {
		return nil, domain.Invalid("selector", "a lot selector is required")
	}
	if in.Today.IsZero() {
		return nil, domain.Invalid("today", "reference date is required")
	}

	lot, ok := in.Selector.Select(in.Snapshot.Lots)
	if !ok {
		return nil, nil
	}
	if err := lot.Validate(); err != nil {
		return nil, err
	}

	occ, spaceRevenue, stationRevenue, err := occupancy(lot, in.Snapshot.Spaces, in.Snapshot.Stations)
	if err != nil {
		return nil, err
	}

	annualCost, err := domain.AnnualCost(in.Snapshot.Costs)
	if err != nil {
		return nil, err
	}
	annualCost = money.Round(annualCost)
	allocated := money.Round(a.AllocatedCost(annualCost))

	// Every figure derives from cents already rounded, so the displayed parts
	// add up to the displayed totals.
	current := money.Sum(spaceRevenue, stationRevenue)
	projected := money.Round(a.Annualize(current))
	lotMargin := money.Sub(current, allocated)
	annualMargin := money.Sub(projected, annualCost)

	funnel, err := BuildFunnel(in.Snapshot.Opportunities, in.FunnelLotID)
	if err != nil {
		return nil, err
	}

	cash, err := cashSummary(in.Snapshot.CashMovements)
	if err != nil {
		return nil, err
	}

	return &Data{
		Lot:       lot,
		Occupancy: occ,
		Revenue: Revenue{
			Spaces:          spaceRevenue,
			Stations:        stationRevenue,
			Current:         current,
			ProjectedAnnual: projected,
			Target:          money.Round(lot.TargetRevenue),
			TargetPct:       money.Round(money.Percent(current, lot.TargetRevenue)),
		},
		Costs: Costs{
			Annual:    annualCost,
			Allocated: allocated,
		},
		Margin: Margin{
			Lot:       lotMargin,
			LotPct:    money.Round(money.MarginPct(lotMargin, current)),
			Annual:    annualMargin,
			AnnualPct: money.Round(money.MarginPct(annualMargin, projected)),
		},
		BreakEven: BreakEven{
			Threshold:       money.Round(a.BreakEvenThreshold),
			ProjectedAnnual: projected,
			Pct:             money.Round(money.Percent(projected, a.BreakEvenThreshold)),
		},
		GoNoGo: Decide(
			money.Percent(float64(occ.SpacesSold), float64(occ.SpacesTotal)),
			lot.GoNoGoThreshold,
			DaysUntil(lot.StartDate, in.Today),
			a.NoGoDays,
			a.WarningDays,
		),
		Funnel: funnel,
		Cash:   cash,
	}, nil
}

func occupancy(lot domain.Lot, spaces []domain.Space, stations []domain.Station) (Occupancy, float64, float64, error) {
	occ := Occupancy{SpacesTotal: lot.TotalSpaces, StationsTotal: lot.TotalStations}
	var spaceNets, stationNets []float64

	for _, s := range spaces {
		if s.LotID == lot.ID && s.Status == domain.SpaceVenduto {
			occ.SpacesSold++
			spaceNets = append(spaceNets, s.NetPrice)
		}
	}
	for _, s := range stations {
		if s.LotID == lot.ID && s.Status == domain.StationVenduta {
			occ.StationsSold++
			stationNets = append(stationNets, s.NetPrice)
		}
	}

	if occ.SpacesSold > occ.SpacesTotal {
		return Occupancy{}, 0, 0, fmt.Errorf("%w: lot %s has %d sold spaces for %d in inventory",
			domain.ErrInvalidState, lot.Code, occ.SpacesSold, occ.SpacesTotal)
	}
	if occ.StationsSold > occ.StationsTotal {
		return Occupancy{}, 0, 0, fmt.Errorf("%w: lot %s has %d sold stations for %d in inventory",
			domain.ErrInvalidState, lot.Code, occ.StationsSold, occ.StationsTotal)
	}

	occ.SpacePct = money.Round(money.Percent(float64(occ.SpacesSold), float64(occ.SpacesTotal)))
	occ.StationPct = money.Round(money.Percent(float64(occ.StationsSold), float64(occ.StationsTotal)))
	return occ, money.Sum(spaceNets...), money.Sum(stationNets...), nil
}

func cashSummary(movements []domain.CashMovement) (Cash, error) {
	var in, out []float64
	for _, m := range movements {
		switch m.Direction {
		case domain.DirectionEntrata:
			in = append(in, m.Amount)
		case domain.DirectionUscita:
			out = append(out, m.Amount)
		default:
			return Cash{}, domain.Invalid("direction", "cash movement %s has unknown direction %q", m.ID, m.Direction)
		}
	}
	c := Cash{In: money.Sum(in...), Out: money.Sum(out...)}
	c.Balance = money.Sub(c.In, c.Out)
	return c, nil
}

// Break-even display bands.
const (
	BandReached     = "REACHED"
	BandApproaching = "APPROACHING"
	BandNotReached  = "NOT_REACHED"
)

// BreakEvenBand maps a break-even percentage to its display band.
func BreakEvenBand(pct float64) string {
	switch {
	case pct >= 100:
		return BandReached
	case pct >= 80:
		return BandApproaching
	default:
		return BandNotReached
	}
}
