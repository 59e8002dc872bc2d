package domain

import (
	"slices"
	"strings"
)

func (c Client) Validate() error {
	if strings.TrimSpace(c.TaxID) == "" {
		return Invalid("tax_id", "client %s has no tax id", c.ID)
	}
	switch c.Category {
	case ClientCategoryStabilimento, ClientCategoryCommercio, ClientCategoryEnte, ClientCategoryAltro:
		return nil
	}
	return Invalid("category", "client %s has unknown category %q", c.ID, c.Category)
}

// Validate checks a lot's own fields. Inventory against sold units is checked
// where both are known.
func (l Lot) Validate() error {
	if strings.TrimSpace(l.Code) == "" {
		return Invalid("code", "lot %s has no code", l.ID)
	}
	switch l.Status {
	case LotPlanned, LotActive, LotSuspended, LotClosed:
	default:
		return Invalid("status", "lot %s has unknown status %q", l.Code, l.Status)
	}
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return Invalid("end_date", "lot %s needs both a start and an end date", l.Code)
	}
	if !l.EndDate.After(l.StartDate) {
		return Invalid("end_date", "lot %s ends on %s, not after its start on %s",
			l.Code, l.EndDate.Format(DateLayout), l.StartDate.Format(DateLayout))
	}
	if l.TotalSpaces < 0 || l.TotalStations < 0 {
		return Invalid("total_spaces", "lot %s has negative inventory", l.Code)
	}
	return nil
}

func (s Space) Validate() error {
	switch s.Type {
	case UnitStandard, UnitPlus, UnitPremium:
	default:
		return Invalid("type", "space %s has unknown unit type %q", s.ID, s.Type)
	}
	switch s.Status {
	case SpaceLibero, SpaceOpzionato, SpaceVenduto, SpaceInvenduto:
		return nil
	}
	return Invalid("status", "space %s has unknown status %q", s.ID, s.Status)
}

func (s Station) Validate() error {
	switch s.Status {
	case StationLibera, StationOpzionata, StationVenduta:
		return nil
	}
	return Invalid("status", "station %s has unknown status %q", s.ID, s.Status)
}

func (o Opportunity) Validate() error {
	if !slices.Contains(Phases, o.Phase) {
		return Invalid("phase", "opportunity %s has unknown phase %q", o.ID, o.Phase)
	}
	switch o.Type {
	case OpportunitySpazio, OpportunityStazione, OpportunityMisto:
	default:
		return Invalid("type", "opportunity %s has unknown type %q", o.ID, o.Type)
	}
	if o.Probability < 0 || o.Probability > 100 {
		return Invalid("probability", "opportunity %s has probability %v outside 0..100", o.ID, o.Probability)
	}
	return nil
}
