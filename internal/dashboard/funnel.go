package dashboard

import (
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/money"
)

type PhaseCount struct {
	Phase domain.Phase `json:"phase"`
	Count int          `json:"count"`
	Value float64      `json:"value"`
}

// Funnel summarizes open opportunities by pipeline phase.
type Funnel struct {
	Phases         []PhaseCount `json:"phases"`
	Total          int          `json:"total"`
	PipelineValue  float64      `json:"pipeline_value"`
	WeightedValue  float64      `json:"weighted_value"`
	ConversionRate float64      `json:"conversion_rate"`
}

// Count returns the number of opportunities in a phase.
func (f Funnel) Count(p domain.Phase) int {
	for _, pc := range f.Phases {
		if pc.Phase == p {
			return pc.Count
		}
	}
	return 0
}

// BuildFunnel counts opportunities per phase. When lotID is not empty only
// opportunities on that lot are counted. Opportunities in an unknown phase
// are rejected so that the phase counts always add up to Total.
func BuildFunnel(opps []domain.Opportunity, lotID string) (Funnel, error) {
	index := make(map[domain.Phase]int, len(domain.Phases))
	f := Funnel{Phases: make([]PhaseCount, len(domain.Phases))}
	for i, p := range domain.Phases {
		index[p] = i
		f.Phases[i].Phase = p
	}

	for _, o := range opps {
		if lotID != "" && o.LotID != lotID {
			continue
		}
		i, ok := index[o.Phase]
		if !ok {
			return Funnel{}, domain.Invalid("phase", "opportunity %s has unknown phase %q", o.ID, o.Phase)
		}
		f.Phases[i].Count++
		f.Phases[i].Value += o.ExpectedValue
		f.Total++
		f.PipelineValue += o.ExpectedValue
		f.WeightedValue += o.ExpectedValue * o.Probability / 100
	}

	for i := range f.Phases {
		f.Phases[i].Value = money.Round(f.Phases[i].Value)
	}
	f.PipelineValue = money.Round(f.PipelineValue)
	f.WeightedValue = money.Round(f.WeightedValue)
	f.ConversionRate = money.Round(money.Percent(float64(f.Count(domain.PhaseChiusura)), float64(f.Total)))
	return f, nil
}
