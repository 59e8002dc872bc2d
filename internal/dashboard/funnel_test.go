package dashboard

import (
	"errors"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/seed"
)

func TestBuildFunnel_Reference(t *testing.T) {
	f, err := BuildFunnel(seed.Reference().Opportunities, "")
	if err != nil {
		t.Fatalf("BuildFunnel: %v", err)
	}

	want := map[domain.Phase]int{
		domain.PhaseLead:      2,
		domain.PhaseQualifica: 1,
		domain.PhaseOfferta:   2,
		domain.PhaseChiusura:  1,
	}
	for phase, count := range want {
		if got := f.Count(phase); got != count {
			t.Fatalf("Count(%s) = %d, want %d", phase, got, count)
		}
	}
	nearlyEqual(t, "pipeline value", f.PipelineValue, 9500)
	nearlyEqual(t, "weighted value", f.WeightedValue, 4170)
	nearlyEqual(t, "conversion rate", f.ConversionRate, 16.67)

	if len(f.Phases) != 4 || f.Phases[0].Phase != domain.PhaseLead || f.Phases[3].Phase != domain.PhaseChiusura {
		t.Fatalf("phases not in funnel order: %+v", f.Phases)
	}
}

func TestBuildFunnel_EmptyHasZeroConversion(t *testing.T) {
	f, err := BuildFunnel(nil, "")
	if err != nil {
		t.Fatalf("BuildFunnel: %v", err)
	}
	if f.Total != 0 || f.ConversionRate != 0 {
		t.Fatalf("unexpected empty funnel: %+v", f)
	}
}

func TestBuildFunnel_UnknownPhase(t *testing.T) {
	_, err := BuildFunnel([]domain.Opportunity{{ID: "x", Phase: "PERSA"}}, "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBuildFunnel_CountsSumToTotal(t *testing.T) {
	property := func(seedValue int64) bool {
		r := rand.New(rand.NewSource(seedValue))
		n := r.Intn(50)
		opps := make([]domain.Opportunity, n)
		for i := range opps {
			opps[i] = domain.Opportunity{
				Phase:         domain.Phases[r.Intn(len(domain.Phases))],
				ExpectedValue: float64(r.Intn(5000)),
				Probability:   float64(r.Intn(101)),
			}
		}

		f, err := BuildFunnel(opps, "")
		if err != nil {
			return false
		}
		sum := 0
		for _, pc := range f.Phases {
			sum += pc.Count
		}
		return sum == f.Total && f.Total == n
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatal(err)
	}
}
