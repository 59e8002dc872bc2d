package assumptions

import (
	"errors"
	"testing"

	"github.com/Simplici0/adlots/internal/domain"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Assumptions)
	}{
		{"zero lots per year", func(a *Assumptions) { a.LotsPerYear = 0 }},
		{"zero reference units", func(a *Assumptions) { a.ReferenceUnitCount = 0 }},
		{"negative threshold", func(a *Assumptions) { a.BreakEvenThreshold = -1 }},
		{"negative slots", func(a *Assumptions) { a.SpaceSlots = -1 }},
		{"warning before no-go", func(a *Assumptions) { a.WarningDays = 7 }},
		{"negative price", func(a *Assumptions) { a.Prices.Station = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Default()
			tt.mutate(&a)
			if err := a.Validate(); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAllocatedCostAndAnnualize(t *testing.T) {
	a := Default()
	if got := a.AllocatedCost(46200); got != 15400 {
		t.Fatalf("AllocatedCost = %v, want 15400", got)
	}
	if got := a.Annualize(25600); got != 76800 {
		t.Fatalf("Annualize = %v, want 76800", got)
	}
}
