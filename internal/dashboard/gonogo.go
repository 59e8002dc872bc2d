package dashboard

import (
	"math"
	"time"

	"github.com/Simplici0/adlots/internal/money"
)

// Verdict is the production readiness of a lot.
type Verdict string

const (
	VerdictGo      Verdict = "GO"
	VerdictWarning Verdict = "WARNING"
	VerdictNoGo    Verdict = "NO_GO"
)

type GoNoGo struct {
	Verdict       Verdict `json:"verdict"`
	Blocked       bool    `json:"blocked"`
	DaysRemaining int     `json:"days_remaining"`
	Occupancy     float64 `json:"occupancy"`
	Threshold     float64 `json:"threshold"`
}

// DaysUntil counts whole days from today to start, rounding partial days up.
// It is negative once the lot has started.
func DaysUntil(start, today time.Time) int {
	return int(math.Ceil(start.Sub(today).Hours() / 24))
}

// Decide classifies a lot from its space occupancy and the days left before
// it starts. Reaching the threshold is always GO. Below the threshold, only
// urgency matters: far from the start date the verdict is still GO.
func Decide(occupancy, threshold float64, daysRemaining, noGoDays, warningDays int) GoNoGo {
	g := GoNoGo{
		Verdict:       VerdictGo,
		DaysRemaining: daysRemaining,
		Occupancy:     money.Round(occupancy),
		Threshold:     threshold,
	}
	switch {
	case occupancy >= threshold:
		// on target
	case daysRemaining <= noGoDays:
		g.Verdict = VerdictNoGo
		g.Blocked = true
	case daysRemaining <= warningDays:
		g.Verdict = VerdictWarning
	}
	return g
}
