package dashboard

import (
	"time"

	"github.com/Simplici0/adlots/internal/domain"
)

// LotSelector picks the "current lot" out of every known lot. It reports
// false when no lot qualifies, which is a normal state for an empty system.
type LotSelector interface {
	Select(lots []domain.Lot) (domain.Lot, bool)
}

// SelectorFunc adapts a plain function to LotSelector.
type SelectorFunc func(lots []domain.Lot) (domain.Lot, bool)

func (f SelectorFunc) Select(lots []domain.Lot) (domain.Lot, bool) {
	return f(lots)
}

// ByID selects the lot with the given id.
func ByID(id string) LotSelector {
	return SelectorFunc(func(lots []domain.Lot) (domain.Lot, bool) {
		for _, l := range lots {
			if id != "" && l.ID == id {
				return l, true
			}
		}
		return domain.Lot{}, false
	})
}

// ByCode selects the lot with the given code, e.g. "2025-Q4-AL".
func ByCode(code string) LotSelector {
	return SelectorFunc(func(lots []domain.Lot) (domain.Lot, bool) {
		for _, l := range lots {
			if code != "" && l.Code == code {
				return l, true
			}
		}
		return domain.Lot{}, false
	})
}

// Pinned prefers the lot the user pinned and falls back to a lot code.
func Pinned(pinnedID, fallbackCode string) LotSelector {
	return SelectorFunc(func(lots []domain.Lot) (domain.Lot, bool) {
		if l, ok := ByID(pinnedID).Select(lots); ok {
			return l, true
		}
		return ByCode(fallbackCode).Select(lots)
	})
}

// Upcoming selects the active lot running on today, or else the earliest lot
// that has not started yet and is not closed.
func Upcoming(today time.Time) LotSelector {
	return SelectorFunc(func(lots []domain.Lot) (domain.Lot, bool) {
		for _, l := range lots {
			if l.Status == domain.LotActive && !today.Before(l.StartDate) && !today.After(l.EndDate) {
				return l, true
			}
		}

		var next domain.Lot
		found := false
		for _, l := range lots {
			if l.Status == domain.LotClosed || !l.StartDate.After(today) {
				continue
			}
			if !found || l.StartDate.Before(next.StartDate) {
				next, found = l, true
			}
		}
		return next, found
	})
}

// FirstOf tries each selector in order.
func FirstOf(selectors ...LotSelector) LotSelector {
	return SelectorFunc(func(lots []domain.Lot) (domain.Lot, bool) {
		for _, s := range selectors {
			if l, ok := s.Select(lots); ok {
				return l, true
			}
		}
		return domain.Lot{}, false
	})
}
