package dashboard

import (
	"testing"
	"time"

	"github.com/Simplici0/adlots/internal/domain"
)

func selectorLots() []domain.Lot {
	return []domain.Lot{
		{ID: "a", Code: "2025-Q3-AL", Status: domain.LotClosed, StartDate: day(2025, time.June, 1), EndDate: day(2025, time.September, 30)},
		{ID: "b", Code: "2025-Q4-AL", Status: domain.LotActive, StartDate: day(2025, time.October, 1), EndDate: day(2026, time.January, 31)},
		{ID: "c", Code: "2026-Q1-AL", Status: domain.LotPlanned, StartDate: day(2026, time.February, 1), EndDate: day(2026, time.May, 31)},
		{ID: "d", Code: "2026-Q2-AL", Status: domain.LotPlanned, StartDate: day(2026, time.June, 1), EndDate: day(2026, time.September, 30)},
	}
}

func TestSelectors(t *testing.T) {
	lots := selectorLots()

	tests := []struct {
		name     string
		selector LotSelector
		wantID   string
		wantOK   bool
	}{
		{"by id", ByID("c"), "c", true},
		{"by id missing", ByID("zzz"), "", false},
		{"by empty id", ByID(""), "", false},
		{"by code", ByCode("2025-Q4-AL"), "b", true},
		{"by code missing", ByCode("2030-Q1-AL"), "", false},
		{"pinned wins", Pinned("d", "2025-Q4-AL"), "d", true},
		{"pinned falls back to code", Pinned("", "2025-Q4-AL"), "b", true},
		{"pinned stale id falls back", Pinned("gone", "2026-Q1-AL"), "c", true},
		{"upcoming picks running lot", Upcoming(day(2025, time.November, 15)), "b", true},
		{"upcoming picks next planned", Upcoming(day(2026, time.February, 15)), "d", true},
		{"upcoming nothing left", Upcoming(day(2027, time.January, 1)), "", false},
		{"first of", FirstOf(ByCode("nope"), ByID("a")), "a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.selector.Select(lots)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got.ID != tt.wantID {
				t.Fatalf("selected %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}
