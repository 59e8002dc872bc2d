package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Simplici0/adlots/internal/dashboard"
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/metrics"
	"github.com/Simplici0/adlots/internal/response"
)

type dashboardView struct {
	*dashboard.Data
	BreakEvenBand string `json:"break_even_band"`
}

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	today, err := parseDay(q.Get("today"), s.now())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	selector := s.lotSelector(strings.TrimSpace(q.Get("lot_id")), strings.TrimSpace(q.Get("code")), today)
	data, err := s.buildDashboard(r.Context(), selector, today, q.Get("funnel") == "lot")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if data == nil {
		_ = writeJSON(w, http.StatusOK, response.APIResponse[*dashboardView]{
			Success: true,
			Message: "no current lot",
		})
		return
	}

	_ = writeJSON(w, http.StatusOK, response.OK(&dashboardView{
		Data:          data,
		BreakEvenBand: dashboard.BreakEvenBand(data.BreakEven.Pct),
	}))
}

// lotSelector resolves explicit lot parameters first. Without them the
// configured lot code wins, then the upcoming lot.
func (s *server) lotSelector(lotID, code string, today time.Time) dashboard.LotSelector {
	if lotID != "" || code != "" {
		return dashboard.Pinned(lotID, code)
	}
	return dashboard.FirstOf(dashboard.ByCode(s.currentLotCode), dashboard.Upcoming(today))
}

func (s *server) buildDashboard(ctx context.Context, selector dashboard.LotSelector, today time.Time, funnelByLot bool) (*dashboard.Data, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	in := dashboard.Input{Snapshot: snap, Selector: selector, Today: today}
	if funnelByLot {
		if lot, ok := selector.Select(snap.Lots); ok {
			in.FunnelLotID = lot.ID
		}
	}

	data, err := dashboard.Build(in, s.assumptions)
	s.metrics.Observe(metrics.EngineDashboard, err)
	if err != nil {
		return nil, err
	}
	if data != nil {
		s.metrics.SetBreakEven(data.BreakEven.Pct)
		s.log.Debug("dashboard built", "lot", data.Lot.Code, "verdict", data.GoNoGo.Verdict)
	}
	return data, nil
}

// parseDay reads a YYYY-MM-DD date, defaulting to the calendar day of now.
func parseDay(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	day, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, invalidParam("today", raw, err)
	}
	return day, nil
}
