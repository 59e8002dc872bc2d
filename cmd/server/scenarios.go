package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/adlots/internal/dashboard"
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/metrics"
	"github.com/Simplici0/adlots/internal/response"
	"github.com/Simplici0/adlots/internal/scenario"
)

// scenarioRequest names either a preset or explicit params. Explicit params
// win when both are given.
type scenarioRequest struct {
	Name   string           `json:"name"`
	Preset string           `json:"preset"`
	Params *scenario.Params `json:"params"`
}

func (req scenarioRequest) resolve() (string, scenario.Params, error) {
	name := strings.TrimSpace(req.Name)
	if req.Params != nil {
		return name, *req.Params, nil
	}
	if req.Preset == "" {
		return "", scenario.Params{}, domain.Invalid("params", "params or preset is required")
	}
	p, ok := scenario.PresetByName(req.Preset)
	if !ok {
		return "", scenario.Params{}, domain.Invalid("preset", "unknown preset %q", req.Preset)
	}
	if name == "" {
		name = p.Name
	}
	return name, p.Params, nil
}

func (s *server) handleScenarioPresets(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, response.OK(scenario.Presets()))
}

func (s *server) handleScenarioSimulate(w http.ResponseWriter, r *http.Request) {
	res, _, err := s.simulate(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, response.OK(res))
}

func (s *server) handleScenarioSave(w http.ResponseWriter, r *http.Request) {
	res, params, err := s.simulate(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	saved, err := s.store.SaveScenario(r.Context(), res.Name, params, res)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.log.Info("scenario saved", "id", saved.ID, "name", saved.Name)

	_ = writeJSON(w, http.StatusCreated, response.OK(saved))
}

func (s *server) handleScenariosList(w http.ResponseWriter, r *http.Request) {
	scenarios, err := s.store.ListScenarios(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, response.OK(scenarios))
}

func (s *server) handleScenarioDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteScenario(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) simulate(w http.ResponseWriter, r *http.Request) (scenario.Result, scenario.Params, error) {
	var req scenarioRequest
	if err := readJSON(w, r, &req); err != nil {
		return scenario.Result{}, scenario.Params{}, err
	}
	name, params, err := req.resolve()
	if err != nil {
		return scenario.Result{}, scenario.Params{}, err
	}

	costs, err := s.store.ListCostItems(r.Context())
	if err != nil {
		return scenario.Result{}, scenario.Params{}, err
	}

	res, err := scenario.Simulate(name, params, costs, s.baseline(r.Context()), s.assumptions)
	s.metrics.Observe(metrics.EngineScenario, err)
	if err != nil {
		return scenario.Result{}, scenario.Params{}, err
	}
	return res, params, nil
}

// baseline is the live state of the current lot, or nil when there is none
// or it cannot be computed.
func (s *server) baseline(ctx context.Context) *dashboard.Baseline {
	today, _ := parseDay("", s.now())
	data, err := s.buildDashboard(ctx, s.lotSelector("", "", today), today, false)
	if err != nil {
		s.log.Warn("scenario baseline unavailable", "err", err)
		return nil
	}
	if data == nil {
		return nil
	}
	b := data.Baseline()
	return &b
}
