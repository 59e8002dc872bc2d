package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/adlots/internal/assumptions"
	"github.com/Simplici0/adlots/internal/metrics"
	"github.com/Simplici0/adlots/internal/store"
)

const requestTimeout = 30 * time.Second

type server struct {
	store          *store.Store
	assumptions    assumptions.Assumptions
	currentLotCode string
	log            *slog.Logger
	metrics        *metrics.Metrics
	now            func() time.Time
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/dashboard", s.handleDashboard)
		r.Post("/quotes", s.handleQuoteCalculate)
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", s.handleScenariosList)
			r.Post("/", s.handleScenarioSave)
			r.Get("/presets", s.handleScenarioPresets)
			r.Post("/simulate", s.handleScenarioSimulate)
			r.Delete("/{id}", s.handleScenarioDelete)
		})
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
