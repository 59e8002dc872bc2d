package main

import (
	"net/http"

	"github.com/Simplici0/adlots/internal/metrics"
	"github.com/Simplici0/adlots/internal/quote"
	"github.com/Simplici0/adlots/internal/response"
)

func (s *server) handleQuoteCalculate(w http.ResponseWriter, r *http.Request) {
	var req quote.Request
	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	costs, err := s.store.ListCostItems(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := quote.Calculate(req, costs, s.assumptions)
	s.metrics.Observe(metrics.EngineQuote, err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, response.OK(res))
}
