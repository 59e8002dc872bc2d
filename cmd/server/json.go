package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/response"
	"github.com/Simplici0/adlots/internal/store"
)

const maxBodyBytes = 1_048_576 // 1 MB

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message, field string) error {
	return writeJSON(w, status, &response.ErrorResponse{Error: message, Field: field})
}

// readJSON decodes one JSON document and rejects unknown fields. Decode
// failures are returned as validation errors.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(data); err != nil {
		return domain.Invalid("body", "malformed JSON: %v", err)
	}
	if dec.More() {
		return domain.Invalid("body", "must contain a single JSON document")
	}
	return nil
}

// writeError maps engine and storage errors onto HTTP statuses.
func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInvalidState):
		_ = writeJSONError(w, http.StatusUnprocessableEntity, err.Error(), "")
	case errors.As(err, &verr):
		_ = writeJSONError(w, http.StatusBadRequest, verr.Reason, verr.Field)
	case errors.Is(err, domain.ErrInvalidInput):
		_ = writeJSONError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, store.ErrNotFound):
		_ = writeJSONError(w, http.StatusNotFound, err.Error(), "")
	default:
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		_ = writeJSONError(w, http.StatusInternalServerError, "internal error", "")
	}
}

func invalidParam(name, raw string, err error) error {
	return domain.Invalid(name, "cannot parse %q: %v", raw, err)
}
