package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/adlots/internal/assumptions"
	"github.com/Simplici0/adlots/internal/db"
	"github.com/Simplici0/adlots/internal/metrics"
	"github.com/Simplici0/adlots/internal/migrations"
	"github.com/Simplici0/adlots/internal/quote"
	"github.com/Simplici0/adlots/internal/scenario"
	"github.com/Simplici0/adlots/internal/seed"
	"github.com/Simplici0/adlots/internal/store"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestServer(t *testing.T, withSeed bool) http.Handler {
	t.Helper()
	ctx := context.Background()

	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "server-test.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if withSeed {
		if _, err := seed.Run(ctx, database); err != nil {
			t.Fatalf("run seed: %v", err)
		}
	}

	srv := &server{
		store:          store.New(database),
		assumptions:    assumptions.Default(),
		currentLotCode: seed.ReferenceLotCode,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:        metrics.New(),
		now: func() time.Time {
			return time.Date(2025, time.September, 20, 8, 30, 0, 0, time.UTC)
		},
	}
	return srv.routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, rr.Body.String())
	}
	return env
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, false)
	rr := do(t, h, http.MethodGet, "/v1/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}

func TestDashboardReferenceLot(t *testing.T) {
	h := newTestServer(t, true)

	rr := do(t, h, http.MethodGet, "/v1/dashboard", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	env := decode[map[string]any](t, rr)
	if !env.Success || env.Data == nil {
		t.Fatalf("expected dashboard data, got %+v", env)
	}
	if env.Data["break_even_band"] != "REACHED" {
		t.Fatalf("unexpected band: %v", env.Data["break_even_band"])
	}
	revenue := env.Data["revenue"].(map[string]any)
	if revenue["current"].(float64) != 25600 {
		t.Fatalf("unexpected current revenue: %v", revenue["current"])
	}
	gonogo := env.Data["go_no_go"].(map[string]any)
	if gonogo["verdict"] != "GO" {
		t.Fatalf("unexpected verdict: %v", gonogo["verdict"])
	}
}

func TestDashboardWithoutLotReturnsNullData(t *testing.T) {
	h := newTestServer(t, false)

	rr := do(t, h, http.MethodGet, "/v1/dashboard", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"data":null`) {
		t.Fatalf("expected null data, got %s", rr.Body.String())
	}
}

func TestDashboardRejectsBadDate(t *testing.T) {
	h := newTestServer(t, true)

	rr := do(t, h, http.MethodGet, "/v1/dashboard?today=20-09-2025", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"field":"today"`) {
		t.Fatalf("expected field in error, got %s", rr.Body.String())
	}
}

func TestDashboardByCodeAndFunnelFilter(t *testing.T) {
	h := newTestServer(t, true)

	rr := do(t, h, http.MethodGet, "/v1/dashboard?code=2025-Q4-AL&funnel=lot&today=2025-09-25", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	env := decode[map[string]any](t, rr)
	funnel := env.Data["funnel"].(map[string]any)
	if funnel["total"].(float64) != 2 {
		t.Fatalf("expected lot funnel of 2, got %v", funnel["total"])
	}
}

func TestQuoteCalculate(t *testing.T) {
	h := newTestServer(t, true)

	body := `{"client_id":"cli-comune","lot_id":"lot-2025-q4-al",
		"spaces":[{"unit_type":"PREMIUM","quantity":2,"discount":10}],
		"stations":[{"station_number":9,"discount":0}]}`
	rr := do(t, h, http.MethodPost, "/v1/quotes", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	env := decode[quote.Result](t, rr)
	if math.Abs(env.Data.TotalRevenue-3600) > 0.01 {
		t.Fatalf("expected revenue 3600, got %v", env.Data.TotalRevenue)
	}
	if math.Abs(env.Data.AllocatedCost-15400) > 0.01 {
		t.Fatalf("expected allocated cost 15400, got %v", env.Data.AllocatedCost)
	}
	if len(env.Data.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(env.Data.Lines))
	}
}

func TestQuoteValidationErrors(t *testing.T) {
	h := newTestServer(t, true)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"spaces":`},
		{"unknown field", `{"spacez":[]}`},
		{"unknown unit type", `{"spaces":[{"unit_type":"GOLD","quantity":1}]}`},
		{"zero quantity", `{"spaces":[{"unit_type":"PLUS","quantity":0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/v1/quotes", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestScenarioPresetsAndSimulate(t *testing.T) {
	h := newTestServer(t, true)

	rr := do(t, h, http.MethodGet, "/v1/scenarios/presets", "")
	presets := decode[[]scenario.Preset](t, rr)
	if len(presets.Data) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets.Data))
	}

	rr = do(t, h, http.MethodPost, "/v1/scenarios/simulate", `{"preset":"BASE"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	res := decode[scenario.Result](t, rr)
	if res.Data.Name != "BASE" || res.Data.VariationVsBase == nil {
		t.Fatalf("expected BASE result with variation, got %+v", res.Data)
	}
	if math.Abs(res.Data.VariationVsBase.RevenueDelta) > 0.01 {
		t.Fatalf("base scenario drifts from dashboard: %+v", res.Data.VariationVsBase)
	}

	rr = do(t, h, http.MethodGet, "/v1/scenarios", "")
	if list := decode[[]store.SavedScenario](t, rr); len(list.Data) != 0 {
		t.Fatalf("simulate must not persist, found %d", len(list.Data))
	}
}

func TestScenarioSaveListDelete(t *testing.T) {
	h := newTestServer(t, true)

	body := `{"name":"Autunno","params":{"space_occupancy_pct":75,"station_occupancy_pct":50,"avg_price_variation_pct":5,"cost_variation_pct":0}}`
	rr := do(t, h, http.MethodPost, "/v1/scenarios", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	saved := decode[store.SavedScenario](t, rr)
	if saved.Data.ID == "" || saved.Data.Result.UnitsSold != 14 {
		t.Fatalf("unexpected saved scenario: %+v", saved.Data)
	}

	rr = do(t, h, http.MethodGet, "/v1/scenarios?q=autu", "")
	list := decode[[]store.SavedScenario](t, rr)
	if len(list.Data) != 1 || list.Data[0].ID != saved.Data.ID {
		t.Fatalf("expected the saved scenario, got %+v", list.Data)
	}

	rr = do(t, h, http.MethodDelete, "/v1/scenarios/"+saved.Data.ID, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rr.Code)
	}
	rr = do(t, h, http.MethodDelete, "/v1/scenarios/"+saved.Data.ID, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestScenarioValidationErrors(t *testing.T) {
	h := newTestServer(t, true)

	tests := []struct {
		name string
		body string
	}{
		{"nothing to simulate", `{"name":"x"}`},
		{"unknown preset", `{"preset":"WILD"}`},
		{"occupancy out of range", `{"name":"x","params":{"space_occupancy_pct":120}}`},
		{"missing name", `{"params":{"space_occupancy_pct":50}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/v1/scenarios", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestDashboardInvalidStateIs422(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "state-test.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()
	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := seed.Run(ctx, database); err != nil {
		t.Fatalf("run seed: %v", err)
	}
	if _, err := database.Exec(`UPDATE lots SET total_stations = 3 WHERE code = ?`, seed.ReferenceLotCode); err != nil {
		t.Fatalf("shrink lot: %v", err)
	}

	srv := &server{
		store:          store.New(database),
		assumptions:    assumptions.Default(),
		currentLotCode: seed.ReferenceLotCode,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:        metrics.New(),
		now:            time.Now,
	}
	rr := do(t, srv.routes(), http.MethodGet, "/v1/dashboard", "")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, true)
	_ = do(t, h, http.MethodGet, "/v1/dashboard", "")

	rr := do(t, h, http.MethodGet, "/metrics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `adlots_calculations_total{engine="dashboard"} 1`) {
		t.Fatalf("dashboard calculation not counted")
	}
}

func TestDashboardStoredBadRecordIs422(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "record-test.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()
	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := seed.Run(ctx, database); err != nil {
		t.Fatalf("run seed: %v", err)
	}
	if _, err := database.Exec(`UPDATE spaces SET unit_type = 'GOLD' WHERE number = 1`); err != nil {
		t.Fatalf("corrupt space: %v", err)
	}

	srv := &server{
		store:          store.New(database),
		assumptions:    assumptions.Default(),
		currentLotCode: seed.ReferenceLotCode,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:        metrics.New(),
		now:            time.Now,
	}
	rr := do(t, srv.routes(), http.MethodGet, "/v1/dashboard", "")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRequestLogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	srv := &server{
		assumptions: assumptions.Default(),
		log:         slog.New(slog.NewJSONHandler(&buf, nil)),
		metrics:     metrics.New(),
		now:         time.Now,
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	srv.routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-42" {
		t.Fatalf("expected request_id req-42, got %v", entry["request_id"])
	}
	if entry["path"] != "/v1/health" || entry["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}
