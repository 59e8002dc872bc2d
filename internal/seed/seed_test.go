package seed

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"testing"

	"github.com/Simplici0/adlots/internal/db"
	"github.com/Simplici0/adlots/internal/migrations"
)

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	ref := Reference()
	want := len(ref.Clients) + len(ref.Lots) + len(ref.Spaces) + len(ref.Stations) +
		len(ref.Opportunities) + len(ref.Costs) + len(ref.CashMovements)

	for i := 0; i < 5; i++ {
		stats, err := Run(ctx, database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != want {
				t.Fatalf("expected %d inserts in first run, got %d", want, stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 || stats.Skipped != want {
			t.Fatalf("expected 0 inserts and %d skipped in iteration %d, got %+v", want, i, stats)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM lots WHERE code = ?`, ReferenceLotCode, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM spaces WHERE lot_id = ?`, "lot-2025-q4-al", 18)
	assertCount(t, database, `SELECT COUNT(*) FROM spaces WHERE status = ?`, "VENDUTO", 16)
	assertCount(t, database, `SELECT COUNT(*) FROM stations WHERE status = ?`, "VENDUTA", 7)
	assertCount(t, database, `SELECT COUNT(*) FROM stations WHERE client_id IS NULL`, nil, 2)
	assertCount(t, database, `SELECT COUNT(*) FROM cost_items`, nil, 5)
}

func TestReferenceIsConsistent(t *testing.T) {
	ref := Reference()

	lots := map[string]bool{}
	for _, l := range ref.Lots {
		lots[l.ID] = true
	}
	for _, s := range ref.Spaces {
		if !lots[s.LotID] {
			t.Fatalf("space %s points to unknown lot %s", s.ID, s.LotID)
		}
	}

	sold := 0.0
	for _, s := range ref.Spaces {
		if s.Status == "VENDUTO" {
			sold += s.NetPrice
		}
	}
	if math.Abs(sold-19300) > 0.01 {
		t.Fatalf("expected sold space revenue 19300, got %v", sold)
	}
}

func assertCount(t *testing.T, database *sql.DB, query string, args any, expected int) {
	t.Helper()

	var count int
	var err error
	switch v := args.(type) {
	case nil:
		err = database.QueryRow(query).Scan(&count)
	case []any:
		err = database.QueryRow(query, v...).Scan(&count)
	default:
		err = database.QueryRow(query, v).Scan(&count)
	}
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
