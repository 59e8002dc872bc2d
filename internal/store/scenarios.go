package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/adlots/internal/scenario"
)

// Fixed width so that created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

type SavedScenario struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Params    scenario.Params `json:"params"`
	Result    scenario.Result `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveScenario stores a named scenario result under a fresh id.
func (s *Store) SaveScenario(ctx context.Context, name string, params scenario.Params, result scenario.Result) (SavedScenario, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return SavedScenario{}, fmt.Errorf("encode scenario params: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return SavedScenario{}, fmt.Errorf("encode scenario result: %w", err)
	}

	saved := SavedScenario{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Params:    params,
		Result:    result,
		CreatedAt: s.now().UTC(),
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO scenarios (id, name, params_json, result_json, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, saved.ID, saved.Name, string(paramsJSON), string(resultJSON), saved.CreatedAt.Format(timestampLayout)); err != nil {
		return SavedScenario{}, fmt.Errorf("insert scenario: %w", err)
	}

	return saved, nil
}

// ListScenarios returns saved scenarios newest first. A non-empty query keeps
// only names containing it.
func (s *Store) ListScenarios(ctx context.Context, query string) ([]SavedScenario, error) {
	query = strings.TrimSpace(query)
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, params_json, result_json, created_at
		FROM scenarios
		WHERE (? = '' OR name LIKE ?)
		ORDER BY created_at DESC, id DESC
	`, query, search)
	if err != nil {
		return nil, fmt.Errorf("query scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := make([]SavedScenario, 0)
	for rows.Next() {
		var sc SavedScenario
		var paramsJSON, resultJSON, createdAt string
		if err := rows.Scan(&sc.ID, &sc.Name, &paramsJSON, &resultJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		if err := json.Unmarshal([]byte(paramsJSON), &sc.Params); err != nil {
			return nil, fmt.Errorf("decode scenario %s params: %w", sc.ID, err)
		}
		if err := json.Unmarshal([]byte(resultJSON), &sc.Result); err != nil {
			return nil, fmt.Errorf("decode scenario %s result: %w", sc.ID, err)
		}
		if sc.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
			return nil, fmt.Errorf("scenario %s created_at: %w", sc.ID, err)
		}
		scenarios = append(scenarios, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenarios: %w", err)
	}
	return scenarios, nil
}

func (s *Store) DeleteScenario(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete scenario rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scenario %s: %w", id, ErrNotFound)
	}
	return nil
}
