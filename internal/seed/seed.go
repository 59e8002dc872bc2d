package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Simplici0/adlots/internal/domain"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Skipped int
}

func (s *Stats) count(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		s.Inserts += int(n)
	} else {
		s.Skipped++
	}
	return nil
}

// Run loads the Reference data set in an idempotent way. Rows that already
// exist are left untouched.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	return Load(ctx, db, Reference())
}

// Load inserts every record of snap inside one transaction.
func Load(ctx context.Context, db *sql.DB, snap domain.Snapshot) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	steps := []func(context.Context, *sql.Tx, domain.Snapshot, *Stats) error{
		ensureClients,
		ensureLots,
		ensureSpaces,
		ensureStations,
		ensureOpportunities,
		ensureCosts,
		ensureCashMovements,
	}
	for _, step := range steps {
		if err := step(ctx, tx, snap, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureClients(ctx context.Context, tx *sql.Tx, snap domain.Snapshot, stats *Stats) error {
	for _, c := range snap.Clients {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO clients (id, legal_name, tax_id, category, contact_name, contact_email, contact_phone, active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.LegalName, c.TaxID, string(c.Category), c.Contact.Name, c.Contact.Email, c.Contact.Phone, c.Active)
		if err != nil {
			return fmt.Errorf("insert client %s: %w", c.ID, err)
		}
		if err := stats.count(res); err != nil {
			return fmt.Errorf("count client insert: %w", err)
		}
	}
	return nil
}

func ensureLots(ctx context.Context, tx *sql.Tx, snap domain.Snapshot, stats *Stats) error {
	for _, l := range snap.Lots {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO lots (
				id,
				code,
				city,
				address,
				status,
				start_date,
				end_date,
				total_spaces,
				total_stations,
				go_no_go_threshold,
				target_revenue
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, l.ID, l.Code, l.City, l.Address, string(l.Status), formatDate(l.StartDate), formatDate(l.EndDate),
			l.TotalSpaces, l.TotalStations, l.GoNoGoThreshold, l.TargetRevenue)
		if err != nil {
			return fmt.Errorf("insert lot %s: %w", l.Code, err)
		}
		if err := stats.count(res); err != nil {
			return fmt.Errorf("count lot insert: %w", err)
		}
	}
	return nil
}

func ensureSpaces(ctx context.Context, tx *sql.Tx, snap domain.Snapshot, stats *Stats) error {
	for _, s := range snap.Spaces {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO spaces (id, lot_id, number, unit_type, list_price, discount, net_price, status, client_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, s.ID, s.LotID, s.Number, string(s.Type), s.ListPrice, s.Discount, s.NetPrice, string(s.Status), nullable(s.ClientID))
		if err != nil {
			return fmt.Errorf("insert space %s: %w", s.ID, err)
		}
		if err := stats.count(res); err != nil {
			return fmt.Errorf("count space insert: %w", err)
		}
	}
	return nil
}

func ensureStations(ctx context.Context, tx *sql.Tx, snap domain.Snapshot, stats *Stats) error {
	for _, s := range snap.Stations {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO stations (id, lot_id, number, list_price, discount, net_price, status, client_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, s.ID, s.LotID, s.Number, s.ListPrice, s.Discount, s.NetPrice, string(s.Status), nullable(s.ClientID))
		if err != nil {
			return fmt.Errorf("insert station %s: %w", s.ID, err)
		}
		if err := stats.count(res); err != nil {
			return fmt.Errorf("count station insert: %w", err)
		}
	}
	return nil
}

func ensureOpportunities(ctx context.Context, tx *sql.Tx, snap domain.Snapshot, stats *Stats) error {
	for _, o := range snap.Opportunities {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO opportunities (
				id,
				client_id,
				lot_id,
				subject,
				opportunity_type,
				expected_value,
				phase,
				probability,
				expected_close_date
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, o.ID, nullable(o.ClientID), nullable(o.LotID), o.Subject, string(o.Type), o.ExpectedValue,
			string(o.Phase), o.Probability, nullableDate(o.ExpectedCloseDate))
		if err != nil {
			return fmt.Errorf("insert opportunity %s: %w", o.ID, err)
		}
		if err := stats.count(res); err != nil {
			return fmt.Errorf("count opportunity insert: %w", err)
		}
	}
	return nil
}

func ensureCosts(ctx context.Context, tx *sql.Tx, snap domain.Snapshot, stats *Stats) error {
	for _, c := range snap.Costs {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO cost_items (id, category, description, amount, frequency, accrual_date, recurring, payment_months)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, string(c.Category), c.Description, c.Amount, string(c.Frequency), nullableDate(c.AccrualDate),
			c.Recurring, c.PaymentMonths)
		if err != nil {
			return fmt.Errorf("insert cost item %s: %w", c.ID, err)
		}
		if err := stats.count(res); err != nil {
			return fmt.Errorf("count cost item insert: %w", err)
		}
	}
	return nil
}

func ensureCashMovements(ctx context.Context, tx *sql.Tx, snap domain.Snapshot, stats *Stats) error {
	for _, m := range snap.CashMovements {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO cash_movements (id, movement_date, direction, amount, description, category)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, m.ID, formatDate(m.Date), string(m.Direction), m.Amount, m.Description, m.Category)
		if err != nil {
			return fmt.Errorf("insert cash movement %s: %w", m.ID, err)
		}
		if err := stats.count(res); err != nil {
			return fmt.Errorf("count cash movement insert: %w", err)
		}
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return formatDate(t)
}
