package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Simplici0/adlots/internal/domain"
)

// ErrNotFound is returned when a record addressed by id does not exist.
var ErrNotFound = errors.New("not found")

// Store is the SQLite data-access layer. It hands the engines plain record
// collections and persists saved scenarios.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Snapshot loads every collection the engines read.
func (s *Store) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	var (
		snap domain.Snapshot
		err  error
	)
	if snap.Clients, err = s.ListClients(ctx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Lots, err = s.ListLots(ctx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Spaces, err = s.ListSpaces(ctx, ""); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Stations, err = s.ListStations(ctx, ""); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Opportunities, err = s.ListOpportunities(ctx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Costs, err = s.ListCostItems(ctx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.CashMovements, err = s.ListCashMovements(ctx); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

func (s *Store) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, legal_name, tax_id, category, contact_name, contact_email, contact_phone, active
		FROM clients
		ORDER BY legal_name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		var category string
		if err := rows.Scan(&c.ID, &c.LegalName, &c.TaxID, &category,
			&c.Contact.Name, &c.Contact.Email, &c.Contact.Phone, &c.Active); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		c.Category = domain.ClientCategory(category)
		if err := c.Validate(); err != nil {
			return nil, corrupt(err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return clients, nil
}

// ListLots returns every lot ordered by start date. Legacy status values are
// normalized on read.
func (s *Store) ListLots(ctx context.Context) ([]domain.Lot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
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
		FROM lots
		ORDER BY start_date, code
	`)
	if err != nil {
		return nil, fmt.Errorf("query lots: %w", err)
	}
	defer rows.Close()

	lots := make([]domain.Lot, 0)
	for rows.Next() {
		var l domain.Lot
		var status, start, end string
		if err := rows.Scan(&l.ID, &l.Code, &l.City, &l.Address, &status, &start, &end,
			&l.TotalSpaces, &l.TotalStations, &l.GoNoGoThreshold, &l.TargetRevenue); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		if l.Status, err = domain.ParseLotStatus(status); err != nil {
			return nil, fmt.Errorf("lot %s: %w", l.Code, err)
		}
		if l.StartDate, err = parseDate(start); err != nil {
			return nil, fmt.Errorf("lot %s start date: %w", l.Code, err)
		}
		if l.EndDate, err = parseDate(end); err != nil {
			return nil, fmt.Errorf("lot %s end date: %w", l.Code, err)
		}
		if err := l.Validate(); err != nil {
			return nil, corrupt(err)
		}
		lots = append(lots, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lots: %w", err)
	}
	return lots, nil
}

// ListSpaces returns the spaces of lotID, or of every lot when lotID is empty.
func (s *Store) ListSpaces(ctx context.Context, lotID string) ([]domain.Space, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, lot_id, number, unit_type, list_price, discount, net_price, status, client_id
		FROM spaces
		WHERE (? = '' OR lot_id = ?)
		ORDER BY lot_id, number
	`, lotID, lotID)
	if err != nil {
		return nil, fmt.Errorf("query spaces: %w", err)
	}
	defer rows.Close()

	spaces := make([]domain.Space, 0)
	for rows.Next() {
		var sp domain.Space
		var unitType, status string
		var clientID sql.NullString
		if err := rows.Scan(&sp.ID, &sp.LotID, &sp.Number, &unitType, &sp.ListPrice, &sp.Discount,
			&sp.NetPrice, &status, &clientID); err != nil {
			return nil, fmt.Errorf("scan space: %w", err)
		}
		sp.Type = domain.UnitType(unitType)
		sp.Status = domain.SpaceStatus(status)
		sp.ClientID = clientID.String
		if err := sp.Validate(); err != nil {
			return nil, corrupt(err)
		}
		spaces = append(spaces, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spaces: %w", err)
	}
	return spaces, nil
}

// ListStations returns the stations of lotID, or of every lot when lotID is empty.
func (s *Store) ListStations(ctx context.Context, lotID string) ([]domain.Station, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, lot_id, number, list_price, discount, net_price, status, client_id
		FROM stations
		WHERE (? = '' OR lot_id = ?)
		ORDER BY lot_id, number
	`, lotID, lotID)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.Station, 0)
	for rows.Next() {
		var st domain.Station
		var status string
		var clientID sql.NullString
		if err := rows.Scan(&st.ID, &st.LotID, &st.Number, &st.ListPrice, &st.Discount,
			&st.NetPrice, &status, &clientID); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		st.Status = domain.StationStatus(status)
		st.ClientID = clientID.String
		if err := st.Validate(); err != nil {
			return nil, corrupt(err)
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stations: %w", err)
	}
	return stations, nil
}

func (s *Store) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id,
			client_id,
			lot_id,
			subject,
			opportunity_type,
			expected_value,
			phase,
			probability,
			expected_close_date
		FROM opportunities
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query opportunities: %w", err)
	}
	defer rows.Close()

	opps := make([]domain.Opportunity, 0)
	for rows.Next() {
		var o domain.Opportunity
		var oppType, phase string
		var clientID, lotID, closeDate sql.NullString
		if err := rows.Scan(&o.ID, &clientID, &lotID, &o.Subject, &oppType, &o.ExpectedValue,
			&phase, &o.Probability, &closeDate); err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		o.ClientID = clientID.String
		o.LotID = lotID.String
		o.Type = domain.OpportunityType(oppType)
		o.Phase = domain.Phase(phase)
		if o.ExpectedCloseDate, err = parseNullDate(closeDate); err != nil {
			return nil, fmt.Errorf("opportunity %s close date: %w", o.ID, err)
		}
		if err := o.Validate(); err != nil {
			return nil, corrupt(err)
		}
		opps = append(opps, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}
	return opps, nil
}

func (s *Store) ListCostItems(ctx context.Context) ([]domain.CostItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, description, amount, frequency, accrual_date, recurring, payment_months
		FROM cost_items
		ORDER BY category, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query cost items: %w", err)
	}
	defer rows.Close()

	costs := make([]domain.CostItem, 0)
	for rows.Next() {
		var c domain.CostItem
		var category, frequency string
		var accrual sql.NullString
		if err := rows.Scan(&c.ID, &category, &c.Description, &c.Amount, &frequency, &accrual,
			&c.Recurring, &c.PaymentMonths); err != nil {
			return nil, fmt.Errorf("scan cost item: %w", err)
		}
		c.Category = domain.CostCategory(category)
		c.Frequency = domain.Frequency(frequency)
		if c.AccrualDate, err = parseNullDate(accrual); err != nil {
			return nil, fmt.Errorf("cost item %s accrual date: %w", c.ID, err)
		}
		costs = append(costs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cost items: %w", err)
	}
	return costs, nil
}

func (s *Store) ListCashMovements(ctx context.Context) ([]domain.CashMovement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, movement_date, direction, amount, description, category
		FROM cash_movements
		ORDER BY movement_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query cash movements: %w", err)
	}
	defer rows.Close()

	movements := make([]domain.CashMovement, 0)
	for rows.Next() {
		var m domain.CashMovement
		var date, direction string
		if err := rows.Scan(&m.ID, &date, &direction, &m.Amount, &m.Description, &m.Category); err != nil {
			return nil, fmt.Errorf("scan cash movement: %w", err)
		}
		m.Direction = domain.Direction(direction)
		if m.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("cash movement %s date: %w", m.ID, err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cash movements: %w", err)
	}
	return movements, nil
}

// corrupt marks a stored record that breaks a domain rule. The result matches
// both domain.ErrInvalidState and the underlying validation error.
func corrupt(err error) error {
	return fmt.Errorf("%w: stored record: %w", domain.ErrInvalidState, err)
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(domain.DateLayout, raw)
}

func parseNullDate(raw sql.NullString) (time.Time, error) {
	if !raw.Valid || raw.String == "" {
		return time.Time{}, nil
	}
	return parseDate(raw.String)
}
