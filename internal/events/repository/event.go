package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ufop-web/ticket-sales/internal/events/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, description, location, category, event_date, end_date,
			price, total_tickets, available_tickets, image_url, status, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, location, category, event_date, end_date,
				price, total_tickets, available_tickets, image_url, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.Category, e.EventDate, e.EndDate,
		e.Price, e.TotalTickets, e.AvailableTickets, e.ImageURL, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("check event exists: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date DESC`
	return r.queryEvents(ctx, query)
}

func (r *EventRepository) ListAvailable(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
			  WHERE status = $1 AND available_tickets > 0
			  ORDER BY event_date`
	return r.queryEvents(ctx, query, domain.EventStatusActive)
}

func (r *EventRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE category = $1 ORDER BY event_date`
	return r.queryEvents(ctx, query, category)
}

func (r *EventRepository) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_date > now() ORDER BY event_date`
	return r.queryEvents(ctx, query)
}

// Update rewrites the event metadata. A capacity change shifts available_tickets
// by the same delta so already sold tickets stay sold.
func (r *EventRepository) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var total, available int
	lockQuery := `SELECT total_tickets, available_tickets FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&total, &available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if in.TotalTickets != total {
		available += in.TotalTickets - total
		if available < 0 {
			available = 0
		}
	}

	query := `UPDATE events
			  SET title = $2, description = $3, location = $4, category = $5,
				  event_date = $6, end_date = $7, price = $8,
				  total_tickets = $9, available_tickets = $10, image_url = $11,
				  updated_at = now()
			  WHERE id = $1
			  RETURNING ` + eventColumns
	row := tx.QueryRowContext(
		ctx, query, id,
		in.Title, in.Description, in.Location, in.Category,
		in.EventDate, in.EndDate, in.Price,
		in.TotalTickets, available, in.ImageURL,
	)

	e, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return e, tx.Commit()
}

// UpdateStatus is the administrative status override. Setting SOLD_OUT zeroes
// availability to keep the counter consistent with the declared state.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2,
				  available_tickets = CASE WHEN $2 = 'SOLD_OUT' THEN 0 ELSE available_tickets END,
				  updated_at = now()
			  WHERE id = $1
			  RETURNING ` + eventColumns
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update event status: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Reserve atomically takes quantity tickets from the event. The row lock
// serializes concurrent reservations for the same event, so two callers can
// never both pass the availability check. Returns false (not an error) when
// availability is short.
func (r *EventRepository) Reserve(ctx context.Context, id string, quantity int) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var available int
	lockQuery := `SELECT available_tickets FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrEventNotFound
		}
		return false, fmt.Errorf("lock event: %w", err)
	}

	if available < quantity {
		return false, nil
	}

	query := `UPDATE events
			  SET available_tickets = available_tickets - $2,
				  status = CASE WHEN available_tickets - $2 = 0 THEN 'SOLD_OUT' ELSE status END,
				  updated_at = now()
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, quantity); err != nil {
		return false, fmt.Errorf("reserve tickets: %w", err)
	}

	return true, tx.Commit()
}

// Release returns quantity tickets to the event, clamped at total_tickets so a
// stray double-release cannot push availability above capacity. A sold out
// event becomes active again once tickets are back.
func (r *EventRepository) Release(ctx context.Context, id string, quantity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var total, available int
	var status domain.EventStatus
	lockQuery := `SELECT total_tickets, available_tickets, status FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&total, &available, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	available += quantity
	if available > total {
		available = total
	}
	if status == domain.EventStatusSoldOut && available > 0 {
		status = domain.EventStatusActive
	}

	query := `UPDATE events SET available_tickets = $2, status = $3, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, available, status); err != nil {
		return fmt.Errorf("release tickets: %w", err)
	}

	return tx.Commit()
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var endDate sql.NullTime
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Category,
		&e.EventDate, &endDate, &e.Price, &e.TotalTickets, &e.AvailableTickets,
		&e.ImageURL, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if endDate.Valid {
		e.EndDate = &endDate.Time
	}

	return &e, nil
}
