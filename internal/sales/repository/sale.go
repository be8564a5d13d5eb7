package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const saleColumns = `id, user_id, event_id, quantity, total_amount, status, payment_method,
			sale_date, payment_date, cancellation_date, notes, tickets_reserved`

type SaleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSaleRepo(db *dbpg.DB) *SaleRepository {
	return &SaleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) error {
	query := `INSERT INTO sales (id, user_id, event_id, quantity, total_amount, status, payment_method,
				sale_date, payment_date, cancellation_date, notes, tickets_reserved)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.UserID, s.EventID, s.Quantity, s.TotalAmount, s.Status, s.PaymentMethod,
		s.SaleDate, s.PaymentDate, s.CancellationDate, s.Notes, s.TicketsReserved,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	return nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}

	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("scan sale: %w", err)
	}

	return s, nil
}

func (r *SaleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC`
	return r.querySales(ctx, query)
}

func (r *SaleRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 ORDER BY sale_date DESC`
	return r.querySales(ctx, query, userID)
}

func (r *SaleRepository) ListByStatus(ctx context.Context, status domain.SaleStatus) ([]*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE status = $1 ORDER BY sale_date DESC`
	return r.querySales(ctx, query, status)
}

func (r *SaleRepository) Update(ctx context.Context, s *domain.Sale) error {
	query := `UPDATE sales
			  SET status = $2, payment_date = $3, cancellation_date = $4, tickets_reserved = $5
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Status, s.PaymentDate, s.CancellationDate, s.TicketsReserved,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update sale rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSaleNotFound
	}

	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sale rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSaleNotFound
	}

	return nil
}

func (r *SaleRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE status = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.SaleStatusPaid)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}

	var revenue decimal.Decimal
	if err = row.Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("scan revenue: %w", err)
	}

	return revenue, nil
}

func (r *SaleRepository) Count(ctx context.Context) (int64, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM sales`)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}

	var count int64
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *SaleRepository) CountByStatus(ctx context.Context) (map[domain.SaleStatus]int64, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT status, COUNT(*) FROM sales GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count sales by status: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.SaleStatus]int64)
	for rows.Next() {
		var status domain.SaleStatus
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		res[status] = count
	}

	return res, rows.Err()
}

func (r *SaleRepository) querySales(ctx context.Context, query string, args ...any) ([]*domain.Sale, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var res []*domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (*domain.Sale, error) {
	var s domain.Sale
	var paymentDate, cancellationDate sql.NullTime
	err := row.Scan(
		&s.ID, &s.UserID, &s.EventID, &s.Quantity, &s.TotalAmount, &s.Status, &s.PaymentMethod,
		&s.SaleDate, &paymentDate, &cancellationDate, &s.Notes, &s.TicketsReserved,
	)
	if err != nil {
		return nil, err
	}
	if paymentDate.Valid {
		s.PaymentDate = &paymentDate.Time
	}
	if cancellationDate.Valid {
		s.CancellationDate = &cancellationDate.Time
	}

	return &s, nil
}
