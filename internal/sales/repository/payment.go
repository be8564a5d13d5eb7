package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `id, sale_id, status, payment_method, amount, transaction_id,
			card_last_four, card_brand, installments, pix_key, pix_qr_code, pix_expiration,
			created_at, processed_at, details`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, sale_id, status, payment_method, amount, transaction_id,
				card_last_four, card_brand, installments, pix_key, pix_qr_code, pix_expiration,
				created_at, processed_at, details)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.SaleID, p.Status, p.Method, p.Amount, p.TransactionID,
		p.CardLastFour, p.CardBrand, p.Installments, p.PixKey, p.PixQrCode, p.PixExpiration,
		p.CreatedAt, p.ProcessedAt, p.Details,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

func (r *PaymentRepository) GetBySaleID(ctx context.Context, saleID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
			  WHERE sale_id = $1
			  ORDER BY created_at DESC
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get payment by sale: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET status = $2, processed_at = $3 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.Status, p.ProcessedAt)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update payment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}

// ExpirePendingPix fails every PENDING PIX payment whose expiration has
// passed, in one statement, and returns what was expired.
func (r *PaymentRepository) ExpirePendingPix(ctx context.Context, now time.Time) ([]*domain.Payment, error) {
	query := `UPDATE payments
			  SET status = $1, processed_at = $2
			  WHERE status = $3 AND payment_method = $4 AND pix_expiration < $2
			  RETURNING ` + paymentColumns
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.PaymentStatusFailed, now, domain.PaymentStatusPending, domain.PaymentMethodPix,
	)
	if err != nil {
		return nil, fmt.Errorf("expire pending pix: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expired payment: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	var pixExpiration, processedAt sql.NullTime
	err := row.Scan(
		&p.ID, &p.SaleID, &p.Status, &p.Method, &p.Amount, &p.TransactionID,
		&p.CardLastFour, &p.CardBrand, &p.Installments, &p.PixKey, &p.PixQrCode, &pixExpiration,
		&p.CreatedAt, &processedAt, &p.Details,
	)
	if err != nil {
		return nil, err
	}
	if pixExpiration.Valid {
		p.PixExpiration = &pixExpiration.Time
	}
	if processedAt.Valid {
		p.ProcessedAt = &processedAt.Time
	}

	return &p, nil
}
