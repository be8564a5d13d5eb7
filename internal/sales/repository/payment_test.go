package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/wb-go/wbf/dbpg"
)

func newMockPaymentRepo(t *testing.T) (*PaymentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPaymentRepo(&dbpg.DB{Master: db}), mock
}

func paymentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "sale_id", "status", "payment_method", "amount", "transaction_id",
		"card_last_four", "card_brand", "installments", "pix_key", "pix_qr_code",
		"pix_expiration", "created_at", "processed_at", "details",
	})
}

func TestPaymentRepository_GetBySaleID(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM payments\s+WHERE sale_id = \$1\s+ORDER BY created_at DESC\s+LIMIT 1`).
		WithArgs("s1").
		WillReturnRows(paymentRows().
			AddRow("p1", "s1", "COMPLETED", "CREDIT_CARD", "301.00", "TXN1A2B3C4D",
				"1111", "VISA", 1, "", "", nil, now, now, "card payment approved"))

	p, err := repo.GetBySaleID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
	assert.Equal(t, "VISA", p.CardBrand)
	assert.Nil(t, p.PixExpiration)
	require.NotNil(t, p.ProcessedAt)
}

func TestPaymentRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM payments WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(paymentRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectExec(`UPDATE payments SET status = \$2, processed_at = \$3 WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Payment{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentRepository_ExpirePendingPix(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	now := time.Now().UTC()
	expiredAt := now.Add(-time.Minute)
	mock.ExpectQuery(`UPDATE payments\s+SET status = \$1, processed_at = \$2\s+WHERE status = \$3 AND payment_method = \$4 AND pix_expiration < \$2\s+RETURNING`).
		WithArgs(domain.PaymentStatusFailed, now, domain.PaymentStatusPending, domain.PaymentMethodPix).
		WillReturnRows(paymentRows().
			AddRow("p1", "s1", "FAILED", "PIX", "100.00", "TXN1", "", "", 0,
				"PIX-AAAA1111", "data:image/svg+xml;base64,x", expiredAt, now.Add(-31*time.Minute), now, "awaiting pix transfer"))

	expired, err := repo.ExpirePendingPix(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, domain.PaymentStatusFailed, expired[0].Status)
	assert.Equal(t, "PIX-AAAA1111", expired[0].PixKey)
}

func TestPaymentRepository_ExpirePendingPix_NoneDue(t *testing.T) {
	repo, mock := newMockPaymentRepo(t)

	mock.ExpectQuery(`UPDATE payments`).
		WillReturnRows(paymentRows())

	expired, err := repo.ExpirePendingPix(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, expired)
}
