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

func newMockSaleRepo(t *testing.T) (*SaleRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSaleRepo(&dbpg.DB{Master: db}), mock
}

func saleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "event_id", "quantity", "total_amount", "status", "payment_method",
		"sale_date", "payment_date", "cancellation_date", "notes", "tickets_reserved",
	})
}

func TestSaleRepository_Create(t *testing.T) {
	repo, mock := newMockSaleRepo(t)

	now := time.Now().UTC()
	sale := &domain.Sale{
		ID:              "s1",
		UserID:          "u1",
		EventID:         "e1",
		Quantity:        2,
		Status:          domain.SaleStatusPaid,
		PaymentMethod:   domain.PaymentMethodPix,
		SaleDate:        now,
		PaymentDate:     &now,
		TicketsReserved: true,
	}

	mock.ExpectExec(`INSERT INTO sales`).
		WithArgs(
			sale.ID, sale.UserID, sale.EventID, sale.Quantity, sale.TotalAmount, sale.Status,
			sale.PaymentMethod, sale.SaleDate, sale.PaymentDate, nil, sale.Notes, true,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), sale))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_GetByID(t *testing.T) {
	repo, mock := newMockSaleRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM sales WHERE id = \$1`).
		WithArgs("s1").
		WillReturnRows(saleRows().
			AddRow("s1", "u1", "e1", 2, "301.00", "PAID", "PIX", now, now, nil, "", true))

	sale, err := repo.GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sale.ID)
	assert.Equal(t, "301", sale.TotalAmount.String())
	assert.True(t, sale.TicketsReserved)
	require.NotNil(t, sale.PaymentDate)
	assert.Nil(t, sale.CancellationDate)
}

func TestSaleRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockSaleRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM sales WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(saleRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestSaleRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMockSaleRepo(t)

	mock.ExpectExec(`UPDATE sales`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Sale{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

func TestSaleRepository_Update_PersistsReservationFlag(t *testing.T) {
	repo, mock := newMockSaleRepo(t)

	now := time.Now().UTC()
	sale := &domain.Sale{
		ID:               "s1",
		Status:           domain.SaleStatusCancelled,
		CancellationDate: &now,
		TicketsReserved:  false,
	}

	mock.ExpectExec(`UPDATE sales`).
		WithArgs("s1", sale.Status, nil, sale.CancellationDate, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), sale))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_TotalRevenue(t *testing.T) {
	repo, mock := newMockSaleRepo(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_amount\), 0\) FROM sales WHERE status = \$1`).
		WithArgs(domain.SaleStatusPaid).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("903.00"))

	revenue, err := repo.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "903", revenue.String())
}

func TestSaleRepository_CountByStatus(t *testing.T) {
	repo, mock := newMockSaleRepo(t)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM sales GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("PAID", 6).
			AddRow("PENDING", 4))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), counts[domain.SaleStatusPaid])
	assert.Equal(t, int64(4), counts[domain.SaleStatusPending])
}

func TestSaleRepository_ListByUser(t *testing.T) {
	repo, mock := newMockSaleRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM sales WHERE user_id = \$1 ORDER BY sale_date DESC`).
		WithArgs("u1").
		WillReturnRows(saleRows().
			AddRow("s1", "u1", "e1", 1, "100.00", "PENDING", "CASH", now, nil, nil, "", false).
			AddRow("s2", "u1", "e2", 2, "200.00", "PAID", "PIX", now, now, nil, "", true))

	sales, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "s2", sales[1].ID)
}
