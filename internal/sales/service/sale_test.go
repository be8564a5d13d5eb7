package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/ufop-web/ticket-sales/internal/sales/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// noopNotifier keeps tests free of goroutine timing: notifications are
// fire-and-forget and may land after the test returns.
type noopNotifier struct{}

func (noopNotifier) NotifySaleCreated(context.Context, *domain.Sale) {}
func (noopNotifier) NotifyPaymentCompleted(context.Context, *domain.Sale, *domain.Payment) {}
func (noopNotifier) NotifySaleCancelled(context.Context, *domain.Sale) {}

type saleFixture struct {
	svc      *SaleService
	saleRepo *mocks.MockSaleRepo
	events   *mocks.MockEventsClient
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	saleRepo := mocks.NewMockSaleRepo(t)
	events := mocks.NewMockEventsClient(t)

	return &saleFixture{
		svc:      NewSaleService(saleRepo, events, noopNotifier{}, newTestLogger(t)),
		saleRepo: saleRepo,
		events:   events,
	}
}

func testEventInfo() *domain.EventInfo {
	return &domain.EventInfo{
		ID:          "e1",
		Title:       "Concert",
		Description: "open air",
		Date:        time.Date(2026, 12, 1, 20, 0, 0, 0, time.UTC),
		Price:       decimal.RequireFromString("150.50"),
	}
}

func validInput(status domain.SaleStatus) domain.CreateSaleInput {
	return domain.CreateSaleInput{
		UserID:        "u1",
		EventID:       "e1",
		Quantity:      3,
		Status:        status,
		PaymentMethod: domain.PaymentMethodPix,
	}
}

func TestCreateSale_Pending(t *testing.T) {
	f := newSaleFixture(t)

	f.events.EXPECT().Exists(mock.Anything, "e1").Return(true, nil)
	f.events.EXPECT().GetDetails(mock.Anything, "e1").Return(testEventInfo(), nil)
	f.saleRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Sale")).Return(nil)

	sale, err := f.svc.CreateSale(context.Background(), validInput(domain.SaleStatusPending))
	require.NoError(t, err)
	assert.Equal(t, domain.SaleStatusPending, sale.Status)
	assert.Equal(t, "451.5", sale.TotalAmount.String(), "3 tickets at 150.50")
	assert.False(t, sale.TicketsReserved, "a pending sale holds no reservation")
	assert.Nil(t, sale.PaymentDate)
	assert.Equal(t, "open air", sale.EventDescription)
}

func TestCreateSale_PaidReservesBeforePersisting(t *testing.T) {
	f := newSaleFixture(t)

	var reservedAt, persistedAt int
	step := 0
	f.events.EXPECT().Exists(mock.Anything, "e1").Return(true, nil)
	f.events.EXPECT().GetDetails(mock.Anything, "e1").Return(testEventInfo(), nil)
	f.events.EXPECT().Reserve(mock.Anything, "e1", 3).Run(func(ctx context.Context, eventID string, quantity int) {
		step++
		reservedAt = step
	}).Return(true, nil)
	f.saleRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Sale")).Run(func(ctx context.Context, s *domain.Sale) {
		step++
		persistedAt = step
		assert.True(t, s.TicketsReserved)
		assert.NotNil(t, s.PaymentDate)
	}).Return(nil)

	sale, err := f.svc.CreateSale(context.Background(), validInput(domain.SaleStatusPaid))
	require.NoError(t, err)
	assert.True(t, sale.TicketsReserved)
	assert.Less(t, reservedAt, persistedAt, "reservation must land before the sale row")
}

func TestCreateSale_SoldOutPersistsNothing(t *testing.T) {
	f := newSaleFixture(t)

	f.events.EXPECT().Exists(mock.Anything, "e1").Return(true, nil)
	f.events.EXPECT().GetDetails(mock.Anything, "e1").Return(testEventInfo(), nil)
	f.events.EXPECT().Reserve(mock.Anything, "e1", 3).Return(false, nil)

	_, err := f.svc.CreateSale(context.Background(), validInput(domain.SaleStatusPaid))
	assert.ErrorIs(t, err, domain.ErrSoldOut)
}

func TestCreateSale_EventMissing(t *testing.T) {
	f := newSaleFixture(t)

	f.events.EXPECT().Exists(mock.Anything, "e1").Return(false, nil)

	_, err := f.svc.CreateSale(context.Background(), validInput(domain.SaleStatusPending))
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCreateSale_EventsDown(t *testing.T) {
	f := newSaleFixture(t)

	f.events.EXPECT().Exists(mock.Anything, "e1").Return(false, domain.ErrEventsUnreachable)

	_, err := f.svc.CreateSale(context.Background(), validInput(domain.SaleStatusPending))
	assert.ErrorIs(t, err, domain.ErrEventsUnreachable)
}

func TestCreateSale_ReleasesOnPersistFailure(t *testing.T) {
	f := newSaleFixture(t)

	f.events.EXPECT().Exists(mock.Anything, "e1").Return(true, nil)
	f.events.EXPECT().GetDetails(mock.Anything, "e1").Return(testEventInfo(), nil)
	f.events.EXPECT().Reserve(mock.Anything, "e1", 3).Return(true, nil)
	f.saleRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Sale")).Return(errors.New("db down"))
	f.events.EXPECT().Release(mock.Anything, "e1", 3).Return(nil)

	_, err := f.svc.CreateSale(context.Background(), validInput(domain.SaleStatusPaid))
	assert.Error(t, err)
}

func TestCreateSale_Validation(t *testing.T) {
	f := newSaleFixture(t)

	cases := map[string]domain.CreateSaleInput{
		"missing user": {EventID: "e1", Quantity: 1, Status: domain.SaleStatusPending, PaymentMethod: domain.PaymentMethodPix},
		"missing event": {UserID: "u1", Quantity: 1, Status: domain.SaleStatusPending, PaymentMethod: domain.PaymentMethodPix},
		"zero quantity": {UserID: "u1", EventID: "e1", Status: domain.SaleStatusPending, PaymentMethod: domain.PaymentMethodPix},
		"cancelled at creation": {UserID: "u1", EventID: "e1", Quantity: 1, Status: domain.SaleStatusCancelled, PaymentMethod: domain.PaymentMethodPix},
		"bad method": {UserID: "u1", EventID: "e1", Quantity: 1, Status: domain.SaleStatusPending, PaymentMethod: "BARTER"},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.CreateSale(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestGetSale_EnrichmentDegrades(t *testing.T) {
	f := newSaleFixture(t)

	stored := &domain.Sale{ID: "s1", EventID: "e1", Status: domain.SaleStatusPending}
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(stored, nil)
	f.events.EXPECT().GetDetails(mock.Anything, "e1").Return(nil, domain.ErrEventsUnreachable)

	sale, err := f.svc.GetSale(context.Background(), "s1")
	require.NoError(t, err, "a read must not fail because enrichment did")
	assert.Equal(t, "s1", sale.ID)
	assert.Nil(t, sale.EventPrice)
	assert.Empty(t, sale.EventDescription)
}

func TestCancelSale_CompensatesOnce(t *testing.T) {
	f := newSaleFixture(t)

	stored := &domain.Sale{
		ID:              "s1",
		EventID:         "e1",
		Quantity:        2,
		Status:          domain.SaleStatusPending,
		TicketsReserved: true,
	}
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(stored, nil)
	f.events.EXPECT().Release(mock.Anything, "e1", 2).Return(nil).Once()
	f.saleRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Sale")).Run(func(ctx context.Context, s *domain.Sale) {
		assert.Equal(t, domain.SaleStatusCancelled, s.Status)
		assert.False(t, s.TicketsReserved, "the release must be persisted with the cancellation")
		assert.NotNil(t, s.CancellationDate)
	}).Return(nil)
	f.events.EXPECT().GetDetails(mock.Anything, "e1").Return(testEventInfo(), nil)

	sale, err := f.svc.CancelSale(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SaleStatusCancelled, sale.Status)
}

func TestCancelSale_NoReservationNoRelease(t *testing.T) {
	f := newSaleFixture(t)

	stored := &domain.Sale{ID: "s1", EventID: "e1", Quantity: 2, Status: domain.SaleStatusPending}
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(stored, nil)
	f.saleRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Sale")).Return(nil)
	f.events.EXPECT().GetDetails(mock.Anything, "e1").Return(testEventInfo(), nil)

	_, err := f.svc.CancelSale(context.Background(), "s1")
	require.NoError(t, err)
}

func TestCancelSale_OnlyPending(t *testing.T) {
	f := newSaleFixture(t)

	stored := &domain.Sale{ID: "s1", Status: domain.SaleStatusPaid, TicketsReserved: true}
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(stored, nil)

	_, err := f.svc.CancelSale(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrSaleNotPending)
}

func TestCancelSale_ReleaseFailureKeepsSale(t *testing.T) {
	f := newSaleFixture(t)

	stored := &domain.Sale{
		ID:              "s1",
		EventID:         "e1",
		Quantity:        2,
		Status:          domain.SaleStatusPending,
		TicketsReserved: true,
	}
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(stored, nil)
	f.events.EXPECT().Release(mock.Anything, "e1", 2).Return(domain.ErrEventsUnreachable)

	_, err := f.svc.CancelSale(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrEventsUnreachable)
}

func TestMarkSaleRefunded_ReleasesHeldTickets(t *testing.T) {
	f := newSaleFixture(t)

	stored := &domain.Sale{
		ID:              "s1",
		EventID:         "e1",
		Quantity:        4,
		Status:          domain.SaleStatusPaid,
		TicketsReserved: true,
	}
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(stored, nil)
	f.events.EXPECT().Release(mock.Anything, "e1", 4).Return(nil).Once()
	f.saleRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Sale")).Run(func(ctx context.Context, s *domain.Sale) {
		assert.Equal(t, domain.SaleStatusRefunded, s.Status)
		assert.False(t, s.TicketsReserved)
	}).Return(nil)

	require.NoError(t, f.svc.MarkSaleRefunded(context.Background(), "s1"))
}

func TestMarkSaleRefunded_NoReservation(t *testing.T) {
	f := newSaleFixture(t)

	stored := &domain.Sale{ID: "s1", EventID: "e1", Quantity: 4, Status: domain.SaleStatusPaid}
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(stored, nil)
	f.saleRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Sale")).Return(nil)

	require.NoError(t, f.svc.MarkSaleRefunded(context.Background(), "s1"))
}

func TestUpdateSaleStatus_StampsDates(t *testing.T) {
	f := newSaleFixture(t)

	stored := &domain.Sale{ID: "s1", EventID: "e1", Status: domain.SaleStatusPending}
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(stored, nil)
	f.saleRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Sale")).Run(func(ctx context.Context, s *domain.Sale) {
		assert.Equal(t, domain.SaleStatusPaid, s.Status)
		assert.NotNil(t, s.PaymentDate)
	}).Return(nil)
	f.events.EXPECT().GetDetails(mock.Anything, "e1").Return(testEventInfo(), nil)

	sale, err := f.svc.UpdateSaleStatus(context.Background(), "s1", domain.SaleStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.SaleStatusPaid, sale.Status)
}

func TestUpdateSaleStatus_InvalidStatus(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.UpdateSaleStatus(context.Background(), "s1", "SHIPPED")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListByStatus_InvalidStatus(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.ListByStatus(context.Background(), "SHIPPED")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStats(t *testing.T) {
	f := newSaleFixture(t)

	f.saleRepo.EXPECT().Count(mock.Anything).Return(int64(10), nil)
	f.saleRepo.EXPECT().CountByStatus(mock.Anything).Return(map[domain.SaleStatus]int64{
		domain.SaleStatusPaid:    6,
		domain.SaleStatusPending: 4,
	}, nil)
	f.saleRepo.EXPECT().TotalRevenue(mock.Anything).Return(decimal.RequireFromString("903.00"), nil)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalSales)
	assert.Equal(t, int64(6), stats.PaidSales)
	assert.Equal(t, "903", stats.TotalRevenue.String())
}
