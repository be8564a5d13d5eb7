package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/ufop-web/ticket-sales/internal/sales/service/ports/mocks"
)

type paymentFixture struct {
	svc         *PaymentService
	paymentRepo *mocks.MockPaymentRepo
	saleRepo    *mocks.MockSaleRepo
	gateway     *mocks.MockCardGateway
}

// lifecycleRecorder implements SaleLifecycle and records transitions.
type lifecycleRecorder struct {
	paidIDs     []string
	refundedIDs []string
}

func (l *lifecycleRecorder) MarkSalePaid(_ context.Context, id string) error {
	l.paidIDs = append(l.paidIDs, id)
	return nil
}

func (l *lifecycleRecorder) MarkSaleRefunded(_ context.Context, id string) error {
	l.refundedIDs = append(l.refundedIDs, id)
	return nil
}

func newPaymentFixture(t *testing.T) (*paymentFixture, *lifecycleRecorder) {
	t.Helper()
	paymentRepo := mocks.NewMockPaymentRepo(t)
	saleRepo := mocks.NewMockSaleRepo(t)
	gateway := mocks.NewMockCardGateway(t)
	lifecycle := &lifecycleRecorder{}

	svc := NewPaymentService(paymentRepo, saleRepo, lifecycle, gateway, noopNotifier{}, newTestLogger(t))

	return &paymentFixture{
		svc:         svc,
		paymentRepo: paymentRepo,
		saleRepo:    saleRepo,
		gateway:     gateway,
	}, lifecycle
}

func pendingSale() *domain.Sale {
	return &domain.Sale{
		ID:            "s1",
		UserID:        "u1",
		EventID:       "e1",
		Quantity:      2,
		TotalAmount:   decimal.RequireFromString("301.00"),
		Status:        domain.SaleStatusPending,
		PaymentMethod: domain.PaymentMethodCreditCard,
	}
}

func validCard() domain.CardData {
	return domain.CardData{
		Number:       "4111 1111 1111 1111",
		HolderName:   "JOHN DOE",
		ExpiryMonth:  12,
		ExpiryYear:   time.Now().Year() + 2,
		CVV:          "123",
		Installments: 1,
	}
}

func TestProcessCard_Approved(t *testing.T) {
	f, lifecycle := newPaymentFixture(t)

	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(pendingSale(), nil)
	f.gateway.EXPECT().Authorize(mock.Anything, mock.AnythingOfType("domain.CardData"), mock.AnythingOfType("decimal.Decimal")).Return(true, nil)
	f.paymentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	payment, err := f.svc.ProcessCard(context.Background(), "s1", domain.PaymentMethodCreditCard, validCard())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, domain.PaymentMethodCreditCard, payment.Method)
	assert.Equal(t, 1, payment.Installments)
	assert.Equal(t, "1111", payment.CardLastFour)
	assert.Equal(t, "VISA", payment.CardBrand)
	assert.Regexp(t, `^TXN\d+[0-9A-F]{8}$`, payment.TransactionID)
	assert.Equal(t, []string{"s1"}, lifecycle.paidIDs)
}

func TestProcessCard_RecordsChargedMethod(t *testing.T) {
	f, _ := newPaymentFixture(t)

	sale := pendingSale()
	sale.PaymentMethod = domain.PaymentMethodPix
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(sale, nil)
	f.gateway.EXPECT().Authorize(mock.Anything, mock.AnythingOfType("domain.CardData"), mock.AnythingOfType("decimal.Decimal")).Return(true, nil)
	f.paymentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Payment")).Run(func(ctx context.Context, p *domain.Payment) {
		assert.Equal(t, domain.PaymentMethodCreditCard, p.Method)
	}).Return(nil)

	payment, err := f.svc.ProcessCard(context.Background(), "s1", domain.PaymentMethodCreditCard, validCard())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodCreditCard, payment.Method,
		"the payment records the method charged, not the method the sale was created with")
}

func TestProcessCard_DebitSkipsInstallments(t *testing.T) {
	f, _ := newPaymentFixture(t)

	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(pendingSale(), nil)
	f.gateway.EXPECT().Authorize(mock.Anything, mock.AnythingOfType("domain.CardData"), mock.AnythingOfType("decimal.Decimal")).Return(true, nil)
	f.paymentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	card := validCard()
	card.Installments = 3

	payment, err := f.svc.ProcessCard(context.Background(), "s1", domain.PaymentMethodDebitCard, card)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodDebitCard, payment.Method)
	assert.Zero(t, payment.Installments, "debit settles in one shot")
}

func TestProcessCard_NonCardMethod(t *testing.T) {
	f, _ := newPaymentFixture(t)

	_, err := f.svc.ProcessCard(context.Background(), "s1", domain.PaymentMethodPix, validCard())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProcessCard_Declined(t *testing.T) {
	f, lifecycle := newPaymentFixture(t)

	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(pendingSale(), nil)
	f.gateway.EXPECT().Authorize(mock.Anything, mock.AnythingOfType("domain.CardData"), mock.AnythingOfType("decimal.Decimal")).Return(false, nil)
	f.paymentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Payment")).Run(func(ctx context.Context, p *domain.Payment) {
		assert.Equal(t, domain.PaymentStatusFailed, p.Status)
	}).Return(nil)

	payment, err := f.svc.ProcessCard(context.Background(), "s1", domain.PaymentMethodCreditCard, validCard())
	assert.ErrorIs(t, err, domain.ErrCardDeclined)
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
	assert.Empty(t, lifecycle.paidIDs, "a declined charge must not advance the sale")
}

func TestProcessCard_AlreadyPaid(t *testing.T) {
	f, _ := newPaymentFixture(t)

	sale := pendingSale()
	sale.Status = domain.SaleStatusPaid
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(sale, nil)

	_, err := f.svc.ProcessCard(context.Background(), "s1", domain.PaymentMethodCreditCard, validCard())
	assert.ErrorIs(t, err, domain.ErrSaleAlreadyPaid)
}

func TestProcessCard_InvalidCard(t *testing.T) {
	f, _ := newPaymentFixture(t)

	card := validCard()
	card.CVV = "12"

	_, err := f.svc.ProcessCard(context.Background(), "s1", domain.PaymentMethodCreditCard, card)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGeneratePix(t *testing.T) {
	f, _ := newPaymentFixture(t)

	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(pendingSale(), nil)
	f.paymentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	before := time.Now().UTC()
	payment, err := f.svc.GeneratePix(context.Background(), "s1", "")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Equal(t, domain.PaymentMethodPix, payment.Method)
	assert.Regexp(t, `^PIX-[0-9A-F]{8}$`, payment.PixKey)
	assert.Contains(t, payment.PixQrCode, "data:image/svg+xml;base64,")
	require.NotNil(t, payment.PixExpiration)
	assert.WithinDuration(t, before.Add(pixTTL), *payment.PixExpiration, 5*time.Second)
}

func TestGeneratePix_CallerKey(t *testing.T) {
	f, _ := newPaymentFixture(t)

	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(pendingSale(), nil)
	f.paymentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Payment")).Run(func(ctx context.Context, p *domain.Payment) {
		assert.Equal(t, "buyer@bank.example", p.PixKey)
	}).Return(nil)

	payment, err := f.svc.GeneratePix(context.Background(), "s1", "buyer@bank.example")
	require.NoError(t, err)
	assert.Equal(t, "buyer@bank.example", payment.PixKey)
}

func TestGeneratePix_AlreadyPaid(t *testing.T) {
	f, _ := newPaymentFixture(t)

	sale := pendingSale()
	sale.Status = domain.SaleStatusPaid
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(sale, nil)

	_, err := f.svc.GeneratePix(context.Background(), "s1", "")
	assert.ErrorIs(t, err, domain.ErrSaleAlreadyPaid)
}

func TestConfirmPix(t *testing.T) {
	f, lifecycle := newPaymentFixture(t)

	stored := &domain.Payment{
		ID:     "p1",
		SaleID: "s1",
		Status: domain.PaymentStatusPending,
		Method: domain.PaymentMethodPix,
	}
	f.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(stored, nil)
	f.paymentRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Payment")).Run(func(ctx context.Context, p *domain.Payment) {
		assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
		assert.NotNil(t, p.ProcessedAt)
	}).Return(nil)
	f.saleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(pendingSale(), nil)

	payment, err := f.svc.ConfirmPix(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, []string{"s1"}, lifecycle.paidIDs)
}

func TestConfirmPix_NotPending(t *testing.T) {
	f, _ := newPaymentFixture(t)

	stored := &domain.Payment{ID: "p1", SaleID: "s1", Status: domain.PaymentStatusFailed}
	f.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(stored, nil)

	_, err := f.svc.ConfirmPix(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
}

func TestRefund(t *testing.T) {
	f, lifecycle := newPaymentFixture(t)

	stored := &domain.Payment{
		ID:     "p1",
		SaleID: "s1",
		Status: domain.PaymentStatusCompleted,
		Method: domain.PaymentMethodCreditCard,
	}
	f.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(stored, nil)
	f.paymentRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Payment")).Run(func(ctx context.Context, p *domain.Payment) {
		assert.Equal(t, domain.PaymentStatusRefunded, p.Status)
	}).Return(nil)

	payment, err := f.svc.Refund(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, payment.Status)
	assert.Equal(t, []string{"s1"}, lifecycle.refundedIDs, "refund must compensate the sale")
}

func TestRefund_OnlyCompleted(t *testing.T) {
	f, lifecycle := newPaymentFixture(t)

	for _, status := range []domain.PaymentStatus{
		domain.PaymentStatusPending,
		domain.PaymentStatusFailed,
		domain.PaymentStatusRefunded,
	} {
		stored := &domain.Payment{ID: "p1", SaleID: "s1", Status: status}
		f.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(stored, nil).Once()

		_, err := f.svc.Refund(context.Background(), "p1")
		assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
	}
	assert.Empty(t, lifecycle.refundedIDs)
}

func TestExpirePix(t *testing.T) {
	f, _ := newPaymentFixture(t)

	expired := []*domain.Payment{
		{ID: "p1", SaleID: "s1", Status: domain.PaymentStatusFailed},
		{ID: "p2", SaleID: "s2", Status: domain.PaymentStatusFailed},
	}
	f.paymentRepo.EXPECT().ExpirePendingPix(mock.Anything, mock.AnythingOfType("time.Time")).Return(expired, nil)

	n, err := f.svc.ExpirePix(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDetectCardBrand(t *testing.T) {
	cases := map[string]string{
		"4111111111111111": "VISA",
		"5500000000000004": "MASTERCARD",
		"340000000000009":  "AMEX",
		"370000000000002":  "AMEX",
		"6011000000000004": "DISCOVER",
		"9999999999999999": "UNKNOWN",
	}
	for number, brand := range cases {
		assert.Equal(t, brand, detectCardBrand(number), number)
	}
}
