package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/ufop-web/ticket-sales/internal/sales/service/ports"
	"github.com/wb-go/wbf/logger"
)

const pixTTL = 30 * time.Minute

// SaleLifecycle is the slice of the sale orchestrator the payment flows need:
// settling a payment advances its sale, refunding one compensates it.
type SaleLifecycle interface {
	MarkSalePaid(ctx context.Context, id string) error
	MarkSaleRefunded(ctx context.Context, id string) error
}

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	saleRepo    ports.SaleRepo
	sales       SaleLifecycle
	gateway     ports.CardGateway
	notifier    ports.SaleNotifier
	logger      logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	saleRepo ports.SaleRepo,
	sales SaleLifecycle,
	gateway ports.CardGateway,
	notifier ports.SaleNotifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		saleRepo:    saleRepo,
		sales:       sales,
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
	}
}

// ProcessCard runs a synchronous card charge for the sale. The payment records
// the method the caller charged with, not the method the sale was created for.
// An approved charge settles the payment and marks the sale PAID; a declined
// one is recorded as FAILED and leaves the sale untouched.
func (s *PaymentService) ProcessCard(ctx context.Context, saleID string, method domain.PaymentMethod, card domain.CardData) (*domain.Payment, error) {
	if method != domain.PaymentMethodCreditCard && method != domain.PaymentMethodDebitCard {
		return nil, fmt.Errorf("%w: %s is not a card method", domain.ErrValidation, method)
	}
	if err := validateCard(card); err != nil {
		return nil, err
	}
	if method == domain.PaymentMethodCreditCard && card.Installments < 1 {
		return nil, fmt.Errorf("%w: installments must be at least 1", domain.ErrValidation)
	}

	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.Status == domain.SaleStatusPaid {
		return nil, domain.ErrSaleAlreadyPaid
	}

	// Debit settles in one shot, so installments are a credit-only field.
	installments := card.Installments
	if method != domain.PaymentMethodCreditCard {
		installments = 0
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		SaleID:        sale.ID,
		Status:        domain.PaymentStatusPending,
		Method:        method,
		Amount:        sale.TotalAmount,
		TransactionID: newTransactionID(),
		CardLastFour:  lastFour(card.Number),
		CardBrand:     detectCardBrand(card.Number),
		Installments:  installments,
		CreatedAt:     now,
	}

	approved, err := s.gateway.Authorize(ctx, card, sale.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("authorize card: %w", err)
	}

	processed := time.Now().UTC()
	payment.ProcessedAt = &processed
	if approved {
		payment.Status = domain.PaymentStatusCompleted
		payment.Details = "card payment approved"
	} else {
		payment.Status = domain.PaymentStatusFailed
		payment.Details = "card payment declined by issuer"
	}

	if err = s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("card payment processed",
		logger.String("payment_id", payment.ID),
		logger.String("sale_id", sale.ID),
		logger.String("transaction_id", payment.TransactionID),
		logger.String("status", string(payment.Status)),
	)

	if !approved {
		return payment, domain.ErrCardDeclined
	}

	if err = s.sales.MarkSalePaid(ctx, sale.ID); err != nil {
		return nil, fmt.Errorf("mark sale paid: %w", err)
	}

	go s.notifier.NotifyPaymentCompleted(context.WithoutCancel(ctx), sale, payment)

	return payment, nil
}

// GeneratePix creates a PENDING PIX charge for the sale with a QR payload and
// an expiration 30 minutes out. The caller's own pixKey is used when supplied;
// otherwise a random one is generated. Settlement happens later via
// ConfirmPix, or the scheduler fails the charge once it expires.
func (s *PaymentService) GeneratePix(ctx context.Context, saleID, pixKey string) (*domain.Payment, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.Status == domain.SaleStatusPaid {
		return nil, domain.ErrSaleAlreadyPaid
	}

	now := time.Now().UTC()
	expiration := now.Add(pixTTL)
	key := pixKey
	if key == "" {
		key = newPixKey()
	}
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		SaleID:        sale.ID,
		Status:        domain.PaymentStatusPending,
		Method:        domain.PaymentMethodPix,
		Amount:        sale.TotalAmount,
		TransactionID: newTransactionID(),
		PixKey:        key,
		PixQrCode:     pixQrCode(key, sale.TotalAmount),
		PixExpiration: &expiration,
		CreatedAt:     now,
		Details:       "awaiting pix transfer",
	}

	if err = s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("pix charge generated",
		logger.String("payment_id", payment.ID),
		logger.String("sale_id", sale.ID),
		logger.String("pix_key", key),
	)

	return payment, nil
}

// ConfirmPix settles a PENDING PIX charge and marks its sale PAID.
func (s *PaymentService) ConfirmPix(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentStatusPending {
		return nil, domain.ErrPaymentNotPending
	}

	now := time.Now().UTC()
	payment.Status = domain.PaymentStatusCompleted
	payment.ProcessedAt = &now

	if err = s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("confirm pix: %w", err)
	}

	if err = s.sales.MarkSalePaid(ctx, payment.SaleID); err != nil {
		return nil, fmt.Errorf("mark sale paid: %w", err)
	}

	s.logger.Info("pix payment confirmed",
		logger.String("payment_id", payment.ID),
		logger.String("sale_id", payment.SaleID),
	)

	if sale, saleErr := s.saleRepo.GetByID(ctx, payment.SaleID); saleErr == nil {
		go s.notifier.NotifyPaymentCompleted(context.WithoutCancel(ctx), sale, payment)
	}

	return payment, nil
}

// Refund reverses a COMPLETED payment: the payment moves to REFUNDED and the
// sale is refunded, which returns its reserved tickets to the inventory.
func (s *PaymentService) Refund(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentStatusCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}

	if err = s.sales.MarkSaleRefunded(ctx, payment.SaleID); err != nil {
		return nil, fmt.Errorf("refund sale: %w", err)
	}

	now := time.Now().UTC()
	payment.Status = domain.PaymentStatusRefunded
	payment.ProcessedAt = &now

	if err = s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("refund payment: %w", err)
	}

	s.logger.Info("payment refunded",
		logger.String("payment_id", payment.ID),
		logger.String("sale_id", payment.SaleID),
	)

	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *PaymentService) GetPaymentBySale(ctx context.Context, saleID string) (*domain.Payment, error) {
	return s.paymentRepo.GetBySaleID(ctx, saleID)
}

// ExpirePix fails every PIX charge whose window has closed. Called
// periodically by the scheduler.
func (s *PaymentService) ExpirePix(ctx context.Context) (int, error) {
	expired, err := s.paymentRepo.ExpirePendingPix(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expire pix payments: %w", err)
	}

	for _, p := range expired {
		s.logger.Info("pix payment expired",
			logger.String("payment_id", p.ID),
			logger.String("sale_id", p.SaleID),
		)
	}

	return len(expired), nil
}

func newTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), suffix)
}

func newPixKey() string {
	return "PIX-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}

// pixQrCode renders a placeholder QR payload as a data URL. A real integration
// would return the bank-issued EMV payload here.
func pixQrCode(key string, amount decimal.Decimal) string {
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg"><text x="0" y="12">%s %s</text></svg>`,
		key, amount.StringFixed(2),
	)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

func lastFour(number string) string {
	digits := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

func detectCardBrand(number string) string {
	digits := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	switch {
	case strings.HasPrefix(digits, "4"):
		return "VISA"
	case strings.HasPrefix(digits, "5"):
		return "MASTERCARD"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "AMEX"
	case strings.HasPrefix(digits, "6"):
		return "DISCOVER"
	default:
		return "UNKNOWN"
	}
}

func validateCard(card domain.CardData) error {
	digits := strings.ReplaceAll(strings.ReplaceAll(card.Number, " ", ""), "-", "")
	if len(digits) < 13 || len(digits) > 19 {
		return fmt.Errorf("%w: card number must have 13 to 19 digits", domain.ErrValidation)
	}
	if card.HolderName == "" {
		return fmt.Errorf("%w: holder name is required", domain.ErrValidation)
	}
	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		return fmt.Errorf("%w: expiry month must be between 1 and 12", domain.ErrValidation)
	}
	if card.ExpiryYear < time.Now().Year() {
		return fmt.Errorf("%w: card is expired", domain.ErrValidation)
	}
	if len(card.CVV) < 3 || len(card.CVV) > 4 {
		return fmt.Errorf("%w: cvv must have 3 or 4 digits", domain.ErrValidation)
	}

	return nil
}
