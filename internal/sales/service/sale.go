package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/ufop-web/ticket-sales/internal/sales/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SaleService orchestrates the cross-service sale saga: it gates creation on
// event existence, commits inventory before the sale row is written, and
// releases inventory when a sale that holds a reservation is cancelled or
// refunded.
type SaleService struct {
	saleRepo ports.SaleRepo
	events   ports.EventsClient
	notifier ports.SaleNotifier
	logger   logger.Logger
}

func NewSaleService(
	saleRepo ports.SaleRepo,
	events ports.EventsClient,
	notifier ports.SaleNotifier,
	logger logger.Logger,
) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		events:   events,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateSale runs the forward path of the saga. Ordering matters: the
// reservation is attempted before the sale row is written, so a failed
// reservation leaves no orphan sale, and a failed write releases the
// reservation it just took.
func (s *SaleService) CreateSale(ctx context.Context, input domain.CreateSaleInput) (*domain.EnrichedSale, error) {
	if err := validateCreateSale(input); err != nil {
		return nil, err
	}

	exists, err := s.events.Exists(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !exists {
		return nil, domain.ErrEventNotFound
	}

	info, err := s.events.GetDetails(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	now := time.Now().UTC()
	sale := &domain.Sale{
		ID:            uuid.New().String(),
		UserID:        input.UserID,
		EventID:       input.EventID,
		Quantity:      input.Quantity,
		TotalAmount:   info.Price.Mul(decimal.NewFromInt(int64(input.Quantity))),
		Status:        input.Status,
		PaymentMethod: input.PaymentMethod,
		SaleDate:      now,
		Notes:         input.Notes,
	}

	if input.Status == domain.SaleStatusPaid {
		reserved, err := s.events.Reserve(ctx, input.EventID, input.Quantity)
		if err != nil {
			return nil, fmt.Errorf("reserve tickets: %w", err)
		}
		if !reserved {
			return nil, domain.ErrSoldOut
		}
		sale.TicketsReserved = true
		sale.PaymentDate = &now
	}

	if err = s.saleRepo.Create(ctx, sale); err != nil {
		if sale.TicketsReserved {
			if relErr := s.events.Release(ctx, input.EventID, input.Quantity); relErr != nil {
				s.logger.Error("failed to release tickets after sale write failure",
					logger.String("event_id", input.EventID),
					logger.Int("quantity", input.Quantity),
					logger.String("error", relErr.Error()),
				)
			}
		}
		return nil, fmt.Errorf("create sale: %w", err)
	}

	s.logger.Info("sale created",
		logger.String("sale_id", sale.ID),
		logger.String("event_id", sale.EventID),
		logger.String("user_id", sale.UserID),
		logger.Int("quantity", sale.Quantity),
		logger.String("status", string(sale.Status)),
	)

	go s.notifier.NotifySaleCreated(context.WithoutCancel(ctx), sale)

	return s.withEventInfo(sale, info), nil
}

func (s *SaleService) GetSale(ctx context.Context, id string) (*domain.EnrichedSale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, sale), nil
}

func (s *SaleService) ListSales(ctx context.Context) ([]*domain.EnrichedSale, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, sales), nil
}

func (s *SaleService) ListByUser(ctx context.Context, userID string) ([]*domain.EnrichedSale, error) {
	sales, err := s.saleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, sales), nil
}

func (s *SaleService) ListByStatus(ctx context.Context, status domain.SaleStatus) ([]*domain.EnrichedSale, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	sales, err := s.saleRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, sales), nil
}

// UpdateSaleStatus is the administrative override: it sets any status without
// validating the source state, stamping the dates the target state owns. The
// safe transitions live in CancelSale and the payment flows.
func (s *SaleService) UpdateSaleStatus(ctx context.Context, id string, status domain.SaleStatus) (*domain.EnrichedSale, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sale.Status = status
	switch status {
	case domain.SaleStatusPaid:
		sale.PaymentDate = &now
	case domain.SaleStatusCancelled:
		sale.CancellationDate = &now
	}

	if err = s.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("update sale status: %w", err)
	}

	s.logger.Info("sale status updated",
		logger.String("sale_id", id),
		logger.String("status", string(status)),
	)

	return s.enrich(ctx, sale), nil
}

// CancelSale is the safe cancellation path: only PENDING sales can be
// cancelled, and a held reservation is released exactly once.
func (s *SaleService) CancelSale(ctx context.Context, id string) (*domain.EnrichedSale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if sale.Status != domain.SaleStatusPending {
		return nil, domain.ErrSaleNotPending
	}

	if err = s.compensate(ctx, sale); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sale.Status = domain.SaleStatusCancelled
	sale.CancellationDate = &now

	if err = s.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("cancel sale: %w", err)
	}

	s.logger.Info("sale cancelled", logger.String("sale_id", id))

	go s.notifier.NotifySaleCancelled(context.WithoutCancel(ctx), sale)

	return s.enrich(ctx, sale), nil
}

// MarkSalePaid advances the sale after a settled payment.
func (s *SaleService) MarkSalePaid(ctx context.Context, id string) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	sale.Status = domain.SaleStatusPaid
	sale.PaymentDate = &now

	if err = s.saleRepo.Update(ctx, sale); err != nil {
		return fmt.Errorf("mark sale paid: %w", err)
	}

	s.logger.Info("sale paid", logger.String("sale_id", id))

	return nil
}

// MarkSaleRefunded moves the sale to REFUNDED after a refunded payment and
// returns any held reservation to the inventory.
func (s *SaleService) MarkSaleRefunded(ctx context.Context, id string) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err = s.compensate(ctx, sale); err != nil {
		return err
	}

	sale.Status = domain.SaleStatusRefunded

	if err = s.saleRepo.Update(ctx, sale); err != nil {
		return fmt.Errorf("mark sale refunded: %w", err)
	}

	s.logger.Info("sale refunded", logger.String("sale_id", id))

	return nil
}

func (s *SaleService) DeleteSale(ctx context.Context, id string) error {
	return s.saleRepo.Delete(ctx, id)
}

func (s *SaleService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return s.saleRepo.TotalRevenue(ctx)
}

func (s *SaleService) Stats(ctx context.Context) (*domain.SalesStats, error) {
	total, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sales: %w", err)
	}

	byStatus, err := s.saleRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}

	revenue, err := s.saleRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	return &domain.SalesStats{
		TotalSales:   total,
		PaidSales:    byStatus[domain.SaleStatusPaid],
		TotalRevenue: revenue,
		ByStatus:     byStatus,
	}, nil
}

// compensate releases the inventory a sale holds. The reservation flag is
// cleared on the in-memory sale; the caller persists it together with the
// status change, so a sale can never release the same reservation twice.
func (s *SaleService) compensate(ctx context.Context, sale *domain.Sale) error {
	if !sale.TicketsReserved {
		return nil
	}

	if err := s.events.Release(ctx, sale.EventID, sale.Quantity); err != nil {
		return fmt.Errorf("release tickets: %w", err)
	}
	sale.TicketsReserved = false

	s.logger.Info("reservation compensated",
		logger.String("sale_id", sale.ID),
		logger.String("event_id", sale.EventID),
		logger.Int("quantity", sale.Quantity),
	)

	return nil
}

// enrich attaches event details to a sale, best effort: a read never fails
// because the events service is down.
func (s *SaleService) enrich(ctx context.Context, sale *domain.Sale) *domain.EnrichedSale {
	info, err := s.events.GetDetails(ctx, sale.EventID)
	if err != nil {
		s.logger.Warn("could not fetch event details for sale",
			logger.String("sale_id", sale.ID),
			logger.String("event_id", sale.EventID),
			logger.String("error", err.Error()),
		)
		return &domain.EnrichedSale{Sale: *sale}
	}

	return s.withEventInfo(sale, info)
}

func (s *SaleService) enrichAll(ctx context.Context, sales []*domain.Sale) []*domain.EnrichedSale {
	res := make([]*domain.EnrichedSale, 0, len(sales))
	for _, sale := range sales {
		res = append(res, s.enrich(ctx, sale))
	}
	return res
}

func (s *SaleService) withEventInfo(sale *domain.Sale, info *domain.EventInfo) *domain.EnrichedSale {
	enriched := &domain.EnrichedSale{Sale: *sale}
	if info != nil {
		date := info.Date
		price := info.Price
		enriched.EventDescription = info.Description
		enriched.EventDate = &date
		enriched.EventPrice = &price
	}

	return enriched
}

func validateCreateSale(input domain.CreateSaleInput) error {
	if input.UserID == "" {
		return fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	if input.EventID == "" {
		return fmt.Errorf("%w: event_id is required", domain.ErrValidation)
	}
	if input.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	if input.Status != domain.SaleStatusPending && input.Status != domain.SaleStatusPaid {
		return fmt.Errorf("%w: a sale can only be created as PENDING or PAID", domain.ErrValidation)
	}
	if !input.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, input.PaymentMethod)
	}

	return nil
}
