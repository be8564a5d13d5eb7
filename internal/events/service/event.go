package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ufop-web/ticket-sales/internal/events/domain"
	"github.com/ufop-web/ticket-sales/internal/events/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo   ports.EventRepo
	logger logger.Logger
}

func NewEventService(repo ports.EventRepo, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.TotalTickets < 0 {
		return nil, fmt.Errorf("%w: total_tickets must not be negative", domain.ErrValidation)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Description:      input.Description,
		Location:         input.Location,
		Category:         input.Category,
		EventDate:        input.EventDate,
		EndDate:          input.EndDate,
		Price:            input.Price,
		TotalTickets:     input.TotalTickets,
		AvailableTickets: input.TotalTickets,
		ImageURL:         input.ImageURL,
		Status:           domain.EventStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
		logger.Int("total_tickets", event.TotalTickets),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) ListAvailable(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *EventService) ListByCategory(ctx context.Context, category string) ([]*domain.Event, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *EventService) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListUpcoming(ctx)
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.TotalTickets < 0 {
		return nil, fmt.Errorf("%w: total_tickets must not be negative", domain.ErrValidation)
	}

	return s.repo.Update(ctx, id, input)
}

func (s *EventService) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	event, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("event status updated",
		logger.String("event_id", id),
		logger.String("status", string(status)),
	)

	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Reserve decrements the inventory counter for a sale attempt. A false result
// means the tickets sold out, which is a normal outcome for the caller.
func (s *EventService) Reserve(ctx context.Context, id string, quantity int) (bool, error) {
	if quantity < 1 {
		return false, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	reserved, err := s.repo.Reserve(ctx, id, quantity)
	if err != nil {
		return false, err
	}

	s.logger.Info("ticket reservation",
		logger.String("event_id", id),
		logger.Int("quantity", quantity),
		logger.Any("reserved", reserved),
	)

	return reserved, nil
}

// Release is the compensation path: it puts tickets back after a sale is
// cancelled or refunded. Callers release once per reservation being undone.
func (s *EventService) Release(ctx context.Context, id string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	if err := s.repo.Release(ctx, id, quantity); err != nil {
		return err
	}

	s.logger.Info("tickets released",
		logger.String("event_id", id),
		logger.Int("quantity", quantity),
	)

	return nil
}
