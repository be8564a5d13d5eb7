package ports

import (
	"context"

	"github.com/ufop-web/ticket-sales/internal/events/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListAvailable(ctx context.Context) ([]*domain.Event, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error)
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	Reserve(ctx context.Context, id string, quantity int) (bool, error)
	Release(ctx context.Context, id string, quantity int) error
}
