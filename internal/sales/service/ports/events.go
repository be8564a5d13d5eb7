package ports

import (
	"context"

	"github.com/ufop-web/ticket-sales/internal/sales/domain"
)

// EventsClient is the capability interface onto the events service. Reserve
// reports "sold out" as false rather than an error so the orchestrator can
// treat it as a normal business outcome.
type EventsClient interface {
	Exists(ctx context.Context, eventID string) (bool, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventInfo, error)
	Reserve(ctx context.Context, eventID string, quantity int) (bool, error)
	Release(ctx context.Context, eventID string, quantity int) error
}
