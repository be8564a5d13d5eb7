package ports

import (
	"context"
	"time"

	"github.com/ufop-web/ticket-sales/internal/sales/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetBySaleID(ctx context.Context, saleID string) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	ExpirePendingPix(ctx context.Context, now time.Time) ([]*domain.Payment, error)
}
