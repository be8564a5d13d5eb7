package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
)

type SaleRepo interface {
	Create(ctx context.Context, s *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Sale, error)
	ListByStatus(ctx context.Context, status domain.SaleStatus) ([]*domain.Sale, error)
	Update(ctx context.Context, s *domain.Sale) error
	Delete(ctx context.Context, id string) error
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.SaleStatus]int64, error)
}
