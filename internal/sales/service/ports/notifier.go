package ports

import (
	"context"

	"github.com/ufop-web/ticket-sales/internal/sales/domain"
)

type SaleNotifier interface {
	NotifySaleCreated(ctx context.Context, sale *domain.Sale)
	NotifyPaymentCompleted(ctx context.Context, sale *domain.Sale, payment *domain.Payment)
	NotifySaleCancelled(ctx context.Context, sale *domain.Sale)
}
