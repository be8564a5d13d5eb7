package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
)

// CardGateway authorizes card charges. The production binding would talk to a
// real acquirer; the default implementation approves everything.
type CardGateway interface {
	Authorize(ctx context.Context, card domain.CardData, amount decimal.Decimal) (bool, error)
}
