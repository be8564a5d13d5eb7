package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment is one attempted settlement of a sale.
type Payment struct {
	ID            string          `json:"id"`
	SaleID        string          `json:"sale_id"`
	Status        PaymentStatus   `json:"status"`
	Method        PaymentMethod   `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	CardLastFour  string          `json:"card_last_four,omitempty"`
	CardBrand     string          `json:"card_brand,omitempty"`
	Installments  int             `json:"installments,omitempty"`
	PixKey        string          `json:"pix_key,omitempty"`
	PixQrCode     string          `json:"pix_qr_code,omitempty"`
	PixExpiration *time.Time      `json:"pix_expiration,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	Details       string          `json:"payment_details,omitempty"`
}

// CardData is what the simulated gateway authorizes. The number is never
// persisted, only its masked suffix and detected brand.
type CardData struct {
	Number       string
	HolderName   string
	ExpiryMonth  int
	ExpiryYear   int
	CVV          string
	Installments int
}
