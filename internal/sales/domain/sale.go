package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusPaid      SaleStatus = "PAID"
	SaleStatusCancelled SaleStatus = "CANCELLED"
	SaleStatusRefunded  SaleStatus = "REFUNDED"
)

func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusPending, SaleStatusPaid, SaleStatusCancelled, SaleStatusRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodCash       PaymentMethod = "CASH"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodCash:
		return true
	}
	return false
}

// Sale is the buyer-facing record of an intent to purchase tickets.
// TicketsReserved marks that this sale holds an inventory reservation and is
// what makes the compensation release exactly-once: it is set when the
// creation-time reservation succeeds and cleared when the reservation is
// returned on cancel/refund.
type Sale struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	EventID          string          `json:"event_id"`
	Quantity         int             `json:"quantity"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           SaleStatus      `json:"status"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	SaleDate         time.Time       `json:"sale_date"`
	PaymentDate      *time.Time      `json:"payment_date,omitempty"`
	CancellationDate *time.Time      `json:"cancellation_date,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	TicketsReserved  bool            `json:"-"`
}

type CreateSaleInput struct {
	UserID        string
	EventID       string
	Quantity      int
	Status        SaleStatus
	PaymentMethod PaymentMethod
	Notes         string
}

// EventInfo is the snapshot of event details fetched from the events service.
type EventInfo struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Price       decimal.Decimal
}

// EnrichedSale is a sale augmented with event details, best effort: the event
// fields stay nil when the events service could not be reached.
type EnrichedSale struct {
	Sale
	EventDescription string           `json:"event_description,omitempty"`
	EventDate        *time.Time       `json:"event_date,omitempty"`
	EventPrice       *decimal.Decimal `json:"event_price,omitempty"`
}

type SalesStats struct {
	TotalSales   int64                `json:"total_sales"`
	PaidSales    int64                `json:"paid_sales"`
	TotalRevenue decimal.Decimal      `json:"total_revenue"`
	ByStatus     map[SaleStatus]int64 `json:"sales_by_status"`
}
