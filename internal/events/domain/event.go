package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusInactive  EventStatus = "INACTIVE"
	EventStatusSoldOut   EventStatus = "SOLD_OUT"
	EventStatusCancelled EventStatus = "CANCELLED"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusActive, EventStatusInactive, EventStatusSoldOut, EventStatusCancelled:
		return true
	}
	return false
}

// Event owns the per-event ticket inventory: available_tickets is the single
// counter the sales service reserves against.
type Event struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Location         string          `json:"location"`
	Category         string          `json:"category"`
	EventDate        time.Time       `json:"event_date"`
	EndDate          *time.Time      `json:"end_date,omitempty"`
	Price            decimal.Decimal `json:"price"`
	TotalTickets     int             `json:"total_tickets"`
	AvailableTickets int             `json:"available_tickets"`
	ImageURL         string          `json:"image_url"`
	Status           EventStatus     `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type CreateEventInput struct {
	Title        string
	Description  string
	Location     string
	Category     string
	EventDate    time.Time
	EndDate      *time.Time
	Price        decimal.Decimal
	TotalTickets int
	ImageURL     string
}

type UpdateEventInput struct {
	Title        string
	Description  string
	Location     string
	Category     string
	EventDate    time.Time
	EndDate      *time.Time
	Price        decimal.Decimal
	TotalTickets int
	ImageURL     string
}
