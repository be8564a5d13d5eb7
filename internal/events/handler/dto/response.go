package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/events/domain"
)

type EventResponse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Location         string          `json:"location"`
	Category         string          `json:"category"`
	EventDate        string          `json:"event_date"`
	EndDate          *string         `json:"end_date,omitempty"`
	Price            decimal.Decimal `json:"price"`
	TotalTickets     int             `json:"total_tickets"`
	AvailableTickets int             `json:"available_tickets"`
	ImageURL         string          `json:"image_url"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type ReserveResponse struct {
	Reserved bool `json:"reserved"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Location:         e.Location,
		Category:         e.Category,
		EventDate:        e.EventDate.Format(time.RFC3339),
		Price:            e.Price,
		TotalTickets:     e.TotalTickets,
		AvailableTickets: e.AvailableTickets,
		ImageURL:         e.ImageURL,
		Status:           string(e.Status),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
	if e.EndDate != nil {
		end := e.EndDate.Format(time.RFC3339)
		resp.EndDate = &end
	}

	return resp
}
