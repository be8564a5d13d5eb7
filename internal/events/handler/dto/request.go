package dto

type CreateEventRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Category     string  `json:"category"`
	EventDate    string  `json:"event_date" binding:"required"`
	EndDate      *string `json:"end_date"`
	Price        string  `json:"price" binding:"required"`
	TotalTickets int     `json:"total_tickets" binding:"required,gte=0"`
	ImageURL     string  `json:"image_url"`
}

type UpdateEventRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Category     string  `json:"category"`
	EventDate    string  `json:"event_date" binding:"required"`
	EndDate      *string `json:"end_date"`
	Price        string  `json:"price" binding:"required"`
	TotalTickets int     `json:"total_tickets" binding:"required,gte=0"`
	ImageURL     string  `json:"image_url"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
