package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/events/domain"
	"github.com/ufop-web/ticket-sales/internal/events/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListAvailable(ctx context.Context) ([]*domain.Event, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	Reserve(ctx context.Context, id string, quantity int) (bool, error)
	Release(ctx context.Context, id string, quantity int) error
}

type Handler struct {
	eventService EventSvc
}

func NewHandler(eventService EventSvc) *Handler {
	return &Handler{eventService: eventService}
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := toCreateInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// EventExists reports existence as a boolean, never as a 404: the sales
// service uses it as a precondition gate.
func (h *Handler) EventExists(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	exists, err := h.eventService.Exists(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExistsResponse{Exists: exists})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	h.respondList(c, h.eventService.List)
}

func (h *Handler) ListAvailableEvents(c *ginext.Context) {
	h.respondList(c, h.eventService.ListAvailable)
}

func (h *Handler) ListUpcomingEvents(c *ginext.Context) {
	h.respondList(c, h.eventService.ListUpcoming)
}

func (h *Handler) ListEventsByCategory(c *ginext.Context) {
	category := c.Param("category")
	h.respondList(c, func(ctx context.Context) ([]*domain.Event, error) {
		return h.eventService.ListByCategory(ctx, category)
	})
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := toCreateInput(dto.CreateEventRequest(req))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, domain.UpdateEventInput(input))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEventStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.UpdateStatus(c.Request.Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ReserveTickets(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil || quantity < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "quantity must be a positive integer"})
		return
	}

	reserved, err := h.eventService.Reserve(c.Request.Context(), id, quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReserveResponse{Reserved: reserved})
}

func (h *Handler) ReleaseTickets(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil || quantity < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "quantity must be a positive integer"})
		return
	}

	if err := h.eventService.Release(c.Request.Context(), id, quantity); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "released"})
}

func (h *Handler) respondList(c *ginext.Context, list func(ctx context.Context) ([]*domain.Event, error)) {
	events, err := list(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func toCreateInput(req dto.CreateEventRequest) (domain.CreateEventInput, error) {
	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return domain.CreateEventInput{}, errors.New("invalid event_date format, expected RFC3339")
	}

	var endDate *time.Time
	if req.EndDate != nil {
		end, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return domain.CreateEventInput{}, errors.New("invalid end_date format, expected RFC3339")
		}
		endDate = &end
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return domain.CreateEventInput{}, errors.New("invalid price")
	}

	return domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Category:     req.Category,
		EventDate:    eventDate,
		EndDate:      endDate,
		Price:        price,
		TotalTickets: req.TotalTickets,
		ImageURL:     req.ImageURL,
	}, nil
}
