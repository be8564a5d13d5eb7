// Package client implements the HTTP binding of the events service capability
// interface consumed by the sale orchestrator.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/wb-go/wbf/logger"
	"resty.dev/v3"
)

// EventsClient talks to the events service. Every transport failure (refused
// connection, timeout) maps to domain.ErrEventsUnreachable so the orchestrator
// can decide whether the failure is fatal (creation) or degradable (reads).
type EventsClient struct {
	http   *resty.Client
	logger logger.Logger
}

func NewEventsClient(baseURL string, timeout time.Duration, log logger.Logger) *EventsClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &EventsClient{
		http:   c,
		logger: log,
	}
}

func (c *EventsClient) Close() error {
	return c.http.Close()
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

type reserveResponse struct {
	Reserved bool `json:"reserved"`
}

type eventResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	EventDate   time.Time       `json:"event_date"`
	Price       decimal.Decimal `json:"price"`
}

func (c *EventsClient) Exists(ctx context.Context, eventID string) (bool, error) {
	var out existsResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/events/" + eventID + "/exists")
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrEventsUnreachable, err)
	}
	if res.IsError() {
		return false, fmt.Errorf("%w: exists returned status %d", domain.ErrEventsUnreachable, res.StatusCode())
	}

	return out.Exists, nil
}

func (c *EventsClient) GetDetails(ctx context.Context, eventID string) (*domain.EventInfo, error) {
	var out eventResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/events/" + eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEventsUnreachable, err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, domain.ErrEventNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: get details returned status %d", domain.ErrEventsUnreachable, res.StatusCode())
	}

	return &domain.EventInfo{
		ID:          out.ID,
		Title:       out.Title,
		Description: out.Description,
		Date:        out.EventDate,
		Price:       out.Price,
	}, nil
}

func (c *EventsClient) Reserve(ctx context.Context, eventID string, quantity int) (bool, error) {
	var out reserveResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("quantity", strconv.Itoa(quantity)).
		SetResult(&out).
		Post("/api/events/" + eventID + "/reserve-tickets")
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrEventsUnreachable, err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return false, domain.ErrEventNotFound
	}
	if res.IsError() {
		return false, fmt.Errorf("%w: reserve returned status %d", domain.ErrEventsUnreachable, res.StatusCode())
	}

	c.logger.Info("ticket reservation requested",
		logger.String("event_id", eventID),
		logger.Int("quantity", quantity),
		logger.Any("reserved", out.Reserved),
	)

	return out.Reserved, nil
}

func (c *EventsClient) Release(ctx context.Context, eventID string, quantity int) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("quantity", strconv.Itoa(quantity)).
		Post("/api/events/" + eventID + "/release-tickets")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEventsUnreachable, err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return domain.ErrEventNotFound
	}
	if res.IsError() {
		return fmt.Errorf("%w: release returned status %d", domain.ErrEventsUnreachable, res.StatusCode())
	}

	c.logger.Info("tickets released",
		logger.String("event_id", eventID),
		logger.Int("quantity", quantity),
	)

	return nil
}
