package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, h http.HandlerFunc) *EventsClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewEventsClient(srv.URL, 2*time.Second, newTestLogger(t))
	t.Cleanup(func() { c.Close() })

	return c
}

func TestEventsClient_Exists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/e1/exists", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"exists": true})
	})

	exists, err := c.Exists(context.Background(), "e1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEventsClient_GetDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/e1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "e1",
			"title":       "Concert",
			"description": "open air",
			"event_date":  "2026-12-01T20:00:00Z",
			"price":       "150.50",
		})
	})

	info, err := c.GetDetails(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Concert", info.Title)
	assert.Equal(t, "150.5", info.Price.String())
	assert.Equal(t, 2026, info.Date.Year())
}

func TestEventsClient_GetDetails_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetDetails(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventsClient_Reserve(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/e1/reserve-tickets", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("quantity"))
		json.NewEncoder(w).Encode(map[string]bool{"reserved": true})
	})

	reserved, err := c.Reserve(context.Background(), "e1", 3)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestEventsClient_Reserve_SoldOut(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"reserved": false})
	})

	reserved, err := c.Reserve(context.Background(), "e1", 3)
	require.NoError(t, err)
	assert.False(t, reserved, "sold out is a normal outcome, not an error")
}

func TestEventsClient_Release(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/e1/release-tickets", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("quantity"))
		json.NewEncoder(w).Encode(map[string]string{"status": "released"})
	})

	err := c.Release(context.Background(), "e1", 2)
	require.NoError(t, err)
}

func TestEventsClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c := NewEventsClient(srv.URL, time.Second, newTestLogger(t))
	t.Cleanup(func() { c.Close() })

	_, err := c.Exists(context.Background(), "e1")
	assert.ErrorIs(t, err, domain.ErrEventsUnreachable)

	_, err = c.Reserve(context.Background(), "e1", 1)
	assert.ErrorIs(t, err, domain.ErrEventsUnreachable)

	err = c.Release(context.Background(), "e1", 1)
	assert.ErrorIs(t, err, domain.ErrEventsUnreachable)
}
