package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	EventExists(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListAvailableEvents(c *ginext.Context)
	ListUpcomingEvents(c *ginext.Context)
	ListEventsByCategory(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	UpdateEventStatus(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ReserveTickets(c *ginext.Context)
	ReleaseTickets(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/available", h.ListAvailableEvents)
		api.GET("/events/upcoming", h.ListUpcomingEvents)
		api.GET("/events/category/:category", h.ListEventsByCategory)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/exists", h.EventExists)
		api.PUT("/events/:id", h.UpdateEvent)
		api.PATCH("/events/:id/status", h.UpdateEventStatus)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Inventory ledger boundary consumed by the sales service.
		api.POST("/events/:id/reserve-tickets", h.ReserveTickets)
		api.POST("/events/:id/release-tickets", h.ReleaseTickets)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
