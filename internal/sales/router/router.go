package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSale(c *ginext.Context)
	GetSale(c *ginext.Context)
	ListSales(c *ginext.Context)
	ListSalesByUser(c *ginext.Context)
	ListSalesByStatus(c *ginext.Context)
	UpdateSaleStatus(c *ginext.Context)
	CancelSale(c *ginext.Context)
	DeleteSale(c *ginext.Context)
	Revenue(c *ginext.Context)
	Stats(c *ginext.Context)
	ProcessCreditCardPayment(c *ginext.Context)
	ProcessDebitCardPayment(c *ginext.Context)
	GeneratePixPayment(c *ginext.Context)
	ConfirmPixPayment(c *ginext.Context)
	RefundPayment(c *ginext.Context)
	GetPayment(c *ginext.Context)
	GetPaymentBySale(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/sales", h.CreateSale)
		api.GET("/sales", h.ListSales)
		api.GET("/sales/stats", h.Stats)
		api.GET("/sales/stats/revenue", h.Revenue)
		api.GET("/sales/user/:userId", h.ListSalesByUser)
		api.GET("/sales/status/:status", h.ListSalesByStatus)
		api.GET("/sales/:id", h.GetSale)
		api.PATCH("/sales/:id/status", h.UpdateSaleStatus)
		api.POST("/sales/:id/cancel", h.CancelSale)
		api.DELETE("/sales/:id", h.DeleteSale)

		api.POST("/payments/credit-card", h.ProcessCreditCardPayment)
		api.POST("/payments/debit-card", h.ProcessDebitCardPayment)
		api.POST("/payments/pix", h.GeneratePixPayment)
		api.POST("/payments/pix/:id/confirm", h.ConfirmPixPayment)
		api.POST("/payments/:id/refund", h.RefundPayment)
		api.GET("/payments/sale/:saleId", h.GetPaymentBySale)
		api.GET("/payments/:id", h.GetPayment)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
