package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/ufop-web/ticket-sales/internal/sales/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SaleSvc interface {
	CreateSale(ctx context.Context, input domain.CreateSaleInput) (*domain.EnrichedSale, error)
	GetSale(ctx context.Context, id string) (*domain.EnrichedSale, error)
	ListSales(ctx context.Context) ([]*domain.EnrichedSale, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.EnrichedSale, error)
	ListByStatus(ctx context.Context, status domain.SaleStatus) ([]*domain.EnrichedSale, error)
	UpdateSaleStatus(ctx context.Context, id string, status domain.SaleStatus) (*domain.EnrichedSale, error)
	CancelSale(ctx context.Context, id string) (*domain.EnrichedSale, error)
	DeleteSale(ctx context.Context, id string) error
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	Stats(ctx context.Context) (*domain.SalesStats, error)
}

type PaymentSvc interface {
	ProcessCard(ctx context.Context, saleID string, method domain.PaymentMethod, card domain.CardData) (*domain.Payment, error)
	GeneratePix(ctx context.Context, saleID, pixKey string) (*domain.Payment, error)
	ConfirmPix(ctx context.Context, paymentID string) (*domain.Payment, error)
	Refund(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	GetPaymentBySale(ctx context.Context, saleID string) (*domain.Payment, error)
}

type Handler struct {
	saleService    SaleSvc
	paymentService PaymentSvc
}

func NewHandler(saleService SaleSvc, paymentService PaymentSvc) *Handler {
	return &Handler{
		saleService:    saleService,
		paymentService: paymentService,
	}
}

func (h *Handler) CreateSale(c *ginext.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status := domain.SaleStatus(req.Status)
	if req.Status == "" {
		status = domain.SaleStatusPending
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), domain.CreateSaleInput{
		UserID:        req.UserID,
		EventID:       req.EventID,
		Quantity:      req.Quantity,
		Status:        status,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

func (h *Handler) GetSale(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale id"})
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

func (h *Handler) ListSales(c *ginext.Context) {
	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sales)
}

func (h *Handler) ListSalesByUser(c *ginext.Context) {
	sales, err := h.saleService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sales)
}

func (h *Handler) ListSalesByStatus(c *ginext.Context) {
	sales, err := h.saleService.ListByStatus(c.Request.Context(), domain.SaleStatus(c.Param("status")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sales)
}

func (h *Handler) UpdateSaleStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale id"})
		return
	}

	var req dto.UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sale, err := h.saleService.UpdateSaleStatus(c.Request.Context(), id, domain.SaleStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

func (h *Handler) CancelSale(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale id"})
		return
	}

	sale, err := h.saleService.CancelSale(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sale)
}

func (h *Handler) DeleteSale(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale id"})
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) Revenue(c *ginext.Context) {
	revenue, err := h.saleService.TotalRevenue(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RevenueResponse{TotalRevenue: revenue})
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.saleService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ProcessCreditCardPayment and ProcessDebitCardPayment share one flow; the
// route decides which method gets stamped on the payment.
func (h *Handler) ProcessCreditCardPayment(c *ginext.Context) {
	h.processCard(c, domain.PaymentMethodCreditCard)
}

func (h *Handler) ProcessDebitCardPayment(c *ginext.Context) {
	h.processCard(c, domain.PaymentMethodDebitCard)
}

func (h *Handler) processCard(c *ginext.Context, method domain.PaymentMethod) {
	var req dto.CardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if _, err := uuid.Parse(req.SaleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale id"})
		return
	}

	installments := req.Installments
	if installments == 0 {
		installments = 1
	}

	payment, err := h.paymentService.ProcessCard(c.Request.Context(), req.SaleID, method, domain.CardData{
		Number:       req.CardNumber,
		HolderName:   req.HolderName,
		ExpiryMonth:  req.ExpiryMonth,
		ExpiryYear:   req.ExpiryYear,
		CVV:          req.CVV,
		Installments: installments,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCardDeclined) {
			c.Set("error", err.Error())
			c.JSON(http.StatusPaymentRequired, payment)
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) GeneratePixPayment(c *ginext.Context) {
	var req dto.PixPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if _, err := uuid.Parse(req.SaleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale id"})
		return
	}

	payment, err := h.paymentService.GeneratePix(c.Request.Context(), req.SaleID, req.PixKey)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) ConfirmPixPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	payment, err := h.paymentService.ConfirmPix(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *Handler) RefundPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	payment, err := h.paymentService.Refund(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *Handler) GetPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *Handler) GetPaymentBySale(c *ginext.Context) {
	saleID := c.Param("saleId")
	if _, err := uuid.Parse(saleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale id"})
		return
	}

	payment, err := h.paymentService.GetPaymentBySale(c.Request.Context(), saleID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSaleNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrSaleAlreadyPaid),
		errors.Is(err, domain.ErrSaleNotPending),
		errors.Is(err, domain.ErrPaymentNotPending),
		errors.Is(err, domain.ErrPaymentNotCompleted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventsUnreachable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "events service unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
