package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/ufop-web/ticket-sales/internal/sales/handler/dto"
	hmocks "github.com/ufop-web/ticket-sales/internal/sales/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockSaleSvc, *hmocks.MockPaymentSvc, http.Handler) {
	t.Helper()
	saleSvc := hmocks.NewMockSaleSvc(t)
	paymentSvc := hmocks.NewMockPaymentSvc(t)

	h := NewHandler(saleSvc, paymentSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/sales", h.CreateSale)
		api.GET("/sales/:id", h.GetSale)
		api.POST("/sales/:id/cancel", h.CancelSale)
		api.PATCH("/sales/:id/status", h.UpdateSaleStatus)
		api.POST("/payments/credit-card", h.ProcessCreditCardPayment)
		api.POST("/payments/debit-card", h.ProcessDebitCardPayment)
		api.POST("/payments/pix", h.GeneratePixPayment)
		api.POST("/payments/pix/:id/confirm", h.ConfirmPixPayment)
		api.POST("/payments/:id/refund", h.RefundPayment)
	}

	return saleSvc, paymentSvc, r
}

func enrichedSale(status domain.SaleStatus) *domain.EnrichedSale {
	return &domain.EnrichedSale{
		Sale: domain.Sale{
			ID:            uuid.New().String(),
			UserID:        "u1",
			EventID:       uuid.New().String(),
			Quantity:      2,
			TotalAmount:   decimal.RequireFromString("301.00"),
			Status:        status,
			PaymentMethod: domain.PaymentMethodPix,
			SaleDate:      time.Now().UTC(),
		},
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	return w
}

func TestHandler_CreateSale_Success(t *testing.T) {
	saleSvc, _, r := setupRouter(t)

	sale := enrichedSale(domain.SaleStatusPending)
	saleSvc.EXPECT().CreateSale(mock.Anything, mock.Anything).Return(sale, nil)

	w := doJSON(t, r, http.MethodPost, "/api/sales", dto.CreateSaleRequest{
		UserID:        "u1",
		EventID:       sale.EventID,
		Quantity:      2,
		PaymentMethod: "PIX",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.EnrichedSale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sale.ID, resp.ID)
}

func TestHandler_CreateSale_DefaultsToPending(t *testing.T) {
	saleSvc, _, r := setupRouter(t)

	saleSvc.EXPECT().CreateSale(mock.Anything, mock.Anything).Run(func(ctx context.Context, input domain.CreateSaleInput) {
		assert.Equal(t, domain.SaleStatusPending, input.Status)
	}).Return(enrichedSale(domain.SaleStatusPending), nil)

	w := doJSON(t, r, http.MethodPost, "/api/sales", dto.CreateSaleRequest{
		UserID:        "u1",
		EventID:       uuid.New().String(),
		Quantity:      1,
		PaymentMethod: "CASH",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateSale_SoldOutConflict(t *testing.T) {
	saleSvc, _, r := setupRouter(t)

	saleSvc.EXPECT().CreateSale(mock.Anything, mock.Anything).Return(nil, domain.ErrSoldOut)

	w := doJSON(t, r, http.MethodPost, "/api/sales", dto.CreateSaleRequest{
		UserID:        "u1",
		EventID:       uuid.New().String(),
		Quantity:      5,
		Status:        "PAID",
		PaymentMethod: "PIX",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateSale_EventsDownBadGateway(t *testing.T) {
	saleSvc, _, r := setupRouter(t)

	saleSvc.EXPECT().CreateSale(mock.Anything, mock.Anything).Return(nil, domain.ErrEventsUnreachable)

	w := doJSON(t, r, http.MethodPost, "/api/sales", dto.CreateSaleRequest{
		UserID:        "u1",
		EventID:       uuid.New().String(),
		Quantity:      1,
		PaymentMethod: "PIX",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_GetSale_NotFound(t *testing.T) {
	saleSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	saleSvc.EXPECT().GetSale(mock.Anything, id).Return(nil, domain.ErrSaleNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/sales/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetSale_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sales/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelSale_NotPendingConflict(t *testing.T) {
	saleSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	saleSvc.EXPECT().CancelSale(mock.Anything, id).Return(nil, domain.ErrSaleNotPending)

	w := doJSON(t, r, http.MethodPost, "/api/sales/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateSaleStatus_Success(t *testing.T) {
	saleSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	saleSvc.EXPECT().UpdateSaleStatus(mock.Anything, id, domain.SaleStatusPaid).
		Return(enrichedSale(domain.SaleStatusPaid), nil)

	w := doJSON(t, r, http.MethodPatch, "/api/sales/"+id+"/status", dto.UpdateSaleStatusRequest{Status: "PAID"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ProcessCardPayment_Declined(t *testing.T) {
	_, paymentSvc, r := setupRouter(t)

	saleID := uuid.New().String()
	failed := &domain.Payment{ID: uuid.New().String(), SaleID: saleID, Status: domain.PaymentStatusFailed}
	paymentSvc.EXPECT().ProcessCard(mock.Anything, saleID, domain.PaymentMethodCreditCard, mock.Anything).Return(failed, domain.ErrCardDeclined)

	w := doJSON(t, r, http.MethodPost, "/api/payments/credit-card", dto.CardPaymentRequest{
		SaleID:      saleID,
		CardNumber:  "4111111111111111",
		HolderName:  "JOHN DOE",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	})

	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	var resp domain.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.PaymentStatusFailed, resp.Status)
}

func TestHandler_ProcessCardPayment_AlreadyPaidConflict(t *testing.T) {
	_, paymentSvc, r := setupRouter(t)

	saleID := uuid.New().String()
	paymentSvc.EXPECT().ProcessCard(mock.Anything, saleID, domain.PaymentMethodCreditCard, mock.Anything).Return(nil, domain.ErrSaleAlreadyPaid)

	w := doJSON(t, r, http.MethodPost, "/api/payments/credit-card", dto.CardPaymentRequest{
		SaleID:      saleID,
		CardNumber:  "4111111111111111",
		HolderName:  "JOHN DOE",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DebitCardRoute_PassesDebitMethod(t *testing.T) {
	_, paymentSvc, r := setupRouter(t)

	saleID := uuid.New().String()
	completed := &domain.Payment{
		ID:     uuid.New().String(),
		SaleID: saleID,
		Status: domain.PaymentStatusCompleted,
		Method: domain.PaymentMethodDebitCard,
	}
	paymentSvc.EXPECT().ProcessCard(mock.Anything, saleID, domain.PaymentMethodDebitCard, mock.Anything).Return(completed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/debit-card", dto.CardPaymentRequest{
		SaleID:      saleID,
		CardNumber:  "4111111111111111",
		HolderName:  "JOHN DOE",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.PaymentMethodDebitCard, resp.Method)
}

func TestHandler_GeneratePix_Success(t *testing.T) {
	_, paymentSvc, r := setupRouter(t)

	saleID := uuid.New().String()
	payment := &domain.Payment{
		ID:     uuid.New().String(),
		SaleID: saleID,
		Status: domain.PaymentStatusPending,
		Method: domain.PaymentMethodPix,
		PixKey: "PIX-AAAA1111",
	}
	paymentSvc.EXPECT().GeneratePix(mock.Anything, saleID, "").Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/pix", dto.PixPaymentRequest{SaleID: saleID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PIX-AAAA1111", resp.PixKey)
}

func TestHandler_GeneratePix_CallerKey(t *testing.T) {
	_, paymentSvc, r := setupRouter(t)

	saleID := uuid.New().String()
	payment := &domain.Payment{
		ID:     uuid.New().String(),
		SaleID: saleID,
		Status: domain.PaymentStatusPending,
		Method: domain.PaymentMethodPix,
		PixKey: "buyer@bank.example",
	}
	paymentSvc.EXPECT().GeneratePix(mock.Anything, saleID, "buyer@bank.example").Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/pix", dto.PixPaymentRequest{
		SaleID: saleID,
		PixKey: "buyer@bank.example",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ConfirmPix_NotPendingConflict(t *testing.T) {
	_, paymentSvc, r := setupRouter(t)

	id := uuid.New().String()
	paymentSvc.EXPECT().ConfirmPix(mock.Anything, id).Return(nil, domain.ErrPaymentNotPending)

	w := doJSON(t, r, http.MethodPost, "/api/payments/pix/"+id+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Refund_NotCompletedConflict(t *testing.T) {
	_, paymentSvc, r := setupRouter(t)

	id := uuid.New().String()
	paymentSvc.EXPECT().Refund(mock.Anything, id).Return(nil, domain.ErrPaymentNotCompleted)

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+id+"/refund", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}
