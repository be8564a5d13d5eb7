package dto

type CreateSaleRequest struct {
	UserID        string `json:"user_id"`
	EventID       string `json:"event_id"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CardPaymentRequest struct {
	SaleID       string `json:"sale_id" binding:"required"`
	CardNumber   string `json:"card_number" binding:"required"`
	HolderName   string `json:"holder_name" binding:"required"`
	ExpiryMonth  int    `json:"expiry_month" binding:"required"`
	ExpiryYear   int    `json:"expiry_year" binding:"required"`
	CVV          string `json:"cvv" binding:"required"`
	Installments int    `json:"installments"`
}

type PixPaymentRequest struct {
	SaleID string `json:"sale_id" binding:"required"`
	PixKey string `json:"pix_key"`
}
