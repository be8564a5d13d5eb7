package dto

import "github.com/shopspring/decimal"

type RevenueResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
