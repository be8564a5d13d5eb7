package domain

import "errors"

var (
	ErrSaleNotFound    = errors.New("sale not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrEventNotFound   = errors.New("event not found")
)

var (
	ErrSoldOut             = errors.New("could not reserve tickets, they might have sold out")
	ErrSaleAlreadyPaid     = errors.New("sale is already paid")
	ErrSaleNotPending      = errors.New("sale is not in pending status")
	ErrPaymentNotPending   = errors.New("payment is not pending")
	ErrPaymentNotCompleted = errors.New("only completed payments can be refunded")
	ErrCardDeclined        = errors.New("card was declined")
)

var (
	ErrEventsUnreachable = errors.New("events service unreachable")
)

var (
	ErrValidation = errors.New("validation error")
)
