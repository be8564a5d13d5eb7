package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
)

var (
	ErrValidation = errors.New("validation error")
)
