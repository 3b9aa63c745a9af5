package services

import "errors"

// Every invalid mutation reports one of these instead of silently doing nothing,
// so callers can tell "rejected" apart from "already satisfied".
var (
	ErrNotFound          = errors.New("not found")
	ErrStockExceeded     = errors.New("stock exceeded")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrTableRequired     = errors.New("table number is required")
	ErrInvalidItem       = errors.New("invalid menu item")
	ErrPersistence       = errors.New("persistence failure")
)
