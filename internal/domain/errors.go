package domain

import "errors"

// Sentinel errors shared by repositories and services. Controllers map them
// to HTTP status codes with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicate           = errors.New("already exists")
	ErrConflict            = errors.New("conflict")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientBalance = errors.New("insufficient coupon balance")
	ErrCategoryMismatch    = errors.New("coupon category does not match room")
	ErrCouponExpired       = errors.New("coupon expired")
)
