package order

import "errors"

var (
	ErrMissingRequiredFields   = errors.New("missing required fields")
	ErrNoPackages              = errors.New("order must contain at least one package")
	ErrInvalidPhone            = errors.New("invalid phone number")
	ErrInvalidTier             = errors.New("invalid delivery tier")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrMissingPricingInput     = errors.New("missing pricing input")

	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNumberConflict  = errors.New("order number already exists")
	ErrPackageCodeConflict  = errors.New("package code already exists")
	ErrPackageCodeExhausted = errors.New("package code deduplication exhausted")
)
