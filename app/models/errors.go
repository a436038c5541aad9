package models

import "errors"

// Domain errors. Controllers map these to HTTP status codes at the
// route boundary; everything else surfaces as a generic 500.
var (
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponExpired      = errors.New("coupon expired or not yet valid")
	ErrCouponLimitReached = errors.New("coupon usage limit reached")

	ErrInvalidTier = errors.New("invalid membership tier")

	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
)
