package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPromoCode   = errors.New("invalid promo code")
	ErrStatusRegression   = errors.New("order status cannot move backwards")
)
