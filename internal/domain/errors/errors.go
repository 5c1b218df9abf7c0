package errors

import "errors"

var (
	ErrAlreadyExists           = errors.New("already exists")
	ErrNotFound                = errors.New("not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrEmptyCart               = errors.New("Cart is empty")
	ErrInvalidQuantity         = errors.New("Quantity must be positive")
	ErrItemNotInCart           = errors.New("Item not in cart")
	ErrInvalidCheckout         = errors.New("name and phone are required")
	ErrInvalidContact          = errors.New("name, email, subject and message are required")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrUnknownStatus           = errors.New("unknown order status")
)
