package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"product not found", ErrProductNotFound},
		{"empty cart", ErrEmptyCart},
		{"invalid quantity", ErrInvalidQuantity},
		{"item not in cart", ErrItemNotInCart},
		{"invalid checkout", ErrInvalidCheckout},
		{"invalid contact", ErrInvalidContact},
		{"invalid transition", ErrInvalidStatusTransition},
		{"unknown status", ErrUnknownStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("op: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match: %v", tc.err)
			}
		})
	}
}

func TestUserFacingMessages(t *testing.T) {
	if ErrEmptyCart.Error() != "Cart is empty" {
		t.Fatalf("unexpected empty cart message %q", ErrEmptyCart.Error())
	}
	if ErrProductNotFound.Error() != "product not found" {
		t.Fatalf("unexpected product message %q", ErrProductNotFound.Error())
	}
}
