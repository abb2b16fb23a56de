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
		{"invalid credentials", ErrInvalidCredentials},
		{"forbidden", ErrForbidden},
		{"property unavailable", ErrPropertyUnavailable},
		{"wallet inactive", ErrWalletInactive},
		{"insufficient funds", ErrInsufficientFunds},
		{"insufficient loyalty points", ErrInsufficientLoyaltyPoints},
		{"invalid amount", ErrInvalidAmount},
		{"invalid rating", ErrInvalidRating},
		{"invalid transaction type", ErrInvalidTransactionType},
		{"invalid order status", ErrInvalidOrderStatus},
		{"invalid sort field", ErrInvalidSortField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match sentinel: %v", wrapped)
			}
		})
	}
}
