package errors

import "errors"

var (
	ErrAlreadyExists             = errors.New("already exists")
	ErrNotFound                  = errors.New("not found")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrForbidden                 = errors.New("forbidden")
	ErrPropertyUnavailable       = errors.New("property unavailable")
	ErrWalletInactive            = errors.New("wallet inactive")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrInsufficientLoyaltyPoints = errors.New("insufficient loyalty points")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrInvalidRating             = errors.New("invalid rating")
	ErrInvalidTransactionType    = errors.New("invalid transaction type")
	ErrInvalidOrderStatus        = errors.New("invalid order status")
	ErrInvalidSortField          = errors.New("invalid sort field")
)
