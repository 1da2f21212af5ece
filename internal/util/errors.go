// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidInput           = errors.New("invalid input provided")
	ErrInvalidAmount          = errors.New("amount must be a positive number")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrWalletNotFound         = errors.New("wallet not found")
	ErrAmountExceedsAvailable = errors.New("purchase exceeds available trade amount")
	ErrUserNotFound           = errors.New("user not found")
	ErrDuplicateEntry         = errors.New("duplicate entry")
	ErrSettlementFailed       = errors.New("settlement failed")
	ErrExternalService        = errors.New("external service error")
	ErrUnauthorized           = errors.New("unauthorized")
)

// IsError reports whether err matches the given sentinel anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
