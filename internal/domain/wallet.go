// internal/domain/wallet.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a per-user, per-currency balance. At most one wallet exists per
// (user, currency_code) pair; EscrowBalance is the single authoritative
// balance field debited and credited by settlement flows.
//
// Invariant: escrow_balance >= 0 at all times. A debit that would make it
// negative must fail the whole enclosing operation.
type Wallet struct {
	ID            int64           `db:"id" json:"id"`
	UserID        int64           `db:"user_id" json:"user_id"`
	CurrencyCode  string          `db:"currency_code" json:"currency_code"`
	EscrowBalance decimal.Decimal `db:"escrow_balance" json:"escrow_balance"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// NewWallet creates a zero-balance wallet for the given user and currency.
func NewWallet(userID int64, currencyCode string) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		UserID:        userID,
		CurrencyCode:  currencyCode,
		EscrowBalance: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
