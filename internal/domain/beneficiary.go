// internal/domain/beneficiary.go
package domain

import "time"

// Beneficiary is a saved payout destination owned by a user. Trades and fills
// carry a snapshot of these fields rather than a live reference, so deleting a
// beneficiary never invalidates settled records.
type Beneficiary struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	Name          string    `db:"name" json:"name"`
	AccountNumber string    `db:"account_number" json:"account_number"`
	BankName      string    `db:"bank_name" json:"bank_name"`
	Currency      string    `db:"currency" json:"currency"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
