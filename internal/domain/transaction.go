// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types recorded in the audit ledger.
const (
	TransactionTypeTrade    = "Trade"
	TransactionTypeBuyTrade = "Buy Trade"
	TransactionTypeDeposit  = "Deposit"
)

// Transaction statuses.
const (
	TransactionStatusCompleted = "Completed"
	TransactionStatusPending   = "Pending"
)

// UserTransaction is an append-only, human-readable audit row describing a
// settlement-affecting event. Rows are descriptive, not authoritative:
// Trade/Wallet state remains the source of truth for balances.
type UserTransaction struct {
	ID                 int64           `db:"id" json:"id"`
	UserTransactionID  string          `db:"user_transaction_id" json:"user_transaction_id"`
	UserID             int64           `db:"user_id" json:"user_id"`
	Date               time.Time       `db:"date" json:"date"`
	TransactionType    string          `db:"transaction_type" json:"transaction_type"`
	Currency           string          `db:"currency" json:"currency"`
	TransactionFee     decimal.Decimal `db:"transaction_fee" json:"transaction_fee"`
	Status             string          `db:"status" json:"status"`
	PaymentMethod      string          `db:"payment_method" json:"payment_method"`
	BankName           string          `db:"bank_name" json:"bank_name,omitempty"`
	AccountName        string          `db:"account_name" json:"account_name,omitempty"`
	BeneficiaryName    string          `db:"beneficiary_name" json:"beneficiary_name,omitempty"`
	BeneficiaryAccount string          `db:"beneficiary_account" json:"beneficiary_account,omitempty"`
	BeneficiaryBank    string          `db:"beneficiary_bank" json:"beneficiary_bank,omitempty"`
	AvailableAmount    decimal.Decimal `db:"available_amount" json:"available_amount"`
	AmountSold         decimal.Decimal `db:"amount_sold" json:"amount_sold"`
	AmountExchanged    decimal.Decimal `db:"amount_exchanged" json:"amount_exchanged"`
	AmountDeposited    decimal.Decimal `db:"amount_deposited" json:"amount_deposited"`
	AmountReceived     decimal.Decimal `db:"amount_received" json:"amount_received"`
	AmountReversed     decimal.Decimal `db:"amount_reversed" json:"amount_reversed"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`

	// FormattedDate is a presentation-only rendering of Date, populated at
	// the read boundary and never stored.
	FormattedDate string `db:"-" json:"formatted_date,omitempty"`
}

// FormatDate renders the row's timestamp as the locale display string used by
// list and detail reads ("01/02/2006 03:04 PM").
func (t *UserTransaction) FormatDate() {
	t.FormattedDate = t.Date.Format("01/02/2006 03:04 PM")
}
