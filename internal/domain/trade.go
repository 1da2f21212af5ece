// internal/domain/trade.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodWallet marks an operation funded from the caller's wallet
// balance rather than an external payment provider.
const PaymentMethodWallet = "Wallet"

// TradeState is the derived lifecycle state of a trade. It is computed from
// the sold/available quantities and never stored; the free-text Status column
// is reserved for values set by downstream consumers.
type TradeState string

const (
	TradeStateOpen            TradeState = "OPEN"
	TradeStatePartiallyFilled TradeState = "PARTIALLY_FILLED"
	TradeStateFullyFilled     TradeState = "FULLY_FILLED"
)

// Trade is a standing sell-offer for a currency amount at a fixed rate.
//
// Invariant: 0 <= sold <= amount and available_amount = amount - sold at all
// times. Once available_amount reaches zero the trade is fully consumed and no
// further fills are permitted.
type Trade struct {
	ID                 int64           `db:"id" json:"id"`
	TradeID            string          `db:"trade_id" json:"trade_id"` // Short generated identifier, unique, immutable
	UserID             int64           `db:"user_id" json:"user_id"`
	Currency           string          `db:"currency" json:"currency"`           // Currency being sold
	ExitCurrency       string          `db:"exit_currency" json:"exit_currency"` // Currency the seller is paid in
	Rate               decimal.Decimal `db:"rate" json:"rate"`                   // Exit-currency units per base unit
	Amount             decimal.Decimal `db:"amount" json:"amount"`               // Original offered quantity
	Sold               decimal.Decimal `db:"sold" json:"sold"`                   // Cumulative quantity filled
	AvailableAmount    decimal.Decimal `db:"available_amount" json:"available_amount"`
	Price              decimal.Decimal `db:"price" json:"price"` // amount * rate, rounded to integer minor units
	MinimumBid         string          `db:"minimum_bid" json:"minimum_bid"`
	PaymentMethod      string          `db:"payment_method" json:"payment_method"`
	TransactionFee     decimal.Decimal `db:"transaction_fee" json:"transaction_fee"`
	VatFee             decimal.Decimal `db:"vat_fee" json:"vat_fee"`
	BeneficiaryName    string          `db:"beneficiary_name" json:"beneficiary_name"`
	BeneficiaryAccount string          `db:"beneficiary_account" json:"beneficiary_account"`
	BeneficiaryBank    string          `db:"beneficiary_bank" json:"beneficiary_bank"`
	BankName           string          `db:"bank_name" json:"bank_name,omitempty"`
	AccountName        string          `db:"account_name" json:"account_name,omitempty"`
	AccountNumber      string          `db:"account_number" json:"account_number,omitempty"`
	AdditionalInfo     string          `db:"additional_information" json:"additional_information,omitempty"`
	Status             string          `db:"status" json:"status"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
}

// State derives the trade lifecycle state from the fill quantities.
func (t *Trade) State() TradeState {
	switch {
	case t.AvailableAmount.IsZero():
		return TradeStateFullyFilled
	case t.Sold.IsPositive():
		return TradeStatePartiallyFilled
	default:
		return TradeStateOpen
	}
}

// BuyTrade is an immutable fill record against a Trade. It is created exactly
// once per successful buy operation and never mutated afterwards.
type BuyTrade struct {
	ID                 int64           `db:"id" json:"id"`
	TransactionID      string          `db:"transaction_id" json:"transaction_id"` // Parent trade's trade_id
	UserID             int64           `db:"user_id" json:"user_id"`               // Buyer
	Purchase           decimal.Decimal `db:"purchase" json:"purchase"`             // Quantity filled in this fill
	Price              decimal.Decimal `db:"price" json:"price"`                   // purchase * trade rate, rounded
	BeneficiaryName    string          `db:"beneficiary_name" json:"beneficiary_name"`
	BeneficiaryAccount string          `db:"beneficiary_account" json:"beneficiary_account"`
	BeneficiaryBank    string          `db:"beneficiary_bank" json:"beneficiary_bank"`
	PaymentMethod      string          `db:"payment_method" json:"payment_method"`
	Status             string          `db:"status" json:"status"`
	PurchaseCurrency   string          `db:"purchase_currency" json:"purchase_currency"`
	PaidCurrency       string          `db:"paid_currency" json:"paid_currency"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}
