// internal/api/handler/payments.go
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"peertrade/internal/gateway"
	"peertrade/internal/util"
)

// CardGateway is the card processor surface the payments handler needs.
type CardGateway interface {
	InitializeCharge(ctx context.Context, amountMinor int64, email string) (*gateway.ChargeAuthorization, error)
	VerifyCharge(ctx context.Context, reference string) (*gateway.ChargeStatus, error)
}

// BankingGateway is the open banking surface the payments handler needs.
type BankingGateway interface {
	InitiatePayment(ctx context.Context, req gateway.PaymentRequest) (*gateway.PaymentResult, error)
	InitiateWithdrawal(ctx context.Context, req gateway.WithdrawalRequest) (*gateway.WithdrawalResult, error)
}

// LedgerGateway is the asset ledger surface the payments handler needs.
type LedgerGateway interface {
	SubmitTransfer(ctx context.Context, source, destination string, amount decimal.Decimal) (*gateway.TransferReceipt, error)
}

// LinkGateway is the account aggregation surface the payments handler needs.
type LinkGateway interface {
	ExchangeToken(ctx context.Context, code string) (string, error)
	GetAccount(ctx context.Context, id string) (*gateway.LinkedAccount, error)
}

// PaymentsHandler handles HTTP requests that proxy to the external payment
// and banking providers.
type PaymentsHandler struct {
	cards   CardGateway
	banking BankingGateway
	ledger  LedgerGateway
	links   LinkGateway
	logger  *slog.Logger
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(cards CardGateway, banking BankingGateway, ledger LedgerGateway, links LinkGateway, logger *slog.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		cards:   cards,
		banking: banking,
		ledger:  ledger,
		links:   links,
		logger:  logger,
	}
}

// InitializeChargeRequest represents the request body for starting a card
// charge.
type InitializeChargeRequest struct {
	AmountMinor int64  `json:"amount" validate:"required,gt=0"`
	Email       string `json:"email" validate:"required,email"`
}

// InitializeCharge handles the card charge initialization request.
// POST /payments/card/initialize
func (h *PaymentsHandler) InitializeCharge(w http.ResponseWriter, r *http.Request) {
	var req InitializeChargeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	auth, err := h.cards.InitializeCharge(r.Context(), req.AmountMinor, req.Email)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":       "Charge initialized",
		"authorization": auth,
	})
}

// VerifyCharge handles the card charge verification request.
// GET /payments/card/verify/{reference}
func (h *PaymentsHandler) VerifyCharge(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	status, err := h.cards.VerifyCharge(r.Context(), reference)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"charge": status})
}

// OpenBankingPaymentRequest represents the request body for a bank pay-in.
type OpenBankingPaymentRequest struct {
	Currency    string `json:"currency" validate:"required"`
	AmountMinor int64  `json:"amount" validate:"required,gt=0"`
	Reference   string `json:"reference" validate:"required"`
	UserEmail   string `json:"user_email" validate:"required,email"`
	UserName    string `json:"user_name" validate:"required"`
}

// InitiatePayment handles the open banking pay-in request.
// POST /payments/open-banking/payment
func (h *PaymentsHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req OpenBankingPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	result, err := h.banking.InitiatePayment(r.Context(), gateway.PaymentRequest{
		Currency:    req.Currency,
		AmountMinor: req.AmountMinor,
		Reference:   req.Reference,
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Payment initiated",
		"payment": result,
	})
}

// OpenBankingWithdrawalRequest represents the request body for a bank payout.
type OpenBankingWithdrawalRequest struct {
	BeneficiaryName string `json:"beneficiary_name" validate:"required"`
	AccountNumber   string `json:"account_number" validate:"required"`
	BankName        string `json:"bank_name" validate:"required"`
	Address         string `json:"address"`
	Currency        string `json:"currency" validate:"required"`
	AmountMinor     int64  `json:"amount" validate:"required,gt=0"`
	Reference       string `json:"reference" validate:"required"`
	DateOfBirth     string `json:"date_of_birth"`
}

// InitiateWithdrawal handles the open banking payout request.
// POST /payments/open-banking/withdrawal
func (h *PaymentsHandler) InitiateWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req OpenBankingWithdrawalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	result, err := h.banking.InitiateWithdrawal(r.Context(), gateway.WithdrawalRequest{
		BeneficiaryName: req.BeneficiaryName,
		AccountNumber:   req.AccountNumber,
		BankName:        req.BankName,
		Address:         req.Address,
		Currency:        req.Currency,
		AmountMinor:     req.AmountMinor,
		Reference:       req.Reference,
		DateOfBirth:     req.DateOfBirth,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":    "Withdrawal initiated",
		"withdrawal": result,
	})
}

// AssetTransferRequest represents the request body for an asset ledger
// transfer.
type AssetTransferRequest struct {
	Source      string          `json:"source" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

// SubmitTransfer handles the asset ledger transfer request.
// POST /payments/asset/transfer
func (h *PaymentsHandler) SubmitTransfer(w http.ResponseWriter, r *http.Request) {
	var req AssetTransferRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if !req.Amount.IsPositive() {
		respondWithError(w, h.logger, util.ErrInvalidAmount)
		return
	}

	receipt, err := h.ledger.SubmitTransfer(r.Context(), req.Source, req.Destination, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Transfer submitted",
		"receipt": receipt,
	})
}

// ExchangeTokenRequest represents the request body for linking a bank
// account.
type ExchangeTokenRequest struct {
	Code string `json:"code" validate:"required"`
}

// ExchangeToken handles the account linking request.
// POST /banking/exchange-token
func (h *PaymentsHandler) ExchangeToken(w http.ResponseWriter, r *http.Request) {
	var req ExchangeTokenRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	accountID, err := h.links.ExchangeToken(r.Context(), req.Code)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{
		"message":    "Account linked",
		"account_id": accountID,
	})
}

// GetAccount handles the linked account lookup request.
// GET /banking/account/{id}
func (h *PaymentsHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	account, err := h.links.GetAccount(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"account": account})
}
