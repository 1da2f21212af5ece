// internal/api/handler/wallet.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"peertrade/internal/api/middleware"
	"peertrade/internal/service"
	"peertrade/internal/util"
)

// WalletHandler handles HTTP requests related to wallet operations.
type WalletHandler struct {
	service service.WalletService
	logger  *slog.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(svc service.WalletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{
		service: svc,
		logger:  logger,
	}
}

// FundWalletRequest represents the request body for funding a wallet.
type FundWalletRequest struct {
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Currency string          `json:"currency" validate:"required"`
}

// Fund handles the fund wallet request.
// POST /wallet/fund
func (h *WalletHandler) Fund(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	var req FundWalletRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	wallet, err := h.service.Credit(r.Context(), userID, req.Currency, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":     "Wallet funded successfully",
		"wallet_id":   wallet.ID,
		"currency":    wallet.CurrencyCode,
		"new_balance": wallet.EscrowBalance,
	})
}

// GetWallets handles the list own wallets request. Wallets for the default
// currencies are created on first read.
// GET /wallet/get-wallets
func (h *WalletHandler) GetWallets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	wallets, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"wallets": wallets})
}

// DeleteAllForUser handles the administrative wallet purge request.
// DELETE /wallet/delete-all/user/{userID}
func (h *WalletHandler) DeleteAllForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	deleted, err := h.service.DeleteAllForUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Wallets deleted",
		"deleted": deleted,
	})
}
