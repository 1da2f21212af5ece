// internal/api/handler/trade.go
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

// TradeHandler handles HTTP requests for sell-offers, fills and
// beneficiaries.
type TradeHandler struct {
	service service.TradeService
	logger  *slog.Logger
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(svc service.TradeService, logger *slog.Logger) *TradeHandler {
	return &TradeHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateTradeRequest represents the request body for creating a trade.
type CreateTradeRequest struct {
	Currency           string          `json:"currency" validate:"required"`
	ExitCurrency       string          `json:"exit_currency" validate:"required"`
	Rate               decimal.Decimal `json:"rate" validate:"required"`
	Amount             decimal.Decimal `json:"amount" validate:"required"`
	MinimumBid         string          `json:"minimum_bid"`
	PaymentMethod      string          `json:"payment_method" validate:"required"`
	TransactionFee     decimal.Decimal `json:"transaction_fee"`
	VatFee             decimal.Decimal `json:"vat_fee"`
	BeneficiaryName    string          `json:"beneficiary_name"`
	BeneficiaryAccount string          `json:"beneficiary_account"`
	BeneficiaryBank    string          `json:"beneficiary_bank"`
	BankName           string          `json:"bank_name"`
	AccountName        string          `json:"account_name"`
	AccountNumber      string          `json:"account_number"`
	AdditionalInfo     string          `json:"additional_information"`
}

// CreateTrade handles the create trade request.
// POST /trade/create-trade
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	var req CreateTradeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	trade, err := h.service.CreateTrade(r.Context(), userID, service.CreateTradeInput{
		Currency:           req.Currency,
		ExitCurrency:       req.ExitCurrency,
		Rate:               req.Rate,
		Amount:             req.Amount,
		MinimumBid:         req.MinimumBid,
		PaymentMethod:      req.PaymentMethod,
		TransactionFee:     req.TransactionFee,
		VatFee:             req.VatFee,
		BeneficiaryName:    req.BeneficiaryName,
		BeneficiaryAccount: req.BeneficiaryAccount,
		BeneficiaryBank:    req.BeneficiaryBank,
		BankName:           req.BankName,
		AccountName:        req.AccountName,
		AccountNumber:      req.AccountNumber,
		AdditionalInfo:     req.AdditionalInfo,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"message": "Trade created successfully",
		"trade":   trade,
	})
}

// BuyTradeRequest represents the request body for filling a trade.
type BuyTradeRequest struct {
	TradeID            string          `json:"trade_id" validate:"required"`
	Purchase           decimal.Decimal `json:"purchase" validate:"required"`
	PaymentMethod      string          `json:"payment_method" validate:"required"`
	BeneficiaryName    string          `json:"beneficiary_name"`
	BeneficiaryAccount string          `json:"beneficiary_account"`
	BeneficiaryBank    string          `json:"beneficiary_bank"`
}

// BuyTrade handles the buy trade request.
// POST /trade/buy-trade
func (h *TradeHandler) BuyTrade(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	var req BuyTradeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	trade, err := h.service.BuyTrade(r.Context(), userID, service.BuyTradeInput{
		TradeID:            req.TradeID,
		Purchase:           req.Purchase,
		PaymentMethod:      req.PaymentMethod,
		BeneficiaryName:    req.BeneficiaryName,
		BeneficiaryAccount: req.BeneficiaryAccount,
		BeneficiaryBank:    req.BeneficiaryBank,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Trade purchased successfully",
		"trade":   trade,
	})
}

// GetAllTrades handles the list all trades request.
// GET /trade/get-all-trades
func (h *TradeHandler) GetAllTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.service.FindAll(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"trades": trades})
}

// GetMyTrades handles the list own trades request.
// GET /trade/get-mine
func (h *TradeHandler) GetMyTrades(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}
	trades, err := h.service.FindByUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"trades": trades})
}

// GetAllExceptMine handles the marketplace listing request, excluding the
// caller's own trades.
// GET /trade/get-all-except-mine
func (h *TradeHandler) GetAllExceptMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}
	trades, err := h.service.FindAllExceptUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"trades": trades})
}

// GetTrade handles the fetch-single-trade request.
// GET /trade/get-trade/{tradeID}
func (h *TradeHandler) GetTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "tradeID")
	trade, err := h.service.FindByTradeID(r.Context(), tradeID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"trade": trade})
}

// GetBoughtTrades handles the list all fills request.
// GET /trade/bought-trades
func (h *TradeHandler) GetBoughtTrades(w http.ResponseWriter, r *http.Request) {
	fills, err := h.service.AllFills(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"bought_trades": fills})
}

// GetBoughtTrade handles the fetch-single-fill request.
// GET /trade/bought-trade/{id}
func (h *TradeHandler) GetBoughtTrade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	fill, err := h.service.FillByID(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"bought_trade": fill})
}

// GetMyBoughtTrades handles the list own fills request.
// GET /trade/my-bought-trades
func (h *TradeHandler) GetMyBoughtTrades(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}
	fills, err := h.service.FillsByBuyer(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"bought_trades": fills})
}

// DeleteTrade handles the delete-single-trade request.
// DELETE /trade/delete-a-trade/{tradeID}
func (h *TradeHandler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "tradeID")
	if err := h.service.DeleteByTradeID(r.Context(), tradeID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Trade deleted successfully"})
}

// DeleteAllTrades handles the administrative delete-everything request.
// DELETE /trade/delete-all-trades
func (h *TradeHandler) DeleteAllTrades(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteAll(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "All trades deleted",
		"deleted": deleted,
	})
}

// DeleteMyTrades handles the delete-by-user request.
// DELETE /trade/delete-my-trades/user/{userID}
func (h *TradeHandler) DeleteMyTrades(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	deleted, err := h.service.DeleteByUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Trades deleted",
		"deleted": deleted,
	})
}

// CreateBeneficiaryRequest represents the request body for saving a payout
// destination.
type CreateBeneficiaryRequest struct {
	Name          string `json:"name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	BankName      string `json:"bank_name" validate:"required"`
	Currency      string `json:"currency" validate:"required"`
}

// CreateBeneficiary handles the create beneficiary request.
// POST /trade/create-beneficiary
func (h *TradeHandler) CreateBeneficiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	var req CreateBeneficiaryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	beneficiary, err := h.service.CreateBeneficiary(r.Context(), userID, service.CreateBeneficiaryInput{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		Currency:      req.Currency,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"message":     "Beneficiary created successfully",
		"beneficiary": beneficiary,
	})
}

// GetUserBeneficiaries handles the list own beneficiaries request.
// GET /trade/get-user-beneficiaries
func (h *TradeHandler) GetUserBeneficiaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}
	beneficiaries, err := h.service.BeneficiariesByUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"beneficiaries": beneficiaries})
}

// DeleteBeneficiary handles the delete-single-beneficiary request. Only the
// owner can delete.
// DELETE /trade/delete-beneficiary/{id}
func (h *TradeHandler) DeleteBeneficiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if err := h.service.DeleteBeneficiary(r.Context(), id, userID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Beneficiary deleted successfully"})
}

// DeleteAllBeneficiaries handles the delete-own-beneficiaries request.
// DELETE /trade/delete-all-beneficiaries
func (h *TradeHandler) DeleteAllBeneficiaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}
	deleted, err := h.service.DeleteAllBeneficiaries(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Beneficiaries deleted",
		"deleted": deleted,
	})
}
