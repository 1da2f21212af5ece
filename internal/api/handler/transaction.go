// internal/api/handler/transaction.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"peertrade/internal/api/middleware"
	"peertrade/internal/api/types"
	"peertrade/internal/domain"
	"peertrade/internal/service"
	"peertrade/internal/util"
)

// TransactionHandler handles HTTP requests for the audit ledger.
type TransactionHandler struct {
	service service.UserTransactionService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc service.UserTransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles the paginated transaction history request.
// GET /transactions?limit=&offset=
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	rows, total, err := h.service.List(r.Context(), userID, limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.PaginatedResponse[domain.UserTransaction]{
		Data:       rows,
		Limit:      limit,
		Offset:     offset,
		TotalCount: total,
	})
}

// Get handles the fetch-single-transaction request.
// GET /transactions/{id}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	row, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"transaction": row})
}

// UpdateTransactionRequest represents the request body for updating an audit
// row. Absent fields are left unchanged.
type UpdateTransactionRequest struct {
	Status        *string `json:"status"`
	PaymentMethod *string `json:"payment_method"`
	BankName      *string `json:"bank_name"`
	AccountName   *string `json:"account_name"`
}

// Update handles the administrative update request.
// PUT /transactions/{id}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	var req UpdateTransactionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	row, err := h.service.Update(r.Context(), id, service.UpdateTransactionInput{
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":     "Transaction updated successfully",
		"transaction": row,
	})
}

// Delete handles the delete-single-transaction request.
// DELETE /transactions/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

// DeleteAll handles the purge-own-history request.
// DELETE /transactions/delete-all
func (h *TransactionHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	deleted, err := h.service.DeleteAllForUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Transactions deleted",
		"deleted": deleted,
	})
}
