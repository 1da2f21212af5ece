// internal/api/handler/notification.go
package handler

import (
	"log/slog"
	"net/http"

	"peertrade/internal/api/middleware"
	"peertrade/internal/service"
	"peertrade/internal/util"
)

// NotificationHandler handles HTTP requests for the user message feed.
type NotificationHandler struct {
	service service.NotificationService
	logger  *slog.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc service.NotificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles the list own notifications request.
// GET /notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	notifications, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

// MarkAllRead handles the mark-all-read request.
// POST /notifications/mark-all-read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUnauthorized)
		return
	}

	if err := h.service.MarkAllRead(r.Context(), userID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Notifications marked as read"})
}
