// internal/repository/postgres/notification_pg.go
package postgres

import (
	"context"
	"fmt"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
)

// NotificationRepository implements repository.NotificationRepository for PostgreSQL.
type NotificationRepository struct{}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository() repository.NotificationRepository {
	return &NotificationRepository{}
}

// Create inserts a new notification using the provided DBExecutor.
func (r *NotificationRepository) Create(ctx context.Context, q repository.DBExecutor, notification *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, message, type, read, created_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		notification.UserID,
		notification.Message,
		notification.Type,
		notification.Read,
		notification.CreatedAt,
	).Scan(&notification.ID)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's notifications, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	query := `SELECT id, user_id, message, type, read, created_at
              FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}

// MarkAllRead marks every notification for a user as read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, q repository.DBExecutor, userID int64) error {
	if _, err := q.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read for user %d: %w", userID, err)
	}
	return nil
}
