// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"peertrade/internal/domain"
)

// UserTransactionRepository defines the interface for audit-ledger rows.
// Create is the only call used by the settlement flows; update and delete
// exist solely for the administrative endpoints.
type UserTransactionRepository interface {
	Create(ctx context.Context, q DBExecutor, row *domain.UserTransaction) error
	GetByID(ctx context.Context, q DBExecutor, id int64) (*domain.UserTransaction, error)
	// ListByUser retrieves a page of rows for a user, newest first, together
	// with the total row count for that user.
	ListByUser(ctx context.Context, q DBExecutor, userID int64, limit, offset int) ([]domain.UserTransaction, int64, error)
	Update(ctx context.Context, q DBExecutor, row *domain.UserTransaction) error
	Delete(ctx context.Context, q DBExecutor, id int64) (bool, error)
	DeleteAllForUser(ctx context.Context, q DBExecutor, userID int64) (int64, error)
}

// NotificationRepository defines the interface for user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, q DBExecutor, notification *domain.Notification) error
	ListByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, q DBExecutor, userID int64) error
}
