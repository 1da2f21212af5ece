// internal/repository/user_repo.go
package repository

import (
	"context"

	"peertrade/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create adds a new user. A duplicate email surfaces as
	// util.ErrDuplicateEntry.
	Create(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetByID retrieves a user by their ID.
	GetByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
}
