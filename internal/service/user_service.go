// internal/service/user_service.go
package service

import (
	"context"
	"strings"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
	"peertrade/internal/util"
)

// UserService exposes the minimal account operations the settlement backend
// owns. Authentication happens upstream; this service only keeps the account
// records the ledgers reference.
type UserService interface {
	// Register creates an account. A duplicate email surfaces as
	// ErrDuplicateEntry.
	Register(ctx context.Context, email, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
	}
}

func (s *userService) Register(ctx context.Context, email, username string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if email == "" || username == "" {
		return nil, util.ErrInvalidInput
	}

	user := domain.NewUser(email, username)
	if err := s.userRepo.Create(ctx, s.dbExecutor, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, s.dbExecutor, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
