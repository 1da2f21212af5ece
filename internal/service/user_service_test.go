// internal/service/user_service_test.go
package service

import (
	"context"
	"testing"

	"peertrade/internal/domain"
	"peertrade/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizesEmail", func(t *testing.T) {
		repo := new(MockUserRepository)
		executor := new(MockDBExecutor)
		svc := NewUserService(executor, repo)

		repo.On("Create", ctx, executor, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "alice@example.com" && u.Username == "alice"
		})).Return(nil).Once()

		user, err := svc.Register(ctx, "  Alice@Example.COM ", " alice ")

		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		mock.AssertExpectationsForObjects(t, repo)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockUserRepository)
		executor := new(MockDBExecutor)
		svc := NewUserService(executor, repo)

		repo.On("Create", ctx, executor, mock.AnythingOfType("*domain.User")).
			Return(util.ErrDuplicateEntry).Once()

		user, err := svc.Register(ctx, "alice@example.com", "alice")

		assert.ErrorIs(t, err, util.ErrDuplicateEntry)
		assert.Nil(t, user)
	})

	t.Run("BlankFieldsRejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		executor := new(MockDBExecutor)
		svc := NewUserService(executor, repo)

		_, err := svc.Register(ctx, "   ", "alice")
		assert.ErrorIs(t, err, util.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserGetByID(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepository)
	executor := new(MockDBExecutor)
	svc := NewUserService(executor, repo)

	repo.On("GetByID", ctx, executor, int64(404)).Return(nil, util.ErrNotFound).Once()

	user, err := svc.GetByID(ctx, 404)

	assert.ErrorIs(t, err, util.ErrUserNotFound)
	assert.Nil(t, user)
}
