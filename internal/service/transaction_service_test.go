// internal/service/transaction_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"peertrade/internal/domain"
	"peertrade/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransactionList(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)

	repo := new(MockUserTransactionRepository)
	executor := new(MockDBExecutor)
	svc := NewUserTransactionService(executor, repo)

	date := time.Date(2025, 3, 14, 15, 4, 0, 0, time.UTC)
	rows := []domain.UserTransaction{
		{ID: 1, UserID: userID, Date: date, TransactionType: domain.TransactionTypeTrade},
	}
	repo.On("ListByUser", ctx, executor, userID, 10, 0).Return(rows, int64(25), nil).Once()

	got, total, err := svc.List(ctx, userID, 10, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, got, 1)
	// Display date is rendered at the read boundary.
	assert.Equal(t, "03/14/2025 03:04 PM", got[0].FormattedDate)
	mock.AssertExpectationsForObjects(t, repo)
}

func TestTransactionUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlyProvidedFieldsChange", func(t *testing.T) {
		repo := new(MockUserTransactionRepository)
		executor := new(MockDBExecutor)
		svc := NewUserTransactionService(executor, repo)

		stored := &domain.UserTransaction{
			ID:            5,
			Status:        domain.TransactionStatusPending,
			PaymentMethod: "Bank Transfer",
			BankName:      "First Bank",
		}
		repo.On("GetByID", ctx, executor, int64(5)).Return(stored, nil).Once()
		repo.On("Update", ctx, executor, mock.MatchedBy(func(row *domain.UserTransaction) bool {
			return row.Status == domain.TransactionStatusCompleted &&
				row.PaymentMethod == "Bank Transfer" &&
				row.BankName == "First Bank"
		})).Return(nil).Once()

		status := domain.TransactionStatusCompleted
		row, err := svc.Update(ctx, 5, UpdateTransactionInput{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusCompleted, row.Status)
		mock.AssertExpectationsForObjects(t, repo)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockUserTransactionRepository)
		executor := new(MockDBExecutor)
		svc := NewUserTransactionService(executor, repo)

		repo.On("GetByID", ctx, executor, int64(99)).Return(nil, util.ErrNotFound).Once()

		row, err := svc.Update(ctx, 99, UpdateTransactionInput{})

		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.Nil(t, row)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTransactionDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingRowIsNotFound", func(t *testing.T) {
		repo := new(MockUserTransactionRepository)
		executor := new(MockDBExecutor)
		svc := NewUserTransactionService(executor, repo)

		repo.On("Delete", ctx, executor, int64(3)).Return(false, nil).Once()

		err := svc.Delete(ctx, 3)
		assert.ErrorIs(t, err, util.ErrNotFound)
	})

	t.Run("Deleted", func(t *testing.T) {
		repo := new(MockUserTransactionRepository)
		executor := new(MockDBExecutor)
		svc := NewUserTransactionService(executor, repo)

		repo.On("Delete", ctx, executor, int64(3)).Return(true, nil).Once()

		assert.NoError(t, svc.Delete(ctx, 3))
	})
}
