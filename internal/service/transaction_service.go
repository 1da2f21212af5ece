// internal/service/transaction_service.go
package service

import (
	"context"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
	"peertrade/internal/util"
)

// UpdateTransactionInput carries the mutable fields of an audit row. Nil
// pointers leave the stored value untouched.
type UpdateTransactionInput struct {
	Status        *string
	PaymentMethod *string
	BankName      *string
	AccountName   *string
}

// UserTransactionService exposes the append-mostly audit ledger. Rows are
// written by the settlement flows; this service covers user-facing reads and
// the few administrative mutations.
type UserTransactionService interface {
	List(ctx context.Context, userID int64, limit, offset int) ([]domain.UserTransaction, int64, error)
	Get(ctx context.Context, id int64) (*domain.UserTransaction, error)
	Update(ctx context.Context, id int64, in UpdateTransactionInput) (*domain.UserTransaction, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}

type userTransactionService struct {
	dbExecutor      repository.DBExecutor
	transactionRepo repository.UserTransactionRepository
}

// NewUserTransactionService creates a new instance of UserTransactionService.
func NewUserTransactionService(dbExecutor repository.DBExecutor, transactionRepo repository.UserTransactionRepository) UserTransactionService {
	return &userTransactionService{
		dbExecutor:      dbExecutor,
		transactionRepo: transactionRepo,
	}
}

func (s *userTransactionService) List(ctx context.Context, userID int64, limit, offset int) ([]domain.UserTransaction, int64, error) {
	rows, total, err := s.transactionRepo.ListByUser(ctx, s.dbExecutor, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].FormatDate()
	}
	return rows, total, nil
}

func (s *userTransactionService) Get(ctx context.Context, id int64) (*domain.UserTransaction, error) {
	row, err := s.transactionRepo.GetByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, err
	}
	row.FormatDate()
	return row, nil
}

func (s *userTransactionService) Update(ctx context.Context, id int64, in UpdateTransactionInput) (*domain.UserTransaction, error) {
	row, err := s.transactionRepo.GetByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		row.Status = *in.Status
	}
	if in.PaymentMethod != nil {
		row.PaymentMethod = *in.PaymentMethod
	}
	if in.BankName != nil {
		row.BankName = *in.BankName
	}
	if in.AccountName != nil {
		row.AccountName = *in.AccountName
	}
	if err := s.transactionRepo.Update(ctx, s.dbExecutor, row); err != nil {
		return nil, err
	}
	row.FormatDate()
	return row, nil
}

func (s *userTransactionService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.transactionRepo.Delete(ctx, s.dbExecutor, id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrNotFound
	}
	return nil
}

func (s *userTransactionService) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	return s.transactionRepo.DeleteAllForUser(ctx, s.dbExecutor, userID)
}
