// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
	"peertrade/internal/util"
)

const userTransactionColumns = `id, user_transaction_id, user_id, date, transaction_type,
    currency, transaction_fee, status, payment_method, bank_name, account_name,
    beneficiary_name, beneficiary_account, beneficiary_bank, available_amount, amount_sold,
    amount_exchanged, amount_deposited, amount_received, amount_reversed, created_at`

// UserTransactionRepository implements repository.UserTransactionRepository for PostgreSQL.
type UserTransactionRepository struct{}

// NewUserTransactionRepository creates a new UserTransactionRepository.
func NewUserTransactionRepository() repository.UserTransactionRepository {
	return &UserTransactionRepository{}
}

// Create appends a new audit row using the provided DBExecutor. The caller is
// responsible for running this inside the same transaction as the state
// mutation the row describes.
func (r *UserTransactionRepository) Create(ctx context.Context, q repository.DBExecutor, row *domain.UserTransaction) error {
	query := `INSERT INTO user_transactions (user_transaction_id, user_id, date, transaction_type,
                  currency, transaction_fee, status, payment_method, bank_name, account_name,
                  beneficiary_name, beneficiary_account, beneficiary_bank, available_amount,
                  amount_sold, amount_exchanged, amount_deposited, amount_received,
                  amount_reversed, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
                  $18, $19, $20)
              RETURNING id`
	err := q.QueryRowContext(ctx, query,
		row.UserTransactionID,
		row.UserID,
		row.Date,
		row.TransactionType,
		row.Currency,
		row.TransactionFee,
		row.Status,
		row.PaymentMethod,
		row.BankName,
		row.AccountName,
		row.BeneficiaryName,
		row.BeneficiaryAccount,
		row.BeneficiaryBank,
		row.AvailableAmount,
		row.AmountSold,
		row.AmountExchanged,
		row.AmountDeposited,
		row.AmountReceived,
		row.AmountReversed,
		row.CreatedAt,
	).Scan(&row.ID)
	if err != nil {
		return fmt.Errorf("failed to create audit row: %w", err)
	}
	return nil
}

// GetByID retrieves a single audit row.
func (r *UserTransactionRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.UserTransaction, error) {
	var row domain.UserTransaction
	query := `SELECT ` + userTransactionColumns + ` FROM user_transactions WHERE id = $1`
	err := q.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get audit row %d: %w", id, err)
	}
	return &row, nil
}

// ListByUser retrieves a page of audit rows for a user, newest first, plus the
// total row count for that user.
func (r *UserTransactionRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.UserTransaction, int64, error) {
	rows := []domain.UserTransaction{}
	query := `SELECT ` + userTransactionColumns + `
              FROM user_transactions
              WHERE user_id = $1
              ORDER BY created_at DESC
              LIMIT $2 OFFSET $3`
	if err := q.SelectContext(ctx, &rows, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list audit rows for user %d: %w", userID, err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM user_transactions WHERE user_id = $1`
	if err := q.GetContext(ctx, &totalCount, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit rows for user %d: %w", userID, err)
	}

	return rows, totalCount, nil
}

// Update rewrites an existing audit row. Administrative use only; the
// settlement flows never mutate rows after creation.
func (r *UserTransactionRepository) Update(ctx context.Context, q repository.DBExecutor, row *domain.UserTransaction) error {
	query := `UPDATE user_transactions
              SET transaction_type = $1, currency = $2, transaction_fee = $3, status = $4,
                  payment_method = $5, bank_name = $6, account_name = $7, beneficiary_name = $8,
                  beneficiary_account = $9, beneficiary_bank = $10, available_amount = $11,
                  amount_sold = $12, amount_exchanged = $13, amount_deposited = $14,
                  amount_received = $15, amount_reversed = $16
              WHERE id = $17`
	result, err := q.ExecContext(ctx, query,
		row.TransactionType,
		row.Currency,
		row.TransactionFee,
		row.Status,
		row.PaymentMethod,
		row.BankName,
		row.AccountName,
		row.BeneficiaryName,
		row.BeneficiaryAccount,
		row.BeneficiaryBank,
		row.AvailableAmount,
		row.AmountSold,
		row.AmountExchanged,
		row.AmountDeposited,
		row.AmountReceived,
		row.AmountReversed,
		row.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update audit row %d: %w", row.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating audit row %d: %w", row.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// Delete removes a single audit row.
func (r *UserTransactionRepository) Delete(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM user_transactions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete audit row %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after deleting audit row %d: %w", id, err)
	}
	return rowsAffected > 0, nil
}

// DeleteAllForUser removes every audit row owned by a user.
func (r *UserTransactionRepository) DeleteAllForUser(ctx context.Context, q repository.DBExecutor, userID int64) (int64, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM user_transactions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete audit rows for user %d: %w", userID, err)
	}
	return rowsAffectedOrZero(result)
}
