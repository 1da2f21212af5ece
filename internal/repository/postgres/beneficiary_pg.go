// internal/repository/postgres/beneficiary_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
	"peertrade/internal/util"
)

// BeneficiaryRepository implements repository.BeneficiaryRepository for PostgreSQL.
type BeneficiaryRepository struct{}

// NewBeneficiaryRepository creates a new BeneficiaryRepository.
func NewBeneficiaryRepository() repository.BeneficiaryRepository {
	return &BeneficiaryRepository{}
}

// Create inserts a new beneficiary using the provided DBExecutor.
func (r *BeneficiaryRepository) Create(ctx context.Context, q repository.DBExecutor, beneficiary *domain.Beneficiary) error {
	query := `INSERT INTO beneficiaries (user_id, name, account_number, bank_name, currency, created_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		beneficiary.UserID,
		beneficiary.Name,
		beneficiary.AccountNumber,
		beneficiary.BankName,
		beneficiary.Currency,
		beneficiary.CreatedAt,
	).Scan(&beneficiary.ID)
	if err != nil {
		return fmt.Errorf("failed to create beneficiary: %w", err)
	}
	return nil
}

// GetByID retrieves a beneficiary by its ID.
func (r *BeneficiaryRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Beneficiary, error) {
	var beneficiary domain.Beneficiary
	query := `SELECT id, user_id, name, account_number, bank_name, currency, created_at
              FROM beneficiaries WHERE id = $1`
	err := q.GetContext(ctx, &beneficiary, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get beneficiary %d: %w", id, err)
	}
	return &beneficiary, nil
}

// ListByUser retrieves all beneficiaries owned by a user.
func (r *BeneficiaryRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Beneficiary, error) {
	beneficiaries := []domain.Beneficiary{}
	query := `SELECT id, user_id, name, account_number, bank_name, currency, created_at
              FROM beneficiaries WHERE user_id = $1 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &beneficiaries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries for user %d: %w", userID, err)
	}
	return beneficiaries, nil
}

// Delete removes a beneficiary owned by the given user.
func (r *BeneficiaryRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID int64) (bool, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM beneficiaries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete beneficiary %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after deleting beneficiary %d: %w", id, err)
	}
	return rowsAffected > 0, nil
}

// DeleteAllForUser removes every beneficiary owned by a user.
func (r *BeneficiaryRepository) DeleteAllForUser(ctx context.Context, q repository.DBExecutor, userID int64) (int64, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM beneficiaries WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete beneficiaries for user %d: %w", userID, err)
	}
	return rowsAffectedOrZero(result)
}
