// internal/repository/postgres/wallet_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
	"peertrade/internal/util"

	"github.com/shopspring/decimal"
)

// WalletRepository implements repository.WalletRepository for PostgreSQL.
type WalletRepository struct{}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository() repository.WalletRepository {
	return &WalletRepository{}
}

// Create inserts a new wallet using the provided DBExecutor.
func (r *WalletRepository) Create(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	query := `INSERT INTO wallets (user_id, currency_code, escrow_balance, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, wallet.UserID, wallet.CurrencyCode, wallet.EscrowBalance, wallet.CreatedAt, wallet.UpdatedAt).Scan(&wallet.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetByUserAndCurrency retrieves a wallet by user ID and currency code.
func (r *WalletRepository) GetByUserAndCurrency(ctx context.Context, q repository.DBExecutor, userID int64, currencyCode string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT id, user_id, currency_code, escrow_balance, created_at, updated_at
              FROM wallets WHERE user_id = $1 AND currency_code = $2`
	err := q.GetContext(ctx, &wallet, query, userID, currencyCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet for user %d and currency %s: %w", userID, currencyCode, err)
	}
	return &wallet, nil
}

// ListByUser retrieves all wallets owned by a user.
func (r *WalletRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Wallet, error) {
	wallets := []domain.Wallet{}
	query := `SELECT id, user_id, currency_code, escrow_balance, created_at, updated_at
              FROM wallets WHERE user_id = $1 ORDER BY currency_code`
	if err := q.SelectContext(ctx, &wallets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list wallets for user %d: %w", userID, err)
	}
	return wallets, nil
}

// Credit unconditionally increases a wallet's escrow balance.
func (r *WalletRepository) Credit(ctx context.Context, q repository.DBExecutor, walletID int64, amount decimal.Decimal) error {
	query := `UPDATE wallets SET escrow_balance = escrow_balance + $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, amount, time.Now().UTC(), walletID)
	if err != nil {
		return fmt.Errorf("failed to credit wallet %d: %w", walletID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after crediting wallet %d: %w", walletID, err)
	}
	if rowsAffected == 0 {
		return util.ErrWalletNotFound
	}
	return nil
}

// Debit decreases the escrow balance only if it is sufficient. The balance
// guard lives in the WHERE clause so two concurrent debits can never drive
// the balance negative: the losing writer simply matches no row.
func (r *WalletRepository) Debit(ctx context.Context, q repository.DBExecutor, userID int64, currencyCode string, amount decimal.Decimal) (bool, error) {
	query := `UPDATE wallets SET escrow_balance = escrow_balance - $1, updated_at = $2
              WHERE user_id = $3 AND currency_code = $4 AND escrow_balance >= $1`
	result, err := q.ExecContext(ctx, query, amount, time.Now().UTC(), userID, currencyCode)
	if err != nil {
		return false, fmt.Errorf("failed to debit wallet for user %d and currency %s: %w", userID, currencyCode, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after debiting wallet for user %d: %w", userID, err)
	}
	return rowsAffected > 0, nil
}

// DeleteAllForUser removes every wallet owned by a user.
func (r *WalletRepository) DeleteAllForUser(ctx context.Context, q repository.DBExecutor, userID int64) (int64, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM wallets WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete wallets for user %d: %w", userID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected after deleting wallets for user %d: %w", userID, err)
	}
	return rowsAffected, nil
}
