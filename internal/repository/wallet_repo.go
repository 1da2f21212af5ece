// internal/repository/wallet_repo.go
package repository

import (
	"context"

	"peertrade/internal/domain"

	"github.com/shopspring/decimal"
)

// WalletRepository defines the interface for wallet data operations.
type WalletRepository interface {
	// Create adds a new wallet. A (user_id, currency_code) uniqueness
	// violation surfaces as util.ErrDuplicateEntry.
	Create(ctx context.Context, q DBExecutor, wallet *domain.Wallet) error
	// GetByUserAndCurrency retrieves the wallet for a (user, currency) pair.
	GetByUserAndCurrency(ctx context.Context, q DBExecutor, userID int64, currencyCode string) (*domain.Wallet, error)
	// ListByUser retrieves all wallets owned by a user.
	ListByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Wallet, error)
	// Credit unconditionally increases a wallet's escrow balance.
	Credit(ctx context.Context, q DBExecutor, walletID int64, amount decimal.Decimal) error
	// Debit decreases the escrow balance of the (user, currency) wallet only
	// if the balance is sufficient. It returns false, without error, when the
	// conditional update matched no row (insufficient funds); the caller is
	// responsible for having verified the wallet exists.
	Debit(ctx context.Context, q DBExecutor, userID int64, currencyCode string, amount decimal.Decimal) (bool, error)
	// DeleteAllForUser removes every wallet owned by a user.
	DeleteAllForUser(ctx context.Context, q DBExecutor, userID int64) (int64, error)
}
