// internal/repository/trade_repo.go
package repository

import (
	"context"

	"peertrade/internal/domain"

	"github.com/shopspring/decimal"
)

// TradeRepository defines the interface for sell-offer data operations.
type TradeRepository interface {
	// Create inserts a new trade. A trade_id uniqueness violation surfaces as
	// util.ErrDuplicateEntry so the caller can regenerate the id and retry.
	Create(ctx context.Context, q DBExecutor, trade *domain.Trade) error
	// GetByTradeID retrieves a trade by its short identifier.
	GetByTradeID(ctx context.Context, q DBExecutor, tradeID string) (*domain.Trade, error)
	// ListAll retrieves every trade, newest first.
	ListAll(ctx context.Context, q DBExecutor) ([]domain.Trade, error)
	// ListByUser retrieves trades owned by a user.
	ListByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Trade, error)
	// ListExceptUser retrieves trades owned by anyone but the given user,
	// i.e. the offers that user may buy.
	ListExceptUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Trade, error)
	// ApplyFill atomically increments sold and decrements available_amount by
	// purchase, guarded on available_amount >= purchase. It returns false,
	// without error, when the guard rejected the update: either the trade is
	// gone or a concurrent fill exhausted it first.
	ApplyFill(ctx context.Context, q DBExecutor, tradeID string, purchase decimal.Decimal) (bool, error)
	// DeleteByTradeID removes a single trade; false when no such trade exists.
	DeleteByTradeID(ctx context.Context, q DBExecutor, tradeID string) (bool, error)
	// DeleteByUser removes every trade owned by a user.
	DeleteByUser(ctx context.Context, q DBExecutor, userID int64) (int64, error)
	// DeleteAll removes every trade.
	DeleteAll(ctx context.Context, q DBExecutor) (int64, error)
}

// BuyTradeRepository defines the interface for fill-record data operations.
// Fill records are append-only; there is deliberately no update method.
type BuyTradeRepository interface {
	Create(ctx context.Context, q DBExecutor, fill *domain.BuyTrade) error
	GetByID(ctx context.Context, q DBExecutor, id int64) (*domain.BuyTrade, error)
	ListAll(ctx context.Context, q DBExecutor) ([]domain.BuyTrade, error)
	ListByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.BuyTrade, error)
}

// BeneficiaryRepository defines the interface for saved payout destinations.
type BeneficiaryRepository interface {
	Create(ctx context.Context, q DBExecutor, beneficiary *domain.Beneficiary) error
	GetByID(ctx context.Context, q DBExecutor, id int64) (*domain.Beneficiary, error)
	ListByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Beneficiary, error)
	// Delete removes a beneficiary owned by the given user; false when no
	// matching row exists.
	Delete(ctx context.Context, q DBExecutor, id, userID int64) (bool, error)
	DeleteAllForUser(ctx context.Context, q DBExecutor, userID int64) (int64, error)
}
