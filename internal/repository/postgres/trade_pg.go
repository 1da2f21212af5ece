// internal/repository/postgres/trade_pg.go
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

const tradeColumns = `id, trade_id, user_id, currency, exit_currency, rate, amount, sold,
    available_amount, price, minimum_bid, payment_method, transaction_fee, vat_fee,
    beneficiary_name, beneficiary_account, beneficiary_bank, bank_name, account_name,
    account_number, additional_information, status, created_at, updated_at`

// TradeRepository implements repository.TradeRepository for PostgreSQL.
type TradeRepository struct{}

// NewTradeRepository creates a new TradeRepository.
func NewTradeRepository() repository.TradeRepository {
	return &TradeRepository{}
}

// Create inserts a new trade using the provided DBExecutor.
func (r *TradeRepository) Create(ctx context.Context, q repository.DBExecutor, trade *domain.Trade) error {
	query := `INSERT INTO trades (trade_id, user_id, currency, exit_currency, rate, amount, sold,
                  available_amount, price, minimum_bid, payment_method, transaction_fee, vat_fee,
                  beneficiary_name, beneficiary_account, beneficiary_bank, bank_name, account_name,
                  account_number, additional_information, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
                  $18, $19, $20, $21, $22, $23)
              RETURNING id`
	err := q.QueryRowContext(ctx, query,
		trade.TradeID,
		trade.UserID,
		trade.Currency,
		trade.ExitCurrency,
		trade.Rate,
		trade.Amount,
		trade.Sold,
		trade.AvailableAmount,
		trade.Price,
		trade.MinimumBid,
		trade.PaymentMethod,
		trade.TransactionFee,
		trade.VatFee,
		trade.BeneficiaryName,
		trade.BeneficiaryAccount,
		trade.BeneficiaryBank,
		trade.BankName,
		trade.AccountName,
		trade.AccountNumber,
		trade.AdditionalInfo,
		trade.Status,
		trade.CreatedAt,
		trade.UpdatedAt,
	).Scan(&trade.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create trade: %w", err)
	}
	return nil
}

// GetByTradeID retrieves a trade by its short identifier.
func (r *TradeRepository) GetByTradeID(ctx context.Context, q repository.DBExecutor, tradeID string) (*domain.Trade, error) {
	var trade domain.Trade
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE trade_id = $1`
	err := q.GetContext(ctx, &trade, query, tradeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trade %s: %w", tradeID, err)
	}
	return &trade, nil
}

// ListAll retrieves every trade, newest first.
func (r *TradeRepository) ListAll(ctx context.Context, q repository.DBExecutor) ([]domain.Trade, error) {
	trades := []domain.Trade{}
	query := `SELECT ` + tradeColumns + ` FROM trades ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &trades, query); err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

// ListByUser retrieves trades owned by a user, newest first.
func (r *TradeRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Trade, error) {
	trades := []domain.Trade{}
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE user_id = $1 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &trades, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list trades for user %d: %w", userID, err)
	}
	return trades, nil
}

// ListExceptUser retrieves trades owned by anyone but the given user.
func (r *TradeRepository) ListExceptUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Trade, error) {
	trades := []domain.Trade{}
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE user_id <> $1 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &trades, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list trades excluding user %d: %w", userID, err)
	}
	return trades, nil
}

// ApplyFill performs the fill-quantity update as a single conditional UPDATE.
// The available_amount >= purchase guard in the WHERE clause is what makes two
// racing fills safe: the loser matches no row and must surface
// AmountExceedsAvailable instead of overwriting.
func (r *TradeRepository) ApplyFill(ctx context.Context, q repository.DBExecutor, tradeID string, purchase decimal.Decimal) (bool, error) {
	query := `UPDATE trades
              SET sold = sold + $1, available_amount = available_amount - $1, updated_at = $2
              WHERE trade_id = $3 AND available_amount >= $1`
	result, err := q.ExecContext(ctx, query, purchase, time.Now().UTC(), tradeID)
	if err != nil {
		return false, fmt.Errorf("failed to apply fill to trade %s: %w", tradeID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after filling trade %s: %w", tradeID, err)
	}
	return rowsAffected > 0, nil
}

// DeleteByTradeID removes a single trade.
func (r *TradeRepository) DeleteByTradeID(ctx context.Context, q repository.DBExecutor, tradeID string) (bool, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM trades WHERE trade_id = $1`, tradeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete trade %s: %w", tradeID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after deleting trade %s: %w", tradeID, err)
	}
	return rowsAffected > 0, nil
}

// DeleteByUser removes every trade owned by a user.
func (r *TradeRepository) DeleteByUser(ctx context.Context, q repository.DBExecutor, userID int64) (int64, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM trades WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete trades for user %d: %w", userID, err)
	}
	return rowsAffectedOrZero(result)
}

// DeleteAll removes every trade.
func (r *TradeRepository) DeleteAll(ctx context.Context, q repository.DBExecutor) (int64, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM trades`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all trades: %w", err)
	}
	return rowsAffectedOrZero(result)
}

func rowsAffectedOrZero(result sql.Result) (int64, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}
