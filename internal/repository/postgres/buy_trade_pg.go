// internal/repository/postgres/buy_trade_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
	"peertrade/internal/util"
)

const buyTradeColumns = `id, transaction_id, user_id, purchase, price, beneficiary_name,
    beneficiary_account, beneficiary_bank, payment_method, status, purchase_currency,
    paid_currency, created_at`

// BuyTradeRepository implements repository.BuyTradeRepository for PostgreSQL.
type BuyTradeRepository struct{}

// NewBuyTradeRepository creates a new BuyTradeRepository.
func NewBuyTradeRepository() repository.BuyTradeRepository {
	return &BuyTradeRepository{}
}

// Create inserts a new fill record using the provided DBExecutor.
func (r *BuyTradeRepository) Create(ctx context.Context, q repository.DBExecutor, fill *domain.BuyTrade) error {
	query := `INSERT INTO buy_trades (transaction_id, user_id, purchase, price, beneficiary_name,
                  beneficiary_account, beneficiary_bank, payment_method, status,
                  purchase_currency, paid_currency, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
              RETURNING id`
	err := q.QueryRowContext(ctx, query,
		fill.TransactionID,
		fill.UserID,
		fill.Purchase,
		fill.Price,
		fill.BeneficiaryName,
		fill.BeneficiaryAccount,
		fill.BeneficiaryBank,
		fill.PaymentMethod,
		fill.Status,
		fill.PurchaseCurrency,
		fill.PaidCurrency,
		fill.CreatedAt,
	).Scan(&fill.ID)
	if err != nil {
		return fmt.Errorf("failed to create fill record: %w", err)
	}
	return nil
}

// GetByID retrieves a fill record by its ID.
func (r *BuyTradeRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.BuyTrade, error) {
	var fill domain.BuyTrade
	query := `SELECT ` + buyTradeColumns + ` FROM buy_trades WHERE id = $1`
	err := q.GetContext(ctx, &fill, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get fill record %d: %w", id, err)
	}
	return &fill, nil
}

// ListAll retrieves every fill record, newest first.
func (r *BuyTradeRepository) ListAll(ctx context.Context, q repository.DBExecutor) ([]domain.BuyTrade, error) {
	fills := []domain.BuyTrade{}
	query := `SELECT ` + buyTradeColumns + ` FROM buy_trades ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &fills, query); err != nil {
		return nil, fmt.Errorf("failed to list fill records: %w", err)
	}
	return fills, nil
}

// ListByUser retrieves fill records created by a buyer, newest first.
func (r *BuyTradeRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.BuyTrade, error) {
	fills := []domain.BuyTrade{}
	query := `SELECT ` + buyTradeColumns + ` FROM buy_trades WHERE user_id = $1 ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &fills, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list fill records for user %d: %w", userID, err)
	}
	return fills, nil
}
