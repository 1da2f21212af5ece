// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"peertrade/internal/domain"
	"peertrade/internal/gateway"
	"peertrade/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController. It embeds
// MockDBExecutor so it also satisfies repository.DBExecutor, the way a real
// *sqlx.Tx does.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockWalletRepository is a mock implementation of repository.WalletRepository.
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	args := m.Called(ctx, q, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByUserAndCurrency(ctx context.Context, q repository.DBExecutor, userID int64, currencyCode string) (*domain.Wallet, error) {
	args := m.Called(ctx, q, userID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Wallet, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Credit(ctx context.Context, q repository.DBExecutor, walletID int64, amount decimal.Decimal) error {
	args := m.Called(ctx, q, walletID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) Debit(ctx context.Context, q repository.DBExecutor, userID int64, currencyCode string, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, q, userID, currencyCode, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockWalletRepository) DeleteAllForUser(ctx context.Context, q repository.DBExecutor, userID int64) (int64, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTradeRepository is a mock implementation of repository.TradeRepository.
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) Create(ctx context.Context, q repository.DBExecutor, trade *domain.Trade) error {
	args := m.Called(ctx, q, trade)
	return args.Error(0)
}

func (m *MockTradeRepository) GetByTradeID(ctx context.Context, q repository.DBExecutor, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, q, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ListAll(ctx context.Context, q repository.DBExecutor) ([]domain.Trade, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Trade, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ListExceptUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Trade, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ApplyFill(ctx context.Context, q repository.DBExecutor, tradeID string, purchase decimal.Decimal) (bool, error) {
	args := m.Called(ctx, q, tradeID, purchase)
	return args.Bool(0), args.Error(1)
}

func (m *MockTradeRepository) DeleteByTradeID(ctx context.Context, q repository.DBExecutor, tradeID string) (bool, error) {
	args := m.Called(ctx, q, tradeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTradeRepository) DeleteByUser(ctx context.Context, q repository.DBExecutor, userID int64) (int64, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTradeRepository) DeleteAll(ctx context.Context, q repository.DBExecutor) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

// MockBuyTradeRepository is a mock implementation of repository.BuyTradeRepository.
type MockBuyTradeRepository struct {
	mock.Mock
}

func (m *MockBuyTradeRepository) Create(ctx context.Context, q repository.DBExecutor, fill *domain.BuyTrade) error {
	args := m.Called(ctx, q, fill)
	return args.Error(0)
}

func (m *MockBuyTradeRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.BuyTrade, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuyTrade), args.Error(1)
}

func (m *MockBuyTradeRepository) ListAll(ctx context.Context, q repository.DBExecutor) ([]domain.BuyTrade, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BuyTrade), args.Error(1)
}

func (m *MockBuyTradeRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.BuyTrade, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BuyTrade), args.Error(1)
}

// MockBeneficiaryRepository is a mock implementation of repository.BeneficiaryRepository.
type MockBeneficiaryRepository struct {
	mock.Mock
}

func (m *MockBeneficiaryRepository) Create(ctx context.Context, q repository.DBExecutor, beneficiary *domain.Beneficiary) error {
	args := m.Called(ctx, q, beneficiary)
	return args.Error(0)
}

func (m *MockBeneficiaryRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Beneficiary, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Beneficiary, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID int64) (bool, error) {
	args := m.Called(ctx, q, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBeneficiaryRepository) DeleteAllForUser(ctx context.Context, q repository.DBExecutor, userID int64) (int64, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserTransactionRepository is a mock implementation of
// repository.UserTransactionRepository.
type MockUserTransactionRepository struct {
	mock.Mock
}

func (m *MockUserTransactionRepository) Create(ctx context.Context, q repository.DBExecutor, row *domain.UserTransaction) error {
	args := m.Called(ctx, q, row)
	return args.Error(0)
}

func (m *MockUserTransactionRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.UserTransaction, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTransaction), args.Error(1)
}

func (m *MockUserTransactionRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.UserTransaction, int64, error) {
	args := m.Called(ctx, q, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.UserTransaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserTransactionRepository) Update(ctx context.Context, q repository.DBExecutor, row *domain.UserTransaction) error {
	args := m.Called(ctx, q, row)
	return args.Error(0)
}

func (m *MockUserTransactionRepository) Delete(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserTransactionRepository) DeleteAllForUser(ctx context.Context, q repository.DBExecutor, userID int64) (int64, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockWalletService is a mock implementation of WalletService.
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetOrCreateWallet(ctx context.Context, userID int64, currencyCode string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) Credit(ctx context.Context, userID int64, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, currencyCode, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) Debit(ctx context.Context, q repository.DBExecutor, userID int64, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error) {
	args := m.Called(ctx, q, userID, currencyCode, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) ListByUser(ctx context.Context, userID int64) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletService) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotificationService is a mock implementation of NotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Create(ctx context.Context, userID int64, message, notificationType string) (*domain.Notification, error) {
	args := m.Called(ctx, userID, message, notificationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPayoutGateway is a mock implementation of PayoutGateway.
type MockPayoutGateway struct {
	mock.Mock
}

func (m *MockPayoutGateway) InitiateWithdrawal(ctx context.Context, req gateway.WithdrawalRequest) (*gateway.WithdrawalResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.WithdrawalResult), args.Error(1)
}
