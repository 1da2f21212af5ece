// internal/service/wallet_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
	"peertrade/internal/util"
	"peertrade/pkg/db"

	"github.com/shopspring/decimal"
)

// WalletService owns all balance mutation: credit, debit with a sufficiency
// guard, and first-touch wallet creation for a (user, currency) pair.
type WalletService interface {
	// GetOrCreateWallet returns the existing wallet for the pair or creates a
	// zero-balance one. If the user holds no wallet in any currency yet, the
	// configured default currency set is seeded at zero balance first.
	GetOrCreateWallet(ctx context.Context, userID int64, currencyCode string) (*domain.Wallet, error)
	// Credit increases the escrow balance by amount (> 0), creating the
	// wallet on first touch, and appends a funding audit row in the same
	// transaction.
	Credit(ctx context.Context, userID int64, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error)
	// Debit decreases the escrow balance by amount on the caller-supplied
	// executor, so the debit joins the caller's transaction and rolls back
	// with it. The wallet must already exist: a debit against a nonexistent
	// wallet is ErrWalletNotFound, never an implicit zero-balance wallet.
	Debit(ctx context.Context, q repository.DBExecutor, userID int64, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error)
	// ListByUser returns all wallets owned by a user.
	ListByUser(ctx context.Context, userID int64) ([]domain.Wallet, error)
	// DeleteAllForUser is an administrative bulk delete; it is not atomic
	// with any other state.
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}

type walletService struct {
	dbBeginner        db.DBTxBeginner
	dbExecutor        repository.DBExecutor
	walletRepo        repository.WalletRepository
	transactionRepo   repository.UserTransactionRepository
	beginTx           db.BeginTxFunc
	commitTx          db.CommitTxFunc
	rollbackTx        db.RollbackTxFunc
	defaultCurrencies []string
	logger            *slog.Logger
}

// NewWalletService creates a new instance of WalletService. defaultCurrencies
// is the currency set seeded for users with no wallets at all; pass nil to
// disable seeding.
func NewWalletService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	transactionRepo repository.UserTransactionRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	defaultCurrencies []string,
	logger *slog.Logger,
) WalletService {
	return &walletService{
		dbBeginner:        dbBeginner,
		dbExecutor:        dbExecutor,
		walletRepo:        walletRepo,
		transactionRepo:   transactionRepo,
		beginTx:           beginTx,
		commitTx:          commitTx,
		rollbackTx:        rollbackTx,
		defaultCurrencies: defaultCurrencies,
		logger:            logger,
	}
}

func (s *walletService) GetOrCreateWallet(ctx context.Context, userID int64, currencyCode string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserAndCurrency(ctx, s.dbExecutor, userID, currencyCode)
	if err == nil {
		return wallet, nil
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("get or create wallet: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("get or create wallet: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("get or create wallet: transaction controller does not implement DBExecutor")
	}

	wallet, err = s.ensureWallet(ctx, txExecutor, userID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("get or create wallet: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("get or create wallet: failed to commit transaction: %w", err)
	}
	return wallet, nil
}

func (s *walletService) Credit(ctx context.Context, userID int64, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, util.ErrInvalidAmount
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("credit: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("credit: transaction controller does not implement DBExecutor")
	}

	wallet, err := s.ensureWallet(ctx, txExecutor, userID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("credit: %w", err)
	}

	if err := s.walletRepo.Credit(ctx, txExecutor, wallet.ID, amount); err != nil {
		return nil, fmt.Errorf("credit: %w", err)
	}

	now := time.Now().UTC()
	row := &domain.UserTransaction{
		UserTransactionID: util.GenerateID("TXN"),
		UserID:            userID,
		Date:              now,
		TransactionType:   domain.TransactionTypeDeposit,
		Currency:          currencyCode,
		Status:            domain.TransactionStatusCompleted,
		AmountDeposited:   amount,
		CreatedAt:         now,
	}
	if err := s.transactionRepo.Create(ctx, txExecutor, row); err != nil {
		return nil, fmt.Errorf("credit: failed to create audit row: %w", err)
	}

	updated, err := s.walletRepo.GetByUserAndCurrency(ctx, txExecutor, userID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("credit: failed to re-fetch wallet: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("credit: failed to commit transaction: %w", err)
	}
	return updated, nil
}

func (s *walletService) Debit(ctx context.Context, q repository.DBExecutor, userID int64, currencyCode string, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, util.ErrInvalidAmount
	}

	if _, err := s.walletRepo.GetByUserAndCurrency(ctx, q, userID, currencyCode); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrWalletNotFound
		}
		return nil, fmt.Errorf("debit: %w", err)
	}

	debited, err := s.walletRepo.Debit(ctx, q, userID, currencyCode, amount)
	if err != nil {
		return nil, fmt.Errorf("debit: %w", err)
	}
	if !debited {
		return nil, util.ErrInsufficientFunds
	}

	wallet, err := s.walletRepo.GetByUserAndCurrency(ctx, q, userID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("debit: failed to re-fetch wallet: %w", err)
	}
	return wallet, nil
}

func (s *walletService) ListByUser(ctx context.Context, userID int64) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return wallets, nil
}

func (s *walletService) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.walletRepo.DeleteAllForUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return 0, fmt.Errorf("delete wallets: %w", err)
	}
	return deleted, nil
}

// ensureWallet returns the wallet for the pair, creating it if absent. When
// the user has no wallets at all, the configured default currency set is
// seeded at zero balance first.
func (s *walletService) ensureWallet(ctx context.Context, q repository.DBExecutor, userID int64, currencyCode string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserAndCurrency(ctx, q, userID, currencyCode)
	if err == nil {
		return wallet, nil
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, err
	}

	existing, err := s.walletRepo.ListByUser(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		for _, code := range s.defaultCurrencies {
			if code == currencyCode {
				continue
			}
			seeded := domain.NewWallet(userID, code)
			if err := s.walletRepo.Create(ctx, q, seeded); err != nil {
				return nil, err
			}
		}
	}

	wallet = domain.NewWallet(userID, currencyCode)
	if err := s.walletRepo.Create(ctx, q, wallet); err != nil {
		// A concurrent first touch may have won the insert.
		if util.IsError(err, util.ErrDuplicateEntry) {
			return s.walletRepo.GetByUserAndCurrency(ctx, q, userID, currencyCode)
		}
		return nil, err
	}
	return wallet, nil
}
