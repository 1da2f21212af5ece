// internal/service/trade_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"peertrade/internal/domain"
	"peertrade/internal/gateway"
	"peertrade/internal/repository"
	"peertrade/internal/util"
	"peertrade/pkg/db"

	"github.com/shopspring/decimal"
)

const (
	tradeIDPrefix = "TRD"

	// Bounded regeneration on a trade_id unique-index collision.
	maxIDAttempts = 3
)

// PayoutGateway is the narrow slice of the open-banking adapter the
// settlement service needs for beneficiary payouts.
type PayoutGateway interface {
	InitiateWithdrawal(ctx context.Context, req gateway.WithdrawalRequest) (*gateway.WithdrawalResult, error)
}

// CreateTradeInput carries the validated fields for a new sell-offer.
type CreateTradeInput struct {
	Currency           string
	ExitCurrency       string
	Rate               decimal.Decimal
	Amount             decimal.Decimal
	MinimumBid         string
	PaymentMethod      string
	TransactionFee     decimal.Decimal
	VatFee             decimal.Decimal
	BeneficiaryName    string
	BeneficiaryAccount string
	BeneficiaryBank    string
	BankName           string
	AccountName        string
	AccountNumber      string
	AdditionalInfo     string
}

// BuyTradeInput carries the validated fields for a partial fill.
type BuyTradeInput struct {
	TradeID            string
	Purchase           decimal.Decimal
	PaymentMethod      string
	BeneficiaryName    string
	BeneficiaryAccount string
	BeneficiaryBank    string
}

// CreateBeneficiaryInput carries the fields for a saved payout destination.
type CreateBeneficiaryInput struct {
	Name          string
	AccountNumber string
	BankName      string
	Currency      string
}

// TradeService orchestrates the settlement core: creating sell-offers,
// partially filling them, and the wallet debits, audit rows and notifications
// that must succeed or fail together.
type TradeService interface {
	CreateTrade(ctx context.Context, userID int64, in CreateTradeInput) (*domain.Trade, error)
	BuyTrade(ctx context.Context, buyerID int64, in BuyTradeInput) (*domain.Trade, error)
	// PayoutBeneficiary submits a one-shot withdrawal of a fully consumed
	// trade's proceeds to its beneficiary. No retry or reconciliation is
	// attempted on failure.
	PayoutBeneficiary(ctx context.Context, tradeID string) error

	FindAll(ctx context.Context) ([]domain.Trade, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Trade, error)
	FindAllExceptUser(ctx context.Context, userID int64) ([]domain.Trade, error)
	FindByTradeID(ctx context.Context, tradeID string) (*domain.Trade, error)

	AllFills(ctx context.Context) ([]domain.BuyTrade, error)
	FillByID(ctx context.Context, id int64) (*domain.BuyTrade, error)
	FillsByBuyer(ctx context.Context, buyerID int64) ([]domain.BuyTrade, error)

	DeleteAll(ctx context.Context) (int64, error)
	DeleteByTradeID(ctx context.Context, tradeID string) error
	DeleteByUser(ctx context.Context, userID int64) (int64, error)

	CreateBeneficiary(ctx context.Context, userID int64, in CreateBeneficiaryInput) (*domain.Beneficiary, error)
	BeneficiariesByUser(ctx context.Context, userID int64) ([]domain.Beneficiary, error)
	DeleteBeneficiary(ctx context.Context, id, userID int64) error
	DeleteAllBeneficiaries(ctx context.Context, userID int64) (int64, error)
}

// TradeServiceDeps bundles the collaborators for NewTradeService.
type TradeServiceDeps struct {
	DBBeginner      db.DBTxBeginner
	DBExecutor      repository.DBExecutor
	TradeRepo       repository.TradeRepository
	BuyTradeRepo    repository.BuyTradeRepository
	BeneficiaryRepo repository.BeneficiaryRepository
	TransactionRepo repository.UserTransactionRepository
	Wallets         WalletService
	Notifier        NotificationService
	Payouts         PayoutGateway // Optional; nil disables payout-on-exhaustion
	BeginTx         db.BeginTxFunc
	CommitTx        db.CommitTxFunc
	RollbackTx      db.RollbackTxFunc
	PayoutTimeout   time.Duration
	Logger          *slog.Logger
}

type tradeService struct {
	TradeServiceDeps
}

// NewTradeService creates a new instance of TradeService.
func NewTradeService(deps TradeServiceDeps) TradeService {
	if deps.PayoutTimeout <= 0 {
		deps.PayoutTimeout = 30 * time.Second
	}
	return &tradeService{TradeServiceDeps: deps}
}

// CreateTrade creates a sell-offer. All writes happen inside one transaction:
// the optional wallet debit, the trade insert and the audit row commit or
// roll back together. The creator's notification is emitted after commit so a
// notification-store outage can never abort a settlement.
func (s *tradeService) CreateTrade(ctx context.Context, userID int64, in CreateTradeInput) (trade *domain.Trade, err error) {
	defer func() { recordSettlement("create_trade", err) }()

	if !in.Amount.IsPositive() || !in.Rate.IsPositive() {
		return nil, util.ErrInvalidAmount
	}

	txController, err := s.BeginTx(ctx, s.DBBeginner)
	if err != nil {
		return nil, fmt.Errorf("create trade: failed to begin transaction: %w", err)
	}
	defer s.RollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create trade: transaction controller does not implement DBExecutor")
	}

	if in.PaymentMethod == domain.PaymentMethodWallet {
		if _, err := s.Wallets.Debit(ctx, txExecutor, userID, in.Currency, in.Amount); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	trade = &domain.Trade{
		UserID:             userID,
		Currency:           in.Currency,
		ExitCurrency:       in.ExitCurrency,
		Rate:               in.Rate,
		Amount:             in.Amount,
		Sold:               decimal.Zero,
		AvailableAmount:    in.Amount,
		Price:              in.Amount.Mul(in.Rate).Round(0),
		MinimumBid:         in.MinimumBid,
		PaymentMethod:      in.PaymentMethod,
		TransactionFee:     in.TransactionFee,
		VatFee:             in.VatFee,
		BeneficiaryName:    in.BeneficiaryName,
		BeneficiaryAccount: in.BeneficiaryAccount,
		BeneficiaryBank:    in.BeneficiaryBank,
		BankName:           in.BankName,
		AccountName:        in.AccountName,
		AccountNumber:      in.AccountNumber,
		AdditionalInfo:     in.AdditionalInfo,
		Status:             "Open",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// The id generator performs no collision detection; a unique-index
	// violation is retryable by regenerating.
	createErr := util.ErrDuplicateEntry
	for attempt := 0; attempt < maxIDAttempts && util.IsError(createErr, util.ErrDuplicateEntry); attempt++ {
		trade.TradeID = util.GenerateID(tradeIDPrefix)
		createErr = s.TradeRepo.Create(ctx, txExecutor, trade)
	}
	if createErr != nil {
		if util.IsError(createErr, util.ErrDuplicateEntry) {
			return nil, createErr
		}
		return nil, fmt.Errorf("%w: %v", util.ErrSettlementFailed, createErr)
	}

	row := &domain.UserTransaction{
		UserTransactionID:  trade.TradeID,
		UserID:             userID,
		Date:               now,
		TransactionType:    domain.TransactionTypeTrade,
		Currency:           in.Currency,
		TransactionFee:     in.TransactionFee,
		Status:             domain.TransactionStatusCompleted,
		PaymentMethod:      in.PaymentMethod,
		BankName:           in.BankName,
		AccountName:        in.AccountName,
		BeneficiaryName:    in.BeneficiaryName,
		BeneficiaryAccount: in.BeneficiaryAccount,
		BeneficiaryBank:    in.BeneficiaryBank,
		AvailableAmount:    in.Amount,
		AmountSold:         in.Amount,
		CreatedAt:          now,
	}
	if err := s.TransactionRepo.Create(ctx, txExecutor, row); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrSettlementFailed, err)
	}

	if err := s.CommitTx(txController); err != nil {
		return nil, fmt.Errorf("create trade: failed to commit transaction: %w", err)
	}

	s.notify(ctx, userID, fmt.Sprintf("Your trade %s was created successfully", trade.TradeID), "trade")
	return trade, nil
}

// BuyTrade partially fills an open sell-offer. The buyer's wallet debit, the
// conditional fill-quantity update, the fill record and the audit row all
// share one transaction; the conditional update's guard makes concurrent
// over-fills impossible. If the fill exhausts the trade, the beneficiary
// payout is kicked off after commit, fire-and-forget.
func (s *tradeService) BuyTrade(ctx context.Context, buyerID int64, in BuyTradeInput) (updated *domain.Trade, err error) {
	defer func() { recordSettlement("buy_trade", err) }()

	if !in.Purchase.IsPositive() {
		return nil, util.ErrInvalidAmount
	}

	txController, err := s.BeginTx(ctx, s.DBBeginner)
	if err != nil {
		return nil, fmt.Errorf("buy trade: failed to begin transaction: %w", err)
	}
	defer s.RollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("buy trade: transaction controller does not implement DBExecutor")
	}

	trade, err := s.TradeRepo.GetByTradeID(ctx, txExecutor, in.TradeID)
	if err != nil {
		return nil, err
	}
	if in.Purchase.GreaterThan(trade.AvailableAmount) {
		return nil, util.ErrAmountExceedsAvailable
	}

	price := in.Purchase.Mul(trade.Rate).Round(0)

	if in.PaymentMethod == domain.PaymentMethodWallet {
		if _, err := s.Wallets.Debit(ctx, txExecutor, buyerID, trade.ExitCurrency, price); err != nil {
			return nil, err
		}
	}

	applied, err := s.TradeRepo.ApplyFill(ctx, txExecutor, trade.TradeID, in.Purchase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrSettlementFailed, err)
	}
	if !applied {
		// A concurrent fill exhausted the trade between our read and the
		// conditional update.
		return nil, util.ErrAmountExceedsAvailable
	}

	now := time.Now().UTC()
	fill := &domain.BuyTrade{
		TransactionID:      trade.TradeID,
		UserID:             buyerID,
		Purchase:           in.Purchase,
		Price:              price,
		BeneficiaryName:    in.BeneficiaryName,
		BeneficiaryAccount: in.BeneficiaryAccount,
		BeneficiaryBank:    in.BeneficiaryBank,
		PaymentMethod:      in.PaymentMethod,
		Status:             domain.TransactionStatusCompleted,
		PurchaseCurrency:   trade.Currency,
		PaidCurrency:       trade.ExitCurrency,
		CreatedAt:          now,
	}
	if err := s.BuyTradeRepo.Create(ctx, txExecutor, fill); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrSettlementFailed, err)
	}

	row := &domain.UserTransaction{
		UserTransactionID:  trade.TradeID,
		UserID:             buyerID,
		Date:               now,
		TransactionType:    domain.TransactionTypeBuyTrade,
		Currency:           trade.Currency,
		TransactionFee:     trade.TransactionFee,
		Status:             domain.TransactionStatusCompleted,
		PaymentMethod:      in.PaymentMethod,
		BeneficiaryName:    in.BeneficiaryName,
		BeneficiaryAccount: in.BeneficiaryAccount,
		BeneficiaryBank:    in.BeneficiaryBank,
		AvailableAmount:    trade.AvailableAmount.Sub(in.Purchase),
		AmountExchanged:    in.Purchase,
		AmountReceived:     price,
		CreatedAt:          now,
	}
	if err := s.TransactionRepo.Create(ctx, txExecutor, row); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrSettlementFailed, err)
	}

	updated, err = s.TradeRepo.GetByTradeID(ctx, txExecutor, trade.TradeID)
	if err != nil {
		return nil, fmt.Errorf("buy trade: failed to re-fetch trade: %w", err)
	}

	if err := s.CommitTx(txController); err != nil {
		return nil, fmt.Errorf("buy trade: failed to commit transaction: %w", err)
	}

	s.notify(ctx, buyerID, fmt.Sprintf("You bought %s of trade %s", in.Purchase.String(), trade.TradeID), "trade")

	if updated.AvailableAmount.IsZero() && s.Payouts != nil {
		// The settlement is already committed; the payout is a separate,
		// one-shot call whose failure is logged, not compensated.
		go s.payout(updated)
	}

	return updated, nil
}

func (s *tradeService) PayoutBeneficiary(ctx context.Context, tradeID string) error {
	trade, err := s.TradeRepo.GetByTradeID(ctx, s.DBExecutor, tradeID)
	if err != nil {
		return err
	}
	if !trade.AvailableAmount.IsZero() {
		return fmt.Errorf("%w: trade %s is not fully consumed", util.ErrInvalidInput, tradeID)
	}
	if s.Payouts == nil {
		return fmt.Errorf("%w: no payout gateway configured", util.ErrExternalService)
	}

	ctx, cancel := context.WithTimeout(ctx, s.PayoutTimeout)
	defer cancel()

	_, err = s.Payouts.InitiateWithdrawal(ctx, gateway.WithdrawalRequest{
		BeneficiaryName: trade.BeneficiaryName,
		AccountNumber:   trade.BeneficiaryAccount,
		BankName:        trade.BeneficiaryBank,
		Currency:        trade.ExitCurrency,
		AmountMinor:     trade.Price.IntPart(),
		Reference:       trade.TradeID,
	})
	return err
}

// payout runs the post-exhaustion withdrawal off the request goroutine.
func (s *tradeService) payout(trade *domain.Trade) {
	ctx, cancel := context.WithTimeout(context.Background(), s.PayoutTimeout)
	defer cancel()

	if err := s.PayoutBeneficiary(ctx, trade.TradeID); err != nil {
		s.Logger.Error("beneficiary payout failed",
			"trade_id", trade.TradeID,
			"beneficiary", trade.BeneficiaryName,
			"error", err,
		)
		return
	}
	s.Logger.Info("beneficiary payout initiated", "trade_id", trade.TradeID)
}

// notify emits a post-commit, best-effort notification. context.WithoutCancel
// keeps a client disconnect from suppressing it; a failure is only logged.
func (s *tradeService) notify(ctx context.Context, userID int64, message, notificationType string) {
	if _, err := s.Notifier.Create(context.WithoutCancel(ctx), userID, message, notificationType); err != nil {
		s.Logger.Error("failed to emit notification", "user_id", userID, "error", err)
	}
}

func (s *tradeService) FindAll(ctx context.Context) ([]domain.Trade, error) {
	return s.TradeRepo.ListAll(ctx, s.DBExecutor)
}

func (s *tradeService) FindByUser(ctx context.Context, userID int64) ([]domain.Trade, error) {
	return s.TradeRepo.ListByUser(ctx, s.DBExecutor, userID)
}

func (s *tradeService) FindAllExceptUser(ctx context.Context, userID int64) ([]domain.Trade, error) {
	return s.TradeRepo.ListExceptUser(ctx, s.DBExecutor, userID)
}

func (s *tradeService) FindByTradeID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	return s.TradeRepo.GetByTradeID(ctx, s.DBExecutor, tradeID)
}

func (s *tradeService) AllFills(ctx context.Context) ([]domain.BuyTrade, error) {
	return s.BuyTradeRepo.ListAll(ctx, s.DBExecutor)
}

func (s *tradeService) FillByID(ctx context.Context, id int64) (*domain.BuyTrade, error) {
	return s.BuyTradeRepo.GetByID(ctx, s.DBExecutor, id)
}

func (s *tradeService) FillsByBuyer(ctx context.Context, buyerID int64) ([]domain.BuyTrade, error) {
	return s.BuyTradeRepo.ListByUser(ctx, s.DBExecutor, buyerID)
}

func (s *tradeService) DeleteAll(ctx context.Context) (int64, error) {
	return s.TradeRepo.DeleteAll(ctx, s.DBExecutor)
}

func (s *tradeService) DeleteByTradeID(ctx context.Context, tradeID string) error {
	deleted, err := s.TradeRepo.DeleteByTradeID(ctx, s.DBExecutor, tradeID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrNotFound
	}
	return nil
}

func (s *tradeService) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return s.TradeRepo.DeleteByUser(ctx, s.DBExecutor, userID)
}

func (s *tradeService) CreateBeneficiary(ctx context.Context, userID int64, in CreateBeneficiaryInput) (*domain.Beneficiary, error) {
	beneficiary := &domain.Beneficiary{
		UserID:        userID,
		Name:          in.Name,
		AccountNumber: in.AccountNumber,
		BankName:      in.BankName,
		Currency:      in.Currency,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.BeneficiaryRepo.Create(ctx, s.DBExecutor, beneficiary); err != nil {
		return nil, err
	}
	return beneficiary, nil
}

func (s *tradeService) BeneficiariesByUser(ctx context.Context, userID int64) ([]domain.Beneficiary, error) {
	return s.BeneficiaryRepo.ListByUser(ctx, s.DBExecutor, userID)
}

func (s *tradeService) DeleteBeneficiary(ctx context.Context, id, userID int64) error {
	deleted, err := s.BeneficiaryRepo.Delete(ctx, s.DBExecutor, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrNotFound
	}
	return nil
}

func (s *tradeService) DeleteAllBeneficiaries(ctx context.Context, userID int64) (int64, error) {
	return s.BeneficiaryRepo.DeleteAllForUser(ctx, s.DBExecutor, userID)
}
