// internal/api/handler/wallet_test.go
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"peertrade/internal/api/middleware"
	"peertrade/internal/domain"
	"peertrade/internal/repository"
	"peertrade/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWalletService is a mock implementation of service.WalletService.
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

func authedRequest(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestWalletFund(t *testing.T) {
	userID := int64(7)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockWalletService)
		h := NewWalletHandler(svc, slog.Default())

		wallet := &domain.Wallet{ID: 3, UserID: userID, CurrencyCode: "GBP", EscrowBalance: decimal.NewFromInt(600)}
		svc.On("Credit", mock.Anything, userID, "GBP", decimal.NewFromInt(500)).Return(wallet, nil).Once()

		req := authedRequest(http.MethodPost, "/wallet/fund", `{"amount":500,"currency":"GBP"}`, userID)
		rec := httptest.NewRecorder()

		h.Fund(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Wallet funded successfully", resp["message"])
		assert.Equal(t, "600", resp["new_balance"])
		mock.AssertExpectationsForObjects(t, svc)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		svc := new(MockWalletService)
		h := NewWalletHandler(svc, slog.Default())

		req := authedRequest(http.MethodPost, "/wallet/fund", `{"amount":`, userID)
		rec := httptest.NewRecorder()

		h.Fund(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InsufficientFundsMapsTo400", func(t *testing.T) {
		svc := new(MockWalletService)
		h := NewWalletHandler(svc, slog.Default())

		svc.On("Credit", mock.Anything, userID, "GBP", mock.Anything).
			Return(nil, util.ErrInsufficientFunds).Once()

		req := authedRequest(http.MethodPost, "/wallet/fund", `{"amount":500,"currency":"GBP"}`, userID)
		rec := httptest.NewRecorder()

		h.Fund(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingAuthContext", func(t *testing.T) {
		svc := new(MockWalletService)
		h := NewWalletHandler(svc, slog.Default())

		req := httptest.NewRequest(http.MethodPost, "/wallet/fund", strings.NewReader(`{"amount":500,"currency":"GBP"}`))
		rec := httptest.NewRecorder()

		h.Fund(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestWalletGetWallets(t *testing.T) {
	userID := int64(7)

	svc := new(MockWalletService)
	h := NewWalletHandler(svc, slog.Default())

	wallets := []domain.Wallet{
		{ID: 1, UserID: userID, CurrencyCode: "GBP", EscrowBalance: decimal.Zero},
		{ID: 2, UserID: userID, CurrencyCode: "NGN", EscrowBalance: decimal.NewFromInt(100)},
	}
	svc.On("ListByUser", mock.Anything, userID).Return(wallets, nil).Once()

	req := authedRequest(http.MethodGet, "/wallet/get-wallets", "", userID)
	rec := httptest.NewRecorder()

	h.GetWallets(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Wallets []domain.Wallet `json:"wallets"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Wallets, 2)
	mock.AssertExpectationsForObjects(t, svc)
}
