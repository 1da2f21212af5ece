// internal/gateway/openbanking.go
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"peertrade/internal/util"

	"github.com/google/uuid"
)

// OpenBankingConfig carries the credentials and endpoints for the open
// banking provider.
type OpenBankingConfig struct {
	AuthURL      string
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// PaymentRequest initiates a pay-in from a user's bank account.
type PaymentRequest struct {
	Currency    string `json:"currency"`
	AmountMinor int64  `json:"amount_in_minor"`
	Reference   string `json:"reference"`
	UserEmail   string `json:"user_email"`
	UserName    string `json:"user_name"`
}

// PaymentResult is the provider's handle for a created payment.
type PaymentResult struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	ResourceURI string `json:"resource_token,omitempty"`
}

// WithdrawalRequest initiates a payout to an external bank account.
type WithdrawalRequest struct {
	BeneficiaryName string `json:"beneficiary_name"`
	AccountNumber   string `json:"account_number"`
	BankName        string `json:"bank_name"`
	Address         string `json:"address,omitempty"`
	Currency        string `json:"currency"`
	AmountMinor     int64  `json:"amount_in_minor"`
	Reference       string `json:"reference"`
	DateOfBirth     string `json:"date_of_birth,omitempty"`
}

// WithdrawalResult is the provider's handle for a created payout.
type WithdrawalResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OpenBankingClient talks to a TrueLayer-style open banking API using the
// client-credentials grant. Tokens are cached in memory until shortly before
// expiry.
type OpenBankingClient struct {
	cfg    OpenBankingConfig
	client *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewOpenBankingClient creates a new instance of OpenBankingClient.
func NewOpenBankingClient(cfg OpenBankingConfig) *OpenBankingClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &OpenBankingClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// accessToken returns a cached token or fetches a fresh one. The 30 second
// margin keeps a token from expiring mid-request.
func (c *OpenBankingClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-30*time.Second)) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"scope":         {"payments"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL+"/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: open banking token request: %v", util.ErrExternalService, err)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := decodeResponse(resp, "open banking auth", &body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: open banking auth returned empty token", util.ErrExternalService)
	}

	c.token = body.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	return c.token, nil
}

func (c *OpenBankingClient) post(ctx context.Context, path string, payload, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, c.cfg.BaseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: open banking request: %v", util.ErrExternalService, err)
	}
	return decodeResponse(resp, "open banking", out)
}

// InitiatePayment creates a pay-in from the user's bank account.
func (c *OpenBankingClient) InitiatePayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	var result PaymentResult
	if err := c.post(ctx, "/v3/payments", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InitiateWithdrawal creates a payout to an external beneficiary account.
func (c *OpenBankingClient) InitiateWithdrawal(ctx context.Context, req WithdrawalRequest) (*WithdrawalResult, error) {
	var result WithdrawalResult
	if err := c.post(ctx, "/v3/payouts", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InitiateDeposit creates a merchant-account deposit.
func (c *OpenBankingClient) InitiateDeposit(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	var result PaymentResult
	if err := c.post(ctx, "/v3/deposits", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
