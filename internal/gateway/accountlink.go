// internal/gateway/accountlink.go
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"peertrade/internal/util"
)

// AccountLinkConfig carries the credentials for the account aggregation
// provider.
type AccountLinkConfig struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

// LinkedAccount is a bank account connected through the aggregation provider.
type LinkedAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Currency      string `json:"currency"`
	BalanceMinor  int64  `json:"balance"`
	Institution   string `json:"institution,omitempty"`
}

// AccountLinkClient talks to a Mono-style account aggregation API.
type AccountLinkClient struct {
	cfg    AccountLinkConfig
	client *http.Client
}

// NewAccountLinkClient creates a new instance of AccountLinkClient.
func NewAccountLinkClient(cfg AccountLinkConfig) *AccountLinkClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &AccountLinkClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *AccountLinkClient) do(req *http.Request, out any) error {
	req.Header.Set("mono-sec-key", c.cfg.SecretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: account link request: %v", util.ErrExternalService, err)
	}
	return decodeResponse(resp, "account link", out)
}

// ExchangeToken trades the widget's one-time code for a durable provider
// account id.
func (c *AccountLinkClient) ExchangeToken(ctx context.Context, code string) (string, error) {
	payload := map[string]string{"code": code}
	req, err := newJSONRequest(ctx, http.MethodPost, c.cfg.BaseURL+"/account/auth", payload)
	if err != nil {
		return "", err
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := c.do(req, &body); err != nil {
		return "", err
	}
	if body.ID == "" {
		return "", fmt.Errorf("%w: account link returned empty account id", util.ErrExternalService)
	}
	return body.ID, nil
}

// GetAccount fetches the details of a previously linked account.
func (c *AccountLinkClient) GetAccount(ctx context.Context, id string) (*LinkedAccount, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/accounts/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var account LinkedAccount
	if err := c.do(req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
