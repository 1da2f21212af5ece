// internal/gateway/cardprocessor.go
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"peertrade/internal/util"
)

// CardProcessorConfig carries the credentials for the card payment provider.
type CardProcessorConfig struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

// ChargeAuthorization is the provider's handle for a newly initialized card
// charge. The user completes payment at AuthorizationURL.
type ChargeAuthorization struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
}

// ChargeStatus is the verified state of a previously initialized charge.
type ChargeStatus struct {
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
	PaidAt      string `json:"paid_at,omitempty"`
}

// CardProcessorClient talks to a Paystack-style card payment API.
type CardProcessorClient struct {
	cfg    CardProcessorConfig
	client *http.Client
}

// NewCardProcessorClient creates a new instance of CardProcessorClient.
func NewCardProcessorClient(cfg CardProcessorConfig) *CardProcessorClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &CardProcessorClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *CardProcessorClient) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: card processor request: %v", util.ErrExternalService, err)
	}

	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := decodeResponse(resp, "card processor", &envelope); err != nil {
		return err
	}
	if !envelope.Status {
		return fmt.Errorf("%w: card processor: %s", util.ErrExternalService, envelope.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: decoding card processor payload: %v", util.ErrExternalService, err)
	}
	return nil
}

// InitializeCharge starts a card charge for the given amount in minor units.
func (c *CardProcessorClient) InitializeCharge(ctx context.Context, amountMinor int64, email string) (*ChargeAuthorization, error) {
	payload := map[string]any{
		"amount": amountMinor,
		"email":  email,
	}
	req, err := newJSONRequest(ctx, http.MethodPost, c.cfg.BaseURL+"/transaction/initialize", payload)
	if err != nil {
		return nil, err
	}

	var auth ChargeAuthorization
	if err := c.do(req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// VerifyCharge fetches the settled state of a charge by its reference.
func (c *CardProcessorClient) VerifyCharge(ctx context.Context, reference string) (*ChargeStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/transaction/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}

	var status ChargeStatus
	if err := c.do(req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
