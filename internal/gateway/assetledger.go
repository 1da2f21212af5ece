// internal/gateway/assetledger.go
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"peertrade/internal/util"

	"github.com/shopspring/decimal"
)

// AssetLedgerConfig carries the bridge endpoint for the asset ledger network.
type AssetLedgerConfig struct {
	BridgeURL string
	Timeout   time.Duration
}

// TransferReceipt is the ledger network's confirmation of a submitted
// transfer.
type TransferReceipt struct {
	Hash   string `json:"hash"`
	Ledger int64  `json:"ledger"`
	Status string `json:"status"`
}

// AssetLedgerClient submits transfers to a distributed asset ledger through
// its HTTP bridge.
type AssetLedgerClient struct {
	cfg    AssetLedgerConfig
	client *http.Client
}

// NewAssetLedgerClient creates a new instance of AssetLedgerClient.
func NewAssetLedgerClient(cfg AssetLedgerConfig) *AssetLedgerClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &AssetLedgerClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// SubmitTransfer moves amount from the source account to the destination
// account on the ledger network.
func (c *AssetLedgerClient) SubmitTransfer(ctx context.Context, source, destination string, amount decimal.Decimal) (*TransferReceipt, error) {
	payload := map[string]any{
		"source":      source,
		"destination": destination,
		"amount":      amount.String(),
	}
	req, err := newJSONRequest(ctx, http.MethodPost, c.cfg.BridgeURL+"/transfer", payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: asset ledger request: %v", util.ErrExternalService, err)
	}

	var receipt TransferReceipt
	if err := decodeResponse(resp, "asset ledger", &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
