// Package gateway holds the thin HTTP adapters for the external payment and
// banking providers. Every adapter maps provider failures onto
// util.ErrExternalService and never retries; retry policy belongs to callers.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"peertrade/internal/util"
)

const defaultMaxErrorBody = 4 << 10

// decodeResponse consumes resp, mapping any non-2xx status to
// ErrExternalService with the provider's payload attached, and unmarshals a
// successful body into out when out is non-nil.
func decodeResponse(resp *http.Response, provider string, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, defaultMaxErrorBody))
		return fmt.Errorf("%w: %s returned %d: %s", util.ErrExternalService, provider, resp.StatusCode, bytes.TrimSpace(body))
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", util.ErrExternalService, provider, err)
	}
	return nil
}

// newJSONRequest builds a request with a JSON-encoded body when payload is
// non-nil.
func newJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
