// internal/api/handler/respond_test.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"peertrade/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"InvalidInput", util.ErrInvalidInput, http.StatusBadRequest},
		{"InvalidAmount", util.ErrInvalidAmount, http.StatusBadRequest},
		{"AmountExceedsAvailable", util.ErrAmountExceedsAvailable, http.StatusBadRequest},
		{"InsufficientFunds", util.ErrInsufficientFunds, http.StatusBadRequest},
		{"NotFound", util.ErrNotFound, http.StatusNotFound},
		{"WalletNotFound", util.ErrWalletNotFound, http.StatusNotFound},
		{"UserNotFound", util.ErrUserNotFound, http.StatusNotFound},
		{"DuplicateEntry", util.ErrDuplicateEntry, http.StatusConflict},
		{"Unauthorized", util.ErrUnauthorized, http.StatusUnauthorized},
		{"ExternalService", util.ErrExternalService, http.StatusBadGateway},
		{"Unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondWithError(rec, slog.Default(), tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestRespondWithErrorWrappedSentinel(t *testing.T) {
	// Services wrap sentinels with fmt.Errorf("%w: ...") detail. The mapping
	// has to see through the wrapping.
	err := fmt.Errorf("%w: trade TRD1A2B3C", util.ErrAmountExceedsAvailable)

	rec := httptest.NewRecorder()
	respondWithError(rec, slog.Default(), err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
