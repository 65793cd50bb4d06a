package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/ledger"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	return statusErr.GetStatus()
}

func TestFromLedger(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", ledger.NewValidationError("amount", "amount must be greater than zero"), http.StatusBadRequest},
		{"auth on entity", ledger.NewAuthError("account"), http.StatusForbidden},
		{"auth on caller", ledger.NewAuthError(identity.CallerEntity), http.StatusUnauthorized},
		{"not found", ledger.NewNotFoundError("subcategory"), http.StatusNotFound},
		{"insufficient funds", ledger.NewInsufficientFundsError("budget pool", decimal.NewFromInt(300), decimal.NewFromInt(400)), http.StatusUnprocessableEntity},
		{"conflict", ledger.NewConflictError(errors.New("commit failed")), http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStatus, statusOf(t, FromLedger(tc.err)))
		})
	}
}
