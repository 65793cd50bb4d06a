// Package apierror translates ledger error kinds into HTTP errors. The
// ledger itself never knows about status codes.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/ledger"
)

// FromLedger maps a ledger error to a huma status error. Unknown errors map
// to 500 with a generic message.
func FromLedger(err error) error {
	var ledgerErr *ledger.Error
	if !errors.As(err, &ledgerErr) {
		return huma.NewError(http.StatusInternalServerError, "operation failed", err)
	}

	switch ledgerErr.Kind {
	case ledger.KindValidation:
		return huma.NewError(http.StatusBadRequest, ledgerErr.Error())
	case ledger.KindAuth:
		if ledgerErr.Entity == identity.CallerEntity {
			return huma.NewError(http.StatusUnauthorized, ledgerErr.Error())
		}
		return huma.NewError(http.StatusForbidden, ledgerErr.Error())
	case ledger.KindNotFound:
		return huma.NewError(http.StatusNotFound, ledgerErr.Error())
	case ledger.KindInsufficientFunds:
		return huma.NewError(http.StatusUnprocessableEntity, ledgerErr.Error())
	case ledger.KindConflict:
		return huma.NewError(http.StatusConflict, ledgerErr.Error())
	}

	return huma.NewError(http.StatusInternalServerError, "operation failed", err)
}
