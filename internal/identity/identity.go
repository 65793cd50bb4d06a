// Package identity resolves the calling user. Authentication happens
// upstream; by the time a request reaches this server the trusted proxy has
// stamped the caller's id on the X-User-ID header.
package identity

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Header carries the authenticated caller's id.
const Header = "X-User-ID"

// CallerEntity is the entity name used on auth errors for an absent or
// malformed caller id, so the API layer can answer 401 instead of 403.
const CallerEntity = "caller"

// Resolve parses the caller id from the header value.
func Resolve(headerValue string) (uuid.UUID, error) {
	if headerValue == "" {
		return uuid.Nil, ledger.NewAuthError(CallerEntity)
	}
	userID, err := uuid.FromString(headerValue)
	if err != nil {
		return uuid.Nil, ledger.NewAuthError(CallerEntity)
	}
	return userID, nil
}
