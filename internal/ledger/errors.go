package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind classifies a ledger error so the API layer can translate it into a
// status code without inspecting message text.
type Kind int8

const (
	KindValidation Kind = iota
	KindAuth
	KindNotFound
	KindInsufficientFunds
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// Error is the only error type the ledger operations return. Entity names the
// offending entity ("account", "subcategory", "budget pool", "transaction")
// and Field the offending input field, whichever applies.
type Error struct {
	Kind   Kind
	Entity string
	Field  string
	msg    string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewValidationError(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, msg: msg}
}

func NewAuthError(entity string) *Error {
	return &Error{Kind: KindAuth, Entity: entity, msg: entity + " is not owned by the caller"}
}

func NewNotFoundError(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, msg: entity + " not found"}
}

func NewInsufficientFundsError(entity string, available, requested decimal.Decimal) *Error {
	return &Error{
		Kind:   KindInsufficientFunds,
		Entity: entity,
		msg:    fmt.Sprintf("requested %s exceeds available %s", requested, available),
	}
}

// NewConflictError wraps a storage-transaction abort. Safe for the caller to
// retry the whole operation.
func NewConflictError(cause error) *Error {
	return &Error{Kind: KindConflict, msg: "storage transaction aborted", cause: cause}
}

// IsKind reports whether err is a ledger Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ledgerErr *Error
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Kind == kind
	}
	return false
}
