package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID  uuid.UUID
	Name    string
	Balance decimal.Decimal
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// IAccountWriter defines the transactional account operations the ledger
// actions depend on. This abstraction allows swapping the implementation
// without changing callers.
//
//go:generate mockery --name IAccountWriter --output mock_IAccountWriter.go
type IAccountWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	Create(ctx context.Context, create *AccountCreate) (*Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
