package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents an immutable money movement. Amount is always the
// positive magnitude; IsInflow carries the direction. SubcategoryID is set
// for outflows only.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	AccountID       uuid.UUID       `db:"account_id"`
	SubcategoryID   uuid.NullUUID   `db:"subcategory_id"`
	Amount          decimal.Decimal `db:"amount"`
	IsInflow        bool            `db:"is_inflow"`
	Payee           string          `db:"payee"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	AccountID       uuid.UUID
	SubcategoryID   uuid.NullUUID
	Amount          decimal.Decimal
	IsInflow        bool
	Payee           string
	Description     string
	TransactionDate time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	AccountID       *uuid.UUID
	SubcategoryID   *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionListResult contains a page of transactions and an optional next cursor.
type TransactionListResult struct {
	Transactions []*Transaction
	NextCursor   *TransactionCursor
}

// ITransactionWriter defines the transactional operations the ledger actions
// depend on.
//
//go:generate mockery --name ITransactionWriter --output mock_ITransactionWriter.go
type ITransactionWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
