package subcategory

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Subcategory represents a spending bucket inside a category. OwnerID is the
// owning user resolved through the parent category, so callers can check
// ownership without a second lookup.
type Subcategory struct {
	ID         uuid.UUID       `db:"id"`
	CategoryID uuid.UUID       `db:"category_id"`
	OwnerID    uuid.UUID       `db:"user_id"`
	Name       string          `db:"name"`
	Budgeted   decimal.Decimal `db:"budgeted"`
	Spent      decimal.Decimal `db:"spent"`
}

// ISubcategoryWriter defines the transactional subcategory operations the
// ledger actions depend on.
//
//go:generate mockery --name ISubcategoryWriter --output mock_ISubcategoryWriter.go
type ISubcategoryWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Subcategory, error)
	UpdateBudgeted(ctx context.Context, id uuid.UUID, budgeted decimal.Decimal) error
	UpdateSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error
}
