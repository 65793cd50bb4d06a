package budgetpool

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BudgetPool is the per-(period, user) pool of funds received but not yet
// assigned to a subcategory ("to budget").
type BudgetPool struct {
	PeriodID uuid.UUID       `db:"period_id"`
	UserID   uuid.UUID       `db:"user_id"`
	Amount   decimal.Decimal `db:"amount"`
}

// IBudgetPoolWriter defines the transactional pool operations the ledger
// actions depend on.
//
//go:generate mockery --name IBudgetPoolWriter --output mock_IBudgetPoolWriter.go
type IBudgetPoolWriter interface {
	FindForUpdate(ctx context.Context, periodID, userID uuid.UUID) (*BudgetPool, error)
	AddToPool(ctx context.Context, periodID, userID uuid.UUID, amount decimal.Decimal) (*BudgetPool, error)
	UpdateAmount(ctx context.Context, periodID, userID uuid.UUID, amount decimal.Decimal) error
}
