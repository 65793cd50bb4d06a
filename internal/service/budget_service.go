package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/period"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/budgetpool"
)

// budgetPoolReader is the slice of the storage reader BudgetService depends on.
type budgetPoolReader interface {
	Find(ctx context.Context, periodID, userID uuid.UUID) (*budgetpool.BudgetPool, error)
}

// BudgetService handles the budget read path.
type BudgetService struct {
	pools   budgetPoolReader
	periods period.Resolver
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(reader *storage.Reader, periods period.Resolver) *BudgetService {
	return &BudgetService{pools: reader.BudgetPools, periods: periods}
}

// ToBudget returns the caller's unallocated amount for the current period.
// A user with no pool row yet simply has nothing to budget.
func (s *BudgetService) ToBudget(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	periodID, err := s.periods.Current(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	pool, err := s.pools.Find(ctx, periodID, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if pool == nil {
		return decimal.Zero, nil
	}
	return pool.Amount, nil
}

var _ budgetPoolReader = (*budgetpool.Reader)(nil)
