package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/budgetpool"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
)

// AllocateBudget moves money from the caller's to-budget pool into a
// subcategory's budgeted amount. Allocating more than the pool holds fails
// loudly; the amount is never clamped.
type AllocateBudget struct {
	UserID        uuid.UUID
	PeriodID      uuid.UUID
	SubcategoryID uuid.UUID
	Amount        decimal.Decimal

	// Subcategory and Pool are set to the updated rows on success.
	Subcategory *subcategory.Subcategory
	Pool        *budgetpool.BudgetPool
}

func (a *AllocateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ledger.ValidateAllocateBudget(a.Amount); err != nil {
		return err
	}

	sub, err := writer.Subcategory.FindByIDForUpdate(ctx, a.SubcategoryID)
	if err != nil {
		return err
	}
	if sub == nil {
		return ledger.NewNotFoundError("subcategory")
	}
	if sub.OwnerID != a.UserID {
		return ledger.NewAuthError("subcategory")
	}

	pool, err := writer.BudgetPool.FindForUpdate(ctx, a.PeriodID, a.UserID)
	if err != nil {
		return err
	}
	if pool == nil {
		return ledger.NewNotFoundError("budget pool")
	}

	if a.Amount.GreaterThan(pool.Amount) {
		return ledger.NewInsufficientFundsError("budget pool", pool.Amount, a.Amount)
	}

	sub.Budgeted = sub.Budgeted.Add(a.Amount)
	if err = writer.Subcategory.UpdateBudgeted(ctx, sub.ID, sub.Budgeted); err != nil {
		return err
	}

	pool.Amount = pool.Amount.Sub(a.Amount)
	if err = writer.BudgetPool.UpdateAmount(ctx, a.PeriodID, a.UserID, pool.Amount); err != nil {
		return err
	}

	a.Subcategory = sub
	a.Pool = pool
	return nil
}
