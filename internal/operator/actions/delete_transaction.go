package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteTransaction removes a transaction and reverses every ledger effect
// recording it had: account balance, the to-budget pool for inflows, and the
// subcategory's spent amount for outflows.
type DeleteTransaction struct {
	UserID        uuid.UUID
	PeriodID      uuid.UUID
	TransactionID uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	trans, err := writer.Transaction.FindByIDForUpdate(ctx, d.TransactionID)
	if err != nil {
		return err
	}
	if trans == nil {
		return ledger.NewNotFoundError("transaction")
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, trans.AccountID)
	if err != nil {
		return err
	}
	if acct == nil {
		return ledger.NewNotFoundError("account")
	}
	if acct.UserID != d.UserID {
		return ledger.NewAuthError("transaction")
	}

	if err = writer.Transaction.Delete(ctx, trans.ID); err != nil {
		return err
	}

	newBalance := acct.Balance.Add(trans.Amount)
	if trans.IsInflow {
		newBalance = acct.Balance.Sub(trans.Amount)

		// The inflow funded the pool when it was recorded; a missing pool row
		// here is a misconfiguration, not something to skip over.
		pool, err := writer.BudgetPool.FindForUpdate(ctx, d.PeriodID, d.UserID)
		if err != nil {
			return err
		}
		if pool == nil {
			return ledger.NewNotFoundError("budget pool")
		}
		err = writer.BudgetPool.UpdateAmount(ctx, d.PeriodID, d.UserID, pool.Amount.Sub(trans.Amount))
		if err != nil {
			return err
		}
	} else if trans.SubcategoryID.Valid {
		sub, err := writer.Subcategory.FindByIDForUpdate(ctx, trans.SubcategoryID.UUID)
		if err != nil {
			return err
		}
		if sub == nil {
			return ledger.NewNotFoundError("subcategory")
		}
		err = writer.Subcategory.UpdateSpent(ctx, sub.ID, sub.Spent.Sub(trans.Amount))
		if err != nil {
			return err
		}
	}

	return writer.Account.UpdateBalance(ctx, acct.ID, newBalance)
}
