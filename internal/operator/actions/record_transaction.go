package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// RecordTransaction records a money movement against an account. Outflows
// additionally bump the target subcategory's spent amount; inflows fund the
// caller's to-budget pool.
type RecordTransaction struct {
	UserID          uuid.UUID
	PeriodID        uuid.UUID
	AccountID       uuid.UUID
	SubcategoryID   uuid.NullUUID
	Amount          decimal.Decimal
	IsInflow        bool
	Payee           string
	Description     string
	TransactionDate time.Time

	// Created and, for outflows, Subcategory are set on success.
	Created     *transaction.Transaction
	Subcategory *subcategory.Subcategory
}

func (r *RecordTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ledger.ValidateRecordTransaction(r.Amount, r.IsInflow, r.Payee, r.SubcategoryID); err != nil {
		return err
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, r.AccountID)
	if err != nil {
		return err
	}
	if acct == nil {
		return ledger.NewNotFoundError("account")
	}
	if acct.UserID != r.UserID {
		return ledger.NewAuthError("account")
	}

	var sub *subcategory.Subcategory
	if !r.IsInflow {
		sub, err = writer.Subcategory.FindByIDForUpdate(ctx, r.SubcategoryID.UUID)
		if err != nil {
			return err
		}
		if sub == nil {
			return ledger.NewNotFoundError("subcategory")
		}
		if sub.OwnerID != r.UserID {
			return ledger.NewAuthError("subcategory")
		}
	}

	created, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		AccountID:       r.AccountID,
		SubcategoryID:   r.SubcategoryID,
		Amount:          r.Amount,
		IsInflow:        r.IsInflow,
		Payee:           r.Payee,
		Description:     r.Description,
		TransactionDate: r.TransactionDate,
	})
	if err != nil {
		return err
	}

	if !r.IsInflow {
		sub.Spent = sub.Spent.Add(r.Amount)
		if err = writer.Subcategory.UpdateSpent(ctx, sub.ID, sub.Spent); err != nil {
			return err
		}
	}

	newBalance := acct.Balance.Sub(r.Amount)
	if r.IsInflow {
		newBalance = acct.Balance.Add(r.Amount)
	}
	if err = writer.Account.UpdateBalance(ctx, r.AccountID, newBalance); err != nil {
		return err
	}

	if r.IsInflow {
		if _, err = writer.BudgetPool.AddToPool(ctx, r.PeriodID, r.UserID, r.Amount); err != nil {
			return err
		}
	}

	r.Created = created
	r.Subcategory = sub
	return nil
}
