package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Payee and description recorded on the synthetic opening-balance inflow.
const startingBalancePayee = "Starting Balance"

// CreateAccount creates an account with an opening balance. A positive
// opening balance also records a synthetic inflow transaction and funds the
// caller's to-budget pool for the current period.
type CreateAccount struct {
	UserID         uuid.UUID
	PeriodID       uuid.UUID
	Name           string
	OpeningBalance decimal.Decimal

	// Created is set on success.
	Created *account.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ledger.ValidateCreateAccount(c.Name, c.OpeningBalance); err != nil {
		return err
	}

	created, err := writer.Account.Create(ctx, &account.AccountCreate{
		UserID:  c.UserID,
		Name:    c.Name,
		Balance: c.OpeningBalance,
	})
	if err != nil {
		return err
	}

	if c.OpeningBalance.IsPositive() {
		_, err = writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
			AccountID:       created.ID,
			Amount:          c.OpeningBalance,
			IsInflow:        true,
			Payee:           startingBalancePayee,
			Description:     startingBalancePayee,
			TransactionDate: time.Now(),
		})
		if err != nil {
			return err
		}

		_, err = writer.BudgetPool.AddToPool(ctx, c.PeriodID, c.UserID, c.OpeningBalance)
		if err != nil {
			return err
		}
	}

	c.Created = created
	return nil
}
