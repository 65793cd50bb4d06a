package actions

import (
	"bytes"
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
)

// MoveBudget shifts budgeted money between two subcategories owned by the
// caller. The sum of the two budgeted amounts is preserved and the pool is
// not touched.
type MoveBudget struct {
	UserID            uuid.UUID
	FromSubcategoryID uuid.UUID
	ToSubcategoryID   uuid.UUID
	Amount            decimal.Decimal

	// From and To are set to the updated rows on success.
	From *subcategory.Subcategory
	To   *subcategory.Subcategory
}

func (m *MoveBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ledger.ValidateMoveBudget(m.FromSubcategoryID, m.ToSubcategoryID, m.Amount); err != nil {
		return err
	}

	// Lock the two rows in id order so two opposite moves cannot deadlock.
	firstID, secondID := m.FromSubcategoryID, m.ToSubcategoryID
	if bytes.Compare(secondID.Bytes(), firstID.Bytes()) < 0 {
		firstID, secondID = secondID, firstID
	}

	first, err := writer.Subcategory.FindByIDForUpdate(ctx, firstID)
	if err != nil {
		return err
	}
	second, err := writer.Subcategory.FindByIDForUpdate(ctx, secondID)
	if err != nil {
		return err
	}

	from, to := first, second
	if firstID != m.FromSubcategoryID {
		from, to = second, first
	}

	if from == nil || to == nil {
		return ledger.NewNotFoundError("subcategory")
	}
	if from.OwnerID != m.UserID || to.OwnerID != m.UserID {
		return ledger.NewAuthError("subcategory")
	}

	if m.Amount.GreaterThan(from.Budgeted) {
		return ledger.NewInsufficientFundsError("subcategory", from.Budgeted, m.Amount)
	}

	from.Budgeted = from.Budgeted.Sub(m.Amount)
	if err = writer.Subcategory.UpdateBudgeted(ctx, from.ID, from.Budgeted); err != nil {
		return err
	}

	to.Budgeted = to.Budgeted.Add(m.Amount)
	if err = writer.Subcategory.UpdateBudgeted(ctx, to.ID, to.Budgeted); err != nil {
		return err
	}

	m.From = from
	m.To = to
	return nil
}
