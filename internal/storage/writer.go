package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budgetpool"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Writer bundles the per-entity writers scoped to one storage transaction.
// The fields are interfaces so ledger actions can be tested against mocks.
type Writer struct {
	tx          bob.Tx
	Account     account.IAccountWriter
	Subcategory subcategory.ISubcategoryWriter
	BudgetPool  budgetpool.IBudgetPoolWriter
	Transaction transaction.ITransactionWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Account:     account.NewWriter(tx),
		Subcategory: subcategory.NewWriter(tx),
		BudgetPool:  budgetpool.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
