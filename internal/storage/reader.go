package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budgetpool"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type Reader struct {
	Accounts      *account.Reader
	Subcategories *subcategory.Reader
	BudgetPools   *budgetpool.Reader
	Transactions  *transaction.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:      account.NewReader(exec),
		Subcategories: subcategory.NewReader(exec),
		BudgetPools:   budgetpool.NewReader(exec),
		Transactions:  transaction.NewReader(exec),
	}
}
