package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budgetpool"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Hand-written mocks for the per-entity writer interfaces so each action can
// be exercised without a database.

type mockAccountWriter struct {
	mock.Mock
}

func (m *mockAccountWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountWriter) Create(ctx context.Context, create *account.AccountCreate) (*account.Account, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountWriter) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

type mockSubcategoryWriter struct {
	mock.Mock
}

func (m *mockSubcategoryWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*subcategory.Subcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subcategory.Subcategory), args.Error(1)
}

func (m *mockSubcategoryWriter) UpdateBudgeted(ctx context.Context, id uuid.UUID, budgeted decimal.Decimal) error {
	args := m.Called(ctx, id, budgeted)
	return args.Error(0)
}

func (m *mockSubcategoryWriter) UpdateSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error {
	args := m.Called(ctx, id, spent)
	return args.Error(0)
}

type mockBudgetPoolWriter struct {
	mock.Mock
}

func (m *mockBudgetPoolWriter) FindForUpdate(ctx context.Context, periodID, userID uuid.UUID) (*budgetpool.BudgetPool, error) {
	args := m.Called(ctx, periodID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgetpool.BudgetPool), args.Error(1)
}

func (m *mockBudgetPoolWriter) AddToPool(ctx context.Context, periodID, userID uuid.UUID, amount decimal.Decimal) (*budgetpool.BudgetPool, error) {
	args := m.Called(ctx, periodID, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budgetpool.BudgetPool), args.Error(1)
}

func (m *mockBudgetPoolWriter) UpdateAmount(ctx context.Context, periodID, userID uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, periodID, userID, amount)
	return args.Error(0)
}

type mockTransactionWriter struct {
	mock.Mock
}

func (m *mockTransactionWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testWriter struct {
	writer        *storage.Writer
	accounts      *mockAccountWriter
	subcategories *mockSubcategoryWriter
	pools         *mockBudgetPoolWriter
	transactions  *mockTransactionWriter
}

func newTestWriter() *testWriter {
	accounts := &mockAccountWriter{}
	subcategories := &mockSubcategoryWriter{}
	pools := &mockBudgetPoolWriter{}
	transactions := &mockTransactionWriter{}
	return &testWriter{
		writer: &storage.Writer{
			Account:     accounts,
			Subcategory: subcategories,
			BudgetPool:  pools,
			Transaction: transactions,
		},
		accounts:      accounts,
		subcategories: subcategories,
		pools:         pools,
		transactions:  transactions,
	}
}

func (w *testWriter) assertExpectations(t mock.TestingT) {
	w.accounts.AssertExpectations(t)
	w.subcategories.AssertExpectations(t)
	w.pools.AssertExpectations(t)
	w.transactions.AssertExpectations(t)
}

// decEq matches a decimal argument by value rather than by representation.
func decEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}
