package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budgetpool"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func TestDeleteInflowReversesBalanceAndPool(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	periodID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	transID := uuid.Must(uuid.NewV4())

	w := newTestWriter()
	w.transactions.On("FindByIDForUpdate", mock.Anything, transID).Return(&transaction.Transaction{
		ID:        transID,
		AccountID: accountID,
		Amount:    decimal.NewFromInt(100),
		IsInflow:  true,
	}, nil)
	w.accounts.On("FindByIDForUpdate", mock.Anything, accountID).Return(&account.Account{
		ID:      accountID,
		UserID:  userID,
		Balance: decimal.NewFromInt(550),
	}, nil)
	w.transactions.On("Delete", mock.Anything, transID).Return(nil)
	w.pools.On("FindForUpdate", mock.Anything, periodID, userID).Return(&budgetpool.BudgetPool{
		PeriodID: periodID,
		UserID:   userID,
		Amount:   decimal.NewFromInt(600),
	}, nil)
	w.pools.On("UpdateAmount", mock.Anything, periodID, userID, decEq(decimal.NewFromInt(500))).Return(nil)
	w.accounts.On("UpdateBalance", mock.Anything, accountID, decEq(decimal.NewFromInt(450))).Return(nil)

	action := &DeleteTransaction{
		UserID:        userID,
		PeriodID:      periodID,
		TransactionID: transID,
	}
	err := action.Perform(context.Background(), w.writer)

	require.NoError(t, err)
	w.subcategories.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
	w.assertExpectations(t)
}

func TestDeleteOutflowRestoresBalanceAndSpent(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	subID := uuid.Must(uuid.NewV4())
	transID := uuid.Must(uuid.NewV4())

	w := newTestWriter()
	w.transactions.On("FindByIDForUpdate", mock.Anything, transID).Return(&transaction.Transaction{
		ID:            transID,
		AccountID:     accountID,
		SubcategoryID: uuid.NullUUID{UUID: subID, Valid: true},
		Amount:        decimal.NewFromInt(50),
	}, nil)
	w.accounts.On("FindByIDForUpdate", mock.Anything, accountID).Return(&account.Account{
		ID:      accountID,
		UserID:  userID,
		Balance: decimal.NewFromInt(450),
	}, nil)
	w.transactions.On("Delete", mock.Anything, transID).Return(nil)
	w.subcategories.On("FindByIDForUpdate", mock.Anything, subID).Return(&subcategory.Subcategory{
		ID:    subID,
		Spent: decimal.NewFromInt(50),
	}, nil)
	w.subcategories.On("UpdateSpent", mock.Anything, subID, decEq(decimal.Zero)).Return(nil)
	w.accounts.On("UpdateBalance", mock.Anything, accountID, decEq(decimal.NewFromInt(500))).Return(nil)

	action := &DeleteTransaction{
		UserID:        userID,
		PeriodID:      uuid.Must(uuid.NewV4()),
		TransactionID: transID,
	}
	err := action.Perform(context.Background(), w.writer)

	require.NoError(t, err)
	w.pools.AssertNotCalled(t, "FindForUpdate", mock.Anything, mock.Anything, mock.Anything)
	w.assertExpectations(t)
}

func TestDeleteInflowMissingPoolFailsLoudly(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	transID := uuid.Must(uuid.NewV4())

	w := newTestWriter()
	w.transactions.On("FindByIDForUpdate", mock.Anything, transID).Return(&transaction.Transaction{
		ID:        transID,
		AccountID: accountID,
		Amount:    decimal.NewFromInt(100),
		IsInflow:  true,
	}, nil)
	w.accounts.On("FindByIDForUpdate", mock.Anything, accountID).Return(&account.Account{
		ID:      accountID,
		UserID:  userID,
		Balance: decimal.NewFromInt(100),
	}, nil)
	w.transactions.On("Delete", mock.Anything, transID).Return(nil)
	w.pools.On("FindForUpdate", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	action := &DeleteTransaction{
		UserID:        userID,
		PeriodID:      uuid.Must(uuid.NewV4()),
		TransactionID: transID,
	}
	err := action.Perform(context.Background(), w.writer)

	require.Error(t, err)
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))
	w.accounts.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	w := newTestWriter()
	w.transactions.On("FindByIDForUpdate", mock.Anything, mock.Anything).Return(nil, nil)

	action := &DeleteTransaction{
		UserID:        uuid.Must(uuid.NewV4()),
		TransactionID: uuid.Must(uuid.NewV4()),
	}
	err := action.Perform(context.Background(), w.writer)

	require.Error(t, err)
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))
	w.transactions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteForeignTransactionRejected(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	transID := uuid.Must(uuid.NewV4())

	w := newTestWriter()
	w.transactions.On("FindByIDForUpdate", mock.Anything, transID).Return(&transaction.Transaction{
		ID:        transID,
		AccountID: accountID,
		Amount:    decimal.NewFromInt(25),
	}, nil)
	w.accounts.On("FindByIDForUpdate", mock.Anything, accountID).Return(&account.Account{
		ID:     accountID,
		UserID: uuid.Must(uuid.NewV4()),
	}, nil)

	action := &DeleteTransaction{
		UserID:        uuid.Must(uuid.NewV4()),
		TransactionID: transID,
	}
	err := action.Perform(context.Background(), w.writer)

	require.Error(t, err)
	assert.True(t, ledger.IsKind(err, ledger.KindAuth))
	w.transactions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
