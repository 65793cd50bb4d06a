package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
)

// mockTransactionLister is a mock for transactionLister.
type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, userID, accountID uuid.UUID, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, userID, accountID, cursor)
	var transactions []service.Transaction
	if args.Get(0) != nil {
		transactions = args.Get(0).([]service.Transaction)
	}
	var nextCursor *service.TransactionCursor
	if args.Get(1) != nil {
		nextCursor = args.Get(1).(*service.TransactionCursor)
	}
	return transactions, nextCursor, args.Error(2)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	maxCreationTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, accountID, mock.MatchedBy(func(c *service.TransactionCursor) bool {
		return c != nil && c.Limit == 2 && c.Position == 0
	})).Return([]service.Transaction{
		{ID: uuid.Must(uuid.NewV4()), AccountID: accountID, Amount: decimal.NewFromInt(50), Payee: "Grocer"},
		{ID: uuid.Must(uuid.NewV4()), AccountID: accountID, Amount: decimal.NewFromInt(20), Payee: "Cafe"},
	}, &service.TransactionCursor{Position: 2, Limit: 2, MaxCreationTime: maxCreationTime}, nil)

	resp := newListTestAPI(t, mockSvc).Get(
		fmt.Sprintf("/v1/transactions?accountID=%s&limit=2", accountID),
		"X-User-ID: "+userID.String(),
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.Equal(t, "Grocer", body.Transactions[0].Payee)
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, 2, body.NextCursor.Position)
	assert.Equal(t, maxCreationTime.Format(time.RFC3339), body.NextCursor.MaxCreationTime)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_CursorCarriesMaxCreationTime(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	maxCreationTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, accountID, mock.MatchedBy(func(c *service.TransactionCursor) bool {
		return c != nil && c.Position == 2 && c.MaxCreationTime.Equal(maxCreationTime)
	})).Return(nil, nil, nil)

	resp := newListTestAPI(t, mockSvc).Get(
		fmt.Sprintf("/v1/transactions?accountID=%s&limit=2&position=2&maxCreationTime=%s",
			accountID, maxCreationTime.Format(time.RFC3339)),
		"X-User-ID: "+userID.String(),
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?accountID=not-a-uuid",
		"X-User-ID: "+uuid.Must(uuid.NewV4()).String(),
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

func TestHTTP_ListTransactions_ForeignAccount(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, ledger.NewAuthError("account"))

	resp := newListTestAPI(t, mockSvc).Get(
		"/v1/transactions?accountID="+uuid.Must(uuid.NewV4()).String(),
		"X-User-ID: "+uuid.Must(uuid.NewV4()).String(),
	)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	mockSvc.AssertExpectations(t)
}
