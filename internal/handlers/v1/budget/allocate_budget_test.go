package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/period"
	"github.com/carson-networks/ledger-server/internal/storage/budgetpool"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
)

// mockActionRunner is a mock for actionRunner. The Run hook fills in the
// action's result fields the way the operator would after a commit.
type mockActionRunner struct {
	mock.Mock
}

func (m *mockActionRunner) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newAllocateTestAPI(t *testing.T, op actionRunner) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAllocateBudgetHandler(op, period.Static{ID: uuid.Must(uuid.NewV4())}).Register(api)
	return api
}

func TestHTTP_AllocateBudget_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	subcategoryID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionRunner)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		allocate, ok := a.(*actions.AllocateBudget)
		return ok &&
			allocate.UserID == userID &&
			allocate.SubcategoryID == subcategoryID &&
			allocate.Amount.Equal(decimal.RequireFromString("200"))
	})).Run(func(args mock.Arguments) {
		allocate := args.Get(1).(*actions.AllocateBudget)
		allocate.Subcategory = &subcategory.Subcategory{
			ID:       subcategoryID,
			OwnerID:  userID,
			Name:     "Groceries",
			Budgeted: decimal.NewFromInt(200),
			Spent:    decimal.Zero,
		}
		allocate.Pool = &budgetpool.BudgetPool{
			PeriodID: allocate.PeriodID,
			UserID:   userID,
			Amount:   decimal.NewFromInt(300),
		}
	}).Return(nil)

	resp := newAllocateTestAPI(t, mockOp).Post("/v1/budget/allocate",
		"X-User-ID: "+userID.String(),
		AllocateBudgetBody{SubcategoryID: subcategoryID.String(), Amount: "200"},
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AllocateBudgetResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Groceries", body.Subcategory.Name)
	assert.Equal(t, "200", body.Subcategory.Budgeted)
	assert.Equal(t, "300", body.ToBudget)
	mockOp.AssertExpectations(t)
}

func TestHTTP_AllocateBudget_InsufficientPool(t *testing.T) {
	mockOp := new(mockActionRunner)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(ledger.NewInsufficientFundsError("budget pool", decimal.NewFromInt(300), decimal.NewFromInt(400)))

	resp := newAllocateTestAPI(t, mockOp).Post("/v1/budget/allocate",
		"X-User-ID: "+uuid.Must(uuid.NewV4()).String(),
		AllocateBudgetBody{SubcategoryID: uuid.Must(uuid.NewV4()).String(), Amount: "400"},
	)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_AllocateBudget_InvalidAmount(t *testing.T) {
	mockOp := new(mockActionRunner)

	resp := newAllocateTestAPI(t, mockOp).Post("/v1/budget/allocate",
		"X-User-ID: "+uuid.Must(uuid.NewV4()).String(),
		AllocateBudgetBody{SubcategoryID: uuid.Must(uuid.NewV4()).String(), Amount: "not-a-decimal"},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_AllocateBudget_MissingCaller(t *testing.T) {
	mockOp := new(mockActionRunner)

	resp := newAllocateTestAPI(t, mockOp).Post("/v1/budget/allocate",
		AllocateBudgetBody{SubcategoryID: uuid.Must(uuid.NewV4()).String(), Amount: "200"},
	)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
