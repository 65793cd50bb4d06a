package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/period"
)

// AllocateBudgetBody is the request body for allocating budget.
type AllocateBudgetBody struct {
	SubcategoryID string `json:"subcategoryID" required:"true" doc:"Target subcategory UUID"`
	Amount        string `json:"amount" required:"true" doc:"Positive decimal amount to allocate"`
}

// AllocateBudgetInput is the Huma input for allocating budget.
type AllocateBudgetInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated caller UUID"`
	Body   AllocateBudgetBody
}

// AllocateBudgetResponseBody is the response body for allocating budget.
type AllocateBudgetResponseBody struct {
	Subcategory Subcategory `json:"subcategory" doc:"Updated subcategory"`
	ToBudget    string      `json:"toBudget" doc:"Remaining unallocated amount"`
}

// AllocateBudgetOutput is the Huma output for allocating budget.
type AllocateBudgetOutput struct {
	Body AllocateBudgetResponseBody
}

// AllocateBudgetHandler handles POST /v1/budget/allocate.
type AllocateBudgetHandler struct {
	Operator actionRunner
	Periods  period.Resolver
}

// NewAllocateBudgetHandler creates a new AllocateBudgetHandler.
func NewAllocateBudgetHandler(op actionRunner, periods period.Resolver) *AllocateBudgetHandler {
	return &AllocateBudgetHandler{Operator: op, Periods: periods}
}

// Register registers the allocate budget endpoint with the Huma API.
func (h *AllocateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "allocate-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget/allocate",
		Summary:     "Allocate budget",
		Description: "Moves money from the caller's to-budget pool into a subcategory.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *AllocateBudgetHandler) handle(ctx context.Context, input *AllocateBudgetInput) (*AllocateBudgetOutput, error) {
	userID, err := identity.Resolve(input.UserID)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	subcategoryID, err := uuid.FromString(input.Body.SubcategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid subcategoryID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	periodID, err := h.Periods.Current(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to resolve current period", err)
	}

	action := &actions.AllocateBudget{
		UserID:        userID,
		PeriodID:      periodID,
		SubcategoryID: subcategoryID,
		Amount:        amount,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromLedger(err)
	}

	return &AllocateBudgetOutput{
		Body: AllocateBudgetResponseBody{
			Subcategory: subcategoryFromStorage(action.Subcategory),
			ToBudget:    action.Pool.Amount.String(),
		},
	}, nil
}
