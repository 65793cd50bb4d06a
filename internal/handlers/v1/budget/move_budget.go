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
)

// MoveBudgetBody is the request body for moving budget between subcategories.
type MoveBudgetBody struct {
	FromSubcategoryID string `json:"fromSubcategoryID" required:"true" doc:"Source subcategory UUID"`
	ToSubcategoryID   string `json:"toSubcategoryID" required:"true" doc:"Destination subcategory UUID"`
	Amount            string `json:"amount" required:"true" doc:"Positive decimal amount to move"`
}

// MoveBudgetInput is the Huma input for moving budget.
type MoveBudgetInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated caller UUID"`
	Body   MoveBudgetBody
}

// MoveBudgetResponseBody is the response body for moving budget.
type MoveBudgetResponseBody struct {
	From Subcategory `json:"from" doc:"Updated source subcategory"`
	To   Subcategory `json:"to" doc:"Updated destination subcategory"`
}

// MoveBudgetOutput is the Huma output for moving budget.
type MoveBudgetOutput struct {
	Body MoveBudgetResponseBody
}

// MoveBudgetHandler handles POST /v1/budget/move.
type MoveBudgetHandler struct {
	Operator actionRunner
}

// NewMoveBudgetHandler creates a new MoveBudgetHandler.
func NewMoveBudgetHandler(op actionRunner) *MoveBudgetHandler {
	return &MoveBudgetHandler{Operator: op}
}

// Register registers the move budget endpoint with the Huma API.
func (h *MoveBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "move-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget/move",
		Summary:     "Move budget",
		Description: "Moves budgeted money between two subcategories; their combined total is preserved.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *MoveBudgetHandler) handle(ctx context.Context, input *MoveBudgetInput) (*MoveBudgetOutput, error) {
	userID, err := identity.Resolve(input.UserID)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	fromID, err := uuid.FromString(input.Body.FromSubcategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid fromSubcategoryID", err)
	}
	toID, err := uuid.FromString(input.Body.ToSubcategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid toSubcategoryID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	action := &actions.MoveBudget{
		UserID:            userID,
		FromSubcategoryID: fromID,
		ToSubcategoryID:   toID,
		Amount:            amount,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromLedger(err)
	}

	return &MoveBudgetOutput{
		Body: MoveBudgetResponseBody{
			From: subcategoryFromStorage(action.From),
			To:   subcategoryFromStorage(action.To),
		},
	}, nil
}
