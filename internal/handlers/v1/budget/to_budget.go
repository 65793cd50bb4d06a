package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
)

// ToBudgetInput is the Huma input for fetching the unallocated amount.
type ToBudgetInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated caller UUID"`
}

// ToBudgetResponseBody is the response body for the unallocated amount.
type ToBudgetResponseBody struct {
	ToBudget string `json:"toBudget" doc:"Unallocated amount for the current period"`
}

// ToBudgetOutput is the Huma output for the unallocated amount.
type ToBudgetOutput struct {
	Body ToBudgetResponseBody
}

// toBudgetReader is the interface for reading the unallocated amount.
type toBudgetReader interface {
	ToBudget(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// ToBudgetHandler handles GET /v1/budget/to-budget.
type ToBudgetHandler struct {
	BudgetService toBudgetReader
}

// NewToBudgetHandler creates a new ToBudgetHandler.
func NewToBudgetHandler(svc toBudgetReader) *ToBudgetHandler {
	return &ToBudgetHandler{BudgetService: svc}
}

// Register registers the to-budget endpoint with the Huma API.
func (h *ToBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "to-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget/to-budget",
		Summary:     "Get unallocated amount",
		Description: "Returns the caller's to-budget pool amount for the current period.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *ToBudgetHandler) handle(ctx context.Context, input *ToBudgetInput) (*ToBudgetOutput, error) {
	userID, err := identity.Resolve(input.UserID)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	amount, err := h.BudgetService.ToBudget(ctx, userID)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	return &ToBudgetOutput{
		Body: ToBudgetResponseBody{ToBudget: amount.String()},
	}, nil
}
