package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/period"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name           string `json:"name" minLength:"1" maxLength:"255" doc:"Account name"`
	OpeningBalance string `json:"openingBalance,omitempty" doc:"Opening balance (e.g. '0' or '1234.56'), defaults to 0"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated caller UUID"`
	Body   CreateAccountBody
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// actionRunner enqueues a ledger action and waits for its outcome.
type actionRunner interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionRunner
	Periods  period.Resolver
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionRunner, periods period.Resolver) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op, Periods: periods}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates an account with an opening balance. A positive opening balance records a synthetic Starting Balance inflow and funds the to-budget pool.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := identity.Resolve(input.UserID)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	openingBalanceStr := input.Body.OpeningBalance
	if openingBalanceStr == "" {
		openingBalanceStr = "0"
	}
	openingBalance, err := decimal.NewFromString(openingBalanceStr)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid openingBalance", err)
	}

	periodID, err := h.Periods.Current(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to resolve current period", err)
	}

	action := &actions.CreateAccount{
		UserID:         userID,
		PeriodID:       periodID,
		Name:           input.Body.Name,
		OpeningBalance: openingBalance,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromLedger(err)
	}

	if logData != nil {
		logData.AddData("accountID", action.Created.ID.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body: Account{
			ID:        action.Created.ID.String(),
			Name:      action.Created.Name,
			Balance:   action.Created.Balance.String(),
			CreatedAt: action.Created.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}
