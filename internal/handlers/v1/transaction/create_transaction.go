package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/period"
)

// CreateTransactionBody is the request body for recording a transaction.
type CreateTransactionBody struct {
	AccountID       string `json:"accountID" required:"true" doc:"Account UUID"`
	SubcategoryID   string `json:"subcategoryID,omitempty" doc:"Subcategory UUID, required for outflows, forbidden for inflows"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal magnitude"`
	IsInflow        bool   `json:"isInflow" doc:"True for money entering the account"`
	Payee           string `json:"payee" required:"true" doc:"Payee"`
	Description     string `json:"description,omitempty" doc:"Free-form description"`
	TransactionDate string `json:"transactionDate,omitempty" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for recording a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated caller UUID"`
	Body   CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for recording a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// actionRunner enqueues a ledger action and waits for its outcome.
type actionRunner interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionRunner
	Periods  period.Resolver
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionRunner, periods period.Resolver) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op, Periods: periods}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Record a transaction",
		Description: "Records a money movement. Outflows bump the subcategory's spent amount; inflows fund the to-budget pool.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.RecordTransaction, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	var subcategoryID uuid.NullUUID
	if input.Body.SubcategoryID != "" {
		parsed, err := uuid.FromString(input.Body.SubcategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid subcategoryID", err)
		}
		subcategoryID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	} else {
		transactionDate = time.Now()
	}

	return &actions.RecordTransaction{
		AccountID:       accountID,
		SubcategoryID:   subcategoryID,
		Amount:          amount,
		IsInflow:        input.Body.IsInflow,
		Payee:           input.Body.Payee,
		Description:     input.Body.Description,
		TransactionDate: transactionDate,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := identity.Resolve(input.UserID)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	action.UserID = userID

	action.PeriodID, err = h.Periods.Current(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to resolve current period", err)
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromLedger(err)
	}

	if logData != nil {
		logData.AddData("transactionID", action.Created.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionFromStorage(action.Created),
	}, nil
}
