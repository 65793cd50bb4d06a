package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing an account's transactions.
type ListTransactionsInput struct {
	UserID          string `header:"X-User-ID" doc:"Authenticated caller UUID"`
	AccountID       string `query:"accountID" required:"true" doc:"Account UUID"`
	Position        int    `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit           int    `query:"limit" minimum:"1" maximum:"100" doc:"Page size, default 20"`
	MaxCreationTime string `query:"maxCreationTime" doc:"RFC3339 upper bound carried from the previous page's cursor"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, newest first"`
	NextCursor   *struct {
		Position        int    `json:"position" doc:"Offset for next page"`
		Limit           int    `json:"limit" doc:"Page size"`
		MaxCreationTime string `json:"maxCreationTime" doc:"RFC3339 upper bound keeping pages stable"`
	} `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID, accountID uuid.UUID, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a paginated list of an account's transactions, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := identity.Resolve(input.UserID)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	accountID, err := uuid.FromString(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	var cursor *service.TransactionCursor
	if input.Limit > 0 {
		cursor = &service.TransactionCursor{
			Position: input.Position,
			Limit:    input.Limit,
		}
		if input.MaxCreationTime != "" {
			maxCreationTime, err := time.Parse(time.RFC3339, input.MaxCreationTime)
			if err != nil {
				return nil, huma.NewError(http.StatusBadRequest, "invalid maxCreationTime", err)
			}
			cursor.MaxCreationTime = maxCreationTime
		}
	}

	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, userID, accountID, cursor)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	body := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, trans := range transactions {
		body.Transactions[i] = transactionFromService(trans)
	}
	if nextCursor != nil {
		body.NextCursor = &struct {
			Position        int    `json:"position" doc:"Offset for next page"`
			Limit           int    `json:"limit" doc:"Page size"`
			MaxCreationTime string `json:"maxCreationTime" doc:"RFC3339 upper bound keeping pages stable"`
		}{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339),
		}
	}

	return &ListTransactionsOutput{Body: body}, nil
}
