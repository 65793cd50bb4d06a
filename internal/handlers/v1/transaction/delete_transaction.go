package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/period"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	UserID string `header:"X-User-ID" doc:"Authenticated caller UUID"`
	ID     string `path:"id" doc:"Transaction UUID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	Operator actionRunner
	Periods  period.Resolver
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(op actionRunner, periods period.Resolver) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op, Periods: periods}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete a transaction",
		Description: "Deletes a transaction and reverses its account, pool, and spent effects.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := identity.Resolve(input.UserID)
	if err != nil {
		return nil, apierror.FromLedger(err)
	}

	transactionID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	periodID, err := h.Periods.Current(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to resolve current period", err)
	}

	action := &actions.DeleteTransaction{
		UserID:        userID,
		PeriodID:      periodID,
		TransactionID: transactionID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromLedger(err)
	}

	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}
