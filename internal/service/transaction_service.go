package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

const defaultLimit = 20

// transactionReader is the slice of the storage reader TransactionService
// depends on.
type transactionReader interface {
	List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error)
}

// TransactionService handles the transaction read path.
type TransactionService struct {
	transactions transactionReader
	accounts     accountReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader *storage.Reader) *TransactionService {
	return &TransactionService{
		transactions: reader.Transactions,
		accounts:     reader.Accounts,
	}
}

// ListTransactions returns a page of an account's transactions, newest first,
// using cursor-based pagination. The account must belong to the caller.
func (s *TransactionService) ListTransactions(ctx context.Context, userID, accountID uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	acct, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if acct == nil {
		return nil, nil, ledger.NewNotFoundError("account")
	}
	if acct.UserID != userID {
		return nil, nil, ledger.NewAuthError("account")
	}

	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			maxCreationTime = &cursor.MaxCreationTime
		}
	}

	rows, err := s.transactions.List(ctx, &transaction.TransactionFilter{
		AccountID:       &accountID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:              row.ID,
			AccountID:       row.AccountID,
			SubcategoryID:   row.SubcategoryID,
			Amount:          row.Amount,
			IsInflow:        row.IsInflow,
			Payee:           row.Payee,
			Description:     row.Description,
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
	}

	return convertedTransactions, nextCursor, nil
}

var _ accountReader = (*account.Reader)(nil)
var _ transactionReader = (*transaction.Reader)(nil)
