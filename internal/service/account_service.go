package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

const defaultAccountLimit = 20

// accountReader is the slice of the storage reader AccountService depends on.
type accountReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	List(ctx context.Context, filter *account.AccountFilter) (*account.AccountListResult, error)
}

// AccountService handles the account read path.
type AccountService struct {
	accounts accountReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader *storage.Reader) *AccountService {
	return &AccountService{accounts: reader.Accounts}
}

// GetAccount retrieves an account owned by the caller.
func (s *AccountService) GetAccount(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	row, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ledger.NewNotFoundError("account")
	}
	if row.UserID != userID {
		return nil, ledger.NewAuthError("account")
	}
	return accountFromStorage(row), nil
}

// ListAccounts returns a page of the caller's accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	result, err := s.accounts.List(ctx, &account.AccountFilter{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(result.Accounts) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if result.NextCursor != nil {
		nextCursor = &AccountCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}

	convertedAccounts := make([]Account, len(result.Accounts))
	for i, row := range result.Accounts {
		convertedAccounts[i] = *accountFromStorage(row)
	}

	return convertedAccounts, nextCursor, nil
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt,
	}
}
