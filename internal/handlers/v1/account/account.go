package account

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Account is the API response model for an account.
// It is used only for responses, not for request bodies.
type Account struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name"`
	Balance   string `json:"balance" doc:"Current balance as a decimal string"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func accountFromService(a service.Account) Account {
	return Account{
		ID:        a.ID.String(),
		Name:      a.Name,
		Balance:   a.Balance.String(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
