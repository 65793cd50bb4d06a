package budget

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/subcategory"
)

// Subcategory is the API response model for a subcategory's budget figures.
type Subcategory struct {
	ID       string `json:"id" doc:"Subcategory UUID"`
	Name     string `json:"name" doc:"Subcategory name"`
	Budgeted string `json:"budgeted" doc:"Budgeted amount this period"`
	Spent    string `json:"spent" doc:"Spent amount this period"`
}

// actionRunner enqueues a ledger action and waits for its outcome.
type actionRunner interface {
	Process(ctx context.Context, action actions.IAction) error
}

func subcategoryFromStorage(s *subcategory.Subcategory) Subcategory {
	return Subcategory{
		ID:       s.ID.String(),
		Name:     s.Name,
		Budgeted: s.Budgeted.String(),
		Spent:    s.Spent.String(),
	}
}
