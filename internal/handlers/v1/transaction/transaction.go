package transaction

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountID" doc:"Account UUID"`
	SubcategoryID   string `json:"subcategoryID,omitempty" doc:"Subcategory UUID, outflows only"`
	Amount          string `json:"amount" doc:"Positive decimal magnitude"`
	IsInflow        bool   `json:"isInflow" doc:"Direction of the movement"`
	Payee           string `json:"payee" doc:"Payee"`
	Description     string `json:"description,omitempty" doc:"Free-form description"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
}

func transactionFromStorage(t *transaction.Transaction) Transaction {
	converted := Transaction{
		ID:              t.ID.String(),
		AccountID:       t.AccountID.String(),
		Amount:          t.Amount.String(),
		IsInflow:        t.IsInflow,
		Payee:           t.Payee,
		Description:     t.Description,
		TransactionDate: t.TransactionDate.Format(time.RFC3339),
	}
	if t.SubcategoryID.Valid {
		converted.SubcategoryID = t.SubcategoryID.UUID.String()
	}
	return converted
}

func transactionFromService(t service.Transaction) Transaction {
	converted := Transaction{
		ID:              t.ID.String(),
		AccountID:       t.AccountID.String(),
		Amount:          t.Amount.String(),
		IsInflow:        t.IsInflow,
		Payee:           t.Payee,
		Description:     t.Description,
		TransactionDate: t.TransactionDate.Format(time.RFC3339),
	}
	if t.SubcategoryID.Valid {
		converted.SubcategoryID = t.SubcategoryID.UUID.String()
	}
	return converted
}
