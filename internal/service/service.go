package service

import (
	"github.com/carson-networks/ledger-server/internal/period"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all read-path business logic services. Mutations go through
// the operator instead.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Budget      *BudgetService
}

// NewService creates a new Service with the given storage and period resolver.
func NewService(store *storage.Storage, periods period.Resolver) *Service {
	reader := store.Read()
	return &Service{
		Account:     NewAccountService(reader),
		Transaction: NewTransactionService(reader),
		Budget:      NewBudgetService(reader, periods),
	}
}
