package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// IAction is one atomic ledger operation. Perform runs with a Writer scoped
// to a single storage transaction; returning an error rolls the whole
// operation back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
