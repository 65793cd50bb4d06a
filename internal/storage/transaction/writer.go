package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ ITransactionWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	query := psql.Insert(
		im.Into("transactions",
			"id", "account_id", "subcategory_id", "amount", "is_inflow",
			"payee", "description", "transaction_date",
		),
		im.Values(psql.Arg(
			id, create.AccountID, create.SubcategoryID, create.Amount, create.IsInflow,
			create.Payee, create.Description, transactionDate,
		)),
		im.Returning(columns...),
	)

	return bob.One(ctx, w.tx, query, scan.StructMapper[*Transaction]())
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
