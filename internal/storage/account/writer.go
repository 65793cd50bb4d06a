package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IAccountWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate loads the account row with a row-level lock so a
// concurrent balance update in another transaction waits for ours.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (w *Writer) Create(ctx context.Context, create *AccountCreate) (*Account, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	query := psql.Insert(
		im.Into("accounts", "id", "user_id", "name", "balance"),
		im.Values(psql.Arg(id, create.UserID, create.Name, create.Balance)),
		im.Returning(columns...),
	)

	return bob.One(ctx, w.tx, query, scan.StructMapper[*Account]())
}

func (w *Writer) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
