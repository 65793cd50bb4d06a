package budgetpool

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// upsertPool relies on the (period_id, user_id) primary key: concurrent
// first-inflow-of-the-period requests both land on the same row instead of
// racing to create it.
const upsertPool = `
INSERT INTO budget_pools (period_id, user_id, amount)
VALUES ($1, $2, $3)
ON CONFLICT (period_id, user_id)
DO UPDATE SET amount = budget_pools.amount + EXCLUDED.amount
RETURNING period_id, user_id, amount`

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IBudgetPoolWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) FindForUpdate(ctx context.Context, periodID, userID uuid.UUID) (*BudgetPool, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("budget_pools"),
		sm.Where(psql.Quote("period_id").EQ(psql.Arg(periodID))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*BudgetPool]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// AddToPool increments the pool by amount as a single atomic
// insert-or-increment, creating the row on first use of the period.
func (w *Writer) AddToPool(ctx context.Context, periodID, userID uuid.UUID, amount decimal.Decimal) (*BudgetPool, error) {
	query := psql.RawQuery(upsertPool, periodID, userID, amount)
	return bob.One(ctx, w.tx, query, scan.StructMapper[*BudgetPool]())
}

func (w *Writer) UpdateAmount(ctx context.Context, periodID, userID uuid.UUID, amount decimal.Decimal) error {
	query := psql.Update(
		um.Table("budget_pools"),
		um.SetCol("amount").ToArg(amount),
		um.Where(psql.Quote("period_id").EQ(psql.Arg(periodID))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
