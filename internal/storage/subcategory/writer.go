package subcategory

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

type Writer struct {
	tx bob.Tx
	Reader
}

var _ ISubcategoryWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks only the subcategory row; the joined category row
// is metadata and stays unlocked.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Subcategory, error) {
	query := psql.Select(
		sm.Columns(joinedColumns...),
		sm.From("subcategories"),
		sm.InnerJoin("categories").On(
			psql.Quote("categories", "id").EQ(psql.Quote("subcategories", "category_id")),
		),
		sm.Where(psql.Quote("subcategories", "id").EQ(psql.Arg(id))),
		sm.ForUpdate("subcategories"),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Subcategory]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (w *Writer) UpdateBudgeted(ctx context.Context, id uuid.UUID, budgeted decimal.Decimal) error {
	query := psql.Update(
		um.Table("subcategories"),
		um.SetCol("budgeted").ToArg(budgeted),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

func (w *Writer) UpdateSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error {
	query := psql.Update(
		um.Table("subcategories"),
		um.SetCol("spent").ToArg(spent),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
