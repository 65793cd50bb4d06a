package subcategory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Subcategory rows are always read joined to their category so the owning
// user travels with them.
var joinedColumns = []any{
	"subcategories.id",
	"subcategories.category_id",
	"subcategories.name",
	"subcategories.budgeted",
	"subcategories.spent",
	"categories.user_id",
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Subcategory, error) {
	query := psql.Select(
		sm.Columns(joinedColumns...),
		sm.From("subcategories"),
		sm.InnerJoin("categories").On(
			psql.Quote("categories", "id").EQ(psql.Quote("subcategories", "category_id")),
		),
		sm.Where(psql.Quote("subcategories", "id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Subcategory]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}
