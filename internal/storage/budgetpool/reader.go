package budgetpool

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

var columns = []any{"period_id", "user_id", "amount"}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) Find(ctx context.Context, periodID, userID uuid.UUID) (*BudgetPool, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("budget_pools"),
		sm.Where(psql.Quote("period_id").EQ(psql.Arg(periodID))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*BudgetPool]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}
