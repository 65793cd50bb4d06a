package period

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"
)

// Resolver supplies the current budgeting period id. Ledger operations treat
// the id as opaque; only the resolver knows how periods map to dates.
type Resolver interface {
	Current(ctx context.Context) (uuid.UUID, error)
}

// Period is a budgeting cycle, one per calendar month.
type Period struct {
	ID    uuid.UUID `db:"id"`
	Month int       `db:"month"`
	Year  int       `db:"year"`
}

// The DO UPDATE no-op makes RETURNING yield the existing row's id when the
// (month, year) row is already there.
const upsertPeriod = `
INSERT INTO periods (id, month, year)
VALUES ($1, $2, $3)
ON CONFLICT (month, year) DO UPDATE SET month = EXCLUDED.month
RETURNING id, month, year`

// MonthResolver resolves the wall-clock month against the periods table,
// creating the row on first use.
type MonthResolver struct {
	exec bob.Executor
	now  func() time.Time
}

func NewMonthResolver(exec bob.Executor) *MonthResolver {
	return &MonthResolver{exec: exec, now: time.Now}
}

func (r *MonthResolver) Current(ctx context.Context) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	now := r.now()
	query := psql.RawQuery(upsertPeriod, id, int(now.Month()), now.Year())
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Period]())
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

// Static always resolves to a fixed period id. Used in tests.
type Static struct {
	ID uuid.UUID
}

func (s Static) Current(ctx context.Context) (uuid.UUID, error) {
	return s.ID, nil
}
