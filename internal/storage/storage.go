package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
)

type Storage struct {
	DB  *sql.DB
	bob bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB:  db,
		bob: bob.NewDB(db),
	}, nil
}

// Read returns a Reader running against the plain connection pool, outside
// any transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.bob)
}

// Executor exposes the non-transactional executor for collaborators that run
// their own queries, like the period resolver.
func (s *Storage) Executor() bob.Executor {
	return s.bob
}

// Write begins a storage transaction and returns a Writer scoped to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bob.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
