package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/arsurgical/hub-backend/db/sqldb"
)

type Tx struct {
	tx pgx.Tx
}

// Ensure pgsql.Tx implements sqldb.Tx
var _ sqldb.Tx = (*Tx)(nil)

func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *Tx) Query(ctx context.Context, stmt string, args ...any) (*sqldb.Result, error) {
	return execOnPool(ctx, t.tx, stmt, args)
}
