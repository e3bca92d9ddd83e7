package mysql

import (
	"context"
	"database/sql"

	"github.com/arsurgical/hub-backend/db/sqldb"
)

type Tx struct {
	tx *sql.Tx
}

// Ensure mysql.Tx implements sqldb.Tx interface
var _ sqldb.Tx = (*Tx)(nil)

func (t *Tx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t *Tx) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}

func (t *Tx) Query(ctx context.Context, stmt string, args ...any) (*sqldb.Result, error) {
	return sqldb.ExecTranslated(ctx, t.tx, stmt, args, idColumn)
}
