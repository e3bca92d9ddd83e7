package sqldb

import "errors"

var (
	// ErrNoRows is the engine-neutral "no row matched" sentinel.
	ErrNoRows = errors.New("sqldb: no rows in result set")

	// ErrNoTransaction - COMMIT/ROLLBACK issued while no transaction is open.
	ErrNoTransaction = errors.New("sqldb: no open transaction")
)
