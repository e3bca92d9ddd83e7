package sqldb

import "context"

// Tx is an open transaction on a single dedicated connection. Statements
// issued through it use the same canonical dialect and Result shape as
// Client.Query.
type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
