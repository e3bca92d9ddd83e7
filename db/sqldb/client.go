package sqldb

import "context"

// Querier executes one parameterized statement and returns the normalized
// Result. Statement text uses the canonical `$1, $2, ...` placeholder
// dialect regardless of the engine behind the interface; engines that
// want `?` placeholders translate internally.
type Querier interface {
	Query(ctx context.Context, stmt string, args ...any) (*Result, error)
}

// Client is one SQL engine behind the shared contract. Concrete
// implementations are registered with RegisterFactory and constructed
// once at startup via sqldb.New; the selected engine never changes for
// the process lifetime.
type Client interface {
	Querier
	Init() error
	Close() error
	Ping(ctx context.Context) error
	GetConf() *Conf
	GetDSN() string
	BeginTx(ctx context.Context) (Tx, error)
}
