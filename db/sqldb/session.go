package sqldb

import (
	"context"
	"strings"
	"sync"
)

// Transaction-control statements recognized by Session.Query.
const (
	ctrlNone = iota
	ctrlBegin
	ctrlCommit
	ctrlRollback
)

// TransactionControl classifies a statement as BEGIN/COMMIT/ROLLBACK or
// an ordinary data statement.
func transactionControl(stmt string) int {
	s := strings.ToUpper(strings.TrimSpace(stmt))
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimSpace(s)
	switch s {
	case "BEGIN", "BEGIN TRANSACTION", "START TRANSACTION":
		return ctrlBegin
	case "COMMIT", "COMMIT TRANSACTION":
		return ctrlCommit
	case "ROLLBACK", "ROLLBACK TRANSACTION":
		return ctrlRollback
	default:
		return ctrlNone
	}
}

// Session lets literal BEGIN/COMMIT/ROLLBACK statements flow through the
// ordinary Query contract by mapping them onto the engine's native
// transaction primitive. It exists for callers written against that
// legacy statement shape; code in this module opens transactions with
// Client.BeginTx directly and does not route through a Session.
//
// BEGIN opens a real Tx on a dedicated connection and holds a gate until
// the matching COMMIT/ROLLBACK, so a second concurrent BEGIN blocks until
// the first span finishes — transaction spans never interleave, on any
// engine. While a span is open every statement issued through the Session
// runs on the transaction's connection, mirroring the single shared
// handle of the embedded engine.
//
// No nesting: BEGIN inside an open span issued from the same call chain
// would wait on its own gate. Use Client.BeginTx for explicit handles.
type Session struct {
	client Client

	gate sync.Mutex // held for the whole BEGIN..COMMIT/ROLLBACK span
	mu   sync.Mutex // guards tx
	tx   Tx
}

var _ Querier = (*Session)(nil)

func NewSession(client Client) *Session {
	return &Session{client: client}
}

// InTransaction reports whether a transaction span is currently open.
func (s *Session) InTransaction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx != nil
}

func (s *Session) Query(ctx context.Context, stmt string, args ...any) (*Result, error) {
	switch transactionControl(stmt) {
	case ctrlBegin:
		return s.begin(ctx)
	case ctrlCommit:
		return s.end(ctx, true)
	case ctrlRollback:
		return s.end(ctx, false)
	}

	s.mu.Lock()
	tx := s.tx
	s.mu.Unlock()
	if tx != nil {
		return tx.Query(ctx, stmt, args...)
	}
	return s.client.Query(ctx, stmt, args...)
}

func (s *Session) begin(ctx context.Context) (*Result, error) {
	s.gate.Lock()
	tx, err := s.client.BeginTx(ctx)
	if err != nil {
		s.gate.Unlock()
		return nil, err
	}
	s.mu.Lock()
	s.tx = tx
	s.mu.Unlock()
	return &Result{Rows: []Row{}}, nil
}

func (s *Session) end(ctx context.Context, commit bool) (*Result, error) {
	s.mu.Lock()
	tx := s.tx
	s.tx = nil
	s.mu.Unlock()
	if tx == nil {
		return nil, ErrNoTransaction
	}
	defer s.gate.Unlock()

	var err error
	if commit {
		err = tx.Commit(ctx)
	} else {
		err = tx.Rollback(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &Result{Rows: []Row{}}, nil
}
