package sqldb

import (
	"context"
	"database/sql"
	"log"
	"strings"
)

// StdQuerier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// The `?`-dialect engines route both their pooled and transactional paths
// through it so RETURNING emulation stays on the right connection.
type StdQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ExecTranslated runs one canonical statement against a database/sql
// engine: translates placeholders, dispatches reads and writes to their
// native paths, and backfills RETURNING rows via idColumn when the
// statement asked for them.
//
// Engine errors propagate unchanged; nothing is retried.
func ExecTranslated(ctx context.Context, q StdQuerier, stmt string, args []any, idColumn string) (*Result, error) {
	t := Translate(stmt)

	if IsSelect(t.Stmt) {
		rows, err := q.QueryContext(ctx, t.Stmt, args...)
		if err != nil {
			return nil, err
		}
		rs, err := StdRowsToMaps(rows)
		if err != nil {
			return nil, err
		}
		return &Result{Rows: rs}, nil
	}

	res, err := q.ExecContext(ctx, t.Stmt, args...)
	if err != nil {
		return nil, err
	}
	out := &Result{Rows: []Row{}}
	// Both are best-effort: not every driver reports them for every statement.
	out.LastInsertID, _ = res.LastInsertId()
	out.RowsAffected, _ = res.RowsAffected()

	if t.Returning != nil {
		out.Rows = emulateReturning(ctx, q, t.Returning, idColumn, out.LastInsertID)
	}
	return out, nil
}

// emulateReturning re-fetches the affected row after a successful write.
// A missing table name or row identifier degrades to an empty row list;
// callers relying on RETURNING still get a usable (if empty) Result.
func emulateReturning(ctx context.Context, q StdQuerier, ret *ReturningClause, idColumn string, lastID int64) []Row {
	if ret.Table == "" || lastID == 0 {
		return []Row{}
	}
	rows, err := q.QueryContext(ctx, ret.SelectStmt(idColumn), lastID)
	if err != nil {
		log.Printf("[WARN] returning emulation on %s failed: %v", ret.Table, err)
		return []Row{}
	}
	rs, err := StdRowsToMaps(rows)
	if err != nil {
		log.Printf("[WARN] returning emulation on %s failed: %v", ret.Table, err)
		return []Row{}
	}
	return rs
}

// StdRowsToMaps drains database/sql rows into the normalized row shape.
// It always closes rows.
func StdRowsToMaps(rows *sql.Rows) ([]Row, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("[WARN] rows.Close() failed: %v", err)
		}
	}()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := []Row{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		m := make(Row, len(cols))
		for i, c := range cols {
			m[c] = normalizeStdValue(vals[i])
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeStdValue keeps row values JSON-friendly; database/sql drivers
// hand back []byte for text columns.
func normalizeStdValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// IsSelect reports whether the statement goes through the engine's read
// path. Everything else is a write or DDL.
func IsSelect(stmt string) bool {
	s := strings.ToUpper(strings.TrimSpace(stmt))
	return strings.HasPrefix(s, "SELECT") || strings.HasPrefix(s, "WITH")
}
