package pgsql

import (
	"context"
	"math/big"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/arsurgical/hub-backend/db/sqldb"
)

// pgxQuerier is the querying surface shared by *pgxpool.Pool and pgx.Tx.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// execOnPool dispatches one statement: row-returning statements (SELECT,
// or any write carrying a native RETURNING clause) go through Query and
// produce rows; everything else goes through Exec and reports the
// affected-row count. Engine errors propagate unchanged.
func execOnPool(ctx context.Context, q pgxQuerier, stmt string, args []any) (*sqldb.Result, error) {
	if returnsRows(stmt) {
		rows, err := q.Query(ctx, stmt, args...)
		if err != nil {
			return nil, err
		}
		rs, err := rowsToMaps(rows)
		if err != nil {
			return nil, err
		}
		return &sqldb.Result{Rows: rs}, nil
	}

	tag, err := q.Exec(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	return &sqldb.Result{Rows: []sqldb.Row{}, RowsAffected: tag.RowsAffected()}, nil
}

func returnsRows(stmt string) bool {
	if sqldb.IsSelect(stmt) {
		return true
	}
	return strings.Contains(strings.ToUpper(stmt), "RETURNING")
}

// rowsToMaps drains pgx rows into the normalized row shape. It always
// closes rows.
func rowsToMaps(rows pgx.Rows) ([]sqldb.Row, error) {
	defer rows.Close()

	flds := rows.FieldDescriptions()
	out := []sqldb.Row{}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		m := make(sqldb.Row, len(flds))
		for i, f := range flds {
			m[f.Name] = normalizePgValue(vals[i])
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizePgValue flattens pgx-specific value types so rows marshal the
// same as the other engines' (NUMERIC columns in particular).
func normalizePgValue(v any) any {
	switch t := v.(type) {
	case pgtype.Numeric:
		if f, err := t.Float64Value(); err == nil && f.Valid {
			return f.Float64
		}
		return nil
	case *big.Int:
		return t.Int64()
	case []byte:
		return string(t)
	default:
		return v
	}
}
