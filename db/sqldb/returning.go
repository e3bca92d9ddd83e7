package sqldb

import (
	"fmt"
	"regexp"
	"strings"
)

// ReturningClause is the extracted tail of a write statement that asked
// for rows back on an engine without native RETURNING support.
type ReturningClause struct {
	Table   string // empty when the target table could not be parsed
	Columns string // validated column list, or "*"
}

// Translated is the outcome of rewriting one canonical statement for a
// `?`-dialect engine.
type Translated struct {
	Stmt      string
	Returning *ReturningClause // nil when the statement had no RETURNING clause
}

var (
	regexReturning   = regexp.MustCompile(`(?is)\s+RETURNING\s+(.+?)\s*;?\s*$`)
	regexWriteTarget = regexp.MustCompile(`(?is)^\s*(?:INSERT\s+(?:OR\s+[A-Za-z]+\s+)?INTO|UPDATE)\s+"?([A-Za-z_][A-Za-z0-9_]*)"?`)
)

// Translate rewrites a canonical `$N` statement for an engine that wants
// anonymous `?` placeholders, and strips a trailing RETURNING clause for
// later emulation. Pure string transform, no side effects.
func Translate(stmt string) Translated {
	t := Translated{Stmt: ReplaceOrdinalPlaceholders(stmt, 0)}

	m := regexReturning.FindStringSubmatch(t.Stmt)
	if m == nil {
		return t
	}
	t.Stmt = t.Stmt[:len(t.Stmt)-len(m[0])]
	t.Returning = &ReturningClause{
		Columns: sanitizeColumnList(m[1]),
	}
	if wm := regexWriteTarget.FindStringSubmatch(t.Stmt); wm != nil {
		t.Returning.Table = wm[1]
	}
	return t
}

// SelectStmt builds the follow-up read that emulates RETURNING: the
// affected row re-fetched by the engine's implicit row identifier.
// Only correct for single-row writes — a bulk UPDATE with RETURNING gets
// at most the one row matching the reported identifier.
func (r *ReturningClause) SelectStmt(idColumn string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", r.Columns, r.Table, idColumn)
}

// sanitizeColumnList validates each requested column against the
// identifier rules; anything unexpected degrades the whole list to "*"
// rather than interpolating unvetted text into the emulation SELECT.
func sanitizeColumnList(list string) string {
	parts := strings.Split(list, ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "*" {
			return "*"
		}
		col, err := NewColumn(p)
		if err != nil {
			return "*"
		}
		cols = append(cols, col.Name())
	}
	if len(cols) == 0 {
		return "*"
	}
	return strings.Join(cols, ", ")
}
