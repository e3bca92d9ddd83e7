package sqldb

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// RawStore holds raw SQL statements loaded from an embedded sql/ dir,
// keyed by file name without extension.
//
// Files with the active engine type as extension (e.g. schema.sqlite)
// win over the dialect-neutral `.sql` version of the same name, so a
// statement can carry engine-specific DDL while everything portable is
// written once in the canonical dialect.
type RawStore struct {
	stmts map[string]string
}

func NewRawStore() *RawStore {
	return &RawStore{stmts: make(map[string]string)}
}

func (s *RawStore) Set(key string, rawStmt string) {
	s.stmts[key] = rawStmt
}

func (s *RawStore) Get(key string) (string, bool) {
	stmt, exists := s.stmts[key]
	return stmt, exists
}

// LoadRawStmts reads every file under sql/ in the given FS into the store
// for the active engine type.
func LoadRawStmts(store *RawStore, fsys embed.FS, dbType string) error {
	files, err := fs.ReadDir(fsys, "sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded `sql` dir: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		filename := f.Name()
		ext := strings.TrimPrefix(filepath.Ext(filename), ".")
		name := strings.TrimSuffix(filename, filepath.Ext(filename))
		data, err := fs.ReadFile(fsys, filepath.Join("sql", filename))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filename, err)
		}
		switch ext {
		case dbType:
			// exact dialect match always wins
			store.Set(name, string(data))
		case "sql":
			if _, exists := store.Get(name); !exists {
				store.Set(name, string(data))
			}
		}
	}
	return nil
}

// SplitStatements breaks a multi-statement SQL script into individual
// statements so each engine executes exactly one statement per call.
// Good enough for our DDL: semicolons never appear inside literals there.
func SplitStatements(script string) []string {
	parts := strings.Split(script, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(stripLineComments(p)) == "" {
			continue
		}
		stmts = append(stmts, strings.TrimSpace(p))
	}
	return stmts
}

func stripLineComments(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		if idx := strings.Index(line, "--"); idx >= 0 {
			line = line[:idx]
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
