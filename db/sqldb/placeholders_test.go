package sqldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceOrdinalPlaceholders(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "simple",
			in:   "SELECT id FROM users WHERE email = $1",
			want: "SELECT id FROM users WHERE email = ?",
		},
		{
			name: "multiple in order",
			in:   "INSERT INTO roles (id, name) VALUES ($1, $2)",
			want: "INSERT INTO roles (id, name) VALUES (?, ?)",
		},
		{
			name: "multi digit token consumed whole",
			in:   "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
			want: "VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		},
		{
			name: "repeated ordinal still replaced per occurrence",
			in:   "WHERE a = $1 OR b = $1",
			want: "WHERE a = ? OR b = ?",
		},
		{
			name: "dollar without digit untouched",
			in:   "SELECT '$' AS currency, price FROM products",
			want: "SELECT '$' AS currency, price FROM products",
		},
		{
			name: "no placeholders",
			in:   "COMMIT",
			want: "COMMIT",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReplaceOrdinalPlaceholders(tc.in, 0))
		})
	}
}

func TestReplaceOrdinalPlaceholdersDollarPrefixPassThrough(t *testing.T) {
	stmt := "SELECT id FROM users WHERE email = $1 AND is_active = $2"
	assert.Equal(t, stmt, ReplaceOrdinalPlaceholders(stmt, '$'))
}

func TestCountPlaceholders(t *testing.T) {
	assert.Equal(t, 0, CountPlaceholders("SELECT 1"))
	assert.Equal(t, 2, CountPlaceholders("WHERE a = $1 AND b = $2"))
	assert.Equal(t, 11, CountPlaceholders("VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)"))
	assert.Equal(t, 0, CountPlaceholders("SELECT '$' FROM t"))
}
