package sqldb

import "strings"

// PlaceholderPrefixForDBType maps an engine type to the placeholder style
// its driver expects. 0 means anonymous `?` placeholders.
var PlaceholderPrefixForDBType = map[string]byte{
	"pgsql":  '$',
	"mysql":  0,
	"sqlite": 0, // NOTE: sqlite accepts both, we feed it `?`
}

// ReplaceOrdinalPlaceholders rewrites canonical `$N` placeholders into
// anonymous `?` placeholders for engines that resolve parameters by
// position. Tokens are replaced strictly left-to-right; the numbers are
// discarded because the parameter list is already in placeholder order.
//
// Engines whose prefix is '$' get the statement back untouched.
func ReplaceOrdinalPlaceholders(stmt string, prefix byte) string {
	if prefix == '$' {
		return stmt
	}
	var b strings.Builder
	b.Grow(len(stmt))
	i := 0
	for i < len(stmt) {
		if stmt[i] == '$' && i+1 < len(stmt) && isDigit(stmt[i+1]) {
			b.WriteByte('?')
			i++
			for i < len(stmt) && isDigit(stmt[i]) {
				i++
			}
			continue
		}
		b.WriteByte(stmt[i])
		i++
	}
	return b.String()
}

// CountPlaceholders reports how many `$N` tokens a canonical statement
// contains.
func CountPlaceholders(stmt string) int {
	n := 0
	i := 0
	for i < len(stmt) {
		if stmt[i] == '$' && i+1 < len(stmt) && isDigit(stmt[i+1]) {
			n++
			i++
			for i < len(stmt) && isDigit(stmt[i]) {
				i++
			}
			continue
		}
		i++
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
