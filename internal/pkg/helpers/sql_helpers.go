package helpers

import "strings"

// Placeholders builds a comma separated list of n '?' markers for IN
// predicates against database/sql stores. Callers must never pass n == 0;
// an empty IN list is not valid SQL.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
