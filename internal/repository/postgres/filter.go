package postgres

import "strings"

// likeEscaper makes LIKE metacharacters match literally under the default
// backslash escape, matching the in-memory store's substring semantics.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsArg is the bound value for a `col ILIKE '%' || $n || '%'` condition.
func containsArg(s string) string {
	return likeEscaper.Replace(s)
}
