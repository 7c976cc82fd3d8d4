package sqlite

import "strings"

// duplicateKey reports whether err is a uniqueness failure on table, e.g.
// "UNIQUE constraint failed: records.kind, records.id".
func duplicateKey(err error, table string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+table+".")
}
