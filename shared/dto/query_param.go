package dto

import (
	"fmt"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams shapes a multi-row read. SortBy must be a column name chosen by
// the caller, never user input: it is interpolated into the statement.
type QueryParams struct {
	SortBy  string
	SortDir string
}

// OrderBy renders the ORDER BY clause, or an empty string when no column is set.
// An unknown direction falls back to ascending.
func (q QueryParams) OrderBy(table string) string {
	if q.SortBy == "" {
		return ""
	}

	dir := strings.ToUpper(q.SortDir)
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	column := q.SortBy
	if table != "" {
		column = fmt.Sprintf("%s.%s", table, q.SortBy)
	}

	return fmt.Sprintf("ORDER BY %s %s", column, dir)
}
