package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq = "eq"
)

const (
	FilterGroupOperatorAnd = "AND"
)

// Filter is one named-parameter condition on a column.
type Filter struct {
	// ArgName defaults to Field; set it when the column also appears in a SET list.
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

// GetWhereClause renders the condition and its named args. An unsupported
// operator renders nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	default:
		return "", args
	}
}

// FilterGroup joins filters with Operator, AND when unset.
type FilterGroup struct {
	Filters  []Filter
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		where, arg := filter.GetWhereClause()
		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)

		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
