package shared

import (
	"reflect"
	"strings"

	"todoapp/shared/dto"
)

const (
	TagOptionAutoIncrement = "autoincrement"
	TagOptionImmutable     = "immutable"
)

// DBTag splits a `db` struct tag into the column name and its options.
func DBTag(tag string) (string, []string) {
	parts := strings.Split(tag, ",")

	return parts[0], parts[1:]
}

// HasTagOption reports whether the `db` tag carries the given option.
func HasTagOption(tag, option string) bool {
	_, options := DBTag(tag)

	for _, opt := range options {
		if strings.TrimSpace(opt) == option {
			return true
		}
	}

	return false
}

// TransformFields converts a struct into the column/value map of an UPDATE.
// Zero values are kept so a field can be set back to false or "". Columns tagged
// autoincrement or immutable are never part of the map.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	if typ.Kind() == reflect.Pointer {
		val = val.Elem()
		typ = typ.Elem()
	}

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		tag := typ.Field(index).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}

		if HasTagOption(tag, TagOptionAutoIncrement) || HasTagOption(tag, TagOptionImmutable) {
			continue
		}

		name, _ := DBTag(tag)
		updatedFields[name] = val.Field(index).Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Filter{
			{
				ArgName:  "filter_" + fieldID,
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
