package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todoapp/shared"
	"todoapp/shared/dto"
)

type record struct {
	ID        int64  `db:"id,autoincrement"`
	Key       string `db:"key,immutable"`
	Name      string `db:"name"`
	Active    bool   `db:"active"`
	Ignored   string `db:"-"`
	Untracked string
}

func TestDBTag(t *testing.T) {
	name, options := shared.DBTag("id,autoincrement")
	assert.Equal(t, "id", name)
	assert.Equal(t, []string{"autoincrement"}, options)

	name, options = shared.DBTag("text")
	assert.Equal(t, "text", name)
	assert.Empty(t, options)
}

func TestHasTagOption(t *testing.T) {
	assert.True(t, shared.HasTagOption("id,autoincrement", "autoincrement"))
	assert.True(t, shared.HasTagOption("uuid,immutable, autoincrement", "autoincrement"))
	assert.False(t, shared.HasTagOption("text", "autoincrement"))
	assert.False(t, shared.HasTagOption("autoincrement", "autoincrement"))
}

func TestTransformFields(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected map[string]any
	}{
		{
			name:     "zero values are kept",
			input:    record{ID: 9, Key: "k", Name: "", Active: false, Ignored: "x", Untracked: "y"},
			expected: map[string]any{"name": "", "active": false},
		},
		{
			name:     "pointer input",
			input:    &record{Name: "walk dog", Active: true},
			expected: map[string]any{"name": "walk dog", "active": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.TransformFields(tt.input))
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(7), "id", "todos")

	assert.Equal(t, dto.FilterGroup{
		Filters: []dto.Filter{
			{
				ArgName:  "filter_id",
				Field:    "id",
				Value:    int64(7),
				Operator: dto.FilterOperatorEq,
				Table:    "todos",
			},
		},
	}, group)

	where, args := group.GetWhereClause()
	assert.Equal(t, "(todos.id = :filter_id)", where)
	assert.Equal(t, map[string]any{"filter_id": int64(7)}, args)
}
