package dto_test

import (
	"encoding/json"
	"lembra/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "is_done",
				Operator: dto.FilterOperatorEq,
				Value:    true,
				Table:    "todos",
			},
			wantWhere: "todos.is_done = :is_done",
			wantArgs:  map[string]any{"is_done": true},
		},
		{
			name: "like is case insensitive",
			filter: dto.Filter{
				Field:    "title",
				Operator: dto.FilterOperatorLike,
				Value:    "Milk",
				Table:    "todos",
			},
			wantWhere: "LOWER(todos.title) LIKE LOWER(:title)",
			wantArgs:  map[string]any{"title": "%Milk%"},
		},
		{
			name: "like matches metacharacters literally",
			filter: dto.Filter{
				Field:    "title",
				Operator: dto.FilterOperatorLike,
				Value:    `100%_done\`,
				Table:    "todos",
			},
			wantWhere: "LOWER(todos.title) LIKE LOWER(:title)",
			wantArgs:  map[string]any{"title": `%100\%\_done\\%`},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "search_description",
				Field:    "description",
				Operator: dto.FilterOperatorLike,
				Value:    "milk",
				Table:    "todos",
			},
			wantWhere: "LOWER(todos.description) LIKE LOWER(:search_description)",
			wantArgs:  map[string]any{"search_description": "%milk%"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "reminder",
				Operator: dto.FilterIsNull,
				Table:    "todos",
			},
			wantWhere: "todos.reminder IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "title",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "is_done", Operator: dto.FilterOperatorEq, Value: false, Table: "todos"},
				dto.Filter{Field: "title", Operator: dto.FilterOperatorLike, Value: "milk", Table: "todos"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(todos.is_done = :is_done AND LOWER(todos.title) LIKE LOWER(:title))", where)
		assert.Equal(t, map[string]any{"is_done": false, "title": "%milk%"}, args)
	})

	t.Run("nested OR group keeps its own parentheses", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "is_done", Operator: dto.FilterOperatorEq, Value: true, Table: "todos"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{ArgName: "search_title", Field: "title", Operator: dto.FilterOperatorLike, Value: "milk", Table: "todos"},
						dto.Filter{ArgName: "search_description", Field: "description", Operator: dto.FilterOperatorLike, Value: "milk", Table: "todos"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t,
			"(todos.is_done = :is_done AND (LOWER(todos.title) LIKE LOWER(:search_title) OR LOWER(todos.description) LIKE LOWER(:search_description)))",
			where,
		)
		assert.Len(t, args, 3)
		assert.Equal(t, "%milk%", args["search_title"])
		assert.Equal(t, "%milk%", args["search_description"])
	})
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	type patch struct {
		Title       dto.Optional[string] `json:"title"`
		Description dto.Optional[string] `json:"description"`
		IsDone      dto.Optional[bool]   `json:"isDone"`
	}

	tests := []struct {
		name string
		body string
		want func(t *testing.T, p patch)
	}{
		{
			name: "absent field is not set",
			body: `{}`,
			want: func(t *testing.T, p patch) {
				assert.False(t, p.Title.Set)
				assert.False(t, p.Description.Set)
			},
		},
		{
			name: "explicit null is set and null",
			body: `{"description":null}`,
			want: func(t *testing.T, p patch) {
				assert.True(t, p.Description.Set)
				assert.True(t, p.Description.Null)
				assert.False(t, p.Description.Present())
			},
		},
		{
			name: "value is set and present",
			body: `{"title":"Buy milk","isDone":true}`,
			want: func(t *testing.T, p patch) {
				assert.True(t, p.Title.Present())
				assert.Equal(t, "Buy milk", p.Title.Value)
				assert.True(t, p.IsDone.Present())
				assert.True(t, p.IsDone.Value)
			},
		},
		{
			name: "empty string is present, not null",
			body: `{"title":""}`,
			want: func(t *testing.T, p patch) {
				assert.True(t, p.Title.Present())
				assert.Empty(t, p.Title.Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch

			err := json.Unmarshal([]byte(tt.body), &p)

			assert.NoError(t, err)
			tt.want(t, p)
		})
	}
}

func TestOptional_TypeMismatch(t *testing.T) {
	var p struct {
		IsDone dto.Optional[bool] `json:"isDone"`
	}

	err := json.Unmarshal([]byte(`{"isDone":"yes"}`), &p)

	assert.Error(t, err)
}
