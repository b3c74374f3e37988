package shared_test

import (
	"lembra/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBoolLiteral(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   *bool
		wantOk bool
	}{
		{name: "empty means no filter", input: "", want: nil, wantOk: true},
		{name: "true literal", input: "true", want: boolPtr(true), wantOk: true},
		{name: "false literal", input: "false", want: boolPtr(false), wantOk: true},
		{name: "rejects 1", input: "1", want: nil, wantOk: false},
		{name: "rejects TRUE", input: "TRUE", want: nil, wantOk: false},
		{name: "rejects garbage", input: "yes", want: nil, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shared.ParseBoolLiteral(tt.input)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("8a6e0804-2bd0-4672-b79d-d97027f9071a", "id", "todos")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(todos.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "8a6e0804-2bd0-4672-b79d-d97027f9071a"}, args)
}

func boolPtr(v bool) *bool {
	return &v
}
