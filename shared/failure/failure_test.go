package failure_test

import (
	"errors"
	"fmt"
	"lembra/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	err := failure.NotFound("todo não encontrado")

	if err.Error() != "todo não encontrado" {
		t.Errorf("expected error message to be 'todo não encontrado', got %s", err.Error())
	}
}

func TestKind_Mapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		kind  failure.Kind
		code  int
		label string
	}{
		{
			name:  "validation",
			err:   failure.Validation("Um ou mais campos são inválidos"),
			kind:  failure.KindValidation,
			code:  http.StatusBadRequest,
			label: "Erro de validação",
		},
		{
			name:  "not found",
			err:   failure.NotFound("registro não encontrado"),
			kind:  failure.KindNotFound,
			code:  http.StatusNotFound,
			label: "Não encontrado",
		},
		{
			name:  "conflict",
			err:   failure.Conflict("já existe um registro com esses dados"),
			kind:  failure.KindConflict,
			code:  http.StatusConflict,
			label: "Conflito",
		},
		{
			name:  "internal",
			err:   failure.Internal(errors.New("connection refused")),
			kind:  failure.KindInternal,
			code:  http.StatusInternalServerError,
			label: "Erro interno do servidor",
		},
		{
			name:  "unclassified plain error",
			err:   errors.New("boom"),
			kind:  failure.KindInternal,
			code:  http.StatusInternalServerError,
			label: "Erro interno do servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if kind := failure.KindOf(tt.err); kind != tt.kind {
				t.Errorf("expected kind %d, got %d", tt.kind, kind)
			}
			if code := failure.GetCode(tt.err); code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, code)
			}
			if label := failure.KindOf(tt.err).Label(); label != tt.label {
				t.Errorf("expected label %s, got %s", tt.label, label)
			}
		})
	}
}

func TestKindOf_WrappedFailure(t *testing.T) {
	err := fmt.Errorf("failed to get todo: %w", failure.NotFound("todo não encontrado"))

	if kind := failure.KindOf(err); kind != failure.KindNotFound {
		t.Errorf("expected wrapped failure to keep its kind, got %d", kind)
	}

	if code := failure.GetCode(err); code != http.StatusNotFound {
		t.Errorf("expected code 404, got %d", code)
	}
}

func TestDetailsOf(t *testing.T) {
	details := []failure.FieldError{
		{Field: "title", Message: "title é obrigatório"},
		{Field: "reminder", Message: "reminder deve ser uma data válida"},
	}

	err := failure.Validation("Um ou mais campos são inválidos", details...)

	got := failure.DetailsOf(err)
	if len(got) != 2 {
		t.Fatalf("expected 2 details, got %d", len(got))
	}

	if got[0].Field != "title" || got[1].Field != "reminder" {
		t.Errorf("expected details in declaration order, got %+v", got)
	}

	if failure.DetailsOf(errors.New("boom")) != nil {
		t.Error("expected no details for plain errors")
	}
}

func TestInternal_Nil(t *testing.T) {
	if failure.Internal(nil) != nil {
		t.Error("expected nil for nil error")
	}
}
