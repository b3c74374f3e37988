package validator

import (
	"errors"
	"lembra/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} é obrigatório",
		"max":      "{field} deve ter no máximo {param} caracteres",
		"min":      "{field} deve ter no mínimo {param} caracteres",
		"oneof":    "{field} deve ser um de: {param}",
		"uuid4":    "{field} deve ser um UUID válido",
		"datetime": "{field} deve ser uma data e hora válida (ISO-8601)",
	}
)

func render(field string, valErr val.FieldError) string {
	msg := messages[valErr.Tag()]
	if msg == "" {
		return field + " é inválido"
	}

	msg = strings.ReplaceAll(msg, "{field}", field)
	msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

	return msg
}

// details turns every violation into a field/message pair, preserving the
// order the validator reports them in (struct declaration order).
func details(err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.FieldError{{Message: err.Error()}}
	}

	fieldErrors := make([]failure.FieldError, 0, len(valErrors))
	for _, valErr := range valErrors {
		fieldErrors = append(fieldErrors, failure.FieldError{
			Field:   valErr.Field(),
			Message: render(valErr.Field(), valErr),
		})
	}

	return fieldErrors
}

// detailsNamed is details for single-value validation, where the validator
// has no struct field to name the violation after.
func detailsNamed(name string, err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.FieldError{{Field: name, Message: err.Error()}}
	}

	fieldErrors := make([]failure.FieldError, 0, len(valErrors))
	for _, valErr := range valErrors {
		fieldErrors = append(fieldErrors, failure.FieldError{
			Field:   name,
			Message: render(name, valErr),
		})
	}

	return fieldErrors
}
