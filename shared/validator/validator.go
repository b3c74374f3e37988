package validator

import (
	"encoding/json"
	"io"
	"lembra/shared/failure"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Details must point at the wire-level field name, not the Go one.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// Validate reads from the given io.Reader into the given struct, and then
// performs validation on the struct using the validator package. All
// violated constraints are reported, one detail entry per violation, in
// struct declaration order.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.Validation("Corpo da requisição não é um JSON válido") //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Validation("Um ou mais campos são inválidos", details(err)...) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar validates a single value against a tag, reporting violations
// under the given field name.
func ValidateVar(name string, field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.Validation("Um ou mais campos são inválidos", detailsNamed(name, err)...) //nolint:wrapcheck
	}

	return nil
}
