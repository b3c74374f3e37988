package failure

import (
	"errors"
	"net/http"
)

// Kind enumerates every failure the service can surface. There are no
// other variants; anything that is not a *Failure translates to KindInternal.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindInternal
)

// Label returns the short kind label used in error envelopes.
func (k Kind) Label() string {
	switch k {
	case KindValidation:
		return "Erro de validação"
	case KindNotFound:
		return "Não encontrado"
	case KindConflict:
		return "Conflito"
	default:
		return "Erro interno do servidor"
	}
}

// StatusCode returns the HTTP status a failure kind resolves to.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FieldError is a single violated constraint, tied to the input field that
// caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure is the tagged error type raised by the validation and data access
// layers and consumed by the HTTP error translator.
type Failure struct {
	Kind    Kind
	Message string
	Details []FieldError
}

func (f *Failure) Error() string {
	return f.Message
}

// Validation returns a failure for rejected input, carrying one detail entry
// per violated constraint in schema declaration order.
func Validation(message string, details ...FieldError) error {
	return &Failure{
		Kind:    KindValidation,
		Message: message,
		Details: details,
	}
}

// NotFound returns a failure for a missing record or route.
func NotFound(message string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: message,
	}
}

// Conflict returns a failure for storage constraint violations.
func Conflict(message string) error {
	return &Failure{
		Kind:    KindConflict,
		Message: message,
	}
}

// Internal wraps an unclassified error.
func Internal(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Kind:    KindInternal,
		Message: err.Error(),
	}
}

// KindOf extracts the failure kind from an error chain. Errors that carry no
// *Failure are unclassified and report KindInternal.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// DetailsOf extracts the field detail list from an error chain, if any.
func DetailsOf(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}

// GetCode returns the HTTP status code of an error interface.
func GetCode(err error) int {
	return KindOf(err).StatusCode()
}
