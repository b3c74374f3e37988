package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"lembra/config"
	"lembra/shared/constant"
	"lembra/shared/failure"
	"lembra/shared/logger"
)

// Error is the envelope every failed request gets. Stack is only ever
// populated for internal errors in development mode.
type Error struct {
	Error   string               `json:"error"`
	Message string               `json:"message"`
	Details []failure.FieldError `json:"details,omitempty"`
	Stack   string               `json:"stack,omitempty"`
}

// WithJSON sends a response containing the payload serialized as-is.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty 204 response.
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError translates err into the error envelope. Internal errors never
// leak their message to the client outside development mode.
func WithError(writer http.ResponseWriter, err error) {
	kind := failure.KindOf(err)

	envelope := Error{
		Error:   kind.Label(),
		Message: err.Error(),
		Details: failure.DetailsOf(err),
	}

	if kind == failure.KindInternal {
		logger.ErrorWithStack(err)

		envelope.Message = kind.Label()
		if config.Get().IsDevelopment() {
			envelope.Stack = fmt.Sprintf("%+v", err)
		}
	} else {
		log.Warn().Err(err).Str("kind", kind.Label()).Msg("request failed")
	}

	response(writer, kind.StatusCode(), envelope)
}

// WithRouteNotFound sends the uniform envelope for requests that match no route.
func WithRouteNotFound(writer http.ResponseWriter, request *http.Request) {
	envelope := Error{
		Error:   "Rota não encontrada",
		Message: fmt.Sprintf("A rota %s %s não existe", request.Method, request.URL.Path),
	}

	response(writer, http.StatusNotFound, envelope)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down.
func WithPreparingShutdown(writer http.ResponseWriter) {
	envelope := Error{
		Error:   "Indisponível",
		Message: "O servidor está sendo desligado",
	}

	response(writer, http.StatusServiceUnavailable, envelope)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
