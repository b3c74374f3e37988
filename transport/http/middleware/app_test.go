package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lembra/config"
	"lembra/infras/otel/mocks"
	"lembra/transport/http/middleware"
)

func newMiddleware(corsEnabled bool) middleware.AppMiddleware {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = corsEnabled
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{"GET", "POST"}

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg)
}

func TestRecoverer(t *testing.T) {
	mw := newMiddleware(false)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	mw.Recoverer(panicking).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/todos", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Erro interno do servidor", body["error"])
	assert.Equal(t, "Erro interno do servidor", body["message"])
}

func TestRecoverer_PassesThrough(t *testing.T) {
	mw := newMiddleware(false)

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	recorder := httptest.NewRecorder()
	mw.Recoverer(ok).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/todos", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestCORS_DisabledIsNoop(t *testing.T) {
	mw := newMiddleware(false)

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/todos", nil)
	request.Header.Set("Origin", "https://example.com")

	recorder := httptest.NewRecorder()
	mw.CORS()(ok).ServeHTTP(recorder, request)

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Enabled(t *testing.T) {
	mw := newMiddleware(true)

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/todos", nil)
	request.Header.Set("Origin", "https://example.com")

	recorder := httptest.NewRecorder()
	mw.CORS()(ok).ServeHTTP(recorder, request)

	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
