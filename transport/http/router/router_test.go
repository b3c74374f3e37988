package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lembra/infras/otel/mocks"
	serviceMocks "lembra/internal/domains/todo/service/mocks"
	"lembra/internal/handlers/health"
	"lembra/internal/handlers/todo"
	"lembra/transport/http/router"
)

func newMux(t *testing.T) *chi.Mux {
	t.Helper()

	ctrl := gomock.NewController(t)

	appRouter := router.New(router.DomainHandlers{
		Health: health.New(),
		Todo:   todo.New(serviceMocks.NewMockTodo(ctrl), mocks.NewOtel()),
	})

	mux := chi.NewRouter()
	appRouter.SetupRoutes(mux)

	return mux
}

func TestSetupRoutes_UnmatchedRoute(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		wantMessage string
	}{
		{
			name:        "unknown path",
			method:      http.MethodGet,
			target:      "/unknown",
			wantMessage: "A rota GET /unknown não existe",
		},
		{
			name:        "known path with wrong method",
			method:      http.MethodPost,
			target:      "/health",
			wantMessage: "A rota POST /health não existe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newMux(t)

			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusNotFound, recorder.Code)

			body := map[string]any{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, "Rota não encontrada", body["error"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestSetupRoutes_MountsDomains(t *testing.T) {
	mux := newMux(t)

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
