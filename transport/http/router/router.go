package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lembra/internal/handlers/health"
	"lembra/internal/handlers/todo"
	"lembra/transport/http/response"
)

type DomainHandlers struct {
	Health health.Handler
	Todo   todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Todo.Router(router)

	router.NotFound(func(w http.ResponseWriter, request *http.Request) {
		response.WithRouteNotFound(w, request)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, request *http.Request) {
		response.WithRouteNotFound(w, request)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
