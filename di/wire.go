//go:build wireinject
// +build wireinject

package di

import (
	"lembra/config"
	"lembra/infras/otel"
	"lembra/infras/postgres"
	healthHandler "lembra/internal/handlers/health"
	todoHandler "lembra/internal/handlers/todo"
	"lembra/transport/http"
	"lembra/transport/http/middleware"
	"lembra/transport/http/router"

	todoRepository "lembra/internal/domains/todo/repository"
	todoService "lembra/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	todoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		todoDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
