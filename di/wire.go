//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"todoapp/config"
	"todoapp/helper"
	"todoapp/infras/otel"
	"todoapp/infras/sqlite"
	"todoapp/transport/http"
	"todoapp/transport/http/middleware"
	"todoapp/transport/http/router"

	todoRepository "todoapp/internal/domains/todo/repository"
	todoService "todoapp/internal/domains/todo/service"
	todoHandler "todoapp/internal/handlers/todo"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var migrations = wire.NewSet(
	helper.NewMigrator,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	router.New,
)

func InitializeApp() (*App, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		migrations,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return nil, nil, nil
}
