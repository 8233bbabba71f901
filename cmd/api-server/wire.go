//go:build wireinject
// +build wireinject

package main

import (
	"BookBridge/config"
	"BookBridge/dao"
	"BookBridge/dao/cache"
	"BookBridge/handler"
	"BookBridge/pkg/database"
	"BookBridge/pkg/jwt"
	"BookBridge/pkg/server"
	"BookBridge/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		jwt.NewTokenService,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Book), "*"),
		wire.Struct(new(handler.Club), "*"),
		wire.Struct(new(handler.Membership), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
	)
	return nil, nil
}
