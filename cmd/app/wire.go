//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/komu10/keiri_service"
)

func InitializeApp() (*App, error) {
	wire.Build(
		NewConfig,
		NewDatabase,
		keiri_service.NewMigrationHandler,
		keiri_service.NewSeedHandler,
		keiri_service.NewServices,
		NewApp,
	)

	return &App{}, nil
}
