//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"stockroom/cmd"
	"stockroom/database"
	"stockroom/internal/handlers"
	"stockroom/internal/repository"
	"stockroom/internal/services"
	"stockroom/internal/validation"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		ProvideConfiguration,
		database.SetupDatabase,
		validation.New,
		services.NewLogService,
		repository.NewBoxRepository,
		repository.NewItemRepository,
		services.NewBoxService,
		services.NewItemService,
		services.NewSearchService,
		services.NewStatsService,
		handlers.NewBoxHandler,
		handlers.NewItemHandler,
		handlers.NewSearchHandler,
		handlers.NewStatsHandler,
		handlers.NewHealthHandler,
	)
	return nil, nil
}
