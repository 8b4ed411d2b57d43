package cmd

import (
	"gorm.io/gorm"

	"stockroom/internal/config"
	"stockroom/internal/handlers"
	"stockroom/internal/services"
)

type Server struct {
	Config        *config.Configuration
	DB            *gorm.DB
	BoxService    services.BoxService
	BoxHandler    *handlers.BoxHandler
	ItemService   services.ItemService
	ItemHandler   *handlers.ItemHandler
	SearchService services.SearchService
	SearchHandler *handlers.SearchHandler
	StatsService  services.StatsService
	StatsHandler  *handlers.StatsHandler
	HealthHandler *handlers.HealthHandler
	LogService    services.LogService
}

func NewServer(
	cfg *config.Configuration,
	db *gorm.DB,
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	searchService services.SearchService,
	searchHandler *handlers.SearchHandler,
	statsService services.StatsService,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
	logService services.LogService,
) *Server {
	return &Server{
		Config:        cfg,
		DB:            db,
		BoxService:    boxService,
		BoxHandler:    boxHandler,
		ItemService:   itemService,
		ItemHandler:   itemHandler,
		SearchService: searchService,
		SearchHandler: searchHandler,
		StatsService:  statsService,
		StatsHandler:  statsHandler,
		HealthHandler: healthHandler,
		LogService:    logService,
	}
}
