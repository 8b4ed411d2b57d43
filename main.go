package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"stockroom/database"
	"stockroom/internal/config"
	"stockroom/internal/routers"
)

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)

	cfg := server.Config
	app := fiber.New(fiber.Config{
		AppName: "Stockroom",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	routers.SetupRoutes(app, server)

	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func ProvideConfiguration() (*config.Configuration, error) {
	return config.LoadConfiguration("stockroom.yaml")
}
