package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockroom/internal/config"
	"stockroom/internal/models"
)

// SetupDatabase opens the backend selected by the configuration and migrates
// the schema. Both backends sit behind the same repository contract.
func SetupDatabase(cfg *config.Configuration) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dsn, err := postgresDSN()
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		path := cfg.Database.Path
		if path == "" {
			path = "stockroom.db"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Box{}, &models.Item{}); err != nil {
		return nil, err
	}
	return db, nil
}

func postgresDSN() (string, error) {
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) == "" && envVariable != "DB_SSLMODE" {
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
		if envVariable == "DB_SSLMODE" && os.Getenv(envVariable) == "" {
			if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
				return "", err
			}
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
