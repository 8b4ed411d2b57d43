package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

type ServerConfig struct {
	Port      int        `yaml:"port"`
	CORS      CORSConfig `yaml:"cors"`
	LogConfig LogConfig  `yaml:"log"`
}

type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// LoadConfiguration reads the yaml configuration file, falling back to
// defaults when the file is absent. A .env file, if present, is loaded first
// so database environment variables can be kept out of the yaml.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	_ = godotenv.Load()

	config := defaultConfiguration()
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Port: 8000,
			CORS: CORSConfig{AllowOrigins: "*"},
			LogConfig: LogConfig{
				Level:  "info",
				Format: "text",
				Output: "stdout",
			},
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "stockroom.db",
		},
	}
}
