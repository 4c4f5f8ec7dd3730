package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment with an
// optional .env file on top.
type Config struct {
	StoragePath string `env:"STORAGE_PATH" envDefault:"data/companion.json"`
	UserID      string `env:"COMPANION_USER" envDefault:"local"`
	SyncDir     string `env:"SYNC_DIR"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using system environment variables")
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
