package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	LogLevel      string
	Backend       string
	DataFile      string
	SQLitePath    string
	PostgresDSN   string
	HistogramDays int
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads .env (if present) and the environment exactly once.
func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load(".env")
		cfg = &Config{
			Env:           getEnv("APP_ENV", "development"),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			Backend:       getEnv("STORAGE_BACKEND", "file"),
			DataFile:      getEnv("SLEEP_FILE", "data/sleep_logs.json"),
			SQLitePath:    getEnv("SQLITE_PATH", "data/lunasleep.db"),
			PostgresDSN:   getEnv("POSTGRES_DSN", ""),
			HistogramDays: 14,
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "file":
		if c.DataFile == "" {
			return errors.New("file storage requires SLEEP_FILE to be set")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("sqlite storage requires SQLITE_PATH to be set")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
