package config

import (
	"fmt"
	"os"
	"time"
)

const (
	DefaultPort            = "3000"
	DefaultDatabasePath    = "database.db"
	DefaultUploadsDir      = "public/uploads"
	DefaultSessionDuration = 5 * time.Hour
)

type Config struct {
	Port            string
	DatabasePath    string
	UploadsDir      string
	SessionDuration time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", DefaultPort),
		DatabasePath:    getEnv("DATABASE_PATH", DefaultDatabasePath),
		UploadsDir:      getEnv("UPLOADS_DIR", DefaultUploadsDir),
		SessionDuration: DefaultSessionDuration,
	}

	if raw, exists := os.LookupEnv("SESSION_DURATION"); exists {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_DURATION %q: %w", raw, err)
		}
		cfg.SessionDuration = d
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
