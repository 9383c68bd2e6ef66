package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jcmexdev/cafe-console/internal/pkg/telemetry"
)

type Config struct {
	Name     string
	Log      LogConfig
	MenuFile string
	HTTPAddr string
	Redis    RedisConfig
}

type LogConfig struct {
	Level slog.Level
	File  string
}

type RedisConfig struct {
	Addr      string
	TicketTTL time.Duration
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function so tests don't touch
// the process environment.
func FromEnv(lookup func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := lookup(key); v != "" {
			return v
		}
		return def
	}

	level, err := telemetry.ParseLevel(get("CAFE_LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("config: CAFE_LOG_LEVEL: %w", err)
	}

	ttl, err := time.ParseDuration(get("CAFE_TICKET_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("config: CAFE_TICKET_TTL: %w", err)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("config: CAFE_TICKET_TTL must not be negative")
	}

	return &Config{
		Name: get("CAFE_NAME", "Café"),
		Log: LogConfig{
			Level: level,
			File:  get("CAFE_LOG_FILE", ""),
		},
		MenuFile: get("CAFE_MENU_FILE", ""),
		HTTPAddr: get("CAFE_HTTP_ADDR", ""),
		Redis: RedisConfig{
			Addr:      get("CAFE_REDIS_ADDR", ""),
			TicketTTL: ttl,
		},
	}, nil
}
