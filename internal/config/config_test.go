package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "Café", cfg.Name)
	assert.Equal(t, slog.LevelWarn, cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.MenuFile)
	assert.Empty(t, cfg.HTTPAddr)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 2*time.Hour, cfg.Redis.TicketTTL)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"CAFE_NAME":       "Corner Café",
		"CAFE_LOG_LEVEL":  "debug",
		"CAFE_LOG_FILE":   "/tmp/cafe.log",
		"CAFE_MENU_FILE":  "menu.yaml",
		"CAFE_HTTP_ADDR":  ":8080",
		"CAFE_REDIS_ADDR": "localhost:6379",
		"CAFE_TICKET_TTL": "15m",
	}))
	require.NoError(t, err)

	assert.Equal(t, "Corner Café", cfg.Name)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "/tmp/cafe.log", cfg.Log.File)
	assert.Equal(t, "menu.yaml", cfg.MenuFile)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 15*time.Minute, cfg.Redis.TicketTTL)
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"CAFE_LOG_LEVEL": "chatty"}))
	assert.Error(t, err)

	_, err = FromEnv(env(map[string]string{"CAFE_TICKET_TTL": "soon"}))
	assert.Error(t, err)

	_, err = FromEnv(env(map[string]string{"CAFE_TICKET_TTL": "-1m"}))
	assert.Error(t, err)
}
