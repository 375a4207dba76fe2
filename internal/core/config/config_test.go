package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_PATH")
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("DASHBOARD_WINDOW_DAYS")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "sales.db", cfg.Database.Path)
	assert.Equal(t, "", cfg.Cache.RedisURL)
	assert.Equal(t, 60, cfg.Cache.ChartTTLSeconds)
	assert.Equal(t, 30, cfg.Dashboard.WindowDays)
	assert.Equal(t, 5, cfg.Dashboard.TopProductsLimit)
	assert.Equal(t, 10, cfg.Dashboard.RecentOrdersLimit)
	assert.Equal(t, "http://localhost:8080", cfg.Monitor.APIBaseURL)
	assert.Equal(t, 5, cfg.Monitor.RefreshIntervalMinutes)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_PATH", "/var/lib/sales/orders.db")
	os.Setenv("REDIS_URL", "redis://localhost:6379/1")
	os.Setenv("CHART_CACHE_TTL_SECONDS", "0")
	os.Setenv("DASHBOARD_WINDOW_DAYS", "14")
	os.Setenv("TOP_PRODUCTS_LIMIT", "8")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("DB_PATH")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("CHART_CACHE_TTL_SECONDS")
		os.Unsetenv("DASHBOARD_WINDOW_DAYS")
		os.Unsetenv("TOP_PRODUCTS_LIMIT")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "/var/lib/sales/orders.db", cfg.Database.Path)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Cache.RedisURL)
	assert.Equal(t, 0, cfg.Cache.ChartTTLSeconds)
	assert.Equal(t, 14, cfg.Dashboard.WindowDays)
	assert.Equal(t, 8, cfg.Dashboard.TopProductsLimit)
}
