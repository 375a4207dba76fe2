package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Database holds the order store configuration.
	Database DatabaseConfig `mapstructure:",squash"`

	// Cache holds the chart-data cache configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// Dashboard holds the reporting defaults.
	Dashboard DashboardConfig `mapstructure:",squash"`

	// Monitor holds the terminal monitor client configuration.
	Monitor MonitorConfig `mapstructure:",squash"`
}

// DatabaseConfig holds the SQLite order store location.
type DatabaseConfig struct {
	// Path is the SQLite database file path.
	Path string `mapstructure:"DB_PATH" default:"sales.db"`
}

// CacheConfig holds the optional Redis chart-data cache settings.
type CacheConfig struct {
	// RedisURL is the Redis connection URL. Empty disables the cache.
	RedisURL string `mapstructure:"REDIS_URL"`
	// ChartTTLSeconds is how long a cached chart payload stays fresh.
	// 0 disables caching even when Redis is configured.
	ChartTTLSeconds int `mapstructure:"CHART_CACHE_TTL_SECONDS" default:"60"`
}

// DashboardConfig holds the reporting window and list limits.
type DashboardConfig struct {
	// WindowDays is the default trailing window when no range is requested.
	WindowDays int `mapstructure:"DASHBOARD_WINDOW_DAYS" default:"30"`
	// TopProductsLimit caps the top-sellers table.
	TopProductsLimit int `mapstructure:"TOP_PRODUCTS_LIMIT" default:"5"`
	// RecentOrdersLimit caps the recent-orders table.
	RecentOrdersLimit int `mapstructure:"RECENT_ORDERS_LIMIT" default:"10"`
}

// MonitorConfig holds settings for the cmd/monitor client.
type MonitorConfig struct {
	// APIBaseURL is the dashboard service base URL the monitor polls.
	APIBaseURL string `mapstructure:"API_BASE_URL" default:"http://localhost:8080"`
	// RefreshIntervalMinutes is the auto-refresh cadence.
	RefreshIntervalMinutes int `mapstructure:"REFRESH_INTERVAL_MINUTES" default:"5"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
