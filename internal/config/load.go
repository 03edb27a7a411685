package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ASSETS_SERVER_PORT.
const EnvPrefix = "ASSETS"

var defaults = map[string]any{
	"server.port":                          8080,
	"server.log_level":                     "info",
	"server.shutdown_timeout_seconds":      10,
	"database.driver":                      "postgres",
	"database.url":                         "",
	"database.max_open_conns":              10,
	"database.max_idle_conns":              5,
	"database.auto_migrate":                false,
	"auth.enabled":                         false,
	"auth.jwt_secret":                      "",
	"auth.token_lifetime_minutes":          60,
	"auth.bcrypt_cost":                     10,
	"service.asset_reference_policy":       "strict",
	"service.transaction_reference_policy": "lenient",
	"service.empty_list_is_error":          false,
}

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with an explicit directory to search for config.yaml.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// DATABASE_URL is honoured without the prefix for compatibility with hosting platforms.
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
