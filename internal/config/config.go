package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Service  ServiceConfig  `mapstructure:"service" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig selects and configures the store backend.
type DatabaseConfig struct {
	// Driver is "postgres" for the SQL store or "memory" for the in-process store.
	Driver       string `mapstructure:"driver" validate:"required,oneof=postgres memory"`
	URL          string `mapstructure:"url" validate:"required_if=Driver postgres"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	// AutoMigrate applies pending migrations on startup.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// AuthConfig contains credential hashing and token settings.
type AuthConfig struct {
	// Enabled turns on bearer-token checks for the API.
	Enabled              bool   `mapstructure:"enabled"`
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required_if=Enabled true"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// ServiceConfig carries the domain-service policies.
type ServiceConfig struct {
	// AssetReferencePolicy governs unresolvable owner/category ids in asset updates.
	AssetReferencePolicy string `mapstructure:"asset_reference_policy" validate:"oneof=strict lenient"`
	// TransactionReferencePolicy governs unresolvable asset ids in transaction updates.
	TransactionReferencePolicy string `mapstructure:"transaction_reference_policy" validate:"oneof=strict lenient"`
	// EmptyListIsError makes every list operation fail with not-found on an empty result.
	EmptyListIsError bool `mapstructure:"empty_list_is_error"`
}
