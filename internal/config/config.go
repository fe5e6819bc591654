package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Seed     SeedConfig     `mapstructure:"seed" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Path is the SQLite database file. It is created on first open.
	Path string `mapstructure:"path" validate:"required"`
}

// SeedConfig controls the development-only bulk seeding endpoint.
type SeedConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Count         int  `mapstructure:"count" validate:"gt=0,lte=10000"`
	RatePerMinute int  `mapstructure:"rate_per_minute" validate:"gt=0"`
}
