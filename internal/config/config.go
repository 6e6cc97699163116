package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// URL is the mongodb:// connection string.
	URL string `mapstructure:"url" validate:"required"`

	// Name is the database holding the events and list-items collections.
	Name string `mapstructure:"name" validate:"required"`

	// PoolSize caps the driver's connection pool.
	PoolSize uint64 `mapstructure:"pool_size" validate:"gt=0"`
}
