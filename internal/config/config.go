package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	API      APIConfig      `mapstructure:"api"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// BaseURL prefixes every link in a response document, e.g. https://api.example.edu.
	// The schema basePath is appended to it.
	BaseURL         string        `mapstructure:"base_url"         validate:"required,url"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"               validate:"required,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	PingTimeout     time.Duration `mapstructure:"ping_timeout"      validate:"gt=0"`
}

// APIConfig contains settings for the HTTP surface.
type APIConfig struct {
	// OpenAPIPath overrides the embedded schema document when set.
	OpenAPIPath        string        `mapstructure:"openapi_path"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins" validate:"dive,required"`
	RateLimitRequests  int           `mapstructure:"rate_limit_requests"  validate:"gte=1"`
	RateLimitWindow    time.Duration `mapstructure:"rate_limit_window"    validate:"gt=0"`
	RateLimitDisabled  bool          `mapstructure:"rate_limit_disabled"`
}
