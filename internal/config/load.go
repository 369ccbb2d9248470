package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads,
// e.g. CURATOR_SERVER_PORT or CURATOR_DATABASE_URL.
const EnvPrefix = "CURATOR"

// ConfigFileEnv names the environment variable holding an explicit config file path.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// keys lists every setting so each can be bound to its environment variable.
// AutomaticEnv alone does not reach nested keys during Unmarshal.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.base_url",
	"server.read_timeout",
	"server.write_timeout",
	"server.shutdown_timeout",
	"database.url",
	"database.max_open_conns",
	"database.max_idle_conns",
	"database.conn_max_lifetime",
	"database.ping_timeout",
	"api.openapi_path",
	"api.cors_allowed_origins",
	"api.rate_limit_requests",
	"api.rate_limit_window",
	"api.rate_limit_disabled",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.ping_timeout", "5s")

	v.SetDefault("api.openapi_path", "")
	v.SetDefault("api.cors_allowed_origins", []string{"*"})
	v.SetDefault("api.rate_limit_requests", 100)
	v.SetDefault("api.rate_limit_window", "1m")
	v.SetDefault("api.rate_limit_disabled", false)
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// The config file is CURATOR_CONFIG_FILE when set, otherwise config.yaml in
// the working directory if present.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(ConfigFileEnv))
}

// LoadFile behaves like Load but reads the given config file. An empty path
// falls back to an optional config.yaml in the working directory.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
