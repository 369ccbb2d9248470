package main

import (
	"fmt"
	"log/slog"

	"github.com/osu-mist/game-curator-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"base_url", cfg.Server.BaseURL)

	if cfg.API.OpenAPIPath != "" {
		slog.Debug("OpenAPI schema override configured", "path", cfg.API.OpenAPIPath)
	}

	return cfg, nil
}
