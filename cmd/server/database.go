package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/osu-mist/game-curator-api/internal/config"
	"github.com/osu-mist/game-curator-api/internal/metrics"
	"github.com/osu-mist/game-curator-api/internal/redact"
	"github.com/prometheus/client_golang/prometheus"
)

// dbStatsName labels the pool collectors on /metrics.
const dbStatsName = "game_curator"

// setupAppDatabase opens the pool, applies the configured limits and verifies
// the connection with a ping bounded by the configured timeout.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	if err := metrics.RegisterDBStats(prometheus.DefaultRegisterer, db, dbStatsName); err != nil {
		logger.Warn("database pool metrics not registered", redact.Attr(err))
	}

	logger.Info("Database connection established",
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.Database.MaxIdleConns))
	return db, nil
}
