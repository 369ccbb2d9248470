package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/osu-mist/game-curator-api/internal/api"
	"github.com/osu-mist/game-curator-api/internal/api/middleware"
	"github.com/osu-mist/game-curator-api/internal/config"
	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/platform/postgres"
	"github.com/osu-mist/game-curator-api/internal/query"
	"github.com/osu-mist/game-curator-api/internal/serializer"
	"github.com/osu-mist/game-curator-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	schema *openapi.Schema

	developers *api.DeveloperHandler
	games      *api.GameHandler
	reviews    *api.ReviewHandler

	limits *middleware.Limits
}

// newApplication wires stores, services and handlers on top of an open pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	schema, err := loadSchema(cfg.API.OpenAPIPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI schema: %w", err)
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		schema: schema,
		limits: middleware.NewLimits(middleware.LimitsConfig{
			CORSAllowedOrigins: cfg.API.CORSAllowedOrigins,
			RateLimitRequests:  cfg.API.RateLimitRequests,
			RateLimitWindow:    cfg.API.RateLimitWindow,
			RateLimitDisabled:  cfg.API.RateLimitDisabled,
		}),
	}

	developerSer, err := serializer.NewDeveloperSerializer(schema, cfg.Server.BaseURL)
	if err != nil {
		return nil, err
	}
	gameSer, err := serializer.NewGameSerializer(schema, cfg.Server.BaseURL)
	if err != nil {
		return nil, err
	}
	reviewSer, err := serializer.NewReviewSerializer(schema, cfg.Server.BaseURL)
	if err != nil {
		return nil, err
	}

	gameBounds, err := scoreBounds(schema, "GameResource")
	if err != nil {
		return nil, err
	}
	reviewBounds, err := scoreBounds(schema, "ReviewResource")
	if err != nil {
		return nil, err
	}

	developerSvc, err := service.NewDeveloperService(
		postgres.NewPostgresDeveloperStore(db, logger),
		developerSer,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create developer service: %w", err)
	}

	gameSvc, err := service.NewGameService(
		postgres.NewPostgresGameStore(db, logger),
		developerSvc,
		gameSer,
		gameBounds,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	reviewSvc, err := service.NewReviewService(
		postgres.NewPostgresReviewStore(db, logger),
		gameSvc,
		reviewSer,
		reviewBounds,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %w", err)
	}

	if app.developers, err = api.NewDeveloperHandler(developerSvc, schema); err != nil {
		return nil, err
	}
	if app.games, err = api.NewGameHandler(gameSvc, schema); err != nil {
		return nil, err
	}
	if app.reviews, err = api.NewReviewHandler(reviewSvc, schema); err != nil {
		return nil, err
	}

	logger.Info("Application initialized successfully", "base_path", schema.BasePath)
	return app, nil
}

func loadSchema(path string) (*openapi.Schema, error) {
	if path != "" {
		return openapi.LoadFile(path)
	}
	return openapi.Load()
}

// scoreBounds reads the permissive range filter defaults from the declared
// minimum and maximum of the score attribute.
func scoreBounds(schema *openapi.Schema, definition string) (query.Bounds, error) {
	lo, hi, ok := schema.AttributeBounds(definition, "score")
	if !ok {
		return query.Bounds{}, fmt.Errorf("%s.score must declare minimum and maximum", definition)
	}
	return query.Bounds{Min: lo, Max: hi}, nil
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
