package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/osu-mist/game-curator-api/internal/api/middleware"
	"github.com/osu-mist/game-curator-api/internal/api/shared"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/redact"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware(app.logger))
	r.Use(middleware.MetricsMiddleware)
	r.Use(app.limits.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, jsonapi.NotFound("The requested resource was not found."))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Allow", strings.Join(allowedMethods(r, req.URL.Path), ", "))
		shared.RespondWithError(w, req, jsonapi.MethodNotAllowed(
			fmt.Sprintf("Method %s is not allowed on this resource.", req.Method)))
	})

	r.Route(app.schema.BasePath, func(r chi.Router) {
		r.Use(app.limits.RateLimit())

		r.Route("/developers", app.developers.Routes)
		r.Route("/games", app.games.Routes)
		r.Route("/reviews", app.reviews.Routes)
	})

	r.Get("/health", app.health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(app.schema.Raw())
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/openapi.yaml")))

	return r
}

var routeMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete,
}

// allowedMethods lists the methods mux routes for path.
func allowedMethods(mux *chi.Mux, path string) []string {
	var allowed []string
	for _, m := range routeMethods {
		if mux.Match(chi.NewRouteContext(), m, path) {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

// health reports 200 when the database answers a ping within the configured timeout.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), app.config.Database.PingTimeout)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		app.logger.Error("Health check failed", redact.Attr(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("UNAVAILABLE"))
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
