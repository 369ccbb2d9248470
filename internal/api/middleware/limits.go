package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/osu-mist/game-curator-api/internal/api/shared"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/metrics"
)

// LimitsConfig holds the CORS and rate limiting settings.
type LimitsConfig struct {
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	RateLimitDisabled  bool
}

// Limits provides the CORS and rate limiting middleware.
type Limits struct {
	config LimitsConfig
	cors   func(http.Handler) http.Handler
}

// NewLimits creates the middleware factory.
func NewLimits(cfg LimitsConfig) *Limits {
	return &Limits{
		config: cfg,
		cors: cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{TraceHeader, "Location"},
			MaxAge:         300,
		}),
	}
}

// CORS returns the go-chi/cors middleware.
func (l *Limits) CORS() func(http.Handler) http.Handler {
	return l.cors
}

// RateLimit limits requests per client IP. Rejected requests get a JSON:API
// 429 document.
func (l *Limits) RateLimit() func(http.Handler) http.Handler {
	if l.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		l.config.RateLimitRequests,
		l.config.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(routePattern(r))
			shared.RespondWithErrorAndLog(w, r,
				jsonapi.TooManyRequests("Rate limit exceeded. Try again later."), nil)
		}),
	)
}
