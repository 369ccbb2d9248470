package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goccy/go-json"
	"github.com/osu-mist/game-curator-api/internal/config"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			BaseURL:         "http://localhost:8080",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		Database: config.DatabaseConfig{
			URL:          "postgres://curator@localhost/curator",
			MaxOpenConns: 1,
			PingTimeout:  time.Second,
		},
		API: config.APIConfig{
			CORSAllowedOrigins: []string{"*"},
			RateLimitRequests:  100,
			RateLimitWindow:    time.Minute,
		},
	}
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	l, _ := logger.GetTestLogger(t)
	return l
}

func newTestApp(t *testing.T) (*application, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	app, err := newApplication(testConfig(), testLogger(t), db)
	require.NoError(t, err)
	return app, mock
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewApplication_RequiresDB(t *testing.T) {
	_, err := newApplication(testConfig(), testLogger(t), nil)
	assert.Error(t, err)
}

func TestNewApplication_BadSchemaOverride(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cfg := testConfig()
	cfg.API.OpenAPIPath = t.TempDir() + "/missing.yaml"

	_, err = newApplication(cfg, testLogger(t), db)
	assert.Error(t, err)
}

func TestRouter_GameNotFound(t *testing.T) {
	app, mock := newTestApp(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, developer_id, name, score, release_date FROM games WHERE id = $1`)).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "developer_id", "name", "score", "release_date"}))

	w := get(t, app.setupRouter(), "/v1/games/999")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, jsonapi.MediaType, w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	var doc jsonapi.ErrorDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "A game with the specified ID was not found.", doc.Errors[0].Detail)
}

func TestRouter_ListDevelopers(t *testing.T) {
	app, mock := newTestApp(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, website FROM developers WHERE 1=1 AND name = $1 ORDER BY id`)).
		WithArgs("Valve").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "website"}).
			AddRow(int64(1), "Valve", "https://www.valvesoftware.com"))

	w := get(t, app.setupRouter(), "/v1/developers?name=Valve")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Valve"`)
	assert.Contains(t, w.Body.String(), `"totalResults":1`)
}

func TestRouter_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		app, mock := newTestApp(t)
		mock.ExpectPing()

		w := get(t, app.setupRouter(), "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("database_down", func(t *testing.T) {
		app, mock := newTestApp(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := get(t, app.setupRouter(), "/health")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	app, _ := newTestApp(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodPut, "/v1/games/1", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, jsonapi.MediaType, w.Header().Get("Content-Type"))
	assert.Equal(t, "GET, PATCH, DELETE", w.Header().Get("Allow"))

	var doc jsonapi.ErrorDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "405", doc.Errors[0].Status)
	assert.Equal(t, jsonapi.CodeMethodNotAllowed, doc.Errors[0].Code)
	assert.Equal(t, "Method PUT is not allowed on this resource.", doc.Errors[0].Detail)
}

func TestRouter_OperationalRoutes(t *testing.T) {
	app, _ := newTestApp(t)
	router := app.setupRouter()

	w := get(t, router, "/openapi.yaml")
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Equal(t, app.schema.Raw(), body)

	w = get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")

	w = get(t, router, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, jsonapi.MediaType, w.Header().Get("Content-Type"))
}

func TestCleanup_ClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	app := &application{db: db, logger: testLogger(t)}
	app.cleanup()

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Error(t, app.db.Ping())
}
