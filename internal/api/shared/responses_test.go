package shared

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         any
		expectedBody string
	}{
		{
			name:         "document",
			status:       http.StatusOK,
			data:         jsonapi.Document{Data: []jsonapi.Resource{}},
			expectedBody: `{"data":[]}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/games", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, jsonapi.MediaType, w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/games/999", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, jsonapi.NotFound("A game with the specified ID was not found."))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var doc jsonapi.ErrorDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, "404", doc.Errors[0].Status)
	assert.Equal(t, "1404", doc.Errors[0].Code)
	assert.Equal(t, "A game with the specified ID was not found.", doc.Errors[0].Detail)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		doc       jsonapi.ErrorDocument
		opts      []ResponseOption
		wantLevel string
	}{
		{
			name:      "server_error_logs_at_error",
			doc:       jsonapi.InternalServerError(jsonapi.UnexpectedConditionDetail),
			wantLevel: "ERROR",
		},
		{
			name:      "rate_limit_logs_at_warn",
			doc:       jsonapi.TooManyRequests("slow down"),
			wantLevel: "WARN",
		},
		{
			name:      "client_error_logs_at_debug",
			doc:       jsonapi.BadRequest("name is required"),
			wantLevel: "DEBUG",
		},
		{
			name:      "elevated_client_error",
			doc:       jsonapi.Conflict("type mismatch"),
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.GetTestLogger(t)
			ctx := logger.WithLogger(WithTraceID(context.Background(), "trace-1"), log)
			req := httptest.NewRequest(http.MethodPost, "/v1/reviews", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			cause := errors.New("pq: connection to postgres://curator:hunter2@db:5432/games failed")
			RespondWithErrorAndLog(w, req, tc.doc, cause, tc.opts...)

			assert.Equal(t, tc.doc.Status(), w.Code)
			assert.NotContains(t, w.Body.String(), "hunter2")
			assert.NotContains(t, buf.String(), "hunter2")

			entries, err := buf.GetLogEntries()
			require.NoError(t, err)
			require.NotEmpty(t, entries)
			last := entries[len(entries)-1]
			assert.Equal(t, tc.wantLevel, last["level"])
			assert.Equal(t, "trace-1", last["trace_id"])
		})
	}
}

func TestRespondNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	RespondNoContent(w)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
