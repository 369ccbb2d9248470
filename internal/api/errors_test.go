package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/osu-mist/game-curator-api/internal/api/shared"
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		ok     bool
		status int
		detail string
	}{
		{
			name:   "validation",
			err:    domain.NewValidationError("name is required"),
			ok:     true,
			status: http.StatusBadRequest,
			detail: "name is required",
		},
		{
			name:   "not_found",
			err:    store.NewStoreError("game", "get", "x", store.ErrGameNotFound),
			ok:     true,
			status: http.StatusNotFound,
			detail: "A game with the specified ID was not found.",
		},
		{
			name:   "conflict",
			err:    fmt.Errorf("delete: %w", store.ErrConflict),
			ok:     true,
			status: http.StatusConflict,
		},
		{
			name:   "invalid_entity",
			err:    store.NewStoreError("game", "create", "x", store.ErrInvalidEntity),
			ok:     true,
			status: http.StatusBadRequest,
		},
		{
			name:   "type_mismatch",
			err:    fmt.Errorf("%w: expected game", shared.ErrTypeMismatch),
			ok:     true,
			status: http.StatusConflict,
		},
		{
			name:   "empty_patch",
			err:    domain.ErrEmptyPatch,
			ok:     true,
			status: http.StatusBadRequest,
		},
		{
			name: "integrity_is_unexpected",
			err:  store.NewStoreError("game", "get", "x", store.ErrIntegrity),
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, ok := MapError(tc.err, "game")
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			assert.Equal(t, tc.status, doc.Status())
			if tc.detail != "" {
				assert.Equal(t, tc.detail, doc.Errors[0].Detail)
			}
		})
	}
}
