package service

import (
	"testing"

	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/query"
	"github.com/osu-mist/game-curator-api/internal/serializer"
	"github.com/osu-mist/game-curator-api/internal/store"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8080"

var scoreBounds = query.Bounds{Min: 0, Max: 5}

func testSchema(t *testing.T) *openapi.Schema {
	t.Helper()
	schema, err := openapi.Load()
	require.NoError(t, err)
	return schema
}

func developerSerializer(t *testing.T) *serializer.Serializer[store.DeveloperRow] {
	t.Helper()
	s, err := serializer.NewDeveloperSerializer(testSchema(t), testBaseURL)
	require.NoError(t, err)
	return s
}

func gameSerializer(t *testing.T) *serializer.Serializer[store.GameRow] {
	t.Helper()
	s, err := serializer.NewGameSerializer(testSchema(t), testBaseURL)
	require.NoError(t, err)
	return s
}

func reviewSerializer(t *testing.T) *serializer.Serializer[store.ReviewRow] {
	t.Helper()
	s, err := serializer.NewReviewSerializer(testSchema(t), testBaseURL)
	require.NoError(t, err)
	return s
}

func ptr[T any](v T) *T {
	return &v
}
