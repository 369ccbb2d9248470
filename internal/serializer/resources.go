package serializer

import (
	"time"

	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/store"
)

// NewDeveloperSerializer serializes developers under /developers.
func NewDeveloperSerializer(schema *openapi.Schema, baseURL string) (*Serializer[store.DeveloperRow], error) {
	return New(schema, baseURL, Config[store.DeveloperRow]{
		Definition: "DeveloperResource",
		Path:       "/developers",
		ID:         func(r *store.DeveloperRow) int64 { return r.ID },
		Attributes: func(r *store.DeveloperRow) (map[string]any, error) {
			return map[string]any{
				"name":    r.Name,
				"website": r.Website,
			}, nil
		},
	})
}

// NewGameSerializer serializes games under /games. A game without a score
// renders score as null.
func NewGameSerializer(schema *openapi.Schema, baseURL string) (*Serializer[store.GameRow], error) {
	return New(schema, baseURL, Config[store.GameRow]{
		Definition: "GameResource",
		Path:       "/games",
		ID:         func(r *store.GameRow) int64 { return r.ID },
		Attributes: func(r *store.GameRow) (map[string]any, error) {
			var score any
			if r.Score.Valid {
				f, err := ParseScore(r.Score.String)
				if err != nil {
					return nil, err
				}
				score = f
			}
			return map[string]any{
				"developerId": r.DeveloperID,
				"name":        r.Name,
				"score":       score,
				"releaseDate": formatDate(r.ReleaseDate, domain.GameDateLayout),
			}, nil
		},
	})
}

// NewReviewSerializer serializes reviews under /reviews.
func NewReviewSerializer(schema *openapi.Schema, baseURL string) (*Serializer[store.ReviewRow], error) {
	return New(schema, baseURL, Config[store.ReviewRow]{
		Definition: "ReviewResource",
		Path:       "/reviews",
		ID:         func(r *store.ReviewRow) int64 { return r.ID },
		Attributes: func(r *store.ReviewRow) (map[string]any, error) {
			score, err := ParseScore(r.Score)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"gameId":     r.GameID,
				"reviewer":   r.Reviewer,
				"score":      score,
				"reviewText": r.ReviewText,
				"reviewDate": formatDate(r.ReviewDate, domain.ReviewDateLayout),
			}, nil
		},
	})
}

// formatDate renders the UTC calendar day of t, the same day the reviewDate
// filter compares against. An instant written at 23:30 -07:00 renders as the
// following day.
func formatDate(t time.Time, layout string) string {
	return t.UTC().Format(layout)
}
