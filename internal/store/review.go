package store

import (
	"context"
	"time"

	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/query"
)

// ReviewRow is a reviews row. Score is the NUMERIC column as text.
type ReviewRow struct {
	ID         int64
	GameID     int64
	Reviewer   string
	Score      string
	ReviewText string
	ReviewDate time.Time
}

// ReviewStore defines the interface for review persistence.
type ReviewStore interface {
	// List returns every review matching pred, ordered by id.
	List(ctx context.Context, pred query.Predicate) ([]ReviewRow, error)

	// GetByID returns nil, nil when no row has the id.
	// Returns ErrIntegrity if more than one row does.
	GetByID(ctx context.Context, id int64) (*ReviewRow, error)

	// Create inserts a review and returns the stored row. A missing
	// reviewDate is stored as the current time.
	Create(ctx context.Context, r domain.NewReview) (*ReviewRow, error)

	// Update applies the supplied attributes and returns the rows affected.
	Update(ctx context.Context, id int64, patch domain.ReviewPatch) (int64, error)

	// Delete returns the rows affected.
	Delete(ctx context.Context, id int64) (int64, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)
}
