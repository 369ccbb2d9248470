package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/query"
)

// GameRow is a games row. Score is the NUMERIC column as text and is
// invalid when the game has no score.
type GameRow struct {
	ID          int64
	DeveloperID int64
	Name        string
	Score       sql.NullString
	ReleaseDate time.Time
}

// GameStore defines the interface for game persistence.
type GameStore interface {
	// List returns every game matching pred, ordered by id.
	List(ctx context.Context, pred query.Predicate) ([]GameRow, error)

	// GetByID returns nil, nil when no row has the id.
	// Returns ErrIntegrity if more than one row does.
	GetByID(ctx context.Context, id int64) (*GameRow, error)

	// Create inserts a game and returns the stored row. The developer is not
	// checked here; callers gate on DeveloperStore.ExistsByID.
	Create(ctx context.Context, g domain.NewGame) (*GameRow, error)

	// Update applies the supplied attributes and returns the rows affected.
	Update(ctx context.Context, id int64, patch domain.GamePatch) (int64, error)

	// Delete returns the rows affected.
	// Returns ErrConflict while reviews still reference the game.
	Delete(ctx context.Context, id int64) (int64, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)
}
