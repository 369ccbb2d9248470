package store

import (
	"context"

	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/query"
)

// DeveloperRow is a developers row.
type DeveloperRow struct {
	ID      int64
	Name    string
	Website string
}

// DeveloperStore defines the interface for developer persistence.
type DeveloperStore interface {
	// List returns every developer matching pred, ordered by id.
	List(ctx context.Context, pred query.Predicate) ([]DeveloperRow, error)

	// GetByID returns nil, nil when no row has the id.
	// Returns ErrIntegrity if more than one row does.
	GetByID(ctx context.Context, id int64) (*DeveloperRow, error)

	// Create inserts a developer and returns the stored row.
	Create(ctx context.Context, d domain.NewDeveloper) (*DeveloperRow, error)

	// Update applies the supplied attributes and returns the rows affected.
	Update(ctx context.Context, id int64, patch domain.DeveloperPatch) (int64, error)

	// Delete returns the rows affected.
	// Returns ErrConflict while games still reference the developer.
	Delete(ctx context.Context, id int64) (int64, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)
}
