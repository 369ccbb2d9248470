package service

import (
	"context"
	"log/slog"

	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/platform/logger"
	"github.com/osu-mist/game-curator-api/internal/query"
	"github.com/osu-mist/game-curator-api/internal/serializer"
	"github.com/osu-mist/game-curator-api/internal/store"
)

// DeveloperService provides developer operations.
type DeveloperService interface {
	// List returns the requested page of developers matching q.
	List(ctx context.Context, q query.Query) (*jsonapi.Document, error)

	// GetByID returns nil, nil when the developer does not exist.
	GetByID(ctx context.Context, id int64) (*jsonapi.Document, error)

	// Create stores a developer and returns the stored resource.
	Create(ctx context.Context, attrs domain.NewDeveloper) (*jsonapi.Document, error)

	// Update applies patch and returns the rows affected.
	Update(ctx context.Context, id int64, patch domain.DeveloperPatch) (int64, error)

	// Delete returns the rows affected.
	Delete(ctx context.Context, id int64) (int64, error)

	// ExistsByID reports whether the developer exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type developerServiceImpl struct {
	resource[store.DeveloperRow]
	store store.DeveloperStore
}

// NewDeveloperService creates a new DeveloperService.
// It returns an error if any of the required dependencies are nil.
func NewDeveloperService(
	developers store.DeveloperStore,
	ser *serializer.Serializer[store.DeveloperRow],
	logger *slog.Logger,
) (DeveloperService, error) {
	if developers == nil {
		return nil, missingDependency("developer", "developers")
	}
	if ser == nil {
		return nil, missingDependency("developer", "serializer")
	}

	return &developerServiceImpl{
		resource: newResource("developer", query.Developers, query.Bounds{}, ser, logger),
		store:    developers,
	}, nil
}

// List implements DeveloperService.List
func (s *developerServiceImpl) List(ctx context.Context, q query.Query) (*jsonapi.Document, error) {
	return s.list(ctx, q, s.store.List)
}

// GetByID implements DeveloperService.GetByID
func (s *developerServiceImpl) GetByID(ctx context.Context, id int64) (*jsonapi.Document, error) {
	row, err := s.store.GetByID(ctx, id)
	return s.one("get", row, err)
}

// Create implements DeveloperService.Create
func (s *developerServiceImpl) Create(ctx context.Context, attrs domain.NewDeveloper) (*jsonapi.Document, error) {
	row, err := s.store.Create(ctx, attrs)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create developer",
			slog.String("name", attrs.Name))
		return nil, NewServiceError("developer", "create", "failed to save developer", err)
	}
	return s.one("create", row, nil)
}

// Update implements DeveloperService.Update
func (s *developerServiceImpl) Update(ctx context.Context, id int64, patch domain.DeveloperPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, NewServiceError("developer", "update", "nothing to update", domain.ErrEmptyPatch)
	}
	n, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return 0, NewServiceError("developer", "update", "failed to update developer", err)
	}
	return n, nil
}

// Delete implements DeveloperService.Delete
func (s *developerServiceImpl) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, NewServiceError("developer", "delete", "failed to delete developer", err)
	}
	return n, nil
}

// ExistsByID implements DeveloperService.ExistsByID
func (s *developerServiceImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	found, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return false, NewServiceError("developer", "exists", "failed to check developer", err)
	}
	return found, nil
}
