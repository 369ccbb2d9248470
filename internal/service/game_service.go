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

// GameService provides game operations. Writes naming a developer require
// that developer to exist.
type GameService interface {
	List(ctx context.Context, q query.Query) (*jsonapi.Document, error)
	GetByID(ctx context.Context, id int64) (*jsonapi.Document, error)
	Create(ctx context.Context, attrs domain.NewGame) (*jsonapi.Document, error)
	Update(ctx context.Context, id int64, patch domain.GamePatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type gameServiceImpl struct {
	resource[store.GameRow]
	store      store.GameStore
	developers Exister
}

// NewGameService creates a new GameService. bounds are the permissive score
// bounds applied when a list request omits scoreMin or scoreMax.
func NewGameService(
	games store.GameStore,
	developers Exister,
	ser *serializer.Serializer[store.GameRow],
	bounds query.Bounds,
	logger *slog.Logger,
) (GameService, error) {
	if games == nil {
		return nil, missingDependency("game", "games")
	}
	if developers == nil {
		return nil, missingDependency("game", "developers")
	}
	if ser == nil {
		return nil, missingDependency("game", "serializer")
	}

	return &gameServiceImpl{
		resource:   newResource("game", query.Games, bounds, ser, logger),
		store:      games,
		developers: developers,
	}, nil
}

// List implements GameService.List
func (s *gameServiceImpl) List(ctx context.Context, q query.Query) (*jsonapi.Document, error) {
	return s.list(ctx, q, s.store.List)
}

// GetByID implements GameService.GetByID
func (s *gameServiceImpl) GetByID(ctx context.Context, id int64) (*jsonapi.Document, error) {
	row, err := s.store.GetByID(ctx, id)
	return s.one("get", row, err)
}

// Create implements GameService.Create
func (s *gameServiceImpl) Create(ctx context.Context, attrs domain.NewGame) (*jsonapi.Document, error) {
	if err := s.requireParent(ctx, "create", s.developers, "developer", "developerId", attrs.DeveloperID); err != nil {
		return nil, err
	}

	row, err := s.store.Create(ctx, attrs)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create game",
			slog.Int64("developer_id", attrs.DeveloperID))
		return nil, NewServiceError("game", "create", "failed to save game", err)
	}
	return s.one("create", row, nil)
}

// Update implements GameService.Update
func (s *gameServiceImpl) Update(ctx context.Context, id int64, patch domain.GamePatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, NewServiceError("game", "update", "nothing to update", domain.ErrEmptyPatch)
	}
	if patch.DeveloperID != nil {
		if err := s.requireParent(ctx, "update", s.developers, "developer", "developerId", *patch.DeveloperID); err != nil {
			return 0, err
		}
	}

	n, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return 0, NewServiceError("game", "update", "failed to update game", err)
	}
	return n, nil
}

// Delete implements GameService.Delete
func (s *gameServiceImpl) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, NewServiceError("game", "delete", "failed to delete game", err)
	}
	return n, nil
}

// ExistsByID implements GameService.ExistsByID
func (s *gameServiceImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	found, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return false, NewServiceError("game", "exists", "failed to check game", err)
	}
	return found, nil
}
