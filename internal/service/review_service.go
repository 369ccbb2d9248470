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

// ReviewService provides review operations. Writes naming a game require
// that game to exist.
type ReviewService interface {
	List(ctx context.Context, q query.Query) (*jsonapi.Document, error)
	GetByID(ctx context.Context, id int64) (*jsonapi.Document, error)
	Create(ctx context.Context, attrs domain.NewReview) (*jsonapi.Document, error)
	Update(ctx context.Context, id int64, patch domain.ReviewPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type reviewServiceImpl struct {
	resource[store.ReviewRow]
	store store.ReviewStore
	games Exister
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reviews store.ReviewStore,
	games Exister,
	ser *serializer.Serializer[store.ReviewRow],
	bounds query.Bounds,
	logger *slog.Logger,
) (ReviewService, error) {
	if reviews == nil {
		return nil, missingDependency("review", "reviews")
	}
	if games == nil {
		return nil, missingDependency("review", "games")
	}
	if ser == nil {
		return nil, missingDependency("review", "serializer")
	}

	return &reviewServiceImpl{
		resource: newResource("review", query.Reviews, bounds, ser, logger),
		store:    reviews,
		games:    games,
	}, nil
}

// List implements ReviewService.List
func (s *reviewServiceImpl) List(ctx context.Context, q query.Query) (*jsonapi.Document, error) {
	return s.list(ctx, q, s.store.List)
}

// GetByID implements ReviewService.GetByID
func (s *reviewServiceImpl) GetByID(ctx context.Context, id int64) (*jsonapi.Document, error) {
	row, err := s.store.GetByID(ctx, id)
	return s.one("get", row, err)
}

// Create implements ReviewService.Create
func (s *reviewServiceImpl) Create(ctx context.Context, attrs domain.NewReview) (*jsonapi.Document, error) {
	if err := s.requireParent(ctx, "create", s.games, "game", "gameId", attrs.GameID); err != nil {
		return nil, err
	}

	row, err := s.store.Create(ctx, attrs)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create review",
			slog.Int64("game_id", attrs.GameID))
		return nil, NewServiceError("review", "create", "failed to save review", err)
	}
	return s.one("create", row, nil)
}

// Update implements ReviewService.Update
func (s *reviewServiceImpl) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, NewServiceError("review", "update", "nothing to update", domain.ErrEmptyPatch)
	}
	if patch.GameID != nil {
		if err := s.requireParent(ctx, "update", s.games, "game", "gameId", *patch.GameID); err != nil {
			return 0, err
		}
	}

	n, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return 0, NewServiceError("review", "update", "failed to update review", err)
	}
	return n, nil
}

// Delete implements ReviewService.Delete
func (s *reviewServiceImpl) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, NewServiceError("review", "delete", "failed to delete review", err)
	}
	return n, nil
}

// ExistsByID implements ReviewService.ExistsByID
func (s *reviewServiceImpl) ExistsByID(ctx context.Context, id int64) (bool, error) {
	found, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return false, NewServiceError("review", "exists", "failed to check review", err)
	}
	return found, nil
}
