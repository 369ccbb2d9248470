package service

import (
	"context"
	"log/slog"

	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/platform/logger"
	"github.com/osu-mist/game-curator-api/internal/query"
	"github.com/osu-mist/game-curator-api/internal/serializer"
)

// Exister reports whether a resource with the given id exists. Services of
// parent resources implement it.
type Exister interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// resource holds what the three services share for reading: the filter
// rules, the score bounds, and the serializer.
type resource[T any] struct {
	name       string
	kind       query.Kind
	bounds     query.Bounds
	serializer *serializer.Serializer[T]
	logger     *slog.Logger
}

func newResource[T any](
	name string,
	kind query.Kind,
	bounds query.Bounds,
	ser *serializer.Serializer[T],
	log *slog.Logger,
) resource[T] {
	if log == nil {
		log = slog.Default()
	}
	return resource[T]{
		name:       name,
		kind:       kind,
		bounds:     bounds,
		serializer: ser,
		logger:     log.With(slog.String("component", name+"_service")),
	}
}

func (r resource[T]) list(
	ctx context.Context,
	q query.Query,
	fetch func(context.Context, query.Predicate) ([]T, error),
) (*jsonapi.Document, error) {
	pred := query.Build(r.kind, q.Params, r.bounds)

	rows, err := fetch(ctx, pred)
	if err != nil {
		return nil, NewServiceError(r.name, "list", "failed to fetch rows", err)
	}
	if rows == nil {
		rows = []T{}
	}

	doc, err := r.serializer.Many(rows, &q)
	if err != nil {
		return nil, NewServiceError(r.name, "list", "failed to serialize rows", err)
	}

	logger.FromContextOrDefault(ctx, r.logger).Debug("listed "+r.name+"s",
		slog.Int("filters", q.Params.Len()),
		slog.Int("total_results", len(rows)))
	return doc, nil
}

// one serializes a single fetched row; a nil row yields a nil document.
func (r resource[T]) one(op string, row *T, err error) (*jsonapi.Document, error) {
	if err != nil {
		return nil, NewServiceError(r.name, op, "failed to fetch row", err)
	}
	if row == nil {
		return nil, nil
	}
	doc, err := r.serializer.One(row)
	if err != nil {
		return nil, NewServiceError(r.name, op, "failed to serialize row", err)
	}
	return doc, nil
}

// requireParent rejects a write whose parent id does not resolve.
func (r resource[T]) requireParent(
	ctx context.Context,
	op string,
	parents Exister,
	parent, field string,
	id int64,
) error {
	found, err := parents.ExistsByID(ctx, id)
	if err != nil {
		return NewServiceError(r.name, op, "failed to check "+parent, err)
	}
	if !found {
		logger.FromContextOrDefault(ctx, r.logger).Debug("rejected write with unknown parent",
			slog.String("operation", op),
			slog.String("parent", parent),
			slog.Int64("parent_id", id))
		return domain.NewValidationError("A " + parent + " with " + field + " does not exist.")
	}
	return nil
}
