package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/platform/logger"
	"github.com/osu-mist/game-curator-api/internal/query"
	"github.com/osu-mist/game-curator-api/internal/store"
)

const (
	reviewSelect = `SELECT id, game_id, reviewer, score, review_text, review_date FROM reviews`
	reviewByID   = reviewSelect + ` WHERE id = $1`
	reviewInsert = `INSERT INTO reviews (game_id, reviewer, score, review_text, review_date)
		VALUES (@gameId, @reviewer, @score, @reviewText, COALESCE(CAST(@reviewDate AS TIMESTAMPTZ), NOW()))
		RETURNING id`
	reviewDelete = `DELETE FROM reviews WHERE id = $1`
)

// PostgresReviewStore implements the store.ReviewStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewStore struct {
	table
}

// NewPostgresReviewStore creates a review store on the given pool.
// If logger is nil, a default logger will be used.
func NewPostgresReviewStore(db store.Connector, logger *slog.Logger) *PostgresReviewStore {
	return &PostgresReviewStore{table: newTable(db, logger, "reviews", "review")}
}

// Ensure PostgresReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*PostgresReviewStore)(nil)

func scanReview(rows *sql.Rows, r *store.ReviewRow) error {
	return rows.Scan(&r.ID, &r.GameID, &r.Reviewer, &r.Score, &r.ReviewText, &r.ReviewDate)
}

// List implements store.ReviewStore.List
func (s *PostgresReviewStore) List(ctx context.Context, pred query.Predicate) ([]store.ReviewRow, error) {
	sqlText, args, err := pred.Rewrite(ctx, reviewSelect+" "+pred.Where()+" ORDER BY id")
	if err != nil {
		return nil, s.wrap("list", "failed to build query", err)
	}

	var out []store.ReviewRow
	err = s.run(ctx, "list", func(ctx context.Context, conn store.DBTX) error {
		var qerr error
		out, qerr = queryAll(ctx, conn, sqlText, args, scanReview)
		return qerr
	})
	if err != nil {
		return nil, s.wrap("list", "failed to list reviews", MapError(err))
	}
	return out, nil
}

// GetByID implements store.ReviewStore.GetByID
func (s *PostgresReviewStore) GetByID(ctx context.Context, id int64) (*store.ReviewRow, error) {
	var row *store.ReviewRow
	err := s.run(ctx, "get", func(ctx context.Context, conn store.DBTX) error {
		var qerr error
		row, qerr = s.getByID(ctx, conn, id)
		return qerr
	})
	if err != nil {
		return nil, s.wrap("get", "failed to get review", MapError(err))
	}
	return row, nil
}

func (s *PostgresReviewStore) getByID(ctx context.Context, conn store.DBTX, id int64) (*store.ReviewRow, error) {
	rows, err := queryAll(ctx, conn, reviewByID, []any{id}, scanReview)
	if err != nil {
		return nil, err
	}
	return single(rows)
}

// Create implements store.ReviewStore.Create
func (s *PostgresReviewStore) Create(ctx context.Context, r domain.NewReview) (*store.ReviewRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var reviewDate any
	if r.ReviewDate != nil {
		d, err := domain.ParseDate(*r.ReviewDate)
		if err != nil {
			return nil, s.wrap("create", "invalid reviewDate", err)
		}
		reviewDate = d
	}

	var score float64
	if r.Score != nil {
		score = *r.Score
	}

	sqlText, args, err := rewrite(ctx, reviewInsert, pgx.NamedArgs{
		"gameId":     r.GameID,
		"reviewer":   r.Reviewer,
		"score":      score,
		"reviewText": r.ReviewText,
		"reviewDate": reviewDate,
	})
	if err != nil {
		return nil, s.wrap("create", "failed to build query", err)
	}

	var row *store.ReviewRow
	err = s.run(ctx, "create", func(ctx context.Context, conn store.DBTX) error {
		var id int64
		if err := conn.QueryRowContext(ctx, sqlText, args...).Scan(&id); err != nil {
			return err
		}
		var qerr error
		if row, qerr = s.getByID(ctx, conn, id); qerr == nil && row == nil {
			qerr = store.ErrReviewNotFound
		}
		return qerr
	})
	if err != nil {
		return nil, s.wrap("create", "failed to create review", MapError(err))
	}

	log.Info("review created",
		slog.Int64("review_id", row.ID),
		slog.Int64("game_id", row.GameID))
	return row, nil
}

// Update implements store.ReviewStore.Update
func (s *PostgresReviewStore) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (int64, error) {
	set := setClause{}
	if patch.GameID != nil {
		set.add("game_id", "gameId", *patch.GameID)
	}
	if patch.Reviewer != nil {
		set.add("reviewer", "reviewer", *patch.Reviewer)
	}
	if patch.Score != nil {
		set.add("score", "score", *patch.Score)
	}
	if patch.ReviewText != nil {
		set.add("review_text", "reviewText", *patch.ReviewText)
	}
	if patch.ReviewDate != nil {
		reviewDate, err := domain.ParseDate(*patch.ReviewDate)
		if err != nil {
			return 0, s.wrap("update", "invalid reviewDate", err)
		}
		set.add("review_date", "reviewDate", reviewDate)
	}
	return s.update(ctx, id, set)
}

// Delete implements store.ReviewStore.Delete
func (s *PostgresReviewStore) Delete(ctx context.Context, id int64) (int64, error) {
	return s.delete(ctx, reviewDelete, id)
}

// ExistsByID implements store.ReviewStore.ExistsByID
func (s *PostgresReviewStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, id)
}
