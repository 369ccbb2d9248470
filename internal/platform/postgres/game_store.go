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
	gameSelect = `SELECT id, developer_id, name, score, release_date FROM games`
	gameByID   = gameSelect + ` WHERE id = $1`
	gameInsert = `INSERT INTO games (developer_id, name, score, release_date)
		VALUES (@developerId, @name, @score, @releaseDate) RETURNING id`
	gameDelete = `DELETE FROM games WHERE id = $1`
)

// PostgresGameStore implements the store.GameStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGameStore struct {
	table
}

// NewPostgresGameStore creates a game store on the given pool.
// If logger is nil, a default logger will be used.
func NewPostgresGameStore(db store.Connector, logger *slog.Logger) *PostgresGameStore {
	return &PostgresGameStore{table: newTable(db, logger, "games", "game")}
}

// Ensure PostgresGameStore implements store.GameStore interface
var _ store.GameStore = (*PostgresGameStore)(nil)

func scanGame(rows *sql.Rows, g *store.GameRow) error {
	return rows.Scan(&g.ID, &g.DeveloperID, &g.Name, &g.Score, &g.ReleaseDate)
}

// List implements store.GameStore.List
func (s *PostgresGameStore) List(ctx context.Context, pred query.Predicate) ([]store.GameRow, error) {
	sqlText, args, err := pred.Rewrite(ctx, gameSelect+" "+pred.Where()+" ORDER BY id")
	if err != nil {
		return nil, s.wrap("list", "failed to build query", err)
	}

	var out []store.GameRow
	err = s.run(ctx, "list", func(ctx context.Context, conn store.DBTX) error {
		var qerr error
		out, qerr = queryAll(ctx, conn, sqlText, args, scanGame)
		return qerr
	})
	if err != nil {
		return nil, s.wrap("list", "failed to list games", MapError(err))
	}
	return out, nil
}

// GetByID implements store.GameStore.GetByID
func (s *PostgresGameStore) GetByID(ctx context.Context, id int64) (*store.GameRow, error) {
	var row *store.GameRow
	err := s.run(ctx, "get", func(ctx context.Context, conn store.DBTX) error {
		var qerr error
		row, qerr = s.getByID(ctx, conn, id)
		return qerr
	})
	if err != nil {
		return nil, s.wrap("get", "failed to get game", MapError(err))
	}
	return row, nil
}

func (s *PostgresGameStore) getByID(ctx context.Context, conn store.DBTX, id int64) (*store.GameRow, error) {
	rows, err := queryAll(ctx, conn, gameByID, []any{id}, scanGame)
	if err != nil {
		return nil, err
	}
	return single(rows)
}

// Create implements store.GameStore.Create
func (s *PostgresGameStore) Create(ctx context.Context, g domain.NewGame) (*store.GameRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	releaseDate, err := domain.ParseDate(g.ReleaseDate)
	if err != nil {
		return nil, s.wrap("create", "invalid releaseDate", err)
	}

	var score any
	if g.Score != nil {
		score = *g.Score
	}

	sqlText, args, err := rewrite(ctx, gameInsert, pgx.NamedArgs{
		"developerId": g.DeveloperID,
		"name":        g.Name,
		"score":       score,
		"releaseDate": releaseDate,
	})
	if err != nil {
		return nil, s.wrap("create", "failed to build query", err)
	}

	var row *store.GameRow
	err = s.run(ctx, "create", func(ctx context.Context, conn store.DBTX) error {
		var id int64
		if err := conn.QueryRowContext(ctx, sqlText, args...).Scan(&id); err != nil {
			return err
		}
		var qerr error
		if row, qerr = s.getByID(ctx, conn, id); qerr == nil && row == nil {
			qerr = store.ErrGameNotFound
		}
		return qerr
	})
	if err != nil {
		return nil, s.wrap("create", "failed to create game", MapError(err))
	}

	log.Info("game created",
		slog.Int64("game_id", row.ID),
		slog.Int64("developer_id", row.DeveloperID))
	return row, nil
}

// Update implements store.GameStore.Update
// An explicit null score clears the stored score.
func (s *PostgresGameStore) Update(ctx context.Context, id int64, patch domain.GamePatch) (int64, error) {
	set := setClause{}
	if patch.DeveloperID != nil {
		set.add("developer_id", "developerId", *patch.DeveloperID)
	}
	if patch.Name != nil {
		set.add("name", "name", *patch.Name)
	}
	if patch.Score.Set {
		var score any
		if p := patch.Score.Ptr(); p != nil {
			score = *p
		}
		set.add("score", "score", score)
	}
	if patch.ReleaseDate != nil {
		releaseDate, err := domain.ParseDate(*patch.ReleaseDate)
		if err != nil {
			return 0, s.wrap("update", "invalid releaseDate", err)
		}
		set.add("release_date", "releaseDate", releaseDate)
	}
	return s.update(ctx, id, set)
}

// Delete implements store.GameStore.Delete
func (s *PostgresGameStore) Delete(ctx context.Context, id int64) (int64, error) {
	return s.delete(ctx, gameDelete, id)
}

// ExistsByID implements store.GameStore.ExistsByID
func (s *PostgresGameStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, id)
}
