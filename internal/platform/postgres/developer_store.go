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
	developerSelect = `SELECT id, name, website FROM developers`
	developerByID   = developerSelect + ` WHERE id = $1`
	developerInsert = `INSERT INTO developers (name, website) VALUES (@name, @website) RETURNING id`
	developerDelete = `DELETE FROM developers WHERE id = $1`
)

// PostgresDeveloperStore implements the store.DeveloperStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDeveloperStore struct {
	table
}

// NewPostgresDeveloperStore creates a developer store on the given pool.
// If logger is nil, a default logger will be used.
func NewPostgresDeveloperStore(db store.Connector, logger *slog.Logger) *PostgresDeveloperStore {
	return &PostgresDeveloperStore{table: newTable(db, logger, "developers", "developer")}
}

// Ensure PostgresDeveloperStore implements store.DeveloperStore interface
var _ store.DeveloperStore = (*PostgresDeveloperStore)(nil)

func scanDeveloper(rows *sql.Rows, d *store.DeveloperRow) error {
	return rows.Scan(&d.ID, &d.Name, &d.Website)
}

// List implements store.DeveloperStore.List
func (s *PostgresDeveloperStore) List(ctx context.Context, pred query.Predicate) ([]store.DeveloperRow, error) {
	sqlText, args, err := pred.Rewrite(ctx, developerSelect+" "+pred.Where()+" ORDER BY id")
	if err != nil {
		return nil, s.wrap("list", "failed to build query", err)
	}

	var out []store.DeveloperRow
	err = s.run(ctx, "list", func(ctx context.Context, conn store.DBTX) error {
		var qerr error
		out, qerr = queryAll(ctx, conn, sqlText, args, scanDeveloper)
		return qerr
	})
	if err != nil {
		return nil, s.wrap("list", "failed to list developers", MapError(err))
	}
	return out, nil
}

// GetByID implements store.DeveloperStore.GetByID
func (s *PostgresDeveloperStore) GetByID(ctx context.Context, id int64) (*store.DeveloperRow, error) {
	var row *store.DeveloperRow
	err := s.run(ctx, "get", func(ctx context.Context, conn store.DBTX) error {
		var err error
		row, err = s.getByID(ctx, conn, id)
		return err
	})
	if err != nil {
		return nil, s.wrap("get", "failed to get developer", MapError(err))
	}
	return row, nil
}

func (s *PostgresDeveloperStore) getByID(ctx context.Context, conn store.DBTX, id int64) (*store.DeveloperRow, error) {
	rows, err := queryAll(ctx, conn, developerByID, []any{id}, scanDeveloper)
	if err != nil {
		return nil, err
	}
	return single(rows)
}

// Create implements store.DeveloperStore.Create
func (s *PostgresDeveloperStore) Create(ctx context.Context, d domain.NewDeveloper) (*store.DeveloperRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sqlText, args, err := rewrite(ctx, developerInsert, pgx.NamedArgs{
		"name":    d.Name,
		"website": d.Website,
	})
	if err != nil {
		return nil, s.wrap("create", "failed to build query", err)
	}

	var row *store.DeveloperRow
	err = s.run(ctx, "create", func(ctx context.Context, conn store.DBTX) error {
		var id int64
		if err := conn.QueryRowContext(ctx, sqlText, args...).Scan(&id); err != nil {
			return err
		}
		var qerr error
		if row, qerr = s.getByID(ctx, conn, id); qerr == nil && row == nil {
			qerr = store.ErrDeveloperNotFound
		}
		return qerr
	})
	if err != nil {
		return nil, s.wrap("create", "failed to create developer", MapError(err))
	}

	log.Info("developer created", slog.Int64("developer_id", row.ID))
	return row, nil
}

// Update implements store.DeveloperStore.Update
func (s *PostgresDeveloperStore) Update(ctx context.Context, id int64, patch domain.DeveloperPatch) (int64, error) {
	set := setClause{}
	if patch.Name != nil {
		set.add("name", "name", *patch.Name)
	}
	if patch.Website != nil {
		set.add("website", "website", *patch.Website)
	}
	return s.update(ctx, id, set)
}

// Delete implements store.DeveloperStore.Delete
func (s *PostgresDeveloperStore) Delete(ctx context.Context, id int64) (int64, error) {
	return s.delete(ctx, developerDelete, id)
}

// ExistsByID implements store.DeveloperStore.ExistsByID
func (s *PostgresDeveloperStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, id)
}
