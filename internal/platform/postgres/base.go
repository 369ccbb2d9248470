package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/metrics"
	"github.com/osu-mist/game-curator-api/internal/platform/logger"
	"github.com/osu-mist/game-curator-api/internal/redact"
	"github.com/osu-mist/game-curator-api/internal/store"
)

// table carries what every store shares: the pool, a component logger and
// the table name used in metrics and errors.
type table struct {
	db     store.Connector
	logger *slog.Logger
	name   string
	entity string
}

func newTable(db store.Connector, log *slog.Logger, name, entity string) table {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return table{
		db:     db,
		logger: log.With(slog.String("component", entity+"_store")),
		name:   name,
		entity: entity,
	}
}

// run executes fn on a dedicated connection, records the query metrics and
// logs failures. Errors are returned unchanged; callers map them.
func (t table) run(ctx context.Context, op string, fn store.ConnFn) error {
	start := time.Now()
	err := store.WithConn(ctx, t.db, fn)
	metrics.RecordDBQuery(op, t.name, time.Since(start), err)
	if err != nil {
		logger.FromContextOrDefault(ctx, t.logger).Debug("query failed",
			slog.String("operation", op),
			slog.String("table", t.name),
			redact.Attr(err))
	}
	return err
}

func (t table) wrap(op, message string, err error) error {
	return store.NewStoreError(t.entity, op, message, err)
}

// rewrite turns @name binds into $n placeholders.
func rewrite(ctx context.Context, sqlText string, args pgx.NamedArgs) (string, []any, error) {
	out, pos, err := args.RewriteQuery(ctx, nil, sqlText, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to rewrite named arguments: %w", err)
	}
	return out, pos, nil
}

// scanRows reads every row with scan and closes rows.
func scanRows[T any](rows *sql.Rows, scan func(*sql.Rows, *T) error) ([]T, error) {
	defer func() { _ = rows.Close() }()

	out := []T{}
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// queryAll runs a query on conn and scans every row.
func queryAll[T any](
	ctx context.Context,
	conn store.DBTX,
	sqlText string,
	args []any,
	scan func(*sql.Rows, *T) error,
) ([]T, error) {
	rows, err := conn.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	return scanRows(rows, scan)
}

// single enforces the by-id invariant: no row is nil, more than one row is
// store.ErrIntegrity.
func single[T any](rows []T) (*T, error) {
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return &rows[0], nil
	default:
		return nil, store.ErrIntegrity
	}
}

// exists runs a SELECT EXISTS query for id against table name.
func exists(ctx context.Context, conn store.DBTX, name string, id int64) (bool, error) {
	var found bool
	err := conn.QueryRowContext(ctx,
		fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", name), id).Scan(&found)
	return found, err
}

// setClause collects the column assignments of a partial update.
type setClause struct {
	columns []string
	args    pgx.NamedArgs
}

// add assigns the value bound as @bind to column.
func (c *setClause) add(column, bind string, value any) {
	if c.args == nil {
		c.args = pgx.NamedArgs{}
	}
	c.columns = append(c.columns, column+" = @"+bind)
	c.args[bind] = value
}

func (c setClause) empty() bool {
	return len(c.columns) == 0
}

func (c setClause) sql(table string) string {
	return "UPDATE " + table + " SET " + strings.Join(c.columns, ", ") + " WHERE id = @id"
}

func (t table) update(ctx context.Context, id int64, set setClause) (int64, error) {
	if set.empty() {
		return 0, t.wrap("update", "nothing to update", domain.ErrEmptyPatch)
	}
	set.args["id"] = id

	sqlText, args, err := rewrite(ctx, set.sql(t.name), set.args)
	if err != nil {
		return 0, t.wrap("update", "failed to build query", err)
	}

	var affected int64
	err = t.run(ctx, "update", func(ctx context.Context, conn store.DBTX) error {
		result, err := conn.ExecContext(ctx, sqlText, args...)
		if err != nil {
			return err
		}
		affected, err = RowsAffected(result)
		return err
	})
	if err != nil {
		return 0, t.wrap("update", "failed to update "+t.entity, MapError(err))
	}

	logger.FromContextOrDefault(ctx, t.logger).Info(t.entity+" updated",
		slog.Int64("id", id),
		slog.Int64("rows_affected", affected))
	return affected, nil
}

func (t table) delete(ctx context.Context, sqlText string, id int64) (int64, error) {
	var affected int64
	err := t.run(ctx, "delete", func(ctx context.Context, conn store.DBTX) error {
		result, err := conn.ExecContext(ctx, sqlText, id)
		if err != nil {
			return err
		}
		affected, err = RowsAffected(result)
		return err
	})
	if err != nil {
		return 0, t.wrap("delete", "failed to delete "+t.entity, MapDeleteError(err))
	}

	logger.FromContextOrDefault(ctx, t.logger).Info(t.entity+" deleted",
		slog.Int64("id", id),
		slog.Int64("rows_affected", affected))
	return affected, nil
}

func (t table) exists(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := t.run(ctx, "exists", func(ctx context.Context, conn store.DBTX) error {
		var err error
		found, err = exists(ctx, conn, t.name, id)
		return err
	})
	if err != nil {
		return false, t.wrap("exists", "failed to check "+t.entity, MapError(err))
	}
	return found, nil
}
