package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by *sql.DB, *sql.Conn and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Connector hands out dedicated connections from a pool. *sql.DB implements it.
type Connector interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

var (
	_ DBTX      = (*sql.Conn)(nil)
	_ Connector = (*sql.DB)(nil)
)
