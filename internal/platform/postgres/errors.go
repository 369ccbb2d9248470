package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/osu-mist/game-curator-api/internal/store"
)

// SQLSTATE codes the stores translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidText         = "22P02"
	codeNumericOutOfRange   = "22003"
)

type pgMapping struct {
	sentinel error
	label    string
	subject  func(*pgconn.PgError) string
}

func constraintName(e *pgconn.PgError) string { return e.ConstraintName }
func columnName(e *pgconn.PgError) string     { return e.ColumnName }

// writeMappings apply to every statement. A foreign key violation on a write
// means the row names a parent that does not exist.
var writeMappings = map[string]pgMapping{
	codeUniqueViolation:     {store.ErrConflict, "unique violation", constraintName},
	codeForeignKeyViolation: {store.ErrInvalidEntity, "foreign key violation", constraintName},
	codeCheckViolation:      {store.ErrInvalidEntity, "check constraint violation", constraintName},
	codeNotNullViolation:    {store.ErrInvalidEntity, "not null violation", columnName},
	codeInvalidText:         {store.ErrInvalidEntity, "invalid value", nil},
	codeNumericOutOfRange:   {store.ErrInvalidEntity, "invalid value", nil},
}

// MapError translates driver errors into store sentinels, keeping the
// original error in the chain. Unmapped errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	pgErr, ok := asPgError(err)
	if !ok {
		return err
	}
	m, ok := writeMappings[pgErr.Code]
	if !ok {
		return err
	}
	if m.subject == nil {
		return fmt.Errorf("%w: %s: %v", m.sentinel, m.label, err)
	}
	return fmt.Errorf("%w: %s (%s): %v", m.sentinel, m.label, m.subject(pgErr), err)
}

// MapDeleteError is MapError for deletes, where a foreign key violation means
// other rows still reference the target (store.ErrConflict).
func MapDeleteError(err error) error {
	if pgErr, ok := asPgError(err); ok && pgErr.Code == codeForeignKeyViolation {
		return fmt.Errorf("%w: still referenced (%s): %v", store.ErrConflict, pgErr.ConstraintName, err)
	}
	return MapError(err)
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	pgErr, ok := asPgError(err)
	return ok && pgErr.Code == code
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func IsUniqueViolation(err error) bool { return hasCode(err, codeUniqueViolation) }

// IsForeignKeyViolation reports whether err carries SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool { return hasCode(err, codeForeignKeyViolation) }

// IsCheckConstraintViolation reports whether err carries SQLSTATE 23514.
func IsCheckConstraintViolation(err error) bool { return hasCode(err, codeCheckViolation) }

// RowsAffected reads the affected row count of result.
func RowsAffected(result sql.Result) (int64, error) {
	if result == nil {
		return 0, errors.New("nil result provided to RowsAffected")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
