// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// Queries are written with @name binds and rewritten to positional
// placeholders through pgx.NamedArgs before they reach database/sql.
package postgres
