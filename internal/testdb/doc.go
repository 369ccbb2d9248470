//go:build integration

// Package testdb starts a disposable PostgreSQL container for integration
// tests and applies the goose migrations in migrations/.
//
// # Basic Usage
//
//	func TestSomething(t *testing.T) {
//		db := testdb.Start(t)
//		testdb.Reset(t, db)
//		// use db with the postgres stores
//	}
//
// StartWithURL also returns the connection URL for tests that need a second
// pool with different session settings.
//
// Tests are skipped when Docker is not available.
package testdb
