// Package storage opens the local SQLite database, applies schema
// migrations, and hands out the repositories bound to it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/emontoya05/healthtrack/internal/migrations"
	"github.com/emontoya05/healthtrack/internal/repositories/records"
	"github.com/emontoya05/healthtrack/internal/repositories/users"
)

// Storage owns the database handle and the repositories over it.
// Construct it once at process start and pass it down; there is no
// package-level singleton.
type Storage struct {
	DB      *sql.DB
	Users   users.Repository
	Records records.Repository
}

// Open opens (or creates) the SQLite database at dsn and brings the schema
// up to date. The pool is capped at a single connection: the application is
// single-threaded and SQLite pragmas are per connection.
func Open(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Storage{
		DB:      db,
		Users:   users.NewSQLiteRepository(db),
		Records: records.NewSQLiteRepository(db),
	}, nil
}

// RunMigrations applies the embedded goose migrations. Each version runs
// exactly once per database file; a database already at the current version
// is left untouched.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	return s.DB.Close()
}
