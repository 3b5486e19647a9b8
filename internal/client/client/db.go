// Package client wires the cache database together: it opens the store,
// applies migrations and hands out repository factories bound to either the
// root connection or a transaction.
package client

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/TheReeds/turisync/internal/client/migrations"
	"github.com/TheReeds/turisync/internal/client/repositories/links"
	"github.com/TheReeds/turisync/internal/client/repositories/municipalities"
	"github.com/TheReeds/turisync/internal/client/repositories/vendors"
	"github.com/TheReeds/turisync/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store bundles the open database with per-entity repository factories. The
// factories accept a DBTX so the same repositories serve both plain reads
// (pass Store.DB) and transactional writes (pass the dbx.WithTx handle).
type Store struct {
	DB *sql.DB

	Vendors        func(dbx.DBTX) vendors.Repository
	Municipalities func(dbx.DBTX) municipalities.Repository
	Links          func(dbx.DBTX) links.Repository
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}

// RunMigrations applies the embedded goose migration set for the dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS) error {
	goose.SetBaseFS(fsys)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// NewSQLiteStore binds sqlite repositories to an already-open database.
// Used by InitSQLite and directly by tests that manage their own schema.
func NewSQLiteStore(db *sql.DB) *Store {
	return &Store{
		DB:             db,
		Vendors:        func(tx dbx.DBTX) vendors.Repository { return vendors.NewSQLiteRepository(tx) },
		Municipalities: func(tx dbx.DBTX) municipalities.Repository { return municipalities.NewSQLiteRepository(tx) },
		Links:          func(tx dbx.DBTX) links.Repository { return links.NewSQLiteRepository(tx) },
	}
}

// NewPostgresStore binds postgres repositories to an already-open database.
func NewPostgresStore(db *sql.DB) *Store {
	return &Store{
		DB:             db,
		Vendors:        func(tx dbx.DBTX) vendors.Repository { return vendors.NewPostgresRepository(tx) },
		Municipalities: func(tx dbx.DBTX) municipalities.Repository { return municipalities.NewPostgresRepository(tx) },
		Links:          func(tx dbx.DBTX) links.Repository { return links.NewPostgresRepository(tx) },
	}
}

// InitSQLite opens (or creates) the on-device cache database and migrates it.
func InitSQLite(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	fsys, err := fs.Sub(migrations.SQLite, "sqlite")
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db, "sqlite3", fsys); err != nil {
		return nil, err
	}

	return NewSQLiteStore(db), nil
}

// InitPostgres opens the shared-cache database and migrates it.
func InitPostgres(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	fsys, err := fs.Sub(migrations.Postgres, "postgres")
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db, "postgres", fsys); err != nil {
		return nil, err
	}

	return NewPostgresStore(db), nil
}

// InitDatabase picks the backend by driver name ("sqlite" or "postgres").
func InitDatabase(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case "sqlite":
		return InitSQLite(ctx, dsn)
	case "postgres", "pgx":
		return InitPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown database driver: %q", driver)
	}
}
