package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies embedded SQL migrations via goose. If database is
// nil, it's a no-op.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, "migrations")
}

var runMigrations = RunMigrations

// ConnectAndMigrate opens the database and applies embedded migrations.
// On migration failure the connection is closed before returning, so the
// caller never holds a half-initialized pool.
func ConnectAndMigrate(ctx context.Context, databaseURL string, opts Options) (*sql.DB, error) {
	database, err := Connect(ctx, databaseURL, opts)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return database, nil
}
