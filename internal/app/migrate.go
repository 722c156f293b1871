package app

import (
	"database/sql"
	"fmt"

	goose "github.com/pressly/goose/v3"

	"github.com/guttosm/herdpulse/db"
	"github.com/guttosm/herdpulse/internal/logger"
)

// RunMigrations applies the embedded schema migrations to conn.
//
// Behavior:
//   - Uses the migrations embedded in package db, so the binary needs no files on disk.
//   - Is idempotent: already applied versions are skipped by goose.
func RunMigrations(conn *sql.DB) error {
	goose.SetBaseFS(db.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.Up(conn, db.MigrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(conn)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.L().Info().Int64("version", version).Msg("migrations applied")
	return nil
}
