package repository

import (
	"context"
	"log/slog"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/common"
)

// Statements below stick to the SQL subset both SQLite and Postgres accept.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS extraction_runs (
		id            TEXT PRIMARY KEY,
		started_at    TIMESTAMP NOT NULL,
		finished_at   TIMESTAMP,
		status        TEXT NOT NULL,
		source_count  INTEGER NOT NULL DEFAULT 0,
		record_count  INTEGER NOT NULL DEFAULT 0,
		message       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS cables (
		cable_id     TEXT PRIMARY KEY,
		family       TEXT NOT NULL,
		part_number  TEXT NOT NULL,
		run_id       TEXT,
		payload      TEXT NOT NULL,
		created_at   TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cables_family ON cables (family)`,
	`CREATE INDEX IF NOT EXISTS idx_cables_run ON cables (run_id)`,
}

// Migrate creates the store schema if it does not exist yet.
func Migrate(ctx context.Context, db *DB, logger *slog.Logger) error {
	logger.Debug("migrating library store schema")
	for _, stmt := range migrations {
		if _, err := db.SQL.ExecContext(ctx, stmt); err != nil {
			logger.Error("schema migration failed", "error", err)
			return common.WrapError(common.ErrDatabase, err.Error())
		}
	}
	return nil
}
