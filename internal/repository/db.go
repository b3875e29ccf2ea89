// Package repository persists extraction runs and merged cable libraries.
// The default store is an embedded SQLite database; setting a Postgres DSN
// switches to a pgx-backed pool behind the same database/sql surface.
package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/common"
)

// Dialect names the SQL flavor behind a DB.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DB bundles the sql handle with the optional pgx pool that backs it.
type DB struct {
	SQL     *sql.DB
	Dialect Dialect
	pool    *pgxpool.Pool
}

// Rebind rewrites ? placeholders into the $N form Postgres expects.
// SQLite statements pass through unchanged.
func (d *DB) Rebind(query string) string {
	if d.Dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Open connects to the library store. An empty DSN opens the embedded
// SQLite file at cfg.SQLitePath; otherwise a pgx pool is created and
// wrapped as *sql.DB.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if cfg.DSN == "" {
		logger.Info("opening library store", "driver", "sqlite", "path", cfg.SQLitePath)
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			logger.Error("failed to open library store", "error", err)
			return nil, common.WrapError(common.ErrDatabase, err.Error())
		}
		// modernc sqlite serializes writers itself; one connection avoids
		// SQLITE_BUSY under concurrent batch inserts.
		db.SetMaxOpenConns(1)
		return &DB{SQL: db, Dialect: DialectSQLite}, nil
	}

	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "cable-datasheet-extractor"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}

	logger.Info("successfully connected to database")
	return &DB{SQL: stdlib.OpenDBFromPool(pool), Dialect: DialectPostgres, pool: pool}, nil
}

// Close closes the database connections gracefully.
func (d *DB) Close(logger *slog.Logger) {
	logger.Info("closing database connections")
	if d.SQL != nil {
		if err := d.SQL.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
	if d.pool != nil {
		d.pool.Close()
	}
	logger.Info("database connections closed")
}

// HealthCheck pings the store to catch DSN issues early.
func (d *DB) HealthCheck(ctx context.Context, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if err := d.SQL.PingContext(ctx); err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	logger.Debug("database ping successful")
	return nil
}
