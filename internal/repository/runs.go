package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/common"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// RunRepository records extraction run lifecycle in the store.
type RunRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewRunRepository(db *DB, logger *slog.Logger) *RunRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunRepository{db: db, logger: logger}
}

// Start inserts a new RUNNING row and returns its identifier.
func (r *RunRepository) Start(ctx context.Context, sourceCount int) (uuid.UUID, error) {
	id := uuid.New()
	q := r.db.Rebind(`INSERT INTO extraction_runs (id, started_at, status, source_count) VALUES (?, ?, ?, ?)`)
	_, err := r.db.SQL.ExecContext(ctx, q, id.String(), time.Now().UTC(), string(constants.RunStatusRunning), sourceCount)
	if err != nil {
		r.logger.Error("failed to start run", "error", err)
		return uuid.Nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	r.logger.Info("run.start", "run_id", id, "source_count", sourceCount)
	return id, nil
}

// Finish stamps the terminal status, record count and message on a run.
func (r *RunRepository) Finish(ctx context.Context, id uuid.UUID, status constants.RunStatus, recordCount int, message string) error {
	q := r.db.Rebind(`UPDATE extraction_runs SET finished_at = ?, status = ?, record_count = ?, message = ? WHERE id = ?`)
	res, err := r.db.SQL.ExecContext(ctx, q, time.Now().UTC(), string(status), recordCount, message, id.String())
	if err != nil {
		r.logger.Error("failed to finish run", "run_id", id, "error", err)
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.WrapError(common.ErrNotFound, "run "+id.String())
	}
	r.logger.Info("run.finish", "run_id", id, "status", status, "record_count", recordCount)
	return nil
}

// Get loads one run by id.
func (r *RunRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ExtractionRun, error) {
	q := r.db.Rebind(`SELECT id, started_at, finished_at, status, source_count, record_count, message
		FROM extraction_runs WHERE id = ?`)
	row := r.db.SQL.QueryRowContext(ctx, q, id.String())

	var run entity.ExtractionRun
	var rawID, status string
	var finished sql.NullTime
	err := row.Scan(&rawID, &run.StartedAt, &finished, &status, &run.SourceCount, &run.RecordCount, &run.Message)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.WrapError(common.ErrNotFound, "run "+id.String())
	}
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	run.ID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	if finished.Valid {
		run.FinishedAt = finished.Time
	}
	run.Status = constants.RunStatus(status)
	return &run, nil
}
