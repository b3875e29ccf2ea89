package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/common"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// CableRepository persists canonical cable records. The full record is kept
// as a JSON payload column; cable_id duplicates are silently skipped so the
// first extraction of a part number wins.
type CableRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewCableRepository(db *DB, logger *slog.Logger) *CableRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CableRepository{db: db, logger: logger}
}

// Save inserts one record, reporting whether it was new.
func (r *CableRepository) Save(ctx context.Context, runID uuid.UUID, family constants.Family, rec entity.CableRecord) (bool, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return false, common.WrapError(common.ErrInternal, err.Error())
	}

	q := r.db.Rebind(`INSERT INTO cables (cable_id, family, part_number, run_id, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT (cable_id) DO NOTHING`)
	res, err := r.db.SQL.ExecContext(ctx, q,
		rec.CableID, string(family), rec.PartNumber, runID.String(), string(payload), time.Now().UTC())
	if err != nil {
		r.logger.Error("failed to save cable", "cable_id", rec.CableID, "error", err)
		return false, common.WrapError(common.ErrDatabase, err.Error())
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, common.WrapError(common.ErrDatabase, err.Error())
	}
	if n == 0 {
		r.logger.Debug("cable.duplicate", "cable_id", rec.CableID)
		return false, nil
	}
	return true, nil
}

// SaveBatch inserts a slice of records and returns how many were new.
func (r *CableRepository) SaveBatch(ctx context.Context, runID uuid.UUID, family constants.Family, recs []entity.CableRecord) (int, error) {
	inserted := 0
	for _, rec := range recs {
		ok, err := r.Save(ctx, runID, family, rec)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

// ListPayloads returns every stored record as a decoded map, ordered by
// cable id for stable library output.
func (r *CableRepository) ListPayloads(ctx context.Context) ([]map[string]any, error) {
	rows, err := r.db.SQL.QueryContext(ctx, `SELECT payload FROM cables ORDER BY cable_id`)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, common.WrapError(common.ErrDatabase, err.Error())
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(payload), &m); err != nil {
			return nil, common.WrapError(common.ErrInternal, err.Error())
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return out, nil
}

// Count reports the number of stored cables.
func (r *CableRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.SQL.QueryRowContext(ctx, `SELECT COUNT(*) FROM cables`).Scan(&n); err != nil {
		return 0, common.WrapError(common.ErrDatabase, err.Error())
	}
	return n, nil
}
