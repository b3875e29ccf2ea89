// Package processor coordinates a batch extraction run: one document
// pipeline invocation per source file, records persisted to the library
// store, run lifecycle tracked end to end.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/async"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/common"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/doctext"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/repository"
)

// BatchResult summarizes a whole run.
type BatchResult struct {
	RunID     uuid.UUID
	Sources   int
	Records   int
	Inserted  int
	Skipped   int
	Failed    int
	Breakdown map[constants.Family]int
}

type Processor struct {
	Logger *slog.Logger
	Pool   *async.DocumentPool
	Runs   *repository.RunRepository
	Cables *repository.CableRepository
	Cfg    common.ExtractConfig
}

func NewProcessor(logger *slog.Logger, pool *async.DocumentPool, runs *repository.RunRepository, cables *repository.CableRepository, cfg common.ExtractConfig) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Pool: pool, Runs: runs, Cables: cables, Cfg: cfg}
}

// ProcessBatch extracts every source path, persisting records as it goes.
// A document that fails to read is logged and counted, not fatal. When no
// document in the batch yields a single record the run finishes NO_DATA and
// ErrNoData is returned.
func (p *Processor) ProcessBatch(ctx context.Context, paths []string) (BatchResult, error) {
	res := BatchResult{
		Sources:   len(paths),
		Breakdown: make(map[constants.Family]int),
	}

	runID, err := p.Runs.Start(ctx, len(paths))
	if err != nil {
		return res, err
	}
	res.RunID = runID

	outcomes := p.Pool.RunAll(ctx, paths)
	for _, oc := range outcomes {
		if oc.Err != nil {
			p.Logger.Error("processor.document.failed", "path", oc.Path, "err", oc.Err)
			res.Failed++
			continue
		}
		docRes := oc.Result
		for _, w := range docRes.Warnings {
			p.Logger.Warn("processor.document.warning", "path", oc.Path, "warning", w)
		}

		if p.Cfg.DebugDumpDir != "" {
			p.dumpText(oc.Path, docRes.Text)
		}

		res.Records += len(docRes.Records)
		res.Skipped += docRes.Skipped
		for fam, n := range docRes.Breakdown {
			res.Breakdown[fam] += n
		}

		byFamily := make(map[constants.Family][]entity.CableRecord, len(docRes.Breakdown))
		for _, fr := range docRes.Records {
			byFamily[fr.Family] = append(byFamily[fr.Family], fr.Record)
		}
		for fam, recs := range byFamily {
			n, err := p.Cables.SaveBatch(ctx, runID, fam, recs)
			res.Inserted += n
			if err != nil {
				_ = p.Runs.Finish(ctx, runID, constants.RunStatusFailed, res.Inserted, err.Error())
				return res, err
			}
		}
	}

	if res.Records == 0 {
		msg := "no layout rows matched in any source"
		if err := p.Runs.Finish(ctx, runID, constants.RunStatusNoData, 0, msg); err != nil {
			return res, err
		}
		p.Logger.Warn("processor.batch.nodata", "run_id", runID, "sources", res.Sources)
		return res, common.ErrNoData
	}

	if err := p.Runs.Finish(ctx, runID, constants.RunStatusOK, res.Inserted, ""); err != nil {
		return res, err
	}
	p.Logger.Info("processor.batch.ok",
		"run_id", runID,
		"sources", res.Sources,
		"records", res.Records,
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)
	return res, nil
}

// dumpText writes the flattened document text alongside for debugging,
// capped at the configured page count.
func (p *Processor) dumpText(srcPath, text string) {
	if err := os.MkdirAll(p.Cfg.DebugDumpDir, 0o755); err != nil {
		p.Logger.Warn("processor.dump.failed", "err", err)
		return
	}
	if p.Cfg.DebugDumpPages > 0 {
		marker := doctext.PageDelimiter(p.Cfg.DebugDumpPages + 1)
		if i := strings.Index(text, marker); i >= 0 {
			text = text[:i]
		}
	}
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	out := filepath.Join(p.Cfg.DebugDumpDir, fmt.Sprintf("%s_raw_text.txt", base))
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		p.Logger.Warn("processor.dump.failed", "path", out, "err", err)
		return
	}
	p.Logger.Debug("processor.dump.ok", "path", out)
}
