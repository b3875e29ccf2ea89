// Package document runs the per-document stage chain: flatten the source
// text, match layout rows, normalize them, and assemble cable records.
package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/assemble"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/doctext"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/extract"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/normalize"
)

// FamilyRecord pairs an assembled record with the layout family that
// produced it.
type FamilyRecord struct {
	Family constants.Family
	Record entity.CableRecord
}

// Result summarizes one processed document.
type Result struct {
	Path      string
	Text      string
	Pages     int
	Records   []FamilyRecord
	Breakdown map[constants.Family]int
	Skipped   int
	Warnings  []string
}

type Pipeline struct {
	Matcher   *extract.Matcher
	Assembler *assemble.Assembler
	Log       *slog.Logger
}

func NewPipeline(matcher *extract.Matcher, assembler *assemble.Assembler, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Matcher: matcher, Assembler: assembler, Log: log}
}

// Run extracts the document text and folds every matched row into a cable
// record. Rows the normalizer or assembler rejects are counted, not fatal.
func (p *Pipeline) Run(ctx context.Context, path string) (Result, error) {
	provider, err := doctext.ForPath(path, p.Log)
	if err != nil {
		return Result{Path: path}, err
	}

	text, err := provider.Extract(ctx, path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("extract text: %w", err)
	}

	res := Result{
		Path:      path,
		Text:      text.Text,
		Pages:     text.Pages,
		Breakdown: make(map[constants.Family]int),
		Warnings:  text.Warnings,
	}

	rows := p.Matcher.MatchAll(text.Text)
	for _, raw := range rows {
		norm := normalize.Row(raw)
		rec, ok := p.Assembler.Record(norm)
		if !ok {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, FamilyRecord{Family: raw.Family, Record: *rec})
		res.Breakdown[raw.Family]++
	}

	p.Log.Info("document.done",
		"path", path,
		"pages", res.Pages,
		"rows", len(rows),
		"records", len(res.Records),
		"skipped", res.Skipped,
	)
	return res, nil
}
