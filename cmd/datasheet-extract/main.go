package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/assemble"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/async"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/common"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/export"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/extract"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/genlib"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/ingest"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/library"
	processor "github.com/DangerDawgAU/cable-datasheet-extractor/internal/pipeline"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/pipeline/document"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir       = flag.String("dir", "", "directory containing datasheet PDFs or text dumps (required unless -generate-m22759)")
		selection = flag.String("select", "all", "source selection, e.g. \"1,3,5\" or \"2-4\" or \"all\"")
		out       = flag.String("out", "", "output library JSON path (defaults next to -dir)")
		xlsxOut   = flag.String("xlsx", "", "optional XLSX summary output path")
		generate  = flag.Bool("generate-m22759", false, "emit the generated M22759 slash-sheet library instead of extracting")
		workers   = flag.Int("workers", 4, "concurrent document workers")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	if *generate {
		if *out == "" {
			*out = "m22759-library.json"
		}
		if err := runGenerate(*out, logger); err != nil {
			logger.Error("generation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "cable-library.json")
	}

	files, stats, err := ingest.DiscoverSources(*dir)
	if err != nil {
		logger.Error("failed to discover sources", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("sources discovered", "scanned", stats.Scanned, "matched", stats.Matched)
	if len(files) == 0 {
		printError("Error: no datasheet files found under %s\n", *dir)
		os.Exit(1)
	}

	selected, err := ingest.Select(files, *selection)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open library store", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)
	if err := db.HealthCheck(ctx, logger); err != nil {
		logger.Error("library store unreachable", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(ctx, db, logger); err != nil {
		logger.Error("failed to migrate library store", "error", err)
		os.Exit(1)
	}

	runs := repository.NewRunRepository(db, logger)
	cables := repository.NewCableRepository(db, logger)

	docPipe := document.NewPipeline(extract.NewMatcher(logger), assemble.NewAssembler(logger), logger)
	pool := async.NewDocumentPool(docPipe, logger, async.WithWorkers(*workers))
	proc := processor.NewProcessor(logger, pool, runs, cables, cfg.Extract)

	res, err := proc.ProcessBatch(ctx, selected)
	if err != nil {
		if errors.Is(err, common.ErrNoData) {
			printError("Error: no cable rows matched in any selected document\n")
			os.Exit(2)
		}
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	maps, err := cables.ListPayloads(ctx)
	if err != nil {
		logger.Error("failed to load stored cables", "error", err)
		os.Exit(1)
	}
	merger := library.NewMerger(logger)
	merger.Add(maps)
	lib := merger.Library()

	svc := library.NewService(logger)
	if err := svc.WriteFile(*out, lib); err != nil {
		logger.Error("failed to write library", "error", err)
		os.Exit(1)
	}

	if *xlsxOut != "" {
		xlsxBytes, err := export.NewService(logger).ExportLibraryXLSX(lib)
		if err != nil {
			logger.Error("failed to export XLSX", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, xlsxBytes, 0o644); err != nil {
			logger.Error("failed to write XLSX file", "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Extraction complete!\n")
	fmt.Printf("- Sources processed: %d\n", res.Sources)
	fmt.Printf("- Records extracted: %d\n", res.Records)
	fmt.Printf("- New cables stored: %d\n", res.Inserted)
	for fam, n := range res.Breakdown {
		fmt.Printf("- %s: %d\n", fam.DisplayName(), n)
	}
	fmt.Printf("- Output: %s\n", *out)
}

// runGenerate writes the slash-sheet hookup-wire library without touching
// any source documents.
func runGenerate(out string, logger *slog.Logger) error {
	records := genlib.NewGenerator(logger).Generate()
	maps, err := library.RecordsToMaps(records)
	if err != nil {
		return err
	}

	merger := library.NewMerger(logger)
	merger.Add(maps)

	data, err := json.MarshalIndent(merger.Library(), "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}

	fmt.Printf("Generated %d M22759 cable entries\n", len(records))
	fmt.Printf("- Output: %s\n", out)
	return nil
}
