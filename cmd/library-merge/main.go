package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/export"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/library"
)

func main() {
	var (
		out     = flag.String("out", "merged-library.json", "output merged library JSON path")
		xlsxOut = flag.String("xlsx", "", "optional XLSX summary output path")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) < 1 {
		fmt.Fprintln(os.Stderr, "usage: library-merge [flags] <library.json> [more.json ...]")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	svc := library.NewService(logger)
	lib, stats, err := svc.MergeFiles(inputs)
	if err != nil {
		logger.Error("merge failed", "error", err)
		os.Exit(1)
	}

	if err := svc.WriteFile(*out, lib); err != nil {
		logger.Error("failed to write merged library", "error", err)
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

	fmt.Printf("Merge complete!\n")
	fmt.Printf("- Libraries merged: %d\n", stats.Files)
	if stats.Failed > 0 {
		fmt.Printf("- Inputs skipped: %d\n", stats.Failed)
	}
	fmt.Printf("- Cables loaded: %d\n", stats.Loaded)
	fmt.Printf("- Unique cables: %d\n", stats.Unique)
	fmt.Printf("- Duplicates skipped: %d\n", stats.Duplicates)
	fmt.Printf("- Output: %s\n", *out)
}
