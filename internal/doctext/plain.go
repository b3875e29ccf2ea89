package doctext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// PlainProvider reads pre-flattened text files, such as the raw debug dumps
// the extraction tooling writes alongside each run.
type PlainProvider struct {
	logger *slog.Logger
}

func NewPlainProvider(logger *slog.Logger) *PlainProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlainProvider{logger: logger}
}

func (p *PlainProvider) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read text source: %w", err)
	}

	text := string(b)
	// Page delimiters may already be present in a dump; count them so the
	// result reports the same page total a PDF extraction would.
	pages := strings.Count(text, "----- PAGE ")
	if pages == 0 {
		pages = 1
	}

	p.logger.Info("doctext.start", "path", path, "pages", pages)
	return Result{
		Text:       text,
		Pages:      pages,
		SourceType: "TXT",
		Duration:   time.Since(start),
	}, nil
}
