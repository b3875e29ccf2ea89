package doctext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFProvider extracts text from every page of a PDF using a pure-Go
// reader; no external tools or CGO involved.
type PDFProvider struct {
	logger *slog.Logger
}

func NewPDFProvider(logger *slog.Logger) *PDFProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFProvider{logger: logger}
}

// Extract reads all pages, inserting a page-delimiter line before each.
// Pages that fail to extract contribute a placeholder instead of aborting
// the document; the failure is recorded as a warning.
func (p *PDFProvider) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	f, r, err := pdf.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	p.logger.Info("doctext.start", "path", path, "pages", total)

	var b strings.Builder
	var warnings []string

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if i == 1 || i%10 == 0 || i == total {
			p.logger.Debug("doctext.progress", "page", i, "total", total)
		}

		b.WriteString(PageDelimiter(i))

		page := r.Page(i)
		if page.V.IsNull() {
			warnings = append(warnings, fmt.Sprintf("page %d: null page", i))
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			b.WriteString("[[Extraction Failed]]")
			continue
		}
		b.WriteString(text)
	}

	return Result{
		Text:       b.String(),
		Pages:      total,
		SourceType: "PDF",
		Duration:   time.Since(start),
		Warnings:   warnings,
	}, nil
}
