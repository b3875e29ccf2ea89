// Package doctext supplies the flattened text of a source document. The
// extraction pipeline only consumes the final string; page boundaries are
// marked with delimiter lines that downstream matching tolerates as
// ordinary text.
package doctext

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
)

// Provider yields the full flattened text of a source document.
type Provider interface {
	Extract(ctx context.Context, path string) (Result, error)
}

type Result struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "TXT"
	Duration   time.Duration
	Warnings   []string
}

// PageDelimiter renders the literal page-boundary line inserted between
// extracted pages.
func PageDelimiter(page int) string {
	return fmt.Sprintf("\n\n----- PAGE %d -----\n\n", page)
}

// ForPath selects a provider by the source format of the file extension.
func ForPath(path string, logger *slog.Logger) (Provider, error) {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case "PDF":
		return NewPDFProvider(logger), nil
	case "TXT":
		return NewPlainProvider(logger), nil
	}
	return nil, fmt.Errorf("unsupported source format %q, want one of %s",
		filepath.Ext(path), strings.Join(constants.SourceFormats, ", "))
}
