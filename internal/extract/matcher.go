package extract

import (
	"log/slog"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// Matcher locates every occurrence of a known table-row shape in flattened
// document text. Patterns are tried independently and are not mutually
// exclusive; each extracted row carries the family tag of the pattern that
// produced it, and downstream stages dispatch on that tag.
type Matcher struct {
	logger *slog.Logger
}

func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{logger: logger}
}

// cleanField trims a capture, replaces embedded line breaks with spaces, and
// collapses runs of whitespace.
func cleanField(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanRow cleans all captures of one match, applies the pattern's fixup,
// and wraps them as a RawRow.
func cleanRow(p layoutPattern, captures []string) entity.RawRow {
	fields := make([]string, len(captures))
	for i, c := range captures {
		fields[i] = cleanField(c)
	}
	if p.fixup != nil {
		p.fixup(fields)
	}
	return entity.RawRow{Family: p.family, Fields: fields}
}

// MatchAll runs every layout pattern over the text and returns the captured
// rows. Stateless layouts contribute matches in document order per family;
// the M27500 stateful scan appends its rows last.
func (m *Matcher) MatchAll(text string) []entity.RawRow {
	var rows []entity.RawRow

	for _, p := range findallPatterns {
		matched := 0
		for _, groups := range p.re.FindAllStringSubmatch(text, -1) {
			row := cleanRow(p, groups[1:])
			if p.guard != nil && !p.guard(row.Fields) {
				continue
			}
			rows = append(rows, row)
			matched++
		}
		if matched > 0 {
			m.logger.Debug("match.family", "family", p.family, "rows", matched)
		}
	}

	scanned := ScanM27500(text)
	if len(scanned) > 0 {
		m.logger.Debug("match.family", "family", scanned[0].Family, "rows", len(scanned))
	}
	rows = append(rows, scanned...)

	return rows
}
