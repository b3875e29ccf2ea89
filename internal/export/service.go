// Package export renders merged cable libraries into XLSX workbooks for
// review outside the JSON toolchain.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// Service produces XLSX bytes from a cable library.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportLibraryXLSX flattens the library into one summary sheet, one row per
// cable. Core details collapse into a count plus gauge listing.
func (s *Service) ExportLibraryXLSX(lib entity.CableLibrary) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Cables"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Cable ID",
		"Part Number",
		"Manufacturer",
		"Name",
		"Cores",
		"Gauges",
		"Outer Diameter (mm)",
		"Jacket Thickness (mm)",
		"Shielded",
		"Shield Coverage (%)",
		"Description",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range lib.Cables {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, stringAttr(c, "CableId"))
		write(2, stringAttr(c, "PartNumber"))
		write(3, stringAttr(c, "Manufacturer"))
		write(4, stringAttr(c, "Name"))

		cores, _ := c["Cores"].([]any)
		write(5, len(cores))
		write(6, gaugeSummary(cores))

		write(7, numberAttr(c, "SpecifiedOuterDiameter"))
		write(8, numberAttr(c, "JacketThickness"))

		if shielded, _ := c["HasShield"].(bool); shielded {
			write(9, "yes")
			write(10, numberAttr(c, "ShieldCoverage"))
		} else {
			write(9, "no")
			write(10, "")
		}

		write(11, truncate(stringAttr(c, "Description"), 140))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 34) // cable id
	_ = f.SetColWidth(sheet, "B", "B", 26) // part number
	_ = f.SetColWidth(sheet, "C", "D", 22) // manufacturer, name
	_ = f.SetColWidth(sheet, "E", "J", 12) // numeric columns
	_ = f.SetColWidth(sheet, "K", "K", 60) // description

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(lib.Cables),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func stringAttr(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func numberAttr(m map[string]any, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}

// gaugeSummary lists the distinct core gauges in first-seen order, e.g.
// "22, 18".
func gaugeSummary(cores []any) string {
	seen := make(map[string]struct{})
	out := ""
	for _, c := range cores {
		cm, ok := c.(map[string]any)
		if !ok {
			continue
		}
		g := stringAttr(cm, "Gauge")
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		if out != "" {
			out += ", "
		}
		out += g
	}
	return out
}

// truncate caps s at n runes. Descriptions lifted from vendor PDFs carry
// multi-byte characters, so slicing must land on rune boundaries.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
