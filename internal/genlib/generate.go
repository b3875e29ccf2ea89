package genlib

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// Generator produces hookup-wire records straight from the slash-sheet
// tables, without any document extraction.
type Generator struct {
	logger *slog.Logger
}

func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger}
}

// Generate builds one record per wire of every sheet, in table order.
func (g *Generator) Generate() []entity.CableRecord {
	var out []entity.CableRecord
	for _, sheet := range Sheets {
		for _, w := range sheet.Wires {
			out = append(out, wireRecord(sheet, w))
		}
	}
	g.logger.Info("genlib.generated", "sheets", len(Sheets), "cables", len(out))
	return out
}

// wireRecord maps one table row to a canonical record. The insulation wall
// is half the spread between the average finished diameter and the
// conductor; the jacket mirrors it since hookup wire has no separate jacket.
func wireRecord(sheet SheetSpec, w WireSpec) entity.CableRecord {
	avgDia := (w.InsulationMin + w.InsulationMax) / 2.0
	wall := (avgDia - w.ConductorDia) / 2.0

	partNumber := fmt.Sprintf("M22759/%s-%s", sheet.Slash, w.Gauge)
	cableID := strings.ReplaceAll(fmt.Sprintf("m22759-%s-%s", sheet.Slash, w.Gauge), "/", "-")

	return entity.CableRecord{
		CableID:      cableID,
		PartNumber:   partNumber,
		Manufacturer: "MIL-SPEC",
		Name: fmt.Sprintf("M22759/%s %s AWG %s - %s",
			sheet.Slash, w.Gauge, sheet.Conductor, sheet.Insulation),
		Type: constants.CableTypeGenericSingle,
		Cores: []entity.CoreRecord{{
			CoreID:              "1",
			ConductorDiameter:   w.ConductorDia,
			InsulationThickness: wall,
			InsulationColor:     "Natural",
			Gauge:               w.Gauge,
			ConductorMaterial:   sheet.Conductor,
		}},
		JacketThickness:        wall,
		JacketColor:            "Natural",
		SpecifiedOuterDiameter: avgDia,
		Description: fmt.Sprintf("%d-strand %s hookup wire, %s, %d C, %d V",
			w.Strands, sheet.Conductor, sheet.Insulation, sheet.TempC, sheet.Voltage),
		MaxResistance: w.Resistance,
	}
}
