package normalize

import (
	"regexp"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/extract"
)

var milSpecRe = regexp.MustCompile(`M22759/\d{1,2}`)

// normalizeM22759 handles both the standard and high-strength hookup-wire
// layouts. Every dimension column is a "US (Metric)" pair; the metric side
// of a bare number stays unknown for this family. Rows are single-conductor
// by construction.
func normalizeM22759(row *entity.NormalizedRow) {
	row.Gauge = row.Field(entity.FieldAWGSize)
	row.TotalConductors = 1
	row.PairingConfiguration = "1C"

	parseUnits(row, extract.FallbackZero,
		entity.FieldCondDiameter,
		entity.FieldInsulMin,
		entity.FieldInsulMax,
		entity.FieldWeight,
		entity.FieldMaxResistance,
		entity.FieldBreakStrength,
	)

	if m := milSpecRe.FindString(row.PartNumber); m != "" {
		row.MilSpec = "MIL-DTL-" + m[1:]
	}
}
