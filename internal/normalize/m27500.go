package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/extract"
)

// normalizeM27500 handles rows from the stateful scan. Shield and jacket
// material never appear per row; they are inferred from the threaded type
// code, and the full canonical part number is reconstructed from its parts:
// M27500-{gauge}{type}{count}{coverage}{shield}{jacket}.
func normalizeM27500(row *entity.NormalizedRow) {
	row.Gauge = row.Field(entity.FieldAWGSize)
	row.TypeCode = row.Field("Type Code")

	if n, err := strconv.Atoi(row.Field("Conductor Count")); err == nil && n > 0 {
		row.TotalConductors = n
		row.PairingConfiguration = strconv.Itoa(n) + "C"
	}

	parseUnits(row, extract.FallbackDivide254,
		entity.FieldShieldDia,
		entity.FieldJacketDia,
		entity.FieldWeight,
	)

	row.ShieldCode, row.JacketCode = constants.M27500DefaultCodes(row.TypeCode)
	row.PartNumber = fmt.Sprintf("M27500-%s%s%d%s%s%s",
		m27500GaugeCode(row.Gauge), row.TypeCode, row.TotalConductors,
		constants.M27500ShieldCoverageCode, row.ShieldCode, row.JacketCode)
}

// m27500GaugeCode renders an AWG size as the zero-padded part-number code.
// Large sizes written "1/0", "2/0" drop the slash; anything non-standard
// falls back to the XX placeholder.
func m27500GaugeCode(awg string) string {
	awg = strings.TrimSpace(awg)
	switch {
	case digitsOnlyRe.MatchString(awg):
		n, _ := strconv.Atoi(awg)
		return fmt.Sprintf("%02d", n)
	case strings.Contains(awg, "/"):
		return strings.ReplaceAll(awg, "/", "")
	default:
		return "XX"
	}
}
