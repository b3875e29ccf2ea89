// Package normalize turns family-tagged raw rows into the common normalized
// attribute set: part number, resolved gauge, pairing configuration, and
// total conductor count, plus cleaned per-family fields and parsed unit
// pairs. One routine per family, selected through a dispatch table.
package normalize

import (
	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/extract"
)

type familyFunc func(row *entity.NormalizedRow)

var byFamily = map[constants.Family]familyFunc{
	constants.FamilyLappEthernet:  normalizeLappConstruction,
	constants.FamilyLappProfibus:  normalizeLappConstruction,
	constants.FamilyLappDeviceNet: normalizeLappDeviceNet,
	constants.FamilyLappOlflex:    normalizeLappOlflex,
	constants.FamilyM22759Std:     normalizeM22759,
	constants.FamilyM22759HS:      normalizeM22759,
	constants.FamilyM27500:        normalizeM27500,
}

// Row normalizes one raw row. Unknown families yield a row with the sentinel
// zero conductor count, which the assembler drops.
func Row(raw entity.RawRow) *entity.NormalizedRow {
	row := &entity.NormalizedRow{
		Family: raw.Family,
		Fields: zipFields(raw),
		Units:  map[string]entity.UnitPair{},
	}
	row.PartNumber = row.Field(entity.FieldPartNumber)

	if fn, ok := byFamily[raw.Family]; ok {
		fn(row)
	}
	return row
}

// zipFields pairs the positional captures with the family's field schema.
// Extra captures beyond the schema are dropped; missing ones stay absent.
func zipFields(raw entity.RawRow) map[string]string {
	headers := extract.FieldSchema(raw.Family)
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(raw.Fields) {
			fields[h] = raw.Fields[i]
		}
	}
	return fields
}

// parseUnits runs the named fields through the unit-pair parser, populating
// the zero default for fields absent from the row so later arithmetic never
// encounters a missing key.
func parseUnits(row *entity.NormalizedRow, fallback extract.UnitFallback, names ...string) {
	for _, name := range names {
		if s, ok := row.Fields[name]; ok {
			row.Units[name] = extract.ParseUnitPair(s, fallback)
		} else {
			row.Units[name] = entity.ZeroUnitPair
		}
	}
}
