package extract

import (
	"regexp"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// layoutPattern binds one table-layout regular expression to its family tag
// and ordered field-name schema. Patterns are whitespace/newline tolerant:
// long free-text columns (approvals lists) wrap across lines in the
// flattened text, so most patterns run in dot-matches-newline mode.
type layoutPattern struct {
	family  constants.Family
	re      *regexp.Regexp
	headers []string

	// guard rejects a structurally matching tuple that belongs to a
	// different sub-table (e.g. a column-header echo). nil accepts all.
	guard func(fields []string) bool

	// fixup adjusts cleaned captures in place (fill defaults, strip
	// column-specific noise). nil leaves fields untouched.
	fixup func(fields []string)
}

// unitPairToken matches "X.XX" or "X.XX (Y.YY)" without capturing.
const unitPairToken = `[0-9.]+\s*(?:\([0-9.]+\))?`

// capturedPair matches one full "US (Metric)" column.
const capturedPair = `([0-9.]+\s*\([0-9.]+\))`

var lappEthernetPattern = layoutPattern{
	family: constants.FamilyLappEthernet,
	re:     regexp.MustCompile(`(?is)(\d{7}[*A-Z]{0,3})\s+([\dAWG/pr\s]+)\s+(solid|\d{1,2}\s*wire)\s+(PVC|PUR|halogen-free|PVC\*|PUR\*|TPE)\s+([\w—*/]+)\s+(.+?)\s+(yes|no)\s+(yes|no)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+(\d{3}\s*\d{5})`),
	headers: []string{
		entity.FieldPartNumber, entity.FieldConstruction, entity.FieldStranding,
		entity.FieldJacketMat, entity.FieldJacketColor, entity.FieldApprovals,
		"Fast Connect", "PoE", entity.FieldNominalODIn, entity.FieldNominalODMM,
		"Approx. Weight (lbs/mft)", "SKINTOP MS-SC",
	},
}

var lappProfibusPattern = layoutPattern{
	family: constants.FamilyLappProfibus,
	re:     regexp.MustCompile(`(\d{7}\**)\s+(PVC|PUR|halogen-free|PVC/PE)\s+(.+?)\s+(.+?)\s+([0-9]\.\d{3})\s+([\d.]+)\s+([\d.]+)\s+([\d.]+)\s+(\d{3}\s*\d{5})`),
	headers: []string{
		entity.FieldPartNumber, entity.FieldJacketMat, entity.FieldConductorDesc,
		entity.FieldApprovals, entity.FieldNominalODIn, entity.FieldNominalODMM,
		"Copper Weight (lbs/mft)", "Approx. Weight (lbs/mft)", "SKINTOP MS-SC",
	},
	// "Thick"/"Thin" in the description column is the DeviceNet sub-table
	// leaking into this layout.
	guard: func(fields []string) bool {
		d := strings.TrimSpace(fields[2])
		return d != "Thick" && d != "Thin"
	},
}

var lappDeviceNetPattern = layoutPattern{
	family: constants.FamilyLappDeviceNet,
	re:     regexp.MustCompile(`(?is)(\d{4,7})\s+(Thick|Thin)\s+(?:(PVC|PUR|halogen-free(?:.*?FRNC)?)\s+)?(.+?)\s+([0-9]\.\d{3})\s+([\d.\s]+)\s+([\d.]+)\s+([\d.]+)\s+(\d{3}\s*\d{5})`),
	headers: []string{
		entity.FieldPartNumber, "Type", entity.FieldJacketMat,
		entity.FieldConductorDesc, entity.FieldNominalODIn, entity.FieldNominalODMM,
		"Copper Weight (lbs/mft)", "Approx. Weight (lbs/mft)", "SKINTOP MS-SC",
	},
	fixup: func(fields []string) {
		if fields[2] == "" {
			fields[2] = "Not Specified"
		}
	},
}

var lappOlflexPattern = layoutPattern{
	family: constants.FamilyLappOlflex,
	re:     regexp.MustCompile(`(?is)(\d{4,7}C?Y?\*?)\s+(\d{1,3}|KCMIL)\s+([0-9]\.\d{3})\s+([\d.]+)\s+([\d.]+)\s+([\d.]+)\s+(S\s*\d{3,5}|[\d.\s]+\s*PG\s*thread)`),
	headers: []string{
		entity.FieldPartNumber, entity.FieldCondCount, entity.FieldNominalODIn,
		entity.FieldNominalODMM, "Copper Weight (lbs/mft)", "Approx. Weight (lbs/mft)",
		"SKINTOP",
	},
	// The SKINTOP column echoes its "PG thread" unit label into the capture.
	fixup: func(fields []string) {
		fields[6] = strings.TrimSpace(strings.ReplaceAll(fields[6], "PG thread", ""))
	},
}

var m22759StdPattern = layoutPattern{
	family: constants.FamilyM22759Std,
	re: regexp.MustCompile(`(?is)(M22759/\d{1,2}-\d{1,2}[/-]\*?)\s+([\d/]{1,4})\s+([\d/]+)\s+` +
		capturedPair + `\s+` + capturedPair + `\s+` + capturedPair + `\s+` +
		capturedPair + `\s+` + capturedPair + `\s+` + capturedPair + `\s+([A-Z0-9/-]+)`),
	headers: []string{
		entity.FieldPartNumber, entity.FieldAWGSize, entity.FieldStranding,
		entity.FieldCondDiameter, entity.FieldInsulMin, entity.FieldInsulMax,
		entity.FieldWeight, entity.FieldMaxResistance, entity.FieldThermaxPN,
	},
	// High-strength detail sheets carry an extra break-strength column and
	// are matched by their own pattern.
	guard: func(fields []string) bool {
		for _, s := range []string{"17", "19", "20", "21", "22", "23"} {
			if strings.Contains(fields[0], "/"+s+"-") {
				return false
			}
		}
		return true
	},
}

var m22759HSPattern = layoutPattern{
	family: constants.FamilyM22759HS,
	re: regexp.MustCompile(`(?is)(M22759/\d{1,2}-\d{1,2}-\*)\s+([\d/]+)\s+([\d/]+)\s+` +
		capturedPair + `\s+` + capturedPair + `\s+` + capturedPair + `\s+` +
		capturedPair + `\s+` + capturedPair + `\s+` + capturedPair + `\s+` +
		capturedPair + `\s+([A-Z0-9/-]+)`),
	headers: []string{
		entity.FieldPartNumber, entity.FieldAWGSize, entity.FieldStranding,
		entity.FieldCondDiameter, entity.FieldInsulMin, entity.FieldInsulMax,
		entity.FieldWeight, entity.FieldMaxResistance, entity.FieldBreakStrength,
		entity.FieldThermaxPN,
	},
}

// findallPatterns are the stateless layouts, tried independently over the
// whole document text. The M27500 layout needs surrounding context and runs
// as a stateful scan instead (see scan.go).
var findallPatterns = []layoutPattern{
	lappEthernetPattern,
	lappProfibusPattern,
	lappDeviceNetPattern,
	lappOlflexPattern,
	m22759StdPattern,
	m22759HSPattern,
}

// m27500Headers is the schema for rows emitted by the M27500 scan: the five
// data columns plus the threaded conductor count and type code.
var m27500Headers = []string{
	entity.FieldAWGSize, entity.FieldStranding, entity.FieldShieldDia,
	entity.FieldJacketDia, entity.FieldWeight, "Conductor Count", "Type Code",
}

// FieldSchema returns the ordered field names for raw rows of the family.
func FieldSchema(family constants.Family) []string {
	if family == constants.FamilyM27500 {
		return m27500Headers
	}
	for _, p := range findallPatterns {
		if p.family == family {
			return p.headers
		}
	}
	return nil
}
