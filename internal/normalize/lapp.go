package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

var (
	awgTokenRe   = regexp.MustCompile(`(?i)(\d{1,2}(?:/\d{1,2})?\s*AWG|\d+\s*KCMIL)`)
	pairGaugeRe  = regexp.MustCompile(`(?i)(\d{1,2})\s*AWG\s*/\s*pr`)
	pairCountRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:pr|pair|x\s*\d+x)`)
	condCountRe  = regexp.MustCompile(`(\d+)[cC](?:/[gG])?`)
	digitsOnlyRe = regexp.MustCompile(`^\d+$`)
)

// normalizeLappConstruction resolves gauge and conductor layout from the
// free-text construction/description column shared by the ETHERLINE and
// PROFIBUS layouts.
func normalizeLappConstruction(row *entity.NormalizedRow) {
	parseField := row.Field(entity.FieldConstruction)
	if parseField == "" {
		parseField = row.Field(entity.FieldConductorDesc)
	}
	if parseField == "" {
		return
	}

	resolveLappGauge(row, parseField)

	// Pairing notation wins over a bare conductor count when both match.
	if m := pairCountRe.FindStringSubmatch(parseField); m != nil {
		pairs, _ := strconv.Atoi(m[1])
		row.PairingConfiguration = strconv.Itoa(pairs) + " pr"
		row.TotalConductors = pairs * 2
	} else if m := condCountRe.FindStringSubmatch(parseField); m != nil {
		n, _ := strconv.Atoi(m[1])
		row.PairingConfiguration = m[1] + "C"
		row.TotalConductors = n
	}
}

// normalizeLappDeviceNet handles the DeviceNet trunk/drop layout: the
// construction column is parsed like the other LAPP layouts, but the core
// layout is always the fixed 2 signal + 2 power + 1 drain arrangement.
func normalizeLappDeviceNet(row *entity.NormalizedRow) {
	normalizeLappConstruction(row)
	row.PairingConfiguration = "2P + 1T"
	row.TotalConductors = 5
}

// normalizeLappOlflex reads the explicit conductor-count column of the
// power & control layout. Counts above one are recorded as "NC" single
// conductors; gauge stays unresolved and defaults downstream.
func normalizeLappOlflex(row *entity.NormalizedRow) {
	count := row.Field(entity.FieldCondCount)
	count = strings.TrimSpace(strings.ReplaceAll(count, "KCMIL", ""))
	if !digitsOnlyRe.MatchString(count) {
		return
	}
	n, _ := strconv.Atoi(count)
	row.TotalConductors = n
	if n > 1 {
		row.PairingConfiguration = count + "C"
	}
}

// resolveLappGauge extracts an AWG/KCMIL token embedded in the construction
// string and strips its non-numeric decoration.
func resolveLappGauge(row *entity.NormalizedRow, parseField string) {
	if m := awgTokenRe.FindStringSubmatch(parseField); m != nil {
		row.Gauge = strings.TrimSpace(m[1])
	}
	if m := pairGaugeRe.FindStringSubmatch(parseField); m != nil {
		row.Gauge = m[1] + " AWG"
	}

	if strings.Contains(strings.ToUpper(row.Gauge), "AWG") {
		row.Gauge = strings.TrimSpace(strings.ReplaceAll(strings.ToUpper(row.Gauge), "AWG", ""))
	}
}
