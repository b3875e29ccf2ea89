package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// The M27500 dimension tables declare their meaning out of band: a context
// line names the active type codes ("M27500 Cables—types SA and TA (...)"),
// a section header declares the conductor count ("Dimensions and Weight—4
// Conductor Cables"), and the data rows below them carry neither. One
// composite pattern recognizes all three alternatives; a fold threads the
// most recent context and count onto every data row until the next change.

var m27500Scan = regexp.MustCompile(`(?is)` +
	`M27500 Cables—types\s+(?P<TYPECODES>[A-Z]{2}(?:\s+and|,)\s*[A-Z]{2}(?:\s+and|,)\s*[A-Z]{2}|[A-Z]{2}(?:\s+and|,)\s*[A-Z]{2}|[A-Z]{2})\s+\([A-Z0-9/\s,]+\)` +
	`|Dimensions and Weight—(?P<CONDCOUNT>\d)\s+Conductor Cables\*?` +
	`|(?P<AWG>[0-9/]{1,4})\s+(?P<STRANDING>[0-9/]+)\s+(?P<SHIELDDIA>` + unitPairToken +
	`)\s+(?P<JACKETDIA>` + unitPairToken + `)\s+(?P<WEIGHT>` + unitPairToken + `)`)

// scanState is the accumulator threaded through the fold. A data row seen
// before both parts are established is discarded.
type scanState struct {
	conductorCount int
	typeCodes      []string
}

// parseTypeCodes splits "SA and TA" / "SA, TA, RC" into individual codes.
func parseTypeCodes(s string) []string {
	s = strings.ReplaceAll(s, "and", ",")
	var codes []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

// scanStep advances the fold by one composite match, returning the updated
// state and zero or more emitted rows. A data row fans out into one row per
// active type code, with the threaded count and code appended to the tuple.
func scanStep(st scanState, groups map[string]string) (scanState, []entity.RawRow) {
	switch {
	case groups["TYPECODES"] != "":
		st.typeCodes = parseTypeCodes(groups["TYPECODES"])
		return st, nil

	case groups["CONDCOUNT"] != "":
		n, err := strconv.Atoi(groups["CONDCOUNT"])
		if err == nil {
			st.conductorCount = n
		}
		return st, nil

	default:
		if st.conductorCount <= 0 || len(st.typeCodes) == 0 {
			return st, nil
		}
		data := []string{
			cleanField(groups["AWG"]),
			cleanField(groups["STRANDING"]),
			cleanField(groups["SHIELDDIA"]),
			cleanField(groups["JACKETDIA"]),
			cleanField(groups["WEIGHT"]),
		}
		rows := make([]entity.RawRow, 0, len(st.typeCodes))
		for _, code := range st.typeCodes {
			fields := make([]string, 0, len(data)+2)
			fields = append(fields, data...)
			fields = append(fields, strconv.Itoa(st.conductorCount), code)
			rows = append(rows, entity.RawRow{Family: constants.FamilyM27500, Fields: fields})
		}
		return st, rows
	}
}

// ScanM27500 runs the stateful scan over the document text and returns the
// threaded data rows in document order.
func ScanM27500(text string) []entity.RawRow {
	names := m27500Scan.SubexpNames()
	var st scanState
	var rows []entity.RawRow

	for _, match := range m27500Scan.FindAllStringSubmatch(text, -1) {
		groups := make(map[string]string, len(names))
		for i, name := range names {
			if name != "" && match[i] != "" {
				groups[name] = match[i]
			}
		}
		var emitted []entity.RawRow
		st, emitted = scanStep(st, groups)
		rows = append(rows, emitted...)
	}
	return rows
}
