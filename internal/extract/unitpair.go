package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// UnitFallback selects the metric value when a token is a bare number
// instead of the full "US (Metric)" form. The policy is fixed per document
// family: the M22759 tables leave the metric side unknown, while the M27500
// tables carry US values that convert with the historical 25.4 divisor.
type UnitFallback int

const (
	// FallbackZero leaves the metric side at 0 for bare-number tokens.
	FallbackZero UnitFallback = iota
	// FallbackDivide254 derives the metric side as us/25.4 for bare-number
	// tokens.
	FallbackDivide254
)

var unitPairRe = regexp.MustCompile(`^([0-9.]+)\s*\(([0-9.]+)\)`)

// ParseUnitPair parses a "US (Metric)" token into a unit pair. Bare numbers
// resolve the metric side per the family's fallback policy. Any parse
// failure yields the zero pair; both values are always present.
func ParseUnitPair(token string, fallback UnitFallback) entity.UnitPair {
	token = strings.TrimSpace(token)

	if m := unitPairRe.FindStringSubmatch(token); m != nil {
		us, err1 := strconv.ParseFloat(m[1], 64)
		metric, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return entity.ZeroUnitPair
		}
		return entity.UnitPair{US: us, Metric: metric}
	}

	us, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return entity.ZeroUnitPair
	}
	if fallback == FallbackDivide254 {
		return entity.UnitPair{US: us, Metric: us / 25.4}
	}
	return entity.UnitPair{US: us}
}
