package constants

// Gauge tables for stranded copper conductors. All dimensions are
// millimeters. Values follow standard AWG tables for stranded wire;
// insulation thickness is a simplified figure for typical low-voltage and
// data cables.

// GaugeKCMIL is the large-gauge sentinel used by vendor tables for sizes
// beyond the AWG range.
const GaugeKCMIL = "KCMIL"

// DefaultGauge is assumed when a row's gauge cannot be resolved against the
// tables. Carried over from the source tool; correct for the observed vendor
// tables, not a universal default.
const DefaultGauge = "22"

// AWGToDiameterMM maps an AWG size to nominal conductor diameter (mm).
var AWGToDiameterMM = map[string]float64{
	"10": 2.588, "12": 2.052, "14": 1.628, "16": 1.291,
	"18": 1.024, "20": 0.812, "22": 0.644, "24": 0.511,
	"26": 0.405, "28": 0.321, "30": 0.255, GaugeKCMIL: 5.0,
}

// AWGToInsulationMM maps an AWG size to generic insulation wall
// thickness (mm).
var AWGToInsulationMM = map[string]float64{
	"10": 0.7, "12": 0.6, "14": 0.5, "16": 0.45,
	"18": 0.4, "20": 0.35, "22": 0.25, "24": 0.2,
	"26": 0.18, "28": 0.15, "30": 0.15, GaugeKCMIL: 1.0,
}

// ConductorDiameterMM resolves a gauge to its nominal conductor diameter,
// falling back to DefaultGauge for unknown sizes.
func ConductorDiameterMM(gauge string) float64 {
	if d, ok := AWGToDiameterMM[gauge]; ok {
		return d
	}
	return AWGToDiameterMM[DefaultGauge]
}

// InsulationThicknessMM resolves a gauge to its generic insulation wall
// thickness, falling back to DefaultGauge for unknown sizes.
func InsulationThicknessMM(gauge string) float64 {
	if t, ok := AWGToInsulationMM[gauge]; ok {
		return t
	}
	return AWGToInsulationMM[DefaultGauge]
}

// KnownGauge reports whether the gauge appears in the static tables.
func KnownGauge(gauge string) bool {
	_, ok := AWGToDiameterMM[gauge]
	return ok
}
