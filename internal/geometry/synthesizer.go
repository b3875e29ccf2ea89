// Package geometry derives per-core dimensions, the bundle diameter, and
// the jacket thickness for table layouts that do not state per-core
// dimensions directly. The packing formulas are the coarse approximations
// baked into the extraction pipeline from the start: they assume concentric
// circular packing and ignore cabling lay and interstitial filler, and are
// kept as-is for output compatibility.
package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

const (
	// MinJacketThicknessMM floors the derived jacket wall.
	MinJacketThicknessMM = 0.5
	// ShieldAllowanceMM is the fixed radial allowance for a detected shield.
	ShieldAllowanceMM = 0.05
	// DefaultShieldCoverage is the nominal braid coverage assumed when the
	// table states none.
	DefaultShieldCoverage = 85
)

// Synthesis is the derived geometry for one normalized row.
type Synthesis struct {
	Cores           []entity.CoreRecord
	BundleDiameter  float64
	OuterDiameter   float64
	HasShield       bool
	ShieldThickness float64
	ShieldCoverage  int
	JacketThickness float64
}

// Synthesize computes core layout and jacket geometry for a vendor
// multi-conductor row. It fails only on the geometry preconditions: a
// non-positive conductor count or an unparseable/non-positive specified
// outer diameter.
func Synthesize(row *entity.NormalizedRow) (Synthesis, error) {
	if row.TotalConductors < 1 {
		return Synthesis{}, fmt.Errorf("no usable conductor count")
	}

	od, err := ParseOuterDiameter(row)
	if err != nil {
		return Synthesis{}, err
	}

	s := Synthesis{
		Cores:         BuildCores(row),
		OuterDiameter: od,
	}
	s.HasShield = DetectShield(row.PartNumber, row.Field(entity.FieldApprovals))
	if s.HasShield {
		s.ShieldThickness = ShieldAllowanceMM
		s.ShieldCoverage = DefaultShieldCoverage
	}
	s.BundleDiameter = BundleDiameter(s.Cores, row.TotalConductors)
	s.JacketThickness = round3(jacketThickness(od, s.BundleDiameter, s.ShieldThickness))
	return s, nil
}

// BaseGauge resolves a single representative gauge for the row: the first
// token of a "gauge/role" expression, validated against the static tables
// with the documented default for unknown sizes.
func BaseGauge(gauge string) string {
	g := strings.ReplaceAll(gauge, " ", "")
	g = strings.SplitN(g, "/", 2)[0]
	if constants.KnownGauge(g) {
		return g
	}
	return constants.DefaultGauge
}

// deviceNetLayout is the fixed 5-core arrangement of DeviceNet trunk/drop
// cable: one signal pair, one power pair, one drain.
var deviceNetLayout = []struct {
	gauge string
	color string
}{
	{"22", constants.FourPairColors[0][0]},
	{"22", constants.FourPairColors[0][1]},
	{"18", constants.MultiConductorColors[2]},
	{"18", constants.MultiConductorColors[0]},
	{"22", "Drain"},
}

// BuildCores creates one core record per conductor position. Colors cycle
// through the paired palette when the row's pairing notation indicates pairs
// and the count is even, otherwise through the sequential palette. The
// DeviceNet family overrides both with its fixed mixed-gauge layout.
func BuildCores(row *entity.NormalizedRow) []entity.CoreRecord {
	if row.Family == constants.FamilyLappDeviceNet {
		return deviceNetCores(row.TotalConductors)
	}

	gauge := BaseGauge(row.Gauge)
	condDiam := constants.ConductorDiameterMM(gauge)
	insulThick := constants.InsulationThicknessMM(gauge)

	var colors []string
	if strings.HasSuffix(row.PairingConfiguration, "pr") && row.TotalConductors%2 == 0 {
		colors = constants.PairedPalette()
	} else {
		colors = constants.MultiConductorColors
	}

	cores := make([]entity.CoreRecord, row.TotalConductors)
	for i := range cores {
		cores[i] = entity.CoreRecord{
			CoreID:              strconv.Itoa(i + 1),
			ConductorDiameter:   condDiam,
			InsulationThickness: insulThick,
			InsulationColor:     colors[i%len(colors)],
			Gauge:               gauge,
			ConductorMaterial:   "Copper",
		}
	}
	return cores
}

func deviceNetCores(total int) []entity.CoreRecord {
	layout := deviceNetLayout
	if total < len(layout) {
		layout = layout[:total]
	}
	cores := make([]entity.CoreRecord, len(layout))
	for i, spec := range layout {
		cores[i] = entity.CoreRecord{
			CoreID:              strconv.Itoa(i + 1),
			ConductorDiameter:   constants.ConductorDiameterMM(spec.gauge),
			InsulationThickness: constants.InsulationThicknessMM(spec.gauge),
			InsulationColor:     spec.color,
			Gauge:               spec.gauge,
			ConductorMaterial:   "Copper",
		}
	}
	return cores
}

// BundleDiameter approximates the pre-jacket bundle diameter from the
// largest core OD. Four or fewer conductors pack within twice the largest
// core; larger counts follow a square-root packing approximation.
func BundleDiameter(cores []entity.CoreRecord, totalConductors int) float64 {
	if len(cores) == 0 {
		return 0
	}
	var maxOD float64
	for _, c := range cores {
		if od := c.OuterDiameter(); od > maxOD {
			maxOD = od
		}
	}
	if totalConductors <= 4 {
		return maxOD * 2
	}
	return maxOD * (1 + math.Sqrt(float64(totalConductors))/2)
}

// DetectShield reports whether the row describes a shielded cable: a shield
// marker letter in the part number, or a braid mention in the free-text
// approvals column.
func DetectShield(partNumber, approvals string) bool {
	return strings.Contains(strings.ToUpper(partNumber), "C") ||
		strings.Contains(strings.ToLower(approvals), "braid")
}

// ParseOuterDiameter reads the specified outer diameter (mm) from the row.
// The power & control tables sometimes glue several space-separated numbers
// into the OD column (a document-extraction artifact); the first numeric
// token is the true value for that family only. Internal spaces within a
// single number are always removed.
func ParseOuterDiameter(row *entity.NormalizedRow) (float64, error) {
	raw := row.Field(entity.FieldNominalODMM)

	cleaned := raw
	if row.Family == constants.FamilyLappOlflex {
		if parts := strings.Fields(cleaned); len(parts) > 1 {
			cleaned = parts[0]
		}
	}
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	od, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse outer diameter %q: %w", raw, err)
	}
	if od <= 0 {
		return 0, fmt.Errorf("non-positive outer diameter %q", raw)
	}
	return od, nil
}

// jacketThickness derives the jacket wall from the residual radial space
// between the specified OD and the bundle, less the shield allowance,
// floored at the minimum wall.
func jacketThickness(outerDiameter, bundleDiameter, shieldThickness float64) float64 {
	residual := (outerDiameter - bundleDiameter) / 2
	return math.Max(MinJacketThicknessMM, residual-shieldThickness)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
