// Package assemble builds the canonical cable records from normalized rows
// and synthesized geometry.
package assemble

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/geometry"
)

type familyFunc func(a *Assembler, row *entity.NormalizedRow) (*entity.CableRecord, bool)

var byFamily = map[constants.Family]familyFunc{
	constants.FamilyLappEthernet:  (*Assembler).assembleLapp,
	constants.FamilyLappProfibus:  (*Assembler).assembleLapp,
	constants.FamilyLappDeviceNet: (*Assembler).assembleLapp,
	constants.FamilyLappOlflex:    (*Assembler).assembleLapp,
	constants.FamilyM22759Std:     (*Assembler).assembleM22759,
	constants.FamilyM22759HS:      (*Assembler).assembleM22759,
	constants.FamilyM27500:        (*Assembler).assembleM27500,
}

// Assembler turns normalized rows into immutable cable records. Rows that
// fail the geometry preconditions are dropped with a diagnostic; every other
// data-quality problem resolves to a documented fallback value.
type Assembler struct {
	logger *slog.Logger
}

func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger}
}

// Record assembles one cable record. The second return is false when the
// row was dropped (indeterminate conductor count, unusable outer diameter,
// or unknown family).
func (a *Assembler) Record(row *entity.NormalizedRow) (*entity.CableRecord, bool) {
	if row.TotalConductors < 1 {
		a.logger.Debug("assemble.skip", "part_number", row.PartNumber, "reason", "no conductor count")
		return nil, false
	}
	fn, ok := byFamily[row.Family]
	if !ok {
		a.logger.Warn("assemble.skip", "part_number", row.PartNumber, "family", row.Family, "reason", "unknown family")
		return nil, false
	}
	return fn(a, row)
}

// cleanPartNumber strips the footnote markers that ride along on part
// numbers in the printed tables.
func cleanPartNumber(pn string) string {
	return strings.ReplaceAll(pn, "*", "")
}

// cableID composes the lowercase identifier from the family prefix and the
// sanitized part number.
func cableID(family constants.Family, partNumber string) string {
	pn := strings.NewReplacer("/", "-", " ", "-").Replace(partNumber)
	return strings.ToLower(family.IDPrefix() + "-" + pn)
}

// hasDrainCore reports whether any assigned core color is the drain marker.
func hasDrainCore(cores []entity.CoreRecord) bool {
	for _, c := range cores {
		if strings.EqualFold(c.InsulationColor, "Drain") {
			return true
		}
	}
	return false
}

// assembleLapp builds a vendor multi-conductor record: synthesized per-core
// geometry, derived jacket thickness, heuristic shield detection.
func (a *Assembler) assembleLapp(row *entity.NormalizedRow) (*entity.CableRecord, bool) {
	partNumber := cleanPartNumber(row.PartNumber)

	syn, err := geometry.Synthesize(row)
	if err != nil {
		a.logger.Warn("assemble.skip",
			"part_number", partNumber,
			"raw_od", row.Field(entity.FieldNominalODMM),
			"error", err)
		return nil, false
	}

	description := row.Field(entity.FieldConstruction)
	if description == "" {
		description = row.Field(entity.FieldConductorDesc)
	}
	if description == "" {
		description = fmt.Sprintf("%d core cable", row.TotalConductors)
	}
	if jm := row.Field(entity.FieldJacketMat); jm != "" {
		description += ", " + jm + " jacket"
	}

	jacketColor := row.Field(entity.FieldJacketColor)
	if jacketColor == "" {
		jacketColor = "Gray"
	}

	shieldType := 0
	if syn.HasShield {
		shieldType = 1
	}

	drain := hasDrainCore(syn.Cores)
	var drainDiameter float64
	if drain {
		drainDiameter = constants.ConductorDiameterMM(constants.DefaultGauge)
	}

	name := strings.Fields(row.Family.DisplayName())[0]

	return &entity.CableRecord{
		CableID:      cableID(row.Family, partNumber),
		PartNumber:   partNumber,
		Manufacturer: row.Family.Manufacturer(),
		Name: strings.TrimSpace(fmt.Sprintf("%s %s %s %s",
			name, row.PairingConfiguration, row.Gauge, row.Field(entity.FieldJacketMat))),
		Type:                   constants.CableTypeLegacy,
		Cores:                  syn.Cores,
		JacketThickness:        syn.JacketThickness,
		JacketColor:            jacketColor,
		HasShield:              syn.HasShield,
		ShieldType:             shieldType,
		ShieldThickness:        syn.ShieldThickness,
		ShieldCoverage:         syn.ShieldCoverage,
		HasDrainWire:           drain,
		DrainWireDiameter:      drainDiameter,
		SpecifiedOuterDiameter: syn.OuterDiameter,
		Description:            description,
	}, true
}

var colorSuffixRe = regexp.MustCompile(`-(\d{1,2})$`)

// assembleM22759 builds a single-core hookup-wire record straight from the
// table's stated dimensions; no geometry synthesis is needed.
func (a *Assembler) assembleM22759(row *entity.NormalizedRow) (*entity.CableRecord, bool) {
	partNumber := cleanPartNumber(row.PartNumber)

	condDiam := row.Unit(entity.FieldCondDiameter).Metric
	insulMax := row.Unit(entity.FieldInsulMax).Metric
	insulThick := (insulMax - condDiam) / 2
	if insulThick < 0 {
		insulThick = 0
	}

	// Trailing part-number digits are the MIL-STD-104 color code; the first
	// digit is the base wire color.
	baseColor := "White"
	if m := colorSuffixRe.FindStringSubmatch(partNumber); m != nil {
		baseColor = constants.MilStd104Color(m[1][0])
	}

	variant := strings.TrimPrefix(row.Family.DisplayName(), "M22759 ")

	core := entity.CoreRecord{
		CoreID:              "1",
		ConductorDiameter:   round3(condDiam),
		InsulationThickness: round3(insulThick),
		InsulationColor:     baseColor,
		Gauge:               row.Gauge,
		ConductorMaterial:   fmt.Sprintf("Plated Copper (%s)", variant),
	}

	return &entity.CableRecord{
		CableID:                cableID(row.Family, partNumber),
		PartNumber:             partNumber,
		Manufacturer:           row.Family.Manufacturer(),
		Name:                   fmt.Sprintf("%s %s AWG Hookup Wire", row.MilSpec, row.Gauge),
		Type:                   constants.CableTypeHookupWire,
		Cores:                  []entity.CoreRecord{core},
		JacketColor:            baseColor,
		SpecifiedOuterDiameter: round3(insulMax),
		Description: fmt.Sprintf("MIL-W-22759 Hookup Wire, %s AWG, Stranding %s",
			row.Gauge, row.Field(entity.FieldStranding)),
		WeightKgKm:    round3(row.Unit(entity.FieldWeight).Metric),
		MaxResistance: round3(row.Unit(entity.FieldMaxResistance).Metric),
		BreakStrength: round3(row.Unit(entity.FieldBreakStrength).Metric),
	}, true
}

// assembleM27500 builds a multi-conductor record from the reconstructed
// part number and the inferred shield/jacket codes. The dimension tables
// state no per-core geometry, so the cores carry placeholder dimensions.
func (a *Assembler) assembleM27500(row *entity.NormalizedRow) (*entity.CableRecord, bool) {
	componentSpec := "UNKNOWN"
	if s, ok := constants.M27500ComponentCodes[row.TypeCode]; ok {
		componentSpec = s
	}

	cores := make([]entity.CoreRecord, row.TotalConductors)
	for i := range cores {
		cores[i] = entity.CoreRecord{
			CoreID:              strconv.Itoa(i + 1),
			ConductorDiameter:   0.5,
			InsulationThickness: 0.1,
			InsulationColor:     fmt.Sprintf("Code %d (M27500)", i+1),
			Gauge:               row.Gauge,
			ConductorMaterial:   fmt.Sprintf("Plated Copper (from %s)", componentSpec),
		}
	}

	jacketDesc, ok := constants.M27500JacketCodes[row.JacketCode]
	if !ok {
		jacketDesc = "Code " + row.JacketCode
	}
	shieldDesc, ok := constants.M27500ShieldCodes[row.ShieldCode]
	if !ok {
		shieldDesc = "Code " + row.ShieldCode
	}

	isShielded := !strings.EqualFold(row.ShieldCode, constants.M27500UnshieldedCode)
	shieldType := 0
	if isShielded {
		shieldType = 1 // braid
	}

	specifiedOD := row.Unit(entity.FieldJacketDia).Metric
	shieldOD := row.Unit(entity.FieldShieldDia).Metric
	jacketThickness := (specifiedOD - shieldOD) / 2
	if jacketThickness < 0 {
		jacketThickness = 0
	}

	return &entity.CableRecord{
		CableID:      cableID(row.Family, row.PartNumber),
		PartNumber:   row.PartNumber,
		Manufacturer: row.Family.Manufacturer(),
		Name: fmt.Sprintf("MIL-DTL-27500 %dC %sAWG Cable Type %s",
			row.TotalConductors, row.Gauge, row.TypeCode),
		Type:                   constants.CableTypeMultiCore,
		Cores:                  cores,
		JacketThickness:        round3(jacketThickness),
		JacketColor:            "White/Clear (Code dependent)",
		JacketMaterial:         jacketDesc,
		HasShield:              isShielded,
		ShieldType:             shieldType,
		ShieldMaterial:         shieldDesc,
		ShieldCoverage:         constants.M27500ShieldCoveragePct,
		SpecifiedOuterDiameter: round3(specifiedOD),
		Description: fmt.Sprintf("MIL-DTL-27500 Cable: %d conductors of %s wire, Stranding %s.",
			row.TotalConductors, componentSpec, row.Field(entity.FieldStranding)),
		WeightKgKm: round3(row.Unit(entity.FieldWeight).Metric),
	}, true
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
