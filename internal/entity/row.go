package entity

import "github.com/DangerDawgAU/cable-datasheet-extractor/constants"

// RawRow is an ordered tuple of field strings captured by one layout
// pattern, tagged with the family whose pattern produced it. Positional and
// family-specific; carries no typing of its own.
type RawRow struct {
	Family constants.Family
	Fields []string
}

// UnitPair is a physical value expressed in both US customary and metric
// units, as printed in source tables. Both fields are always populated; a
// failed parse yields the zero pair rather than a missing value.
type UnitPair struct {
	US     float64 `json:"us"`
	Metric float64 `json:"metric"`
}

// ZeroUnitPair is the documented fallback for absent or unparseable
// unit-pair fields.
var ZeroUnitPair = UnitPair{}

// Well-known field names shared across families.
const (
	FieldPartNumber    = "Part Number"
	FieldConstruction  = "Construction"
	FieldConductorDesc = "Conductor Description"
	FieldStranding     = "Stranding"
	FieldJacketMat     = "Jacket Material"
	FieldJacketColor   = "Jacket Color"
	FieldApprovals     = "Approvals"
	FieldNominalODIn   = "Nominal OD (in)"
	FieldNominalODMM   = "Nominal OD (mm)"
	FieldCondCount     = "Conductor Count (incl. ground)"
	FieldAWGSize       = "AWG Size"
	FieldCondDiameter  = "Conductor Diameter"
	FieldInsulMin      = "Insulation Diameter Minimum"
	FieldInsulMax      = "Insulation Diameter Maximum"
	FieldWeight        = "Weight"
	FieldMaxResistance = "Maximum Resistance"
	FieldBreakStrength = "Break Strength"
	FieldShieldDia     = "Shield Diameter"
	FieldJacketDia     = "Jacket Diameter"
	FieldThermaxPN     = "Thermax P/N"
)

// NormalizedRow is the common attribute set produced by the per-family
// normalizers. TotalConductors is either a positive count or zero when
// indeterminate; the assembler drops zero-count rows.
type NormalizedRow struct {
	Family               constants.Family
	PartNumber           string
	Gauge                string // cleaned AWG size, "KCMIL", or "" when unresolved
	PairingConfiguration string // "N pr", "NC", "2P + 1T", or "" when unresolved
	TotalConductors      int

	// Fields holds the cleaned raw captures keyed by header name.
	Fields map[string]string

	// Units holds every dimension/weight/resistance field passed through the
	// unit-pair parser. Absent fields map to the zero pair so downstream
	// arithmetic never misses a key.
	Units map[string]UnitPair

	// MIL-spec extras (zero values for vendor families).
	MilSpec    string // e.g. "MIL-DTL-22759/16"
	TypeCode   string // M27500 type code from the table context
	ShieldCode string // inferred shield material code
	JacketCode string // inferred jacket code
}

// Field returns the cleaned capture for name, or "" when absent.
func (r *NormalizedRow) Field(name string) string {
	return r.Fields[name]
}

// Unit returns the parsed unit pair for name, or the zero pair when absent.
func (r *NormalizedRow) Unit(name string) UnitPair {
	if u, ok := r.Units[name]; ok {
		return u
	}
	return ZeroUnitPair
}
