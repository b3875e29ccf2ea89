package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

func TestRecordDropsIndeterminateRow(t *testing.T) {
	a := NewAssembler(nil)
	rec, ok := a.Record(&entity.NormalizedRow{
		Family:     constants.FamilyLappEthernet,
		PartNumber: "2170456",
		Fields:     map[string]string{},
	})
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestRecordDropsUnknownFamily(t *testing.T) {
	a := NewAssembler(nil)
	_, ok := a.Record(&entity.NormalizedRow{
		Family:          constants.Family("bogus"),
		TotalConductors: 2,
		Fields:          map[string]string{},
	})
	assert.False(t, ok)
}

func TestAssembleEthernet(t *testing.T) {
	a := NewAssembler(nil)
	row := &entity.NormalizedRow{
		Family:               constants.FamilyLappEthernet,
		PartNumber:           "2170456*",
		Gauge:                "22",
		PairingConfiguration: "2 pr",
		TotalConductors:      4,
		Fields: map[string]string{
			entity.FieldConstruction: "22 AWG/2pr",
			entity.FieldJacketMat:    "PUR",
			entity.FieldJacketColor:  "Green",
			entity.FieldNominalODMM:  "6.6",
			entity.FieldApprovals:    "CMX",
		},
		Units: map[string]entity.UnitPair{},
	}

	rec, ok := a.Record(row)
	require.True(t, ok)

	assert.Equal(t, "ethernet-2170456", rec.CableID)
	assert.Equal(t, "2170456", rec.PartNumber)
	assert.Equal(t, "LAPP", rec.Manufacturer)
	assert.Equal(t, "Ethernet/Industrial 2 pr 22 PUR", rec.Name)
	assert.Equal(t, constants.CableTypeLegacy, rec.Type)
	require.Len(t, rec.Cores, 4)
	assert.Equal(t, "Green", rec.JacketColor)
	assert.Equal(t, "22 AWG/2pr, PUR jacket", rec.Description)
	assert.False(t, rec.HasShield)
	assert.False(t, rec.HasDrainWire)
	assert.InDelta(t, 6.6, rec.SpecifiedOuterDiameter, 1e-9)
	assert.Greater(t, rec.JacketThickness, 0.0)
}

func TestAssembleEthernetDropsBadDiameter(t *testing.T) {
	a := NewAssembler(nil)
	row := &entity.NormalizedRow{
		Family:               constants.FamilyLappEthernet,
		PartNumber:           "2170456",
		PairingConfiguration: "2 pr",
		TotalConductors:      4,
		Fields: map[string]string{
			entity.FieldNominalODMM: "n/a",
		},
		Units: map[string]entity.UnitPair{},
	}
	_, ok := a.Record(row)
	assert.False(t, ok)
}

func TestAssembleDeviceNetDrainWire(t *testing.T) {
	a := NewAssembler(nil)
	row := &entity.NormalizedRow{
		Family:               constants.FamilyLappDeviceNet,
		PartNumber:           "2170345",
		Gauge:                "18",
		PairingConfiguration: "2P + 1T",
		TotalConductors:      5,
		Fields: map[string]string{
			entity.FieldConductorDesc: "2x18AWG + 2x15AWG",
			entity.FieldJacketMat:     "PVC",
			entity.FieldNominalODMM:   "12.2",
		},
		Units: map[string]entity.UnitPair{},
	}

	rec, ok := a.Record(row)
	require.True(t, ok)

	assert.Equal(t, "devicenet-2170345", rec.CableID)
	require.Len(t, rec.Cores, 5)
	assert.True(t, rec.HasDrainWire)
	assert.InDelta(t, constants.ConductorDiameterMM(constants.DefaultGauge), rec.DrainWireDiameter, 1e-9)
	// No jacket color column in this layout.
	assert.Equal(t, "Gray", rec.JacketColor)
	assert.Equal(t, "2x18AWG + 2x15AWG, PVC jacket", rec.Description)
}

func TestAssembleM22759(t *testing.T) {
	a := NewAssembler(nil)
	row := &entity.NormalizedRow{
		Family:               constants.FamilyM22759Std,
		PartNumber:           "M22759/16-20-9*",
		Gauge:                "20",
		PairingConfiguration: "1C",
		TotalConductors:      1,
		MilSpec:              "MIL-DTL-22759/16",
		Fields: map[string]string{
			entity.FieldStranding: "19/32",
		},
		Units: map[string]entity.UnitPair{
			entity.FieldCondDiameter:  {US: 0.0320, Metric: 0.813},
			entity.FieldInsulMax:      {US: 0.0590, Metric: 1.499},
			entity.FieldWeight:        {US: 4.6, Metric: 6.8},
			entity.FieldMaxResistance: {US: 9.88, Metric: 32.4},
		},
	}

	rec, ok := a.Record(row)
	require.True(t, ok)

	assert.Equal(t, "m22759-m22759-16-20-9", rec.CableID)
	assert.Equal(t, "M22759/16-20-9", rec.PartNumber)
	assert.Equal(t, "Thermax (Implied)", rec.Manufacturer)
	assert.Equal(t, "MIL-DTL-22759/16 20 AWG Hookup Wire", rec.Name)
	assert.Equal(t, constants.CableTypeHookupWire, rec.Type)

	require.Len(t, rec.Cores, 1)
	core := rec.Cores[0]
	assert.InDelta(t, 0.813, core.ConductorDiameter, 1e-9)
	assert.InDelta(t, 0.343, core.InsulationThickness, 1e-9)
	// Color code suffix -9 resolves through the MIL-STD-104 digit table.
	assert.Equal(t, "White", core.InsulationColor)
	assert.Equal(t, "Plated Copper (Standard)", core.ConductorMaterial)

	assert.InDelta(t, 1.499, rec.SpecifiedOuterDiameter, 1e-9)
	assert.InDelta(t, 6.8, rec.WeightKgKm, 1e-9)
	assert.InDelta(t, 32.4, rec.MaxResistance, 1e-9)
	assert.Zero(t, rec.BreakStrength)
}

func TestAssembleM22759ColorSuffix(t *testing.T) {
	a := NewAssembler(nil)
	row := &entity.NormalizedRow{
		Family:          constants.FamilyM22759HS,
		PartNumber:      "M22759/19-22-2",
		Gauge:           "22",
		TotalConductors: 1,
		MilSpec:         "MIL-DTL-22759/19",
		Fields:          map[string]string{},
		Units:           map[string]entity.UnitPair{},
	}

	rec, ok := a.Record(row)
	require.True(t, ok)
	assert.Equal(t, "Red", rec.Cores[0].InsulationColor)
	assert.Equal(t, "Plated Copper (High-Strength)", rec.Cores[0].ConductorMaterial)
}

func TestAssembleM22759NoColorSuffix(t *testing.T) {
	a := NewAssembler(nil)
	row := &entity.NormalizedRow{
		Family:          constants.FamilyM22759Std,
		PartNumber:      "M22759/16-20-*",
		Gauge:           "20",
		TotalConductors: 1,
		Fields:          map[string]string{},
		Units:           map[string]entity.UnitPair{},
	}

	rec, ok := a.Record(row)
	require.True(t, ok)
	// Wildcard suffix carries no digit; the default applies.
	assert.Equal(t, "White", rec.Cores[0].InsulationColor)
}

func TestAssembleM27500Shielded(t *testing.T) {
	a := NewAssembler(nil)
	row := &entity.NormalizedRow{
		Family:               constants.FamilyM27500,
		PartNumber:           "M27500-22SA2CN06",
		Gauge:                "22",
		PairingConfiguration: "2C",
		TotalConductors:      2,
		TypeCode:             "SA",
		ShieldCode:           "N",
		JacketCode:           "06",
		Fields: map[string]string{
			entity.FieldStranding: "19/34",
		},
		Units: map[string]entity.UnitPair{
			entity.FieldShieldDia: {US: 0.115, Metric: 2.92},
			entity.FieldJacketDia: {US: 0.150, Metric: 3.81},
			entity.FieldWeight:    {US: 8.1, Metric: 0.319},
		},
	}

	rec, ok := a.Record(row)
	require.True(t, ok)

	assert.Equal(t, "m27500-m27500-22sa2cn06", rec.CableID)
	assert.Equal(t, "MIL-DTL-27500 2C 22AWG Cable Type SA", rec.Name)
	assert.Equal(t, constants.CableTypeMultiCore, rec.Type)
	require.Len(t, rec.Cores, 2)
	assert.Equal(t, "Plated Copper (from M22759/7)", rec.Cores[0].ConductorMaterial)

	assert.True(t, rec.HasShield)
	assert.Equal(t, 1, rec.ShieldType)
	assert.Equal(t, constants.M27500ShieldCoveragePct, rec.ShieldCoverage)
	// Shield code N is not in the material table; it renders as a raw code.
	assert.Equal(t, "Code N", rec.ShieldMaterial)
	assert.Equal(t, "PTFE, taped, white", rec.JacketMaterial)

	assert.InDelta(t, 3.81, rec.SpecifiedOuterDiameter, 1e-9)
	assert.InDelta(t, (3.81-2.92)/2, rec.JacketThickness, 1e-9)
	assert.InDelta(t, 0.319, rec.WeightKgKm, 1e-9)
}

func TestAssembleM27500Unshielded(t *testing.T) {
	a := NewAssembler(nil)
	row := &entity.NormalizedRow{
		Family:          constants.FamilyM27500,
		PartNumber:      "M27500-20ZZ3CU00",
		Gauge:           "20",
		TotalConductors: 3,
		TypeCode:        "ZZ",
		ShieldCode:      constants.M27500UnshieldedCode,
		JacketCode:      constants.M27500NoJacketCode,
		Fields:          map[string]string{},
		Units:           map[string]entity.UnitPair{},
	}

	rec, ok := a.Record(row)
	require.True(t, ok)

	assert.False(t, rec.HasShield)
	assert.Zero(t, rec.ShieldType)
	// The dimension tables stamp 90% coverage on every row, even code U.
	assert.Equal(t, constants.M27500ShieldCoveragePct, rec.ShieldCoverage)
	assert.Equal(t, "None", rec.ShieldMaterial)
	assert.Equal(t, "None", rec.JacketMaterial)
	assert.Contains(t, rec.Description, "UNKNOWN")
}
