package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

func TestNormalizeEthernetPairing(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyLappEthernet,
		Fields: []string{"2170456", "22 AWG/2pr", "7 wire", "PUR", "Green", "CMX", "yes", "no", "0.262", "6.6", "32", "100 12345"},
	}

	row := Row(raw)
	assert.Equal(t, "2170456", row.PartNumber)
	assert.Equal(t, "22", row.Gauge)
	assert.Equal(t, "2 pr", row.PairingConfiguration)
	assert.Equal(t, 4, row.TotalConductors)
	assert.Equal(t, "6.6", row.Field(entity.FieldNominalODMM))
}

func TestNormalizeConductorCountNotation(t *testing.T) {
	// "4C/G" style: four conductors including ground, no pairing.
	raw := entity.RawRow{
		Family: constants.FamilyLappProfibus,
		Fields: []string{"2170333", "PUR", "4C/G 18 AWG", "UL", "0.315", "8.0", "15", "44", "100 12345"},
	}

	row := Row(raw)
	assert.Equal(t, "18", row.Gauge)
	assert.Equal(t, "4C", row.PairingConfiguration)
	assert.Equal(t, 4, row.TotalConductors)
}

func TestPairingNotationWinsOverConductorCount(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyLappProfibus,
		Fields: []string{"2170334", "PVC", "2C 22 AWG/pr or 1 pr", "UL", "0.315", "8.0", "15", "44", "100 12345"},
	}

	row := Row(raw)
	assert.Equal(t, "1 pr", row.PairingConfiguration)
	assert.Equal(t, 2, row.TotalConductors)
}

func TestNormalizeDeviceNetFixedLayout(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyLappDeviceNet,
		Fields: []string{"2170345", "Thick", "PVC", "2x18AWG + 2x15AWG", "0.480", "12.2", "50", "80", "100 12345"},
	}

	row := Row(raw)
	assert.Equal(t, "2P + 1T", row.PairingConfiguration)
	assert.Equal(t, 5, row.TotalConductors)
	assert.Equal(t, "18", row.Gauge)
}

func TestNormalizeOlflexCount(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyLappOlflex,
		Fields: []string{"601404", "4", "0.295", "7.5", "21", "39", "S 1213"},
	}

	row := Row(raw)
	assert.Equal(t, 4, row.TotalConductors)
	assert.Equal(t, "4C", row.PairingConfiguration)
	assert.Empty(t, row.Gauge)
}

func TestNormalizeOlflexSingleConductor(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyLappOlflex,
		Fields: []string{"601101", "1", "0.201", "5.1", "10", "18", "S 1209"},
	}

	row := Row(raw)
	assert.Equal(t, 1, row.TotalConductors)
	assert.Empty(t, row.PairingConfiguration)
}

func TestNormalizeOlflexKCMILColumn(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyLappOlflex,
		Fields: []string{"601990", "KCMIL", "1.100", "27.9", "210", "390", "S 2250"},
	}

	row := Row(raw)
	// "KCMIL" alone is not a conductor count; the row stays indeterminate.
	assert.Zero(t, row.TotalConductors)
}

func TestNormalizeM22759(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyM22759Std,
		// Ten captures, as the matcher emits them: the schema has nine slots,
		// so the trailing Thermax capture is dropped on zip.
		Fields: []string{
			"M22759/16-20-9", "20", "19/32",
			"0.0320 (0.813)", "0.0540 (1.372)", "0.0590 (1.499)",
			"4.6 (6.8)", "9.88 (32.4)", "0.0015 (0.038)", "2219-20-9",
		},
	}

	row := Row(raw)
	assert.Equal(t, "20", row.Gauge)
	assert.Equal(t, 1, row.TotalConductors)
	assert.Equal(t, "1C", row.PairingConfiguration)
	assert.Equal(t, "MIL-DTL-22759/16", row.MilSpec)

	assert.InDelta(t, 0.813, row.Unit(entity.FieldCondDiameter).Metric, 1e-9)
	assert.InDelta(t, 1.499, row.Unit(entity.FieldInsulMax).Metric, 1e-9)
	// Break strength is absent from standard-sheet rows; the parsed map
	// still carries the zero pair.
	assert.Equal(t, entity.ZeroUnitPair, row.Unit(entity.FieldBreakStrength))
}

func TestNormalizeM27500(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyM27500,
		Fields: []string{"22", "19/34", "0.115 (2.92)", "0.150 (3.81)", "8.1", "2", "SA"},
	}

	row := Row(raw)
	assert.Equal(t, 2, row.TotalConductors)
	assert.Equal(t, "2C", row.PairingConfiguration)
	assert.Equal(t, "SA", row.TypeCode)
	assert.Equal(t, "N", row.ShieldCode)
	assert.Equal(t, "06", row.JacketCode)
	assert.Equal(t, "M27500-22SA2CN06", row.PartNumber)

	assert.InDelta(t, 3.81, row.Unit(entity.FieldJacketDia).Metric, 1e-9)
	// Bare weight converts with the 25.4 divisor for this family.
	assert.InDelta(t, 8.1/25.4, row.Unit(entity.FieldWeight).Metric, 1e-9)
}

func TestNormalizeM27500UnknownType(t *testing.T) {
	raw := entity.RawRow{
		Family: constants.FamilyM27500,
		Fields: []string{"20", "19/32", "0.130 (3.30)", "0.165 (4.19)", "10.5", "3", "ZZ"},
	}

	row := Row(raw)
	assert.Equal(t, constants.M27500UnshieldedCode, row.ShieldCode)
	assert.Equal(t, constants.M27500NoJacketCode, row.JacketCode)
	assert.Equal(t, "M27500-20ZZ3CU00", row.PartNumber)
}

func TestM27500GaugeCode(t *testing.T) {
	assert.Equal(t, "02", m27500GaugeCode("2"))
	assert.Equal(t, "22", m27500GaugeCode("22"))
	assert.Equal(t, "10", m27500GaugeCode("1/0"))
	assert.Equal(t, "20", m27500GaugeCode("2/0"))
	assert.Equal(t, "XX", m27500GaugeCode("odd"))
}

func TestUnknownFamilyYieldsIndeterminateRow(t *testing.T) {
	row := Row(entity.RawRow{Family: constants.Family("bogus"), Fields: []string{"x"}})
	require.NotNil(t, row)
	assert.Zero(t, row.TotalConductors)
}
