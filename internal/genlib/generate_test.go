package genlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
)

func TestGenerateCoversEverySheetRow(t *testing.T) {
	records := NewGenerator(nil).Generate()

	want := 0
	for _, sheet := range Sheets {
		require.NotEmpty(t, sheet.Wires, "sheet %s has no wires", sheet.Slash)
		want += len(sheet.Wires)
	}
	assert.Len(t, records, want)
	assert.Len(t, Sheets, 33)

	ids := make(map[string]struct{}, len(records))
	for _, r := range records {
		_, dup := ids[r.CableID]
		assert.False(t, dup, "duplicate cable id %s", r.CableID)
		ids[r.CableID] = struct{}{}
	}
}

func TestWireRecordGeometry(t *testing.T) {
	sheet := Sheets[0]
	require.Equal(t, "5", sheet.Slash)
	w := sheet.Wires[0]
	require.Equal(t, "8", w.Gauge)

	rec := wireRecord(sheet, w)

	avg := (6.12 + 6.48) / 2
	wall := (avg - 4.11) / 2
	assert.Equal(t, "M22759/5-8", rec.PartNumber)
	assert.Equal(t, "m22759-5-8", rec.CableID)
	assert.Equal(t, "MIL-SPEC", rec.Manufacturer)
	assert.Equal(t, constants.CableTypeGenericSingle, rec.Type)
	assert.InDelta(t, avg, rec.SpecifiedOuterDiameter, 1e-9)
	assert.InDelta(t, wall, rec.JacketThickness, 1e-9)

	require.Len(t, rec.Cores, 1)
	assert.InDelta(t, 4.11, rec.Cores[0].ConductorDiameter, 1e-9)
	assert.InDelta(t, wall, rec.Cores[0].InsulationThickness, 1e-9)
	assert.Equal(t, "Silver Plated Copper", rec.Cores[0].ConductorMaterial)

	assert.Equal(t, "133-strand Silver Plated Copper hookup wire, Mineral-filled PTFE, 200 C, 600 V", rec.Description)
	assert.InDelta(t, 0.658, rec.MaxResistance, 1e-9)
}

func TestWireRecordLargeGaugeID(t *testing.T) {
	sheet := SheetSpec{Slash: "16", Conductor: "Tin Plated Copper", Insulation: "Extruded ETFE", TempC: 150, Voltage: 600}
	w := WireSpec{Gauge: "2/0", Strands: 1330, StrandGauge: 30, ConductorDia: 11.7, InsulationMin: 13.7, InsulationMax: 14.0, Resistance: 0.091}

	rec := wireRecord(sheet, w)

	// The slash in large-gauge sizes is flattened out of the identifier but
	// kept in the part number.
	assert.Equal(t, "M22759/16-2/0", rec.PartNumber)
	assert.Equal(t, "m22759-16-2-0", rec.CableID)
}
