package entity

import "github.com/DangerDawgAU/cable-datasheet-extractor/constants"

// CoreRecord describes one insulated conductor within a cable. Created once
// per conductor position at assembly time; immutable afterward. All
// dimensions are millimeters.
type CoreRecord struct {
	CoreID              string  `json:"CoreId"`
	ConductorDiameter   float64 `json:"ConductorDiameter"`
	InsulationThickness float64 `json:"InsulationThickness"`
	InsulationColor     string  `json:"InsulationColor"`
	Gauge               string  `json:"Gauge"`
	ConductorMaterial   string  `json:"ConductorMaterial"`
}

// OuterDiameter is the core's outer diameter: conductor plus two insulation
// walls.
func (c CoreRecord) OuterDiameter() float64 {
	return c.ConductorDiameter + 2*c.InsulationThickness
}

// CableRecord is the canonical cable construction record. Built once by the
// assembler from a normalized row plus synthesized geometry, never mutated
// afterward. Geometry fields are millimeters.
type CableRecord struct {
	CableID      string              `json:"CableId"`
	PartNumber   string              `json:"PartNumber"`
	Manufacturer string              `json:"Manufacturer"`
	Name         string              `json:"Name"`
	Type         constants.CableType `json:"Type"`
	Cores        []CoreRecord        `json:"Cores"`

	JacketThickness float64 `json:"JacketThickness"`
	JacketColor     string  `json:"JacketColor"`

	HasShield       bool    `json:"HasShield"`
	ShieldType      int     `json:"ShieldType"`
	ShieldThickness float64 `json:"ShieldThickness"`
	ShieldCoverage  int     `json:"ShieldCoverage"`

	HasDrainWire      bool    `json:"HasDrainWire"`
	DrainWireDiameter float64 `json:"DrainWireDiameter"`

	IsFiller               bool    `json:"IsFiller"`
	SpecifiedOuterDiameter float64 `json:"SpecifiedOuterDiameter"`
	Description            string  `json:"Description"`

	// Extension fields emitted by some family assemblers. The library
	// merger's allow-list strips them from the persisted library.
	JacketMaterial string  `json:"JacketMaterial,omitempty"`
	ShieldMaterial string  `json:"ShieldMaterial,omitempty"`
	WeightKgKm     float64 `json:"Weight (kg/km),omitempty"`
	MaxResistance  float64 `json:"MaxResistance (Ohm/km),omitempty"`
	BreakStrength  float64 `json:"BreakStrength (kg),omitempty"`
}

// CableLibrary is the persisted collection of cable records, keyed by unique
// CableId.
type CableLibrary struct {
	Cables []map[string]any `json:"Cables"`
}
