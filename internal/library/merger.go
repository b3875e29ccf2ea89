// Package library combines extracted record lists into the persisted cable
// library: records are filtered to the canonical attribute schema and
// deduplicated by CableId, first occurrence winning.
package library

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// AllowedCableParams is the canonical cable attribute set. Extension fields
// added by family-specific assemblers are dropped on merge.
var AllowedCableParams = map[string]struct{}{
	"CableId": {}, "PartNumber": {}, "Manufacturer": {}, "Name": {}, "Type": {},
	"Cores": {}, "JacketThickness": {}, "JacketColor": {}, "HasShield": {},
	"ShieldType": {}, "ShieldThickness": {}, "ShieldCoverage": {},
	"HasDrainWire": {}, "DrainWireDiameter": {}, "IsFiller": {},
	"SpecifiedOuterDiameter": {}, "Description": {},
}

// AllowedCoreParams is the canonical core attribute set.
var AllowedCoreParams = map[string]struct{}{
	"CoreId": {}, "ConductorDiameter": {}, "InsulationThickness": {},
	"InsulationColor": {}, "Gauge": {}, "ConductorMaterial": {},
}

// FilterCable reduces a cable entry to the allowed attribute set, filtering
// each core in turn.
func FilterCable(cable map[string]any) map[string]any {
	filtered := make(map[string]any, len(AllowedCableParams))
	for key := range AllowedCableParams {
		v, ok := cable[key]
		if !ok {
			continue
		}
		if key != "Cores" {
			filtered[key] = v
			continue
		}
		cores, ok := v.([]any)
		if !ok {
			continue
		}
		filteredCores := make([]any, 0, len(cores))
		for _, c := range cores {
			core, ok := c.(map[string]any)
			if !ok {
				continue
			}
			fc := make(map[string]any, len(AllowedCoreParams))
			for k, cv := range core {
				if _, allowed := AllowedCoreParams[k]; allowed {
					fc[k] = cv
				}
			}
			filteredCores = append(filteredCores, fc)
		}
		filtered["Cores"] = filteredCores
	}
	return filtered
}

// Merger accumulates records across sources. Not safe for concurrent use;
// one merger per merge run.
type Merger struct {
	logger     *slog.Logger
	seen       map[string]struct{}
	cables     []map[string]any
	duplicates int
}

func NewMerger(logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{logger: logger, seen: map[string]struct{}{}}
}

// Add merges one source's record list in order. Records without a CableId
// and later occurrences of an already-seen CableId are dropped; duplicates
// are counted and reported, never merged field by field.
func (m *Merger) Add(cables []map[string]any) {
	for _, cable := range cables {
		id, _ := cable["CableId"].(string)
		if id == "" {
			m.logger.Warn("merge.skip", "reason", "missing CableId")
			continue
		}
		if _, dup := m.seen[id]; dup {
			m.duplicates++
			m.logger.Info("merge.duplicate", "cable_id", id)
			continue
		}
		m.seen[id] = struct{}{}
		m.cables = append(m.cables, FilterCable(cable))
	}
}

// AddRecords merges assembled records through the same filter path as
// JSON-loaded ones.
func (m *Merger) AddRecords(records []entity.CableRecord) error {
	maps, err := RecordsToMaps(records)
	if err != nil {
		return err
	}
	m.Add(maps)
	return nil
}

// Library returns the merged collection wrapper.
func (m *Merger) Library() entity.CableLibrary {
	return entity.CableLibrary{Cables: m.cables}
}

// Len returns the number of unique merged cables.
func (m *Merger) Len() int { return len(m.cables) }

// Duplicates returns the count of dropped duplicate identifiers.
func (m *Merger) Duplicates() int { return m.duplicates }

// RecordsToMaps round-trips records through JSON into the generic map form
// the merger operates on.
func RecordsToMaps(records []entity.CableRecord) ([]map[string]any, error) {
	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	var maps []map[string]any
	if err := json.Unmarshal(b, &maps); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}
	return maps, nil
}
