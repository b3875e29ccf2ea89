package library

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordListSchema validates a source record list before it enters a merge.
// Sources are JSON arrays of cable objects; only the identifying fields are
// required so that partially populated family outputs still merge.
const recordListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["CableId", "PartNumber", "Type", "Cores"],
		"properties": {
			"CableId":                {"type": "string", "minLength": 1},
			"PartNumber":             {"type": "string"},
			"Manufacturer":           {"type": "string"},
			"Name":                   {"type": "string"},
			"Type":                   {"type": "integer"},
			"JacketThickness":        {"type": "number"},
			"JacketColor":            {"type": "string"},
			"HasShield":              {"type": "boolean"},
			"ShieldType":             {"type": "integer"},
			"ShieldThickness":        {"type": "number"},
			"ShieldCoverage":         {"type": "number"},
			"HasDrainWire":           {"type": "boolean"},
			"DrainWireDiameter":      {"type": "number"},
			"IsFiller":               {"type": "boolean"},
			"SpecifiedOuterDiameter": {"type": "number"},
			"Description":            {"type": "string"},
			"Cores": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["CoreId"],
					"properties": {
						"CoreId":              {"type": "string"},
						"ConductorDiameter":   {"type": "number"},
						"InsulationThickness": {"type": "number"},
						"InsulationColor":     {"type": "string"},
						"Gauge":               {"type": "string"},
						"ConductorMaterial":   {"type": "string"}
					}
				}
			}
		}
	}
}`

var compiledRecordListSchema = mustCompile(recordListSchema)

func mustCompile(src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("records.json", bytes.NewReader([]byte(src))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("records.json")
}

// ValidateRecordList validates raw JSON against the record-list schema and
// returns the decoded cable maps. A malformed source is reported to the
// caller, which skips it rather than aborting the merge.
func ValidateRecordList(data []byte) ([]map[string]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}
	if err := compiledRecordListSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("records do not match schema: %w", err)
	}

	var cables []map[string]any
	if err := json.Unmarshal(data, &cables); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}
	return cables, nil
}
