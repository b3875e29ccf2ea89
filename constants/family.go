package constants

// Family identifies the table layout that produced a row. Every downstream
// stage (normalizer, synthesizer, assembler) dispatches on this tag instead
// of comparing style-name strings.
type Family string

// Stable values (store these exact strings in extraction output).
const (
	FamilyLappEthernet  Family = "lapp-ethernet"  // ETHERLINE data cables
	FamilyLappProfibus  Family = "lapp-profibus"  // PROFIBUS / general bus cables
	FamilyLappDeviceNet Family = "lapp-devicenet" // DeviceNet trunk/drop cables
	FamilyLappOlflex    Family = "lapp-olflex"    // ÖLFLEX power & control
	FamilyM22759Std     Family = "m22759-std"     // MIL-DTL-22759 hookup wire
	FamilyM22759HS      Family = "m22759-hs"      // MIL-DTL-22759 high-strength variants
	FamilyM27500        Family = "m27500"         // MIL-DTL-27500 multi-conductor
)

var allFamilies = []Family{
	FamilyLappEthernet,
	FamilyLappProfibus,
	FamilyLappDeviceNet,
	FamilyLappOlflex,
	FamilyM22759Std,
	FamilyM22759HS,
	FamilyM27500,
}

// AllFamilies returns the closed set of known family tags.
func AllFamilies() []Family {
	out := make([]Family, len(allFamilies))
	copy(out, allFamilies)
	return out
}

// DisplayName is the human-readable style name used in record names and
// descriptions.
func (f Family) DisplayName() string {
	switch f {
	case FamilyLappEthernet:
		return "Ethernet/Industrial"
	case FamilyLappProfibus:
		return "Profibus/General"
	case FamilyLappDeviceNet:
		return "DeviceNet"
	case FamilyLappOlflex:
		return "OLFLEX Power & Control"
	case FamilyM22759Std:
		return "M22759 Standard"
	case FamilyM22759HS:
		return "M22759 High-Strength"
	case FamilyM27500:
		return "MIL-DTL-27500"
	}
	return string(f)
}

// IDPrefix is the lowercase prefix composed into CableId values.
func (f Family) IDPrefix() string {
	switch f {
	case FamilyLappEthernet:
		return "ethernet"
	case FamilyLappProfibus:
		return "profibus"
	case FamilyLappDeviceNet:
		return "devicenet"
	case FamilyLappOlflex:
		return "olflex"
	case FamilyM22759Std, FamilyM22759HS:
		return "m22759"
	case FamilyM27500:
		return "m27500"
	}
	return string(f)
}

// Manufacturer returns the manufacturer attributed to records of this family.
func (f Family) Manufacturer() string {
	switch f {
	case FamilyLappEthernet, FamilyLappProfibus, FamilyLappDeviceNet, FamilyLappOlflex:
		return "LAPP"
	case FamilyM22759Std, FamilyM22759HS, FamilyM27500:
		return "Thermax (Implied)"
	}
	return ""
}

// CableType is the canonical record type enum.
type CableType int

const (
	CableTypeGenericSingle CableType = 0 // reserved / generic single core
	CableTypeHookupWire    CableType = 1 // single-core hookup wire
	CableTypeMultiCore     CableType = 2 // multi-core cable
	CableTypeLegacy        CableType = 4 // generic / legacy vendor cable
)
