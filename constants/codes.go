package constants

// MIL-DTL-27500 code dictionaries, transcribed from the specification's
// code tables. Compact alphanumeric codes resolve to descriptive strings;
// unknown codes are rendered as "Code <value>" by the callers rather than
// failing.

// M27500ComponentCodes maps a two-letter component wire code to the MIL spec
// of the basic wire used for each conductor.
var M27500ComponentCodes = map[string]string{
	"SA": "M22759/7", "TA": "M22759/8", "RC": "M22759/11", "RE": "M22759/12",
	"TE": "M22759/16", "TF": "M22759/17", "TG": "M22759/18", "TH": "M22759/19",
	"VA": "M22759/5", "WA": "M22759/6", "LE": "M22759/9", "LH": "M22759/10",
	"TK": "M22759/20", "TL": "M22759/21", "TM": "M22759/22", "TN": "M22759/23",
	"JB": "M22759/28", "JC": "M22759/29", "JD": "M22759/30", "JE": "M22759/31",
	"WB": "M22759/80", "WC": "M22759/81", "WE": "M22759/82", "WG": "M22759/84",
	"WH": "M22759/85", "WJ": "M22759/86", "WK": "M22759/87", "WL": "M22759/88",
	"WM": "M22759/89", "WN": "M22759/90", "WP": "M22759/91", "WR": "M22759/92",
	"JA": "M25038/1", "JF": "M25038/3",
	"MR": "M81381/7", "MS": "M81381/8", "MT": "M81381/9", "MV": "M81381/10",
	"MW": "M81381/11", "MY": "M81381/12", "NA": "M81381/13", "NB": "M81381/14",
	"NE": "M81381/17", "NF": "M81381/18", "NG": "M81381/19", "NH": "M81381/20",
	"NK": "M81381/21", "NL": "M81381/22",
}

// M27500ShieldCodes maps a shield material code to its description.
var M27500ShieldCodes = map[string]string{
	"U": "None", "NY": "Nickel-plated copper (Round)", "SW": "Silver-plated copper (Round)",
	"TV": "Tin-plated copper (Round)", "CR": "Heavy Nickel-plated copper (Round)",
	"FZ": "Stainless steel (Round)", "PL": "Ni-plated high-strength Cu alloy (Round)",
	"MK": "Ag-plated high-strength Cu alloy (Round)", "#": "Ni-plated copper (Flat)",
	"GA": "Ag-plated copper (Flat)", "JD": "Tin-plated copper (Flat)",
	"EX": "Ni-plated high-strength Cu alloy (Flat)", "HB": "Ag-plated high-strength Cu alloy (Flat)",
}

// M27500JacketCodes maps a two-digit jacket code to its material description.
// Codes 50+ are the double-jacket variants of the corresponding single code.
var M27500JacketCodes = map[string]string{
	"00": "None", "50": "None",
	"15": "ETFE, extruded, clear", "65": "ETFE, extruded, clear (Double)",
	"14": "ETFE, extruded, white", "64": "ETFE, extruded, white (Double)",
	"05": "FEP, extruded, clear", "55": "FEP, extruded, clear (Double)",
	"09": "FEP, extruded, white", "59": "FEP, extruded, white (Double)",
	"02": "Nylon, extruded, clear", "52": "Nylon, extruded, clear (Double)",
	"21": "PFA, extruded, clear", "71": "PFA, extruded, clear (Double)",
	"20": "PFA, extruded, white", "70": "PFA, extruded, white (Double)",
	"11": "Natural polyimide / clear FEP tape", "61": "Natural polyimide / clear FEP tape (Double)",
	"12": "Natural polyimide / FEP tape", "62": "Natural polyimide / FEP tape (Double)",
	"06": "PTFE, taped, white", "56": "PTFE, taped, white (Double)",
	"24": "PTFE/Polyimide tape (Outer PTFE tape)", "74": "PTFE/Polyimide tape (Double)",
	"07": "PTFE-coated glass braid", "57": "PTFE-coated glass braid (Double)",
	"01": "PVC, extruded, white", "51": "PVC, extruded, white (Double)",
}

// m27500TypeDefaults maps a type code to its default shield material code
// and jacket code. Shield/jacket material are not printed per row in the
// dimension tables, so they are inferred from the declared type code.
var m27500TypeDefaults = map[string][2]string{
	// Normal / twisted pair / multicore: PTFE jacket 06, nickel shield.
	"SA": {"N", "06"}, "TA": {"N", "06"}, "RC": {"N", "06"}, "RE": {"N", "06"},
	"VA": {"N", "06"}, "WA": {"N", "06"}, "LE": {"N", "06"}, "LH": {"N", "06"},
	// Triaxial / high density: ETFE jacket 14, nickel shield.
	"TE": {"N", "14"}, "TF": {"N", "14"}, "TG": {"N", "14"}, "TH": {"N", "14"},
	"TK": {"N", "14"}, "TL": {"N", "14"}, "TM": {"N", "14"}, "TN": {"N", "14"},
	// Bus / power: PTFE-polyimide jacket 24, nickel shield.
	"WB": {"N", "24"}, "WC": {"N", "24"}, "WE": {"N", "24"},
}

// M27500UnshieldedCode is the shield code meaning "no shield".
const M27500UnshieldedCode = "U"

// M27500NoJacketCode is the jacket code meaning "no jacket".
const M27500NoJacketCode = "00"

// M27500DefaultCodes resolves the default shield and jacket codes for a type
// code. Unknown type codes fall back to unshielded with no jacket.
func M27500DefaultCodes(typeCode string) (shieldCode, jacketCode string) {
	if d, ok := m27500TypeDefaults[typeCode]; ok {
		return d[0], d[1]
	}
	return M27500UnshieldedCode, M27500NoJacketCode
}

// M27500ShieldCoverageCode marks 90% braid coverage; every cable in the
// dimension tables carries it.
const M27500ShieldCoverageCode = "C"

// M27500ShieldCoveragePct is the coverage percentage code C denotes. It is
// stamped on every record from the dimension tables, shielded or not.
const M27500ShieldCoveragePct = 90
