package constants

// Insulation color sequences. Core colors are assigned by cycling through
// one of these palettes in core-position order.

// FourPairColors holds the paired-cable palette (TIA/EIA 568-B), cycled as
// color pairs for rows with pairing notation and an even conductor count.
var FourPairColors = [][2]string{
	{"Blue", "White/Blue"},
	{"Orange", "White/Orange"},
	{"Green", "White/Green"},
	{"Brown", "White/Brown"},
}

// MultiConductorColors holds the sequential palette (DIN/VDE 0293) used for
// power/control cables and any row without pairing notation.
var MultiConductorColors = []string{
	"Black", "White", "Red", "Green", "Yellow", "Brown", "Blue", "Gray",
	"Pink", "Violet", "Orange", "Turquoise", "Black/White", "Red/White",
	"Blue/White", "Black/Red", "White/Red", "Green/Red",
}

// PairedPalette flattens FourPairColors into a single cycling sequence.
func PairedPalette() []string {
	out := make([]string, 0, len(FourPairColors)*2)
	for _, p := range FourPairColors {
		out = append(out, p[0], p[1])
	}
	return out
}

// MilStd104Colors maps a MIL-STD-104 color digit to its base color name.
// Used to resolve the trailing color-code suffix on M22759 part numbers.
var MilStd104Colors = map[byte]string{
	'0': "Black", '1': "Brown", '2': "Red", '3': "Orange", '4': "Yellow",
	'5': "Green", '6': "Blue", '7': "Violet", '8': "Gray", '9': "White",
}

// MilStd104Color resolves the first digit of a color-code suffix, defaulting
// to White when the digit is unknown.
func MilStd104Color(digit byte) string {
	if c, ok := MilStd104Colors[digit]; ok {
		return c
	}
	return "White"
}
