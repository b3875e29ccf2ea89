// Package genlib generates the M22759 hookup-wire library from the
// MIL-DTL-22759 slash-sheet dimension tables, covering the sheets the
// datasheet extractor never sees as PDFs.
package genlib

// WireSpec is one gauge row of a slash sheet. Diameters are millimeters,
// resistance is ohms per kilometer at 20 degrees C.
type WireSpec struct {
	Gauge         string
	Strands       int
	StrandGauge   int
	ConductorDia  float64
	InsulationMin float64
	InsulationMax float64
	Resistance    float64
}

// SheetSpec is one MIL-DTL-22759 slash sheet.
type SheetSpec struct {
	Slash      string
	Conductor  string
	Insulation string
	TempC      int
	Voltage    int
	Wires      []WireSpec
}

// Sheets lists every supported slash sheet in specification order.
var Sheets = []SheetSpec{
	{
		Slash: "5", Conductor: "Silver Plated Copper", Insulation: "Mineral-filled PTFE", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"8", 133, 29, 4.11, 6.12, 6.48, 0.658},
			{"10", 37, 26, 2.74, 4.37, 4.73, 1.19},
			{"12", 19, 25, 2.18, 3.89, 4.24, 1.81},
			{"14", 19, 27, 1.70, 3.45, 3.81, 2.88},
			{"16", 19, 29, 1.35, 3.05, 3.30, 4.52},
			{"18", 19, 30, 1.19, 2.67, 2.92, 5.79},
			{"20", 19, 32, 0.97, 2.29, 2.54, 9.19},
			{"22", 19, 34, 0.76, 2.03, 2.29, 15.1},
			{"24", 19, 36, 0.61, 1.78, 2.03, 24.3},
		},
	},
	{
		Slash: "6", Conductor: "Nickel Plated Copper", Insulation: "Mineral-filled PTFE", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"8", 133, 29, 4.14, 6.12, 6.48, 0.694},
			{"10", 37, 26, 2.77, 4.37, 4.73, 1.24},
			{"12", 19, 25, 2.18, 3.89, 4.24, 1.89},
			{"14", 19, 27, 1.70, 3.45, 3.81, 3.00},
			{"16", 19, 29, 1.35, 3.05, 3.30, 4.76},
			{"18", 19, 30, 1.19, 2.67, 2.92, 6.10},
			{"20", 19, 32, 0.97, 2.29, 2.54, 9.77},
			{"22", 19, 34, 0.76, 2.03, 2.29, 16.0},
			{"24", 19, 36, 0.61, 1.78, 2.03, 25.9},
		},
	},
	{
		Slash: "7", Conductor: "Silver Plated Copper", Insulation: "Mineral-filled PTFE (light weight)", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"8", 133, 29, 4.11, 5.46, 5.72, 0.658},
			{"10", 37, 26, 2.74, 3.91, 4.11, 1.19},
			{"12", 19, 25, 2.18, 3.33, 3.48, 1.81},
			{"14", 19, 27, 1.70, 2.84, 3.00, 2.88},
			{"16", 19, 29, 1.35, 2.51, 2.67, 4.52},
			{"18", 19, 30, 1.19, 2.29, 2.39, 5.79},
			{"20", 19, 32, 0.97, 2.03, 2.13, 9.19},
			{"22", 19, 34, 0.76, 1.80, 1.91, 15.1},
			{"24", 19, 36, 0.61, 1.52, 1.63, 24.3},
		},
	},
	{
		Slash: "8", Conductor: "Nickel Plated Copper", Insulation: "Mineral-filled PTFE (light weight)", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"8", 133, 29, 4.14, 5.46, 5.72, 0.694},
			{"10", 37, 26, 2.77, 3.91, 4.11, 1.24},
			{"12", 19, 25, 2.18, 3.33, 3.48, 1.89},
			{"14", 19, 27, 1.70, 2.84, 3.00, 3.00},
			{"16", 19, 29, 1.35, 2.51, 2.67, 4.76},
			{"18", 19, 30, 1.19, 2.29, 2.39, 6.10},
			{"20", 19, 32, 0.97, 2.03, 2.13, 9.77},
			{"22", 19, 34, 0.76, 1.80, 1.91, 16.0},
			{"24", 19, 36, 0.61, 1.52, 1.63, 25.9},
		},
	},
	{
		Slash: "9", Conductor: "Silver Plated Copper", Insulation: "Extruded PTFE", TempC: 200, Voltage: 1000,
		Wires: []WireSpec{
			{"8", 133, 29, 4.11, 5.13, 5.38, 0.658},
			{"10", 37, 26, 2.74, 3.48, 3.68, 1.19},
			{"12", 19, 25, 2.18, 2.95, 3.15, 1.81},
			{"14", 19, 27, 1.70, 2.46, 2.62, 2.88},
			{"16", 19, 29, 1.35, 2.11, 2.21, 4.52},
			{"18", 19, 30, 1.19, 1.93, 2.03, 5.79},
			{"20", 19, 32, 0.97, 1.68, 1.78, 9.19},
			{"22", 19, 34, 0.76, 1.47, 1.57, 15.1},
			{"24", 19, 36, 0.61, 1.30, 1.40, 24.3},
			{"26", 19, 38, 0.48, 1.17, 1.27, 38.4},
			{"28", 7, 36, 0.38, 1.04, 1.14, 63.8},
		},
	},
	{
		Slash: "10", Conductor: "Nickel Plated Copper", Insulation: "Extruded PTFE", TempC: 260, Voltage: 1000,
		Wires: []WireSpec{
			{"8", 133, 29, 4.14, 5.13, 5.38, 0.694},
			{"10", 37, 26, 2.77, 3.48, 3.68, 1.24},
			{"12", 19, 25, 2.18, 2.95, 3.15, 1.89},
			{"14", 19, 27, 1.70, 2.46, 2.62, 3.00},
			{"16", 19, 29, 1.35, 2.11, 2.21, 4.76},
			{"18", 19, 30, 1.19, 1.93, 2.03, 6.10},
			{"20", 19, 32, 0.97, 1.68, 1.78, 9.77},
			{"22", 19, 34, 0.76, 1.47, 1.57, 16.0},
			{"24", 19, 36, 0.61, 1.30, 1.40, 25.9},
			{"26", 19, 38, 0.48, 1.17, 1.27, 42.2},
			{"28", 7, 36, 0.38, 1.04, 1.14, 67.9},
		},
	},
	{
		Slash: "11", Conductor: "Silver Plated Copper", Insulation: "Extruded PTFE (medium weight)", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"8", 133, 29, 4.11, 5.03, 5.23, 0.658},
			{"10", 37, 26, 2.74, 3.43, 3.63, 1.19},
			{"12", 19, 25, 2.18, 2.74, 2.90, 1.81},
			{"14", 19, 27, 1.70, 2.24, 2.34, 2.88},
			{"16", 19, 29, 1.35, 1.85, 1.96, 4.52},
			{"18", 19, 30, 1.19, 1.68, 1.78, 5.79},
			{"20", 19, 32, 0.97, 1.42, 1.52, 9.19},
			{"22", 19, 34, 0.76, 1.19, 1.30, 15.1},
			{"24", 19, 36, 0.61, 1.04, 1.14, 24.3},
			{"26", 19, 38, 0.48, 0.91, 1.02, 38.4},
			{"28", 7, 36, 0.38, 0.79, 0.89, 63.8},
		},
	},
	{
		Slash: "12", Conductor: "Nickel Plated Copper", Insulation: "Extruded PTFE (medium weight)", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"8", 133, 29, 4.14, 5.08, 5.28, 0.694},
			{"10", 37, 26, 2.77, 3.43, 3.63, 1.24},
			{"12", 19, 25, 2.18, 2.74, 2.90, 1.89},
			{"14", 19, 27, 1.70, 2.24, 2.34, 3.00},
			{"16", 19, 29, 1.35, 1.85, 1.96, 4.76},
			{"18", 19, 30, 1.19, 1.68, 1.78, 6.10},
			{"20", 19, 32, 0.97, 1.42, 1.52, 9.77},
			{"22", 19, 34, 0.76, 1.19, 1.30, 16.0},
			{"24", 19, 36, 0.61, 1.04, 1.14, 25.9},
			{"26", 19, 38, 0.48, 0.914, 1.02, 42.2},
			{"28", 7, 36, 0.38, 0.79, 0.89, 67.9},
		},
	},
	{
		Slash: "16", Conductor: "Tin Plated Copper", Insulation: "Extruded ETFE", TempC: 150, Voltage: 600,
		Wires: []WireSpec{
			{"2/0", 1330, 30, 11.7, 13.7, 14.0, 0.091},
			{"1/0", 1045, 30, 10.5, 12.0, 12.3, 0.126},
			{"1", 817, 30, 9.40, 10.8, 11.1, 0.149},
			{"2", 665, 30, 8.38, 9.75, 9.96, 0.183},
			{"4", 133, 25, 6.60, 7.82, 8.03, 0.280},
			{"6", 133, 27, 5.13, 6.27, 6.43, 0.445},
			{"8", 133, 29, 4.11, 4.98, 5.13, 0.701},
			{"10", 37, 26, 2.79, 3.45, 3.61, 1.26},
			{"12", 37, 28, 2.18, 2.82, 2.97, 2.02},
			{"14", 19, 27, 1.70, 2.31, 2.41, 3.06},
			{"16", 19, 29, 1.35, 1.96, 2.06, 4.81},
			{"18", 19, 30, 1.22, 1.75, 1.85, 6.23},
			{"20", 19, 32, 0.97, 1.47, 1.57, 9.88},
			{"22", 19, 34, 0.76, 1.27, 1.37, 16.2},
			{"24", 19, 36, 0.61, 1.09, 1.19, 26.2},
		},
	},
	{
		Slash: "17", Conductor: "Silver Plated High-Strength Copper Alloy", Insulation: "Extruded ETFE", TempC: 150, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.97, 1.47, 1.57, 10.7},
			{"22", 19, 34, 0.76, 1.27, 1.37, 17.5},
			{"24", 19, 36, 0.61, 1.09, 1.19, 28.4},
			{"26", 19, 38, 0.48, 0.97, 1.07, 44.8},
		},
	},
	{
		Slash: "18", Conductor: "Tin Plated Copper", Insulation: "Extruded ETFE (light weight)", TempC: 150, Voltage: 600,
		Wires: []WireSpec{
			{"10", 37, 26, 2.79, 3.33, 3.48, 1.26},
			{"12", 37, 28, 2.18, 2.64, 2.80, 2.02},
			{"14", 19, 27, 1.70, 2.11, 2.21, 3.06},
			{"16", 19, 29, 1.35, 1.73, 1.83, 4.81},
			{"18", 19, 30, 1.19, 1.50, 1.60, 6.23},
			{"20", 19, 32, 0.97, 1.24, 1.35, 9.88},
			{"22", 19, 34, 0.76, 1.04, 1.14, 16.2},
			{"24", 19, 36, 0.61, 0.86, 0.97, 26.2},
			{"26", 19, 38, 0.48, 0.76, 0.86, 41.3},
		},
	},
	{
		Slash: "19", Conductor: "Silver Plated High-Strength Copper Alloy", Insulation: "Extruded ETFE (light weight)", TempC: 150, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.97, 1.24, 1.35, 10.7},
			{"22", 19, 34, 0.76, 1.04, 1.14, 17.5},
			{"24", 19, 36, 0.61, 0.86, 0.97, 28.4},
			{"26", 19, 38, 0.48, 0.76, 0.86, 44.8},
		},
	},
	{
		Slash: "20", Conductor: "Silver Plated High-Strength Copper Alloy", Insulation: "Extruded PTFE", TempC: 200, Voltage: 1000,
		Wires: []WireSpec{
			{"20", 19, 32, 0.97, 1.68, 1.78, 10.7},
			{"22", 19, 34, 0.76, 1.47, 1.57, 17.5},
			{"24", 19, 36, 0.61, 1.30, 1.40, 28.4},
			{"26", 19, 38, 0.48, 1.17, 1.27, 44.8},
			{"28", 7, 36, 0.38, 1.04, 1.14, 74.4},
		},
	},
	{
		Slash: "21", Conductor: "Nickel Plated High-Strength Copper Alloy", Insulation: "Extruded PTFE", TempC: 260, Voltage: 1000,
		Wires: []WireSpec{
			{"20", 19, 32, 0.97, 1.68, 1.78, 11.4},
			{"22", 19, 34, 0.76, 1.47, 1.57, 18.6},
			{"24", 19, 36, 0.61, 1.30, 1.40, 30.1},
			{"26", 19, 38, 0.48, 1.17, 1.27, 49.4},
			{"28", 7, 36, 0.38, 1.04, 1.14, 79.0},
		},
	},
	{
		Slash: "22", Conductor: "Silver Plated High-Strength Copper Alloy", Insulation: "Extruded PTFE (light weight)", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.97, 1.42, 1.52, 10.7},
			{"22", 19, 34, 0.76, 1.19, 1.30, 17.5},
			{"24", 19, 36, 0.61, 1.04, 1.14, 28.4},
			{"26", 19, 38, 0.48, 0.91, 1.02, 44.8},
			{"28", 7, 36, 0.38, 0.79, 0.89, 74.4},
		},
	},
	{
		Slash: "23", Conductor: "Nickel Plated High-Strength Copper Alloy", Insulation: "Extruded PTFE (light weight)", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.97, 1.42, 1.52, 11.4},
			{"22", 19, 34, 0.76, 1.19, 1.30, 18.6},
			{"24", 19, 36, 0.61, 1.04, 1.14, 30.1},
			{"26", 19, 38, 0.48, 0.91, 1.02, 49.4},
			{"28", 7, 36, 0.38, 0.79, 0.89, 79.0},
		},
	},
	{
		Slash: "28", Conductor: "Silver Plated Copper", Insulation: "PTFE with polyimide hardcoat", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"14", 19, 27, 1.70, 2.24, 2.39, 2.88},
			{"16", 19, 29, 1.35, 1.85, 2.01, 4.52},
			{"18", 19, 30, 1.19, 1.70, 1.80, 5.79},
			{"20", 19, 32, 0.97, 1.45, 1.55, 9.19},
			{"22", 19, 34, 0.76, 1.22, 1.32, 15.1},
			{"24", 19, 36, 0.61, 1.07, 1.17, 24.3},
			{"26", 19, 38, 0.48, 0.94, 1.04, 38.4},
			{"28", 7, 36, 0.38, 0.81, 0.91, 63.8},
		},
	},
	{
		Slash: "29", Conductor: "Nickel Plated Copper", Insulation: "PTFE with polyimide hardcoat", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"14", 19, 27, 1.70, 2.24, 2.39, 3.00},
			{"16", 19, 29, 1.35, 1.85, 2.01, 4.76},
			{"18", 19, 30, 1.19, 1.70, 1.80, 6.10},
			{"20", 19, 32, 0.97, 1.45, 1.55, 9.77},
			{"22", 19, 34, 0.76, 1.22, 1.32, 16.0},
			{"24", 19, 36, 0.61, 1.07, 1.17, 25.9},
			{"26", 19, 38, 0.48, 0.94, 1.04, 42.2},
			{"28", 7, 36, 0.38, 0.81, 0.91, 67.9},
		},
	},
	{
		Slash: "30", Conductor: "Silver Plated High-Strength Copper Alloy", Insulation: "PTFE with polyimide hardcoat", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.97, 1.45, 1.55, 10.7},
			{"22", 19, 34, 0.76, 1.22, 1.32, 17.5},
			{"24", 19, 36, 0.61, 1.07, 1.17, 28.4},
			{"26", 19, 38, 0.48, 0.94, 1.04, 44.8},
			{"28", 7, 36, 0.38, 0.81, 0.91, 74.4},
		},
	},
	{
		Slash: "31", Conductor: "Nickel Plated High-Strength Copper Alloy", Insulation: "PTFE with polyimide hardcoat", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.97, 1.45, 1.55, 11.4},
			{"22", 19, 34, 0.76, 1.22, 1.32, 18.6},
			{"24", 19, 36, 0.61, 1.07, 1.17, 30.1},
			{"26", 19, 38, 0.48, 0.94, 1.04, 49.4},
			{"28", 7, 36, 0.38, 0.81, 0.91, 79.0},
		},
	},
	{
		Slash: "80", Conductor: "Tin Plated Copper", Insulation: "PTFE/polyimide/PTFE tape (light weight)", TempC: 150, Voltage: 600,
		Wires: []WireSpec{
			{"10", 37, 26, 2.69, 3.02, 3.12, 1.26},
			{"12", 37, 28, 2.12, 2.44, 2.54, 2.02},
			{"14", 19, 27, 1.64, 1.93, 2.03, 3.06},
			{"16", 19, 29, 1.31, 1.60, 1.70, 4.81},
			{"18", 19, 30, 1.16, 1.42, 1.52, 6.23},
			{"20", 19, 32, 0.93, 1.22, 1.30, 9.88},
			{"22", 19, 34, 0.72, 1.02, 1.09, 16.2},
			{"24", 19, 36, 0.57, 0.86, 0.97, 26.2},
			{"26", 19, 38, 0.44, 0.76, 0.86, 41.3},
		},
	},
	{
		Slash: "81", Conductor: "Silver Plated High-Strength Copper Alloy", Insulation: "PTFE/polyimide/PTFE tape (light weight)", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.93, 1.22, 1.30, 10.7},
			{"22", 19, 34, 0.72, 1.02, 1.09, 17.5},
			{"24", 19, 36, 0.57, 0.86, 0.97, 28.4},
			{"26", 19, 38, 0.44, 0.76, 0.86, 56.4},
		},
	},
	{
		Slash: "82", Conductor: "Nickel Plated High-Strength Copper Alloy", Insulation: "PTFE/polyimide/PTFE tape (light weight)", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.93, 1.22, 1.30, 11.4},
			{"22", 19, 34, 0.72, 1.02, 1.09, 18.6},
			{"24", 19, 36, 0.57, 0.86, 0.97, 30.1},
			{"26", 19, 38, 0.44, 0.72, 0.86, 58.4},
		},
	},
	{
		Slash: "83", Conductor: "Silver Plated Copper", Insulation: "PTFE/polyimide/PTFE tape with polyamide braid", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"4/0", 2109, 30, 14.35, 15.62, 16.64, 0.054},
			{"3/0", 1665, 30, 12.70, 14.07, 14.83, 0.068},
			{"2/0", 1330, 30, 11.18, 12.65, 13.41, 0.085},
			{"0", 1045, 30, 10.03, 11.23, 11.73, 0.108},
			{"1", 817, 30, 9.30, 10.16, 10.67, 0.139},
			{"2", 665, 30, 8.13, 9.14, 9.65, 0.170},
		},
	},
	{
		Slash: "84", Conductor: "Nickel Plated Copper", Insulation: "PTFE/polyimide/PTFE tape with polyamide braid", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"4/0", 2109, 30, 14.35, 15.62, 16.64, 0.056},
			{"3/0", 1665, 30, 12.70, 14.07, 14.83, 0.071},
			{"2/0", 1330, 30, 11.18, 12.65, 13.41, 0.089},
			{"0", 1045, 30, 10.03, 11.23, 11.73, 0.113},
			{"1", 817, 30, 9.30, 10.16, 10.67, 0.144},
			{"2", 665, 30, 8.13, 9.14, 9.65, 0.177},
		},
	},
	{
		Slash: "85", Conductor: "Tin Plated Copper", Insulation: "PTFE/polyimide/PTFE tape with polyamide braid", TempC: 150, Voltage: 600,
		Wires: []WireSpec{
			{"4/0", 2109, 30, 14.35, 15.62, 16.64, 0.056},
			{"3/0", 1665, 30, 12.70, 14.07, 14.83, 0.071},
			{"2/0", 1330, 30, 11.18, 12.65, 13.41, 0.091},
			{"0", 1045, 30, 10.03, 11.23, 11.73, 0.116},
			{"1", 817, 30, 9.30, 10.16, 10.67, 0.149},
			{"2", 665, 30, 8.13, 9.14, 9.65, 0.183},
		},
	},
	{
		Slash: "86", Conductor: "Silver Plated Copper", Insulation: "PTFE/polyimide tape", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"4/0", 2109, 30, 14.35, 14.99, 16.00, 0.054},
			{"3/0", 1665, 30, 12.70, 13.46, 14.22, 0.068},
			{"2/0", 1330, 30, 11.18, 12.07, 12.83, 0.085},
			{"0", 1045, 30, 10.03, 10.67, 11.43, 0.108},
			{"1", 817, 30, 9.30, 9.86, 10.36, 0.139},
			{"2", 665, 30, 8.13, 8.74, 9.25, 0.170},
			{"4", 133, 25, 6.35, 7.01, 7.32, 0.264},
			{"6", 133, 27, 5.03, 5.56, 5.82, 0.418},
			{"8", 133, 29, 4.01, 4.57, 4.78, 0.658},
			{"10", 37, 26, 2.69, 3.10, 3.23, 1.19},
			{"12", 37, 28, 2.12, 2.54, 2.67, 1.90},
			{"14", 19, 27, 1.64, 2.06, 2.18, 2.88},
			{"16", 19, 29, 1.31, 1.73, 1.85, 4.52},
			{"18", 19, 30, 1.16, 1.55, 1.65, 5.79},
			{"20", 19, 32, 0.93, 1.30, 1.40, 9.19},
			{"22", 19, 34, 0.72, 1.09, 1.19, 15.1},
			{"24", 19, 36, 0.57, 0.97, 1.07, 24.3},
			{"26", 19, 38, 0.44, 0.84, 0.94, 38.4},
		},
	},
	{
		Slash: "87", Conductor: "Nickel Plated Copper", Insulation: "PTFE/polyimide tape", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"4/0", 2109, 30, 14.35, 14.99, 16.00, 0.056},
			{"3/0", 1665, 30, 12.70, 13.46, 14.22, 0.071},
			{"2/0", 1330, 30, 11.18, 12.07, 12.83, 0.089},
			{"0", 1045, 30, 10.03, 10.67, 11.43, 0.113},
			{"1", 817, 30, 9.30, 9.86, 10.36, 0.144},
			{"2", 665, 30, 8.13, 8.74, 9.25, 0.177},
			{"4", 133, 25, 6.35, 7.01, 7.32, 0.275},
			{"6", 133, 27, 5.03, 5.56, 5.82, 0.436},
			{"8", 133, 29, 4.01, 4.57, 4.78, 0.694},
			{"10", 37, 26, 2.69, 3.10, 3.23, 1.24},
			{"12", 37, 28, 2.12, 2.54, 2.67, 1.98},
			{"14", 19, 27, 1.64, 2.06, 2.18, 3.00},
			{"16", 19, 29, 1.31, 1.73, 1.85, 4.76},
			{"18", 19, 30, 1.16, 1.55, 1.65, 6.10},
			{"20", 19, 32, 0.93, 1.30, 1.40, 9.77},
			{"22", 19, 34, 0.72, 1.09, 1.19, 16.0},
			{"24", 19, 36, 0.57, 0.97, 1.07, 25.9},
			{"26", 19, 38, 0.44, 0.84, 0.94, 42.2},
		},
	},
	{
		Slash: "88", Conductor: "Tin Plated Copper", Insulation: "PTFE/polyimide tape", TempC: 150, Voltage: 600,
		Wires: []WireSpec{
			{"4/0", 2109, 30, 14.35, 14.99, 16.00, 0.056},
			{"3/0", 1665, 30, 12.70, 13.46, 14.22, 0.071},
			{"2/0", 1330, 30, 11.18, 12.07, 12.83, 0.091},
			{"0", 1045, 30, 10.03, 10.67, 11.43, 0.116},
			{"1", 817, 30, 9.30, 9.86, 10.36, 0.149},
			{"2", 665, 30, 8.13, 8.74, 9.25, 0.183},
			{"4", 133, 25, 6.35, 7.01, 7.32, 0.280},
			{"6", 133, 27, 5.03, 5.56, 5.82, 0.445},
			{"8", 133, 29, 4.01, 4.57, 4.78, 0.701},
			{"10", 37, 26, 2.69, 3.10, 3.23, 1.26},
			{"12", 37, 28, 2.12, 2.54, 2.67, 2.02},
			{"14", 19, 27, 1.64, 2.06, 2.18, 3.06},
			{"16", 19, 29, 1.31, 1.73, 1.85, 4.81},
			{"18", 19, 30, 1.16, 1.55, 1.65, 6.23},
			{"20", 19, 32, 0.93, 1.30, 1.40, 9.88},
			{"22", 19, 34, 0.73, 1.09, 1.19, 16.2},
			{"24", 19, 36, 0.57, 0.97, 1.07, 26.2},
			{"26", 19, 38, 0.44, 0.84, 0.94, 41.3},
		},
	},
	{
		Slash: "89", Conductor: "Silver Plated High-Strength Copper Alloy", Insulation: "PTFE/polyimide tape", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.93, 1.30, 1.40, 10.7},
			{"22", 19, 34, 0.72, 1.09, 1.19, 17.5},
			{"24", 19, 36, 0.57, 0.965, 1.07, 28.4},
			{"26", 19, 38, 0.44, 0.84, 0.94, 56.4},
		},
	},
	{
		Slash: "90", Conductor: "Nickel Plated High-Strength Copper Alloy", Insulation: "PTFE/polyimide tape", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"20", 19, 32, 0.93, 1.30, 1.40, 11.4},
			{"22", 19, 34, 0.72, 1.09, 1.19, 18.6},
			{"24", 19, 36, 0.57, 0.965, 1.07, 30.1},
			{"26", 19, 38, 0.44, 0.84, 0.94, 58.4},
		},
	},
	{
		Slash: "91", Conductor: "Silver Plated Copper", Insulation: "PTFE/polyimide/PTFE tape (light weight)", TempC: 200, Voltage: 600,
		Wires: []WireSpec{
			{"10", 37, 26, 2.69, 3.02, 3.12, 1.19},
			{"12", 37, 28, 2.12, 2.44, 2.54, 1.90},
			{"14", 19, 27, 1.64, 1.93, 2.03, 2.88},
			{"16", 19, 29, 1.31, 1.60, 1.70, 4.52},
			{"18", 19, 30, 1.16, 1.42, 1.52, 5.79},
			{"20", 19, 32, 0.93, 1.22, 1.30, 9.19},
			{"22", 19, 34, 0.72, 1.02, 1.09, 15.1},
			{"24", 19, 36, 0.57, 0.86, 0.97, 24.3},
			{"26", 19, 38, 0.44, 0.76, 0.86, 38.4},
		},
	},
	{
		Slash: "92", Conductor: "Nickel Plated Copper", Insulation: "PTFE/polyimide/PTFE tape (light weight)", TempC: 260, Voltage: 600,
		Wires: []WireSpec{
			{"10", 37, 26, 2.69, 3.02, 3.12, 1.24},
			{"12", 37, 28, 2.12, 2.44, 2.54, 1.98},
			{"14", 19, 27, 1.64, 1.93, 2.03, 3.00},
			{"16", 19, 29, 1.31, 1.60, 1.70, 4.76},
			{"18", 19, 30, 1.16, 1.42, 1.52, 6.10},
			{"20", 19, 32, 0.93, 1.22, 1.30, 9.77},
			{"22", 19, 34, 0.72, 1.02, 1.09, 16.0},
			{"24", 19, 36, 0.57, 0.86, 0.97, 25.9},
			{"26", 19, 38, 0.44, 0.76, 0.86, 42.2},
		},
	},
}
