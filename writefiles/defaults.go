package writefiles

// Default material and failure parameters for automotive steels. The
// writers fall back to these whenever a source or configured record is
// missing a parameter its law requires.

// Structural steel constants used for synthesized materials and as global
// fallbacks for records that never declare them.
const (
	DefaultYoung   = 210000.0
	DefaultPoisson = 0.3
	DefaultDensity = 7800.0
)

// defaultSteelMaterials holds per-law reference parameters.
var defaultSteelMaterials = map[string]map[string]float64{
	"LAW1": {
		"EX":   DefaultYoung,
		"NUXY": DefaultPoisson,
		"DENS": DefaultDensity,
	},
	"LAW2": {
		"EX":   DefaultYoung,
		"NUXY": DefaultPoisson,
		"DENS": DefaultDensity,
		"A":    220.0,
		"B":    450.0,
		"N":    0.36,
		"C":    0.01,
		"EPS0": 1.0,
	},
	"LAW27": {
		"EX":   DefaultYoung,
		"NUXY": DefaultPoisson,
		"DENS": DefaultDensity,
		"SIG0": 250.0,
		"SU":   500.0,
		"EPSU": 0.2,
	},
	"LAW36": {
		"EX":      DefaultYoung,
		"NUXY":    DefaultPoisson,
		"DENS":    DefaultDensity,
		"Fsmooth": 0.0,
		"Fcut":    0.0,
		"Chard":   1.0,
	},
	"LAW44": {
		"EX":   DefaultYoung,
		"NUXY": DefaultPoisson,
		"DENS": DefaultDensity,
		"A":    6500.0,
		"B":    4.0,
		"N":    1.0,
		"C":    0.0,
	},
}

// defaultFailureModels holds reference coefficients for common failure
// models, taken from published impact test data for DP600 sheet.
var defaultFailureModels = map[string]map[string]float64{
	"FAIL/JOHNSON": {
		"D1": 0.54,
		"D2": 3.03,
		"D3": -2.12,
		"D4": 0.002,
		"D5": 0.61,
	},
	"FAIL/BIQUAD": {
		"C1": 0.9,
		"C2": 2.0,
		"C3": 2.0,
	},
	"FAIL/TAB1": {
		"Dcrit": 1.0,
	},
}

// lawParamOrder lists, per law, the plasticity parameters written after
// the elastic line, in card order.
var lawParamOrder = map[string][]string{
	"LAW2":  {"A", "B", "N", "C", "EPS0"},
	"LAW27": {"SIG0", "SU", "EPSU"},
	"LAW36": {"Fsmooth", "Fcut", "Chard"},
	"LAW44": {"A", "B", "N", "C"},
}

// failParamOrder lists coefficient order per failure model card.
var failParamOrder = map[string][]string{
	"FAIL/JOHNSON": {"D1", "D2", "D3", "D4", "D5"},
	"FAIL/BIQUAD":  {"C1", "C2", "C3"},
	"FAIL/TAB1":    {"Dcrit"},
}
