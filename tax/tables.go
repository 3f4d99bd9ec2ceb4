package tax

import "math"

var inf = math.Inf(1)

// schedules maps lowercase state names to their bracket schedules. Base
// amounts are written as the cumulative sums they derive from so each entry
// can be audited against the published tier values. Several states tax the
// whole income at the tier rate rather than marginally; for those, Base folds
// the tier's rate times the lower bound so the evaluator stays uniform, and
// the resulting jumps at tier edges are intentional.
var schedules = map[string]Schedule{
	"alabama": {Brackets: []Bracket{
		{Upper: 2500, Rate: 0.02, Base: 0},
		{Upper: 5000, Rate: 0.03, Base: 2500 * 0.03},
		{Upper: 10000, Rate: 0.04, Base: 5000 * 0.04},
		{Upper: 25000, Rate: 0.05, Base: 10000 * 0.05},
		{Upper: 50000, Rate: 0.06, Base: 25000 * 0.06},
		{Upper: inf, Rate: 0.065, Base: 50000 * 0.065},
	}},

	"alaska": {},

	// Above 250k the headline rate drops to 1% and a 3.5% surcharge on the
	// whole income stacks on top.
	"arizona": {
		Brackets: []Bracket{
			{Upper: 27808, Rate: 0.0259, Base: 0},
			{Upper: 55615, Rate: 0.0334, Base: 27808*0.0334 + 720},
			{Upper: 166843, Rate: 0.0417, Base: 55615*0.0417 + 1649},
			{Upper: 250000, Rate: 0.045, Base: 166843*0.045 + 6287},
			{Upper: inf, Rate: 0.01, Base: 250000*0.01 + 10029},
		},
		Surcharge: &Surcharge{Threshold: 250000, Rate: 0.035},
	},

	"arkansas": {Brackets: []Bracket{
		{Upper: 2500, Rate: 0.015, Base: 0},
		{Upper: 5000, Rate: 0.02, Base: 2500 * 0.02},
		{Upper: 10000, Rate: 0.03, Base: 5000 * 0.03},
		{Upper: 25000, Rate: 0.04, Base: 10000 * 0.04},
		{Upper: 50000, Rate: 0.05, Base: 25000 * 0.05},
		{Upper: 100000, Rate: 0.06, Base: 50000 * 0.06},
		{Upper: inf, Rate: 0.069, Base: 100000 * 0.069},
	}},

	"california": {Brackets: []Bracket{
		{Upper: 10412, Rate: 0.01, Base: 0},
		{Upper: 24684, Rate: 0.02, Base: 104.12},
		{Upper: 38959, Rate: 0.04, Base: 389.56},
		{Upper: 54081, Rate: 0.06, Base: 960.56},
		{Upper: 68350, Rate: 0.08, Base: 1867.88},
		{Upper: 349137, Rate: 0.093, Base: 3009.40},
		{Upper: 418961, Rate: 0.103, Base: 29122.59},
		{Upper: 698271, Rate: 0.113, Base: 36314.46},
		{Upper: inf, Rate: 0.123, Base: 67876.49},
	}},

	"colorado": {Brackets: []Bracket{
		{Upper: inf, Rate: 0.045, Base: 0},
	}},

	"connecticut": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.03, Base: 0},
		{Upper: 50000, Rate: 0.05, Base: 300},
		{Upper: 100000, Rate: 0.055, Base: 2300},
		{Upper: 200000, Rate: 0.06, Base: 5050},
		{Upper: 250000, Rate: 0.065, Base: 11050},
		{Upper: 500000, Rate: 0.069, Base: 14300},
		{Upper: inf, Rate: 0.0699, Base: 31550},
	}},

	"delaware": {Brackets: []Bracket{
		{Upper: 2000, Rate: 0, Base: 0},
		{Upper: 5000, Rate: 0.022, Base: 0},
		{Upper: 10000, Rate: 0.039, Base: 3000 * 0.022},
		{Upper: 20000, Rate: 0.048, Base: 480},
		{Upper: 25000, Rate: 0.052, Base: 1040},
		{Upper: 60000, Rate: 0.0555, Base: 1385},
		{Upper: inf, Rate: 0.066, Base: 60000 * 0.066},
	}},

	"florida": {},

	"georgia": {Brackets: []Bracket{
		{Upper: 750, Rate: 0.01, Base: 0},
		{Upper: 2250, Rate: 0.02, Base: 8},
		{Upper: 3750, Rate: 0.03, Base: 38},
		{Upper: 5250, Rate: 0.04, Base: 83},
		{Upper: 7000, Rate: 0.05, Base: 143},
		{Upper: inf, Rate: 0.0575, Base: 230},
	}},

	// The published bases at 14400, 175000, 200000 and 400000 sit below the
	// cumulative amounts at those edges, so tax would drop as income crosses
	// them. Those four carry cumulative bases instead.
	"hawaii": {Brackets: []Bracket{
		{Upper: 2400, Rate: 0.014, Base: 0},
		{Upper: 4800, Rate: 0.032, Base: 34},
		{Upper: 14400, Rate: 0.055, Base: 110},
		{Upper: 19200, Rate: 0.064, Base: 110 + 9600*0.055},
		{Upper: 24000, Rate: 0.068, Base: 1008},
		{Upper: 36000, Rate: 0.076, Base: 1354},
		{Upper: 48000, Rate: 0.079, Base: 2266},
		{Upper: 175000, Rate: 0.0825, Base: 3214},
		{Upper: 200000, Rate: 0.09, Base: 3214 + 127000*0.0825},
		{Upper: 400000, Rate: 0.10, Base: 3214 + 127000*0.0825 + 25000*0.09},
		{Upper: inf, Rate: 0.11, Base: 3214 + 127000*0.0825 + 25000*0.09 + 200000*0.10},
	}},

	"idaho": {Brackets: []Bracket{
		{Upper: inf, Rate: 0.06, Base: 0},
	}},

	"illinois": {Brackets: []Bracket{
		{Upper: inf, Rate: 0.0495, Base: 0},
	}},

	"indiana": {Brackets: []Bracket{
		{Upper: inf, Rate: 0.0323, Base: 0},
	}},

	"iowa": {Brackets: []Bracket{
		{Upper: inf, Rate: 0.06, Base: 0},
	}},

	"kansas": {Brackets: []Bracket{
		{Upper: 3000, Rate: 0.027, Base: 0},
		{Upper: 15000, Rate: 0.035, Base: 3000 * 0.027},
		{Upper: 30000, Rate: 0.045, Base: 3000*0.027 + 12000*0.035},
		{Upper: 60000, Rate: 0.0525, Base: 3000*0.027 + 12000*0.035 + 15000*0.045},
		{Upper: inf, Rate: 0.057, Base: 3000*0.027 + 12000*0.035 + 15000*0.045 + 30000*0.0525},
	}},

	"kentucky": {Brackets: []Bracket{
		{Upper: 2500, Rate: 0.015, Base: 0},
		{Upper: 5000, Rate: 0.02, Base: 2500 * 0.015},
		{Upper: 10000, Rate: 0.03, Base: 2500*0.015 + 2500*0.02},
		{Upper: 25000, Rate: 0.04, Base: 2500*0.015 + 2500*0.02 + 5000*0.03},
		{Upper: inf, Rate: 0.058, Base: 2500*0.015 + 2500*0.02 + 5000*0.03 + 15000*0.04},
	}},

	"louisiana": {Brackets: []Bracket{
		{Upper: 13500, Rate: 0.02, Base: 0},
		{Upper: 27500, Rate: 0.03, Base: 13500 * 0.02},
		{Upper: 55000, Rate: 0.04, Base: 13500*0.02 + 14000*0.03},
		{Upper: 90000, Rate: 0.05, Base: 13500*0.02 + 14000*0.03 + 27500*0.04},
		{Upper: inf, Rate: 0.06, Base: 13500*0.02 + 14000*0.03 + 27500*0.04 + 35000*0.05},
	}},

	"maine": {Brackets: []Bracket{
		{Upper: 12500, Rate: 0.028, Base: 0},
		{Upper: 25000, Rate: 0.039, Base: 12500 * 0.028},
		{Upper: 37500, Rate: 0.048, Base: 12500*0.028 + 12500*0.039},
		{Upper: 50000, Rate: 0.058, Base: 12500*0.028 + 12500*0.039 + 12500*0.048},
		{Upper: 75000, Rate: 0.0675, Base: 12500*0.028 + 12500*0.039 + 12500*0.048 + 12500*0.058},
		{Upper: 100000, Rate: 0.075, Base: 12500*0.028 + 12500*0.039 + 12500*0.048 + 12500*0.058 + 25000*0.0675},
		{Upper: inf, Rate: 0.099, Base: 12500*0.028 + 12500*0.039 + 12500*0.048 + 12500*0.058 + 25000*0.0675 + 25000*0.075},
	}},

	"maryland": {Brackets: []Bracket{
		{Upper: 1000, Rate: 0.02, Base: 0},
		{Upper: 2000, Rate: 0.03, Base: 1000 * 0.02},
		{Upper: 3000, Rate: 0.04, Base: 1000*0.02 + 1000*0.03},
		{Upper: 100000, Rate: 0.0475, Base: 1000*0.02 + 1000*0.03 + 1000*0.04},
		{Upper: 125000, Rate: 0.05, Base: 1000*0.02 + 1000*0.03 + 1000*0.04 + 97000*0.0475},
		{Upper: 150000, Rate: 0.0525, Base: 1000*0.02 + 1000*0.03 + 1000*0.04 + 97000*0.0475 + 25000*0.05},
		{Upper: 250000, Rate: 0.055, Base: 1000*0.02 + 1000*0.03 + 1000*0.04 + 97000*0.0475 + 25000*0.05 + 25000*0.0525},
		{Upper: inf, Rate: 0.0575, Base: 1000*0.02 + 1000*0.03 + 1000*0.04 + 97000*0.0475 + 25000*0.05 + 25000*0.0525 + 100000*0.055},
	}},

	// Same published tiers as Maine.
	"massachusetts": {Brackets: []Bracket{
		{Upper: 12500, Rate: 0.028, Base: 0},
		{Upper: 25000, Rate: 0.039, Base: 12500 * 0.028},
		{Upper: 37500, Rate: 0.048, Base: 12500*0.028 + 12500*0.039},
		{Upper: 50000, Rate: 0.058, Base: 12500*0.028 + 12500*0.039 + 12500*0.048},
		{Upper: 75000, Rate: 0.0675, Base: 12500*0.028 + 12500*0.039 + 12500*0.048 + 12500*0.058},
		{Upper: 100000, Rate: 0.075, Base: 12500*0.028 + 12500*0.039 + 12500*0.048 + 12500*0.058 + 25000*0.0675},
		{Upper: inf, Rate: 0.099, Base: 12500*0.028 + 12500*0.039 + 12500*0.048 + 12500*0.058 + 25000*0.0675 + 25000*0.075},
	}},

	"michigan": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.026, Base: 0},
		{Upper: 25000, Rate: 0.039, Base: 10000 * 0.026},
		{Upper: 50000, Rate: 0.0425, Base: 10000*0.026 + 15000*0.039},
		{Upper: 100000, Rate: 0.0625, Base: 10000*0.026 + 15000*0.039 + 25000*0.0425},
		{Upper: inf, Rate: 0.063, Base: 10000*0.026 + 15000*0.039 + 25000*0.0425 + 50000*0.0625},
	}},

	"minnesota": {Brackets: []Bracket{
		{Upper: 17200, Rate: 0.0535, Base: 0},
		{Upper: 26800, Rate: 0.0785, Base: 17200 * 0.0535},
		{Upper: 44100, Rate: 0.0985, Base: 17200*0.0535 + 9600*0.0785},
		{Upper: 88200, Rate: 0.0987, Base: 17200*0.0535 + 9600*0.0785 + 17300*0.0985},
		{Upper: inf, Rate: 0.1055, Base: 17200*0.0535 + 9600*0.0785 + 17300*0.0985 + 44100*0.0987},
	}},

	"mississippi": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.02, Base: 0},
		{Upper: 25000, Rate: 0.03, Base: 10000 * 0.02},
		{Upper: 50000, Rate: 0.04, Base: 10000*0.02 + 15000*0.03},
		{Upper: 100000, Rate: 0.05, Base: 10000*0.02 + 15000*0.03 + 25000*0.04},
		{Upper: inf, Rate: 0.06, Base: 10000*0.02 + 15000*0.03 + 25000*0.04 + 50000*0.05},
	}},

	"missouri": {Brackets: []Bracket{
		{Upper: 108, Rate: 0, Base: 0},
		{Upper: 1088, Rate: 0.015, Base: 108 * 0.015},
		{Upper: 2176, Rate: 0.02, Base: 16},
		{Upper: 3264, Rate: 0.025, Base: 38},
		{Upper: 4352, Rate: 0.03, Base: 65},
		{Upper: 5440, Rate: 0.035, Base: 98},
		{Upper: 6528, Rate: 0.04, Base: 136},
		{Upper: 7616, Rate: 0.045, Base: 180},
		{Upper: 8704, Rate: 0.05, Base: 229},
		{Upper: inf, Rate: 0.054, Base: 283},
	}},

	// Published as rate times whole income minus a per-tier constant.
	"montana": {Brackets: []Bracket{
		{Upper: 3300, Rate: 0.01, Base: 0},
		{Upper: 5800, Rate: 0.02, Base: 3300*0.02 - 33},
		{Upper: 8900, Rate: 0.03, Base: 5800*0.03 - 91},
		{Upper: 12000, Rate: 0.04, Base: 8900*0.04 - 180},
		{Upper: 15400, Rate: 0.05, Base: 12000*0.05 - 300},
		{Upper: 19800, Rate: 0.06, Base: 15400*0.06 - 454},
		{Upper: inf, Rate: 0.0675, Base: 19800*0.0675 - 603},
	}},

	"nebraska": {Brackets: []Bracket{
		{Upper: 3000, Rate: 0.0247, Base: 0},
		{Upper: 15000, Rate: 0.033, Base: 3000 * 0.0247},
		{Upper: 30000, Rate: 0.0429, Base: 3000*0.0247 + 12000*0.033},
		{Upper: 60000, Rate: 0.0506, Base: 3000*0.0247 + 12000*0.033 + 15000*0.0429},
		{Upper: inf, Rate: 0.0553, Base: 3000*0.0247 + 12000*0.033 + 15000*0.0429 + 30000*0.0506},
	}},

	"nevada": {},

	"new hampshire": {},

	"new jersey": {Brackets: []Bracket{
		{Upper: 20000, Rate: 0.014, Base: 0},
		{Upper: 35000, Rate: 0.0175, Base: 20000 * 0.014},
		{Upper: 40000, Rate: 0.035, Base: 20000*0.014 + 15000*0.0175},
		{Upper: 75000, Rate: 0.05525, Base: 20000*0.014 + 15000*0.0175 + 5000*0.035},
		{Upper: 500000, Rate: 0.0637, Base: 20000*0.014 + 15000*0.0175 + 5000*0.035 + 35000*0.05525},
		{Upper: 1000000, Rate: 0.0897, Base: 20000*0.014 + 15000*0.0175 + 5000*0.035 + 35000*0.05525 + 425000*0.0637},
		{Upper: inf, Rate: 0.1075, Base: 20000*0.014 + 15000*0.0175 + 5000*0.035 + 35000*0.05525 + 425000*0.0637 + 500000*0.0897},
	}},

	// Fixed amounts per tier up to 96k, marginal above.
	"new mexico": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0, Base: 0},
		{Upper: 20000, Rate: 0, Base: 239},
		{Upper: 30000, Rate: 0, Base: 703},
		{Upper: 40000, Rate: 0, Base: 1193},
		{Upper: 50000, Rate: 0, Base: 1683},
		{Upper: 60000, Rate: 0, Base: 2173},
		{Upper: 70000, Rate: 0, Base: 2663},
		{Upper: 80000, Rate: 0, Base: 3153},
		{Upper: 90000, Rate: 0, Base: 3643},
		{Upper: 96000, Rate: 0, Base: 4133},
		{Upper: 210000, Rate: 0.049, Base: 4422},
		{Upper: inf, Rate: 0.059, Base: 10008},
	}},

	"new york": {Brackets: []Bracket{
		{Upper: 8500, Rate: 0.04, Base: 0},
		{Upper: 11700, Rate: 0.045, Base: 340},
		{Upper: 13900, Rate: 0.0525, Base: 484},
		{Upper: 80650, Rate: 0.055, Base: 600},
		{Upper: 215400, Rate: 0.06, Base: 4271},
		{Upper: 1077550, Rate: 0.0685, Base: 12356},
		{Upper: 5000000, Rate: 0.0965, Base: 71413},
		{Upper: 25000000, Rate: 0.103, Base: 449929},
		{Upper: inf, Rate: 0.109, Base: 2509929},
	}},

	"north carolina": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.0399, Base: 0},
		{Upper: 25000, Rate: 0.0525, Base: 10000 * 0.0399},
		{Upper: 50000, Rate: 0.0575, Base: 10000*0.0399 + 15000*0.0525},
		{Upper: 100000, Rate: 0.065, Base: 10000*0.0399 + 15000*0.0525 + 25000*0.0575},
		{Upper: inf, Rate: 0.0675, Base: 10000*0.0399 + 15000*0.0525 + 25000*0.0575 + 50000*0.065},
	}},

	"north dakota": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.029, Base: 0},
		{Upper: 25000, Rate: 0.039, Base: 10000 * 0.029},
		{Upper: 50000, Rate: 0.0425, Base: 10000*0.029 + 15000*0.039},
		{Upper: 100000, Rate: 0.0525, Base: 10000*0.029 + 15000*0.039 + 25000*0.0425},
		{Upper: inf, Rate: 0.055, Base: 10000*0.029 + 15000*0.039 + 25000*0.0425 + 50000*0.0525},
	}},

	"ohio": {Brackets: []Bracket{
		{Upper: 2500, Rate: 0.019, Base: 0},
		{Upper: 5000, Rate: 0.0275, Base: 2500 * 0.019},
		{Upper: 10000, Rate: 0.035, Base: 2500*0.019 + 2500*0.0275},
		{Upper: 25000, Rate: 0.0425, Base: 2500*0.019 + 2500*0.0275 + 5000*0.035},
		{Upper: 50000, Rate: 0.0525, Base: 2500*0.019 + 2500*0.0275 + 5000*0.035 + 15000*0.0425},
		{Upper: 100000, Rate: 0.0575, Base: 2500*0.019 + 2500*0.0275 + 5000*0.035 + 15000*0.0425 + 25000*0.0525},
		{Upper: inf, Rate: 0.065, Base: 2500*0.019 + 2500*0.0275 + 5000*0.035 + 15000*0.0425 + 25000*0.0525 + 50000*0.0575},
	}},

	"oklahoma": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0, Base: 0},
		{Upper: 20000, Rate: 0.0313, Base: 310},
		{Upper: 30000, Rate: 0.0313, Base: 810},
		{Upper: 40000, Rate: 0.0313, Base: 1310},
		{Upper: 50000, Rate: 0.0313, Base: 1810},
		{Upper: 60000, Rate: 0.0313, Base: 2310},
		{Upper: 70000, Rate: 0.0313, Base: 2810},
		{Upper: 80000, Rate: 0.0313, Base: 3310},
		{Upper: 90000, Rate: 0.0313, Base: 3810},
		{Upper: 100000, Rate: 0.0313, Base: 4310},
		{Upper: inf, Rate: 0.0005, Base: 4812},
	}},

	"oregon": {Brackets: []Bracket{
		{Upper: 50000, Rate: 4085.0 / 50000, Base: 0},
		{Upper: 125000, Rate: 0.0875, Base: 4090},
		{Upper: inf, Rate: 0.099, Base: 10652},
	}},

	"pennsylvania": {Brackets: []Bracket{
		{Upper: 3000, Rate: 0.0307, Base: 0},
		{Upper: 7500, Rate: 0.0335, Base: 3000 * 0.0307},
		{Upper: 12500, Rate: 0.0363, Base: 3000*0.0307 + 4500*0.0335},
		{Upper: 25000, Rate: 0.0391, Base: 3000*0.0307 + 4500*0.0335 + 5000*0.0363},
		{Upper: 50000, Rate: 0.0419, Base: 3000*0.0307 + 4500*0.0335 + 5000*0.0363 + 12500*0.0391},
		{Upper: inf, Rate: 0.044, Base: 3000*0.0307 + 4500*0.0335 + 5000*0.0363 + 12500*0.0391 + 25000*0.0419},
	}},

	"rhode island": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.0399, Base: 0},
		{Upper: 25000, Rate: 0.0525, Base: 10000 * 0.0399},
		{Upper: 50000, Rate: 0.0575, Base: 10000*0.0399 + 15000*0.0525},
		{Upper: 100000, Rate: 0.065, Base: 10000*0.0399 + 15000*0.0525 + 25000*0.0575},
		{Upper: inf, Rate: 0.0675, Base: 10000*0.0399 + 15000*0.0525 + 25000*0.0575 + 50000*0.065},
	}},

	"south carolina": {Brackets: []Bracket{
		{Upper: 249, Rate: 0, Base: 0},
		{Upper: 10000, Rate: 0.0249, Base: 0},
		{Upper: 20000, Rate: 0.0614, Base: 249},
		{Upper: 30000, Rate: 0.0693, Base: 868},
		{Upper: 40000, Rate: 0.0693, Base: 1568},
		{Upper: 50000, Rate: 0.0693, Base: 2268},
		{Upper: 60000, Rate: 0.0693, Base: 2968},
		{Upper: 70000, Rate: 0.0693, Base: 3668},
		{Upper: 80000, Rate: 0.0693, Base: 4368},
		{Upper: 90000, Rate: 0.0693, Base: 5068},
		{Upper: 100000, Rate: 0.0693, Base: 5768},
		{Upper: inf, Rate: 0.07, Base: 100000*0.07 - 529},
	}},

	"south dakota": {},

	"tennessee": {},

	"texas": {},

	"utah": {Brackets: []Bracket{
		{Upper: 3000, Rate: 0.015, Base: 0},
		{Upper: 10000, Rate: 0.025, Base: 3000 * 0.015},
		{Upper: 15000, Rate: 0.035, Base: 3000*0.015 + 7000*0.025},
		{Upper: 30000, Rate: 0.045, Base: 3000*0.015 + 7000*0.025 + 5000*0.035},
		{Upper: 60000, Rate: 0.05, Base: 3000*0.015 + 7000*0.025 + 5000*0.035 + 15000*0.045},
		{Upper: inf, Rate: 0.0595, Base: 3000*0.015 + 7000*0.025 + 5000*0.035 + 15000*0.045 + 30000*0.05},
	}},

	"vermont": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.035, Base: 0},
		{Upper: 25000, Rate: 0.0525, Base: 10000 * 0.035},
		{Upper: 50000, Rate: 0.0575, Base: 10000*0.035 + 15000*0.0525},
		{Upper: 100000, Rate: 0.065, Base: 10000*0.035 + 15000*0.0525 + 25000*0.0575},
		{Upper: inf, Rate: 0.0675, Base: 10000*0.035 + 15000*0.0525 + 25000*0.0575 + 50000*0.065},
	}},

	"virginia": {Brackets: []Bracket{
		{Upper: 3000, Rate: 0.02, Base: 0},
		{Upper: 5000, Rate: 0.03, Base: 60},
		{Upper: 17000, Rate: 0.05, Base: 120},
		{Upper: inf, Rate: 0.0575, Base: 720},
	}},

	"washington": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.04, Base: 0},
		{Upper: 40000, Rate: 0.06, Base: 400},
		{Upper: 60000, Rate: 0.065, Base: 2200},
		{Upper: 250000, Rate: 0.085, Base: 3500},
		{Upper: 500000, Rate: 0.0925, Base: 19650},
		{Upper: 1000000, Rate: 0.0975, Base: 42775},
		{Upper: inf, Rate: 0.1075, Base: 91525},
	}},

	"west virginia": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.02, Base: 0},
		{Upper: 25000, Rate: 0.03, Base: 10000 * 0.02},
		{Upper: 50000, Rate: 0.04, Base: 10000*0.02 + 15000*0.03},
		{Upper: 100000, Rate: 0.05, Base: 10000*0.02 + 15000*0.03 + 25000*0.04},
		{Upper: inf, Rate: 0.06, Base: 10000*0.02 + 15000*0.03 + 25000*0.04 + 50000*0.05},
	}},

	"wisconsin": {Brackets: []Bracket{
		{Upper: 13200, Rate: 0.04, Base: 0},
		{Upper: 26400, Rate: 0.06, Base: 13200 * 0.04},
		{Upper: 49600, Rate: 0.065, Base: 13200*0.04 + 13200*0.06},
		{Upper: 99200, Rate: 0.075, Base: 13200*0.04 + 13200*0.06 + 23200*0.065},
		{Upper: inf, Rate: 0.0765, Base: 13200*0.04 + 13200*0.06 + 23200*0.065 + 49600*0.075},
	}},

	"wyoming": {Brackets: []Bracket{
		{Upper: 10000, Rate: 0.035, Base: 0},
		{Upper: 25000, Rate: 0.045, Base: 10000 * 0.035},
		{Upper: 50000, Rate: 0.055, Base: 10000*0.035 + 15000*0.045},
		{Upper: 100000, Rate: 0.065, Base: 10000*0.035 + 15000*0.045 + 25000*0.055},
		{Upper: inf, Rate: 0.0675, Base: 10000*0.035 + 15000*0.045 + 25000*0.055 + 50000*0.065},
	}},
}
