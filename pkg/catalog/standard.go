package catalog

import "github.com/cutgrade/cutgrade/pkg/types"

// iv is shorthand for a closed interval literal.
func iv(low, high float64) types.Interval {
	return types.Interval{Low: low, High: high}
}

// standardTables are the published grading bounds. Values are in the unit
// of each attribute (percent of diameter, or degrees).
var standardTables = map[types.Attribute]types.RangeSet{
	types.TotalDepth: {
		Ideal:     []types.Interval{iv(58.5, 62.5)},
		Excellent: []types.Interval{iv(58, 58.49), iv(62.51, 63.5)},
		VeryGood:  []types.Interval{iv(55, 57.99), iv(63.51, 65.5)},
		Good:      []types.Interval{iv(53, 54.99), iv(65.51, 69)},
	},
	types.CrownTable: {
		Ideal:     []types.Interval{iv(53.5, 59.5)},
		Excellent: []types.Interval{iv(53, 53.49), iv(59.51, 63)},
		VeryGood:  []types.Interval{iv(52, 52.99), iv(63.01, 66)},
		Good:      []types.Interval{iv(50, 51.99), iv(66.01, 70)},
	},
	types.CrownHeight: {
		Ideal:     []types.Interval{iv(13, 16)},
		Excellent: []types.Interval{iv(12, 12.99), iv(16.01, 16.5)},
		VeryGood:  []types.Interval{iv(10, 11.99), iv(16.51, 17.5)},
		Good:      []types.Interval{iv(8.5, 9.99), iv(17.51, 19)},
	},
	types.CrownAngle: {
		Ideal:     []types.Interval{iv(33, 36)},
		Excellent: []types.Interval{iv(31.5, 32.99), iv(36.01, 36.5)},
		VeryGood:  []types.Interval{iv(28.5, 31.49), iv(36.51, 38)},
		Good:      []types.Interval{iv(26, 28.49), iv(38.01, 40)},
	},
	types.PavilionHeight: {
		Ideal:     []types.Interval{iv(42.5, 44)},
		Excellent: []types.Interval{iv(42, 42.49), iv(44.01, 44.5)},
		VeryGood:  []types.Interval{iv(41.5, 41.99), iv(44.51, 45)},
		Good:      []types.Interval{iv(41, 41.4), iv(45.01, 46.5)},
	},
	types.PavilionAngle: {
		Ideal:     []types.Interval{iv(40.5, 41.3)},
		Excellent: []types.Interval{iv(40, 40.49), iv(41.31, 41.7)},
		VeryGood:  []types.Interval{iv(39.7, 39.99), iv(41.71, 42.3)},
		Good:      []types.Interval{iv(39.4, 39.69), iv(42.31, 42.9)},
	},
	types.GirdleThickness: {
		Ideal:     []types.Interval{iv(2.0, 4.2)},
		Excellent: []types.Interval{iv(1.6, 1.99), iv(4.21, 4.7)},
		VeryGood:  []types.Interval{iv(0.3, 1.59), iv(4.71, 6.0)},
		Good:      []types.Interval{iv(0.2, 0.29), iv(6.01, 8.0)},
	},
	types.CrownRatio: {
		Ideal:     []types.Interval{iv(51, 59.99)},
		Excellent: []types.Interval{iv(45, 50.99), iv(60, 65.99)},
		VeryGood:  []types.Interval{iv(40, 44.99), iv(66, 70.99)},
		Good:      []types.Interval{iv(35, 39.99), iv(71, 75)},
	},
	types.PavilionRatio: {
		Ideal:     []types.Interval{iv(75, 79.99)},
		Excellent: []types.Interval{iv(70, 74.99), iv(80, 85.99)},
		VeryGood:  []types.Interval{iv(65, 69.99), iv(86, 90.99)},
		Good:      []types.Interval{iv(60, 64.99), iv(91, 95)},
	},
}
