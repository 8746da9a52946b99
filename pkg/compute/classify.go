package compute

import "github.com/cutgrade/cutgrade/pkg/types"

// gradedTiers is the order tiers are tested in. Fail is the fallback.
var gradedTiers = [...]types.Grade{types.Ideal, types.Excellent, types.VeryGood, types.Good}

// Classify returns the best tier of rs with an interval containing v, or
// Fail if none does. NaN always grades Fail.
func Classify(v float64, rs types.RangeSet) types.Grade {
	for _, g := range gradedTiers {
		for _, iv := range rs.Tier(g) {
			if iv.Contains(v) {
				return g
			}
		}
	}
	return types.Fail
}
