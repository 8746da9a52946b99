package compute

import (
	"math"

	"github.com/cutgrade/cutgrade/pkg/types"
)

// pavilionRun is the horizontal reference for the pavilion angle: half of
// the overall diameter.
const pavilionRun = 0.5

// AngleFromRise returns atan(rise/run) in degrees. A run <= 0 returns 0.
func AngleFromRise(rise, run float64) float64 {
	if run <= 0 {
		return 0
	}
	return math.Atan(rise/run) * (180 / math.Pi)
}

// CrownAngle returns the crown angle in degrees for a crown height and
// table width, both fractions of diameter. The crown's horizontal run is
// half of what the table leaves of the diameter.
func CrownAngle(crownHeight, crownTable float64) float64 {
	return AngleFromRise(crownHeight, (1-crownTable)/2)
}

// PavilionAngle returns the pavilion angle in degrees for a pavilion height
// given as a fraction of diameter.
func PavilionAngle(pavilionHeight float64) float64 {
	return AngleFromRise(pavilionHeight, pavilionRun)
}

// TotalDepth returns the depth percentage from its three components, each
// a fraction of diameter.
func TotalDepth(crownHeight, pavilionHeight, girdleThickness float64) float64 {
	return (crownHeight + pavilionHeight + girdleThickness) * 100
}

// Derive computes every derived value. Absent readings count as 0.
func Derive(m types.Measurements) types.DerivedValues {
	ch := m.CrownHeight.Float()
	ph := m.PavilionHeight.Float()
	return types.DerivedValues{
		CrownAngle:    CrownAngle(ch, m.CrownTable.Float()),
		PavilionAngle: PavilionAngle(ph),
		TotalDepth:    TotalDepth(ch, ph, m.GirdleThickness.Float()),
	}
}
