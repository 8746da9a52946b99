package types

import "fmt"

// Unit is the unit a graded value is expressed in.
type Unit string

const (
	Percent Unit = "percent"
	Degrees Unit = "degrees"
)

// Symbol returns the suffix used when displaying a value in u.
func (u Unit) Symbol() string {
	switch u {
	case Degrees:
		return "°"
	case Percent:
		return "%"
	default:
		return ""
	}
}

// Attribute names one graded proportion of a cut.
type Attribute string

// The nine graded attributes, in display order.
const (
	TotalDepth      Attribute = "total_depth"
	CrownHeight     Attribute = "crown_height"
	CrownAngle      Attribute = "crown_angle"
	CrownTable      Attribute = "crown_table"
	CrownRatio      Attribute = "crown_ratio"
	GirdleThickness Attribute = "girdle_thickness"
	PavilionHeight  Attribute = "pavilion_height"
	PavilionRatio   Attribute = "pavilion_ratio"
	PavilionAngle   Attribute = "pavilion_angle"
)

var attributeOrder = []Attribute{
	TotalDepth,
	CrownHeight,
	CrownAngle,
	CrownTable,
	CrownRatio,
	GirdleThickness,
	PavilionHeight,
	PavilionRatio,
	PavilionAngle,
}

var attributeInfo = map[Attribute]struct {
	label string
	unit  Unit
}{
	TotalDepth:      {"Total depth", Percent},
	CrownHeight:     {"Crown height", Percent},
	CrownAngle:      {"Crown angle", Degrees},
	CrownTable:      {"Table", Percent},
	CrownRatio:      {"Star ratio", Percent},
	GirdleThickness: {"Girdle thickness", Percent},
	PavilionHeight:  {"Pavilion height", Percent},
	PavilionRatio:   {"Pavilion ratio", Percent},
	PavilionAngle:   {"Pavilion angle", Degrees},
}

// attributeInputs lists the raw measurements each attribute is computed from.
var attributeInputs = map[Attribute][]string{
	TotalDepth:      {MeasureCrownHeight, MeasurePavilionHeight, MeasureGirdleThickness},
	CrownHeight:     {MeasureCrownHeight},
	CrownAngle:      {MeasureCrownHeight, MeasureCrownTable},
	CrownTable:      {MeasureCrownTable},
	CrownRatio:      {MeasureCrownRatio},
	GirdleThickness: {MeasureGirdleThickness},
	PavilionHeight:  {MeasurePavilionHeight},
	PavilionRatio:   {MeasurePavilionRatio},
	PavilionAngle:   {MeasurePavilionHeight},
}

// Attributes returns the nine graded attributes in display order.
// The returned slice is a fresh copy.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributeOrder))
	copy(out, attributeOrder)
	return out
}

// Known reports whether a is one of the nine graded attributes.
func (a Attribute) Known() bool {
	_, ok := attributeInfo[a]
	return ok
}

// Label returns a human-readable name.
func (a Attribute) Label() string {
	if info, ok := attributeInfo[a]; ok {
		return info.label
	}
	return string(a)
}

// Unit returns the unit a's values are expressed in.
func (a Attribute) Unit() Unit {
	return attributeInfo[a].unit
}

// ParseAttribute validates s as an attribute name.
func ParseAttribute(s string) (Attribute, error) {
	a := Attribute(s)
	if !a.Known() {
		return "", fmt.Errorf("unknown attribute %q", s)
	}
	return a, nil
}

// Inputs returns the names of the measurements a is computed from.
func (a Attribute) Inputs() []string {
	in := attributeInputs[a]
	out := make([]string, len(in))
	copy(out, in)
	return out
}
