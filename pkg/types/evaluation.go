package types

// DerivedValues are the quantities computed from Measurements.
type DerivedValues struct {
	CrownAngle    float64 `json:"crown_angle" yaml:"crown_angle"`       // degrees
	PavilionAngle float64 `json:"pavilion_angle" yaml:"pavilion_angle"` // degrees
	TotalDepth    float64 `json:"total_depth" yaml:"total_depth"`       // percent of diameter
}

// AttributeGrade is the graded value of one attribute.
type AttributeGrade struct {
	Attribute Attribute `json:"attribute" yaml:"attribute"`
	Value     float64   `json:"value" yaml:"value"`
	Unit      Unit      `json:"unit" yaml:"unit"`
	Grade     Grade     `json:"grade" yaml:"grade"`
}

// CutEvaluation is the result of grading one set of Measurements.
// It is rebuilt from scratch on every evaluation.
type CutEvaluation struct {
	Measurements Measurements     `json:"measurements" yaml:"measurements"`
	Derived      DerivedValues    `json:"derived" yaml:"derived"`
	Attributes   []AttributeGrade `json:"attributes" yaml:"attributes"`
	Overall      Grade            `json:"overall" yaml:"overall"`

	// Limiting lists the attributes that hold Overall down. Empty when
	// Overall is Ideal.
	Limiting []Attribute `json:"limiting" yaml:"limiting"`
}

// Grade returns the grade recorded for a, and false if a was not graded.
func (e CutEvaluation) Grade(a Attribute) (Grade, bool) {
	for _, ag := range e.Attributes {
		if ag.Attribute == a {
			return ag.Grade, true
		}
	}
	return Fail, false
}

// Counts returns how many attributes landed in each tier.
func (e CutEvaluation) Counts() map[Grade]int {
	out := make(map[Grade]int, len(Grades()))
	for _, ag := range e.Attributes {
		out[ag.Grade]++
	}
	return out
}

// Complete reports whether every measurement a depends on was present.
// An incomplete attribute is still graded, on absent readings counted as 0.
func (e CutEvaluation) Complete(a Attribute) bool {
	for _, name := range a.Inputs() {
		if !e.Measurements.Reading(name).Valid {
			return false
		}
	}
	return true
}
