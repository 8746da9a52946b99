package compute

import (
	"math"

	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/pkg/types"
)

// AttributeValues maps each graded attribute to the number it is graded
// on: derived values rounded to one decimal, raw fractions scaled to
// percent. The derived tables leave 0.01-wide gaps between tiers that
// only the rounded value is guaranteed to land outside of.
func AttributeValues(m types.Measurements, d types.DerivedValues) map[types.Attribute]float64 {
	return map[types.Attribute]float64{
		types.TotalDepth:      roundTenth(d.TotalDepth),
		types.CrownHeight:     m.CrownHeight.Float() * 100,
		types.CrownAngle:      roundTenth(d.CrownAngle),
		types.CrownTable:      m.CrownTable.Float() * 100,
		types.CrownRatio:      m.CrownRatio.Float() * 100,
		types.GirdleThickness: m.GirdleThickness.Float() * 100,
		types.PavilionHeight:  m.PavilionHeight.Float() * 100,
		types.PavilionRatio:   m.PavilionRatio.Float() * 100,
		types.PavilionAngle:   roundTenth(d.PavilionAngle),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Evaluate grades m against cat. Attributes missing from cat are skipped
// and a nil cat grades nothing, leaving the overall grade Ideal.
// The result depends only on the arguments.
func Evaluate(cat *catalog.Catalog, m types.Measurements) types.CutEvaluation {
	derived := Derive(m)
	values := AttributeValues(m, derived)

	ev := types.CutEvaluation{
		Measurements: m,
		Derived:      derived,
	}

	attrs := cat.Attributes()
	grades := make([]types.Grade, 0, len(attrs))
	for _, a := range attrs {
		rs, _ := cat.Lookup(a)
		v := values[a]
		g := Classify(v, rs)
		ev.Attributes = append(ev.Attributes, types.AttributeGrade{
			Attribute: a,
			Value:     v,
			Unit:      a.Unit(),
			Grade:     g,
		})
		grades = append(grades, g)
	}

	ev.Overall = Worst(grades...)
	ev.Limiting = limiting(ev)
	return ev
}

// EvaluateFrom reads every measurement from r and evaluates them.
func EvaluateFrom(cat *catalog.Catalog, r types.Reader) types.CutEvaluation {
	return Evaluate(cat, types.MeasurementsFrom(r))
}

func limiting(ev types.CutEvaluation) []types.Attribute {
	out := []types.Attribute{}
	if ev.Overall == types.Ideal {
		return out
	}
	for _, ag := range ev.Attributes {
		if ag.Grade == ev.Overall {
			out = append(out, ag.Attribute)
		}
	}
	return out
}

// Sink receives a rendered evaluation: one Attribute call per graded
// attribute in display order, then a single Overall call.
type Sink interface {
	Attribute(ag types.AttributeGrade)
	Overall(g types.Grade)
}

// Publish pushes ev to sink.
func Publish(ev types.CutEvaluation, sink Sink) {
	for _, ag := range ev.Attributes {
		sink.Attribute(ag)
	}
	sink.Overall(ev.Overall)
}
