// Package compute is the grading engine: a pure value pipeline with no
// state, no I/O and no error returns.
//
//	Measurements ─ Derive ─▶ DerivedValues ─ Classify (per attribute) ─▶ grades ─ Worst ─▶ overall
//
// geometry.go: crown angle, pavilion angle and total depth from fractions
// of diameter. Absent readings count as 0. A non-positive horizontal run
// (e.g. a table at or beyond the full diameter) yields an angle of exactly
// 0° instead of an undefined value.
//
// classify.go: Classify tests the Ideal, Excellent, VeryGood and Good
// tiers in that order; the first tier with an interval containing the
// value wins (bounds inclusive). No match grades Fail.
//
// aggregate.go: Worst reduces grades to the worst one present. An empty
// list reduces to Ideal.
//
// evaluate.go: Evaluate(cat, m) runs the whole pipeline against an
// injected catalog. Publish(ev, sink) pushes an evaluation to an outbound
// Sink, one call per attribute then one for the overall grade.
//
// hints.go: Hints explains, per attribute, how far the value sits from
// its Ideal band.
package compute
