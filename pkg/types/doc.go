// Package types defines the value types shared by the grading engine, the
// grader CLI and the server.
//
//   - Grade: ordered enumeration Ideal < Excellent < VeryGood < Good < Fail
//     ("less" is better). Marshals as the short labels Idx/Ex/VG/Gd/F.
//   - Attribute: the nine graded proportions, in display order.
//   - Interval, RangeSet: closed numeric intervals per grade tier.
//   - Reading: an optional numeric measurement. An absent Reading counts
//     as 0 wherever a number is required.
//   - Measurements, DerivedValues, AttributeGrade, CutEvaluation: the
//     inputs and outputs of one evaluation.
//
// Every type here is a plain value; nothing holds shared mutable state.
package types
