// Package render prints cut evaluations and range tables for the grader
// CLI.
//
// The text renderer is a compute.Sink: compute.Publish drives it one
// attribute at a time, and it writes a row per attribute followed by the
// "Final Cut Grade" line. Grades are coloured with github.com/fatih/color
// using one colour per tier:
//
//	Ideal      bold green
//	Excellent  green
//	Very Good  yellow
//	Good       bold yellow
//	Fail       bold red
//
// Values are rounded only here, never before classification. An attribute
// whose inputs were not all supplied prints "—" in place of its value but
// keeps its grade.
//
// JSON and YAML output emit a Report, which carries the full evaluation and
// its hints.
package render
