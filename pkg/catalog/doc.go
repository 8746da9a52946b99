// Package catalog holds the range tables that map each graded attribute to
// its four tiers of closed intervals.
//
// Standard() returns the built-in tables, which encode an industry grading
// standard and must not drift. Load(path) merges per-attribute overrides
// from a YAML file onto the standard tables. Either way the result is a
// *Catalog that is built once at process start and never mutated: Lookup
// hands out deep copies, so consumers cannot alter shared state.
//
// Overlaps() audits every pair of intervals from different tiers of the
// same attribute. Overlaps are legal (classification is first-match-wins,
// best tier first) but usually indicate an authoring mistake, so Load logs
// each one as a warning.
//
// Override file format:
//
//	attributes:
//	  crown_angle:
//	    ideal:     [[33, 36]]
//	    excellent: [[31.5, 32.99], [36.01, 36.5]]
//	    very_good: [[28.5, 31.49], [36.51, 38]]
//	    good:      [[26, 28.49], [38.01, 40]]
package catalog
