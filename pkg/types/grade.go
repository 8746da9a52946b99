package types

import (
	"fmt"
	"strings"
)

// Grade is a cut quality tier. Lower values are better.
type Grade int

// Grade tiers, best to worst.
const (
	Ideal Grade = iota
	Excellent
	VeryGood
	Good
	Fail
)

// Grades returns every tier in best-to-worst order.
func Grades() []Grade {
	return []Grade{Ideal, Excellent, VeryGood, Good, Fail}
}

var gradeInfo = [...]struct {
	short, long, color string
}{
	Ideal:     {"Idx", "Ideal", "darkgreen"},
	Excellent: {"Ex", "Excellent", "green"},
	VeryGood:  {"VG", "Very Good", "goldenrod"},
	Good:      {"Gd", "Good", "yellow"},
	Fail:      {"F", "Fail", "red"},
}

// Valid reports whether g is one of the five defined tiers.
func (g Grade) Valid() bool {
	return g >= Ideal && g <= Fail
}

// String returns the short label (Idx, Ex, VG, Gd, F).
func (g Grade) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return gradeInfo[g].short
}

// Name returns the long label, e.g. "Very Good".
func (g Grade) Name() string {
	if !g.Valid() {
		return g.String()
	}
	return gradeInfo[g].long
}

// Color returns the CSS colour name used to display g.
func (g Grade) Color() string {
	if !g.Valid() {
		return "black"
	}
	return gradeInfo[g].color
}

// Worse reports whether g ranks below other.
func (g Grade) Worse(other Grade) bool {
	return g > other
}

// ParseGrade accepts a short or long label, case-insensitively.
func ParseGrade(s string) (Grade, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, g := range Grades() {
		info := gradeInfo[g]
		if norm == strings.ToLower(info.short) || norm == strings.ToLower(info.long) ||
			norm == strings.ReplaceAll(strings.ToLower(info.long), " ", "") {
			return g, nil
		}
	}
	return Fail, fmt.Errorf("unknown grade %q", s)
}

// MarshalText encodes g as its short label. JSON and YAML both use it.
func (g Grade) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid grade %d", int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText decodes a short or long label.
func (g *Grade) UnmarshalText(b []byte) error {
	parsed, err := ParseGrade(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
