package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reading is a measurement that may be absent, in the manner of
// sql.NullFloat64. Valid is false when the source supplied nothing usable.
type Reading struct {
	Value float64
	Valid bool
}

// Some returns a present Reading. NaN and ±Inf are treated as absent.
func Some(v float64) Reading {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Reading{}
	}
	return Reading{Value: v, Valid: true}
}

// Float returns the value, or 0 when the Reading is absent.
func (r Reading) Float() float64 {
	if !r.Valid {
		return 0
	}
	return r.Value
}

// ParseReading parses a decimal number, tolerating surrounding spaces and a
// trailing "%" or "°". Anything else yields an absent Reading.
func ParseReading(s string) Reading {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSuffix(s, "°")
	s = strings.TrimSpace(s)
	if s == "" {
		return Reading{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Reading{}
	}
	return Some(v)
}

func (r Reading) String() string {
	if !r.Valid {
		return "—"
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

func (r Reading) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON accepts a number, a numeric string, or null.
func (r *Reading) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("reading: %w", err)
	}
	switch v := raw.(type) {
	case float64:
		*r = Some(v)
	case string:
		*r = ParseReading(v)
	default:
		*r = Reading{}
	}
	return nil
}

func (r Reading) MarshalYAML() (interface{}, error) {
	if !r.Valid {
		return nil, nil
	}
	return r.Value, nil
}

// UnmarshalYAML accepts any scalar; non-numeric scalars become absent.
func (r *Reading) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("reading at line %d: want a scalar", node.Line)
	}
	if node.ShortTag() == "!!null" {
		*r = Reading{}
		return nil
	}
	*r = ParseReading(node.Value)
	return nil
}

// Measurement names accepted by Reader and the input formats.
const (
	MeasureCrownHeight     = "crown_height"
	MeasureCrownTable      = "crown_table"
	MeasureCrownRatio      = "crown_ratio"
	MeasurePavilionHeight  = "pavilion_height"
	MeasurePavilionRatio   = "pavilion_ratio"
	MeasureGirdleThickness = "girdle_thickness"
)

// MeasurementNames returns every measurement name in input order.
func MeasurementNames() []string {
	return []string{
		MeasureCrownHeight,
		MeasureCrownTable,
		MeasureCrownRatio,
		MeasurePavilionHeight,
		MeasurePavilionRatio,
		MeasureGirdleThickness,
	}
}

// Measurements are the raw linear proportions of a cut, each a fraction
// (0..1) of the overall diameter.
type Measurements struct {
	CrownHeight     Reading `json:"crown_height" yaml:"crown_height"`
	CrownTable      Reading `json:"crown_table" yaml:"crown_table"`
	CrownRatio      Reading `json:"crown_ratio" yaml:"crown_ratio"`
	PavilionHeight  Reading `json:"pavilion_height" yaml:"pavilion_height"`
	PavilionRatio   Reading `json:"pavilion_ratio" yaml:"pavilion_ratio"`
	GirdleThickness Reading `json:"girdle_thickness" yaml:"girdle_thickness"`
}

// Reader supplies raw measurements by name. Implementations return an
// absent Reading for anything they do not have.
type Reader interface {
	Reading(name string) Reading
}

// MeasurementsFrom collects every measurement from r.
func MeasurementsFrom(r Reader) Measurements {
	return Measurements{
		CrownHeight:     r.Reading(MeasureCrownHeight),
		CrownTable:      r.Reading(MeasureCrownTable),
		CrownRatio:      r.Reading(MeasureCrownRatio),
		PavilionHeight:  r.Reading(MeasurePavilionHeight),
		PavilionRatio:   r.Reading(MeasurePavilionRatio),
		GirdleThickness: r.Reading(MeasureGirdleThickness),
	}
}

// Reading makes Measurements a Reader itself.
func (m Measurements) Reading(name string) Reading {
	switch name {
	case MeasureCrownHeight:
		return m.CrownHeight
	case MeasureCrownTable:
		return m.CrownTable
	case MeasureCrownRatio:
		return m.CrownRatio
	case MeasurePavilionHeight:
		return m.PavilionHeight
	case MeasurePavilionRatio:
		return m.PavilionRatio
	case MeasureGirdleThickness:
		return m.GirdleThickness
	default:
		return Reading{}
	}
}

// Empty reports whether no measurement is present at all.
func (m Measurements) Empty() bool {
	return !m.CrownHeight.Valid && !m.CrownTable.Valid && !m.CrownRatio.Valid &&
		!m.PavilionHeight.Valid && !m.PavilionRatio.Valid && !m.GirdleThickness.Valid
}

// ReadingMap is a Reader over plain string values, e.g. form fields.
type ReadingMap map[string]string

func (rm ReadingMap) Reading(name string) Reading {
	s, ok := rm[name]
	if !ok {
		return Reading{}
	}
	return ParseReading(s)
}
