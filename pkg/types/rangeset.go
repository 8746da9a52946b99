package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrInvalidInterval is returned when an interval has NaN bounds or Low > High.
var ErrInvalidInterval = errors.New("invalid interval")

// Interval is a closed range [Low, High].
// It encodes as a two-element array in both JSON and YAML.
type Interval struct {
	Low  float64
	High float64
}

// Contains reports whether Low <= v <= High.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Low && v <= iv.High
}

// Overlaps reports whether iv and other share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Low <= other.High && other.Low <= iv.High
}

// Validate rejects NaN or infinite bounds and inverted intervals.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.Low) || math.IsNaN(iv.High) || math.IsInf(iv.Low, 0) || math.IsInf(iv.High, 0) {
		return fmt.Errorf("%w: non-finite bound in [%v, %v]", ErrInvalidInterval, iv.Low, iv.High)
	}
	if iv.Low > iv.High {
		return fmt.Errorf("%w: low %v > high %v", ErrInvalidInterval, iv.Low, iv.High)
	}
	return nil
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Low, iv.High)
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{iv.Low, iv.High})
}

func (iv *Interval) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("interval: %w", err)
	}
	return iv.fromPair(pair)
}

func (iv Interval) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{iv.Low, iv.High} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: fmt.Sprintf("%g", v),
		})
	}
	return node, nil
}

func (iv *Interval) UnmarshalYAML(node *yaml.Node) error {
	var pair []float64
	if err := node.Decode(&pair); err != nil {
		return fmt.Errorf("interval at line %d: %w", node.Line, err)
	}
	return iv.fromPair(pair)
}

func (iv *Interval) fromPair(pair []float64) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: want [low, high], got %d values", ErrInvalidInterval, len(pair))
	}
	*iv = Interval{Low: pair[0], High: pair[1]}
	return nil
}

// RangeSet holds the intervals of the four graded tiers for one attribute.
// A value covered by none of them grades Fail.
type RangeSet struct {
	Ideal     []Interval `json:"ideal" yaml:"ideal"`
	Excellent []Interval `json:"excellent" yaml:"excellent"`
	VeryGood  []Interval `json:"very_good" yaml:"very_good"`
	Good      []Interval `json:"good" yaml:"good"`
}

// Tier returns the intervals for g. Fail has no intervals.
func (rs RangeSet) Tier(g Grade) []Interval {
	switch g {
	case Ideal:
		return rs.Ideal
	case Excellent:
		return rs.Excellent
	case VeryGood:
		return rs.VeryGood
	case Good:
		return rs.Good
	default:
		return nil
	}
}

// Validate checks every interval of every tier.
func (rs RangeSet) Validate() error {
	for _, g := range Grades() {
		for i, iv := range rs.Tier(g) {
			if err := iv.Validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", g.Name(), i, err)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of rs.
func (rs RangeSet) Clone() RangeSet {
	return RangeSet{
		Ideal:     cloneIntervals(rs.Ideal),
		Excellent: cloneIntervals(rs.Excellent),
		VeryGood:  cloneIntervals(rs.VeryGood),
		Good:      cloneIntervals(rs.Good),
	}
}

func cloneIntervals(in []Interval) []Interval {
	if in == nil {
		return nil
	}
	out := make([]Interval, len(in))
	copy(out, in)
	return out
}
