package catalog

import (
	"errors"
	"fmt"

	"github.com/cutgrade/cutgrade/pkg/types"
)

// ErrUnknownAttribute is returned for attribute names outside the nine
// graded attributes.
var ErrUnknownAttribute = errors.New("unknown attribute")

// Catalog maps every graded attribute to its RangeSet. The zero value is
// empty; use Standard or Load.
type Catalog struct {
	tables map[types.Attribute]types.RangeSet
	source string
}

// Standard returns a catalog holding the built-in tables.
func Standard() *Catalog {
	c := &Catalog{
		tables: make(map[types.Attribute]types.RangeSet, len(standardTables)),
		source: "standard",
	}
	for a, rs := range standardTables {
		c.tables[a] = rs.Clone()
	}
	return c
}

// New builds a catalog from the standard tables with overrides applied on
// top. Each override replaces the whole RangeSet of its attribute.
func New(source string, overrides map[types.Attribute]types.RangeSet) (*Catalog, error) {
	c := Standard()
	c.source = source
	for a, rs := range overrides {
		if !a.Known() {
			return nil, fmt.Errorf("catalog: %w %q", ErrUnknownAttribute, a)
		}
		if err := rs.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", a, err)
		}
		c.tables[a] = rs.Clone()
	}
	return c, nil
}

// Lookup returns a copy of the RangeSet for a. A nil catalog holds no
// tables.
func (c *Catalog) Lookup(a types.Attribute) (types.RangeSet, bool) {
	if c == nil {
		return types.RangeSet{}, false
	}
	rs, ok := c.tables[a]
	if !ok {
		return types.RangeSet{}, false
	}
	return rs.Clone(), true
}

// Attributes lists the attributes present, in display order.
func (c *Catalog) Attributes() []types.Attribute {
	if c == nil {
		return []types.Attribute{}
	}
	out := make([]types.Attribute, 0, len(c.tables))
	for _, a := range types.Attributes() {
		if _, ok := c.tables[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Source names where the catalog came from: "standard" or a file path.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Tables returns a deep copy of every RangeSet, keyed by attribute.
func (c *Catalog) Tables() map[types.Attribute]types.RangeSet {
	if c == nil {
		return map[types.Attribute]types.RangeSet{}
	}
	out := make(map[types.Attribute]types.RangeSet, len(c.tables))
	for a, rs := range c.tables {
		out[a] = rs.Clone()
	}
	return out
}

// Overlap records two intervals from different tiers that share a point.
// Classification resolves it in favour of Better.
type Overlap struct {
	Attribute types.Attribute `json:"attribute"`
	Better    types.Grade     `json:"better"`
	BetterIv  types.Interval  `json:"better_interval"`
	Worse     types.Grade     `json:"worse"`
	WorseIv   types.Interval  `json:"worse_interval"`
}

func (o Overlap) String() string {
	return fmt.Sprintf("%s: %s %s overlaps %s %s (first match wins: %s)",
		o.Attribute, o.Better.Name(), o.BetterIv, o.Worse.Name(), o.WorseIv, o.Better.Name())
}

// Overlaps audits the catalog for intervals shared between tiers.
func (c *Catalog) Overlaps() []Overlap {
	var out []Overlap
	tiers := types.Grades()[:4]
	for _, a := range c.Attributes() {
		rs := c.tables[a]
		for i, better := range tiers {
			for _, worse := range tiers[i+1:] {
				for _, bi := range rs.Tier(better) {
					for _, wi := range rs.Tier(worse) {
						if bi.Overlaps(wi) {
							out = append(out, Overlap{
								Attribute: a,
								Better:    better,
								BetterIv:  bi,
								Worse:     worse,
								WorseIv:   wi,
							})
						}
					}
				}
			}
		}
	}
	return out
}
