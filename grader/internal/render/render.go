package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/pkg/compute"
	"github.com/cutgrade/cutgrade/pkg/types"
)

// Absent is printed in place of a value whose inputs were not supplied.
const Absent = "—"

// Options controls text output.
type Options struct {
	// Precision is the number of decimal places shown for values.
	Precision int
	// Color enables ANSI colours.
	Color bool
	// Hints appends improvement hints below the grade table.
	Hints bool
}

// Report is the document written by the json and yaml formats.
type Report struct {
	Catalog    string              `json:"catalog" yaml:"catalog"`
	Evaluation types.CutEvaluation `json:"evaluation" yaml:"evaluation"`
	Hints      []compute.Hint      `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// FormatValue rounds v to precision places and appends the unit symbol.
func FormatValue(v float64, u types.Unit, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64) + u.Symbol()
}

// palette returns one colour per grade, enabled or disabled as a whole.
func palette(enabled bool) map[types.Grade]*color.Color {
	p := map[types.Grade]*color.Color{
		types.Ideal:     color.New(color.FgGreen, color.Bold),
		types.Excellent: color.New(color.FgGreen),
		types.VeryGood:  color.New(color.FgYellow),
		types.Good:      color.New(color.FgHiYellow, color.Bold),
		types.Fail:      color.New(color.FgRed, color.Bold),
	}
	for _, c := range p {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Text writes evaluations as an aligned, optionally coloured table.
type Text struct {
	w       io.Writer
	opts    Options
	colors  map[types.Grade]*color.Color
	current types.CutEvaluation
	err     error
}

// NewText returns a text renderer writing to w.
func NewText(w io.Writer, opts Options) *Text {
	return &Text{w: w, opts: opts, colors: palette(opts.Color)}
}

// Render writes ev, and its hints when enabled.
func (t *Text) Render(cat *catalog.Catalog, ev types.CutEvaluation) error {
	t.current = ev
	t.err = nil
	compute.Publish(ev, t)
	if t.opts.Hints {
		t.hints(compute.Hints(cat, ev))
	}
	return t.err
}

// Attribute implements compute.Sink.
func (t *Text) Attribute(ag types.AttributeGrade) {
	value := Absent
	if t.current.Complete(ag.Attribute) {
		value = FormatValue(ag.Value, ag.Unit, t.opts.Precision)
	}
	t.printf("%-18s %10s  %s\n", ag.Attribute.Label(), value, t.grade(ag.Grade))
}

// Overall implements compute.Sink.
func (t *Text) Overall(g types.Grade) {
	t.printf("\nFinal Cut Grade: %s\n", t.colors[g].Sprint(g.String()))
}

func (t *Text) grade(g types.Grade) string {
	c, ok := t.colors[g]
	if !ok {
		return g.String()
	}
	return c.Sprintf("%-3s %s", g.String(), g.Name())
}

func (t *Text) hints(hs []compute.Hint) {
	if len(hs) == 0 {
		return
	}
	t.printf("\n")
	for _, h := range hs {
		t.printf("[%s] %s: %s\n", strings.ToUpper(h.Level), h.Title, h.Detail)
	}
}

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// Catalog writes the range tables of cat, one block per attribute, then
// any overlaps between tiers.
func (t *Text) Catalog(cat *catalog.Catalog) error {
	t.err = nil
	t.printf("Range tables: %s\n", cat.Source())
	for _, a := range cat.Attributes() {
		rs, _ := cat.Lookup(a)
		t.printf("\n%s (%s)\n", a.Label(), a.Unit().Symbol())
		for _, g := range types.Grades() {
			if g == types.Fail {
				continue
			}
			ivs := make([]string, 0, len(rs.Tier(g)))
			for _, iv := range rs.Tier(g) {
				ivs = append(ivs, iv.String())
			}
			t.printf("  %s  %s\n", t.colors[g].Sprintf("%-3s", g.String()), strings.Join(ivs, " "))
		}
	}
	if ov := cat.Overlaps(); len(ov) > 0 {
		t.printf("\nOverlapping tiers:\n")
		for _, o := range ov {
			t.printf("  %s\n", o)
		}
	}
	return t.err
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// YAML writes r as a YAML document.
func YAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
