package input

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cutgrade/cutgrade/pkg/types"
)

// Load reads measurements from the file at path. "-" reads stdin.
func Load(path string) (types.Measurements, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return types.Measurements{}, fmt.Errorf("input: open: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return types.Measurements{}, fmt.Errorf("input: %s: %w", path, err)
	}
	return m, nil
}

// Decode parses one YAML or JSON document from r. An empty document yields
// empty measurements.
func Decode(r io.Reader) (types.Measurements, error) {
	var m types.Measurements
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return types.Measurements{}, fmt.Errorf("parse measurements: %w", err)
	}
	return m, nil
}

// Override replaces every present reading of base with the one from over.
func Override(base, over types.Measurements) types.Measurements {
	pick := func(b, o types.Reading) types.Reading {
		if o.Valid {
			return o
		}
		return b
	}
	return types.Measurements{
		CrownHeight:     pick(base.CrownHeight, over.CrownHeight),
		CrownTable:      pick(base.CrownTable, over.CrownTable),
		CrownRatio:      pick(base.CrownRatio, over.CrownRatio),
		PavilionHeight:  pick(base.PavilionHeight, over.PavilionHeight),
		PavilionRatio:   pick(base.PavilionRatio, over.PavilionRatio),
		GirdleThickness: pick(base.GirdleThickness, over.GirdleThickness),
	}
}
