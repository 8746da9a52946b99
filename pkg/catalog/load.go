package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cutgrade/cutgrade/pkg/types"
)

// file is the on-disk override format.
type file struct {
	Attributes map[types.Attribute]types.RangeSet `yaml:"attributes"`
}

// Load reads the override file at path and returns the merged catalog.
// An empty path returns Standard(). Each overlap between tiers is logged
// as a warning; it is not an error.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Standard(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}

	c, err := New(path, f.Attributes)
	if err != nil {
		return nil, err
	}

	for _, o := range c.Overlaps() {
		slog.Warn("catalog: overlapping tiers", "path", path, "overlap", o.String())
	}
	slog.Info("catalog: loaded", "path", path, "overrides", len(f.Attributes))
	return c, nil
}

// Marshal encodes every table of c in the override file format.
func Marshal(c *Catalog) ([]byte, error) {
	out, err := yaml.Marshal(file{Attributes: c.Tables()})
	if err != nil {
		return nil, fmt.Errorf("catalog: marshal: %w", err)
	}
	return out, nil
}
