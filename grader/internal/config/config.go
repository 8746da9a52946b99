package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultPrecision = 1
	DefaultColor     = "auto"
	DefaultFormat    = "text"
	DefaultDebounce  = 100 * time.Millisecond

	maxPrecision = 6
)

// Config is the grader configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Display DisplayConfig `yaml:"display"`
	Watch   WatchConfig   `yaml:"watch"`
}

// CatalogConfig selects the range tables.
type CatalogConfig struct {
	// File is a YAML override file merged onto the standard tables.
	// Empty means the standard tables alone.
	File string `yaml:"file"`
}

// DisplayConfig controls how evaluations are printed.
type DisplayConfig struct {
	// Precision is the number of decimal places shown for values.
	Precision int `yaml:"precision"`

	// Color is one of: auto | always | never. "auto" colours only when
	// stdout is a terminal.
	Color string `yaml:"color"`

	// Format is one of: text | json | yaml.
	Format string `yaml:"format"`
}

// WatchConfig tunes `grader watch`.
type WatchConfig struct {
	// Debounce collapses bursts of file events (editors often write a file
	// several times per save) into one re-evaluation.
	Debounce time.Duration `yaml:"debounce"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a Config pre-populated with default values.
func Defaults() *Config {
	return &Config{
		Display: DisplayConfig{
			Precision: DefaultPrecision,
			Color:     DefaultColor,
			Format:    DefaultFormat,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}

// Validate checks enums and ranges. Flags that override the file are
// validated through the same function.
func Validate(cfg *Config) error {
	if cfg.Display.Precision < 0 || cfg.Display.Precision > maxPrecision {
		return fmt.Errorf("display.precision %d is out of range [0, %d]", cfg.Display.Precision, maxPrecision)
	}
	switch cfg.Display.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("display.color %q unknown: want auto|always|never", cfg.Display.Color)
	}
	switch cfg.Display.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("display.format %q unknown: want text|json|yaml", cfg.Display.Format)
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}
