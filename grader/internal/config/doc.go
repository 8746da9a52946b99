// Package config loads the optional grader configuration file (grader.yaml).
//
// Top-level types:
//   - Config{Catalog, Display, Watch}: full tree parsed from YAML
//   - CatalogConfig: file, the path of a range-table override file
//   - DisplayConfig: precision (decimal places), color (auto|always|never),
//     format (text|json|yaml)
//   - WatchConfig: debounce window for `grader watch`
//
// Load(path) reads the YAML file, applies defaults (precision 1, color auto,
// format text, 100ms debounce), then validates the enums and ranges. An
// empty path returns the defaults alone.
package config
