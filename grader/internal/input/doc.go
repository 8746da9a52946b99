// Package input reads raw measurements for the grader CLI.
//
// Load(path) and Decode(r) parse a YAML (or JSON) document of fractions of
// diameter:
//
//	crown_height: 0.15
//	crown_table: 0.56
//	crown_ratio: 0.55
//	pavilion_height: 0.431
//	pavilion_ratio: 0.78
//	girdle_thickness: 0.03
//
// Values may be numbers or numeric strings; anything unparseable, null or
// missing becomes an absent reading, which the engine treats as 0.
//
// Watch(ctx, path, debounce, onChange) uses fsnotify to re-read the file on
// every write and hands the fresh measurements to onChange. Bursts of
// events within the debounce window collapse into one reload. It re-adds
// the watch after each reload so atomic-save editors (rename → create) keep
// working.
package input
