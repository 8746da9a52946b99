// Package metrics exposes cutgrade-server counters in the Prometheus text
// exposition format.
//
// Registry counts every evaluation the server performs, by overall grade and
// by per-attribute grade, and samples gauges registered with Gauge (stored
// cuts, connected stream clients) at scrape time. Families() builds
// client_model MetricFamily values; ServeHTTP writes them with
// expfmt.MetricFamilyToText.
//
// Series:
//
//	cutgrade_evaluations_total{overall="Idx"|"Ex"|"VG"|"Gd"|"F"}
//	cutgrade_attribute_grades_total{attribute="crown_angle",grade="Ex"}
//	cutgrade_<gauge name>
//
// Every grade series exists from startup with value 0.
package metrics
