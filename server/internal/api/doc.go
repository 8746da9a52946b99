// Package api implements the HTTP REST API for cutgrade-server.
//
// New(store, catalog, observer) returns an http.Handler that serves:
//
//	POST /api/v1/evaluate    grade measurements, nothing stored
//	GET  /api/v1/catalog     active range tables + overlap audit
//	GET  /api/v1/cuts        all live cuts ([]CutResponse)
//	POST /api/v1/cuts        grade and store under a new UUID (201)
//	GET  /api/v1/cuts/{id}   single cut; 404 if unknown or stale
//	PUT  /api/v1/cuts/{id}   grade and store under id
//	GET  /api/v1/health      live cut count per overall grade, worst grade
//	GET  /api/v1/snapshot    all live cuts + generated_at
//
// Request bodies are EvaluateRequest: an optional label and a measurements
// object whose values may be numbers, numeric strings or null. Unknown
// fields are rejected with 400. Absent measurements are graded as 0.
//
// All endpoints respond with Content-Type: application/json and return 405
// for unsupported methods. Every cut in a response carries the hints
// computed from the same catalog.
//
// JSON types are defined in types.go. No external HTTP framework is used.
package api
