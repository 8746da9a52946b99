package api

import (
	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/pkg/compute"
	"github.com/cutgrade/cutgrade/pkg/types"
)

// EvaluateRequest is the body of POST /api/v1/evaluate, POST /api/v1/cuts
// and PUT /api/v1/cuts/{id}. Measurements are fractions of the girdle
// diameter; each may be a number, a numeric string or null.
type EvaluateRequest struct {
	Label        string             `json:"label,omitempty"`
	Measurements types.Measurements `json:"measurements"`
}

// EvaluationResponse is the payload for POST /api/v1/evaluate.
type EvaluationResponse struct {
	Evaluation types.CutEvaluation `json:"evaluation"`
	Hints      []compute.Hint      `json:"hints"`
}

// CutResponse is one stored cut in GET /api/v1/cuts or GET /api/v1/cuts/{id}.
type CutResponse struct {
	ID         string              `json:"id"`
	Label      string              `json:"label,omitempty"`
	Evaluation types.CutEvaluation `json:"evaluation"`
	Hints      []compute.Hint      `json:"hints"`
	UpdatedAt  string              `json:"updated_at"` // RFC3339
}

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	CutCount int `json:"cut_count"`
	// Counts holds the number of live cuts per overall grade, keyed by
	// short label. Every grade is present.
	Counts map[types.Grade]int `json:"counts"`
	// Worst is the worst overall grade among live cuts; absent when the
	// store is empty.
	Worst *types.Grade `json:"worst,omitempty"`
	// Catalog names the range tables in use.
	Catalog string `json:"catalog"`
}

// CatalogResponse is the payload for GET /api/v1/catalog.
type CatalogResponse struct {
	Source     string                             `json:"source"`
	Attributes map[types.Attribute]types.RangeSet `json:"attributes"`
	Overlaps   []catalog.Overlap                  `json:"overlaps"`
}

// SnapshotResponse is the payload for GET /api/v1/snapshot and the data of
// every "snapshot" message on the WebSocket stream.
type SnapshotResponse struct {
	Cuts        []CutResponse `json:"cuts"`
	GeneratedAt string        `json:"generated_at"` // RFC3339
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
