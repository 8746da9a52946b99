package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/pkg/compute"
	"github.com/cutgrade/cutgrade/pkg/types"
	"github.com/cutgrade/cutgrade/server/internal/store"
)

// maxBodyBytes caps request bodies. A measurement document is a few hundred
// bytes.
const maxBodyBytes = 64 << 10

// Observer is told about every evaluation the API performs.
type Observer interface {
	Observe(ev types.CutEvaluation)
}

// Handler is the HTTP handler for all /api/v1/* endpoints.
// It grades measurements against one catalog and keeps graded cuts in the store.
type Handler struct {
	store   *store.Store
	catalog *catalog.Catalog
	obs     Observer
	mux     *http.ServeMux
}

// New creates a Handler wired to the given store and catalog and registers
// all routes. obs may be nil.
func New(st *store.Store, cat *catalog.Catalog, obs Observer) http.Handler {
	h := &Handler{store: st, catalog: cat, obs: obs, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/v1/evaluate", h.evaluate)
	h.mux.HandleFunc("/api/v1/catalog", h.getCatalog)
	h.mux.HandleFunc("/api/v1/cuts", h.cuts)
	h.mux.HandleFunc("/api/v1/cuts/", h.cut) // subtree, extracts {id}
	h.mux.HandleFunc("/api/v1/health", h.health)
	h.mux.HandleFunc("/api/v1/snapshot", h.snapshot)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// --- route handlers ---------------------------------------------------------

// evaluate handles POST /api/v1/evaluate: grade without storing.
func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	req, err := decodeRequest(w, r)
	if err != nil {
		jsonErr(w, http.StatusBadRequest, err.Error())
		return
	}
	ev := h.grade(req.Measurements)
	jsonResp(w, http.StatusOK, EvaluationResponse{
		Evaluation: ev,
		Hints:      compute.Hints(h.catalog, ev),
	})
}

// getCatalog handles GET /api/v1/catalog: the active range tables.
func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	overlaps := h.catalog.Overlaps()
	if overlaps == nil {
		overlaps = []catalog.Overlap{}
	}
	jsonResp(w, http.StatusOK, CatalogResponse{
		Source:     h.catalog.Source(),
		Attributes: h.catalog.Tables(),
		Overlaps:   overlaps,
	})
}

// cuts handles GET /api/v1/cuts (list live cuts) and POST /api/v1/cuts
// (grade and store under a new ID).
func (h *Handler) cuts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		jsonResp(w, http.StatusOK, BuildSnapshot(h.store, h.catalog).Cuts)

	case http.MethodPost:
		req, err := decodeRequest(w, r)
		if err != nil {
			jsonErr(w, http.StatusBadRequest, err.Error())
			return
		}
		e := h.store.Create(req.Label, h.grade(req.Measurements))
		slog.Info("api: cut created", "id", e.ID, "overall", e.Evaluation.Overall)
		w.Header().Set("Location", "/api/v1/cuts/"+e.ID)
		jsonResp(w, http.StatusCreated, ToCutResponse(h.catalog, e))

	default:
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// cut handles GET and PUT /api/v1/cuts/{id}.
func (h *Handler) cut(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/cuts/")
	if id == "" {
		// Bare /api/v1/cuts/ behaves like the collection.
		h.cuts(w, r)
		return
	}
	if strings.Contains(id, "/") {
		jsonErr(w, http.StatusNotFound, "cut not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		e, ok := h.store.Get(id)
		if !ok {
			jsonErr(w, http.StatusNotFound, "cut not found")
			return
		}
		jsonResp(w, http.StatusOK, ToCutResponse(h.catalog, e))

	case http.MethodPut:
		req, err := decodeRequest(w, r)
		if err != nil {
			jsonErr(w, http.StatusBadRequest, err.Error())
			return
		}
		e := h.store.Put(id, req.Label, h.grade(req.Measurements))
		slog.Debug("api: cut updated", "id", id, "overall", e.Evaluation.Overall)
		jsonResp(w, http.StatusOK, ToCutResponse(h.catalog, e))

	default:
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// health handles GET /api/v1/health: live cut counts per overall grade.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	entries := h.store.List()
	resp := HealthResponse{
		CutCount: len(entries),
		Counts:   make(map[types.Grade]int, len(types.Grades())),
		Catalog:  h.catalog.Source(),
	}
	for _, g := range types.Grades() {
		resp.Counts[g] = 0
	}

	overall := make([]types.Grade, 0, len(entries))
	for _, e := range entries {
		resp.Counts[e.Evaluation.Overall]++
		overall = append(overall, e.Evaluation.Overall)
	}
	if len(overall) > 0 {
		worst := compute.Worst(overall...)
		resp.Worst = &worst
	}
	jsonResp(w, http.StatusOK, resp)
}

// snapshot handles GET /api/v1/snapshot: every live cut plus generated_at.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, BuildSnapshot(h.store, h.catalog))
}

// --- helpers ----------------------------------------------------------------

func (h *Handler) grade(m types.Measurements) types.CutEvaluation {
	ev := compute.Evaluate(h.catalog, m)
	if h.obs != nil {
		h.obs.Observe(ev)
	}
	return ev
}

// BuildSnapshot collects every live cut in st, each with its hints.
func BuildSnapshot(st *store.Store, cat *catalog.Catalog) SnapshotResponse {
	entries := st.List()
	cuts := make([]CutResponse, 0, len(entries))
	for _, e := range entries {
		cuts = append(cuts, ToCutResponse(cat, e))
	}
	return SnapshotResponse{
		Cuts:        cuts,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// ToCutResponse maps a store.Entry to its JSON representation.
func ToCutResponse(cat *catalog.Catalog, e *store.Entry) CutResponse {
	return CutResponse{
		ID:         e.ID,
		Label:      e.Label,
		Evaluation: e.Evaluation,
		Hints:      compute.Hints(cat, e.Evaluation),
		UpdatedAt:  e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (EvaluateRequest, error) {
	var req EvaluateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, fmt.Errorf("empty request body")
		}
		return req, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
