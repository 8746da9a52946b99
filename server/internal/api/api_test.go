package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/pkg/compute"
	"github.com/cutgrade/cutgrade/pkg/types"
	"github.com/cutgrade/cutgrade/server/internal/api"
	"github.com/cutgrade/cutgrade/server/internal/store"
)

// --- test helpers -----------------------------------------------------------

const idealBody = `{"label":"reference","measurements":{
	"crown_height": 0.15, "crown_table": 0.56, "crown_ratio": 0.55,
	"pavilion_height": 0.431, "pavilion_ratio": 0.78, "girdle_thickness": 0.03}}`

// girdleFailBody is the ideal cut with a 9% girdle.
const girdleFailBody = `{"measurements":{
	"crown_height": 0.15, "crown_table": "0.56", "crown_ratio": 0.55,
	"pavilion_height": 0.431, "pavilion_ratio": 0.78, "girdle_thickness": 0.09}}`

type countingObserver struct{ n int }

func (o *countingObserver) Observe(types.CutEvaluation) { o.n++ }

func newHandler(st *store.Store) (http.Handler, *countingObserver) {
	obs := &countingObserver{}
	return api.New(st, catalog.Standard(), obs), obs
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode JSON: %v (body: %s)", err, rr.Body.String())
	}
}

// --- /api/v1/evaluate -------------------------------------------------------

func TestEvaluate_Ideal(t *testing.T) {
	st := store.New(5 * time.Minute)
	h, obs := newHandler(st)
	rr := do(t, h, http.MethodPost, "/api/v1/evaluate", idealBody)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	var resp api.EvaluationResponse
	decode(t, rr, &resp)

	if resp.Evaluation.Overall != types.Ideal {
		t.Errorf("overall: got %v, want Idx", resp.Evaluation.Overall)
	}
	if len(resp.Evaluation.Attributes) != 9 {
		t.Errorf("attributes: got %d, want 9", len(resp.Evaluation.Attributes))
	}
	if len(resp.Hints) != 1 || resp.Hints[0].Key != "all_ideal" {
		t.Errorf("hints: got %+v, want single all_ideal", resp.Hints)
	}
	if st.Count() != 0 {
		t.Errorf("evaluate must not store; store holds %d", st.Count())
	}
	if obs.n != 1 {
		t.Errorf("observer calls: got %d, want 1", obs.n)
	}
}

func TestEvaluate_MatchesEngine(t *testing.T) {
	h, _ := newHandler(store.New(time.Minute))
	rr := do(t, h, http.MethodPost, "/api/v1/evaluate", girdleFailBody)
	var resp api.EvaluationResponse
	decode(t, rr, &resp)

	var req api.EvaluateRequest
	if err := json.Unmarshal([]byte(girdleFailBody), &req); err != nil {
		t.Fatal(err)
	}
	want := compute.Evaluate(catalog.Standard(), req.Measurements)
	if resp.Evaluation.Overall != want.Overall || resp.Evaluation.Overall != types.Fail {
		t.Errorf("overall: got %v, want %v", resp.Evaluation.Overall, want.Overall)
	}
	if len(resp.Evaluation.Limiting) != 1 || resp.Evaluation.Limiting[0] != types.GirdleThickness {
		t.Errorf("limiting: got %v, want [girdle_thickness]", resp.Evaluation.Limiting)
	}
	if resp.Hints[0].Level != compute.LevelCritical {
		t.Errorf("first hint level: got %q, want critical", resp.Hints[0].Level)
	}
}

func TestEvaluate_BadRequests(t *testing.T) {
	h, obs := newHandler(store.New(time.Minute))
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed json", `{"measurements":`},
		{"unknown field", `{"measurements":{}, "carat": 1.2}`},
		{"unknown measurement", `{"measurements":{"culet": 0.01}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/api/v1/evaluate", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", rr.Code)
			}
		})
	}
	if obs.n != 0 {
		t.Errorf("observer called %d times for rejected requests", obs.n)
	}
}

func TestEvaluate_MethodNotAllowed(t *testing.T) {
	h, _ := newHandler(store.New(time.Minute))
	if rr := do(t, h, http.MethodGet, "/api/v1/evaluate", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}

// --- /api/v1/cuts -----------------------------------------------------------

func TestCuts_CreateGetList(t *testing.T) {
	st := store.New(5 * time.Minute)
	h, _ := newHandler(st)

	rr := do(t, h, http.MethodPost, "/api/v1/cuts", idealBody)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, want 201 (body: %s)", rr.Code, rr.Body.String())
	}
	var created api.CutResponse
	decode(t, rr, &created)
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Errorf("id %q is not a uuid", created.ID)
	}
	if loc := rr.Header().Get("Location"); loc != "/api/v1/cuts/"+created.ID {
		t.Errorf("Location: got %q", loc)
	}
	if created.Label != "reference" {
		t.Errorf("label: got %q, want reference", created.Label)
	}

	rr = do(t, h, http.MethodGet, "/api/v1/cuts/"+created.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get status: got %d, want 200", rr.Code)
	}
	var got api.CutResponse
	decode(t, rr, &got)
	if got.Evaluation.Overall != types.Ideal {
		t.Errorf("overall: got %v, want Idx", got.Evaluation.Overall)
	}

	rr = do(t, h, http.MethodGet, "/api/v1/cuts", "")
	var list []api.CutResponse
	decode(t, rr, &list)
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("list: got %+v", list)
	}
}

func TestCuts_PutReplaces(t *testing.T) {
	st := store.New(5 * time.Minute)
	h, _ := newHandler(st)

	if rr := do(t, h, http.MethodPut, "/api/v1/cuts/stone-7", idealBody); rr.Code != http.StatusOK {
		t.Fatalf("put status: got %d, want 200", rr.Code)
	}
	rr := do(t, h, http.MethodPut, "/api/v1/cuts/stone-7", girdleFailBody)
	var resp api.CutResponse
	decode(t, rr, &resp)

	if resp.ID != "stone-7" || resp.Evaluation.Overall != types.Fail {
		t.Errorf("put: got id=%q overall=%v", resp.ID, resp.Evaluation.Overall)
	}
	if st.Count() != 1 {
		t.Errorf("store count: got %d, want 1", st.Count())
	}
}

func TestCuts_NotFound(t *testing.T) {
	h, _ := newHandler(store.New(5 * time.Minute))
	for _, path := range []string{"/api/v1/cuts/nope", "/api/v1/cuts/a/b"} {
		if rr := do(t, h, http.MethodGet, path, ""); rr.Code != http.StatusNotFound {
			t.Errorf("%s: status got %d, want 404", path, rr.Code)
		}
	}
}

func TestCuts_MethodNotAllowed(t *testing.T) {
	h, _ := newHandler(store.New(5 * time.Minute))
	if rr := do(t, h, http.MethodDelete, "/api/v1/cuts", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("collection: got %d, want 405", rr.Code)
	}
	if rr := do(t, h, http.MethodPost, "/api/v1/cuts/x", idealBody); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("item: got %d, want 405", rr.Code)
	}
}

// --- /api/v1/health ---------------------------------------------------------

func TestHealth_EmptyStore(t *testing.T) {
	h, _ := newHandler(store.New(5 * time.Minute))
	rr := do(t, h, http.MethodGet, "/api/v1/health", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var resp map[string]interface{}
	decode(t, rr, &resp)

	if _, ok := resp["worst"]; ok {
		t.Errorf("worst: got %v, want absent", resp["worst"])
	}
	if resp["cut_count"].(float64) != 0 {
		t.Errorf("cut_count: got %v, want 0", resp["cut_count"])
	}
	if resp["catalog"] != "standard" {
		t.Errorf("catalog: got %v, want standard", resp["catalog"])
	}
	counts := resp["counts"].(map[string]interface{})
	if len(counts) != 5 {
		t.Errorf("counts: got %v, want all five grades", counts)
	}
}

func TestHealth_CountsAndWorst(t *testing.T) {
	st := store.New(5 * time.Minute)
	st.Put("a", "", types.CutEvaluation{Overall: types.Ideal})
	st.Put("b", "", types.CutEvaluation{Overall: types.VeryGood})
	st.Put("c", "", types.CutEvaluation{Overall: types.Ideal})
	h, _ := newHandler(st)

	rr := do(t, h, http.MethodGet, "/api/v1/health", "")
	var resp api.HealthResponse
	decode(t, rr, &resp)

	if resp.CutCount != 3 {
		t.Errorf("cut_count: got %d, want 3", resp.CutCount)
	}
	if resp.Counts[types.Ideal] != 2 || resp.Counts[types.VeryGood] != 1 || resp.Counts[types.Fail] != 0 {
		t.Errorf("counts: got %v", resp.Counts)
	}
	if resp.Worst == nil || *resp.Worst != types.VeryGood {
		t.Errorf("worst: got %v, want VG", resp.Worst)
	}
}

// --- /api/v1/catalog and /api/v1/snapshot -----------------------------------

func TestCatalog(t *testing.T) {
	h, _ := newHandler(store.New(5 * time.Minute))
	rr := do(t, h, http.MethodGet, "/api/v1/catalog", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var resp api.CatalogResponse
	decode(t, rr, &resp)

	if resp.Source != "standard" {
		t.Errorf("source: got %q", resp.Source)
	}
	rs, ok := resp.Attributes[types.CrownAngle]
	if !ok {
		t.Fatal("crown_angle missing")
	}
	if len(rs.Ideal) != 1 || rs.Ideal[0] != (types.Interval{Low: 33, High: 36}) {
		t.Errorf("crown_angle ideal: got %v, want [33, 36]", rs.Ideal)
	}
	if len(resp.Overlaps) != 0 {
		t.Errorf("overlaps: got %v, want none", resp.Overlaps)
	}
}

func TestSnapshot(t *testing.T) {
	st := store.New(5 * time.Minute)
	st.Put("b", "", types.CutEvaluation{Overall: types.Good})
	st.Put("a", "", types.CutEvaluation{Overall: types.Ideal})
	h, _ := newHandler(st)

	rr := do(t, h, http.MethodGet, "/api/v1/snapshot", "")
	var resp api.SnapshotResponse
	decode(t, rr, &resp)

	if len(resp.Cuts) != 2 || resp.Cuts[0].ID != "a" {
		t.Errorf("cuts: got %+v", resp.Cuts)
	}
	if _, err := time.Parse(time.RFC3339, resp.GeneratedAt); err != nil {
		t.Errorf("generated_at %q: %v", resp.GeneratedAt, err)
	}
}

func TestBodyTooLarge(t *testing.T) {
	h, _ := newHandler(store.New(5 * time.Minute))
	big := `{"label":"` + string(bytes.Repeat([]byte("x"), 70<<10)) + `","measurements":{}}`
	if rr := do(t, h, http.MethodPost, "/api/v1/evaluate", big); rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}
