package metrics

import (
	"log/slog"
	"net/http"
	"sort"
	"sync"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/cutgrade/cutgrade/pkg/types"
)

const namespace = "cutgrade"

type attrKey struct {
	attr  types.Attribute
	grade types.Grade
}

type gauge struct {
	name, help string
	fn         func() float64
}

// Registry accumulates evaluation counters. It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	overall map[types.Grade]uint64
	attrs   map[attrKey]uint64
	gauges  []gauge
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		overall: make(map[types.Grade]uint64),
		attrs:   make(map[attrKey]uint64),
	}
}

// Observe counts one evaluation.
func (r *Registry) Observe(ev types.CutEvaluation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overall[ev.Overall]++
	for _, ag := range ev.Attributes {
		r.attrs[attrKey{ag.Attribute, ag.Grade}]++
	}
}

// Gauge registers fn to be sampled on every scrape as cutgrade_<name>.
func (r *Registry) Gauge(name, help string, fn func() float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gauges = append(r.gauges, gauge{name: namespace + "_" + name, help: help, fn: fn})
}

// Families returns the current value of every series, counters first.
func (r *Registry) Families() []*dto.MetricFamily {
	r.mu.Lock()
	defer r.mu.Unlock()

	evals := &dto.MetricFamily{
		Name: proto.String(namespace + "_evaluations_total"),
		Help: proto.String("Cut evaluations performed, by overall grade."),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, g := range types.Grades() {
		evals.Metric = append(evals.Metric, counter(float64(r.overall[g]), label("overall", g.String())))
	}

	attrs := &dto.MetricFamily{
		Name: proto.String(namespace + "_attribute_grades_total"),
		Help: proto.String("Graded attributes, by attribute and grade."),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, a := range types.Attributes() {
		for _, g := range types.Grades() {
			attrs.Metric = append(attrs.Metric, counter(
				float64(r.attrs[attrKey{a, g}]),
				label("attribute", string(a)),
				label("grade", g.String()),
			))
		}
	}

	out := []*dto.MetricFamily{evals, attrs}

	gauges := make([]gauge, len(r.gauges))
	copy(gauges, r.gauges)
	sort.Slice(gauges, func(i, j int) bool { return gauges[i].name < gauges[j].name })
	for _, g := range gauges {
		out = append(out, &dto.MetricFamily{
			Name:   proto.String(g.name),
			Help:   proto.String(g.help),
			Type:   dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{Gauge: &dto.Gauge{Value: proto.Float64(g.fn())}}},
		})
	}
	return out
}

// ServeHTTP writes Families in the Prometheus text format.
func (r *Registry) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
	for _, mf := range r.Families() {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			slog.Warn("metrics: write family", "family", mf.GetName(), "err", err)
			return
		}
	}
}

func counter(v float64, labels ...*dto.LabelPair) *dto.Metric {
	return &dto.Metric{
		Label:   labels,
		Counter: &dto.Counter{Value: proto.Float64(v)},
	}
}

func label(name, value string) *dto.LabelPair {
	return &dto.LabelPair{Name: proto.String(name), Value: proto.String(value)}
}
