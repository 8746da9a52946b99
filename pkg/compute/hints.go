package compute

import (
	"fmt"
	"math"
	"sort"

	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/pkg/types"
)

// Hint levels, most severe first.
const (
	LevelCritical = "critical"
	LevelWarning  = "warning"
	LevelInfo     = "info"
	LevelOK       = "ok"
)

var levelRank = map[string]int{LevelCritical: 0, LevelWarning: 1, LevelInfo: 2, LevelOK: 3}

// Hint is one human-readable note about a graded attribute.
type Hint struct {
	// Key is a stable identifier, the attribute name or "all_ideal".
	Key string `json:"key"`
	// Level is "ok" | "info" | "warning" | "critical".
	Level  string `json:"level"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	// Target is the nearest Ideal interval, when one exists.
	Target *types.Interval `json:"target,omitempty"`
	// Delta is the signed change that would reach Target (positive means
	// increase). Zero when the value is already Ideal.
	Delta float64 `json:"delta"`
}

func levelFor(g types.Grade) string {
	switch g {
	case types.Ideal:
		return LevelOK
	case types.Excellent:
		return LevelInfo
	case types.VeryGood, types.Good:
		return LevelWarning
	default:
		return LevelCritical
	}
}

// Hints returns one hint per attribute that is not Ideal, most severe
// first. When everything is Ideal it returns a single "all_ideal" hint.
func Hints(cat *catalog.Catalog, ev types.CutEvaluation) []Hint {
	var hints []Hint

	for _, ag := range ev.Attributes {
		if ag.Grade == types.Ideal {
			continue
		}
		rs, ok := cat.Lookup(ag.Attribute)
		if !ok {
			continue
		}

		h := Hint{
			Key:   string(ag.Attribute),
			Level: levelFor(ag.Grade),
			Title: fmt.Sprintf("%s %s", ag.Attribute.Label(), ag.Grade.Name()),
		}
		sym := ag.Unit.Symbol()

		target, delta, found := nearest(ag.Value, rs.Ideal)
		if !found {
			h.Detail = fmt.Sprintf("%s is %.2f%s and this catalog defines no Ideal band for it.",
				ag.Attribute.Label(), ag.Value, sym)
			hints = append(hints, h)
			continue
		}

		h.Target = &target
		h.Delta = delta
		direction := "raise"
		if delta < 0 {
			direction = "lower"
		}
		h.Detail = fmt.Sprintf("%s is %.2f%s, graded %s. The Ideal band is %s; %s it by %.2f%s to reach it.",
			ag.Attribute.Label(), ag.Value, sym, ag.Grade.Name(), target, direction, math.Abs(delta), sym)
		hints = append(hints, h)
	}

	if len(hints) == 0 {
		return []Hint{{
			Key:    "all_ideal",
			Level:  LevelOK,
			Title:  "All Ideal",
			Detail: "Every graded proportion sits inside its Ideal band.",
		}}
	}

	sort.SliceStable(hints, func(i, j int) bool {
		return levelRank[hints[i].Level] < levelRank[hints[j].Level]
	})
	return hints
}

// nearest returns the interval in ivs closest to v and the signed distance
// from v to it.
func nearest(v float64, ivs []types.Interval) (types.Interval, float64, bool) {
	var (
		best     types.Interval
		bestDist = math.Inf(1)
		bestDel  float64
		found    bool
	)
	for _, iv := range ivs {
		var delta float64
		switch {
		case v < iv.Low:
			delta = iv.Low - v
		case v > iv.High:
			delta = iv.High - v
		}
		if d := math.Abs(delta); d < bestDist {
			best, bestDist, bestDel, found = iv, d, delta, true
		}
	}
	return best, bestDel, found
}
