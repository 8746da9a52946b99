package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInterval_ContainsIsInclusive(t *testing.T) {
	iv := Interval{Low: 33, High: 36}
	assert.True(t, iv.Contains(33))
	assert.True(t, iv.Contains(36))
	assert.True(t, iv.Contains(34.3))
	assert.False(t, iv.Contains(32.999))
	assert.False(t, iv.Contains(36.001))
	assert.False(t, iv.Contains(math.NaN()))
}

func TestInterval_Overlaps(t *testing.T) {
	a := Interval{Low: 58, High: 58.49}
	assert.True(t, a.Overlaps(Interval{Low: 58.49, High: 60}), "shared endpoint")
	assert.False(t, a.Overlaps(Interval{Low: 58.5, High: 62.5}))
}

func TestInterval_Validate(t *testing.T) {
	assert.NoError(t, Interval{Low: 1, High: 1}.Validate())
	assert.ErrorIs(t, Interval{Low: 2, High: 1}.Validate(), ErrInvalidInterval)
	assert.ErrorIs(t, Interval{Low: math.NaN(), High: 1}.Validate(), ErrInvalidInterval)
	assert.ErrorIs(t, Interval{Low: 0, High: math.Inf(1)}.Validate(), ErrInvalidInterval)
}

func TestInterval_Encoding(t *testing.T) {
	b, err := json.Marshal(Interval{Low: 40.5, High: 41.3})
	require.NoError(t, err)
	assert.Equal(t, "[40.5,41.3]", string(b))

	var iv Interval
	require.NoError(t, json.Unmarshal([]byte("[1.6, 1.99]"), &iv))
	assert.Equal(t, Interval{Low: 1.6, High: 1.99}, iv)
	assert.Error(t, json.Unmarshal([]byte("[1, 2, 3]"), &iv))

	var rs RangeSet
	require.NoError(t, yaml.Unmarshal([]byte(`
ideal: [[13, 16]]
excellent: [[12, 12.99], [16.01, 16.5]]
`), &rs))
	assert.Equal(t, []Interval{{13, 16}}, rs.Ideal)
	assert.Len(t, rs.Excellent, 2)
	assert.Empty(t, rs.Good)

	out, err := yaml.Marshal(rs)
	require.NoError(t, err)
	assert.Contains(t, string(out), "- [13, 16]")
}

func TestRangeSet_TierAndClone(t *testing.T) {
	rs := RangeSet{
		Ideal:    []Interval{{1, 2}},
		VeryGood: []Interval{{3, 4}},
	}
	assert.Equal(t, rs.Ideal, rs.Tier(Ideal))
	assert.Nil(t, rs.Tier(Excellent))
	assert.Nil(t, rs.Tier(Fail))

	c := rs.Clone()
	c.Ideal[0].Low = 99
	assert.Equal(t, 1.0, rs.Ideal[0].Low)

	bad := RangeSet{Good: []Interval{{5, 4}}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Good[0]")
}
