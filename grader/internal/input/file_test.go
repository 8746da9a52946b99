package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutgrade/cutgrade/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "cut.yaml", `
crown_height: 0.15
crown_table: 0.56
crown_ratio: "0.55"
pavilion_height: 0.431
pavilion_ratio: 0.78
girdle_thickness: 0.03
`)
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.Some(0.15), m.CrownHeight)
	assert.Equal(t, types.Some(0.55), m.CrownRatio)
	assert.Equal(t, types.Some(0.03), m.GirdleThickness)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "cut.json", `{"crown_height": 0.14, "pavilion_height": 0.43, "girdle_thickness": null}`)
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.Some(0.14), m.CrownHeight)
	assert.Equal(t, types.Some(0.43), m.PavilionHeight)
	assert.False(t, m.GirdleThickness.Valid)
	assert.False(t, m.CrownTable.Valid)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "crown_height: [0.15\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestDecode_EmptyDocument(t *testing.T) {
	m, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, m.Empty())
}

func TestDecode_NonNumericBecomesAbsent(t *testing.T) {
	m, err := Decode(strings.NewReader("crown_height: tall\ncrown_table: 0.56\n"))
	require.NoError(t, err)
	assert.False(t, m.CrownHeight.Valid)
	assert.Equal(t, types.Some(0.56), m.CrownTable)
}

func TestOverride(t *testing.T) {
	base := types.Measurements{
		CrownHeight: types.Some(0.15),
		CrownTable:  types.Some(0.56),
	}
	over := types.Measurements{
		CrownTable:     types.Some(0.58),
		PavilionHeight: types.Some(0.43),
	}
	got := Override(base, over)
	assert.Equal(t, types.Some(0.15), got.CrownHeight)
	assert.Equal(t, types.Some(0.58), got.CrownTable)
	assert.Equal(t, types.Some(0.43), got.PavilionHeight)
	assert.False(t, got.GirdleThickness.Valid)
}
