package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/pkg/types"
)

// resetFlags returns every flag in the command tree to its default so one
// test's flags do not leak into the next.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		require.NoError(t, f.Value.Set(f.DefValue), f.Name)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(t, rootCmd)
	t.Cleanup(func() { resetFlags(t, rootCmd) })
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const idealYAML = `crown_height: 0.15
crown_table: 0.56
crown_ratio: 0.55
pavilion_height: 0.431
pavilion_ratio: 0.78
girdle_thickness: 0.03
`

func TestEvaluate_TextFromFile(t *testing.T) {
	path := writeFile(t, "cut.yaml", idealYAML)
	out := run(t, "evaluate", path, "--format", "text", "--no-color")

	assert.Contains(t, out, "34.3°")
	assert.True(t, strings.HasSuffix(out, "Final Cut Grade: Idx\n"), out)
}

func TestEvaluate_FlagOverridesFile(t *testing.T) {
	path := writeFile(t, "cut.yaml", idealYAML)
	out := run(t, "evaluate", path, "--format", "json", "--girdle-thickness", "0.09")

	var r struct {
		Evaluation types.CutEvaluation `json:"evaluation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, types.Fail, r.Evaluation.Overall)
	assert.Equal(t, []types.Attribute{types.GirdleThickness}, r.Evaluation.Limiting)
}

func TestEvaluate_FlagsDoNotCarryOver(t *testing.T) {
	path := writeFile(t, "cut.yaml", idealYAML)
	run(t, "evaluate", path, "--format", "json", "--girdle-thickness", "0.09")

	out := run(t, "evaluate", path, "--no-color")
	assert.True(t, strings.HasSuffix(out, "Final Cut Grade: Idx\n"), out)
}

func TestCatalog_YAMLIsLoadable(t *testing.T) {
	out := run(t, "catalog", "--format", "yaml")

	path := writeFile(t, "tables.yaml", out)
	cat, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Standard().Tables(), cat.Tables())
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "grader dev\n", run(t, "version"))
}
