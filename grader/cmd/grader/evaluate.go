package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cutgrade/cutgrade/grader/internal/input"
	"github.com/cutgrade/cutgrade/grader/internal/render"
	"github.com/cutgrade/cutgrade/pkg/compute"
	"github.com/cutgrade/cutgrade/pkg/types"
)

var showHints bool

// measurementFlags holds the raw text of each --<measurement> flag.
var measurementFlags = map[string]*string{}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [file|-]",
	Short: "Grade one set of measurements",
	Long: `Grade one set of measurements read from a YAML or JSON file ("-" for stdin).
Measurement flags override the file, e.g.

  grader evaluate cut.yaml --pavilion-height 0.43

Every measurement is a fraction of the girdle diameter. Absent measurements
are graded as 0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := gatherMeasurements(cmd, args)
		if err != nil {
			return err
		}
		return writeEvaluation(cmd.OutOrStdout(), compute.Evaluate(cat, m))
	},
}

func init() {
	f := evaluateCmd.Flags()
	for _, name := range types.MeasurementNames() {
		flagName := strings.ReplaceAll(name, "_", "-")
		measurementFlags[name] = f.String(flagName, "", fmt.Sprintf("%s as a fraction of diameter", strings.ReplaceAll(name, "_", " ")))
	}
	f.BoolVar(&showHints, "hints", false, "explain how far each attribute is from Ideal")
}

// gatherMeasurements loads the file argument, if any, and applies the
// measurement flags on top.
func gatherMeasurements(cmd *cobra.Command, args []string) (types.Measurements, error) {
	var base types.Measurements
	if len(args) == 1 {
		var err error
		if base, err = input.Load(args[0]); err != nil {
			return types.Measurements{}, err
		}
	}

	flags := types.ReadingMap{}
	for name, v := range measurementFlags {
		if cmd.Flags().Changed(strings.ReplaceAll(name, "_", "-")) {
			flags[name] = *v
		}
	}
	return input.Override(base, types.MeasurementsFrom(flags)), nil
}

func writeEvaluation(w io.Writer, ev types.CutEvaluation) error {
	switch cfg.Display.Format {
	case "json":
		return render.JSON(w, report(ev))
	case "yaml":
		return render.YAML(w, report(ev))
	default:
		return render.NewText(w, render.Options{
			Precision: cfg.Display.Precision,
			Color:     colorEnabled(),
			Hints:     showHints,
		}).Render(cat, ev)
	}
}

func report(ev types.CutEvaluation) render.Report {
	r := render.Report{Catalog: cat.Source(), Evaluation: ev}
	if showHints {
		r.Hints = compute.Hints(cat, ev)
	}
	return r
}
