package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cutgrade/cutgrade/grader/internal/render"
	"github.com/cutgrade/cutgrade/pkg/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the active range tables",
	Long: `Print the range tables grades are assigned from: the standard tables,
or the standard tables with --catalog overrides applied. The yaml format
writes a file that --catalog accepts back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch cfg.Display.Format {
		case "yaml":
			data, err := catalog.Marshal(cat)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Source   string            `json:"source"`
				Tables   any               `json:"attributes"`
				Overlaps []catalog.Overlap `json:"overlaps,omitempty"`
			}{cat.Source(), cat.Tables(), cat.Overlaps()})
		default:
			return render.NewText(w, render.Options{Color: colorEnabled()}).Catalog(cat)
		}
	},
}
