package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cutgrade/cutgrade/grader/internal/input"
	"github.com/cutgrade/cutgrade/pkg/compute"
	"github.com/cutgrade/cutgrade/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-grade a measurements file every time it is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		m, err := input.Load(path)
		if err != nil {
			return err
		}
		if err := writeEvaluation(out, compute.Evaluate(cat, m)); err != nil {
			return err
		}

		return input.Watch(cmd.Context(), path, cfg.Watch.Debounce, func(m types.Measurements) {
			fmt.Fprintln(out)
			if err := writeEvaluation(out, compute.Evaluate(cat, m)); err != nil {
				slog.Error("watch: write evaluation", "err", err)
			}
		})
	},
}
