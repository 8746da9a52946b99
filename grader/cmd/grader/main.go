package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cutgrade/cutgrade/grader/internal/config"
	"github.com/cutgrade/cutgrade/pkg/catalog"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath  string
	catalogPath string
	format      string
	noColor     bool
	verbose     bool

	// populated by the root PersistentPreRunE
	cfg *config.Config
	cat *catalog.Catalog
)

var rootCmd = &cobra.Command{
	Use:           "grader",
	Short:         "Grade a gemstone cut from its proportions",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			cfg.Display.Format = format
		}
		if noColor {
			cfg.Display.Color = "never"
		}
		if catalogPath != "" {
			cfg.Catalog.File = catalogPath
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config: %w", err)
		}

		cat, err = catalog.Load(cfg.Catalog.File)
		if err != nil {
			return err
		}
		slog.Debug("grader ready", "config", configPath, "catalog", cat.Source(), "format", cfg.Display.Format)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the grader version",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "grader", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "path to grader.yaml")
	pf.StringVar(&catalogPath, "catalog", "", "range-table override file (replaces catalog.file)")
	pf.StringVarP(&format, "format", "o", config.DefaultFormat, "output format: text|json|yaml")
	pf.BoolVar(&noColor, "no-color", false, "disable coloured output")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log debug detail to stderr")

	rootCmd.AddCommand(evaluateCmd, watchCmd, catalogCmd, versionCmd)
}

// colorEnabled resolves display.color. "auto" defers to fatih/color's own
// terminal detection.
func colorEnabled() bool {
	switch cfg.Display.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "grader:", err)
		cancel()
		os.Exit(1)
	}
}
