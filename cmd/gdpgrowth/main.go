// Command gdpgrowth turns the per-capita GDP figure data into growth-rate tables and panel plots.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sekarsister/gdpgrowth/internal/growth"
)

const (
	defaultInput     = "data/input/figure_data.txt"
	defaultOutputDir = "data/output"
)

var (
	inputPath     string
	outputDir     string
	years         int
	scenariosPath string
	verbose       bool

	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gdpgrowth",
		Short: "Growth-rate tables and panel plots from per-capita GDP projections",
		Long: `gdpgrowth reads per-capita GDP projections for four income groups under
six growth and five warming scenarios, converts them into average annual growth
rates, and writes an xlsx workbook, two 2x2 panel plots and a markdown summary.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: run,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&inputPath, "input", "i", defaultInput, "Figure data file")
	flags.IntVar(&years, "years", growth.DefaultYears, "Projection horizon in years")
	flags.StringVar(&scenariosPath, "scenarios", "", "Scenario metadata YAML (default: built-in)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", defaultOutputDir, "Directory for generated files")

	rootCmd.AddCommand(newSummaryCmd())
	return rootCmd
}

func initLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}
