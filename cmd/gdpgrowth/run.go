package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sekarsister/gdpgrowth/internal/export"
	"github.com/sekarsister/gdpgrowth/internal/growth"
	"github.com/sekarsister/gdpgrowth/internal/panel"
	"github.com/sekarsister/gdpgrowth/internal/parser"
	"github.com/sekarsister/gdpgrowth/internal/report"
	"github.com/sekarsister/gdpgrowth/internal/scenario"
	"github.com/sekarsister/gdpgrowth/internal/table"
)

// Output file names inside the output directory.
const (
	workbookFile      = "growth_rates.xlsx"
	panelFile         = "panel_plot.png"
	panelScenarioFile = "panel_plot_scenario.png"
	summaryFile       = "growth_summary.md"
)

type artifact struct {
	name string
	data []byte
}

func loadMetadata() (*scenario.Metadata, error) {
	if scenariosPath == "" {
		return scenario.Default()
	}
	return scenario.Load(scenariosPath)
}

func loadRates() (table.RawTable, table.GrowthTable, error) {
	raw, err := parser.New(logger).ParseFile(inputPath)
	if err != nil {
		return raw, table.GrowthTable{}, err
	}
	rates, err := growth.Compute(raw, years)
	if err != nil {
		return raw, table.GrowthTable{}, fmt.Errorf("growth rates: %w", err)
	}
	return raw, rates, nil
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	meta, err := loadMetadata()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Reading data...")
	raw, rates, err := loadRates()
	if err != nil {
		return err
	}
	logger.Debug("computed growth rates", zap.String("input", inputPath), zap.Int("years", years))

	// Everything is rendered in memory first so a failure leaves no partial output.
	fmt.Fprintln(out, "Creating Excel file...")
	wb, err := export.Workbook(rates)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	buf, err := wb.WriteToBuffer()
	wb.Close()
	if err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	artifacts := []artifact{{name: workbookFile, data: buf.Bytes()}}

	fmt.Fprintln(out, "Creating panel plots...")
	renderer := panel.New(meta, logger)
	for _, v := range []struct {
		name  string
		style panel.LabelStyle
	}{
		{panelFile, panel.Numerical},
		{panelScenarioFile, panel.Scenario},
	} {
		grid, err := renderer.Build(rates, v.style)
		if err != nil {
			return fmt.Errorf("build %s panels: %w", v.style, err)
		}
		img, err := grid.PNG(panel.DefaultDPI)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, artifact{name: v.name, data: img})
	}

	summaries, err := growth.Summarize(rates)
	if err != nil {
		return err
	}
	var md bytes.Buffer
	if err := report.Write(&md, raw, rates, summaries, years); err != nil {
		return err
	}
	artifacts = append(artifacts, artifact{name: summaryFile, data: md.Bytes()})

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := writeArtifacts(out, artifacts); err != nil {
		return err
	}
	fmt.Fprintln(out, "Done.")
	return nil
}

// writeArtifacts writes each file, removing the ones already written if any write fails.
func writeArtifacts(out io.Writer, artifacts []artifact) error {
	var written []string
	for _, a := range artifacts {
		path := filepath.Join(outputDir, a.name)
		if err := os.WriteFile(path, a.data, 0o644); err != nil {
			for _, p := range written {
				if rmErr := os.Remove(p); rmErr != nil {
					logger.Warn("cleanup failed", zap.String("path", p), zap.Error(rmErr))
				}
			}
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
		logger.Debug("wrote output", zap.String("path", path), zap.Int("bytes", len(a.data)))
		fmt.Fprintf(out, "  Saved %s\n", path)
	}
	return nil
}
