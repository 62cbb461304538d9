package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sekarsister/gdpgrowth/internal/growth"
	"github.com/sekarsister/gdpgrowth/internal/table"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the parsed GDP and growth-rate tables",
		Long: `Prints, for every income group, the per-capita GDP table read from the
input file and the derived growth rates in percent per year.`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	raw, rates, err := loadRates()
	if err != nil {
		return err
	}
	summaries, err := growth.Summarize(rates)
	if err != nil {
		return err
	}
	pct := growth.Percent(rates)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Data shape: (%d, %d, %d)\n", table.NumGroups, table.NumGrowth, table.NumWarming)
	for i, label := range table.GroupLabels {
		fmt.Fprintf(out, "\n%s (per-capita GDP):\n", label)
		fmt.Fprintln(out, renderLayer(raw[i], "%.1f"))
		fmt.Fprintf(out, "%s (percent annual growth rates):\n", label)
		fmt.Fprintln(out, renderLayer(pct[i], "%.3f"))

		s := summaries[i]
		fmt.Fprintf(out, "SSP1-5 range %.2f to %.2f %%/yr, mean %.2f, warming loss %.2f\n",
			s.Min, s.Max, s.Mean, s.Spread)
	}
	return nil
}

func renderLayer(layer table.Layer, format string) string {
	rows := make([][]string, 0, table.NumGrowth)
	for j, g := range table.GrowthLabels {
		row := []string{g}
		for _, v := range layer[j] {
			row = append(row, fmt.Sprintf(format, v))
		}
		rows = append(rows, row)
	}

	headers := append([]string{""}, table.WarmingLabels[:]...)
	return ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}
