// Package report renders a markdown summary of the growth-rate tables.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sekarsister/gdpgrowth/internal/growth"
	"github.com/sekarsister/gdpgrowth/internal/table"
)

// Write renders the report for a run with the given horizon.
func Write(w io.Writer, raw table.RawTable, rates table.GrowthTable, summaries []growth.Summary, years int) error {
	bw := bufio.NewWriter(w)
	pct := growth.Percent(rates)

	fmt.Fprintf(bw, "# Per-capita GDP growth under warming scenarios\n\n")
	fmt.Fprintf(bw, "Average annual growth rates (%%/yr) over a %d-year horizon, relative to the\n", years)
	fmt.Fprintf(bw, "no-growth, no-warming baseline of each income group.\n\n")

	fmt.Fprintf(bw, "## Summary\n\n")
	fmt.Fprintf(bw, "| Income group | Baseline GDP | Min | Median | Mean | Max | Warming loss |\n")
	fmt.Fprintf(bw, "|---|---|---|---|---|---|---|\n")
	for i, s := range summaries {
		fmt.Fprintf(bw, "| %s | %s | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
			s.Group, formatNumber(raw.Baseline(i)), s.Min, s.Median, s.Mean, s.Max, s.Spread)
	}
	fmt.Fprintf(bw, "\nWarming loss is the mean drop in growth rate from %s to %s across SSP1-5.\n",
		table.WarmingLabels[1], table.WarmingLabels[table.NumWarming-1])

	for i, label := range table.GroupLabels {
		fmt.Fprintf(bw, "\n## %s\n\n", label)
		fmt.Fprintf(bw, "| | %s |\n", strings.Join(table.WarmingLabels[:], " | "))
		fmt.Fprintf(bw, "|---%s|\n", strings.Repeat("|---", table.NumWarming))
		for j, g := range table.GrowthLabels {
			cells := make([]string, table.NumWarming)
			for k, v := range pct[i][j] {
				cells[k] = fmt.Sprintf("%.3f", v)
			}
			fmt.Fprintf(bw, "| %s | %s |\n", g, strings.Join(cells, " | "))
		}
	}
	return bw.Flush()
}

func formatNumber(num float64) string {
	if num >= 1000000 {
		return fmt.Sprintf("%.2fM", num/1000000)
	} else if num >= 1000 {
		return fmt.Sprintf("%.1fK", num/1000)
	}
	return fmt.Sprintf("%.0f", num)
}
