package growth

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/sekarsister/gdpgrowth/internal/table"
)

// Summary describes the plotted scenarios of one income group, in percent per year.
type Summary struct {
	Group  string
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	// Spread is the growth rate lost between the lowest and highest warming level,
	// averaged over SSP1-5.
	Spread float64
}

// Summarize computes per-group statistics over SSP1-5 and the four nonzero warming levels.
func Summarize(rates table.GrowthTable) ([]Summary, error) {
	pct := Percent(rates)
	out := make([]Summary, 0, table.NumGroups)

	for i := range pct {
		var data stats.Float64Data
		var losses stats.Float64Data
		for j := 1; j < table.NumGrowth; j++ {
			row := pct[i][j]
			data = append(data, row[1:]...)
			losses = append(losses, row[1]-row[table.NumWarming-1])
		}

		s := Summary{Group: table.GroupLabels[i]}
		var err error
		if s.Min, err = data.Min(); err != nil {
			return nil, fmt.Errorf("summarize %s: %w", s.Group, err)
		}
		if s.Max, err = data.Max(); err != nil {
			return nil, fmt.Errorf("summarize %s: %w", s.Group, err)
		}
		if s.Mean, err = data.Mean(); err != nil {
			return nil, fmt.Errorf("summarize %s: %w", s.Group, err)
		}
		if s.Median, err = data.Median(); err != nil {
			return nil, fmt.Errorf("summarize %s: %w", s.Group, err)
		}
		if s.Spread, err = losses.Mean(); err != nil {
			return nil, fmt.Errorf("summarize %s: %w", s.Group, err)
		}
		out = append(out, s)
	}
	return out, nil
}
