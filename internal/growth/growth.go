// Package growth converts per-capita GDP levels into average annual growth rates.
package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/sekarsister/gdpgrowth/internal/table"
)

// DefaultYears is the projection horizon of the figure data.
const DefaultYears = 80

// ErrInvalidHorizon indicates a non-positive year count.
var ErrInvalidHorizon = errors.New("horizon must be a positive number of years")

// BaselineError reports a baseline cell that cannot anchor a growth rate.
type BaselineError struct {
	Group    string
	Baseline float64
}

func (e *BaselineError) Error() string {
	return fmt.Sprintf("group %q: baseline %v must be positive and finite", e.Group, e.Baseline)
}

// DomainError reports a cell whose growth rate is not a real number.
type DomainError struct {
	Group   string
	Growth  string
	Warming string
	Ratio   float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("group %q, %s / %s: ratio %v has no real growth rate", e.Group, e.Growth, e.Warming, e.Ratio)
}

// Compute returns, for each cell, the constant annual rate that compounds the group's
// baseline into the cell value over the given number of years.
func Compute(raw table.RawTable, years int) (table.GrowthTable, error) {
	var rates table.GrowthTable
	if years <= 0 {
		return rates, ErrInvalidHorizon
	}
	exp := 1.0 / float64(years)

	for i := range raw {
		baseline := raw.Baseline(i)
		if !(baseline > 0) || math.IsInf(baseline, 0) {
			return table.GrowthTable{}, &BaselineError{Group: table.GroupLabels[i], Baseline: baseline}
		}
		for j := range raw[i] {
			for k, v := range raw[i][j] {
				ratio := v / baseline
				rate := math.Pow(ratio, exp) - 1
				if math.IsNaN(rate) || math.IsInf(rate, 0) {
					return table.GrowthTable{}, &DomainError{
						Group:   table.GroupLabels[i],
						Growth:  table.GrowthLabels[j],
						Warming: table.WarmingLabels[k],
						Ratio:   ratio,
					}
				}
				rates[i][j][k] = rate
			}
		}
	}
	return rates, nil
}

// Percent scales fractional rates to percent per year.
func Percent(rates table.GrowthTable) table.GrowthTable {
	for i := range rates {
		for j := range rates[i] {
			for k := range rates[i][j] {
				rates[i][j][k] *= 100
			}
		}
	}
	return rates
}
