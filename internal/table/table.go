// Package table holds the fixed-shape GDP tables and their axis labels.
package table

// Table extents.
const (
	NumGroups  = 4
	NumGrowth  = 6
	NumWarming = 5
)

// Income group indices along axis 0.
const (
	AllCountries = iota
	HighIncome
	MiddleIncome
	LowIncome
)

// Baseline row and column: no growth, no warming.
const (
	NoGrowth  = 0
	NoWarming = 0
)

// GroupLabels are the section headers of the input file, in axis order.
var GroupLabels = [NumGroups]string{
	"All-country average",
	"High-income group",
	"Middle-income group",
	"Low-income group",
}

// GrowthLabels are the row labels of every group section.
var GrowthLabels = [NumGrowth]string{"No growth", "SSP1", "SSP2", "SSP3", "SSP4", "SSP5"}

// WarmingLabels are the column labels of every group section.
var WarmingLabels = [NumWarming]string{"No warming", "2.6 W m-2", "4.5 W m-2", "7.0 W m-2", "8.5 W m-2"}

// Layer is one income group: growth scenarios by warming scenarios.
type Layer [NumGrowth][NumWarming]float64

// RawTable holds per-capita GDP levels indexed by (group, growth, warming).
type RawTable [NumGroups]Layer

// GrowthTable holds fractional average annual growth rates with the same indexing as RawTable.
type GrowthTable [NumGroups]Layer

// Baseline returns the no-growth, no-warming cell of group i.
func (t RawTable) Baseline(i int) float64 {
	return t[i][NoGrowth][NoWarming]
}

// GroupIndex returns the axis position of a group label.
func GroupIndex(label string) (int, bool) {
	return indexOf(GroupLabels[:], label)
}

// GrowthIndex returns the axis position of a growth scenario label.
func GrowthIndex(label string) (int, bool) {
	return indexOf(GrowthLabels[:], label)
}

func indexOf(labels []string, label string) (int, bool) {
	for i, l := range labels {
		if l == label {
			return i, true
		}
	}
	return -1, false
}
