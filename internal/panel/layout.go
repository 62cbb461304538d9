package panel

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"

	"github.com/sekarsister/gdpgrowth/internal/scenario"
	"github.com/sekarsister/gdpgrowth/internal/table"
)

// Fixed axes, chosen to fit the published data range.
const (
	yMin = -1.0
	yMax = 5.5

	xMaxWarming = 6.0 // just past the highest warming level
	xMaxGrowth  = 3.0 // just past the highest baseline growth rate

	warmingLabelX = xMaxWarming + 0.1
	growthLabelX  = xMaxGrowth + 0.05

	headerDrop = 0.15
	headerLift = 0.35
)

var (
	yTicks        = []float64{-1, 0, 1, 2, 3, 4, 5}
	warmingXTicks = []float64{0, 1, 2, 3, 4, 5, 6, 7}
	growthXTicks  = []float64{0, 1, 2, 3}

	fitGrey = color.RGBA{R: 211, G: 211, B: 211, A: 255}
)

// Row selects the x axis of a panel.
type Row int

const (
	// WarmingRow plots growth rate against global mean warming.
	WarmingRow Row = iota
	// BaselineRow plots growth rate against the scenario's baseline growth rate.
	BaselineRow
)

// column is one income group shown in the grid.
type column struct {
	group int
	title string
}

var columns = [2]column{
	{group: table.LowIncome, title: "Low-income countries"},
	{group: table.HighIncome, title: "High-income countries"},
}

// point is one (growth scenario, warming level) pair.
type point struct {
	X, Y    float64
	Growth  int
	Warming int
}

type fitLine struct {
	Intercept, Slope float64
	X0, X1           float64
	Color            color.Color
}

func (f fitLine) at(x float64) float64 { return f.Intercept + f.Slope*x }

type endLabel struct {
	Y     float64
	Text  string
	Color color.Color
}

// layout is everything drawn in one panel, in data coordinates.
type layout struct {
	Title  string
	XLabel string
	XMax   float64
	XTicks []float64

	Points    []point
	Fits      []fitLine
	LabelX    float64
	FontSize  float64 // points
	Labels    []endLabel
	Header    endLabel
	HeaderTop bool // header hangs below Header.Y instead of sitting on it
	Highlight point
	Legend    bool
}

// fit returns the least-squares line through (xs, ys) drawn from 0 to xEnd.
func fit(xs, ys []float64, xEnd float64, c color.Color) fitLine {
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return fitLine{Intercept: alpha, Slope: beta, X0: 0, X1: xEnd, Color: c}
}

// buildLayout projects one panel from a table already scaled to percent.
func buildLayout(pct table.GrowthTable, meta *scenario.Metadata, style LabelStyle, col column, row Row) layout {
	g := pct[col.group]
	rates := meta.GrowthRates()
	levels := meta.WarmingLevels()
	cg, cw := meta.Central()

	// Drop the no-growth row and no-warming column.
	cell := func(i, k int) float64 { return g[i+1][k+1] }

	var l layout
	switch row {
	case WarmingRow:
		l.Title = col.title
		l.XLabel = "Global mean warming (°C)"
		l.XMax = xMaxWarming + 1.0
		l.XTicks = warmingXTicks
		l.LabelX = warmingLabelX
		l.FontSize = 9
		l.Legend = col.group == columns[0].group
		l.Highlight = point{X: levels[cw], Y: cell(cg, cw), Growth: cg, Warming: cw}

		for i := 0; i < scenario.NumGrowth; i++ {
			ys := make([]float64, scenario.NumWarming)
			for k := range ys {
				ys[k] = cell(i, k)
				l.Points = append(l.Points, point{X: levels[k], Y: ys[k], Growth: i, Warming: k})
			}
			f := fit(levels, ys, xMaxWarming, meta.Color(i))
			l.Fits = append(l.Fits, f)
			l.Labels = append(l.Labels, endLabel{
				Y:     f.at(xMaxWarming),
				Text:  style.growthLabel(meta.Growth(i)),
				Color: meta.Color(i),
			})
		}
		spreadLabels(l.Labels, MinLabelGap)
		l.Header = endLabel{Y: yMax - headerDrop, Text: style.growthHeader(), Color: color.Black}
		l.HeaderTop = true

	case BaselineRow:
		l.XLabel = "Baseline growth rate (%/year)"
		l.XMax = xMaxGrowth + 1.2
		l.XTicks = growthXTicks
		l.LabelX = growthLabelX
		l.FontSize = 8
		l.Highlight = point{X: rates[cg], Y: cell(cg, cw), Growth: cg, Warming: cw}

		for k := 0; k < scenario.NumWarming; k++ {
			ys := make([]float64, scenario.NumGrowth)
			for i := range ys {
				ys[i] = cell(i, k)
			}
			f := fit(rates, ys, xMaxGrowth, fitGrey)
			l.Fits = append(l.Fits, f)
			l.Labels = append(l.Labels, endLabel{
				Y:     f.at(xMaxGrowth),
				Text:  style.warmingLabel(meta.Warming(k)),
				Color: color.Black,
			})
		}
		for i := 0; i < scenario.NumGrowth; i++ {
			for k := 0; k < scenario.NumWarming; k++ {
				l.Points = append(l.Points, point{X: rates[i], Y: cell(i, k), Growth: i, Warming: k})
			}
		}
		spreadLabels(l.Labels, MinLabelGap)
		top := l.Labels[len(l.Labels)-1].Y
		l.Header = endLabel{Y: top + headerLift, Text: style.warmingHeader(), Color: color.Black}
	}
	return l
}

// LabelStyle selects what the end-of-line labels show.
type LabelStyle int

const (
	// Numerical labels show baseline growth rates and warming levels.
	Numerical LabelStyle = iota
	// Scenario labels show SSP and RCP names.
	Scenario
)

func (s LabelStyle) String() string {
	switch s {
	case Numerical:
		return "numerical"
	case Scenario:
		return "scenario"
	default:
		return fmt.Sprintf("LabelStyle(%d)", int(s))
	}
}

func (s LabelStyle) growthLabel(g scenario.Growth) string {
	if s == Scenario {
		return g.Name
	}
	return fmt.Sprintf("%.2f", g.Rate)
}

func (s LabelStyle) warmingLabel(w scenario.Warming) string {
	if s == Scenario {
		return w.Name
	}
	return fmt.Sprintf("%.2f", w.Level)
}

func (s LabelStyle) warmingName(w scenario.Warming) string {
	if s == Scenario {
		return w.Name
	}
	return w.Forcing
}

func (s LabelStyle) growthHeader() string {
	if s == Scenario {
		return "SSP"
	}
	return "%/yr"
}

func (s LabelStyle) warmingHeader() string {
	if s == Scenario {
		return "RCP"
	}
	return "°C/century"
}
