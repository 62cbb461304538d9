// Package panel draws the 2x2 grid of growth-rate scatter panels: low- and high-income
// columns, warming and baseline-growth rows.
package panel

import (
	"bytes"
	"fmt"
	"image/color"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sekarsister/gdpgrowth/internal/growth"
	"github.com/sekarsister/gdpgrowth/internal/scenario"
	"github.com/sekarsister/gdpgrowth/internal/table"
)

// DefaultDPI is the resolution of the saved images.
const DefaultDPI = 150

const (
	figureWidth  = 10 * vg.Inch
	figureHeight = 8 * vg.Inch

	markerRadius    = 4   // points
	highlightRadius = 7.5 // points
)

// Renderer builds panel grids from growth-rate tables.
type Renderer struct {
	meta   *scenario.Metadata
	logger *zap.Logger
}

// New creates a Renderer drawing with the given scenario metadata.
func New(meta *scenario.Metadata, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{meta: meta, logger: logger}
}

// Grid is a rendered 2x2 panel figure, indexed [row][column].
type Grid struct {
	Plots [2][2]*plot.Plot

	layouts [2][2]layout
}

// Build lays out and draws all four panels. rates holds fractional growth rates.
func (r *Renderer) Build(rates table.GrowthTable, style LabelStyle) (*Grid, error) {
	pct := growth.Percent(rates)

	var g Grid
	for c, col := range columns {
		for _, row := range []Row{WarmingRow, BaselineRow} {
			l := buildLayout(pct, r.meta, style, col, row)
			p, err := r.draw(l, style)
			if err != nil {
				return nil, fmt.Errorf("panel %s row %d: %w", col.title, row, err)
			}
			g.layouts[row][c] = l
			g.Plots[row][c] = p
		}
	}
	r.logger.Debug("built panel grid", zap.Stringer("style", style))
	return &g, nil
}

func (r *Renderer) draw(l layout, style LabelStyle) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = l.Title
	p.X.Label.Text = l.XLabel
	p.Y.Label.Text = "GDP growth rate (%/year)"
	p.X.Min, p.X.Max = 0, l.XMax
	p.Y.Min, p.Y.Max = yMin, yMax
	p.X.Tick.Marker = constantTicks(l.XTicks)
	p.Y.Tick.Marker = constantTicks(yTicks)

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.Black
	zero.Width = vg.Points(0.5)
	p.Add(zero)

	// Fit lines go under the points.
	for _, f := range l.Fits {
		line, err := plotter.NewLine(plotter.XYs{
			{X: f.X0, Y: f.at(f.X0)},
			{X: f.X1, Y: f.at(f.X1)},
		})
		if err != nil {
			return nil, err
		}
		line.Color = f.Color
		line.Width = vg.Points(1)
		p.Add(line)
	}

	for _, pt := range l.Points {
		s, err := plotter.NewScatter(plotter.XYs{{X: pt.X, Y: pt.Y}})
		if err != nil {
			return nil, err
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  r.meta.Color(pt.Growth),
			Radius: vg.Points(markerRadius),
			Shape:  glyphFor(r.meta.Warming(pt.Warming).Marker),
		}
		p.Add(s)
	}

	hl, err := plotter.NewScatter(plotter.XYs{{X: l.Highlight.X, Y: l.Highlight.Y}})
	if err != nil {
		return nil, err
	}
	hl.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(highlightRadius),
		Shape:  draw.SquareGlyph{},
	}
	p.Add(hl)

	labels, err := r.endLabels(l)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	if l.Legend {
		for k := 0; k < scenario.NumWarming; k++ {
			w := r.meta.Warming(k)
			thumb, err := plotter.NewScatter(plotter.XYs{{}})
			if err != nil {
				return nil, err
			}
			thumb.GlyphStyle = draw.GlyphStyle{
				Color:  color.Black,
				Radius: vg.Points(markerRadius),
				Shape:  glyphFor(w.Marker),
			}
			p.Legend.Add(style.warmingName(w), thumb)
		}
		p.Legend.Top = true
		p.Legend.Left = true
		p.Legend.TextStyle.Font.Size = vg.Points(8)
	}

	// Add widens the axes to every plotter's data range; put the fixed limits back.
	p.X.Min, p.X.Max = 0, l.XMax
	p.Y.Min, p.Y.Max = yMin, yMax
	return p, nil
}

// endLabels draws the per-line labels plus the column header above them.
func (r *Renderer) endLabels(l layout) (*plotter.Labels, error) {
	size := vg.Points(l.FontSize)
	all := append(append([]endLabel(nil), l.Labels...), l.Header)
	xys := make(plotter.XYs, len(all))
	texts := make([]string, len(all))
	for i, lb := range all {
		xys[i] = plotter.XY{X: l.LabelX, Y: lb.Y}
		texts[i] = lb.Text
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = all[i].Color
		labels.TextStyle[i].Font.Size = size
		labels.TextStyle[i].XAlign = draw.XLeft
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	header := &labels.TextStyle[len(all)-1]
	if l.HeaderTop {
		header.YAlign = draw.YTop
	} else {
		header.YAlign = draw.YBottom
	}
	return labels, nil
}

func constantTicks(values []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: fmt.Sprintf("%g", v)}
	}
	return ticks
}

// PNG renders the grid into an in-memory PNG image at the given resolution.
func (g *Grid) PNG(dpi int) ([]byte, error) {
	img := vgimg.NewWith(vgimg.UseWH(figureWidth, figureHeight), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	plots := make([][]*plot.Plot, len(g.Plots))
	for row := range g.Plots {
		plots[row] = g.Plots[row][:]
	}
	canvases := plot.Align(plots, tiles, dc)
	for row := range plots {
		for col := range plots[row] {
			plots[row][col].Draw(canvases[row][col])
		}
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
