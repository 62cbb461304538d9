package panel

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sekarsister/gdpgrowth/internal/scenario"
)

// DiamondGlyph draws a filled diamond.
type DiamondGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	w := r * 0.75

	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + w, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - w, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

func glyphFor(marker string) draw.GlyphDrawer {
	switch marker {
	case scenario.MarkerSquare:
		return draw.BoxGlyph{}
	case scenario.MarkerTriangle:
		return draw.PyramidGlyph{}
	case scenario.MarkerDiamond:
		return DiamondGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}
