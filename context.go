package mdicon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// layerContext is a canvas-sized transparent drawing surface for a single
// layer. Shape drawing is left to fogleman's Context; we only convert the
// result into the straight alpha buffers the compositor works on.
type layerContext struct {
	dc *gg.Context
}

func newLayerContext(size int) *layerContext {
	return &layerContext{dc: gg.NewContext(size, size)}
}

// fillRoundedRect fills r with c.
func (l *layerContext) fillRoundedRect(r Rect, radius float64, c color.Color) {
	l.dc.SetColor(c)
	l.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
	l.dc.Fill()
}

// strokeRoundedRect draws an outline of the given width kept inside r.
func (l *layerContext) strokeRoundedRect(r Rect, radius, width float64, c color.Color) {
	h := width / 2
	l.dc.SetColor(c)
	l.dc.SetLineWidth(width)
	l.dc.DrawRoundedRectangle(r.X+h, r.Y+h, r.W-width, r.H-width, radius-h)
	l.dc.Stroke()
}

// strokePolyline strokes an open path through pts with round joins.
func (l *layerContext) strokePolyline(pts []Point, width float64, c color.Color) {
	if len(pts) == 0 {
		return
	}
	l.dc.SetColor(c)
	l.dc.SetLineWidth(width)
	l.dc.SetLineJoin(gg.LineJoinRound)
	l.dc.SetLineCap(gg.LineCapButt)
	l.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		l.dc.LineTo(p.X, p.Y)
	}
	l.dc.Stroke()
}

// image returns the layer as a straight alpha buffer.
func (l *layerContext) image() *image.NRGBA {
	return imaging.Clone(l.dc.Image())
}

// mask returns the layer's coverage.
func (l *layerContext) mask() *image.Alpha {
	return l.dc.AsMask()
}
