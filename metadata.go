package mdicon

import (
	"encoding/json"
	"image"
	"math"

	"golang.org/x/image/font"
)

// Rect is a rectangle in canvas pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Point is a position in canvas pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is the resolved geometry of an icon. It depends on the size and on
// the font that was picked, so it is only known once the font is loaded.
type Layout struct {
	Size     int     `json:"size"`
	Document Rect    `json:"document"`
	Radius   float64 `json:"radius"`
	Shadow   Rect    `json:"shadow"`

	// AccentBar is the gradient patch; the document mask cuts it off at
	// its bottom edge.
	AccentBar image.Rectangle `json:"accent_bar"`
	Lines     []Rect          `json:"lines"`

	Font string `json:"font"`
	// TextOrigin is the baseline origin the text is drawn at.
	TextOrigin image.Point `json:"text_origin"`
	// TextBounds are the glyph bounds in canvas pixels.
	TextBounds image.Rectangle `json:"text_bounds"`
	// GradientRegion is TextBounds plus a margin, clipped to the canvas.
	GradientRegion image.Rectangle `json:"gradient_region"`

	Chevron []Point `json:"chevron"`
}

var lineWidths = []float64{0.72, 0.52, 0.62, 0.42, 0.68, 0.48}

// computeLayout lays the icon out for cfg. Lengths are given at DefaultSize.
func computeLayout(cfg *Config, face font.Face, fontName string) Layout {
	s := cfg.scale
	size := cfg.Size

	pad := s(80)
	doc := Rect{X: pad, Y: pad - s(20), W: float64(size) - 2*pad, H: float64(size) - 2*pad + s(40)}
	radius := s(48)
	barH := s(14)

	l := Layout{
		Size:     size,
		Document: doc,
		Radius:   radius,
		Shadow:   Rect{X: doc.X + s(4), Y: doc.Y + s(14), W: doc.W - s(8), H: doc.H},
		AccentBar: image.Rect(
			round(doc.X), round(doc.Y),
			round(doc.X+doc.W), round(doc.Y+barH+radius),
		),
		Font: fontName,
	}

	lx := doc.X + s(75)
	ly := doc.Y + barH + radius + s(55)
	maxW := doc.W - s(150)
	for i, wf := range lineWidths {
		y := ly + float64(i)*s(34)
		if y > doc.Y+doc.H-s(280) {
			break
		}
		l.Lines = append(l.Lines, Rect{X: lx, Y: y, W: math.Floor(maxW * wf), H: s(11)})
	}

	// center the glyph box in the document, then nudge it down
	b, _ := font.BoundString(face, cfg.Text)
	bx, by := b.Min.X.Floor(), b.Min.Y.Floor()
	tw, th := b.Max.X.Ceil()-bx, b.Max.Y.Ceil()-by
	tx := round(doc.X) + (round(doc.W)-tw)/2 - bx
	ty := round(doc.Y) + (round(doc.H)-th)/2 - by + round(s(65))

	l.TextOrigin = image.Pt(tx, ty)
	l.TextBounds = image.Rect(tx+bx, ty+by, tx+bx+tw, ty+by+th)

	margin := round(s(20))
	l.GradientRegion = l.TextBounds.Inset(-margin).Intersect(image.Rect(0, 0, size, size))

	cx := doc.X + math.Floor(doc.W/2)
	top := float64(l.TextBounds.Max.Y) + s(30)
	aw, ah := s(55), s(42)
	l.Chevron = []Point{{X: cx - aw, Y: top}, {X: cx, Y: top + ah}, {X: cx + aw, Y: top}}

	return l
}

// JSON returns the indented JSON representation of the layout.
func (l *Layout) JSON() ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

func round(v float64) int {
	return int(math.Round(v))
}
