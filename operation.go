package mdicon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// mode is how a layer's patch is merged into the canvas.
type mode int

const (
	// modeOver places the patch on a transparent layer and composites it
	// over the canvas.
	modeOver mode = iota
	// modeMasked does the same, but the patch's alpha is first replaced by
	// the patch mask (see CompositeMasked).
	modeMasked
)

// patch is what a layer producer hands to the reduction.
type patch struct {
	img    *image.NRGBA
	origin image.Point
	mask   *image.Alpha // modeMasked only
}

// layer is one entry of the stack: a named producer and how its output is
// merged.
type layer struct {
	name    string
	mode    mode
	produce func(r *renderer) (patch, error)
}

// stack is the icon, bottom to top.
var stack = []layer{
	{name: "shadow", mode: modeOver, produce: drawShadow},
	{name: "document", mode: modeOver, produce: drawDocument},
	{name: "border", mode: modeOver, produce: drawBorder},
	{name: "accent", mode: modeMasked, produce: drawAccentBar},
	{name: "lines", mode: modeOver, produce: drawLines},
	{name: "text", mode: modeMasked, produce: drawText},
	{name: "chevron", mode: modeOver, produce: drawChevron},
}

// Layers returns the names of the icon layers in stacking order.
func Layers() []string {
	names := make([]string, len(stack))
	for i, l := range stack {
		names[i] = l.name
	}
	return names
}

// renderer carries what the producers of one render share.
type renderer struct {
	cfg    *Config
	layout Layout
	face   font.Face
}

// reduce runs the producers in order, compositing each onto a fresh
// transparent canvas.
func (r *renderer) reduce(layers []layer) (*image.NRGBA, error) {
	bounds := image.Rect(0, 0, r.cfg.Size, r.cfg.Size)
	canvas := image.NewNRGBA(bounds)

	for _, l := range layers {
		p, err := l.produce(r)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", l.name, err)
		}

		top := image.NewNRGBA(bounds)
		switch l.mode {
		case modeMasked:
			CompositeMasked(top, p.img, p.origin, p.mask)
		default:
			CompositeMasked(top, p.img, p.origin, nil)
		}

		canvas, err = AlphaComposite(canvas, top)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", l.name, err)
		}
		r.cfg.Logger.Debug("layer composited", "layer", l.name)
	}

	return canvas, nil
}

func drawShadow(r *renderer) (patch, error) {
	lc := newLayerContext(r.cfg.Size)
	lc.fillRoundedRect(r.layout.Shadow, r.layout.Radius, r.cfg.ShadowColor)

	img := lc.image()
	if sigma := r.cfg.scale(r.cfg.ShadowBlur); sigma > 0 {
		img = imaging.Blur(img, sigma)
	}
	return patch{img: img}, nil
}

func drawDocument(r *renderer) (patch, error) {
	lc := newLayerContext(r.cfg.Size)
	lc.fillRoundedRect(r.layout.Document, r.layout.Radius, r.cfg.DocumentColor)
	return patch{img: lc.image()}, nil
}

func drawBorder(r *renderer) (patch, error) {
	lc := newLayerContext(r.cfg.Size)
	lc.strokeRoundedRect(r.layout.Document, r.layout.Radius, r.cfg.scale(2), r.cfg.BorderColor)
	return patch{img: lc.image()}, nil
}

// drawAccentBar paints a horizontal gradient across the top of the document,
// masked by the document's rounded outline.
func drawAccentBar(r *renderer) (patch, error) {
	bar := r.layout.AccentBar
	grad := Generate(bar.Dx(), bar.Dy(), r.cfg.From, r.cfg.To, Horizontal)

	lc := newLayerContext(r.cfg.Size)
	lc.fillRoundedRect(r.layout.Document, r.layout.Radius, color.White)
	mask, ok := lc.mask().SubImage(bar).(*image.Alpha)
	if !ok {
		return patch{}, fmt.Errorf("unexpected mask type for %v", bar)
	}

	return patch{img: grad, origin: bar.Min, mask: mask}, nil
}

func drawLines(r *renderer) (patch, error) {
	lc := newLayerContext(r.cfg.Size)
	radius := r.cfg.scale(5)
	for _, line := range r.layout.Lines {
		lc.fillRoundedRect(line, radius, r.cfg.LineColor)
	}
	return patch{img: lc.image()}, nil
}

// drawText fills the glyph coverage of the text with a diagonal gradient
// spanning the gradient region.
func drawText(r *renderer) (patch, error) {
	region := r.layout.GradientRegion
	if region.Empty() {
		return patch{}, fmt.Errorf("text %q lies outside the canvas", r.cfg.Text)
	}

	grad := &LinearGradient{
		From:      r.cfg.From,
		To:        r.cfg.To,
		Direction: Diagonal,
		Weights:   r.cfg.Weights,
		Width:     region.Dx(),
		Height:    region.Dy(),
	}

	mask := image.NewAlpha(image.Rect(0, 0, region.Dx(), region.Dy()))
	origin := r.layout.TextOrigin.Sub(region.Min)
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: r.face,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(r.cfg.Text)

	return patch{img: grad.Image(), origin: region.Min, mask: mask}, nil
}

func drawChevron(r *renderer) (patch, error) {
	c := r.cfg.To
	c.A = r.cfg.ChevronAlpha

	lc := newLayerContext(r.cfg.Size)
	lc.strokePolyline(r.layout.Chevron, r.cfg.scale(10), c)
	return patch{img: lc.image()}, nil
}
