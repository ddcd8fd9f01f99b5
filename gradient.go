package mdicon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Direction selects how the interpolation parameter t is derived per pixel.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Diagonal
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	}
	return "unknown"
}

// DiagonalWeights is the per-axis share of t for Diagonal gradients.
// The default leans on the horizontal axis.
type DiagonalWeights struct {
	X, Y float64
}

// DefaultDiagonalWeights are the weights the icon is drawn with.
var DefaultDiagonalWeights = DiagonalWeights{X: 0.55, Y: 0.45}

var _ gg.Pattern = (*LinearGradient)(nil)

// LinearGradient interpolates between two colors over a width x height area.
// It satisfies gg.Pattern, so it can be sampled one pixel at a time or
// rendered in one go with Image.
type LinearGradient struct {
	From, To      color.NRGBA
	Direction     Direction
	Weights       DiagonalWeights
	Width, Height int
}

// NewLinearGradient returns a gradient using the default diagonal weights.
func NewLinearGradient(width, height int, from, to color.NRGBA, dir Direction) *LinearGradient {
	return &LinearGradient{
		From:      from,
		To:        to,
		Direction: dir,
		Weights:   DefaultDiagonalWeights,
		Width:     width,
		Height:    height,
	}
}

// T returns the interpolation parameter at (x,y), always within [0,1].
func (g *LinearGradient) T(x, y int) float64 {
	// max(n-1, 1) keeps single pixel dimensions at t=0
	dx := float64(max(g.Width-1, 1))
	dy := float64(max(g.Height-1, 1))

	var t float64
	switch g.Direction {
	case Vertical:
		t = float64(y) / dy
	case Diagonal:
		t = float64(x)/dx*g.Weights.X + float64(y)/dy*g.Weights.Y
	default:
		t = float64(x) / dx
	}
	return clamp01(t)
}

// ColorAt returns the opaque gradient color at (x,y).
func (g *LinearGradient) ColorAt(x, y int) color.Color {
	return g.at(x, y)
}

func (g *LinearGradient) at(x, y int) color.NRGBA {
	t := g.T(x, y)
	return color.NRGBA{
		R: lerp(g.From.R, g.To.R, t),
		G: lerp(g.From.G, g.To.G, t),
		B: lerp(g.From.B, g.To.B, t),
		A: 0xff,
	}
}

// Image renders the whole gradient into a new buffer anchored at (0,0).
func (g *LinearGradient) Image() *image.NRGBA {
	w, h := max(g.Width, 1), max(g.Height, 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	switch g.Direction {
	case Horizontal:
		// one color per column
		for x := 0; x < w; x++ {
			c := g.at(x, 0)
			for y := 0; y < h; y++ {
				img.SetNRGBA(x, y, c)
			}
		}
	case Vertical:
		for y := 0; y < h; y++ {
			c := g.at(0, y)
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, g.at(x, y))
			}
		}
	}
	return img
}

// Generate renders a width x height gradient from one color to another.
// Alpha of the endpoint colors is ignored, every pixel is opaque.
// Dimensions below 1 are treated as 1.
func Generate(width, height int, from, to color.NRGBA, dir Direction) *image.NRGBA {
	return NewLinearGradient(width, height, from, to, dir).Image()
}

// lerp truncates towards zero, a+(b-a)*t stays within [0,255] for t in [0,1].
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + float64(int(b)-int(a))*t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
