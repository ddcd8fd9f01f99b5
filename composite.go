package mdicon

import (
	"errors"
	"image"
	"image/color"
)

// ErrSizeMismatch is returned when two layers with different bounds are
// composited together.
var ErrSizeMismatch = errors.New("mdicon: layer bounds do not match")

// CompositeMasked pastes patch onto canvas with its top left corner at origin
// and then replaces the alpha of every pasted pixel with the mask coverage.
// The mask is indexed relative to the patch; a nil mask keeps the patch's own
// alpha. The paste is clipped to the canvas, pixels outside the pasted region
// are left untouched.
func CompositeMasked(canvas, patch *image.NRGBA, origin image.Point, mask *image.Alpha) {
	pb := patch.Bounds()
	r := pb.Sub(pb.Min).Add(origin).Intersect(canvas.Bounds())
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		py := y - origin.Y + pb.Min.Y
		for x := r.Min.X; x < r.Max.X; x++ {
			px := x - origin.X + pb.Min.X
			c := patch.NRGBAAt(px, py)
			if mask != nil {
				mb := mask.Bounds()
				c.A = mask.AlphaAt(px-pb.Min.X+mb.Min.X, py-pb.Min.Y+mb.Min.Y).A
			}
			canvas.SetNRGBA(x, y, c)
		}
	}
}

// AlphaComposite places top over bottom and returns the result as a new
// buffer. Both layers must share the same bounds.
func AlphaComposite(bottom, top *image.NRGBA) (*image.NRGBA, error) {
	if !bottom.Bounds().Eq(top.Bounds()) {
		return nil, ErrSizeMismatch
	}

	b := bottom.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x, y, over(bottom.NRGBAAt(x, y), top.NRGBAAt(x, y)))
		}
	}
	return dst, nil
}

// over is the straight alpha Porter-Duff source-over of one pixel.
func over(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 0xff:
		return src
	case 0:
		return dst
	}

	sa := float64(src.A) / 0xff
	da := float64(dst.A) / 0xff * (1 - sa)
	outA := sa + da
	if outA == 0 {
		return color.NRGBA{}
	}

	ch := func(s, d uint8) uint8 {
		return uint8((float64(s)*sa+float64(d)*da)/outA + 0.5)
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: uint8(outA*0xff + 0.5),
	}
}
