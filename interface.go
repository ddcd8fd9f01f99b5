package mdicon

import (
	"golang.org/x/image/font"
)

// FontSource is one candidate in the font lookup order.
type FontSource interface {
	// Name identifies the source in logs and the layout report.
	Name() string

	// Face loads the font at the given pixel size. Any error just moves
	// the lookup on to the next source.
	Face(size float64) (font.Face, error)
}
