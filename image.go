package mdicon

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Icon is the MDPreview application icon: a rounded document with a gradient
// accent bar, faint text lines, gradient "MD" lettering and a chevron, on a
// soft drop shadow.
//
// The font is resolved once in New, so Layout is available before rendering.
type Icon struct {
	cfg    Config
	face   font.Face
	layout Layout
}

// New prepares an icon. Options are applied over DefaultConfig.
func New(opts ...Option) (*Icon, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	size := cfg.scale(cfg.FontSize)
	face, name := LookupFont(cfg.Fonts, size, cfg.Logger)

	return &Icon{
		cfg:    cfg,
		face:   face,
		layout: computeLayout(&cfg, face, name),
	}, nil
}

// Layout returns the resolved geometry.
func (i *Icon) Layout() Layout { return i.layout }

// Config returns the configuration the icon was built with.
func (i *Icon) Config() Config { return i.cfg }

// Render draws every layer and returns the composited icon.
func (i *Icon) Render() (*image.NRGBA, error) {
	l := i.layout
	i.cfg.Logger.Info("rendering icon",
		"size", i.cfg.Size,
		"font", l.Font,
		"text_origin", l.TextOrigin,
		"text_bounds", l.TextBounds,
		"gradient_region", l.GradientRegion,
	)

	r := &renderer{cfg: &i.cfg, layout: l, face: i.face}
	return r.reduce(stack)
}

// Save renders the icon and writes it as a PNG to path.
func (i *Icon) Save(path string) error {
	img, err := i.Render()
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save icon to %s: %w", path, err)
	}
	i.cfg.Logger.Info("icon saved", "path", path)
	return nil
}

// Close releases the font face.
func (i *Icon) Close() error {
	return i.face.Close()
}
