package mdicon

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
)

const (
	// DefaultSize is the edge length the icon geometry is designed at.
	DefaultSize = 1024
	// MinSize is the smallest icon that keeps the layout readable.
	MinSize = 64
)

// Config holds everything the drawing sequence reads. Geometry is given at
// DefaultSize and scaled to Size.
type Config struct {
	Size int

	From, To      color.NRGBA // accent gradient endpoints
	DocumentColor color.NRGBA
	BorderColor   color.NRGBA
	ShadowColor   color.NRGBA
	LineColor     color.NRGBA
	ChevronAlpha  uint8

	// ShadowBlur is the Gaussian sigma at DefaultSize.
	ShadowBlur float64

	Text     string
	FontSize float64 // pixels at DefaultSize
	Fonts    []FontSource

	Weights DiagonalWeights
	Logger  *slog.Logger
}

// DefaultConfig returns the stock MDPreview icon.
func DefaultConfig() Config {
	return Config{
		Size:          DefaultSize,
		From:          RGB(74, 158, 255),
		To:            RGB(124, 58, 237),
		DocumentColor: RGB(252, 252, 255),
		BorderColor:   RGBA(190, 195, 215, 50),
		ShadowColor:   RGBA(30, 20, 60, 90),
		LineColor:     RGBA(195, 200, 218, 45),
		ChevronAlpha:  200,
		ShadowBlur:    35,
		Text:          "MD",
		FontSize:      300,
		Fonts:         FontSources(DefaultFontPaths...),
		Weights:       DefaultDiagonalWeights,
		Logger:        newNopLogger(),
	}
}

// scale converts a length at DefaultSize to the configured size.
func (c *Config) scale(v float64) float64 {
	return v * float64(c.Size) / DefaultSize
}

func (c *Config) validate() error {
	var errs []error
	if c.Text == "" {
		errs = append(errs, errors.New("text must not be empty"))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size must be greater than zero, given %v", c.FontSize))
	}
	if c.ShadowBlur < 0 {
		errs = append(errs, fmt.Errorf("shadow blur must not be negative, given %v", c.ShadowBlur))
	}
	if c.Weights.X < 0 || c.Weights.Y < 0 || c.Weights.X+c.Weights.Y == 0 {
		errs = append(errs, fmt.Errorf("diagonal weights must be non-negative and not both zero, given %+v", c.Weights))
	}
	return checkErrors(errs...)
}

// Option is something that can be configured on an Icon.
type Option func(*Config) error

// Size sets the edge length of the square icon in pixels.
func Size(i int) Option {
	return func(c *Config) error {
		if i < MinSize {
			return fmt.Errorf("size must be at least %d, given %d", MinSize, i)
		}
		c.Size = i
		return nil
	}
}

// Colors sets the accent gradient endpoints used by the bar, the text and
// the chevron.
func Colors(from, to color.NRGBA) Option {
	return func(c *Config) error {
		c.From, c.To = from, to
		return nil
	}
}

// Text sets the string drawn in the middle of the document.
func Text(s string) Option {
	return func(c *Config) error {
		c.Text = s
		return nil
	}
}

// FontSize sets the text size in pixels at DefaultSize.
func FontSize(px float64) Option {
	return func(c *Config) error {
		c.FontSize = px
		return nil
	}
}

// Fonts puts extra font files ahead of the current candidates.
func Fonts(paths ...string) Option {
	return func(c *Config) error {
		c.Fonts = append(FontSources(paths...), c.Fonts...)
		return nil
	}
}

// FontLookup replaces the candidate list entirely. The built-in font is
// still used when none of them load.
func FontLookup(sources ...FontSource) Option {
	return func(c *Config) error {
		c.Fonts = sources
		return nil
	}
}

// ShadowBlur sets the drop shadow's Gaussian sigma at DefaultSize.
// Zero disables blurring.
func ShadowBlur(sigma float64) Option {
	return func(c *Config) error {
		c.ShadowBlur = sigma
		return nil
	}
}

// Weights sets the axis weighting of the text gradient.
func Weights(w DiagonalWeights) Option {
	return func(c *Config) error {
		c.Weights = w
		return nil
	}
}

// WithLogger routes diagnostics to l. Pass nil to silence them.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			l = newNopLogger()
		}
		c.Logger = l
		return nil
	}
}
