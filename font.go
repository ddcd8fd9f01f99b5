package mdicon

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPaths are the system fonts tried, in order, before falling
// back to the built-in face.
var DefaultFontPaths = []string{
	"/System/Library/Fonts/SFNS.ttf",
	"/System/Library/Fonts/SFCompact.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/HelveticaNeue.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
}

// FontFile is a font on disk. TrueType, OpenType and collections
// (.ttc/.otc, first font used) are all accepted.
type FontFile string

// Name returns the file's base name.
func (f FontFile) Name() string { return filepath.Base(string(f)) }

// Face reads and parses the file and returns a face at size pixels.
func (f FontFile) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f, err)
	}
	fnt, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f, err)
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

type builtinFont struct{}

// BuiltinFont returns the embedded Go Bold font. It always loads.
func BuiltinFont() FontSource { return builtinFont{} }

func (builtinFont) Name() string { return "gobold (builtin)" }

func (builtinFont) Face(size float64) (font.Face, error) {
	fnt, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// FontSources turns paths into sources, preserving order.
func FontSources(paths ...string) []FontSource {
	out := make([]FontSource, 0, len(paths))
	for _, p := range paths {
		out = append(out, FontFile(p))
	}
	return out
}

// LookupFont walks sources in order and returns the first face that loads
// together with its source name. When every source fails the built-in font
// is used, so a face is always returned.
func LookupFont(sources []FontSource, size float64, log *slog.Logger) (font.Face, string) {
	if log == nil {
		log = newNopLogger()
	}

	for _, src := range sources {
		face, err := src.Face(size)
		if err != nil {
			log.Debug("font candidate skipped", "font", src.Name(), "err", err)
			continue
		}
		log.Debug("font selected", "font", src.Name())
		return face, src.Name()
	}

	src := BuiltinFont()
	face, err := src.Face(size)
	if err != nil {
		// gobold is compiled in, parsing it cannot fail
		panic(fmt.Sprintf("mdicon: builtin font: %v", err))
	}
	log.Info("no font candidate loaded, using builtin", "font", src.Name())
	return face, src.Name()
}
