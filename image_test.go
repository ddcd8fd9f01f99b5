package mdicon

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// builtinOnly keeps tests independent of the fonts installed on the host.
var builtinOnly = FontLookup()

func TestLayersOrder(t *testing.T) {
	want := []string{"shadow", "document", "border", "accent", "lines", "text", "chevron"}
	if got := Layers(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(Size(10)); err == nil {
		t.Error("tiny size accepted")
	}

	_, err := New(builtinOnly, Text(""), FontSize(0), Weights(DiagonalWeights{}))
	if err == nil {
		t.Fatal("invalid config accepted")
	}
	for _, part := range []string{"text", "font size", "diagonal weights"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q does not mention %s", err, part)
		}
	}
}

func TestLayoutDefault(t *testing.T) {
	icon, err := New(builtinOnly)
	if err != nil {
		t.Fatal(err)
	}
	defer icon.Close()

	l := icon.Layout()
	if l.Document != (Rect{X: 80, Y: 60, W: 864, H: 904}) {
		t.Errorf("document %+v", l.Document)
	}
	if got := l.AccentBar; got != image.Rect(80, 60, 944, 122) {
		t.Errorf("accent bar %v", got)
	}
	if len(l.Lines) != 6 {
		t.Errorf("%d decorative lines, want 6", len(l.Lines))
	}
	if l.Font != BuiltinFont().Name() {
		t.Errorf("font %q", l.Font)
	}

	doc := image.Rect(80, 60, 944, 964)
	if !l.TextBounds.In(doc) {
		t.Errorf("text %v outside document %v", l.TextBounds, doc)
	}
	if !l.TextBounds.In(l.GradientRegion) {
		t.Errorf("gradient region %v does not cover text %v", l.GradientRegion, l.TextBounds)
	}
	if len(l.Chevron) != 3 || l.Chevron[0].Y <= float64(l.TextBounds.Max.Y) {
		t.Errorf("chevron %v not below the text", l.Chevron)
	}

	data, err := l.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var back Layout
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, l) {
		t.Errorf("layout changed through JSON:\n%+v\n%+v", back, l)
	}
}

func TestRender(t *testing.T) {
	icon, err := New(builtinOnly, Size(128))
	if err != nil {
		t.Fatal(err)
	}
	defer icon.Close()

	img, err := icon.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 128, 128) {
		t.Fatalf("bounds %v", got)
	}

	cfg := icon.Config()
	l := icon.Layout()

	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha %d, want transparent", a)
	}

	// left margin of the document, clear of lines and text
	if got := img.NRGBAAt(13, 64); got != cfg.DocumentColor {
		t.Errorf("document body %v, want %v", got, cfg.DocumentColor)
	}

	// middle of the accent bar is the unmasked gradient
	bar := l.AccentBar
	grad := Generate(bar.Dx(), bar.Dy(), cfg.From, cfg.To, Horizontal)
	x, y := 64, bar.Min.Y+2
	if got, want := img.NRGBAAt(x, y), grad.NRGBAAt(x-bar.Min.X, 0); got != want {
		t.Errorf("accent bar at (%d,%d): %v, want %v", x, y, got, want)
	}

	// some text pixels must carry the text gradient
	var inked int
	r := l.TextBounds
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c := img.NRGBAAt(px, py)
			if c.A == 0xff && c.B > 230 && c.R < 130 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("no gradient text found")
	}
}

func TestSave(t *testing.T) {
	icon, err := New(builtinOnly, Size(64), ShadowBlur(0))
	if err != nil {
		t.Fatal(err)
	}
	defer icon.Close()

	path := filepath.Join(t.TempDir(), "icon.png")
	if err := icon.Save(path); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("no PNG written: %v", err)
	}

	if err := icon.Save(filepath.Join(t.TempDir(), "missing", "icon.png")); err == nil {
		t.Error("writing into a missing directory succeeded")
	}
}
