package mdicon

import (
	"image/color"
	"testing"
)

func TestGenerateHorizontalSteps(t *testing.T) {
	img := Generate(4, 1, RGB(0, 0, 0), RGB(255, 255, 255), Horizontal)

	want := []uint8{0, 85, 170, 255}
	for x, w := range want {
		if got := img.NRGBAAt(x, 0).R; got != w {
			t.Errorf("x=%d: red %d, want %d", x, got, w)
		}
	}
}

func TestGenerateSinglePixelDiagonal(t *testing.T) {
	img := Generate(1, 1, RGB(10, 20, 30), RGB(200, 210, 220), Diagonal)
	if got, want := img.NRGBAAt(0, 0), RGB(10, 20, 30); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerateEndpoints(t *testing.T) {
	a, b := RGB(74, 158, 255), RGB(124, 58, 237)

	tests := []struct {
		name string
		w, h int
		dir  Direction
		end  func(w, h int) (int, int)
	}{
		{"horizontal", 37, 5, Horizontal, func(w, h int) (int, int) { return w - 1, 0 }},
		{"vertical", 5, 37, Vertical, func(w, h int) (int, int) { return 0, h - 1 }},
		{"diagonal", 20, 30, Diagonal, func(w, h int) (int, int) { return w - 1, h - 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Generate(tt.w, tt.h, a, b, tt.dir)
			if got := img.NRGBAAt(0, 0); got != a {
				t.Errorf("start: got %v, want %v", got, a)
			}
			x, y := tt.end(tt.w, tt.h)
			if got := img.NRGBAAt(x, y); got != b {
				t.Errorf("end (%d,%d): got %v, want %v", x, y, got, b)
			}
		})
	}
}

func TestGenerateConstantAcrossAxis(t *testing.T) {
	img := Generate(16, 9, RGB(0, 0, 0), RGB(255, 128, 64), Horizontal)
	for x := 0; x < 16; x++ {
		top := img.NRGBAAt(x, 0)
		for y := 1; y < 9; y++ {
			if got := img.NRGBAAt(x, y); got != top {
				t.Fatalf("column %d not constant: %v at y=0, %v at y=%d", x, top, got, y)
			}
		}
	}

	img = Generate(9, 16, RGB(0, 0, 0), RGB(255, 128, 64), Vertical)
	for y := 0; y < 16; y++ {
		left := img.NRGBAAt(0, y)
		for x := 1; x < 9; x++ {
			if got := img.NRGBAAt(x, y); got != left {
				t.Fatalf("row %d not constant: %v at x=0, %v at x=%d", y, left, got, x)
			}
		}
	}
}

func TestGenerateMonotonic(t *testing.T) {
	a, b := RGB(74, 158, 255), RGB(124, 58, 237)
	img := Generate(200, 1, a, b, Horizontal)

	prev := img.NRGBAAt(0, 0)
	for x := 1; x < 200; x++ {
		c := img.NRGBAAt(x, 0)
		if c.R < prev.R {
			t.Fatalf("red decreased at x=%d: %d -> %d", x, prev.R, c.R)
		}
		if c.G > prev.G {
			t.Fatalf("green increased at x=%d: %d -> %d", x, prev.G, c.G)
		}
		if c.B > prev.B {
			t.Fatalf("blue increased at x=%d: %d -> %d", x, prev.B, c.B)
		}
		prev = c
	}
}

func TestGenerateIgnoresInputAlpha(t *testing.T) {
	img := Generate(3, 3, RGBA(10, 10, 10, 0), RGBA(90, 90, 90, 40), Diagonal)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if a := img.NRGBAAt(x, y).A; a != 0xff {
				t.Fatalf("(%d,%d): alpha %d, want 255", x, y, a)
			}
		}
	}
}

func TestGenerateDegenerateSize(t *testing.T) {
	img := Generate(0, -3, RGB(1, 2, 3), RGB(4, 5, 6), Vertical)
	if got := img.Bounds().Size(); got.X != 1 || got.Y != 1 {
		t.Fatalf("size %v, want 1x1", got)
	}
	if got := img.NRGBAAt(0, 0); got != RGB(1, 2, 3) {
		t.Errorf("got %v", got)
	}
}

func TestDiagonalWeights(t *testing.T) {
	g := NewLinearGradient(11, 11, RGB(0, 0, 0), RGB(200, 200, 200), Diagonal)

	if got := g.T(10, 0); got != 0.55 {
		t.Errorf("top right t=%v, want 0.55", got)
	}
	if got := g.T(0, 10); got != 0.45 {
		t.Errorf("bottom left t=%v, want 0.45", got)
	}

	g.Weights = DiagonalWeights{X: 1, Y: 1}
	if got := g.T(10, 10); got != 1 {
		t.Errorf("t not clamped: %v", got)
	}
	if got := g.ColorAt(10, 10); got != color.Color(RGB(200, 200, 200)) {
		t.Errorf("clamped color %v", got)
	}
}
