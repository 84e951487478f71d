package raster

import (
	"errors"
	"testing"
)

var (
	white = Color{R: 0xFF, G: 0xFF, B: 0xFF}
	black = Color{}
	red   = Color{R: 0xFF}
)

type fakeSurface struct {
	w, h     int
	stride   int
	buf      []byte
	cleared  []Color
	presents int
	err      error
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, stride: w * 4, buf: make([]byte, w*h*4)}
}

func (s *fakeSurface) Width() int       { return s.w }
func (s *fakeSurface) Height() int      { return s.h }
func (s *fakeSurface) StrideBytes() int { return s.stride }
func (s *fakeSurface) Buffer() []byte   { return s.buf }
func (s *fakeSurface) ClearRGB(r, g, b uint8) {
	s.cleared = append(s.cleared, Color{R: r, G: g, B: b})
}
func (s *fakeSurface) Present() error {
	s.presents++
	return s.err
}

// drawn returns the set of buffer coordinates holding the draw colour.
func drawn(c *Canvas) map[Point]bool {
	out := map[Point]bool{}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.PixelColor(x, y) == c.DrawColor() {
				out[Point{x, y}] = true
			}
		}
	}
	return out
}

func newTestCanvas(w, h int) *Canvas {
	c := New(w, h, nil)
	c.SetClearColor(0, 0, 0)
	c.Clear()
	c.SetDrawColor(0xFF, 0xFF, 0xFF)
	return c
}

func TestEndToEndLine(t *testing.T) {
	c := newTestCanvas(320, 240)
	c.Line(0, 0, 10, 0)
	if got := c.PixelColor(5, 0); got != white {
		t.Fatalf("(5,0) = %v, want white", got)
	}
	if got := c.PixelColor(5, 1); got != black {
		t.Fatalf("(5,1) = %v, want black", got)
	}
}

func TestPointThenPixelColor(t *testing.T) {
	c := newTestCanvas(16, 8)
	colors := []Color{white, red, {R: 1, G: 2, B: 3}}
	for i, col := range colors {
		c.SetDrawColor(col.R, col.G, col.B)
		x, y := i*5, i*3
		c.Point(x, y)
		if got := c.PixelColor(x, y); got != col {
			t.Fatalf("PixelColor(%d,%d) = %v, want %v", x, y, got, col)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	c := newTestCanvas(8, 8)
	for _, p := range []Point{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		c.Point(p.X, p.Y)
		if _, ok := c.Pixel(p.X, p.Y); ok {
			t.Fatalf("Pixel(%d,%d) reported in range", p.X, p.Y)
		}
		if got := c.PixelColor(p.X, p.Y); got != black {
			t.Fatalf("PixelColor(%d,%d) = %v, want black", p.X, p.Y, got)
		}
		r, g, b, a := c.PixelColor(p.X, p.Y).RGBA()
		if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
			t.Fatalf("out of range colour is not opaque black")
		}
	}
	if n := len(drawn(c)); n != 0 {
		t.Fatalf("%d pixels written by out of range points", n)
	}
}

func TestPixelPacking(t *testing.T) {
	c := newTestCanvas(4, 4)
	c.SetDrawColor(0x11, 0x22, 0x33)
	c.Point(1, 1)
	p, ok := c.Pixel(1, 1)
	if !ok {
		t.Fatal("expected pixel")
	}
	if p != 0x00332211 {
		t.Fatalf("packed = %#08x, want 0x00332211", p)
	}
}

func TestPointCountWrapsAndClamps(t *testing.T) {
	c := newTestCanvas(4, 3)
	c.PointCount(2, 0, 4)
	want := []Point{{2, 0}, {3, 0}, {0, 1}, {1, 1}}
	got := drawn(c)
	if len(got) != len(want) {
		t.Fatalf("wrote %d pixels, want %d", len(got), len(want))
	}
	for _, p := range want {
		if !got[p] {
			t.Fatalf("missing %v", p)
		}
	}

	c = newTestCanvas(4, 3)
	c.PointCount(1, 2, 100)
	if n := len(drawn(c)); n != 3 {
		t.Fatalf("run at last row wrote %d pixels, want 3", n)
	}
}

func TestStridePaddingUntouched(t *testing.T) {
	c := NewWithStride(4, 2, 6, nil)
	c.SetDrawColor(0xFF, 0, 0)
	c.PointCount(0, 0, 8)
	c.FillRect(-10, -10, 10, 10)
	pix := c.Pix()
	for y := 0; y < 2; y++ {
		for x := 4; x < 6; x++ {
			if pix[y*6+x] != 0 {
				t.Fatalf("padding (%d,%d) written", x, y)
			}
		}
	}
	if c.PixelColor(3, 1) != red {
		t.Fatal("last pixel not drawn")
	}
}

func TestPoints(t *testing.T) {
	c := newTestCanvas(8, 8)
	c.Points([]int{1, 1, 2, 3, 7, 7, 9}, 4)
	got := drawn(c)
	if len(got) != 3 || !got[Point{1, 1}] || !got[Point{2, 3}] || !got[Point{7, 7}] {
		t.Fatalf("unexpected points: %v", got)
	}
}

func TestClearUsesClearColorAndSurface(t *testing.T) {
	s := newFakeSurface(4, 4)
	c := New(4, 4, s)
	c.SetDrawColor(1, 2, 3)
	c.SetClearColor(9, 8, 7)
	c.SetView(1, 1, 2, 2)
	c.Clear()
	want := Color{R: 9, G: 8, B: 7}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := c.PixelColor(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if len(s.cleared) != 1 || s.cleared[0] != want {
		t.Fatalf("surface cleared with %v", s.cleared)
	}
	if c.DrawColor() != (Color{R: 1, G: 2, B: 3}) {
		t.Fatalf("draw colour changed to %v", c.DrawColor())
	}
}

func TestPresent(t *testing.T) {
	s := newFakeSurface(2, 2)
	c := New(2, 2, s)
	c.SetDrawColor(0x10, 0x20, 0x30)
	c.Point(1, 1)
	if err := c.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if s.presents != 1 {
		t.Fatalf("presents = %d, want 1", s.presents)
	}
	off := 1*s.stride + 1*4
	if got := s.buf[off : off+4]; got[0] != 0x10 || got[1] != 0x20 || got[2] != 0x30 || got[3] != 0 {
		t.Fatalf("uploaded bytes = %v", got)
	}

	s.err = errors.New("boom")
	if err := c.Present(); err == nil || !errors.Is(err, s.err) {
		t.Fatalf("Present error = %v, want wrapped boom", err)
	}
}

func TestPresentWithoutSurface(t *testing.T) {
	c := New(2, 2, nil)
	if err := c.Present(); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("Present = %v, want ErrNoSurface", err)
	}
}
