package raster

import "testing"

// rowExtent returns the leftmost and rightmost drawn x on row y.
func rowExtent(c *Canvas, y int) (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for x := 0; x < c.Width(); x++ {
		if c.PixelColor(x, y) != c.DrawColor() {
			continue
		}
		if lo < 0 {
			lo = x
		}
		hi = x
	}
	return lo, hi, lo >= 0
}

func TestTriangleRightFlatBottom(t *testing.T) {
	c := newTestCanvas(64, 64)
	c.Triangle(10, 10, 30, 30, 10, 30)
	for y := 10; y <= 30; y++ {
		lo, hi, ok := rowExtent(c, y)
		if !ok {
			t.Fatalf("row %d empty", y)
		}
		if lo != 10 {
			t.Fatalf("row %d starts at %d, want 10", y, lo)
		}
		if want := 10 + (y - 10); absOf(hi-want) > 1 {
			t.Fatalf("row %d ends at %d, want %d±1", y, hi, want)
		}
	}
	if _, _, ok := rowExtent(c, 9); ok {
		t.Fatal("row above apex drawn")
	}
	if _, _, ok := rowExtent(c, 31); ok {
		t.Fatal("row below base drawn")
	}
}

func TestTriangleRightFlatTop(t *testing.T) {
	c := newTestCanvas(64, 64)
	c.Triangle(40, 5, 20, 5, 40, 25)
	for y := 5; y <= 25; y++ {
		lo, hi, ok := rowExtent(c, y)
		if !ok {
			t.Fatalf("row %d empty", y)
		}
		if hi != 40 {
			t.Fatalf("row %d ends at %d, want 40", y, hi)
		}
		if want := 20 + (y - 5); absOf(lo-want) > 1 {
			t.Fatalf("row %d starts at %d, want %d±1", y, lo, want)
		}
	}
}

func TestTriangleGeneralSplit(t *testing.T) {
	c := newTestCanvas(64, 64)
	c.Triangle(30, 2, 5, 20, 50, 40)
	for y := 2; y <= 40; y++ {
		if _, _, ok := rowExtent(c, y); !ok {
			t.Fatalf("row %d empty", y)
		}
	}
	// a point well inside
	if c.PixelColor(30, 20) != white {
		t.Fatal("interior not filled")
	}
	// a point outside, right of the top edge
	if c.PixelColor(45, 5) != black {
		t.Fatal("exterior filled")
	}
}

func TestTriangleVertexOrderIrrelevant(t *testing.T) {
	a := newTestCanvas(48, 48)
	a.Triangle(4, 4, 40, 12, 20, 44)
	b := newTestCanvas(48, 48)
	b.Triangle(20, 44, 4, 4, 40, 12)
	da, db := drawn(a), drawn(b)
	if len(da) != len(db) {
		t.Fatalf("pixel counts differ: %d vs %d", len(da), len(db))
	}
}

func TestTriangleDegenerate(t *testing.T) {
	c := newTestCanvas(32, 32)
	c.Triangle(3, 7, 20, 7, 11, 7)
	lo, hi, ok := rowExtent(c, 7)
	if !ok || lo != 3 || hi != 20 {
		t.Fatalf("flat triangle row = %d..%d ok=%v", lo, hi, ok)
	}
	if n := len(drawn(c)); n != 18 {
		t.Fatalf("flat triangle drew %d pixels, want 18", n)
	}

	c = newTestCanvas(32, 32)
	c.Triangle(5, 5, 5, 5, 5, 5)
	if n := len(drawn(c)); n != 1 {
		t.Fatalf("point triangle drew %d pixels, want 1", n)
	}
}

func TestTriangleOffscreenClipped(t *testing.T) {
	c := newTestCanvas(16, 16)
	c.Triangle(-20, -20, 40, 8, -20, 30)
	if c.PixelColor(0, 8) != white {
		t.Fatal("visible part not drawn")
	}
}

func TestQuadFillsAndOutline(t *testing.T) {
	c := newTestCanvas(32, 32)
	c.Quad(4, 4, 24, 6, 22, 26, 6, 22)
	if c.PixelColor(14, 14) != white {
		t.Fatal("quad interior not filled")
	}

	o := newTestCanvas(32, 32)
	o.QuadOutline(4, 4, 24, 6, 22, 26, 6, 22)
	if o.PixelColor(14, 14) != black {
		t.Fatal("outline-only quad filled interior")
	}
	for p := range drawn(o) {
		if c.PixelColor(p.X, p.Y) != white {
			t.Fatalf("outline pixel %v missing from filled quad", p)
		}
	}
}

func TestTriangleOutline(t *testing.T) {
	c := newTestCanvas(32, 32)
	c.TriangleOutline(2, 2, 20, 2, 2, 20)
	if c.PixelColor(5, 5) != black {
		t.Fatal("outline filled interior")
	}
	if c.PixelColor(11, 2) != white || c.PixelColor(2, 11) != white {
		t.Fatal("edges missing")
	}
}
