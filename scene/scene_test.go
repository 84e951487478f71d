package scene

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/vec"

	"renderdemon/hal"
	"renderdemon/input"
	"renderdemon/raster"
)

func newCanvas() *raster.Canvas {
	c := raster.New(640, 480, nil)
	c.SetClearColor(0, 0, 0)
	c.Clear()
	return c
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Fatalf("New(%q).Name() = %q", name, s.Name())
		}
	}
	if _, err := New("nope"); !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("err = %v, want ErrUnknownScene", err)
	}
}

func TestPrimitivesRender(t *testing.T) {
	p := NewPrimitives()
	c := newCanvas()
	p.Update(&input.Keys{})
	p.Render(c)

	lime := raster.ColorOf(colornames.Lime)
	if c.PixelColor(100, 10) != lime || c.PixelColor(50, 60) != lime {
		t.Fatal("green point and rect missing")
	}
	if c.PixelColor(350, 400) != raster.ColorOf(colornames.Magenta) {
		t.Fatal("quad interior not filled")
	}
	red := raster.ColorOf(colornames.Red)
	if c.PixelColor(100, 400) != red {
		t.Fatal("upper half of the box not flood filled")
	}
	if c.PixelColor(40, 440) == red {
		t.Fatal("fill leaked across the diagonal")
	}
	if c.PixelColor(305, 15) != raster.EGA[0] || c.PixelColor(305+15*20, 15) != raster.EGA[15] {
		t.Fatal("palette swatches missing")
	}
}

func TestPrimitivesPause(t *testing.T) {
	p := NewPrimitives()
	var k input.Keys
	p.Update(&k)
	p.Update(&k)
	if math.Abs(p.angle-0.02) > 1e-9 {
		t.Fatalf("angle = %v", p.angle)
	}
	k.KeyDown(hal.KeySpace)
	p.Update(&k)
	k.Advance()
	p.Update(&k)
	if math.Abs(p.angle-0.02) > 1e-9 {
		t.Fatalf("paused angle moved to %v", p.angle)
	}
}

func TestPortalMovement(t *testing.T) {
	p := NewPortal()
	var k input.Keys
	k.KeyDown(hal.KeyUp)
	p.Update(&k)
	if p.pos != (vec.Vec2{X: 51, Y: 50}) {
		t.Fatalf("pos after forward = %v", p.pos)
	}
	k.KeyUp(hal.KeyUp)
	k.KeyDown(hal.KeyD)
	p.Update(&k)
	if math.Abs(p.pos.X-51) > 1e-9 || math.Abs(p.pos.Y-51) > 1e-9 {
		t.Fatalf("pos after strafe = %v", p.pos)
	}
	k.KeyUp(hal.KeyD)
	k.KeyDown(hal.KeyRight)
	p.Update(&k)
	if math.Abs(p.angle-turnStep) > 1e-9 {
		t.Fatalf("angle = %v", p.angle)
	}
}

func TestPortalRenderWall(t *testing.T) {
	p := NewPortal()
	c := newCanvas()
	p.Render(c)

	if c.PixelColor(4, 40) != raster.EGA[1] || c.PixelColor(109, 40) != raster.EGA[2] || c.PixelColor(214, 40) != raster.EGA[3] {
		t.Fatal("view borders missing")
	}
	if c.PixelColor(50+4, 50+40) != raster.EGA[15] {
		t.Fatal("player marker missing on the map")
	}
	if c.PixelColor(214+46, 40+50) == (raster.Color{}) {
		t.Fatal("wall centre not drawn")
	}
	if c.PixelColor(214+20, 40+50) != (raster.Color{}) {
		t.Fatal("wall drawn outside its projection")
	}
	if x, y, w, h := c.Viewport(); x != 0 || y != 0 || w != 640 || h != 480 {
		t.Fatalf("view not reset: %d,%d %dx%d", x, y, w, h)
	}
}

func TestPortalWallBehind(t *testing.T) {
	p := NewPortal()
	p.angle = math.Pi
	c := newCanvas()
	p.Render(c)
	for x := 215; x < 315; x++ {
		for y := 41; y < 149; y++ {
			if c.PixelColor(x, y) != (raster.Color{}) {
				t.Fatalf("wall behind the eye drawn at (%d,%d)", x, y)
			}
		}
	}
}

func TestIntersect(t *testing.T) {
	got, ok := intersect(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 0, Y: 4}, vec.Vec2{X: 4, Y: 0})
	if !ok || math.Abs(got.X-2) > 1e-9 || math.Abs(got.Y-2) > 1e-9 {
		t.Fatalf("intersect = %v, %v", got, ok)
	}
	if _, ok := intersect(vec.Vec2{}, vec.Vec2{X: 1}, vec.Vec2{Y: 1}, vec.Vec2{X: 1, Y: 1}); ok {
		t.Fatal("parallel lines intersect")
	}
}

func TestClipToFrustum(t *testing.T) {
	a, b, ok := clipToFrustum(vec.Vec2{X: -10, Y: -5}, vec.Vec2{X: 10, Y: 10})
	if !ok {
		t.Fatal("partly visible wall rejected")
	}
	if a.Y <= 0 || b != (vec.Vec2{X: 10, Y: 10}) {
		t.Fatalf("clipped = %v %v", a, b)
	}
	if _, _, ok := clipToFrustum(vec.Vec2{X: -1, Y: -1}, vec.Vec2{X: 1, Y: -2}); ok {
		t.Fatal("wall behind the eye accepted")
	}
}
