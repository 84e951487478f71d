package scene

import (
	"math"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/vec"

	"renderdemon/hal"
	"renderdemon/input"
	"renderdemon/raster"
)

const (
	turnStep = 0.1
	moveStep = 1.0
	// the view cone edges start this far in front of the eye
	nearEps = 0.0001
)

// Portal shows one wall from three views: the world map, the map rotated
// into the player's frame, and a perspective projection.
type Portal struct {
	wallA, wallB vec.Vec2
	pos          vec.Vec2
	angle        float64
	shade        raster.Palette
}

func NewPortal() *Portal {
	yellow := raster.ColorOf(colornames.Yellow)
	return &Portal{
		wallA: vec.Vec2{X: 70, Y: 20},
		wallB: vec.Vec2{X: 70, Y: 70},
		pos:   vec.Vec2{X: 50, Y: 50},
		shade: raster.Ramp(yellow, raster.Darken(yellow, 0.6), 12),
	}
}

func (p *Portal) Name() string { return "portal" }

// Update turns with left/right, walks with up/down and strafes with A/D.
func (p *Portal) Update(keys *input.Keys) {
	if keys.Held(hal.KeyLeft) {
		p.angle -= turnStep
	}
	if keys.Held(hal.KeyRight) {
		p.angle += turnStep
	}
	fwd := p.facing().Mul(moveStep)
	side := vec.Vec2{X: fwd.Y, Y: -fwd.X}
	if keys.Held(hal.KeyUp) || keys.Held(hal.KeyW) {
		p.pos = p.pos.Add(fwd)
	}
	if keys.Held(hal.KeyDown) || keys.Held(hal.KeyS) {
		p.pos = p.pos.Sub(fwd)
	}
	if keys.Held(hal.KeyA) {
		p.pos = p.pos.Add(side)
	}
	if keys.Held(hal.KeyD) {
		p.pos = p.pos.Sub(side)
	}
}

func (p *Portal) facing() vec.Vec2 {
	return vec.Vec2{X: math.Cos(p.angle), Y: math.Sin(p.angle)}
}

// toView maps a world point into player space: X across, Y (depth) ahead.
func (p *Portal) toView(w vec.Vec2) vec.Vec2 {
	d := w.Sub(p.pos)
	sin, cos := math.Sincos(p.angle)
	return vec.Vec2{X: d.X*sin - d.Y*cos, Y: d.X*cos + d.Y*sin}
}

func (p *Portal) Render(c *raster.Canvas) {
	defer c.ResetView()

	c.SetDrawColorIndex(1)
	c.View(4, 40, 103, 149)
	c.SetDrawColorIndex(14)
	c.Line(round(p.wallA.X), round(p.wallA.Y), round(p.wallB.X), round(p.wallB.Y))
	tip := p.pos.Add(p.facing().Mul(5))
	c.SetDrawColorIndex(8)
	c.Line(round(p.pos.X), round(p.pos.Y), round(tip.X), round(tip.Y))
	c.SetDrawColorIndex(15)
	c.Point(round(p.pos.X), round(p.pos.Y))

	a, b := p.toView(p.wallA), p.toView(p.wallB)

	c.SetDrawColorIndex(2)
	c.View(109, 40, 208, 149)
	c.SetDrawColorIndex(14)
	c.Line(round(50-a.X), round(50-a.Y), round(50-b.X), round(50-b.Y))
	c.SetDrawColorIndex(8)
	c.Line(50, 50, 50, 45)
	c.SetDrawColorIndex(15)
	c.Point(50, 50)

	c.SetDrawColorIndex(3)
	c.View(214, 40, 315, 149)
	if a, b, ok := clipToFrustum(a, b); ok {
		p.drawWall(c, a, b)
	}
}

// clipToFrustum moves wall endpoints behind the eye onto the view cone.
// It reports false when the whole wall is behind the eye.
func clipToFrustum(a, b vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	if a.Y <= 0 && b.Y <= 0 {
		return a, b, false
	}
	if a.Y > 0 && b.Y > 0 {
		return a, b, true
	}
	i1, ok1 := intersect(a, b, vec.Vec2{X: -nearEps, Y: nearEps}, vec.Vec2{X: -20, Y: 5})
	i2, ok2 := intersect(a, b, vec.Vec2{X: nearEps, Y: nearEps}, vec.Vec2{X: 20, Y: 5})
	pick := func() (vec.Vec2, bool) {
		switch {
		case ok1 && i1.Y > 0:
			return i1, true
		case ok2 && i2.Y > 0:
			return i2, true
		}
		return vec.Vec2{}, false
	}
	if a.Y <= 0 {
		var ok bool
		if a, ok = pick(); !ok {
			return a, b, false
		}
	}
	if b.Y <= 0 {
		var ok bool
		if b, ok = pick(); !ok {
			return a, b, false
		}
	}
	return a, b, true
}

// drawWall projects a wall in player space and renders it as vertical
// spans, darker with depth.
func (p *Portal) drawWall(c *raster.Canvas, a, b vec.Vec2) {
	const cx, cy, focal, half = 50, 50, 16, 50
	x1, x2 := -a.X*focal/a.Y, -b.X*focal/b.Y
	if x1 > x2 {
		x1, x2 = x2, x1
		a, b = b, a
	}
	if x2-x1 < 1e-9 {
		return
	}
	_, _, vw, _ := c.Viewport()
	lo := int(math.Max(math.Ceil(cx+x1), 0))
	hi := int(math.Min(math.Floor(cx+x2), float64(vw)))
	for i := lo; i <= hi; i++ {
		n := (float64(i) - cx - x1) / (x2 - x1)
		depth := a.Y + (b.Y-a.Y)*n
		// 1/z interpolates linearly in screen space
		inv := 1/a.Y + (1/b.Y-1/a.Y)*n
		col := p.shadeFor(depth)
		c.SetDrawColor(col.R, col.G, col.B)
		c.VLine(i, round(cy-half*inv), round(cy+half*inv))
	}
}

func (p *Portal) shadeFor(depth float64) raster.Color {
	const far = 60.0
	i := int(depth / far * float64(len(p.shade)))
	i = min(max(i, 0), len(p.shade)-1)
	return p.shade[i]
}

// intersect returns the intersection of the infinite lines through a1-a2
// and b1-b2. It reports false for parallel lines.
func intersect(a1, a2, b1, b2 vec.Vec2) (vec.Vec2, bool) {
	d1, d2 := a2.Sub(a1), b2.Sub(b1)
	den := cross(d1, d2)
	if den == 0 {
		return vec.Vec2{}, false
	}
	t := cross(b1.Sub(a1), d2) / den
	return a1.Add(d1.Mul(t)), true
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func round(v float64) int {
	return int(math.Round(v))
}
