package scene

import (
	"math"

	"golang.org/x/image/colornames"

	"renderdemon/hal"
	"renderdemon/input"
	"renderdemon/raster"
)

// Primitives exercises every Canvas primitive on a 640×480 layout.
type Primitives struct {
	angle  float64
	paused bool
	ramp   raster.Palette
}

func NewPrimitives() *Primitives {
	return &Primitives{
		ramp: raster.Ramp(raster.ColorOf(colornames.Navy), raster.ColorOf(colornames.Gold), 16),
	}
}

func (p *Primitives) Name() string { return "primitives" }

// Update advances the rotating line. Space pauses it.
func (p *Primitives) Update(keys *input.Keys) {
	if keys.Pressed(hal.KeySpace) {
		p.paused = !p.paused
	}
	if !p.paused {
		p.angle += 0.01
	}
}

func (p *Primitives) Render(c *raster.Canvas) {
	c.SetDrawColorRGBA(colornames.Lime)
	c.Point(100, 10)
	c.Rect(50, 50, 150, 75)

	c.SetDrawColorRGBA(colornames.Magenta)
	c.Quad(200, 300, 500, 325, 450, 450, 250, 475)

	c.SetDrawColorRGBA(colornames.Yellow)
	c.Line(200, 200, 300, 250)

	const px, py, r = 250, 250, 100
	x2, y2 := p.tip(px, py, r)
	c.Line(px, py, x2, y2)
	c.Triangle(px-50, py, px+50, py, x2, y2)

	c.SetDrawColorRGBA(colornames.Cyan)
	c.Ellipse(540, 80, 60, 30, 32)
	c.Circle(540, 80, 20, 12)

	c.SetDrawColorRGBA(colornames.Orange)
	c.FillEllipse(560, 220, 50, 40)
	c.FillCircle(560, 300, 30)

	// a box split by its diagonal; only the upper-right half is filled
	c.SetDrawColorRGBA(colornames.White)
	c.Rect(20, 380, 120, 460)
	c.Line(20, 380, 120, 460)
	c.SetDrawColorRGBA(colornames.Red)
	c.Fill(100, 400)

	for i := range c.Palette() {
		c.SetDrawColorIndex(i)
		c.FillRect(300+i*20, 10, 317+i*20, 24)
	}
	for i, col := range p.ramp {
		c.SetDrawColor(col.R, col.G, col.B)
		c.FillRect(300+i*20, 30, 317+i*20, 40)
	}
}

func (p *Primitives) tip(px, py, r int) (int, int) {
	return int(math.Cos(p.angle)*float64(r)) + px, int(math.Sin(p.angle)*float64(r)) + py
}
