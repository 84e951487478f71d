package raster

import "math"

// Ellipse draws the outline of an ellipse as segments straight chords.
// Fewer than 3 segments draws nothing.
func (c *Canvas) Ellipse(cx, cy, rx, ry, segments int) {
	if segments < 3 {
		return
	}
	vertex := func(i int) (int, int) {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := cx + int(math.Round(float64(rx)*math.Cos(theta)))
		y := cy + int(math.Round(float64(ry)*math.Sin(theta)))
		return x, y
	}

	x0, y0 := vertex(0)
	px, py := x0, y0
	for i := 1; i < segments; i++ {
		x, y := vertex(i)
		c.Line(px, py, x, y)
		px, py = x, y
	}
	c.Line(px, py, x0, y0)
}

// Circle draws the outline of a circle as segments chords.
func (c *Canvas) Circle(cx, cy, r, segments int) {
	c.Ellipse(cx, cy, r, r, segments)
}

// FillEllipse fills an approximation of an ellipse.
//
// Rows cover [cy-ry/2, cy+ry/2). Each row is a span of half-width
// cos(2t)*rx, where t is the row offset from cy scaled so that the extent
// maps to a quarter turn. The shape is a stylised lens, not a true conic.
func (c *Canvas) FillEllipse(cx, cy, rx, ry int) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := cy - ry/2; y < cy+ry/2; y++ {
		t := float64(y-cy) / float64(ry) * (math.Pi / 2)
		half := int(math.Cos(2*t) * float64(rx))
		c.HLine(y, cx-half, cx+half)
	}
}

// FillCircle is FillEllipse with equal radii.
func (c *Canvas) FillCircle(cx, cy, r int) {
	c.FillEllipse(cx, cy, r, r)
}
