package raster

import (
	"cmp"
	"math"
	"slices"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Triangle fills the triangle with the given vertices.
//
// Vertices are sorted by y. A triangle with a horizontal edge is filled
// directly; any other triangle is split at the middle vertex into a
// flat-bottom and a flat-top half.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 int) {
	pts := []Point{{x1, y1}, {x2, y2}, {x3, y3}}
	slices.SortStableFunc(pts, func(a, b Point) int { return cmp.Compare(a.Y, b.Y) })

	switch {
	case pts[1].Y == pts[2].Y:
		c.triangleFlatBottom(pts[0], pts[1], pts[2])
	case pts[0].Y == pts[1].Y:
		c.triangleFlatTop(pts[0], pts[1], pts[2])
	default:
		top, mid, bottom := pts[0], pts[1], pts[2]
		t := float64(mid.Y-top.Y) / float64(bottom.Y-top.Y)
		split := Point{
			X: int(math.Round(float64(top.X) + t*float64(bottom.X-top.X))),
			Y: mid.Y,
		}
		c.triangleFlatBottom(top, mid, split)
		c.triangleFlatTop(mid, split, bottom)
	}
}

// TriangleOutline draws the three edges of the triangle.
func (c *Canvas) TriangleOutline(x1, y1, x2, y2, x3, y3 int) {
	c.Lines([]int{x1, y1, x2, y2, x3, y3}, 3)
}

// triangleFlatBottom fills from apex down to the base a–b (a.Y == b.Y).
// Edge positions are truncated toward zero.
func (c *Canvas) triangleFlatBottom(apex, a, b Point) {
	if a.Y == apex.Y {
		c.flatSpan(apex, a, b)
		return
	}
	dy := float64(a.Y - apex.Y)
	slopeA := float64(a.X-apex.X) / dy
	slopeB := float64(b.X-apex.X) / dy

	xa, xb := float64(apex.X), float64(apex.X)
	for y := apex.Y; y <= a.Y; y++ {
		c.HLine(y, int(xa), int(xb))
		xa += slopeA
		xb += slopeB
	}
}

// triangleFlatTop fills from apex up to the top edge a–b (a.Y == b.Y).
// Edge positions are rounded to nearest.
func (c *Canvas) triangleFlatTop(a, b, apex Point) {
	if apex.Y == a.Y {
		c.flatSpan(apex, a, b)
		return
	}
	dy := float64(apex.Y - a.Y)
	slopeA := float64(apex.X-a.X) / dy
	slopeB := float64(apex.X-b.X) / dy

	xa, xb := float64(apex.X), float64(apex.X)
	for y := apex.Y; y >= a.Y; y-- {
		c.HLine(y, int(math.Round(xa)), int(math.Round(xb)))
		xa -= slopeA
		xb -= slopeB
	}
}

// flatSpan draws a zero-height triangle as one span.
func (c *Canvas) flatSpan(p0, p1, p2 Point) {
	lo := minOf(p0.X, minOf(p1.X, p2.X))
	hi := maxOf(p0.X, maxOf(p1.X, p2.X))
	c.HLine(p0.Y, lo, hi)
}
