package raster

// Rect draws the outline of the rectangle with corners (x1, y1) and (x2, y2).
func (c *Canvas) Rect(x1, y1, x2, y2 int) {
	c.Line(x1, y1, x2, y1)
	c.Line(x2, y1, x2, y2)
	c.Line(x1, y1, x1, y2)
	c.Line(x1, y2, x2, y2)
}

// FillRect fills rows y1 through y2. Rows are not reordered: y1 > y2 draws
// nothing.
func (c *Canvas) FillRect(x1, y1, x2, y2 int) {
	y1 = maxOf(y1, 0)
	y2 = minOf(y2, c.viewH)
	for y := y1; y <= y2; y++ {
		c.HLine(y, x1, x2)
	}
}

// Quad draws the outline of the quadrilateral p1 p2 p3 p4 and fills it as
// the triangles (p1, p2, p4) and (p2, p3, p4).
func (c *Canvas) Quad(x1, y1, x2, y2, x3, y3, x4, y4 int) {
	c.QuadOutline(x1, y1, x2, y2, x3, y3, x4, y4)
	c.Triangle(x1, y1, x2, y2, x4, y4)
	c.Triangle(x2, y2, x3, y3, x4, y4)
}

// QuadOutline draws only the four edges of the quadrilateral.
func (c *Canvas) QuadOutline(x1, y1, x2, y2, x3, y3, x4, y4 int) {
	c.Lines([]int{x1, y1, x2, y2, x3, y3, x4, y4}, 4)
}
