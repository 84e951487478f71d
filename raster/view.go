package raster

// SetView makes the rectangle (x1, y1)–(x2, y2) the viewport without
// drawing anything. Primitive coordinates are offset by (x1, y1) and
// clipped to [0, x2-x1] × [0, y2-y1].
func (c *Canvas) SetView(x1, y1, x2, y2 int) {
	c.viewX, c.viewY = x1, y1
	c.viewW, c.viewH = x2-x1, y2-y1
	Logger().Debug("view set", "x", x1, "y", y1, "w", c.viewW, "h", c.viewH)
}

// View sets the viewport like SetView and draws its border with the current
// draw colour. The border is drawn in the new local space, so it lands on
// the requested rectangle in buffer space.
func (c *Canvas) View(x1, y1, x2, y2 int) {
	c.SetView(x1, y1, x2, y2)
	c.Rect(0, 0, c.viewW, c.viewH)
}

// ResetView restores full-buffer addressing.
func (c *Canvas) ResetView() {
	c.viewX, c.viewY = 0, 0
	c.viewW, c.viewH = c.width, c.height
}

// Viewport returns the current viewport offset and size.
func (c *Canvas) Viewport() (x, y, w, h int) {
	return c.viewX, c.viewY, c.viewW, c.viewH
}
