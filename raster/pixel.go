package raster

// pixelIndex is the only bounds check on buffer coordinates.
func (c *Canvas) pixelIndex(x, y int) (int, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, false
	}
	return y*c.stride + x, true
}

func (c *Canvas) setPixel(i int) {
	c.pix[i] = c.drawPix
}

// Pixel returns the packed value at buffer coordinates (x, y).
func (c *Canvas) Pixel(x, y int) (uint32, bool) {
	i, ok := c.pixelIndex(x, y)
	if !ok {
		return 0, false
	}
	return c.pix[i], true
}

// PixelColor returns the colour at buffer coordinates (x, y), or black when
// (x, y) is outside the buffer. The viewport is not applied.
func (c *Canvas) PixelColor(x, y int) Color {
	p, ok := c.Pixel(x, y)
	if !ok {
		return Color{}
	}
	return unpack(p)
}

// inView reports whether viewport coordinates (x, y) are inside the
// viewport. Both edges are inclusive.
func (c *Canvas) inView(x, y int) bool {
	return x >= 0 && y >= 0 && x <= c.viewW && y <= c.viewH
}

// Point draws one pixel at viewport coordinates (x, y).
func (c *Canvas) Point(x, y int) {
	if !c.inView(x, y) {
		return
	}
	if i, ok := c.pixelIndex(x+c.viewX, y+c.viewY); ok {
		c.setPixel(i)
	}
}

// PointCount draws count pixels starting at viewport coordinates (x, y) in
// raster order. A run longer than the row continues on the next row; it is
// clamped at the end of the buffer.
func (c *Canvas) PointCount(x, y, count int) {
	if count <= 0 || !c.inView(x, y) {
		return
	}
	bx, by := x+c.viewX, y+c.viewY
	if _, ok := c.pixelIndex(bx, by); !ok {
		return
	}
	if remain := c.width*c.height - (by*c.width + bx); count > remain {
		count = remain
	}
	for count > 0 {
		n := minOf(count, c.width-bx)
		start := by*c.stride + bx
		run := c.pix[start : start+n]
		for i := range run {
			run[i] = c.drawPix
		}
		count -= n
		bx = 0
		by++
	}
}

// Points draws count points from data, which holds interleaved x, y pairs.
func (c *Canvas) Points(data []int, count int) {
	count = minOf(count, len(data)/2)
	for i := 0; i < count; i++ {
		c.Point(data[i*2], data[i*2+1])
	}
}
