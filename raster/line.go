package raster

// VLine draws a vertical line from y1 to y2 inclusive.
func (c *Canvas) VLine(x, y1, y2 int) {
	y1, y2 = ordered(y1, y2)
	y1 = maxOf(y1, 0)
	y2 = minOf(y2, c.viewH)
	for y := y1; y <= y2; y++ {
		c.Point(x, y)
	}
}

// HLine draws a horizontal span from x1 to x2 inclusive. The span is clamped
// to the viewport and to the buffer width, then written as one run.
func (c *Canvas) HLine(y, x1, x2 int) {
	x1, x2 = ordered(x1, x2)
	left := maxOf(x1, maxOf(0, -c.viewX))
	right := minOf(x2, minOf(c.viewW, c.width-1-c.viewX))
	if right < left {
		return
	}
	c.PointCount(left, y, right-left+1)
}

// Line draws a line between two points, both included. Axis-aligned lines
// use VLine and HLine.
func (c *Canvas) Line(x1, y1, x2, y2 int) {
	dx := absOf(x2 - x1)
	dy := absOf(y2 - y1)
	switch {
	case dx == 0:
		c.VLine(x1, y1, y2)
		return
	case dy == 0:
		c.HLine(y1, x1, x2)
		return
	}

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}
	for {
		c.Point(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1 += sy
		}
	}
}

// Lines draws a closed polyline of segments edges. data holds interleaved
// x, y vertices; edge i joins vertex i to vertex i+1, and the last edge
// returns to vertex 0.
func (c *Canvas) Lines(data []int, segments int) {
	segments = minOf(segments, len(data)/2)
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		c.Line(data[i*2], data[i*2+1], data[j*2], data[j*2+1])
	}
}
