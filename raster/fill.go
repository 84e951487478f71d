package raster

type fillSeed struct {
	x, y int
}

// Fill flood-fills the 4-connected region around viewport coordinates
// (x, y) whose colour equals the seed pixel's colour. The region is confined
// to the viewport and the buffer. It returns the number of pixels written;
// filling a region that already has the draw colour writes nothing.
//
// The traversal uses an explicit work list and a visited bitmap, so its
// memory is bounded by the buffer size regardless of the region's shape.
func (c *Canvas) Fill(x, y int) int {
	n, _ := c.fill(x, y, -1)
	return n
}

// FillLimit is like Fill but stops after max pixels have been written. If
// the region was not completed it returns ErrFillLimit.
func (c *Canvas) FillLimit(x, y, max int) (int, error) {
	if max < 0 {
		max = 0
	}
	n, err := c.fill(x, y, max)
	if err != nil {
		Logger().Debug("fill stopped", "x", x, "y", y, "written", n, "limit", max)
	}
	return n, err
}

func (c *Canvas) fill(x, y, limit int) (int, error) {
	if !c.inView(x, y) {
		return 0, nil
	}
	sx, sy := x+c.viewX, y+c.viewY
	seed, ok := c.pixelIndex(sx, sy)
	if !ok {
		return 0, nil
	}
	target := c.pix[seed] & maskRGB
	if target == c.drawPix&maskRGB {
		return 0, nil
	}

	minX := maxOf(0, c.viewX)
	maxX := minOf(c.width-1, c.viewX+c.viewW)
	minY := maxOf(0, c.viewY)
	maxY := minOf(c.height-1, c.viewY+c.viewH)

	c.resetVisited()
	matches := func(px, py int) bool {
		return c.pix[py*c.stride+px]&maskRGB == target
	}
	push := func(px, py int) {
		if py < minY || py > maxY || c.isVisited(px, py) || !matches(px, py) {
			return
		}
		c.markVisited(px, py)
		c.work = append(c.work, fillSeed{px, py})
	}

	written := 0
	c.work = c.work[:0]
	push(sx, sy)
	for len(c.work) > 0 {
		p := c.work[len(c.work)-1]
		c.work = c.work[:len(c.work)-1]
		if !matches(p.x, p.y) {
			continue
		}

		left := p.x
		for left-1 >= minX && !c.isVisited(left-1, p.y) && matches(left-1, p.y) {
			left--
			c.markVisited(left, p.y)
		}
		right := p.x
		for right+1 <= maxX && !c.isVisited(right+1, p.y) && matches(right+1, p.y) {
			right++
			c.markVisited(right, p.y)
		}

		row := p.y * c.stride
		for px := left; px <= right; px++ {
			if limit >= 0 && written == limit {
				c.work = c.work[:0]
				return written, ErrFillLimit
			}
			c.setPixel(row + px)
			written++
			push(px, p.y-1)
			push(px, p.y+1)
		}
	}
	return written, nil
}

func (c *Canvas) resetVisited() {
	n := (c.width*c.height + 63) / 64
	if cap(c.visited) < n {
		c.visited = make([]uint64, n)
		return
	}
	c.visited = c.visited[:n]
	clear(c.visited)
}

func (c *Canvas) isVisited(x, y int) bool {
	i := y*c.width + x
	return c.visited[i/64]&(1<<(i%64)) != 0
}

func (c *Canvas) markVisited(x, y int) {
	i := y*c.width + x
	c.visited[i/64] |= 1 << (i % 64)
}
