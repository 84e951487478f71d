package raster

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// DefaultFont is the font used by Text until SetFont is called.
var DefaultFont tinyfont.Fonter = &tinyfont.TomThumb

var _ drivers.Displayer = (*Display)(nil)

// Display adapts a Canvas to drivers.Displayer so tinyfont and other
// drivers-based renderers can draw into it. Coordinates are viewport
// coordinates and each pixel uses the colour passed to SetPixel.
type Display struct {
	c    *Canvas
	font tinyfont.Fonter
}

// Display returns the canvas's drivers.Displayer adapter.
func (c *Canvas) Display() *Display {
	if c.display == nil {
		c.display = &Display{c: c, font: DefaultFont}
	}
	return c.display
}

func (d *Display) Size() (x, y int16) {
	return int16(minOf(d.c.viewW, d.c.width)), int16(minOf(d.c.viewH, d.c.height))
}

func (d *Display) SetPixel(x, y int16, col color.RGBA) {
	saved := d.c.drawPix
	d.c.drawPix = Color{R: col.R, G: col.G, B: col.B}.pack()
	d.c.Point(int(x), int(y))
	d.c.drawPix = saved
}

// Display presents the canvas.
func (d *Display) Display() error {
	return d.c.Present()
}

// SetFont sets the font used by Text. nil restores DefaultFont.
func (c *Canvas) SetFont(f tinyfont.Fonter) {
	if f == nil {
		f = DefaultFont
	}
	c.Display().font = f
}

// Text draws s with the current draw colour. (x, y) is the left end of the
// baseline in viewport coordinates.
func (c *Canvas) Text(x, y int, s string) {
	d := c.Display()
	tinyfont.WriteLine(d, d.font, int16(x), int16(y), s, c.drawColor.RGBA8())
}

// TextWidth returns the advance width of s in the current font.
func (c *Canvas) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(c.Display().font, s)
	return int(w)
}
