package raster

import (
	"fmt"
	"image/color"
)

// Channel masks of a packed pixel. The top byte is unused and always zero.
const (
	maskR   = 0x000000FF
	maskG   = 0x0000FF00
	maskB   = 0x00FF0000
	maskRGB = maskR | maskG | maskB
)

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// RGB returns the colour with the given components.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// ColorOf converts any color.Color. Alpha is dropped; callers should pass
// opaque colours.
func ColorOf(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	if rc, ok := c.(Color); ok {
		return rc
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGBA implements color.Color. Alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// RGBA8 returns c as an opaque color.RGBA.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) pack() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

func unpack(p uint32) Color {
	return Color{R: uint8(p & maskR), G: uint8((p & maskG) >> 8), B: uint8((p & maskB) >> 16)}
}

// SetDrawColor sets the colour used by every primitive.
func (c *Canvas) SetDrawColor(r, g, b uint8) {
	c.setDraw(Color{R: r, G: g, B: b})
}

// SetDrawColorRGBA sets the draw colour from any color.Color.
func (c *Canvas) SetDrawColorRGBA(col color.Color) {
	c.setDraw(ColorOf(col))
}

// SetDrawColorIndex sets the draw colour from the active palette.
// It panics if index is out of range.
func (c *Canvas) SetDrawColorIndex(index int) {
	c.setDraw(c.paletteAt(index))
}

// SetClearColor sets the colour used by Clear.
func (c *Canvas) SetClearColor(r, g, b uint8) {
	c.clearColor = Color{R: r, G: g, B: b}
}

// SetClearColorIndex sets the clear colour from the active palette.
// It panics if index is out of range.
func (c *Canvas) SetClearColorIndex(index int) {
	c.clearColor = c.paletteAt(index)
}

// DrawColor returns the current draw colour.
func (c *Canvas) DrawColor() Color { return c.drawColor }

// ClearColor returns the current clear colour.
func (c *Canvas) ClearColor() Color { return c.clearColor }

func (c *Canvas) setDraw(col Color) {
	c.drawColor = col
	c.drawPix = col.pack()
}

func (c *Canvas) paletteAt(index int) Color {
	col, ok := c.palette.Lookup(index)
	if !ok {
		panic(fmt.Sprintf("raster: palette index %d out of range [0,%d)", index, len(c.palette)))
	}
	return col
}
