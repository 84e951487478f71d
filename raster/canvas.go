package raster

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrNoSurface is returned by Present when the canvas has no surface.
	ErrNoSurface = errors.New("raster: no surface")
	// ErrFillLimit is returned by FillLimit when the region exceeds the limit.
	ErrFillLimit = errors.New("raster: fill limit reached")
)

// Surface is the presentation layer a Canvas hands finished frames to.
//
// Buffer holds 4 bytes per pixel (R, G, B, unused) with StrideBytes per row.
// ClearRGB clears the surface's own back buffer. Present displays the frame.
type Surface interface {
	Width() int
	Height() int
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Canvas draws primitives into an owned 32-bit pixel buffer.
type Canvas struct {
	width  int
	height int
	stride int // pixels per row, >= width
	pix    []uint32

	surf Surface

	drawColor  Color
	drawPix    uint32
	clearColor Color
	palette    Palette

	viewX, viewY int
	viewW, viewH int

	// flood fill scratch, reused between calls
	visited []uint64
	work    []fillSeed

	display *Display
}

// New returns a width×height canvas. surf may be nil when the canvas is
// never presented.
func New(width, height int, surf Surface) *Canvas {
	return NewWithStride(width, height, width, surf)
}

// NewWithStride is like New but rows are stride pixels apart. A stride
// smaller than width is raised to width. Padding pixels are never drawn.
func NewWithStride(width, height, stride int, surf Surface) *Canvas {
	width = maxOf(width, 0)
	height = maxOf(height, 0)
	stride = maxOf(stride, width)
	c := &Canvas{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]uint32, stride*height),
		surf:   surf,
	}
	c.SetPalette(EGA)
	c.setDraw(Color{R: 0xFF, G: 0xFF, B: 0xFF})
	c.ResetView()
	return c
}

// Width returns the buffer width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the buffer height in pixels.
func (c *Canvas) Height() int { return c.height }

// Stride returns the distance between rows in pixels.
func (c *Canvas) Stride() int { return c.stride }

// Pix returns the backing buffer. Pixel (x, y) is Pix()[y*Stride()+x].
func (c *Canvas) Pix() []uint32 { return c.pix }

// Clear asks the surface to clear its back buffer, then fills the whole
// pixel buffer with the clear colour. The viewport is ignored.
func (c *Canvas) Clear() {
	if c.surf != nil {
		c.surf.ClearRGB(c.clearColor.R, c.clearColor.G, c.clearColor.B)
	}
	p := c.clearColor.pack()
	for y := 0; y < c.height; y++ {
		row := c.pix[y*c.stride : y*c.stride+c.width]
		for i := range row {
			row[i] = p
		}
	}
}

// Present uploads the whole buffer to the surface and displays it.
func (c *Canvas) Present() error {
	if c.surf == nil {
		return ErrNoSurface
	}
	buf := c.surf.Buffer()
	stride := c.surf.StrideBytes()
	w := minOf(c.width, c.surf.Width())
	h := minOf(c.height, c.surf.Height())
	if stride < w*4 {
		return fmt.Errorf("raster: surface stride %d too small for width %d", stride, w)
	}
	for y := 0; y < h; y++ {
		src := c.pix[y*c.stride : y*c.stride+w]
		off := y * stride
		if off+w*4 > len(buf) {
			break
		}
		for x, p := range src {
			binary.LittleEndian.PutUint32(buf[off+x*4:], p&maskRGB)
		}
	}
	if err := c.surf.Present(); err != nil {
		return fmt.Errorf("raster: present: %w", err)
	}
	return nil
}
