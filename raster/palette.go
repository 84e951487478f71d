package raster

import (
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette maps small integer indices to colours.
type Palette []Color

// EGA is the default 16-colour palette.
var EGA = Palette{
	{0x00, 0x00, 0x00}, {0x00, 0x00, 0xAA}, {0x00, 0xAA, 0x00}, {0x00, 0xAA, 0xAA},
	{0xAA, 0x00, 0x00}, {0xAA, 0x00, 0xAA}, {0xAA, 0x55, 0x00}, {0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55}, {0x55, 0x55, 0xFF}, {0x55, 0xFF, 0x55}, {0x55, 0xFF, 0xFF},
	{0xFF, 0x55, 0x55}, {0xFF, 0x55, 0xFF}, {0xFF, 0xFF, 0x55}, {0xFF, 0xFF, 0xFF},
}

// Lookup returns the colour at index and whether the index is valid.
func (p Palette) Lookup(index int) (Color, bool) {
	if index < 0 || index >= len(p) {
		return Color{}, false
	}
	return p[index], true
}

// SetPalette copies p into the canvas and makes it the active palette.
// An empty palette restores EGA. Later changes to p do not affect the canvas.
func (c *Canvas) SetPalette(p Palette) {
	if len(p) == 0 {
		p = EGA
	}
	c.palette = slices.Clone(p)
	Logger().Debug("palette set", "entries", len(c.palette))
}

// Palette returns a copy of the active palette.
func (c *Canvas) Palette() Palette {
	return slices.Clone(c.palette)
}

// Ramp returns n colours blending from one end to the other. Colours are
// blended in L*a*b*, or in RGB when either end is a grey.
func Ramp(from, to Color, n int) Palette {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return Palette{from}
	}
	c1, _ := colorful.MakeColor(from)
	c2, _ := colorful.MakeColor(to)
	grey := (from.R == from.G && from.G == from.B) || (to.R == to.G && to.G == to.B)

	out := make(Palette, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		var mix colorful.Color
		if grey {
			mix = c1.BlendRgb(c2, t)
		} else {
			mix = c1.BlendLab(c2, t)
		}
		out[i] = ColorOf(mix.Clamped())
	}
	return out
}

// Lighten raises the HCL luminance of c by p (0..1).
func Lighten(c Color, p float64) Color {
	src, _ := colorful.MakeColor(c)
	h, ch, l := src.Hcl()
	return ColorOf(colorful.Hcl(h, ch, l+p).Clamped())
}

// Darken lowers the HCL luminance of c by p (0..1).
func Darken(c Color, p float64) Color {
	return Lighten(c, -p)
}
