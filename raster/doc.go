// Package raster is a software rasterizer for a single CPU-owned pixel buffer.
//
// A Canvas owns a 32-bit pixel buffer, the current draw and clear colours, a
// palette and a viewport. Every primitive is built on the ones below it:
//
//	pixel access → point/span → line → rect, triangle, quad, ellipse → fill.
//
// All primitive coordinates are relative to the active viewport. Coordinates
// outside the viewport or the buffer are clipped silently. Nothing is blended:
// every write replaces the pixel with the draw colour.
//
// Pixels are packed as r | g<<8 | b<<16 with the top byte unused. Present
// uploads the whole buffer to a Surface (for example the host framebuffer)
// and asks it to display the frame.
//
// A Canvas is not safe for concurrent use.
package raster
