package hal

// rgbaFromRGBX converts RGBX8888 rows to packed RGBA with opaque alpha.
func rgbaFromRGBX(dst, src []byte, width, height, stride int) {
	for y := 0; y < height; y++ {
		row := src[y*stride : y*stride+width*4]
		out := dst[y*width*4 : (y+1)*width*4]
		for i := 0; i < len(row); i += 4 {
			out[i+0] = row[i+0]
			out[i+1] = row[i+1]
			out[i+2] = row[i+2]
			out[i+3] = 0xFF
		}
	}
}
