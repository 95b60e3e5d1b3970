package render

import "image/color"

// Greys is the default palette: 0 is white, 1 mid grey and 2 black, the
// same direction as a matplotlib "Greys" ramp.
var Greys = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last colour.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
