package render

import "image/color"

// FillPaletteRGBA converts cell values into RGBA pixels in buf using palette.
// Cells without a palette entry are painted transparent black and counted in
// the returned value.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) int {
	invalid := 0
	for i, c := range cells {
		base := i * 4
		idx := int(c)
		if idx >= len(palette) {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			invalid++
			continue
		}
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
	return invalid
}
