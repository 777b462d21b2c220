package render

import (
	"image/color"

	"forklift-ca/internal/sims/cascade"
)

// CascadePalette colours the cascade display buffer: empty floor, paper roll,
// and a roll removed by the most recent pass.
func CascadePalette() []color.RGBA {
	p := make([]color.RGBA, cascade.DisplayRemoved+1)
	p[cascade.DisplayEmpty] = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	p[cascade.DisplayOccupied] = color.RGBA{R: 236, G: 232, B: 218, A: 255}
	p[cascade.DisplayRemoved] = color.RGBA{R: 220, G: 72, B: 56, A: 255}
	return p
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
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

// fillMaskRGBA writes tint wherever mask is set and transparent elsewhere.
func fillMaskRGBA(buf []byte, mask []bool, tint color.RGBA) {
	for i, on := range mask {
		base := i * 4
		if !on {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = tint.A
	}
}
