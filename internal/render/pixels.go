package render

import (
	"image/color"

	"life-ca/internal/core"
)

// Palette maps cell states to colors.
type Palette struct {
	Alive color.Color
	Empty color.Color
}

// DefaultPalette returns light alive cells on a dark grid.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 235, G: 235, B: 220, A: 255},
		Empty: color.RGBA{R: 38, G: 38, B: 44, A: 255},
	}
}

// fillStatesRGBA converts cell states into RGBA pixels in buf, one pixel per cell.
func fillStatesRGBA(buf []byte, cells []uint8, p Palette) {
	rOn, gOn, bOn, aOn := p.Alive.RGBA()
	rOff, gOff, bOff, aOff := p.Empty.RGBA()
	for i, c := range cells {
		base := i * 4
		if core.CellState(c) == core.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
