//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image in sync with the grid.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, p Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: p}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells and draws them so that cell (x, y) covers the world box
// centred at (x*cellSize, y*cellSize), then applies view (world to screen).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, cellSize float64, view ebiten.GeoM) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillStatesRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(cellSize, cellSize)
	op.GeoM.Concat(view)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
