//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay outlines the cell under the pointer.
type Overlay struct {
	pixel *ebiten.Image
	color color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{color: color.RGBA{R: 255, G: 200, B: 64, A: 255}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw outlines the world box [lo, hi) after projecting it through view.
func (o *Overlay) Draw(screen *ebiten.Image, lo, hi core.Vec2, view ebiten.GeoM) {
	x0, y0 := view.Apply(lo.X, lo.Y)
	x1, y1 := view.Apply(hi.X, hi.Y)
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	if r.Dx() < 3 || r.Dy() < 3 {
		return
	}
	const t = 2
	fill(screen, o.pixel, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), o.color)
	fill(screen, o.pixel, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), o.color)
	fill(screen, o.pixel, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), o.color)
	fill(screen, o.pixel, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), o.color)
}
