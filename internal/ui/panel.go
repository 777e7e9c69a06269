//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel draws the control bar and a status line over the grid.
type Panel struct {
	bar   *ControlBar
	pixel *ebiten.Image
}

// NewPanel constructs the Start/Stop/Exit panel.
func NewPanel() *Panel {
	p := &Panel{bar: NewControlBar()}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Update feeds the current pointer state to the buttons and returns the
// button clicked this frame, if any.
func (p *Panel) Update(x, y int, pressed, justPressed bool) (Button, bool) {
	return p.bar.Update(x, y, pressed, justPressed)
}

// Captures reports whether (x, y) is over the panel, so the pointer should
// not edit cells underneath it.
func (p *Panel) Captures(x, y int) bool { return p.bar.Contains(x, y) }

// Draw paints the buttons and the status line for sim.
func (p *Panel) Draw(screen *ebiten.Image, mode core.RunMode, sim core.Sim) {
	for _, v := range p.bar.Views() {
		p.drawButton(screen, v)
	}
	var snap core.ParameterSnapshot
	if provider, ok := sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	face := basicfont.Face7x13
	y := p.bar.Bottom() + statusBaseline
	text.Draw(screen, StatusLine(mode, snap), face, buttonMargin, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

func (p *Panel) drawButton(screen *ebiten.Image, v ButtonView) {
	fill(screen, p.pixel, v.Rect, v.State.Color())

	face := basicfont.Face7x13
	label := v.Button.Label()
	bounds := text.BoundString(face, label)
	x := v.Rect.Min.X + (v.Rect.Dx()-bounds.Dx())/2
	y := v.Rect.Min.Y + (v.Rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, color.White)
}

func fill(dst, pixel *ebiten.Image, rect image.Rectangle, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, op)
}

const statusBaseline = 14
