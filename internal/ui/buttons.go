package ui

import (
	"image"
	"image/color"
)

// Button identifies a control on the bar.
type Button uint8

const (
	ButtonStart Button = iota
	ButtonStop
	ButtonExit
)

func (b Button) Label() string {
	switch b {
	case ButtonStart:
		return "Start"
	case ButtonStop:
		return "Stop"
	default:
		return "Exit"
	}
}

// ButtonState is the interaction state of a button this frame.
type ButtonState uint8

const (
	StateNormal ButtonState = iota
	StateHovered
	StatePressed
)

var (
	NormalButton  = color.RGBA{R: 0, G: 204, B: 204, A: 255}
	HoveredButton = color.RGBA{R: 102, G: 204, B: 204, A: 255}
	PressedButton = color.RGBA{R: 102, G: 255, B: 255, A: 255}
)

// Color returns the fill for a state.
func (s ButtonState) Color() color.RGBA {
	switch s {
	case StateHovered:
		return HoveredButton
	case StatePressed:
		return PressedButton
	default:
		return NormalButton
	}
}

const (
	buttonWidth  = 150
	buttonHeight = 50
	buttonMargin = 10
)

// ButtonView is what the panel draws for one button.
type ButtonView struct {
	Button Button
	Rect   image.Rectangle
	State  ButtonState
}

// ControlBar lays out Start, Stop and Exit in a row along the top edge and
// tracks pointer interaction with them.
type ControlBar struct {
	views []ButtonView
}

// NewControlBar lays the buttons out from the top-left corner.
func NewControlBar() *ControlBar {
	b := &ControlBar{}
	x := buttonMargin
	for _, btn := range []Button{ButtonStart, ButtonStop, ButtonExit} {
		r := image.Rect(x, buttonMargin, x+buttonWidth, buttonMargin+buttonHeight)
		b.views = append(b.views, ButtonView{Button: btn, Rect: r})
		x += buttonWidth + 2*buttonMargin
	}
	return b
}

// Update refreshes hover/press state for pointer (x, y). pressed reports the
// left button held, justPressed reports it went down this frame. The button
// clicked this frame, if any, is returned.
func (b *ControlBar) Update(x, y int, pressed, justPressed bool) (Button, bool) {
	var clicked Button
	hit := false
	for i := range b.views {
		v := &b.views[i]
		v.State = StateNormal
		if !pointInRect(x, y, v.Rect) {
			continue
		}
		v.State = StateHovered
		if pressed {
			v.State = StatePressed
		}
		if justPressed {
			clicked, hit = v.Button, true
		}
	}
	return clicked, hit
}

// Contains reports whether (x, y) is over any button.
func (b *ControlBar) Contains(x, y int) bool {
	for _, v := range b.views {
		if pointInRect(x, y, v.Rect) {
			return true
		}
	}
	return false
}

// Views returns the buttons in draw order.
func (b *ControlBar) Views() []ButtonView { return b.views }

// Bottom returns the y coordinate just below the bar.
func (b *ControlBar) Bottom() int { return buttonMargin + buttonHeight + buttonMargin }

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
