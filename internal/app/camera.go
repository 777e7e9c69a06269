package app

import (
	"math"

	"life-ca/internal/core"
)

const (
	cameraMoveSpeed    = 10.0
	cameraMaxZoomSpeed = 100.0
	cameraZoomSpeed    = 5.0
	cameraMinScale     = 0.05
	cameraMaxScale     = 10.0
)

// Camera is a 2D orthographic view with pan and zoom momentum. Scale is world
// units per screen pixel; Pos is the world point at the centre of the screen.
type Camera struct {
	Pos   core.Vec2
	Scale float64

	velocity  core.Vec2
	zoomSpeed float64
}

// FitCamera centres the grid on a screen of the given size and zooms so the
// whole grid is visible.
func FitCamera(m core.Mapper, screenW, screenH int) Camera {
	size := m.WorldSize()
	scale := 1.0
	if screenW > 0 && screenH > 0 {
		scale = math.Max(size.X/float64(screenW), size.Y/float64(screenH))
	}
	return Camera{Pos: m.WorldCenter(), Scale: clamp(scale, cameraMinScale, cameraMaxScale)}
}

// Pan advances pan momentum by one camera tick. dir is the requested
// direction (any length; zero means no key held). halt stops immediately.
func (c *Camera) Pan(dir core.Vec2, halt bool) {
	var accel core.Vec2
	if l := math.Hypot(dir.X, dir.Y); l == 0 {
		accel = core.Vec2{X: -c.velocity.X * 0.1, Y: -c.velocity.Y * 0.1}
	} else {
		accel = core.Vec2{X: dir.X / l, Y: dir.Y / l}
	}
	c.velocity.X = clamp(c.velocity.X+accel.X, -cameraMoveSpeed, cameraMoveSpeed)
	c.velocity.Y = clamp(c.velocity.Y+accel.Y, -cameraMoveSpeed, cameraMoveSpeed)
	if halt {
		c.velocity = core.Vec2{}
	}
	c.Pos.X += c.velocity.X
	c.Pos.Y += c.velocity.Y
}

// Zoom advances zoom momentum by one camera tick of dt seconds. wheel is the
// scroll amount this tick; scrolling up zooms in.
func (c *Camera) Zoom(wheel, dt float64) {
	delta := -wheel * cameraZoomSpeed
	if wheel == 0 {
		delta = -c.zoomSpeed * 0.2
	}
	c.zoomSpeed = clamp(c.zoomSpeed+delta, -cameraMaxZoomSpeed, cameraMaxZoomSpeed)
	c.Scale = clamp(c.Scale+c.zoomSpeed*dt, cameraMinScale, cameraMaxScale)
}

// ScreenToWorld maps a screen pixel to world space.
func (c *Camera) ScreenToWorld(sx, sy float64, screenW, screenH int) core.Vec2 {
	return core.Vec2{
		X: c.Pos.X + (sx-float64(screenW)/2)*c.Scale,
		Y: c.Pos.Y + (sy-float64(screenH)/2)*c.Scale,
	}
}

// WorldToScreen maps a world point to screen pixels.
func (c *Camera) WorldToScreen(p core.Vec2, screenW, screenH int) (float64, float64) {
	return (p.X-c.Pos.X)/c.Scale + float64(screenW)/2, (p.Y-c.Pos.Y)/c.Scale + float64(screenH)/2
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
