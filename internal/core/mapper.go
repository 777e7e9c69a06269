package core

import "math"

// Vec2 is a position in world units.
type Vec2 struct {
	X, Y float64
}

// Mapper projects between world space and grid cells. Cell (x, y) is a square
// of side CellSize centred at (x*CellSize, y*CellSize).
type Mapper struct {
	W, H     int
	CellSize float64
}

// NewMapper returns a Mapper for a w*h grid.
func NewMapper(w, h int, cellSize float64) Mapper {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Mapper{W: w, H: h, CellSize: cellSize}
}

// WorldToCell returns the index of the cell whose box contains pos. Boxes are
// half-open, [centre-half, centre+half) on each axis, so every point on the
// grid belongs to exactly one cell.
func (m Mapper) WorldToCell(pos Vec2) (int, bool) {
	x, ok := m.axis(pos.X, m.W)
	if !ok {
		return 0, false
	}
	y, ok := m.axis(pos.Y, m.H)
	if !ok {
		return 0, false
	}
	return y*m.W + x, true
}

func (m Mapper) axis(v float64, n int) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	f := math.Floor((v + m.CellSize/2) / m.CellSize)
	if f < 0 || f >= float64(n) {
		return 0, false
	}
	return int(f), true
}

// CellToWorld returns the centre of cell i.
func (m Mapper) CellToWorld(i int) Vec2 {
	x, y := i%m.W, i/m.W
	return Vec2{X: float64(x) * m.CellSize, Y: float64(y) * m.CellSize}
}

// CellBounds returns the min and max corners of cell i's box.
func (m Mapper) CellBounds(i int) (Vec2, Vec2) {
	c := m.CellToWorld(i)
	half := m.CellSize / 2
	return Vec2{X: c.X - half, Y: c.Y - half}, Vec2{X: c.X + half, Y: c.Y + half}
}

// WorldSize returns the extent of the whole grid in world units.
func (m Mapper) WorldSize() Vec2 {
	return Vec2{X: float64(m.W) * m.CellSize, Y: float64(m.H) * m.CellSize}
}

// WorldCenter returns the centre of the grid in world units.
func (m Mapper) WorldCenter() Vec2 {
	half := m.CellSize / 2
	s := m.WorldSize()
	return Vec2{X: s.X/2 - half, Y: s.Y/2 - half}
}
