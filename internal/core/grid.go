package core

import "fmt"

// Grid stores a fixed-size 2D field of cell states in row-major order.
// Index i maps to (i%W, i/W). Dimensions never change after construction.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Len returns the number of cells, W*H.
func (g *Grid) Len() int { return len(g.data) }

// Index returns the linear index for coordinates (x, y).
func (g *Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return y*g.W + x
}

// Coords returns the (x, y) position of index i.
func (g *Grid) Coords(i int) (int, int) {
	g.check(i)
	return i % g.W, i / g.W
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the state of cell i.
func (g *Grid) Get(i int) CellState {
	g.check(i)
	return CellState(g.data[i])
}

// Set writes the state of cell i.
func (g *Grid) Set(i int, s CellState) {
	g.check(i)
	g.data[i] = uint8(s)
}

// Neighbors returns the indices of the up to 8 cells adjacent to i.
func (g *Grid) Neighbors(i int) []int {
	return g.AppendNeighbors(make([]int, 0, 8), i)
}

// AppendNeighbors appends the bounded 8-neighborhood of i to dst. Cells past
// an edge are skipped; the grid does not wrap.
func (g *Grid) AppendNeighbors(dst []int, i int) []int {
	x, y := g.Coords(i)
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			dst = append(dst, ny*g.W+nx)
		}
	}
	return dst
}

// Population counts the alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if CellState(c) == Alive {
			n++
		}
	}
	return n
}

// Clear marks every cell empty.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = uint8(Empty)
	}
}

func (g *Grid) check(i int) {
	if i < 0 || i >= len(g.data) {
		panic(fmt.Sprintf("core: cell index %d outside [0,%d)", i, len(g.data)))
	}
}
