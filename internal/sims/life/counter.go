package life

import (
	"fmt"

	"life-ca/internal/core"
)

// Neighbor counter names accepted by Config.Counter.
const (
	CounterDirect = "direct"
	CounterFFT    = "fft"
)

// NeighborCounter fills counts[i] with the number of alive cells among the
// bounded 8-neighborhood of i. alive is a complete snapshot of one generation
// and is never written.
type NeighborCounter interface {
	Count(alive []bool, counts []uint8)
}

// NewCounter builds the named counter for a w*h grid.
func NewCounter(name string, g *core.Grid) (NeighborCounter, error) {
	switch name {
	case "", CounterDirect:
		return newDirectCounter(g), nil
	case CounterFFT:
		return newFFTCounter(g.W, g.H), nil
	}
	return nil, fmt.Errorf("life: unknown neighbor counter %q", name)
}

type directCounter struct {
	grid *core.Grid
	buf  []int
}

func newDirectCounter(g *core.Grid) *directCounter {
	return &directCounter{grid: g, buf: make([]int, 0, 8)}
}

func (d *directCounter) Count(alive []bool, counts []uint8) {
	for i := range counts {
		d.buf = d.grid.AppendNeighbors(d.buf[:0], i)
		var n uint8
		for _, j := range d.buf {
			if alive[j] {
				n++
			}
		}
		counts[i] = n
	}
}
