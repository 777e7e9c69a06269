package life

import (
	"life-ca/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid. Cells past the
// edges count as empty; there is no wraparound.
type Life struct {
	cfg    Config
	grid   *core.Grid
	mapper core.Mapper

	counter  NeighborCounter
	snapshot []bool
	counts   []uint8

	generation int
}

// New returns a Life simulation with the provided dimensions and defaults for
// everything else.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	l, _ := NewWithConfig(cfg)
	return l
}

// NewWithConfig builds a simulation and fills it with the configured pattern.
func NewWithConfig(cfg Config) (*Life, error) {
	grid := core.NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	if cfg.Counter == "" {
		cfg.Counter = CounterDirect
	}
	if cfg.Pattern == "" {
		cfg.Pattern = PatternCheckerboard
	}
	counter, err := NewCounter(cfg.Counter, grid)
	if err != nil {
		return nil, err
	}
	mapper := core.NewMapper(grid.W, grid.H, cfg.CellSize)
	cfg.CellSize = mapper.CellSize
	l := &Life{
		cfg:      cfg,
		grid:     grid,
		mapper:   mapper,
		counter:  counter,
		snapshot: make([]bool, grid.Len()),
		counts:   make([]uint8, grid.Len()),
	}
	l.Reset(cfg.Seed)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Grid exposes the underlying grid model.
func (l *Life) Grid() *core.Grid { return l.grid }

// Mapper returns the world/cell projection for this grid.
func (l *Life) Mapper() core.Mapper { return l.mapper }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() int { return l.generation }

// Population counts alive cells.
func (l *Life) Population() int { return l.grid.Population() }

// Reset refills the grid with the configured pattern.
func (l *Life) Reset(seed int64) {
	l.cfg.Pattern.Fill(l.grid, seed)
	l.generation = 0
}

// Step advances the simulation by one generation. Every cell is read into the
// snapshot before any count is taken, so the rule only ever sees generation N.
func (l *Life) Step() {
	cells := l.grid.Cells()
	for i, c := range cells {
		l.snapshot[i] = core.CellState(c) == core.Alive
	}
	l.counter.Count(l.snapshot, l.counts)
	for i, n := range l.counts {
		switch {
		case n < 2 || n > 3:
			if l.snapshot[i] {
				cells[i] = uint8(core.Empty)
			}
		case n == 3:
			cells[i] = uint8(core.Alive)
		}
	}
	l.generation++
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return New(DefaultConfig().Width, DefaultConfig().Height)
		}
		return l
	})
}
