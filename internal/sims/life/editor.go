package life

import "life-ca/internal/core"

// EditKind selects what a pointer edit writes.
type EditKind uint8

const (
	Draw EditKind = iota
	Erase
)

func (k EditKind) String() string {
	if k == Erase {
		return "Erase"
	}
	return "Draw"
}

// PointerEdit is a single-frame world position tagged Draw or Erase.
type PointerEdit struct {
	Pos  core.Vec2
	Kind EditKind
}

// Pending holds at most one edit per kind until the editor consumes it.
type Pending struct {
	draw, erase       core.Vec2
	hasDraw, hasErase bool
}

// Queue stores e in the slot for its kind, replacing any earlier edit.
func (p *Pending) Queue(e PointerEdit) {
	switch e.Kind {
	case Draw:
		p.draw, p.hasDraw = e.Pos, true
	case Erase:
		p.erase, p.hasErase = e.Pos, true
	}
}

// Empty reports whether no edit is queued.
func (p *Pending) Empty() bool { return !p.hasDraw && !p.hasErase }

func (p *Pending) take() (draw, erase *core.Vec2) {
	if p.hasDraw {
		d := p.draw
		draw = &d
	}
	if p.hasErase {
		e := p.erase
		erase = &e
	}
	*p = Pending{}
	return draw, erase
}

// Editor applies pending pointer edits to a grid.
type Editor struct {
	grid   *core.Grid
	mapper core.Mapper
}

// NewEditor binds an editor to a grid and its mapper.
func NewEditor(g *core.Grid, m core.Mapper) *Editor {
	return &Editor{grid: g, mapper: m}
}

// Apply consumes the pending edits. While Paused, a Draw sets its cell Alive and
// an Erase sets its cell Empty; edits off the grid are dropped. While Running
// the edits are discarded so they cannot replay after the next pause. Apply
// returns the number of cell writes performed.
func (e *Editor) Apply(p *Pending, mode core.RunMode) int {
	draw, erase := p.take()
	if mode != core.Paused {
		return 0
	}
	n := 0
	if draw != nil {
		if i, ok := e.mapper.WorldToCell(*draw); ok {
			e.grid.Set(i, core.Alive)
			n++
		}
	}
	if erase != nil {
		if i, ok := e.mapper.WorldToCell(*erase); ok {
			e.grid.Set(i, core.Empty)
			n++
		}
	}
	return n
}
