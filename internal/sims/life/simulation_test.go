package life

import (
	"slices"
	"testing"

	"life-ca/internal/core"
)

func newSim(t *testing.T, w, h int) *Simulation {
	t.Helper()
	return NewSimulation(newEmpty(t, w, h, CounterDirect))
}

func cellPos(s *Simulation, x, y int) core.Vec2 {
	return s.Life().Mapper().CellToWorld(s.Life().Grid().Index(x, y))
}

func TestEditorDrawAndErase(t *testing.T) {
	s := newSim(t, 5, 5)
	g := s.Life().Grid()
	g.Set(g.Index(4, 4), core.Alive)

	s.QueueEdit(PointerEdit{Pos: cellPos(s, 1, 2), Kind: Draw})
	s.QueueEdit(PointerEdit{Pos: cellPos(s, 4, 4), Kind: Erase})
	rep := s.Tick(true)

	if rep.Edited != 2 || rep.Stepped {
		t.Fatalf("report = %+v", rep)
	}
	if g.Get(g.Index(1, 2)) != core.Alive {
		t.Fatal("draw did not set cell alive")
	}
	if g.Get(g.Index(4, 4)) != core.Empty {
		t.Fatal("erase did not clear cell")
	}
	if g.Population() != 1 {
		t.Fatalf("population = %d, want 1", g.Population())
	}
}

func TestEditorDropsOffGrid(t *testing.T) {
	s := newSim(t, 4, 4)
	before := slices.Clone(s.Life().Cells())
	s.QueueEdit(PointerEdit{Pos: core.Vec2{X: -100, Y: 0}, Kind: Draw})
	s.QueueEdit(PointerEdit{Pos: core.Vec2{X: 0, Y: 4 * 32}, Kind: Erase})
	if rep := s.Tick(true); rep.Edited != 0 {
		t.Fatalf("off-grid edits wrote %d cells", rep.Edited)
	}
	if !slices.Equal(before, s.Life().Cells()) {
		t.Fatal("off-grid edit changed the grid")
	}
}

func TestEditsWhileRunningAreDropped(t *testing.T) {
	s := newSim(t, 6, 6)
	s.Signal(core.SignalStart)
	s.QueueEdit(PointerEdit{Pos: cellPos(s, 2, 2), Kind: Draw})
	rep := s.Tick(false)
	if rep.Edited != 0 || rep.Mode != core.Running {
		t.Fatalf("report = %+v", rep)
	}

	s.Signal(core.SignalStop)
	rep = s.Tick(false)
	if rep.Edited != 0 {
		t.Fatalf("edit queued while running replayed after pause: %+v", rep)
	}
	if s.Life().Population() != 0 {
		t.Fatalf("population = %d, want 0", s.Life().Population())
	}
}

func TestTickStepsOnlyWhenRunning(t *testing.T) {
	s := newSim(t, 7, 7)
	setAlive(s.Life(), [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3})

	if rep := s.Tick(true); rep.Stepped || rep.Generation != 0 {
		t.Fatalf("paused tick stepped: %+v", rep)
	}

	s.Signal(core.SignalStart)
	s.Signal(core.SignalStart)
	if rep := s.Tick(false); rep.Stepped {
		t.Fatal("tick with advance=false stepped")
	}
	rep := s.Tick(true)
	if !rep.Stepped || rep.Generation != 1 {
		t.Fatalf("running tick report = %+v", rep)
	}
	expectAlive(t, s.Life(), "after one tick", [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4})
}

func TestEditAppliedBeforeStepInSameTick(t *testing.T) {
	s := newSim(t, 7, 7)
	setAlive(s.Life(), [2]int{2, 3}, [2]int{4, 3})
	s.QueueEdit(PointerEdit{Pos: cellPos(s, 3, 3), Kind: Draw})
	s.Tick(true)

	s.Signal(core.SignalStart)
	s.Tick(true)
	expectAlive(t, s.Life(), "edited blinker", [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4})
}

func TestQueueKeepsLatestPerKind(t *testing.T) {
	s := newSim(t, 5, 5)
	s.QueueEdit(PointerEdit{Pos: cellPos(s, 0, 0), Kind: Draw})
	s.QueueEdit(PointerEdit{Pos: cellPos(s, 3, 3), Kind: Draw})
	if rep := s.Tick(false); rep.Edited != 1 {
		t.Fatalf("edited = %d, want 1", rep.Edited)
	}
	g := s.Life().Grid()
	if g.Get(g.Index(0, 0)) != core.Empty || g.Get(g.Index(3, 3)) != core.Alive {
		t.Fatal("expected only the latest draw to apply")
	}
}

func TestResetPausesAndRestoresPattern(t *testing.T) {
	l := New(6, 6)
	s := NewSimulation(l)
	want := slices.Clone(l.Cells())
	s.Signal(core.SignalStart)
	s.Tick(true)
	s.QueueEdit(PointerEdit{Pos: cellPos(s, 0, 0), Kind: Draw})
	s.Reset(0)

	if s.Mode() != core.Paused {
		t.Fatal("reset should pause")
	}
	if l.Generation() != 0 || !slices.Equal(want, l.Cells()) {
		t.Fatal("reset did not restore the initial pattern")
	}
	if rep := s.Tick(false); rep.Edited != 0 {
		t.Fatal("reset should drop pending edits")
	}
}
