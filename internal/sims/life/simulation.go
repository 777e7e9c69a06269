package life

import "life-ca/internal/core"

// TickReport summarizes what a single Tick did.
type TickReport struct {
	Mode       core.RunMode
	Edited     int
	Stepped    bool
	Generation int
}

// Simulation is the per-process context threaded through every tick. It owns
// the grid, the run mode and the pending edit slots; each has a single writer
// per tick.
type Simulation struct {
	life    *Life
	control core.RunController
	pending Pending
	editor  *Editor
}

// NewSimulation wraps l. The run mode starts Paused.
func NewSimulation(l *Life) *Simulation {
	return &Simulation{life: l, editor: NewEditor(l.Grid(), l.Mapper())}
}

// Life returns the underlying engine.
func (s *Simulation) Life() *Life { return s.life }

// Mode returns the current run mode.
func (s *Simulation) Mode() core.RunMode { return s.control.Mode() }

// Signal delivers a Start or Stop. Signals must be delivered before Tick for
// the frame they belong to.
func (s *Simulation) Signal(sig core.Signal) bool { return s.control.Apply(sig) }

// Toggle flips between Paused and Running.
func (s *Simulation) Toggle() { s.control.Toggle() }

// QueueEdit records a pointer edit for the next Tick.
func (s *Simulation) QueueEdit(e PointerEdit) { s.pending.Queue(e) }

// Tick runs one frame: pending edits are applied if Paused (and discarded
// otherwise), then the engine steps if Running and advance is set. Callers
// pass advance=false on frames where the simulation clock has not fired.
func (s *Simulation) Tick(advance bool) TickReport {
	mode := s.control.Mode()
	rep := TickReport{Mode: mode}
	rep.Edited = s.editor.Apply(&s.pending, mode)
	if mode == core.Running && advance {
		s.life.Step()
		rep.Stepped = true
	}
	rep.Generation = s.life.Generation()
	return rep
}

// Reset restores the initial pattern, drops pending edits and pauses.
func (s *Simulation) Reset(seed int64) {
	s.control.Stop()
	s.pending = Pending{}
	s.life.Reset(seed)
}
