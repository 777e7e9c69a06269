package core

// RunMode is the process-wide running/paused flag.
type RunMode uint8

const (
	// Paused allows manual edits and holds the generation.
	Paused RunMode = iota
	// Running advances generations and ignores edits.
	Running
)

func (m RunMode) String() string {
	if m == Running {
		return "Running"
	}
	return "Paused"
}

// Signal is an external control input.
type Signal uint8

const (
	SignalStart Signal = iota
	SignalStop
)

// RunController holds the RunMode. The zero value is Paused.
type RunController struct {
	mode RunMode
}

// Start moves Paused to Running. It reports whether the mode changed.
func (c *RunController) Start() bool {
	if c.mode == Running {
		return false
	}
	c.mode = Running
	return true
}

// Stop moves Running to Paused. It reports whether the mode changed.
func (c *RunController) Stop() bool {
	if c.mode == Paused {
		return false
	}
	c.mode = Paused
	return true
}

// Toggle flips the mode.
func (c *RunController) Toggle() {
	if c.mode == Running {
		c.mode = Paused
		return
	}
	c.mode = Running
}

// Apply dispatches a signal.
func (c *RunController) Apply(s Signal) bool {
	switch s {
	case SignalStart:
		return c.Start()
	case SignalStop:
		return c.Stop()
	}
	return false
}

// Mode returns the current mode.
func (c *RunController) Mode() RunMode { return c.mode }

// Running reports whether the mode is Running.
func (c *RunController) Running() bool { return c.mode == Running }
