package control

// Command is one discrete user input recognized by the simulation.
type Command int

const (
	None Command = iota
	Quit
	TogglePause
	Step
)

func (c Command) String() string {
	switch c {
	case Quit:
		return "quit"
	case TogglePause:
		return "toggle-pause"
	case Step:
		return "step"
	default:
		return "none"
	}
}

// Machine tracks the run mode as a signed counter: negative means
// free-running, zero paused, positive N means advance N more ticks
// then pause. Only Apply and FinishTick mutate it.
type Machine struct {
	mode int
}

// NewMachine starts free-running.
func NewMachine() *Machine {
	return &Machine{mode: -1}
}

// NewPausedMachine starts paused.
func NewPausedMachine() *Machine {
	return &Machine{mode: 0}
}

// Mode exposes the raw counter.
func (m *Machine) Mode() int { return m.mode }

// Gate reports whether the current tick may render and advance physics.
func (m *Machine) Gate() bool { return m.mode != 0 }

// Paused reports whether the machine sits at run mode zero.
func (m *Machine) Paused() bool { return m.mode == 0 }

// Apply performs one state transition and reports whether the command
// was a quit request.
func (m *Machine) Apply(cmd Command) bool {
	switch cmd {
	case Quit:
		return true
	case TogglePause:
		// Any non-paused state counts as running for toggle purposes,
		// so stepping collapses straight to paused and the remaining
		// step count is discarded.
		if m.mode == 0 {
			m.mode = -1
		} else {
			m.mode = 0
		}
	case Step:
		// Meaningful from paused or stepping; a free-running machine
		// ignores it rather than letting the counter reach zero.
		if m.mode >= 0 {
			m.mode++
		}
	}
	return false
}

// FinishTick consumes one pending step. Called by the tick driver
// exactly once per tick it permits.
func (m *Machine) FinishTick() {
	if m.mode > 0 {
		m.mode--
	}
}
