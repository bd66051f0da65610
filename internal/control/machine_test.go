package control

import "testing"

func TestToggleFromPaused(t *testing.T) {
	m := NewPausedMachine()

	m.Apply(TogglePause)
	if m.Mode() != -1 {
		t.Errorf("expected running (-1), got %d", m.Mode())
	}
}

func TestToggleIdempotence(t *testing.T) {
	m := NewPausedMachine()

	m.Apply(TogglePause)
	m.Apply(TogglePause)
	if m.Mode() != 0 {
		t.Errorf("double toggle from paused should return to 0, got %d", m.Mode())
	}
}

func TestToggleFromSteppingDiscardsCount(t *testing.T) {
	m := NewPausedMachine()
	m.Apply(Step)
	m.Apply(Step)
	m.Apply(Step)

	m.Apply(TogglePause)
	if m.Mode() != 0 {
		t.Errorf("toggle from stepping should pause, got %d", m.Mode())
	}
}

func TestStepCountsDown(t *testing.T) {
	m := NewPausedMachine()

	n := 4
	for i := 0; i < n; i++ {
		m.Apply(Step)
	}
	if m.Mode() != n {
		t.Fatalf("expected mode %d after %d steps, got %d", n, n, m.Mode())
	}

	ticks := 0
	for m.Gate() {
		ticks++
		m.FinishTick()
		if ticks > n {
			t.Fatal("machine never paused")
		}
	}
	if ticks != n {
		t.Errorf("expected exactly %d gated ticks, got %d", n, ticks)
	}
	if m.Mode() != 0 {
		t.Errorf("expected auto-pause at 0, got %d", m.Mode())
	}
}

func TestStepIgnoredWhileRunning(t *testing.T) {
	m := NewMachine()

	m.Apply(Step)
	if m.Mode() != -1 {
		t.Errorf("step while running should be ignored, got %d", m.Mode())
	}
}

func TestFinishTickLeavesRunningAlone(t *testing.T) {
	m := NewMachine()

	m.FinishTick()
	if m.Mode() != -1 {
		t.Errorf("free-running mode must not decrement, got %d", m.Mode())
	}
}

func TestQuitReported(t *testing.T) {
	m := NewMachine()

	if !m.Apply(Quit) {
		t.Error("Apply(Quit) should report quit")
	}
	if m.Apply(Step) || m.Apply(TogglePause) || m.Apply(None) {
		t.Error("only Quit should report quit")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Quit, "quit"},
		{TogglePause, "toggle-pause"},
		{Step, "step"},
		{None, "none"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}
