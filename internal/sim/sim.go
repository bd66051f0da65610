package sim

import (
	"context"
	"fmt"

	"github.com/cdc6d/nbody/internal/body"
	"github.com/cdc6d/nbody/internal/control"
	"github.com/cdc6d/nbody/internal/physics"
)

// DefaultDiam is assigned to slots created by Resize, keeping the
// positive-diameter invariant without caller input.
const DefaultDiam = 16.0

// Renderer draws the current body set onto a display surface. Sprite
// handles are keyed by body index; implementations pre-render one
// sprite per body and must regenerate them if the body set is resized.
type Renderer interface {
	Clear()
	DrawSprite(i int, cx, cy float64)
	Present()
}

// InputSource drains all queued user events without blocking, called
// once per tick.
type InputSource interface {
	Poll() []control.Command
}

// Metric observes each permitted tick and reduces it to a scalar.
type Metric interface {
	Name() string
	Observe(bodies []body.Body, hits []physics.Collision)
	Value() float64
	Reset()
}

// Simulation owns an ordered body sequence and the run-mode machine
// that gates its advancement. Access is single-threaded by design: one
// tick runs to completion before the next begins.
type Simulation struct {
	bodies  []body.Body
	machine *control.Machine
	engine  *physics.Engine
	metrics []Metric

	quitOffscreen bool
	margin        float64

	ticks  int
	closed bool
}

// New validates the initial body set and returns a free-running
// simulation.
func New(bodies []body.Body, g float64) (*Simulation, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}
	for i, b := range bodies {
		if b.Diam <= 0 {
			return nil, fmt.Errorf("%w: body %d has diameter %g", ErrBadDiameter, i, b.Diam)
		}
	}

	owned := make([]body.Body, len(bodies))
	copy(owned, bodies)

	return &Simulation{
		bodies:  owned,
		machine: control.NewMachine(),
		engine:  physics.NewEngine(g),
	}, nil
}

// QuitOffscreen makes the simulation stop once any body drifts past
// -margin on either axis, matching the reference runaway guard.
func (s *Simulation) QuitOffscreen(margin float64) {
	s.quitOffscreen = true
	s.margin = margin
}

func (s *Simulation) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

// Bodies returns a read-only view of the body sequence. Callers must
// not mutate it.
func (s *Simulation) Bodies() []body.Body { return s.bodies }

func (s *Simulation) Len() int { return len(s.bodies) }

// Ticks reports how many physics updates have run.
func (s *Simulation) Ticks() int { return s.ticks }

// Mode exposes the run-mode counter for display purposes.
func (s *Simulation) Mode() int { return s.machine.Mode() }

func (s *Simulation) Paused() bool { return s.machine.Paused() }

// Apply feeds one command through the control machine. It reports
// whether the simulation stopped; a quit command tears it down.
func (s *Simulation) Apply(cmd control.Command) (bool, error) {
	if s.closed {
		return true, ErrClosed
	}
	if s.machine.Apply(cmd) {
		return true, s.Close()
	}
	return false, nil
}

// Resize grows or shrinks the body sequence, preserving existing
// entries and default-initializing new slots. Renderers must
// regenerate their sprites afterwards.
func (s *Simulation) Resize(n int) error {
	if s.closed {
		return ErrClosed
	}
	if n <= 0 {
		return ErrNoBodies
	}
	resized := make([]body.Body, n)
	copy(resized, s.bodies)
	for i := len(s.bodies); i < n; i++ {
		resized[i] = body.Body{Diam: DefaultDiam}
	}
	s.bodies = resized
	return nil
}

// Tick runs one frame-driver callback: render and advance physics if
// the run-mode gate is open, then poll input once regardless of state.
// Only the last recognized command drained this tick takes effect.
// The returned stop flag tells the frame driver not to schedule
// another tick.
func (s *Simulation) Tick(r Renderer, in InputSource) (bool, error) {
	if s.closed {
		return true, ErrClosed
	}

	if s.machine.Gate() {
		if r != nil {
			r.Clear()
			for i, b := range s.bodies {
				r.DrawSprite(i, b.Pos.X, b.Pos.Y)
			}
			r.Present()
		}

		hits := s.engine.Update(s.bodies)
		for _, m := range s.metrics {
			m.Observe(s.bodies, hits)
		}
		s.ticks++
		s.machine.FinishTick()

		if s.offscreen() {
			return true, s.Close()
		}
	}

	if in != nil {
		cmd := lastCommand(in.Poll())
		if s.machine.Apply(cmd) {
			return true, s.Close()
		}
	}

	return false, nil
}

// Result holds a headless batch run: the position of every body after
// every tick, plus final metric values.
type Result struct {
	Ticks      int
	Positions  [][]body.Vec2
	Collisions int
	Heat       float64
	Metrics    map[string]float64
}

// Run advances exactly n physics updates without rendering or input,
// recording per-tick positions. It stops early on context cancellation
// or when the offscreen guard fires. The run-mode gate does not apply;
// batch runs are unconditional.
func (s *Simulation) Run(ctx context.Context, n int) (*Result, error) {
	if s.closed {
		return nil, ErrClosed
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Positions: make([][]body.Vec2, 0, n),
		Metrics:   make(map[string]float64),
	}

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		hits := s.engine.Update(s.bodies)
		for _, m := range s.metrics {
			m.Observe(s.bodies, hits)
		}
		s.ticks++

		result.Ticks++
		result.Collisions += len(hits)
		result.Heat += physics.AbsorbedEnergy(hits)
		snap := make([]body.Vec2, len(s.bodies))
		for j, b := range s.bodies {
			snap[j] = b.Pos
		}
		result.Positions = append(result.Positions, snap)

		if s.offscreen() {
			break
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Close releases the owned body sequence exactly once. Every later
// operation fails with ErrClosed.
func (s *Simulation) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.bodies = nil
	s.metrics = nil
	return nil
}

func (s *Simulation) offscreen() bool {
	if !s.quitOffscreen {
		return false
	}
	for _, b := range s.bodies {
		if b.Pos.X < -s.margin || b.Pos.Y < -s.margin {
			return true
		}
	}
	return false
}

// lastCommand keeps the reference poll behavior: every recognized
// event overwrites the previous one, so only the final command in the
// queue wins.
func lastCommand(cmds []control.Command) control.Command {
	ret := control.None
	for _, c := range cmds {
		if c != control.None {
			ret = c
		}
	}
	return ret
}
