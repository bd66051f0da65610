package metrics

import (
	"github.com/cdc6d/nbody/internal/body"
	"github.com/cdc6d/nbody/internal/physics"
)

// KineticEnergy tracks the system's kinetic energy after the most
// recent tick.
type KineticEnergy struct {
	current float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(bodies []body.Body, hits []physics.Collision) {
	k.current = physics.KineticEnergy(bodies)
}

func (k *KineticEnergy) Value() float64 { return k.current }
func (k *KineticEnergy) Reset() { k.current = 0 }

// Momentum tracks the magnitude of the system's total momentum. The
// gravity branch conserves it; collisions do not.
type Momentum struct {
	current float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(bodies []body.Body, hits []physics.Collision) {
	m.current = physics.Momentum(bodies).Len()
}

func (m *Momentum) Value() float64 { return m.current }
func (m *Momentum) Reset() { m.current = 0 }

// Heat accumulates the kinetic energy absorbed by collisions, vn² per
// closing contact.
type Heat struct {
	total float64
}

func NewHeat() *Heat { return &Heat{} }

func (h *Heat) Name() string { return "heat" }

func (h *Heat) Observe(bodies []body.Body, hits []physics.Collision) {
	h.total += physics.AbsorbedEnergy(hits)
}

func (h *Heat) Value() float64 { return h.total }
func (h *Heat) Reset() { h.total = 0 }
