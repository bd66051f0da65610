package physics

import (
	"math"

	"github.com/cdc6d/nbody/internal/body"
)

// DefaultG is the gravitational constant of the reference scenario.
// Useful values range from about 0.0005 to 1.0 depending on scale.
const DefaultG = 1.0

// coincidentEps is the separation below which a pair has no finite
// collision normal and is skipped for the tick.
const coincidentEps = 1e-9

// Collision records one resolved contact: the pair indices and the
// relative normal closing speed before impact. ClosingSpeed <= 0 means
// the overlap was stale and no velocity changed.
type Collision struct {
	I, J         int
	ClosingSpeed float64
}

// Engine advances a body set by discrete ticks under pairwise
// Newtonian gravity with inelastic-normal collision response.
type Engine struct {
	G float64
}

func NewEngine(g float64) *Engine {
	return &Engine{G: g}
}

// Update advances the whole system by exactly one tick. For every
// unordered pair it applies either a collision response or a
// gravitational impulse, never both, then integrates positions with
// the post-impulse velocities. It returns the tick's collisions so a
// caller may attribute the absorbed kinetic energy.
func (e *Engine) Update(bodies []body.Body) []Collision {
	var hits []Collision

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].Pos.Sub(bodies[i].Pos)
			r := d.Len()
			minSep := (bodies[i].Diam + bodies[j].Diam) / 2

			if r < coincidentEps {
				// Near-coincident centers: no finite normal.
				continue
			}

			if r <= minSep {
				vn := resolveCollision(d, r, &bodies[i], &bodies[j])
				hits = append(hits, Collision{I: i, J: j, ClosingSpeed: vn})
				continue
			}

			f := e.G * bodies[i].Mass() * bodies[j].Mass() / (r * r)
			impulse := d.Scale(f / r)
			bodies[i].Vel = bodies[i].Vel.Add(impulse.Scale(1 / bodies[i].Mass()))
			bodies[j].Vel = bodies[j].Vel.Sub(impulse.Scale(1 / bodies[j].Mass()))
		}
	}

	for i := range bodies {
		bodies[i].Pos = bodies[i].Pos.Add(bodies[i].Vel)
	}

	return hits
}

// resolveCollision removes the normal velocity components of a closing
// pair, keeping only the tangent components: perfectly inelastic along
// the line of centers, frictionless across it. It returns the relative
// normal closing speed before impact; a non-positive value means the
// bodies were already separating and nothing changed.
func resolveCollision(d body.Vec2, r float64, bi, bj *body.Body) float64 {
	n := d.Scale(1 / r)

	vni := bi.Vel.Dot(n)
	vnj := bj.Vel.Dot(n)
	vn := vni - vnj
	if vn <= 0 {
		return vn
	}

	t := n.Perp()
	bi.Vel = t.Scale(bi.Vel.Dot(t))
	bj.Vel = t.Scale(bj.Vel.Dot(t))
	return vn
}

// KineticEnergy sums 1/2·m·v² over the body set.
func KineticEnergy(bodies []body.Body) float64 {
	ke := 0.0
	for _, b := range bodies {
		ke += 0.5 * b.Mass() * b.Vel.Dot(b.Vel)
	}
	return ke
}

// Momentum returns the total momentum vector of the body set.
func Momentum(bodies []body.Body) body.Vec2 {
	var p body.Vec2
	for _, b := range bodies {
		p = p.Add(b.Vel.Scale(b.Mass()))
	}
	return p
}

// AbsorbedEnergy attributes the kinetic energy removed by a tick's
// collisions as heat, vn² per closing contact.
func AbsorbedEnergy(hits []Collision) float64 {
	h := 0.0
	for _, c := range hits {
		if c.ClosingSpeed > 0 {
			h += c.ClosingSpeed * c.ClosingSpeed
		}
	}
	return h
}

// Separation reports the center distance and contact threshold for a
// pair, handy for scenario sanity checks.
func Separation(a, b body.Body) (r, minSep float64) {
	d := b.Pos.Sub(a.Pos)
	return math.Hypot(d.X, d.Y), (a.Diam + b.Diam) / 2
}
