package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cdc6d/nbody/internal/body"
	"github.com/cdc6d/nbody/internal/physics"
)

const tol = 1e-12

// referenceBodies is the hardcoded three-body scenario.
func referenceBodies() []body.Body {
	return []body.Body{
		{Pos: body.Vec2{X: 100, Y: 10}, Vel: body.Vec2{X: 1.1, Y: 0}, Diam: 18},
		{Pos: body.Vec2{X: 800, Y: 10}, Vel: body.Vec2{X: 0.05, Y: 0.7}, Diam: 24},
		{Pos: body.Vec2{X: 450, Y: 300}, Vel: body.Vec2{X: -0.4, Y: 0.1}, Diam: 40},
	}
}

var _ = Describe("Engine", func() {
	var eng *physics.Engine

	BeforeEach(func() {
		eng = physics.NewEngine(physics.DefaultG)
	})

	Describe("gravity branch", func() {
		It("conserves total momentum over an isolated two-body tick", func() {
			bodies := []body.Body{
				{Pos: body.Vec2{X: 0, Y: 0}, Vel: body.Vec2{X: 0.5, Y: -0.2}, Diam: 10},
				{Pos: body.Vec2{X: 200, Y: 50}, Vel: body.Vec2{X: -0.1, Y: 0.3}, Diam: 20},
			}
			before := physics.Momentum(bodies)

			hits := eng.Update(bodies)
			Expect(hits).To(BeEmpty())

			after := physics.Momentum(bodies)
			Expect(after.X).To(BeNumerically("~", before.X, tol))
			Expect(after.Y).To(BeNumerically("~", before.Y, tol))
		})

		It("pulls well-separated bodies toward each other", func() {
			bodies := []body.Body{
				{Pos: body.Vec2{X: 0, Y: 0}, Diam: 10},
				{Pos: body.Vec2{X: 100, Y: 0}, Diam: 10},
			}
			eng.Update(bodies)

			Expect(bodies[0].Vel.X).To(BeNumerically(">", 0))
			Expect(bodies[1].Vel.X).To(BeNumerically("<", 0))
			Expect(bodies[0].Vel.Y).To(BeZero())
			Expect(bodies[1].Vel.Y).To(BeZero())
		})

		It("weights the shared impulse by inverse mass", func() {
			bodies := []body.Body{
				{Pos: body.Vec2{X: 0, Y: 0}, Diam: 10},
				{Pos: body.Vec2{X: 100, Y: 0}, Diam: 20},
			}
			eng.Update(bodies)

			// Same force magnitude, so dv scales as 1/m and the
			// lighter body moves four times as fast.
			ratio := bodies[0].Vel.X / -bodies[1].Vel.X
			Expect(ratio).To(BeNumerically("~", 4.0, 1e-9))
		})
	})

	Describe("collision branch", func() {
		It("removes the normal component and keeps the tangent component", func() {
			bodies := []body.Body{
				{Pos: body.Vec2{X: 0, Y: 0}, Vel: body.Vec2{X: 1, Y: 0.5}, Diam: 10},
				{Pos: body.Vec2{X: 8, Y: 0}, Vel: body.Vec2{X: -1, Y: -0.25}, Diam: 10},
			}
			hits := eng.Update(bodies)

			Expect(hits).To(HaveLen(1))
			Expect(hits[0].ClosingSpeed).To(BeNumerically("~", 2.0, tol))

			// Normal is +X, tangent is +Y: X speeds die, Y speeds survive.
			Expect(bodies[0].Vel.X).To(BeNumerically("~", 0, tol))
			Expect(bodies[1].Vel.X).To(BeNumerically("~", 0, tol))
			Expect(bodies[0].Vel.Y).To(BeNumerically("~", 0.5, tol))
			Expect(bodies[1].Vel.Y).To(BeNumerically("~", -0.25, tol))
		})

		It("leaves separating overlapped bodies untouched", func() {
			bodies := []body.Body{
				{Pos: body.Vec2{X: 0, Y: 0}, Vel: body.Vec2{X: -1, Y: 0.1}, Diam: 10},
				{Pos: body.Vec2{X: 8, Y: 0}, Vel: body.Vec2{X: 1, Y: -0.2}, Diam: 10},
			}
			hits := eng.Update(bodies)

			Expect(hits).To(HaveLen(1))
			Expect(hits[0].ClosingSpeed).To(BeNumerically("<=", 0))
			Expect(bodies[0].Vel).To(Equal(body.Vec2{X: -1, Y: 0.1}))
			Expect(bodies[1].Vel).To(Equal(body.Vec2{X: 1, Y: -0.2}))
		})

		It("skips gravity entirely for a colliding pair", func() {
			// A stationary touching pair with no closing speed must
			// not accumulate any gravitational impulse.
			bodies := []body.Body{
				{Pos: body.Vec2{X: 0, Y: 0}, Diam: 10},
				{Pos: body.Vec2{X: 9, Y: 0}, Diam: 10},
			}
			eng.Update(bodies)

			Expect(bodies[0].Vel).To(Equal(body.Vec2{}))
			Expect(bodies[1].Vel).To(Equal(body.Vec2{}))
		})

		It("skips near-coincident centers instead of producing NaN", func() {
			bodies := []body.Body{
				{Pos: body.Vec2{X: 5, Y: 5}, Vel: body.Vec2{X: 1, Y: 0}, Diam: 10},
				{Pos: body.Vec2{X: 5, Y: 5}, Vel: body.Vec2{X: -1, Y: 0}, Diam: 10},
			}
			hits := eng.Update(bodies)

			Expect(hits).To(BeEmpty())
			Expect(bodies[0].Vel).To(Equal(body.Vec2{X: 1, Y: 0}))
			Expect(bodies[1].Vel).To(Equal(body.Vec2{X: -1, Y: 0}))
		})
	})

	Describe("integration", func() {
		It("advances positions by the post-impulse velocities", func() {
			bodies := referenceBodies()
			oldPos := make([]body.Vec2, len(bodies))
			for i, b := range bodies {
				oldPos[i] = b.Pos
			}

			hits := eng.Update(bodies)
			Expect(hits).To(BeEmpty())

			for i := range bodies {
				want := oldPos[i].Add(bodies[i].Vel)
				Expect(bodies[i].Pos).To(Equal(want))
			}
		})

		It("applies the impulse before moving the body", func() {
			bodies := []body.Body{
				{Pos: body.Vec2{X: 0, Y: 0}, Vel: body.Vec2{X: 1, Y: 0}, Diam: 10},
				{Pos: body.Vec2{X: 1000, Y: 0}, Diam: 10},
			}
			eng.Update(bodies)

			// Position moved by more than the old velocity alone.
			Expect(bodies[0].Pos.X).To(BeNumerically(">", 1))
		})
	})

	Describe("observables", func() {
		It("sums kinetic energy over the set", func() {
			bodies := []body.Body{
				{Vel: body.Vec2{X: 2, Y: 0}, Diam: 1}, // m=1, ke=2
				{Vel: body.Vec2{X: 0, Y: 1}, Diam: 2}, // m=4, ke=2
			}
			Expect(physics.KineticEnergy(bodies)).To(BeNumerically("~", 4.0, tol))
		})

		It("attributes closing-speed energy as heat", func() {
			hits := []physics.Collision{
				{ClosingSpeed: 2},
				{ClosingSpeed: -1}, // stale overlap, no heat
				{ClosingSpeed: 3},
			}
			Expect(physics.AbsorbedEnergy(hits)).To(BeNumerically("~", 13.0, tol))
		})
	})
})
