package body

// Body is one simulated object. Diam is fixed for the body's lifetime
// and doubles as its rendered sprite size.
type Body struct {
	Pos  Vec2
	Vel  Vec2
	Diam float64
}

// Mass follows the 2-D area-as-mass convention.
func (b Body) Mass() float64 {
	return b.Diam * b.Diam
}

// Radius is half the diameter, the collision radius.
func (b Body) Radius() float64 {
	return b.Diam / 2
}
