package body

import (
	"math"
	"testing"
)

func TestMass(t *testing.T) {
	tests := []struct {
		diam float64
		want float64
	}{
		{18, 324},
		{24, 576},
		{40, 1600},
		{1, 1},
	}

	for _, tt := range tests {
		b := Body{Diam: tt.diam}
		if got := b.Mass(); got != tt.want {
			t.Errorf("Mass() for diam %v = %v, want %v", tt.diam, got, tt.want)
		}
	}
}

func TestVecOps(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Len = %v", got)
	}
}

func TestPerpOrthogonal(t *testing.T) {
	v := Vec2{0.3, -1.7}
	if got := v.Perp().Dot(v); got != 0 {
		t.Errorf("Perp not orthogonal, dot = %v", got)
	}
	if got := v.Perp().Len(); math.Abs(got-v.Len()) > 1e-12 {
		t.Errorf("Perp changed length: %v vs %v", got, v.Len())
	}
}
