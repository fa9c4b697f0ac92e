package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestPolarRoundTrip(t *testing.T) {
	for _, p := range []r2.Vec{
		{X: 1, Y: 0},
		{X: -3, Y: 4},
		{X: 0.5, Y: -0.5},
	} {
		back := CartesianToPolar(p).PolarToCartesian()
		if !EqualWithin(p, back, 1e-12) {
			t.Errorf("round trip %v -> %v", p, back)
		}
	}
	if got := PolarToXY(2, math.Pi/2); !EqualWithin(got, r2.Vec{Y: 2}, 1e-12) {
		t.Errorf("PolarToXY(2, pi/2) = %v", got)
	}
}

func TestRotation(t *testing.T) {
	rot := NewRotation(math.Pi / 2)
	if got := rot.Rotate(r2.Vec{X: 1}); !EqualWithin(got, r2.Vec{Y: 1}, 1e-12) {
		t.Errorf("quarter turn of (1,0) = %v", got)
	}
	set := Set{{X: 1}, {X: 0, Y: 1}}
	out := rot.RotateSet(set)
	if !EqualWithin(out[0], r2.Vec{Y: 1}, 1e-12) || !EqualWithin(out[1], r2.Vec{X: -1}, 1e-12) {
		t.Errorf("rotated set %v", out)
	}
	if !EqualWithin(set[0], r2.Vec{X: 1}, 0) {
		t.Error("RotateSet must not modify its input")
	}
}

func TestReflection(t *testing.T) {
	// Reflecting across the 45 degree line swaps the coordinates.
	m := NewReflection(math.Pi / 4)
	if got := m.Reflect(r2.Vec{X: 2, Y: 1}); !EqualWithin(got, r2.Vec{X: 1, Y: 2}, 1e-12) {
		t.Errorf("diagonal reflection = %v", got)
	}
	// Reflecting twice is the identity.
	p := r2.Vec{X: 0.3, Y: -1.7}
	if got := m.Reflect(m.Reflect(p)); !EqualWithin(got, p, 1e-12) {
		t.Errorf("double reflection moved %v to %v", p, got)
	}
}

func TestMirror(t *testing.T) {
	p := r2.Vec{X: 2, Y: 3}
	if got := MirrorX(p); got.X != -2 || got.Y != 3 {
		t.Errorf("MirrorX = %v", got)
	}
	if got := MirrorY(p); got.X != 2 || got.Y != -3 {
		t.Errorf("MirrorY = %v", got)
	}
}
