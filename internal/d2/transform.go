package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rotation rotates points about the origin.
type Rotation struct {
	s, c float64
}

// NewRotation returns a rotation by angle radians, counter-clockwise.
func NewRotation(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{s: s, c: c}
}

// Rotate applies the rotation to p.
func (r Rotation) Rotate(p r2.Vec) r2.Vec {
	return r2.Vec{X: r.c*p.X - r.s*p.Y, Y: r.s*p.X + r.c*p.Y}
}

// RotateSet applies the rotation to every point of a set, returning a new
// set.
func (r Rotation) RotateSet(s Set) Set {
	out := make(Set, len(s))
	for i, p := range s {
		out[i] = r.Rotate(p)
	}
	return out
}

// Reflection reflects points across the line through the origin at the
// given angle.
type Reflection struct {
	s2, c2 float64
}

// NewReflection returns a reflection across the line at angle radians.
func NewReflection(angle float64) Reflection {
	s, c := math.Sincos(2 * angle)
	return Reflection{s2: s, c2: c}
}

// Reflect applies the reflection to p.
func (m Reflection) Reflect(p r2.Vec) r2.Vec {
	return r2.Vec{X: m.c2*p.X + m.s2*p.Y, Y: m.s2*p.X - m.c2*p.Y}
}

// MirrorX negates the X coordinate.
func MirrorX(p r2.Vec) r2.Vec { return r2.Vec{X: -p.X, Y: p.Y} }

// MirrorY negates the Y coordinate.
func MirrorY(p r2.Vec) r2.Vec { return r2.Vec{X: p.X, Y: -p.Y} }
