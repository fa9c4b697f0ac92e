// Package profile generates the tooth curve geometry of each gear family
// from its manufacturing parameters. Every family is a plain parameter
// struct with a Tooth method returning the ordered flank curves of one
// tooth (or one rack period) and an Outline method assembling the full
// gear boundary. Generators are deterministic and pure: malformed
// parameters fail fast with gears.ErrInvalidParameter and inputs are
// never silently clamped.
package profile

import (
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Gear is the family-independent generation contract.
type Gear interface {
	// Tooth returns the ordered curves of one tooth in the generator's
	// local frame.
	Tooth() (gears.ToothProfile, error)
	// Outline returns the assembled gear boundary.
	Outline() (gears.Outline, error)
}

func lift(p r2.Vec) r3.Vec { return r3.Vec{X: p.X, Y: p.Y} }

// linspace returns n evenly spaced values from a to b inclusive.
func linspace(a, b float64, n int) []float64 {
	if n < 2 {
		return []float64{a}
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}

// circleArc samples the arc of radius r about the origin from angle a1 to
// a2, traversed directly (a1 may exceed a2 for clockwise arcs).
func circleArc(r, a1, a2 float64, n int) gears.Curve {
	if n < 2 {
		n = 2
	}
	c := make(gears.Curve, n)
	for i, a := range linspace(a1, a2, n) {
		c[i] = lift(d2.PolarToXY(r, a))
	}
	return c
}

// arcAbout samples the minor circular arc from p1 to p2 about center.
// The endpoints must be equidistant from the center.
func arcAbout(p1, p2, center r2.Vec, n int) gears.Curve {
	if n < 2 {
		n = 2
	}
	v1 := r2.Sub(p1, center)
	v2 := r2.Sub(p2, center)
	a1 := math.Atan2(v1.Y, v1.X)
	a2 := math.Atan2(v2.Y, v2.X)
	sweep := a2 - a1
	for sweep <= -math.Pi {
		sweep += 2 * math.Pi
	}
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	r := r2.Norm(v1)
	c := make(gears.Curve, n)
	for i, a := range linspace(a1, a1+sweep, n) {
		c[i] = lift(r2.Add(center, d2.PolarToXY(r, a)))
	}
	// Land exactly on the given endpoints regardless of rounding.
	c[0] = lift(p1)
	c[n-1] = lift(p2)
	return c
}
