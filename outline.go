package gears

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Curve is an ordered run of points along one tooth flank or connector,
// from one tooth extremity to the next join point. Planar gear families
// keep Z = 0; the bevel family produces points on the unit sphere of the
// cone apex.
type Curve []r3.Vec

// First returns the first point of the curve.
func (c Curve) First() r3.Vec { return c[0] }

// Last returns the last point of the curve.
func (c Curve) Last() r3.Vec { return c[len(c)-1] }

// ToothProfile is the ordered curve sequence describing one tooth (or one
// rack period) in the generator's local frame. The last point of curve i
// must coincide with the first point of curve i+1 within tolerance.
type ToothProfile []Curve

// Validate checks curve lengths and endpoint continuity.
func (t ToothProfile) Validate() error {
	if len(t) == 0 {
		return degeneratef("empty tooth profile")
	}
	for i, c := range t {
		if len(c) < 2 {
			return degeneratef("curve %d has %d points", i, len(c))
		}
		if i > 0 && dist(t[i-1].Last(), c.First()) > 1e-6 {
			return degeneratef("gap between curve %d and %d", i-1, i)
		}
	}
	return nil
}

// Outline is the full gear boundary after replication: a sequence of
// curves traversed end to end. For rotational gears the outline is a
// single closed loop; rack outlines are closed by their back rectangle
// inside the rack generator itself.
type Outline struct {
	Curves []Curve
	Closed bool
}

// Start returns the first point of the outline.
func (o Outline) Start() r3.Vec { return o.Curves[0].First() }

// End returns the last point of the outline.
func (o Outline) End() r3.Vec { return o.Curves[len(o.Curves)-1].Last() }

// Points flattens the outline into a single point sequence, dropping the
// duplicated join point between consecutive curves.
func (o Outline) Points() []r3.Vec {
	var pts []r3.Vec
	for i, c := range o.Curves {
		start := 0
		if i > 0 && dist(pts[len(pts)-1], c.First()) <= tolerance {
			start = 1
		}
		pts = append(pts, c[start:]...)
	}
	return pts
}

func dist(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Assemble replicates one tooth profile into a closed gear outline by
// rotating it about the origin teeth times, one angular pitch apart.
func Assemble(tooth ToothProfile, teeth int) (Outline, error) {
	return AssembleAbout(tooth, teeth, r2.Vec{})
}

// AssembleAbout is Assemble with the rotation centered on an arbitrary
// point. The hypocycloid cam rotates about its eccentric center.
//
// Between consecutive copies a straight connector segment is inserted
// from the last point of copy i to the first point of copy i+1, computed
// from the already-rotated points so endpoints coincide exactly. A final
// connector closes the loop back at the first point. Connectors shorter
// than the endpoint tolerance are elided: profiles that span their full
// angular pitch chain without them.
func AssembleAbout(tooth ToothProfile, teeth int, center r2.Vec) (Outline, error) {
	if teeth < 1 {
		return Outline{}, invalidf("teeth %d < 1", teeth)
	}
	if err := tooth.Validate(); err != nil {
		return Outline{}, err
	}
	sin, cos := math.Sincos(tau / float64(teeth))

	cur := make(ToothProfile, len(tooth))
	for i, c := range tooth {
		cur[i] = append(Curve(nil), c...)
	}

	var out Outline
	out.Curves = append(out.Curves, cur...)
	for i := 1; i < teeth; i++ {
		next := rotatedProfile(cur, sin, cos, center)
		if gap := connector(cur[len(cur)-1].Last(), next[0].First()); gap != nil {
			out.Curves = append(out.Curves, gap)
		}
		out.Curves = append(out.Curves, next...)
		cur = next
	}
	if gap := connector(out.End(), out.Start()); gap != nil {
		out.Curves = append(out.Curves, gap)
	}
	out.Closed = true
	return out, nil
}

// AssembleLinear replicates one rack period by translating it teeth-1
// times by the pitch vector. The outline is left open; the rack generator
// closes it with its back rectangle.
func AssembleLinear(tooth ToothProfile, teeth int, pitch r3.Vec) (Outline, error) {
	if teeth < 1 {
		return Outline{}, invalidf("teeth %d < 1", teeth)
	}
	if err := tooth.Validate(); err != nil {
		return Outline{}, err
	}
	cur := make(ToothProfile, len(tooth))
	for i, c := range tooth {
		cur[i] = append(Curve(nil), c...)
	}
	var out Outline
	out.Curves = append(out.Curves, cur...)
	for i := 1; i < teeth; i++ {
		next := make(ToothProfile, len(cur))
		for j, c := range cur {
			nc := make(Curve, len(c))
			for k, p := range c {
				nc[k] = r3.Add(p, pitch)
			}
			next[j] = nc
		}
		if gap := connector(cur[len(cur)-1].Last(), next[0].First()); gap != nil {
			out.Curves = append(out.Curves, gap)
		}
		out.Curves = append(out.Curves, next...)
		cur = next
	}
	return out, nil
}

func connector(a, b r3.Vec) Curve {
	if dist(a, b) <= tolerance {
		return nil
	}
	return Curve{a, b}
}

func rotatedProfile(t ToothProfile, sin, cos float64, center r2.Vec) ToothProfile {
	out := make(ToothProfile, len(t))
	for i, c := range t {
		nc := make(Curve, len(c))
		for j, p := range c {
			x := p.X - center.X
			y := p.Y - center.Y
			nc[j] = r3.Vec{
				X: cos*x - sin*y + center.X,
				Y: sin*x + cos*y + center.Y,
				Z: p.Z,
			}
		}
		out[i] = nc
	}
	return out
}
