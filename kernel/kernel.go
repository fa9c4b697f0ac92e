// Package kernel defines the abstract solid-modeling interface consumed
// by the solid package. Implementations (sdfx) provide faces, extrusions,
// lofts and boolean operations behind this interface so gear construction
// never depends on one modeling backend.
package kernel

import "gonum.org/v1/gonum/spatial/r3"

// Face is an opaque handle to a planar region in the XY plane.
// Implementations wrap their internal representation.
type Face interface{}

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max r3.Vec)
}

// Triangle is one mesh triangle with counter-clockwise winding.
type Triangle [3]r3.Vec

// Normal returns the unit face normal.
func (t Triangle) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	return r3.Unit(n)
}

// Kernel is the abstract solid-modeling interface. Extrusions, sweeps and
// lofts run along +Z starting at z = 0; twist angles are the total
// rotation over the full height, positive counter-clockwise.
type Kernel interface {
	// Polygon builds a face from a closed planar outline. The Z
	// coordinate of the points is ignored.
	Polygon(points []r3.Vec) (Face, error)
	// Circle builds a disk of the given radius centered on the origin.
	Circle(radius float64) (Face, error)
	// TranslateFace shifts a face in its plane; v.Z is ignored.
	TranslateFace(f Face, v r3.Vec) Face

	Extrude(f Face, height float64) (Solid, error)
	TwistExtrude(f Face, height, twist float64) (Solid, error)
	// Loft blends linearly from bottom at z = 0 to top at z = height.
	Loft(bottom, top Face, height float64) (Solid, error)

	Union(s ...Solid) Solid
	Difference(a Solid, tools ...Solid) Solid
	Intersection(a, b Solid) Solid

	Translate(s Solid, v r3.Vec) Solid
	// RotateX and RotateZ rotate about the respective axis through the
	// origin, angle in radians.
	RotateX(s Solid, angle float64) Solid
	RotateZ(s Solid, angle float64) Solid
	// MirrorZ reflects through the z = 0 plane.
	MirrorZ(s Solid) Solid

	// Mesh tessellates the solid. cells controls the resolution of
	// sampling backends; mesh-native backends may ignore it.
	Mesh(s Solid, cells int) ([]Triangle, error)
}
