// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library. Faces are SDF2 regions,
// solids SDF3 fields; meshing runs uniform marching cubes.
package sdfx

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gears/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct{}

// New returns an sdfx-backed kernel.
func New() *Kernel {
	return &Kernel{}
}

// solid wraps an sdf.SDF3 to implement kernel.Solid.
type solid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *solid) BoundingBox() (min, max r3.Vec) {
	bb := s.s.BoundingBox()
	min = r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z}
	max = r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z}
	return min, max
}

func unwrap(s kernel.Solid) sdf.SDF3 { return s.(*solid).s }

func wrap(s sdf.SDF3) kernel.Solid { return &solid{s: s} }

func unwrapFace(f kernel.Face) sdf.SDF2 { return f.(sdf.SDF2) }

// Polygon builds a face from a closed outline, dropping the Z coordinate
// and the duplicated closing point.
func (k *Kernel) Polygon(points []r3.Vec) (kernel.Face, error) {
	n := len(points)
	if n > 1 && r3.Norm(r3.Sub(points[0], points[n-1])) <= 1e-9 {
		n--
	}
	vs := make([]v2.Vec, n)
	for i := 0; i < n; i++ {
		vs[i] = v2.Vec{X: points[i].X, Y: points[i].Y}
	}
	return sdf.Polygon2D(vs)
}

// Circle builds a disk centered on the origin.
func (k *Kernel) Circle(radius float64) (kernel.Face, error) {
	return sdf.Circle2D(radius)
}

// TranslateFace shifts a face in the XY plane.
func (k *Kernel) TranslateFace(f kernel.Face, v r3.Vec) kernel.Face {
	return sdf.Transform2D(unwrapFace(f), sdf.Translate2d(v2.Vec{X: v.X, Y: v.Y}))
}

// lift shifts a centered sdfx solid so it spans z in [0, height].
func lift(s sdf.SDF3, height float64) kernel.Solid {
	return wrap(sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2})))
}

// Extrude extrudes a face from z = 0 to z = height.
func (k *Kernel) Extrude(f kernel.Face, height float64) (kernel.Solid, error) {
	return lift(sdf.Extrude3D(unwrapFace(f), height), height), nil
}

// TwistExtrude extrudes a face with a total twist over the height.
func (k *Kernel) TwistExtrude(f kernel.Face, height, twist float64) (kernel.Solid, error) {
	return lift(sdf.TwistExtrude3D(unwrapFace(f), height, twist), height), nil
}

// Loft blends from bottom at z = 0 to top at z = height.
func (k *Kernel) Loft(bottom, top kernel.Face, height float64) (kernel.Solid, error) {
	s, err := sdf.Loft3D(unwrapFace(bottom), unwrapFace(top), height, 0)
	if err != nil {
		return nil, err
	}
	return lift(s, height), nil
}

// Union returns the union of the solids.
func (k *Kernel) Union(s ...kernel.Solid) kernel.Solid {
	us := make([]sdf.SDF3, len(s))
	for i, si := range s {
		us[i] = unwrap(si)
	}
	return wrap(sdf.Union3D(us...))
}

// Difference subtracts the tools from a.
func (k *Kernel) Difference(a kernel.Solid, tools ...kernel.Solid) kernel.Solid {
	out := unwrap(a)
	for _, t := range tools {
		out = sdf.Difference3D(out, unwrap(t))
	}
	return wrap(out)
}

// Intersection returns the intersection of two solids.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by v.
func (k *Kernel) Translate(s kernel.Solid, v r3.Vec) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), sdf.Translate3d(v3.Vec{X: v.X, Y: v.Y, Z: v.Z})))
}

// RotateX rotates about the X axis.
func (k *Kernel) RotateX(s kernel.Solid, angle float64) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), sdf.RotateX(angle)))
}

// RotateZ rotates about the Z axis.
func (k *Kernel) RotateZ(s kernel.Solid, angle float64) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), sdf.RotateZ(angle)))
}

// MirrorZ reflects through the z = 0 plane.
func (k *Kernel) MirrorZ(s kernel.Solid) kernel.Solid {
	return wrap(sdf.Transform3D(unwrap(s), sdf.MirrorXY()))
}

// Mesh tessellates the solid with uniform marching cubes.
func (k *Kernel) Mesh(s kernel.Solid, cells int) ([]kernel.Triangle, error) {
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(unwrap(s), renderer)
	out := make([]kernel.Triangle, len(triangles))
	for i, tri := range triangles {
		for j := 0; j < 3; j++ {
			out[i][j] = r3.Vec{X: tri[j].X, Y: tri[j].Y, Z: tri[j].Z}
		}
	}
	return out, nil
}
