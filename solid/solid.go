// Package solid turns gear outlines into 3D solids through an injected
// kernel.Kernel. The construction per family follows one decision table:
// planar outlines are extruded straight, twist-extruded for a single
// helix, or swept half-height and mirrored for a double helix; bevel and
// crown gears are lofted between stations; timing-belt pulleys are cut
// from a plain disk.
package solid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gears"
	"github.com/soypat/gears/kernel"
	"github.com/soypat/gears/profile"
)

// Builder constructs gear solids on a kernel backend. Zero-height gears
// have no solid form: callers wanting the flat boundary use the profile
// package's Outline directly.
type Builder struct {
	k kernel.Kernel
}

// NewBuilder returns a Builder on the given kernel.
func NewBuilder(k kernel.Kernel) *Builder {
	return &Builder{k: k}
}

func (b *Builder) face(o gears.Outline) (kernel.Face, error) {
	if !o.Closed {
		return nil, gears.Degeneratef("outline is not closed")
	}
	return b.k.Polygon(o.Points())
}

// helical extrudes a face by height with a total twist. A double helix
// sweeps half the height with half the twist, mirrors it and stacks the
// halves into a herringbone.
func (b *Builder) helical(f kernel.Face, height, twist float64, double bool) (kernel.Solid, error) {
	if height <= 0 {
		return nil, gears.Invalidf("height %.4g <= 0", height)
	}
	if twist == 0 {
		return b.k.Extrude(f, height)
	}
	if !double {
		return b.k.TwistExtrude(f, height, twist)
	}
	upper, err := b.k.TwistExtrude(f, height/2, twist/2)
	if err != nil {
		return nil, err
	}
	lower := b.k.MirrorZ(upper)
	s := b.k.Union(lower, upper)
	return b.k.Translate(s, r3.Vec{Z: height / 2}), nil
}

// twistFor is the total extrusion twist of a helical gear: the arc the
// helix advances over the height, at the pitch diameter.
func twistFor(height, helix, pitchDiameter float64) float64 {
	return height * math.Tan(helix) * 2 / pitchDiameter
}

// Involute builds an involute spur or helical gear solid.
func (b *Builder) Involute(g *profile.Involute) (kernel.Solid, error) {
	out, err := g.Outline()
	if err != nil {
		return nil, err
	}
	dim, err := g.Dimensions()
	if err != nil {
		return nil, err
	}
	f, err := b.face(out)
	if err != nil {
		return nil, err
	}
	return b.helical(f, g.Height, twistFor(g.Height, g.Helix, dim.PitchDiameter), g.DoubleHelix)
}

// Cycloid builds a cycloid gear solid.
func (b *Builder) Cycloid(g *profile.Cycloid) (kernel.Solid, error) {
	out, err := g.Outline()
	if err != nil {
		return nil, err
	}
	dim, err := g.Dimensions()
	if err != nil {
		return nil, err
	}
	f, err := b.face(out)
	if err != nil {
		return nil, err
	}
	return b.helical(f, g.Height, twistFor(g.Height, g.Helix, dim.PitchDiameter), g.DoubleHelix)
}

// Lantern builds a lantern gear solid.
func (b *Builder) Lantern(g *profile.Lantern) (kernel.Solid, error) {
	out, err := g.Outline()
	if err != nil {
		return nil, err
	}
	f, err := b.face(out)
	if err != nil {
		return nil, err
	}
	if g.Height <= 0 {
		return nil, gears.Invalidf("height %.4g <= 0", g.Height)
	}
	return b.k.Extrude(f, g.Height)
}

// Timing builds a GT timing pulley solid.
func (b *Builder) Timing(g *profile.Timing) (kernel.Solid, error) {
	out, err := g.Outline()
	if err != nil {
		return nil, err
	}
	f, err := b.face(out)
	if err != nil {
		return nil, err
	}
	if g.Height <= 0 {
		return nil, gears.Invalidf("height %.4g <= 0", g.Height)
	}
	return b.k.Extrude(f, g.Height)
}

// Worm builds a worm solid: the thread cross section swept along the
// lead.
func (b *Builder) Worm(g *profile.Worm) (kernel.Solid, error) {
	out, err := g.Outline()
	if err != nil {
		return nil, err
	}
	f, err := b.face(out)
	if err != nil {
		return nil, err
	}
	if g.Height <= 0 {
		return nil, gears.Invalidf("height %.4g <= 0", g.Height)
	}
	beta := math.Pi/2 - g.LeadAngle()
	if g.ReversePitch {
		beta = -beta
	}
	twist := twistFor(g.Height, beta, g.Diameter)
	return b.k.TwistExtrude(f, g.Height, twist)
}

// Rack builds a rack solid. A helix angle shears the extrusion sideways
// by lofting translated copies of the cross section; a double helix
// stacks two opposite shears.
func (b *Builder) Rack(g *profile.Rack) (kernel.Solid, error) {
	out, err := g.Outline()
	if err != nil {
		return nil, err
	}
	f, err := b.face(out)
	if err != nil {
		return nil, err
	}
	h := g.Height
	if h <= 0 {
		return nil, gears.Invalidf("height %.4g <= 0", h)
	}
	if g.Helix == 0 {
		return b.k.Extrude(f, h)
	}
	shear := math.Tan(g.Helix) * h
	if !g.DoubleHelix {
		top := b.k.TranslateFace(f, r3.Vec{Y: shear})
		return b.k.Loft(f, top, h)
	}
	mid := b.k.TranslateFace(f, r3.Vec{Y: shear / 2})
	lower, err := b.k.Loft(f, mid, h/2)
	if err != nil {
		return nil, err
	}
	upper, err := b.k.Loft(mid, f, h/2)
	if err != nil {
		return nil, err
	}
	return b.k.Union(lower, b.k.Translate(upper, r3.Vec{Z: h / 2})), nil
}

// bevelStation returns the planar station face of a bevel outline scaled
// by s, spirally rotated when the gear has a helix angle.
func (b *Builder) bevelStation(g *profile.Bevel, out gears.Outline, s float64) (kernel.Face, error) {
	pts := out.Points()
	station := make([]r3.Vec, len(pts))
	for i, p := range pts {
		q := r3.Scale(s, p)
		if g.Helix != 0 {
			q = g.SphericalRotation(q)
		}
		station[i] = q
	}
	return b.k.Polygon(station)
}

// Bevel builds a bevel gear solid by lofting scaled copies of the
// unit-sphere outline between cone stations. Stations span cone distance
// scale-height to scale, so the pitch circle sits on the outer face.
func (b *Builder) Bevel(g *profile.Bevel) (kernel.Solid, error) {
	out, err := g.Outline()
	if err != nil {
		return nil, err
	}
	scale, err := g.ConeDistance()
	if err != nil {
		return nil, err
	}
	if g.Height <= 0 || g.Height >= scale {
		return nil, gears.Invalidf("height %.4g outside (0, cone distance %.4g)", g.Height, scale)
	}
	scale0 := scale - g.Height
	scale1 := scale
	cosG := math.Cos(g.PitchAngle)

	stations := 2
	if g.Helix != 0 {
		stations = 20
	}
	scales := make([]float64, stations)
	for i := range scales {
		scales[i] = scale0 + (scale1-scale0)*float64(i)/float64(stations-1)
	}
	var parts []kernel.Solid
	for i := 0; i+1 < len(scales); i++ {
		bottom, err := b.bevelStation(g, out, scales[i])
		if err != nil {
			return nil, err
		}
		top, err := b.bevelStation(g, out, scales[i+1])
		if err != nil {
			return nil, err
		}
		h := (scales[i+1] - scales[i]) * cosG
		loft, err := b.k.Loft(bottom, top, h)
		if err != nil {
			return nil, err
		}
		parts = append(parts, b.k.Translate(loft, r3.Vec{Z: scales[i] * cosG}))
	}
	s := b.k.Union(parts...)
	if g.ResetOrigin {
		// Flip so the outer face lands on z = 0.
		s = b.k.Translate(b.k.MirrorZ(s), r3.Vec{Z: scale1 * cosG})
	}
	return s, nil
}

// Crown builds a crown gear solid: an annular ring with one cutting
// tooth loft subtracted per angular pitch. PreviewMode returns the bare
// ring.
func (b *Builder) Crown(g *profile.Crown) (kernel.Solid, error) {
	if g.Thickness <= 0 {
		return nil, gears.Invalidf("thickness %.4g <= 0", g.Thickness)
	}
	outer, err := b.k.Circle(g.OuterDiameter() / 2)
	if err != nil {
		return nil, err
	}
	inner, err := b.k.Circle(g.InnerDiameter() / 2)
	if err != nil {
		return nil, err
	}
	outerS, err := b.k.Extrude(outer, g.Thickness)
	if err != nil {
		return nil, err
	}
	innerS, err := b.k.Extrude(inner, g.Thickness)
	if err != nil {
		return nil, err
	}
	// The ring body sits below z = 0, teeth cut into its top face.
	ring := b.k.Translate(b.k.Difference(outerS, innerS), r3.Vec{Z: -g.Thickness})
	if g.PreviewMode {
		return ring, nil
	}

	cutter, err := b.crownCutter(g)
	if err != nil {
		return nil, err
	}
	pitch := g.AngularPitch()
	tools := make([]kernel.Solid, g.Teeth)
	for i := range tools {
		tools[i] = b.k.RotateZ(cutter, pitch*float64(i+1))
	}
	return b.k.Difference(ring, tools...), nil
}

// crownCutter lofts the cutting-tooth stations radially outward along +Y.
// Stations are built in the XY plane and lofted along Z, then the loft is
// tipped onto the rim.
func (b *Builder) crownCutter(g *profile.Crown) (kernel.Solid, error) {
	stations, err := g.CutterStations()
	if err != nil {
		return nil, err
	}
	radii := make([]float64, len(stations))
	faces := make([]kernel.Face, len(stations))
	for i, st := range stations {
		radii[i] = st[0].Y
		flat := make([]r3.Vec, len(st))
		for j, p := range st {
			flat[j] = r3.Vec{X: p.X, Y: -p.Z}
		}
		if faces[i], err = b.k.Polygon(flat); err != nil {
			return nil, err
		}
	}
	var parts []kernel.Solid
	for i := 0; i+1 < len(faces); i++ {
		loft, err := b.k.Loft(faces[i], faces[i+1], radii[i+1]-radii[i])
		if err != nil {
			return nil, err
		}
		parts = append(parts, b.k.Translate(loft, r3.Vec{Z: radii[i]}))
	}
	// RotateX(-pi/2) maps the loft axis onto +Y and the negated station
	// Y back onto +Z.
	return b.k.RotateX(b.k.Union(parts...), -math.Pi/2), nil
}

// Belt builds a polygon-profile timing pulley: a disk with one tooth
// prism cut per angular pitch.
func (b *Builder) Belt(g *profile.Belt) (kernel.Solid, error) {
	if g.Height <= 0 {
		return nil, gears.Invalidf("height %.4g <= 0", g.Height)
	}
	radius, err := g.Radius()
	if err != nil {
		return nil, err
	}
	tooth, err := g.ToothPolygon()
	if err != nil {
		return nil, err
	}
	disk, err := b.k.Circle(radius)
	if err != nil {
		return nil, err
	}
	body, err := b.k.Extrude(disk, g.Height)
	if err != nil {
		return nil, err
	}
	pocket, err := b.k.Polygon(tooth)
	if err != nil {
		return nil, err
	}
	prism, err := b.k.Extrude(pocket, g.Height)
	if err != nil {
		return nil, err
	}
	pitch := g.AngularPitch()
	tools := make([]kernel.Solid, g.Teeth)
	for i := range tools {
		tools[i] = b.k.RotateZ(prism, pitch*float64(i))
	}
	return b.k.Difference(body, tools...), nil
}

// Hypocycloid builds the cycloidal drive: cam disk (with center hole),
// optional reversed secondary disk below it, and the roller pins, fused
// into one solid.
func (b *Builder) Hypocycloid(g *profile.Hypocycloid) (kernel.Solid, error) {
	if g.DiskHeight <= 0 {
		return nil, gears.Invalidf("disk height %.4g <= 0", g.DiskHeight)
	}
	var parts []kernel.Solid

	if g.PrimaryDisk || g.SecondaryDisk {
		cam, err := b.camDisk(g)
		if err != nil {
			return nil, err
		}
		if g.PrimaryDisk {
			parts = append(parts, cam)
		}
		if g.SecondaryDisk {
			second, err := b.secondaryDisk(g)
			if err != nil {
				return nil, err
			}
			parts = append(parts, second)
		}
	}
	if g.Pins {
		pins, err := b.pins(g)
		if err != nil {
			return nil, err
		}
		parts = append(parts, pins)
	}
	if len(parts) == 0 {
		return nil, gears.Invalidf("nothing selected: enable a disk or the pins")
	}
	return b.k.Union(parts...), nil
}

func (b *Builder) camSolid(g *profile.Hypocycloid, out gears.Outline, height float64) (kernel.Solid, error) {
	f, err := b.face(out)
	if err != nil {
		return nil, err
	}
	cam, err := b.k.Extrude(f, height)
	if err != nil {
		return nil, err
	}
	if g.HoleRadius <= 0 {
		return cam, nil
	}
	hole, err := b.k.Circle(g.HoleRadius)
	if err != nil {
		return nil, err
	}
	hole = b.k.TranslateFace(hole, r3.Vec{X: -g.Eccentricity})
	drill, err := b.k.Extrude(hole, height)
	if err != nil {
		return nil, err
	}
	return b.k.Difference(cam, drill), nil
}

func (b *Builder) camDisk(g *profile.Hypocycloid) (kernel.Solid, error) {
	out, err := g.Outline()
	if err != nil {
		return nil, err
	}
	return b.camSolid(g, out, g.DiskHeight)
}

// secondaryDisk extrudes the reversed cam downward so the two disks stack
// back to back.
func (b *Builder) secondaryDisk(g *profile.Hypocycloid) (kernel.Solid, error) {
	out, err := g.SecondaryOutline()
	if err != nil {
		return nil, err
	}
	s, err := b.camSolid(g, out, g.DiskHeight)
	if err != nil {
		return nil, err
	}
	return b.k.Translate(s, r3.Vec{Z: -g.DiskHeight}), nil
}

func (b *Builder) pins(g *profile.Hypocycloid) (kernel.Solid, error) {
	if g.PinHeight <= 0 {
		return nil, gears.Invalidf("pin height %.4g <= 0", g.PinHeight)
	}
	circle, err := b.k.Circle(g.RollerDiameter / 2)
	if err != nil {
		return nil, err
	}
	zOffset := -g.PinHeight / 2
	if g.CenterPins {
		if g.PrimaryDisk && !g.SecondaryDisk {
			zOffset += g.DiskHeight / 2
		} else if !g.PrimaryDisk && g.SecondaryDisk {
			zOffset -= g.DiskHeight / 2
		}
	}
	centers := g.PinCenters()
	pins := make([]kernel.Solid, len(centers))
	for i, c := range centers {
		f := b.k.TranslateFace(circle, r3.Vec{X: c.X, Y: c.Y})
		pin, err := b.k.Extrude(f, g.PinHeight)
		if err != nil {
			return nil, err
		}
		pins[i] = b.k.Translate(pin, r3.Vec{Z: zOffset})
	}
	return b.k.Union(pins...), nil
}
