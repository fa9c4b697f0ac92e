package solid

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/gears"
	"github.com/soypat/gears/kernel"
	"github.com/soypat/gears/profile"
)

// fakeKernel records the operations the builder performs so tests can
// assert the construction recipe without a geometry backend.
type fakeKernel struct {
	ops []string
}

type fakeFace struct{}

type fakeSolid struct{}

func (fakeSolid) BoundingBox() (min, max r3.Vec) { return r3.Vec{}, r3.Vec{} }

func (k *fakeKernel) log(format string, args ...any) {
	k.ops = append(k.ops, fmt.Sprintf(format, args...))
}

func (k *fakeKernel) count(prefix string) int {
	n := 0
	for _, op := range k.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (k *fakeKernel) Polygon(points []r3.Vec) (kernel.Face, error) {
	k.log("polygon(%d)", len(points))
	return fakeFace{}, nil
}

func (k *fakeKernel) Circle(radius float64) (kernel.Face, error) {
	k.log("circle(%.4g)", radius)
	return fakeFace{}, nil
}

func (k *fakeKernel) TranslateFace(f kernel.Face, v r3.Vec) kernel.Face {
	k.log("translateface(%.4g,%.4g)", v.X, v.Y)
	return f
}

func (k *fakeKernel) Extrude(f kernel.Face, height float64) (kernel.Solid, error) {
	k.log("extrude(%.4g)", height)
	return fakeSolid{}, nil
}

func (k *fakeKernel) TwistExtrude(f kernel.Face, height, twist float64) (kernel.Solid, error) {
	k.log("twistextrude(%.4g,%.4g)", height, twist)
	return fakeSolid{}, nil
}

func (k *fakeKernel) Loft(bottom, top kernel.Face, height float64) (kernel.Solid, error) {
	k.log("loft(%.4g)", height)
	return fakeSolid{}, nil
}

func (k *fakeKernel) Union(s ...kernel.Solid) kernel.Solid {
	k.log("union(%d)", len(s))
	return fakeSolid{}
}

func (k *fakeKernel) Difference(a kernel.Solid, tools ...kernel.Solid) kernel.Solid {
	k.log("difference(%d)", len(tools))
	return fakeSolid{}
}

func (k *fakeKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	k.log("intersection")
	return fakeSolid{}
}

func (k *fakeKernel) Translate(s kernel.Solid, v r3.Vec) kernel.Solid {
	k.log("translate(%.4g,%.4g,%.4g)", v.X, v.Y, v.Z)
	return s
}

func (k *fakeKernel) RotateX(s kernel.Solid, angle float64) kernel.Solid {
	k.log("rotatex(%.4g)", angle)
	return s
}

func (k *fakeKernel) RotateZ(s kernel.Solid, angle float64) kernel.Solid {
	k.log("rotatez(%.4g)", angle)
	return s
}

func (k *fakeKernel) MirrorZ(s kernel.Solid) kernel.Solid {
	k.log("mirrorz")
	return s
}

func (k *fakeKernel) Mesh(s kernel.Solid, cells int) ([]kernel.Triangle, error) {
	k.log("mesh(%d)", cells)
	return nil, nil
}

func TestInvoluteSpurExtrudes(t *testing.T) {
	k := &fakeKernel{}
	g := profile.NewInvolute()
	if _, err := NewBuilder(k).Involute(g); err != nil {
		t.Fatal(err)
	}
	if k.count("polygon") != 1 {
		t.Errorf("polygon calls: %v", k.ops)
	}
	want := fmt.Sprintf("extrude(%.4g)", g.Height)
	if k.count(want) != 1 || k.count("twistextrude") != 0 {
		t.Errorf("spur gear recipe: %v", k.ops)
	}
}

func TestInvoluteHelicalTwists(t *testing.T) {
	k := &fakeKernel{}
	g := profile.NewInvolute()
	g.Helix = gears.DtoR(15)
	if _, err := NewBuilder(k).Involute(g); err != nil {
		t.Fatal(err)
	}
	dim, _ := g.Dimensions()
	twist := g.Height * math.Tan(g.Helix) * 2 / dim.PitchDiameter
	want := fmt.Sprintf("twistextrude(%.4g,%.4g)", g.Height, twist)
	if k.count(want) != 1 {
		t.Errorf("want %q in %v", want, k.ops)
	}
}

func TestInvoluteDoubleHelix(t *testing.T) {
	k := &fakeKernel{}
	g := profile.NewInvolute()
	g.Helix = gears.DtoR(15)
	g.DoubleHelix = true
	if _, err := NewBuilder(k).Involute(g); err != nil {
		t.Fatal(err)
	}
	// Half-height half-twist sweep, mirrored and recentered.
	dim, _ := g.Dimensions()
	twist := g.Height * math.Tan(g.Helix) * 2 / dim.PitchDiameter
	want := fmt.Sprintf("twistextrude(%.4g,%.4g)", g.Height/2, twist/2)
	if k.count(want) != 1 {
		t.Errorf("want %q in %v", want, k.ops)
	}
	if k.count("mirrorz") != 1 || k.count("union(2)") != 1 {
		t.Errorf("herringbone recipe: %v", k.ops)
	}
	shift := fmt.Sprintf("translate(0,0,%.4g)", g.Height/2)
	if k.count(shift) != 1 {
		t.Errorf("want %q in %v", shift, k.ops)
	}
}

func TestZeroHeightRejected(t *testing.T) {
	k := &fakeKernel{}
	g := profile.NewInvolute()
	g.Height = 0
	if _, err := NewBuilder(k).Involute(g); !errors.Is(err, gears.ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestWormTwist(t *testing.T) {
	twistOf := func(g *profile.Worm) float64 {
		t.Helper()
		k := &fakeKernel{}
		if _, err := NewBuilder(k).Worm(g); err != nil {
			t.Fatal(err)
		}
		var h, tw float64
		for _, op := range k.ops {
			if n, _ := fmt.Sscanf(op, "twistextrude(%g,%g)", &h, &tw); n == 2 {
				return tw
			}
		}
		t.Fatalf("no twist extrusion in %v", k.ops)
		return 0
	}
	g := profile.NewWorm()
	fwd := twistOf(g)
	if fwd == 0 {
		t.Fatal("worm sweep must twist")
	}
	g = profile.NewWorm()
	g.ReversePitch = true
	if rev := twistOf(g); math.Abs(rev+fwd) > 1e-12 {
		t.Errorf("reversed pitch twist %v, want %v", rev, -fwd)
	}
}

func TestRackRecipes(t *testing.T) {
	straight := &fakeKernel{}
	g := profile.NewRack()
	if _, err := NewBuilder(straight).Rack(g); err != nil {
		t.Fatal(err)
	}
	if straight.count("extrude(") != 1 || straight.count("loft") != 0 {
		t.Errorf("straight rack recipe: %v", straight.ops)
	}

	sheared := &fakeKernel{}
	g = profile.NewRack()
	g.Helix = gears.DtoR(20)
	if _, err := NewBuilder(sheared).Rack(g); err != nil {
		t.Fatal(err)
	}
	if sheared.count("translateface") != 1 || sheared.count("loft") != 1 {
		t.Errorf("helical rack recipe: %v", sheared.ops)
	}

	double := &fakeKernel{}
	g = profile.NewRack()
	g.Helix = gears.DtoR(20)
	g.DoubleHelix = true
	if _, err := NewBuilder(double).Rack(g); err != nil {
		t.Fatal(err)
	}
	if double.count("loft") != 2 || double.count("union(2)") != 1 {
		t.Errorf("double helical rack recipe: %v", double.ops)
	}
}

func TestBevelLoftStations(t *testing.T) {
	straight := &fakeKernel{}
	g := profile.NewBevel()
	if _, err := NewBuilder(straight).Bevel(g); err != nil {
		t.Fatal(err)
	}
	if straight.count("loft") != 1 {
		t.Errorf("straight bevel lofts: %v", straight.ops)
	}
	// ResetOrigin flips the cone onto z = 0.
	if straight.count("mirrorz") != 1 {
		t.Errorf("reset origin: %v", straight.ops)
	}

	spiral := &fakeKernel{}
	g = profile.NewBevel()
	g.Helix = gears.DtoR(20)
	if _, err := NewBuilder(spiral).Bevel(g); err != nil {
		t.Fatal(err)
	}
	if spiral.count("loft") != 19 {
		t.Errorf("spiral bevel lofts %d, want 19", spiral.count("loft"))
	}
}

func TestBevelHeightBounds(t *testing.T) {
	g := profile.NewBevel()
	cd, err := g.ConeDistance()
	if err != nil {
		t.Fatal(err)
	}
	g.Height = cd + 1
	if _, err := NewBuilder(&fakeKernel{}).Bevel(g); !errors.Is(err, gears.ErrInvalidParameter) {
		t.Errorf("height beyond apex: got %v, want ErrInvalidParameter", err)
	}
}

func TestCrownPreviewAndCut(t *testing.T) {
	preview := &fakeKernel{}
	g := profile.NewCrown()
	if _, err := NewBuilder(preview).Crown(g); err != nil {
		t.Fatal(err)
	}
	if preview.count("circle") != 2 || preview.count("difference(1)") != 1 {
		t.Errorf("preview ring recipe: %v", preview.ops)
	}
	if preview.count("rotatez") != 0 {
		t.Errorf("preview must not cut teeth: %v", preview.ops)
	}

	full := &fakeKernel{}
	g = profile.NewCrown()
	g.PreviewMode = false
	if _, err := NewBuilder(full).Crown(g); err != nil {
		t.Fatal(err)
	}
	if full.count("rotatez") != g.Teeth {
		t.Errorf("tooth cuts %d, want %d", full.count("rotatez"), g.Teeth)
	}
	want := fmt.Sprintf("difference(%d)", g.Teeth)
	if full.count(want) != 1 {
		t.Errorf("want %q in %v", want, full.ops)
	}
	// One loft per adjacent station pair, tipped onto the rim.
	if full.count("loft") != g.NumProfiles-1 || full.count("rotatex") != 1 {
		t.Errorf("cutter recipe: %v", full.ops)
	}
}

func TestBeltCutsTeeth(t *testing.T) {
	k := &fakeKernel{}
	g := profile.NewBelt()
	if _, err := NewBuilder(k).Belt(g); err != nil {
		t.Fatal(err)
	}
	if k.count("rotatez") != g.Teeth {
		t.Errorf("tooth cuts %d, want %d", k.count("rotatez"), g.Teeth)
	}
	want := fmt.Sprintf("difference(%d)", g.Teeth)
	if k.count(want) != 1 {
		t.Errorf("want %q in %v", want, k.ops)
	}
}

func TestHypocycloidParts(t *testing.T) {
	k := &fakeKernel{}
	g := profile.NewHypocycloid()
	if _, err := NewBuilder(k).Hypocycloid(g); err != nil {
		t.Fatal(err)
	}
	// Two cam disks with drilled holes and one pin per roller.
	if k.count("difference(1)") != 2 {
		t.Errorf("cam hole drills: %v", k.ops)
	}
	if want := fmt.Sprintf("union(%d)", g.Teeth+1); k.count(want) != 1 {
		t.Errorf("want pin %q in %v", want, k.ops)
	}
	if k.count("union(3)") != 1 {
		t.Errorf("final fuse: %v", k.ops)
	}

	empty := profile.NewHypocycloid()
	empty.PrimaryDisk = false
	empty.SecondaryDisk = false
	empty.Pins = false
	if _, err := NewBuilder(&fakeKernel{}).Hypocycloid(empty); !errors.Is(err, gears.ErrInvalidParameter) {
		t.Errorf("nothing selected: got %v, want ErrInvalidParameter", err)
	}
}

func TestUnclosedOutlineRejected(t *testing.T) {
	b := NewBuilder(&fakeKernel{})
	_, err := b.face(gears.Outline{Curves: []gears.Curve{{{X: 0}, {X: 1}}}})
	if !errors.Is(err, gears.ErrDegenerateGeometry) {
		t.Errorf("got %v, want ErrDegenerateGeometry", err)
	}
}
