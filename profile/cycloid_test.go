package profile

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/gears"
)

func TestCycloidOutline(t *testing.T) {
	g := NewCycloid()
	out, err := g.Outline()
	if err != nil {
		t.Fatal(err)
	}
	checkClosed(t, out)
	dim, err := g.Dimensions()
	if err != nil {
		t.Fatal(err)
	}
	min, max := radialRange(out)
	if min < dim.RootDiameter/2-1e-9 {
		t.Errorf("point radius %v below root radius %v", min, dim.RootDiameter/2)
	}
	if math.Abs(max-dim.OutsideDiameter/2) > 1e-9 {
		t.Errorf("tip radius %v, want %v", max, dim.OutsideDiameter/2)
	}
}

func TestCycloidFlankMeetsPitchCircle(t *testing.T) {
	// The hypocycloid and epicycloid flanks join on the pitch circle;
	// that join is the end of the root curve.
	g := NewCycloid()
	tooth, err := g.Tooth()
	if err != nil {
		t.Fatal(err)
	}
	dim, _ := g.Dimensions()
	join := tooth[0].Last()
	if r := math.Hypot(join.X, join.Y); math.Abs(r-dim.PitchDiameter/2) > 1e-9 {
		t.Errorf("flank join radius %v, want pitch radius %v", r, dim.PitchDiameter/2)
	}
}

func TestCycloidInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		mod  func(*Cycloid)
	}{
		{name: "teeth=0", mod: func(g *Cycloid) { g.Teeth = 0 }},
		{name: "zero rolling circle", mod: func(g *Cycloid) { g.InnerDiameter = 0 }},
		{name: "rolling circle exceeds pitch", mod: func(g *Cycloid) { g.InnerDiameter = 40 }},
	} {
		g := NewCycloid()
		tc.mod(g)
		if _, err := g.Tooth(); !errors.Is(err, gears.ErrInvalidParameter) {
			t.Errorf("%s: got %v, want ErrInvalidParameter", tc.name, err)
		}
	}
}
