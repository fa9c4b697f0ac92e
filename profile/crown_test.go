package profile

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/gears"
)

func TestCrownDiameters(t *testing.T) {
	g := NewCrown()
	if g.InnerDiameter() != 15 {
		t.Errorf("inner diameter %v, want 15", g.InnerDiameter())
	}
	if g.OuterDiameter() != 19 {
		t.Errorf("outer diameter %v, want 19", g.OuterDiameter())
	}
	if want := 2 * math.Pi / float64(g.Teeth); g.AngularPitch() != want {
		t.Errorf("angular pitch %v, want %v", g.AngularPitch(), want)
	}
}

func TestCrownCutterProfile(t *testing.T) {
	g := NewCrown()
	c, err := g.CutterProfile(g.InnerDiameter() / 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 5 || c.First() != c.Last() {
		t.Fatalf("cutter profile not a closed quadrilateral: %d points", len(c))
	}
	// At the reference radius the engagement matches the design pressure
	// angle, so the tooth stands centered on the +Y axis.
	for i := 0; i < 2; i++ {
		l, r := c[i], c[3-i]
		if math.Abs(l.X+r.X) > 1e-9 || math.Abs(l.Y-r.Y) > 1e-9 || math.Abs(l.Z-r.Z) > 1e-9 {
			t.Errorf("points %d and %d not mirrored: %v %v", i, 3-i, l, r)
		}
	}
	// The narrow end of the cutting tooth is below the wide end.
	if tip, base := -c[1].X, -c[0].X; tip >= base {
		t.Errorf("lower half width %v not below upper half width %v", tip, base)
	}
}

func TestCrownCutterStations(t *testing.T) {
	g := NewCrown()
	stations, err := g.CutterStations()
	if err != nil {
		t.Fatal(err)
	}
	if len(stations) != g.NumProfiles {
		t.Fatalf("got %d stations, want %d", len(stations), g.NumProfiles)
	}
	// Stations march outward and the cutting tooth widens with radius.
	prev := math.Inf(-1)
	for i, s := range stations {
		if s[0].Y <= prev {
			t.Errorf("station %d radius %v not beyond %v", i, s[0].Y, prev)
		}
		prev = s[0].Y
	}
	inner, outer := stations[0], stations[len(stations)-1]
	if -outer.First().X <= -inner.First().X {
		t.Errorf("cutter base did not widen: %v vs %v", -outer.First().X, -inner.First().X)
	}
}

func TestCrownInvalid(t *testing.T) {
	g := NewCrown()
	g.Teeth = 0
	if _, err := g.CutterStations(); !errors.Is(err, gears.ErrInvalidParameter) {
		t.Errorf("teeth=0: got %v, want ErrInvalidParameter", err)
	}
	g = NewCrown()
	g.NumProfiles = 1
	if _, err := g.CutterStations(); !errors.Is(err, gears.ErrInvalidParameter) {
		t.Errorf("single profile: got %v, want ErrInvalidParameter", err)
	}
}
