package profile

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/gears"
)

func TestWormOutline(t *testing.T) {
	g := NewWorm()
	out, err := g.Outline()
	if err != nil {
		t.Fatal(err)
	}
	checkClosed(t, out)
	r1 := (g.Diameter - (2+2*g.Clearance)*g.Module) / 2
	r2 := (g.Diameter + (2+2*g.Head)*g.Module) / 2
	min, max := radialRange(out)
	if min < r1-1e-9 || max > r2+1e-9 {
		t.Errorf("radii [%v, %v] outside [%v, %v]", min, max, r1, r2)
	}
	if math.Abs(max-r2) > 1e-9 {
		t.Errorf("tip radius %v, want %v", max, r2)
	}
}

func TestWormToothSpansAngularPitch(t *testing.T) {
	// One thread period covers exactly 2*pi/starts, so the starts chain
	// into a closed cross section without connectors.
	g := NewWorm()
	tooth, err := g.Tooth()
	if err != nil {
		t.Fatal(err)
	}
	first := tooth[0].First()
	last := tooth[len(tooth)-1].Last()
	a1 := math.Atan2(first.Y, first.X)
	a2 := math.Atan2(last.Y, last.X)
	span := math.Mod(a2-a1+4*math.Pi, 2*math.Pi)
	if want := 2 * math.Pi / float64(g.Teeth); math.Abs(span-want) > 1e-9 {
		t.Errorf("period span %v, want %v", span, want)
	}
}

func TestWormLeadAngle(t *testing.T) {
	g := NewWorm()
	g.Module = 2
	g.Teeth = 2
	g.Diameter = 8
	if got, want := g.LeadAngle(), math.Atan(0.5); math.Abs(got-want) > 1e-15 {
		t.Errorf("lead angle %v, want %v", got, want)
	}
}

func TestWormInvalid(t *testing.T) {
	g := NewWorm()
	g.Diameter = 2 // root radius collapses below zero
	if _, err := g.Tooth(); !errors.Is(err, gears.ErrInvalidParameter) {
		t.Errorf("undersized diameter: got %v, want ErrInvalidParameter", err)
	}
	g = NewWorm()
	g.Teeth = 0
	if _, err := g.Tooth(); !errors.Is(err, gears.ErrInvalidParameter) {
		t.Errorf("teeth=0: got %v, want ErrInvalidParameter", err)
	}
}
