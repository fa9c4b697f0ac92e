package profile

import (
	"math"

	"github.com/soypat/gears"
	"gonum.org/v1/gonum/spatial/r3"
)

// Worm describes a worm (screw) gear. The cross section is built from
// root and tip arcs joined by helically projected straight flanks; the
// solid stage sweeps it along the thread lead.
type Worm struct {
	Module        float64
	Teeth         int // number of thread starts
	Diameter      float64
	PressureAngle float64
	Head          float64
	Clearance     float64
	Height        float64
	// ReversePitch flips the thread handedness.
	ReversePitch bool
	Points       int // points per flank curve
}

// NewWorm returns a worm with conventional defaults.
func NewWorm() *Worm {
	return &Worm{
		Module:        1,
		Teeth:         3,
		Diameter:      5,
		PressureAngle: gears.DtoR(20),
		Clearance:     0.25,
		Height:        5,
		Points:        10,
	}
}

// LeadAngle returns the thread lead angle atan(m*z/d).
func (g *Worm) LeadAngle() float64 {
	return math.Atan(g.Module * float64(g.Teeth) / g.Diameter)
}

func (g *Worm) check() error {
	if err := g.validateTooth(); err != nil {
		return err
	}
	m := g.Module
	rootD := g.Diameter - (2+2*g.Clearance)*m
	if rootD <= 0 {
		return gears.Invalidf("root diameter %.4g <= 0", rootD)
	}
	if (m*math.Pi-4*m*math.Tan(g.PressureAngle))/2 <= 0 {
		return gears.Degeneratef("flanks overlap: pressure angle %.4g too large", g.PressureAngle)
	}
	return nil
}

func (g *Worm) validateTooth() error {
	if g.Teeth < 1 {
		return gears.Invalidf("teeth %d < 1", g.Teeth)
	}
	if g.Module <= 0 {
		return gears.Invalidf("module %.4g <= 0", g.Module)
	}
	if g.Diameter <= 0 {
		return gears.Invalidf("diameter %.4g <= 0", g.Diameter)
	}
	if g.PressureAngle <= 0 || g.PressureAngle >= math.Pi/2 {
		return gears.Invalidf("pressure angle %.4g outside (0, pi/2)", g.PressureAngle)
	}
	return nil
}

// Tooth returns one thread period of the cross section: root arc, rising
// flank, tip arc, falling flank. Flank points are the helical projection
// of the axial tooth trapezoid onto the cross-section plane.
func (g *Worm) Tooth() (gears.ToothProfile, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	if g.Points < 2 {
		return nil, gears.Invalidf("points per flank %d < 2", g.Points)
	}
	m := g.Module
	t := float64(g.Teeth)
	tanA := math.Tan(g.PressureAngle)
	r1 := (g.Diameter - (2+2*g.Clearance)*m) / 2
	r2 := (g.Diameter + (2+2*g.Head)*m) / 2

	// Axial stations of one thread period.
	za := (2 + g.Head + g.Clearance) * m * tanA
	zb := (m*math.Pi - 4*m*tanA) / 2
	z0 := g.Clearance * m * tanA
	z1 := zb - z0
	z2 := z1 + za
	z3 := z2 + zb - 2*g.Head*m*tanA
	z4 := z3 + za

	// The helical projection maps axial position z to azimuth 2z/(m*t).
	phi := func(z float64) float64 { return 2 * z / (m * t) }
	project := func(r, z float64) r3.Vec {
		s, c := math.Sincos(phi(z))
		return r3.Vec{X: r * c, Y: r * s}
	}
	flank := func(rFrom, rTo, zFrom, zTo float64) gears.Curve {
		c := make(gears.Curve, g.Points)
		rs := linspace(rFrom, rTo, g.Points)
		for i, z := range linspace(zFrom, zTo, g.Points) {
			c[i] = project(rs[i], z)
		}
		return c
	}

	return gears.ToothProfile{
		circleArc(r1, phi(z0), phi(z1), g.Points),
		flank(r1, r2, z1, z2),
		circleArc(r2, phi(z2), phi(z3), g.Points),
		flank(r2, r1, z3, z4),
	}, nil
}

// Outline assembles the full cross section from the thread starts.
func (g *Worm) Outline() (gears.Outline, error) {
	tooth, err := g.Tooth()
	if err != nil {
		return gears.Outline{}, err
	}
	return gears.Assemble(tooth, g.Teeth)
}
