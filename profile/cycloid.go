package profile

import (
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Cycloid describes a cycloid gear: the dedendum flank is traced by a
// rolling circle inside the pitch circle (hypocycloid), the addendum
// flank by one rolling outside it (epicycloid). The two rolling circles
// are independent; matching gears must swap them.
type Cycloid struct {
	Module float64
	Teeth  int
	// InnerDiameter and OuterDiameter are the rolling circle diameters
	// of the dedendum and addendum flanks.
	InnerDiameter float64
	OuterDiameter float64
	Helix         float64
	Clearance     float64
	Head          float64
	Backlash      float64
	DoubleHelix   bool
	Height        float64
	Points        int // points per flank curve
}

// NewCycloid returns a cycloid gear with conventional defaults.
func NewCycloid() *Cycloid {
	return &Cycloid{
		Module:        1,
		Teeth:         15,
		InnerDiameter: 5,
		OuterDiameter: 5,
		Clearance:     0.25,
		Height:        5,
		Points:        15,
	}
}

// Dimensions derives the gear diameters. Cycloid gears have no base
// circle.
func (g *Cycloid) Dimensions() (gears.Dimensions, error) {
	return gears.CycloidDimensions(g.Module, g.Teeth, g.Head, g.Clearance)
}

// Tooth returns the curves of one tooth centered on +X: hypocycloid root
// flank, epicycloid tip flank, tip arc, then the mirrored pair.
func (g *Cycloid) Tooth() (gears.ToothProfile, error) {
	dim, err := g.Dimensions()
	if err != nil {
		return nil, err
	}
	if g.Points < 2 {
		return nil, gears.Invalidf("points per flank %d < 2", g.Points)
	}
	r := dim.PitchDiameter / 2
	ra := dim.OutsideDiameter / 2
	rf := dim.RootDiameter / 2
	ri := g.InnerDiameter / 2 // inner rolling circle radius
	ro := g.OuterDiameter / 2
	if ri <= 0 || ro <= 0 {
		return nil, gears.Invalidf("rolling circle diameters %.4g, %.4g must be positive", g.InnerDiameter, g.OuterDiameter)
	}
	if ri >= r {
		return nil, gears.Invalidf("inner rolling circle radius %.4g >= pitch radius %.4g", ri, r)
	}
	if rf <= math.Abs(r-2*ri) {
		return nil, gears.Invalidf("root radius %.4g below the hypocycloid reach %.4g", rf, math.Abs(r-2*ri))
	}

	hypo := func(theta float64) r2.Vec {
		return r2.Vec{
			X: (r-ri)*math.Cos(theta) + ri*math.Cos((r-ri)/ri*theta),
			Y: (r-ri)*math.Sin(theta) - ri*math.Sin((r-ri)/ri*theta),
		}
	}
	epi := func(theta float64) r2.Vec {
		return r2.Vec{
			X: (r+ro)*math.Cos(theta) - ro*math.Cos((r+ro)/ro*theta),
			Y: (r+ro)*math.Sin(theta) - ro*math.Sin((r+ro)/ro*theta),
		}
	}
	// Rolling angle where the hypocycloid reaches the root circle.
	thetaF, err := gears.FindRoot(func(theta float64) float64 {
		return r2.Norm(hypo(theta)) - rf
	}, math.Sqrt(2*ri*(1-rf/r)/(r-ri)))
	if err != nil {
		return nil, err
	}
	// Rolling angle where the epicycloid reaches the head circle.
	thetaA, err := gears.FindRoot(func(theta float64) float64 {
		return r2.Norm(epi(theta)) - ra
	}, math.Sqrt(2*ro*(ra/r-1)/(r+ro)))
	if err != nil {
		return nil, err
	}
	thetaF = math.Abs(thetaF)
	thetaA = math.Abs(thetaA)

	halfThick := math.Pi/(2*float64(g.Teeth)) - g.Backlash/dim.PitchDiameter
	rot := d2.NewRotation(-halfThick)

	root := make(gears.Curve, g.Points)
	for i, theta := range linspace(-thetaF, 0, g.Points) {
		root[i] = lift(rot.Rotate(hypo(theta)))
	}
	tip := make(gears.Curve, g.Points)
	for i, theta := range linspace(0, thetaA, g.Points) {
		tip[i] = lift(rot.Rotate(epi(theta)))
	}
	last := tip.Last()
	tipLow := math.Atan2(last.Y, last.X)
	if tipLow >= 0 {
		return nil, gears.Degeneratef("tooth tip vanishes: outside radius %.4g too large for %d teeth", ra, g.Teeth)
	}
	return gears.ToothProfile{
		root,
		tip,
		circleArc(r2.Norm(r2.Vec{X: last.X, Y: last.Y}), tipLow, -tipLow, g.Points),
		mirrorFlank(tip),
		mirrorFlank(root),
	}, nil
}

// Outline assembles the closed gear boundary.
func (g *Cycloid) Outline() (gears.Outline, error) {
	tooth, err := g.Tooth()
	if err != nil {
		return gears.Outline{}, err
	}
	return gears.Assemble(tooth, g.Teeth)
}
