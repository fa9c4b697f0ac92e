package profile

import (
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Involute describes an involute spur or helical gear. Angles are
// radians and lengths share one unit with Module.
type Involute struct {
	Module        float64 // transverse module, or normal module when FromTool
	Teeth         int
	PressureAngle float64 // transverse, or normal when FromTool
	Helix         float64 // helix angle beta, 0 for a spur gear
	Shift         float64 // profile shift coefficient
	Clearance     float64 // dedendum extension as multiple of module
	Head          float64 // addendum extension as multiple of module
	// Backlash is the flank gap in length units. ReversedBacklash flips
	// its sign, thickening the tooth instead of thinning it.
	Backlash         float64
	ReversedBacklash bool
	// Undercut replaces the flank below the base circle with the
	// trochoid fillet traced by the cutting tool tip.
	Undercut bool
	// FromTool marks Module and PressureAngle as normal-plane values to
	// be recomputed for the rotated (helical) gear.
	FromTool    bool
	DoubleHelix bool
	Height      float64
	Points      int // points per flank curve
}

// NewInvolute returns an involute gear with conventional defaults:
// 15 teeth, module 1, 20 degree pressure angle.
func NewInvolute() *Involute {
	return &Involute{
		Module:        1,
		Teeth:         15,
		PressureAngle: gears.DtoR(20),
		Clearance:     0.25,
		Height:        5,
		Points:        6,
	}
}

// Dimensions derives the gear diameters.
func (g *Involute) Dimensions() (gears.Dimensions, error) {
	return gears.SpurDimensions(g.Module, g.Teeth, g.PressureAngle, g.Helix, g.Shift, g.Head, g.Clearance, g.FromTool)
}

func (g *Involute) signedBacklash() float64 {
	if g.ReversedBacklash {
		return -g.Backlash
	}
	return g.Backlash
}

// transverse returns the module and pressure angle in the transverse
// plane.
func (g *Involute) transverse() (m, alpha float64) {
	m, alpha = g.Module, g.PressureAngle
	if g.FromTool {
		m = gears.TransverseModule(m, g.Helix)
		alpha = gears.TransversePressureAngle(alpha, g.Helix)
	}
	return m, alpha
}

// Tooth returns the curves of one tooth, centered on the +X axis and
// ordered counter-clockwise: root run, rising flank, tip arc, falling
// flank, root run. The root runs are radial lines, or trochoid fillets
// when Undercut is set; they are absent when the root circle lies outside
// the base circle.
func (g *Involute) Tooth() (gears.ToothProfile, error) {
	dim, err := g.Dimensions()
	if err != nil {
		return nil, err
	}
	if g.Points < 2 {
		return nil, gears.Invalidf("points per flank %d < 2", g.Points)
	}
	_, alpha := g.transverse()
	z := float64(g.Teeth)
	r := dim.PitchDiameter / 2
	rb := dim.BaseDiameter / 2
	ra := dim.OutsideDiameter / 2
	rf := dim.RootDiameter / 2
	if rf <= 0 {
		return nil, gears.Invalidf("root radius %.4g <= 0", rf)
	}

	invAlpha := math.Tan(alpha) - alpha
	halfThick := (math.Pi/2+2*g.Shift*math.Tan(alpha))/z - g.signedBacklash()/dim.PitchDiameter
	base := -halfThick - invAlpha // polar angle where the rising involute leaves the base circle

	// Involute parameter t: radius rb*sqrt(1+t^2), polar offset t-atan(t).
	tAt := func(rho float64) float64 { return math.Sqrt(rho*rho/(rb*rb) - 1) }
	ta := tAt(ra)
	t0 := 0.0
	if rf > rb {
		t0 = tAt(rf)
	}

	rising := make(gears.Curve, g.Points)
	for i, t := range linspace(t0, ta, g.Points) {
		rho := rb * math.Hypot(1, t)
		rising[i] = lift(d2.PolarToXY(rho, base+t-math.Atan(t)))
	}
	tipLow := base + ta - math.Atan(ta)
	if tipLow >= 0 {
		return nil, gears.Degeneratef("tooth tip vanishes: outside radius %.4g too large for %d teeth", ra, g.Teeth)
	}

	var curves gears.ToothProfile
	if rf < rb {
		root, err := g.rootRun(alpha, r, rf, rb, base)
		if err != nil {
			return nil, err
		}
		// Close any angular mismatch between fillet and involute by
		// pivoting the fillet onto the involute start point.
		root = pivotOnto(root, rising.First().X, rising.First().Y)
		curves = append(curves, root)
	}
	curves = append(curves, rising)
	curves = append(curves, circleArc(ra, tipLow, -tipLow, g.Points))
	curves = append(curves, mirrorFlank(rising))
	if rf < rb {
		curves = append(curves, mirrorFlank(curves[0]))
	}
	return curves, nil
}

// rootRun builds the flank portion between root and base circles at
// angular position base: a radial segment, or the tool-tip trochoid when
// undercutting is requested.
func (g *Involute) rootRun(alpha, r, rf, rb, base float64) (gears.Curve, error) {
	if !g.Undercut {
		c := make(gears.Curve, 2)
		c[0] = lift(d2.PolarToXY(rf, base))
		c[1] = lift(d2.PolarToXY(rb, base))
		return c, nil
	}
	// Trochoid traced by the rack tool corner. In the rolling frame the
	// corner sits a = dedendum depth below the pitch line, offset u0
	// along it; the gear frame sees R(tau)*(u0-r*tau, r-a), rotated a
	// quarter turn so the tooth centers on +X.
	a := r - rf
	u0 := -(r*math.Abs(base) + a*math.Tan(alpha))
	at := func(tau float64) r2.Vec {
		rot := d2.NewRotation(tau)
		p := rot.Rotate(r2.Vec{X: u0 - r*tau, Y: r - a})
		return r2.Vec{X: p.Y, Y: -p.X}
	}
	tauDeep := u0 / r // radius minimum, exactly rf
	tauEnd, err := gears.FindRoot(func(tau float64) float64 {
		return r2.Norm(at(tau)) - rb
	}, tauDeep+a/r)
	if err != nil {
		return nil, err
	}
	c := make(gears.Curve, g.Points)
	for i, tau := range linspace(tauDeep, tauEnd, g.Points) {
		c[i] = lift(at(tau))
	}
	return c, nil
}

// pivotOnto rotates the curve about the origin so its last point lands on
// (x, y), preserving the radial shape of the fillet.
func pivotOnto(c gears.Curve, x, y float64) gears.Curve {
	last := c.Last()
	delta := math.Atan2(y, x) - math.Atan2(last.Y, last.X)
	rot := d2.NewRotation(delta)
	out := make(gears.Curve, len(c))
	for i, p := range c {
		out[i] = lift(rot.Rotate(r2.Vec{X: p.X, Y: p.Y}))
	}
	return out
}

// mirrorFlank reflects a flank across the tooth center line (the X axis)
// and reverses it so the curve runs tip to root.
func mirrorFlank(c gears.Curve) gears.Curve {
	out := make(gears.Curve, len(c))
	for i, p := range c {
		out[len(c)-1-i] = lift(d2.MirrorY(r2.Vec{X: p.X, Y: p.Y}))
	}
	return out
}

// Outline assembles the closed gear boundary.
func (g *Involute) Outline() (gears.Outline, error) {
	tooth, err := g.Tooth()
	if err != nil {
		return gears.Outline{}, err
	}
	return gears.Assemble(tooth, g.Teeth)
}
