package profile

import (
	"math"

	"github.com/soypat/gears"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bevel describes a straight or spiral bevel gear. Tooth curves are
// generated on the unit sphere centered on the cone apex; the solid stage
// scales them to the loft stations. PitchAngle is the half angle of the
// pitch cone and must stay inside (0, pi/4).
type Bevel struct {
	Module        float64
	Teeth         int
	PressureAngle float64
	PitchAngle    float64
	Helix         float64 // spiral angle, applied per loft station
	Clearance     float64
	Backlash      float64
	Height        float64
	// ResetOrigin flips the gear so its outer face lands on z = 0.
	ResetOrigin bool
	Points      int
}

// NewBevel returns a bevel gear with conventional defaults.
func NewBevel() *Bevel {
	return &Bevel{
		Module:        1,
		Teeth:         15,
		PressureAngle: gears.DtoR(20),
		PitchAngle:    gears.DtoR(30),
		Clearance:     0.1,
		Height:        5,
		ResetOrigin:   true,
		Points:        6,
	}
}

// ConeDistance returns the apex-to-pitch-circle distance. Both loft
// stations must be scaled from this one reference.
func (g *Bevel) ConeDistance() (float64, error) {
	return gears.ConeDistance(g.Module, g.Teeth, g.PitchAngle)
}

// angles returns the base, root and head cone half angles.
func (g *Bevel) angles() (gammaB, gammaRoot, gammaHead float64, err error) {
	scale, err := g.ConeDistance()
	if err != nil {
		return 0, 0, 0, err
	}
	if g.PressureAngle <= 0 || g.PressureAngle >= math.Pi/2 {
		return 0, 0, 0, gears.Invalidf("pressure angle %.4g outside (0, pi/2)", g.PressureAngle)
	}
	gamma := g.PitchAngle
	gammaB = math.Asin(math.Sin(gamma) * math.Cos(g.PressureAngle))
	gammaRoot = gamma - math.Atan(g.Module*(1+g.Clearance)/scale)
	gammaHead = gamma + math.Atan(g.Module/scale)
	if gammaRoot <= 0 {
		return 0, 0, 0, gears.Invalidf("root cone angle %.4g <= 0", gammaRoot)
	}
	if gammaHead >= math.Pi/2 {
		return 0, 0, 0, gears.Invalidf("head cone angle %.4g >= pi/2", gammaHead)
	}
	return gammaB, gammaRoot, gammaHead, nil
}

// sphericalInvolute evaluates the involute of the base cone on the unit
// sphere at rolling angle psi.
func sphericalInvolute(gammaB, psi float64) r3.Vec {
	sb, cb := math.Sincos(gammaB)
	s, c := math.Sincos(psi)
	ss, cs := math.Sincos(psi * sb)
	e := r3.Vec{X: sb * c, Y: sb * s, Z: cb}
	t := r3.Vec{X: -s, Y: c}
	return r3.Sub(r3.Scale(cs, e), r3.Scale(ss, t))
}

// polarAngle is the angle of p from the +Z axis.
func polarAngle(p r3.Vec) float64 { return math.Acos(p.Z) }

// psiAt solves for the rolling angle whose involute point sits at polar
// angle delta from the cone axis.
func psiAt(gammaB, delta float64) (float64, error) {
	eps := delta - gammaB
	if eps < 0 {
		return 0, gears.Invalidf("polar angle %.4g below base cone angle %.4g", delta, gammaB)
	}
	guess := math.Sqrt(2*eps*math.Tan(gammaB)) / math.Sin(gammaB)
	return gears.FindRoot(func(psi float64) float64 {
		return polarAngle(sphericalInvolute(gammaB, psi)) - delta
	}, guess)
}

// Tooth returns the curves of one tooth on the unit sphere, centered on
// the +X meridian: root run (when the root cone undercuts the base cone),
// rising flank, head arc, falling flank, root run.
func (g *Bevel) Tooth() (gears.ToothProfile, error) {
	gammaB, gammaRoot, gammaHead, err := g.angles()
	if err != nil {
		return nil, err
	}
	if g.Points < 2 {
		return nil, gears.Invalidf("points per flank %d < 2", g.Points)
	}
	scale, _ := g.ConeDistance()
	z := float64(g.Teeth)

	psiHead, err := psiAt(gammaB, gammaHead)
	if err != nil {
		return nil, err
	}
	psiRoot := 0.0
	if gammaRoot > gammaB {
		if psiRoot, err = psiAt(gammaB, gammaRoot); err != nil {
			return nil, err
		}
	}
	psiPitch, err := psiAt(gammaB, g.PitchAngle)
	if err != nil {
		return nil, err
	}

	// Spin the flank so its pitch point sits halfThick below the tooth
	// center line.
	halfThick := math.Pi/(2*z) - g.Backlash/(2*scale*math.Sin(g.PitchAngle))
	pitchPt := sphericalInvolute(gammaB, psiPitch)
	spin := -halfThick - math.Atan2(pitchPt.Y, pitchPt.X)

	rising := make(gears.Curve, g.Points)
	for i, psi := range linspace(psiRoot, psiHead, g.Points) {
		rising[i] = spinZ(sphericalInvolute(gammaB, psi), spin)
	}
	tipLow := math.Atan2(rising.Last().Y, rising.Last().X)
	if tipLow >= 0 {
		return nil, gears.Degeneratef("tooth tip vanishes: head cone angle %.4g too large for %d teeth", gammaHead, g.Teeth)
	}

	var curves gears.ToothProfile
	if gammaRoot < gammaB {
		curves = append(curves, meridian(gammaRoot, gammaB, math.Atan2(rising.First().Y, rising.First().X), g.Points))
	}
	curves = append(curves, rising)
	curves = append(curves, smallCircle(gammaHead, tipLow, -tipLow, g.Points))
	curves = append(curves, mirrorFlank3(rising))
	if gammaRoot < gammaB {
		curves = append(curves, mirrorFlank3(curves[0]))
	}
	return curves, nil
}

// spinZ rotates p about the z axis.
func spinZ(p r3.Vec, angle float64) r3.Vec {
	s, c := math.Sincos(angle)
	return r3.Vec{X: c*p.X - s*p.Y, Y: s*p.X + c*p.Y, Z: p.Z}
}

// meridian samples the unit-sphere meridian at the given azimuth from
// polar angle d1 to d2.
func meridian(d1, d2, azimuth float64, n int) gears.Curve {
	s, c := math.Sincos(azimuth)
	out := make(gears.Curve, n)
	for i, d := range linspace(d1, d2, n) {
		sd, cd := math.Sincos(d)
		out[i] = r3.Vec{X: sd * c, Y: sd * s, Z: cd}
	}
	return out
}

// smallCircle samples the circle of constant polar angle delta between
// two azimuths.
func smallCircle(delta, a1, a2 float64, n int) gears.Curve {
	sd, cd := math.Sincos(delta)
	out := make(gears.Curve, n)
	for i, a := range linspace(a1, a2, n) {
		s, c := math.Sincos(a)
		out[i] = r3.Vec{X: sd * c, Y: sd * s, Z: cd}
	}
	return out
}

// mirrorFlank3 reflects a spherical flank across the XZ plane and
// reverses it.
func mirrorFlank3(c gears.Curve) gears.Curve {
	out := make(gears.Curve, len(c))
	for i, p := range c {
		out[len(c)-1-i] = r3.Vec{X: p.X, Y: -p.Y, Z: p.Z}
	}
	return out
}

// SphericalRotation twists p for the spiral (helical) bevel stations. The
// twist angle is a nonlinear function of the point norm so every loft
// station shares the one scale reference.
func (g *Bevel) SphericalRotation(p r3.Vec) r3.Vec {
	angle := g.Helix * math.Sin(math.Pi/4) / math.Sin(g.PitchAngle)
	return spinZ(p, math.Sqrt(r3.Norm(p))*angle)
}

// Outline assembles the closed unit-sphere boundary.
func (g *Bevel) Outline() (gears.Outline, error) {
	tooth, err := g.Tooth()
	if err != nil {
		return gears.Outline{}, err
	}
	return gears.Assemble(tooth, g.Teeth)
}
