package profile

import (
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Hypocycloid describes a cycloidal-drive cam disk meshing with a circle
// of rollers. The cam profile is the closed-form roller-contact curve,
// clipped where the pressure angle leaves the working range. The cam is
// generated around its eccentric center (-Eccentricity, 0); the roller
// pins stay centered on the origin.
type Hypocycloid struct {
	PinCircleRadius float64
	RollerDiameter  float64
	Eccentricity    float64
	// PressureAngleLimit bounds the usable flank; PressureAngleOffset is
	// subtracted from the radius of points outside the bound.
	PressureAngleLimit  float64
	PressureAngleOffset float64
	Teeth               int
	Segments            int // points per tooth flank
	HoleRadius          float64

	// Disk and pin selection for the solid stage.
	PrimaryDisk   bool
	SecondaryDisk bool
	DiskHeight    float64
	Pins          bool
	PinHeight     float64
	CenterPins    bool
}

// NewHypocycloid returns a cycloidal drive with conventional defaults.
func NewHypocycloid() *Hypocycloid {
	return &Hypocycloid{
		PinCircleRadius:     66,
		RollerDiameter:      3,
		Eccentricity:        1.5,
		PressureAngleLimit:  gears.DtoR(50),
		PressureAngleOffset: 0.01,
		Teeth:               42,
		Segments:            42,
		HoleRadius:          30,
		PrimaryDisk:         true,
		SecondaryDisk:       true,
		DiskHeight:          10,
		Pins:                true,
		PinHeight:           20,
		CenterPins:          true,
	}
}

func (g *Hypocycloid) check() error {
	if g.Teeth < 1 {
		return gears.Invalidf("teeth %d < 1", g.Teeth)
	}
	if g.Segments < 3 {
		return gears.Invalidf("segments %d < 3", g.Segments)
	}
	if g.PinCircleRadius <= 0 || g.RollerDiameter <= 0 {
		return gears.Invalidf("pin circle radius %.4g and roller diameter %.4g must be positive", g.PinCircleRadius, g.RollerDiameter)
	}
	if g.Eccentricity <= 0 || g.Eccentricity >= g.PinCircleRadius {
		return gears.Degeneratef("eccentricity %.4g outside (0, pin circle radius)", g.Eccentricity)
	}
	return nil
}

// contactAngle is the roller contact direction at cam angle a.
func (g *Hypocycloid) contactAngle(a float64) float64 {
	n := float64(g.Teeth)
	p := g.PinCircleRadius / n
	e := g.Eccentricity
	return math.Atan(math.Sin(n*a) / (math.Cos(n*a) + n*p/(e*(n+1))))
}

// camPoint evaluates the closed-form cam curve at rolling angle a, in the
// frame centered on the pin circle.
func (g *Hypocycloid) camPoint(a float64) r2.Vec {
	n := float64(g.Teeth)
	p := g.PinCircleRadius / n
	e := g.Eccentricity
	d2r := g.RollerDiameter / 2
	psi := g.contactAngle(a)
	return r2.Vec{
		X: n*p*math.Cos(a) + e*math.Cos((n+1)*a) - d2r*math.Cos(psi+a),
		Y: n*p*math.Sin(a) + e*math.Sin((n+1)*a) - d2r*math.Sin(psi+a),
	}
}

// pressureAngle returns the pressure angle at cam angle a.
func (g *Hypocycloid) pressureAngle(a float64) float64 {
	n := float64(g.Teeth)
	p := g.PinCircleRadius / n
	ex := math.Sqrt2
	rp := p * n
	rg := rp / ex
	pp := rg*math.Sqrt(ex*ex+1-2*ex*math.Cos(a)) - g.RollerDiameter/2
	return math.Asin((rp*math.Cos(a) - rg) / (pp + g.RollerDiameter/2))
}

// pressureLimit returns the cam radius at which the pressure angle bound
// is reached for cam angle a.
func (g *Hypocycloid) pressureLimit(a float64) float64 {
	n := float64(g.Teeth)
	p := g.PinCircleRadius / n
	e := g.Eccentricity
	ex := math.Sqrt2
	rp := p * n
	rg := rp / ex
	q := math.Sqrt(rp*rp + rg*rg - 2*rp*rg*math.Cos(a))
	x := rg - e + (q-g.RollerDiameter/2)*(rp*math.Cos(a)-rg)/q
	y := (q - g.RollerDiameter/2) * rp * math.Sin(a) / q
	return math.Hypot(x, y)
}

// RadiusLimits scans the pressure angle in one-degree steps and returns
// the cam radii where it crosses +limit and -limit.
func (g *Hypocycloid) RadiusLimits() (minRadius, maxRadius float64, err error) {
	if err := g.check(); err != nil {
		return 0, 0, err
	}
	minAngle, maxAngle := -1.0, -1.0
	for i := 0; i < 180; i++ {
		x := g.pressureAngle(gears.DtoR(float64(i)))
		if x < g.PressureAngleLimit && minAngle < 0 {
			minAngle = float64(i)
		}
		if x < -g.PressureAngleLimit && maxAngle < 0 {
			maxAngle = float64(i - 1)
		}
	}
	if minAngle < 0 || maxAngle < 0 {
		return 0, 0, gears.Degeneratef("pressure angle never crosses limit %.4g", g.PressureAngleLimit)
	}
	return g.pressureLimit(gears.DtoR(minAngle)), g.pressureLimit(gears.DtoR(maxAngle)), nil
}

// clip pulls points whose radius leaves [minRadius, maxRadius] inward by
// the pressure angle offset. This is deliberate output shaping, not error
// recovery: flank regions beyond the working pressure angle never touch a
// roller.
func (g *Hypocycloid) clip(p r2.Vec, minRadius, maxRadius float64) r2.Vec {
	pol := d2.CartesianToPolar(p)
	if pol.R > maxRadius || pol.R < minRadius {
		pol.R -= g.PressureAngleOffset
		return pol.PolarToCartesian()
	}
	return p
}

// Tooth returns one cam lobe as a single curve, shifted to the eccentric
// cam center.
func (g *Hypocycloid) Tooth() (gears.ToothProfile, error) {
	minRadius, maxRadius, err := g.RadiusLimits()
	if err != nil {
		return nil, err
	}
	n := float64(g.Teeth)
	q := 2 * math.Pi / float64(g.Segments)
	c := make(gears.Curve, g.Segments+1)
	for i := range c {
		p := g.clip(g.camPoint(q*float64(i)/n), minRadius, maxRadius)
		c[i] = r3.Vec{X: p.X - g.Eccentricity, Y: p.Y}
	}
	return gears.ToothProfile{c}, nil
}

// Outline assembles the full cam boundary by rotating the lobe about the
// cam center.
func (g *Hypocycloid) Outline() (gears.Outline, error) {
	tooth, err := g.Tooth()
	if err != nil {
		return gears.Outline{}, err
	}
	return gears.AssembleAbout(tooth, g.Teeth, r2.Vec{X: -g.Eccentricity})
}

// SecondaryOutline returns the cam outline of the reversed second disk:
// the primary spun half a turn about its own center (plus half a lobe
// when the tooth count is even) and recentered on the opposite side of
// the origin.
func (g *Hypocycloid) SecondaryOutline() (gears.Outline, error) {
	out, err := g.Outline()
	if err != nil {
		return gears.Outline{}, err
	}
	e := g.Eccentricity
	spin := math.Pi
	if g.Teeth%2 == 0 {
		spin += math.Pi / float64(g.Teeth)
	}
	rot := d2.NewRotation(spin)
	for _, c := range out.Curves {
		for i, p := range c {
			v := rot.Rotate(r2.Vec{X: p.X + e, Y: p.Y})
			c[i] = r3.Vec{X: v.X + e, Y: v.Y, Z: p.Z}
		}
	}
	return out, nil
}

// PinCenters returns the roller pin positions on the pin circle. There is
// one more pin than cam lobes.
func (g *Hypocycloid) PinCenters() []r2.Vec {
	n := g.Teeth + 1
	centers := make([]r2.Vec, n)
	for i := range centers {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		centers[i] = r2.Vec{X: g.PinCircleRadius * c, Y: g.PinCircleRadius * s}
	}
	return centers
}
