package profile

import (
	"math"

	"github.com/soypat/gears"
)

// Crown describes a crown (face) gear. It has no planar outline: teeth
// are cut by lofting the profile of the mating pinion's tooth through the
// rim at several radii and subtracting one loft per tooth from an annular
// ring. OtherTeeth is the tooth count of the mating pinion.
type Crown struct {
	Module        float64
	Teeth         int
	OtherTeeth    int
	PressureAngle float64
	// Height is the radial width of the toothed rim; Thickness the axial
	// depth of the ring below z = 0.
	Height    float64
	Thickness float64
	// NumProfiles is the number of loft stations per cutting tooth.
	NumProfiles int
	// PreviewMode skips the tooth cut and yields the bare ring.
	PreviewMode bool
}

// NewCrown returns a crown gear with conventional defaults. PreviewMode
// starts enabled: the tooth cut multiplies the kernel work by the tooth
// count.
func NewCrown() *Crown {
	return &Crown{
		Module:        1,
		Teeth:         15,
		OtherTeeth:    15,
		PressureAngle: gears.DtoR(20),
		Height:        2,
		Thickness:     5,
		NumProfiles:   4,
		PreviewMode:   true,
	}
}

// InnerDiameter returns the rim bore diameter m*z.
func (g *Crown) InnerDiameter() float64 { return g.Module * float64(g.Teeth) }

// OuterDiameter returns the rim outside diameter.
func (g *Crown) OuterDiameter() float64 { return g.InnerDiameter() + 2*g.Height }

func (g *Crown) check() error {
	if g.Teeth < 1 || g.OtherTeeth < 1 {
		return gears.Invalidf("teeth %d, other teeth %d must be >= 1", g.Teeth, g.OtherTeeth)
	}
	if g.Module <= 0 {
		return gears.Invalidf("module %.4g <= 0", g.Module)
	}
	if g.PressureAngle <= 0 || g.PressureAngle >= math.Pi/2 {
		return gears.Invalidf("pressure angle %.4g outside (0, pi/2)", g.PressureAngle)
	}
	if g.NumProfiles < 2 {
		return gears.Invalidf("loft needs at least 2 profiles, got %d", g.NumProfiles)
	}
	return nil
}

// CutterProfile returns the closed cutting-tooth quadrilateral at radius
// r: the mating pinion tooth as seen in the vertical plane through that
// radius, widened as the engagement circle grows with r.
func (g *Crown) CutterProfile(r float64) (gears.Curve, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	m := g.Module
	alphaW := g.PressureAngle
	ti := float64(g.OtherTeeth)
	rm := g.InnerDiameter() / 2
	y0 := m / 2
	y1 := m + y0
	y2 := m

	rEW := m * ti / 2
	// Engagement circle and pressure angle at this radius.
	rE := r / rm * rEW
	cosAlpha := rm / r * math.Cos(alphaW)
	if cosAlpha > 1 || cosAlpha < -1 {
		return nil, gears.Invalidf("station radius %.4g below the engagement limit", r)
	}
	alpha := math.Acos(cosAlpha)
	// Azimuth of the tooth standing upright at this radius.
	phi := math.Pi/(2*ti) + (alpha - alphaW) + (math.Tan(alphaW) - math.Tan(alpha))
	xc := rE * math.Sin(phi)
	dy := -rE*math.Cos(phi) + rEW

	x1 := math.Tan(alpha)*(y1-dy) + xc
	x2 := xc - math.Tan(alpha)*(y2+dy)
	rp := r * math.Cos(phi)
	return gears.Curve{
		{X: -x1, Y: rp, Z: y0},
		{X: -x2, Y: rp, Z: y0 - y1 - y2},
		{X: x2, Y: rp, Z: y0 - y1 - y2},
		{X: x1, Y: rp, Z: y0},
		{X: -x1, Y: rp, Z: y0},
	}, nil
}

// CutterStations returns the loft stations of one cutting tooth, from
// just inside the rim bore to just outside the rim.
func (g *Crown) CutterStations() ([]gears.Curve, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	r0 := g.InnerDiameter()/2 - g.Height*0.1
	r1 := g.OuterDiameter()/2 + g.Height*0.3
	stations := make([]gears.Curve, g.NumProfiles)
	for i, r := range linspace(r0, r1, g.NumProfiles) {
		p, err := g.CutterProfile(r)
		if err != nil {
			return nil, err
		}
		stations[i] = p
	}
	return stations, nil
}

// AngularPitch returns the rotation between consecutive tooth cuts.
func (g *Crown) AngularPitch() float64 {
	return 2 * math.Pi / float64(g.Teeth)
}
