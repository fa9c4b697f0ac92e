package profile

import (
	"math"
	"sort"

	"github.com/soypat/gears"
	"gonum.org/v1/gonum/spatial/r3"
)

// Belt profile database - lookup measured timing-belt tooth shapes by
// name. Each entry carries the digitized tooth polygon (in the frame of
// the pulley rim, tooth pointing +Y) plus either a pitch/offset pair or
// the b,c,d curve-fit coefficients for the outside diameter.

// BeltParameters stores the values that define a belt tooth shape.
type BeltParameters struct {
	Name       string
	Pitch      float64 // belt pitch, zero for curve-fit profiles
	Offset     float64 // pitch line offset (belt thickness)
	B, C, D    float64 // outside diameter curve fit, zero for pitch profiles
	ToothDepth float64
	ToothWidth float64
	Polygon    [][2]float64
}

// OutsideDiameter returns the pulley outside diameter for the given tooth
// count: from the pitch length minus the belt thickness, or from the
// curve fit for the T-series profiles.
func (p BeltParameters) OutsideDiameter(teeth int) (float64, error) {
	if teeth < 1 {
		return 0, gears.Invalidf("teeth %d < 1", teeth)
	}
	z := float64(teeth)
	if p.Pitch != 0 {
		return 2 * (z*p.Pitch/(2*math.Pi) - p.Offset), nil
	}
	zd := math.Pow(z, p.D)
	return p.C * zd / (p.B + zd) * z, nil
}

type beltDatabase map[string]BeltParameters

var beltDB = initBeltLookup()

// pitchAdd adds a belt profile whose outside diameter derives from its
// pitch and pitch line offset.
func (m beltDatabase) pitchAdd(name string, pitch, offset, depth, width float64, polygon [][2]float64) {
	m[name] = BeltParameters{
		Name:       name,
		Pitch:      pitch,
		Offset:     offset,
		ToothDepth: depth,
		ToothWidth: width,
		Polygon:    polygon,
	}
}

// fitAdd adds a belt profile whose outside diameter derives from the
// b,c,d curve fit.
func (m beltDatabase) fitAdd(name string, b, c, d, depth, width float64, polygon [][2]float64) {
	m[name] = BeltParameters{
		Name:       name,
		B:          b,
		C:          c,
		D:          d,
		ToothDepth: depth,
		ToothWidth: width,
		Polygon:    polygon,
	}
}

// BeltLookup returns the measured belt profile of the given name.
func BeltLookup(name string) (BeltParameters, error) {
	p, ok := beltDB[name]
	if !ok {
		return BeltParameters{}, gears.Invalidf("unknown belt profile %q", name)
	}
	return p, nil
}

// BeltNames returns the known belt profile names, sorted.
func BeltNames() []string {
	names := make([]string, 0, len(beltDB))
	for name := range beltDB {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Belt describes a polygon-profile timing pulley. Teeth are cut from a
// plain disk: the solid stage subtracts one tooth prism per angular
// pitch.
type Belt struct {
	Type   string
	Teeth  int
	Height float64
	// ExtraToothWidth widens the tooth pocket for belt fit; the polygon
	// is rescaled so the digitized shape keeps its proportions.
	ExtraToothWidth float64
}

// NewBelt returns an HTD 5 mm pulley with conventional defaults.
func NewBelt() *Belt {
	return &Belt{
		Type:            "HTD5M",
		Teeth:           24,
		Height:          9.3,
		ExtraToothWidth: 0.2,
	}
}

// Radius returns the pulley outside radius.
func (g *Belt) Radius() (float64, error) {
	p, err := BeltLookup(g.Type)
	if err != nil {
		return 0, err
	}
	od, err := p.OutsideDiameter(g.Teeth)
	if err != nil {
		return 0, err
	}
	return od / 2, nil
}

// ToothPolygon returns the closed tooth pocket polygon positioned on the
// pulley rim: scaled for the extra width and shifted outward so the
// widened tooth still seats on the rim circle.
func (g *Belt) ToothPolygon() (gears.Curve, error) {
	p, err := BeltLookup(g.Type)
	if err != nil {
		return nil, err
	}
	radius, err := g.Radius()
	if err != nil {
		return nil, err
	}
	toothRadius := (p.ToothWidth + g.ExtraToothWidth) / 2
	if toothRadius >= radius {
		return nil, gears.Degeneratef("tooth width %.4g exceeds pulley radius %.4g", 2*toothRadius, radius)
	}
	distance := math.Sqrt(radius*radius - toothRadius*toothRadius)
	scale := p.ToothWidth / (p.ToothWidth + g.ExtraToothWidth)

	c := make(gears.Curve, 0, len(p.Polygon)+1)
	for _, pt := range p.Polygon {
		c = append(c, r3.Vec{X: pt[0] * scale, Y: pt[1] - distance})
	}
	c = append(c, c[0])
	return c, nil
}

// AngularPitch returns the rotation between consecutive tooth cuts.
func (g *Belt) AngularPitch() float64 {
	return 2 * math.Pi / float64(g.Teeth)
}
