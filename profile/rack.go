package profile

import (
	"math"

	"github.com/soypat/gears"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rack describes a straight gear rack. Teeth run along +X, flanks point
// +Y and the closing back of the rack sits below the root line.
type Rack struct {
	Module        float64
	Teeth         int
	PressureAngle float64
	Helix         float64 // shears the extrusion, the profile stays straight
	Clearance     float64
	Head          float64
	// Thickness is the depth of solid material behind the root line.
	Thickness float64
	Height    float64
	// AddEndings pads both ends with half a root run so the total rack
	// length is exactly Teeth times the pitch. Without it the rack
	// starts and ends on a tooth flank corner.
	AddEndings  bool
	DoubleHelix bool
	// FromTool marks Module and PressureAngle as normal-plane values.
	FromTool bool
}

// NewRack returns a rack with conventional defaults.
func NewRack() *Rack {
	return &Rack{
		Module:        1,
		Teeth:         15,
		PressureAngle: gears.DtoR(20),
		Clearance:     0.25,
		Thickness:     5,
		Height:        5,
		AddEndings:    true,
		FromTool:      true,
	}
}

// Pitch returns the tooth spacing in the transverse plane.
func (g *Rack) Pitch() float64 {
	m, _ := g.transverse()
	return math.Pi * m
}

func (g *Rack) transverse() (m, alpha float64) {
	m, alpha = g.Module, g.PressureAngle
	if g.FromTool && g.Helix != 0 {
		m = gears.TransverseModule(m, g.Helix)
		alpha = gears.TransversePressureAngle(alpha, g.Helix)
	}
	return m, alpha
}

func (g *Rack) check() (m, alpha float64, err error) {
	if g.Teeth < 1 {
		return 0, 0, gears.Invalidf("teeth %d < 1", g.Teeth)
	}
	if g.Module <= 0 {
		return 0, 0, gears.Invalidf("module %.4g <= 0", g.Module)
	}
	if g.PressureAngle <= 0 || g.PressureAngle >= math.Pi/2 {
		return 0, 0, gears.Invalidf("pressure angle %.4g out of (0, pi/2)", g.PressureAngle)
	}
	m, alpha = g.transverse()
	// The tip must stay narrower than the full pitch and wider than zero.
	ya := m * (1 + g.Head)
	if math.Pi*m/4-ya*math.Tan(alpha) <= 0 {
		return 0, 0, gears.Degeneratef("tooth tip vanishes: head %.4g too large", g.Head)
	}
	return m, alpha, nil
}

// Tooth returns one tooth period: rising flank, tip, falling flank. The
// tooth is centered on X = 0, the pitch line is Y = 0. Root runs between
// teeth appear as connectors during assembly.
func (g *Rack) Tooth() (gears.ToothProfile, error) {
	m, alpha, err := g.check()
	if err != nil {
		return nil, err
	}
	p := math.Pi * m
	yr := -m * (1 + g.Clearance)
	ya := m * (1 + g.Head)
	// Flank half-width at height y, measured from the tooth center.
	w := func(y float64) float64 { return p/4 - y*math.Tan(alpha) }

	rising := gears.Curve{
		{X: -w(yr), Y: yr},
		{X: -w(ya), Y: ya},
	}
	tip := gears.Curve{
		{X: -w(ya), Y: ya},
		{X: w(ya), Y: ya},
	}
	falling := gears.Curve{
		{X: w(ya), Y: ya},
		{X: w(yr), Y: yr},
	}
	return gears.ToothProfile{rising, tip, falling}, nil
}

// Outline returns the closed rack boundary: the replicated tooth periods,
// optional half root runs at both ends, and the back rectangle of depth
// Thickness. The rack is centered about X = 0.
func (g *Rack) Outline() (gears.Outline, error) {
	tooth, err := g.Tooth()
	if err != nil {
		return gears.Outline{}, err
	}
	m, _, _ := g.check()
	p := math.Pi * m
	yr := -m * (1 + g.Clearance)

	// Shift the first tooth so the finished rack is symmetric about x=0.
	shift := -float64(g.Teeth-1) * p / 2
	for _, c := range tooth {
		for i := range c {
			c[i].X += shift
		}
	}
	out, err := gears.AssembleLinear(tooth, g.Teeth, r3.Vec{X: p})
	if err != nil {
		return gears.Outline{}, err
	}

	left := out.Start()
	right := out.End()
	if g.AddEndings {
		// Half a root run each side brings the length to teeth * pitch.
		start := r3.Vec{X: shift - p/2, Y: yr}
		end := r3.Vec{X: -shift + p/2, Y: yr}
		out.Curves = append(gears.ToothProfile{{start, left}}, out.Curves...)
		out.Curves = append(out.Curves, gears.Curve{right, end})
		left, right = start, end
	}
	yb := yr - g.Thickness
	out.Curves = append(out.Curves,
		gears.Curve{right, {X: right.X, Y: yb}},
		gears.Curve{{X: right.X, Y: yb}, {X: left.X, Y: yb}},
		gears.Curve{{X: left.X, Y: yb}, left},
	)
	out.Closed = true
	return out, nil
}
