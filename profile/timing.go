package profile

import (
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// TimingType selects a measured GT tooth geometry.
type TimingType string

const (
	GT2 TimingType = "gt2"
	GT3 TimingType = "gt3"
	GT5 TimingType = "gt5"
)

// timingData holds the measured arc radii of one GT belt profile.
// u is the radial gap between pitch and head circle, h the tooth depth,
// r12/r23/r34 the flank arc radii and offset the x shift of the second
// arc center.
type timingData struct {
	pitch, u, h   float64
	r12, r23, r34 float64
	offset        float64
}

var timingTable = map[TimingType]timingData{
	GT2: {pitch: 2.0, u: 0.254, h: 0.75, r12: 0.555, r23: 1.0, r34: 0.15, offset: 0.40},
	GT3: {pitch: 3.0, u: 0.381, h: 1.14, r12: 0.85, r23: 1.52, r34: 0.25, offset: 0.61},
	GT5: {pitch: 5.0, u: 0.5715, h: 1.93, r12: 1.44, r23: 2.57, r34: 0.416, offset: 1.03},
}

// TimingLookup returns the measured GT profile data: pitch, pitch-to-head
// gap and tooth depth.
func TimingLookup(t TimingType) (pitch, u, h float64, err error) {
	d, ok := timingTable[t]
	if !ok {
		return 0, 0, 0, gears.Invalidf("unknown timing profile %q", t)
	}
	return d.pitch, d.u, d.h, nil
}

// Timing describes a GT timing-belt pulley. The tooth boundary is six
// tangent circular arcs with measured radii; only the pitch radius
// depends on the tooth count.
type Timing struct {
	Type   TimingType
	Teeth  int
	Height float64
	Points int // points per arc
}

// NewTiming returns a GT2 pulley with conventional defaults.
func NewTiming() *Timing {
	return &Timing{
		Type:   GT2,
		Teeth:  15,
		Height: 5,
		Points: 8,
	}
}

// PitchRadius returns pitch*teeth/(2*pi).
func (g *Timing) PitchRadius() (float64, error) {
	d, ok := timingTable[g.Type]
	if !ok {
		return 0, gears.Invalidf("unknown timing profile %q", g.Type)
	}
	if g.Teeth < 1 {
		return 0, gears.Invalidf("teeth %d < 1", g.Teeth)
	}
	return d.pitch * float64(g.Teeth) / (2 * math.Pi), nil
}

// Tooth returns one tooth as six tangent arcs, traversed counter
// clockwise so copies chain under rotation by the angular pitch.
func (g *Timing) Tooth() (gears.ToothProfile, error) {
	rp, err := g.PitchRadius()
	if err != nil {
		return nil, err
	}
	if g.Points < 2 {
		return nil, gears.Invalidf("points per arc %d < 2", g.Points)
	}
	d := timingTable[g.Type]

	q := (d.r12-d.r23)/d.offset*(d.r12-d.r23)/d.offset - 1
	if q <= 0 {
		return nil, gears.Degeneratef("flank arcs cannot be tangent: offset %.4g too large", d.offset)
	}
	phi12 := math.Atan(math.Sqrt(1 / q))
	r5 := rp - d.u
	if r5 <= d.h {
		return nil, gears.Invalidf("pitch radius %.4g too small for tooth depth %.4g", rp, d.h)
	}
	m12 := r2.Vec{Y: r5 - d.h + d.r12}
	m23 := r2.Vec{X: d.offset, Y: d.offset/math.Tan(phi12) + m12.Y}

	// Tangency angle of the small head arc: the center of the r34 arc
	// sits at distance r34+r23 from m23 on the circle of radius r5-r34.
	a := r5 - d.r34
	k := ((d.r34+d.r23)*(d.r34+d.r23) - a*a - d.offset*d.offset - m23.Y*m23.Y) / (2 * a)
	rr := math.Hypot(d.offset, m23.Y)
	if math.Abs(k/rr) > 1 {
		return nil, gears.Invalidf("no tangent head arc for %q with %d teeth", g.Type, g.Teeth)
	}
	phi4 := math.Atan2(m23.Y, d.offset) + math.Asin(k/rr)
	phi5 := math.Pi / float64(g.Teeth)

	s4, c4 := math.Sincos(phi4)
	m34 := r2.Vec{X: -a * s4, Y: a * c4}
	x2 := r2.Vec{X: -d.r12 * math.Sin(phi12), Y: m12.Y - d.r12*math.Cos(phi12)}
	x3 := r2.Add(m34, r2.Scale(d.r34/(d.r34+d.r23), r2.Sub(m23, m34)))
	x4 := r2.Vec{X: -r5 * s4, Y: r5 * c4}
	x6 := d2.NewReflection(-phi5 - math.Pi/2).Reflect(x4)

	xn2, xn3, xn4 := d2.MirrorX(x2), d2.MirrorX(x3), d2.MirrorX(x4)
	mn23, mn34 := d2.MirrorX(m23), d2.MirrorX(m34)

	n := g.Points
	return gears.ToothProfile{
		arcAbout(x6, x4, r2.Vec{}, n),
		arcAbout(x4, x3, m34, n),
		arcAbout(x3, x2, m23, n),
		arcAbout(x2, xn2, m12, n),
		arcAbout(xn2, xn3, mn23, n),
		arcAbout(xn3, xn4, mn34, n),
	}, nil
}

// Outline assembles the closed pulley boundary.
func (g *Timing) Outline() (gears.Outline, error) {
	tooth, err := g.Tooth()
	if err != nil {
		return gears.Outline{}, err
	}
	return gears.Assemble(tooth, g.Teeth)
}
