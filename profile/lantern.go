package profile

import (
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Lantern describes a lantern (pin) gear: the wheel that meshes with a
// cage of cylindrical bolts. Each flank is the involute of the pitch
// circle offset inward by the bolt radius.
type Lantern struct {
	Module     float64
	Teeth      int
	BoltRadius float64
	Head       float64 // head * module extends the tip radius
	Height     float64
	Points     int // points per flank curve
}

// NewLantern returns a lantern gear with conventional defaults.
func NewLantern() *Lantern {
	return &Lantern{
		Module:     1,
		Teeth:      15,
		BoltRadius: 1,
		Height:     5,
		Points:     10,
	}
}

// Tooth returns the curves of one tooth: falling flank, root arc hugging
// the bolt, rising flank and the head arc to the next tooth. The head arc
// spans to the start of the following copy so assembly chains without
// connectors.
func (g *Lantern) Tooth() (gears.ToothProfile, error) {
	if g.Teeth < 1 {
		return nil, gears.Invalidf("teeth %d < 1", g.Teeth)
	}
	if g.Module <= 0 {
		return nil, gears.Invalidf("module %.4g <= 0", g.Module)
	}
	if g.BoltRadius <= 0 {
		return nil, gears.Invalidf("bolt radius %.4g <= 0", g.BoltRadius)
	}
	if g.Points < 2 {
		return nil, gears.Invalidf("points per flank %d < 2", g.Points)
	}
	r0 := g.Module * float64(g.Teeth) / 2
	rr := g.BoltRadius
	rMax := r0 + rr + g.Head*g.Module

	phiMax := (rr + math.Sqrt(rMax*rMax-r0*r0)) / r0
	// Rolling angle where the offset involute meets the bolt seated on
	// the pitch circle.
	phiMin, err := gears.FindRoot(func(phi float64) float64 {
		s, c := math.Sincos(phi)
		return r0 * (phi*phi*r0 - 2*phi*r0*s - 2*phi*rr - 2*r0*c + 2*r0 + 2*rr*s)
	}, (phiMax+4*rr/r0)/5)
	if err != nil {
		return nil, err
	}
	if phiMin >= phiMax {
		return nil, gears.Degeneratef("bolt radius %.4g leaves no flank on %d teeth", rr, g.Teeth)
	}

	flank := func(phi float64) r2.Vec {
		s, c := math.Sincos(phi)
		return r2.Vec{
			X: r0*(c+phi*s) - rr*s,
			Y: r0*(s-phi*c) + rr*c,
		}
	}
	rising := make(gears.Curve, g.Points)
	for i, phi := range linspace(phiMin, phiMax, g.Points) {
		rising[i] = lift(flank(phi))
	}
	falling := mirrorFlank(rising) // tip to root, below the x axis

	p1 := r2.Vec{X: rising.First().X, Y: rising.First().Y}
	p2 := d2.MirrorY(p1)
	p12 := r2.Vec{X: r0 - rr}
	center, err := symmetricArcCenter(p1, p12)
	if err != nil {
		return nil, err
	}

	// Head arc to the first point of the next copy.
	step := d2.NewRotation(2 * math.Pi / float64(g.Teeth))
	last := rising.Last()
	next := step.Rotate(r2.Vec{X: falling.First().X, Y: falling.First().Y})

	return gears.ToothProfile{
		falling,
		arcAbout(p2, p1, center, g.Points),
		rising,
		arcAbout(r2.Vec{X: last.X, Y: last.Y}, next, r2.Vec{}, g.Points),
	}, nil
}

// symmetricArcCenter returns the on-axis center of the circle through p,
// its mirror image, and the axis point q.
func symmetricArcCenter(p, q r2.Vec) (r2.Vec, error) {
	den := 2 * (p.X - q.X)
	if math.Abs(den) < 1e-12 {
		return r2.Vec{}, gears.Degeneratef("root arc collapsed")
	}
	cx := (p.X*p.X + p.Y*p.Y - q.X*q.X) / den
	return r2.Vec{X: cx}, nil
}

// Outline assembles the closed gear boundary.
func (g *Lantern) Outline() (gears.Outline, error) {
	tooth, err := g.Tooth()
	if err != nil {
		return gears.Outline{}, err
	}
	return gears.Assemble(tooth, g.Teeth)
}
