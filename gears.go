// Package gears computes gear tooth curve geometry from manufacturing
// parameters: involute, cycloid, bevel (spherical involute), worm, crown,
// hypocycloid cam and timing-belt profiles. The package holds the value
// types shared by every gear family (curves, profiles, outlines, derived
// dimensions), the outline replication algorithms and the numeric root
// search. Family generators live in the profile package; the solid
// package turns outlines into solids through an injected kernel.
//
// All computation is pure and synchronous. Parameter structs are value
// types consumed within a single generation call; nothing is cached
// across calls.
package gears

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi

	// tolerance is the endpoint coincidence tolerance. Consecutive curve
	// endpoints further apart than this get an explicit connector segment
	// during assembly; profiles whose internal curves mismatch by more
	// than this are malformed.
	tolerance = 1e-9
)

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}
