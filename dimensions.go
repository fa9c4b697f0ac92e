package gears

import "math"

// Dimensions are the diameters and pitches derived from a gear parameter
// set. They are recomputed from scratch on every generation call; nothing
// caches a Dimensions across parameter changes.
type Dimensions struct {
	PitchDiameter   float64 // working pitch diameter d = m*z
	BaseDiameter    float64 // involute base circle diameter, 0 for base-circle-free families
	OutsideDiameter float64 // head circle diameter
	RootDiameter    float64 // root circle diameter
	TransversePitch float64 // circular pitch in the transverse plane, pi*m
	AngularPitch    float64 // angle spanned by one tooth, 2*pi/z
}

// TransverseModule converts a normal-plane module to the transverse plane
// for helix angle beta. With beta = 0 the module is returned unchanged.
func TransverseModule(normalModule, beta float64) float64 {
	return normalModule / math.Cos(beta)
}

// TransversePressureAngle converts a normal-plane pressure angle to the
// transverse plane for helix angle beta.
func TransversePressureAngle(normalAngle, beta float64) float64 {
	return math.Atan(math.Tan(normalAngle) / math.Cos(beta))
}

// SpurDimensions derives the diameters of an involute spur or helical
// gear. Angles are radians. When normalModule is true the module and
// pressure angle are normal-plane values (the gear is specified by its
// cutting tool) and are converted to the transverse plane before any
// diameter is computed. shift is the profile shift coefficient; head and
// clearance are addendum/dedendum extensions as multiples of the module.
func SpurDimensions(module float64, teeth int, pressureAngle, helix, shift, head, clearance float64, normalModule bool) (Dimensions, error) {
	if err := checkToothParams(module, teeth, pressureAngle); err != nil {
		return Dimensions{}, err
	}
	m := module
	alpha := pressureAngle
	if normalModule {
		m = TransverseModule(module, helix)
		alpha = TransversePressureAngle(pressureAngle, helix)
	}
	z := float64(teeth)
	d := m * z
	dim := Dimensions{
		PitchDiameter:   d,
		BaseDiameter:    d * math.Cos(alpha),
		OutsideDiameter: d + 2*m*(1+head) + 2*shift*m,
		RootDiameter:    d - 2*m*(1+clearance) + 2*shift*m,
		TransversePitch: pi * m,
		AngularPitch:    tau / z,
	}
	if dim.BaseDiameter > dim.OutsideDiameter {
		return Dimensions{}, invalidf("base diameter %.4g exceeds outside diameter %.4g", dim.BaseDiameter, dim.OutsideDiameter)
	}
	return dim, nil
}

// CycloidDimensions derives the diameters of a cycloid gear. Cycloid
// flanks have no base circle so BaseDiameter is zero.
func CycloidDimensions(module float64, teeth int, head, clearance float64) (Dimensions, error) {
	if module <= 0 {
		return Dimensions{}, invalidf("module %g <= 0", module)
	}
	if teeth < 1 {
		return Dimensions{}, invalidf("teeth %d < 1", teeth)
	}
	z := float64(teeth)
	d := module * z
	return Dimensions{
		PitchDiameter:   d,
		OutsideDiameter: d + 2*module*(1+head),
		RootDiameter:    d - 2*module*(1+clearance),
		TransversePitch: pi * module,
		AngularPitch:    tau / z,
	}, nil
}

// ConeDistance is the bevel gear scale reference: the distance from the
// cone apex used to scale unit-sphere tooth points into length units.
// The same reference must be used for every loft station or the loft is
// non-ruled and self-intersects.
func ConeDistance(module float64, teeth int, pitchAngle float64) (float64, error) {
	if module <= 0 {
		return 0, invalidf("module %g <= 0", module)
	}
	if teeth < 1 {
		return 0, invalidf("teeth %d < 1", teeth)
	}
	if pitchAngle <= 0 || pitchAngle >= pi/4 {
		return 0, invalidf("pitch angle %g outside (0, pi/4)", pitchAngle)
	}
	return module * float64(teeth) / 2 / math.Tan(pitchAngle), nil
}

func checkToothParams(module float64, teeth int, pressureAngle float64) error {
	if module <= 0 {
		return invalidf("module %g <= 0", module)
	}
	if teeth < 1 {
		return invalidf("teeth %d < 1", teeth)
	}
	if pressureAngle <= 0 || pressureAngle >= pi/2 {
		return invalidf("pressure angle %g outside (0, pi/2)", pressureAngle)
	}
	return nil
}
