package gears

import (
	"errors"
	"math"
	"testing"
)

func TestSpurDimensions(t *testing.T) {
	for _, head := range []float64{0, 0.2, 0.5} {
		for _, clearance := range []float64{0, 0.1, 0.25} {
			dim, err := SpurDimensions(2, 20, DtoR(20), 0, 0, head, clearance, false)
			if err != nil {
				t.Fatalf("head=%g clearance=%g: %v", head, clearance, err)
			}
			if dim.PitchDiameter != 40 {
				t.Errorf("pitch diameter %v, want 40", dim.PitchDiameter)
			}
			if dim.RootDiameter >= dim.BaseDiameter && clearance > 0 {
				// z=20, alpha=20deg: the root circle sits below the base
				// circle for any positive clearance.
				t.Errorf("root %v not below base %v", dim.RootDiameter, dim.BaseDiameter)
			}
			if !(dim.RootDiameter < dim.PitchDiameter && dim.PitchDiameter < dim.OutsideDiameter) {
				t.Errorf("diameter ordering violated: root %v pitch %v outside %v",
					dim.RootDiameter, dim.PitchDiameter, dim.OutsideDiameter)
			}
			if math.Abs(dim.AngularPitch-tau/20) > 1e-15 {
				t.Errorf("angular pitch %v, want %v", dim.AngularPitch, tau/20)
			}
		}
	}
}

func TestSpurDimensionsNormalModule(t *testing.T) {
	beta := DtoR(20)
	dim, err := SpurDimensions(1, 30, DtoR(20), beta, 0, 0, 0.25, true)
	if err != nil {
		t.Fatal(err)
	}
	mt := 1 / math.Cos(beta)
	if math.Abs(dim.PitchDiameter-30*mt) > 1e-12 {
		t.Errorf("pitch diameter %v, want %v", dim.PitchDiameter, 30*mt)
	}
	// Transverse pressure angle is larger than the normal one, so the
	// base circle shrinks relative to a transverse-specified gear.
	straight, err := SpurDimensions(mt, 30, DtoR(20), 0, 0, 0, 0.25, false)
	if err != nil {
		t.Fatal(err)
	}
	if dim.BaseDiameter >= straight.BaseDiameter {
		t.Errorf("base diameter %v should be below transverse-specified %v", dim.BaseDiameter, straight.BaseDiameter)
	}
}

func TestSpurDimensionsInvalid(t *testing.T) {
	for _, tc := range []struct {
		name          string
		module        float64
		teeth         int
		pressureAngle float64
		shift         float64
	}{
		{name: "zero module", module: 0, teeth: 10, pressureAngle: DtoR(20)},
		{name: "zero teeth", module: 1, teeth: 0, pressureAngle: DtoR(20)},
		{name: "negative teeth", module: 1, teeth: -4, pressureAngle: DtoR(20)},
		{name: "zero pressure angle", module: 1, teeth: 10, pressureAngle: 0},
		{name: "right-angle pressure angle", module: 1, teeth: 10, pressureAngle: pi / 2},
		{name: "base above outside", module: 1, teeth: 10, pressureAngle: DtoR(20), shift: -3},
	} {
		_, err := SpurDimensions(tc.module, tc.teeth, tc.pressureAngle, 0, tc.shift, 0, 0.25, false)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: got %v, want ErrInvalidParameter", tc.name, err)
		}
	}
}

func TestCycloidDimensions(t *testing.T) {
	dim, err := CycloidDimensions(1.5, 15, 0, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if dim.BaseDiameter != 0 {
		t.Errorf("cycloid gears have no base circle, got %v", dim.BaseDiameter)
	}
	if dim.OutsideDiameter != 22.5+3 || dim.RootDiameter != 22.5-2*1.5*1.25 {
		t.Errorf("unexpected diameters: %+v", dim)
	}
	if _, err := CycloidDimensions(1, 0, 0, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("teeth=0: got %v, want ErrInvalidParameter", err)
	}
}

func TestConeDistance(t *testing.T) {
	got, err := ConeDistance(2, 20, DtoR(30))
	if err != nil {
		t.Fatal(err)
	}
	want := 20.0 / math.Tan(DtoR(30))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, angle := range []float64{0, pi / 4, pi / 3, -0.1} {
		if _, err := ConeDistance(2, 20, angle); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("pitch angle %v: got %v, want ErrInvalidParameter", angle, err)
		}
	}
}
