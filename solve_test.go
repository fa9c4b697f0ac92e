package gears

import (
	"errors"
	"math"
	"testing"
)

func TestFindRoot(t *testing.T) {
	for _, tc := range []struct {
		name  string
		f     func(float64) float64
		guess float64
		want  float64
	}{
		{name: "cosine", f: math.Cos, guess: 1, want: math.Pi / 2},
		{name: "cubic", f: func(x float64) float64 { return x*x*x - 8 }, guess: 1, want: 2},
		{name: "offset sine", f: func(x float64) float64 { return math.Sin(x) - 0.5 }, guess: 0.2, want: math.Pi / 6},
		{name: "linear", f: func(x float64) float64 { return 3*x - 12 }, guess: 100, want: 4},
	} {
		x, err := FindRoot(tc.f, tc.guess)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if math.Abs(x-tc.want) > 1e-8 {
			t.Errorf("%s: got %v, want %v", tc.name, x, tc.want)
		}
	}
}

func TestFindRootNoRoot(t *testing.T) {
	_, err := FindRoot(func(x float64) float64 { return x*x + 1 }, 0)
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("got %v, want ErrRootNotFound", err)
	}
}

func TestFindRootFlatGuessRecovers(t *testing.T) {
	// Newton stalls on the zero derivative at the guess; the bracket
	// fallback must still find the root.
	x, err := FindRoot(func(x float64) float64 { return x*x - 4 }, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(math.Abs(x)-2) > 1e-8 {
		t.Errorf("got %v, want +-2", x)
	}
}
