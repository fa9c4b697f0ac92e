package gears

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	solveTolerance = 1e-12
	newtonMaxIter  = 50
	bisectMaxIter  = 200
)

// FindRoot locates a zero of f near guess. Newton iterations with a
// central-difference derivative run first; if they stall, a bracket is
// grown around the guess and refined by bisection. The search is bounded:
// it fails with ErrRootNotFound instead of hanging, and callers treat
// that as an invalid parameter combination for the enclosing gear.
func FindRoot(f func(float64) float64, guess float64) (float64, error) {
	settings := &fd.Settings{Formula: fd.Central}

	x := guess
	for i := 0; i < newtonMaxIter; i++ {
		fx := f(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			break
		}
		if math.Abs(fx) < solveTolerance {
			return x, nil
		}
		d := fd.Derivative(f, x, settings)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			break
		}
		step := fx / d
		x -= step
		if math.Abs(step) < solveTolerance*math.Max(1, math.Abs(x)) {
			if fx := f(x); math.Abs(fx) < 1e-9 {
				return x, nil
			}
			break
		}
	}

	a, b, ok := bracket(f, guess)
	if !ok {
		return 0, fmt.Errorf("%w: no sign change near guess %g", ErrRootNotFound, guess)
	}
	return bisect(f, a, b)
}

// bracket grows an interval around guess geometrically until f changes
// sign across it.
func bracket(f func(float64) float64, guess float64) (a, b float64, ok bool) {
	h := 1e-3 * math.Max(1, math.Abs(guess))
	for i := 0; i < 60; i++ {
		a, b = guess-h, guess+h
		fa, fb := f(a), f(b)
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return 0, 0, false
		}
		if fa == 0 {
			return a, a, true
		}
		if fb == 0 {
			return b, b, true
		}
		if fa*fb < 0 {
			return a, b, true
		}
		// Also test the half-intervals: the zero may sit between guess
		// and one endpoint with matching outer signs.
		fg := f(guess)
		if fg*fa < 0 {
			return a, guess, true
		}
		if fg*fb < 0 {
			return guess, b, true
		}
		h *= 2
	}
	return 0, 0, false
}

func bisect(f func(float64) float64, a, b float64) (float64, error) {
	if a == b {
		return a, nil
	}
	fa := f(a)
	for i := 0; i < bisectMaxIter; i++ {
		mid := 0.5 * (a + b)
		fm := f(mid)
		if math.Abs(fm) < solveTolerance || math.Abs(b-a) < solveTolerance*math.Max(1, math.Abs(mid)) {
			return mid, nil
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return 0, fmt.Errorf("%w: bisection exhausted its iteration budget", ErrRootNotFound)
}
