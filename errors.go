package gears

import (
	"errors"
	"fmt"
)

// Generation either yields a valid outline/solid or fails with one of the
// errors below. Partial results are never returned and failures are never
// retried internally.
var (
	// ErrInvalidParameter reports out-of-range or mutually inconsistent
	// gear parameters: teeth < 1, module <= 0, bevel pitch angle outside
	// (0, pi/4), base radius exceeding outside radius and the like.
	ErrInvalidParameter = errors.New("gears: invalid parameter")

	// ErrRootNotFound reports a numeric root search that did not converge
	// within its iteration budget. Callers treat it as an invalid
	// parameter combination for the enclosing gear.
	ErrRootNotFound = errors.New("gears: root search did not converge")

	// ErrDegenerateGeometry reports a generator that produced a
	// self-intersecting or zero-length outline.
	ErrDegenerateGeometry = errors.New("gears: degenerate geometry")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func degeneratef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDegenerateGeometry, fmt.Sprintf(format, args...))
}

// Invalidf returns an ErrInvalidParameter with formatted context. It is
// exported for the profile and solid packages, which share the taxonomy.
func Invalidf(format string, args ...any) error {
	return invalidf(format, args...)
}

// Degeneratef returns an ErrDegenerateGeometry with formatted context.
func Degeneratef(format string, args ...any) error {
	return degeneratef(format, args...)
}
