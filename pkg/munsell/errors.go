package munsell

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInterpolationMiss is returned when no grid cell of the table
	// contains the requested chromaticity.
	ErrInterpolationMiss = errors.New("munsell: chromaticity not covered by the table")

	// ErrNonConvergence is returned when the value/luminance inversion does
	// not converge within its iteration budget.
	ErrNonConvergence = errors.New("munsell: value inversion did not converge")

	// ErrEmptyPlane marks a plane resource that held no usable samples.
	ErrEmptyPlane = errors.New("no usable samples")
)

// PlaneError describes why one value plane could not be loaded.
type PlaneError struct {
	Value  float64
	Source string
	Err    error
}

func (e *PlaneError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("plane V=%.1f: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("plane V=%.1f (%s): %v", e.Value, e.Source, e.Err)
}

func (e *PlaneError) Unwrap() error { return e.Err }

// LoadError is returned by Load when one or more planes failed. The table
// returned alongside it is still usable; the failed planes are empty.
type LoadError struct {
	Planes []*PlaneError
}

func (e *LoadError) Error() string {
	msgs := make([]string, len(e.Planes))
	for i, p := range e.Planes {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("munsell table: %d of %d planes failed to load: %s",
		len(e.Planes), len(planeValues), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual plane errors to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	errs := make([]error, len(e.Planes))
	for i, p := range e.Planes {
		errs[i] = p
	}
	return errs
}
