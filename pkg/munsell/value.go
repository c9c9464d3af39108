package munsell

import (
	"fmt"
	"math"
)

const (
	eps = 1e-13

	valueTolerance = 0.01
	maxIterations  = 64
)

// LuminanceFromValue returns the relative luminance Y (0..1, illuminant C)
// of Munsell value v, using the JIS Z 8721 polynomial.
func LuminanceFromValue(v float64) float64 {
	v2 := v * v
	v3 := v2 * v
	v4 := v2 * v2
	v5 := v2 * v3
	return (1.1913*v - 0.22532*v2 + 0.23351*v3 - 0.020483*v4 + 0.00081936*v5) / 100
}

func luminanceSlope(v float64) float64 {
	v2 := v * v
	return 1.1913 - 2*0.22532*v + 3*0.23351*v2 - 4*0.020483*v2*v + 5*0.00081936*v2*v2
}

// ValueFromLuminance inverts LuminanceFromValue with Newton-Raphson, starting
// from v = 0. A luminance of (almost) zero returns 0 without iterating.
func ValueFromLuminance(y float64) (float64, error) {
	if math.Abs(y) < eps {
		return 0, nil
	}
	v := 0.0
	for range maxIterations {
		f := LuminanceFromValue(v)*100 - y*100
		next := v - f/luminanceSlope(v)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		if math.Abs(next-v) < valueTolerance {
			return next, nil
		}
		v = next
	}
	return v, fmt.Errorf("%w: Y=%g", ErrNonConvergence, y)
}
