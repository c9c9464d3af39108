// Package space provides the elementary colour space transforms used by the
// conversion pipeline.
//
// Every transform is a pure function over a Triple. A Triple carries no colour
// space tag: the caller decides what the three components mean. Component
// conventions used throughout the module:
//   - sRGB: 0..255 per channel
//   - linear RGB: 0..1 per channel
//   - XYZ: Y of the reference white is 1.0
//   - Yxy: luminance first, then chromaticity
//   - CIELAB: L* 0..100
package space

import "fmt"

// Triple is an ordered triple of colour components.
type Triple [3]float64

// String returns the components formatted to four decimal places.
func (t Triple) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", t[0], t[1], t[2])
}

// Matrix is a row-major 3x3 matrix.
type Matrix [3][3]float64

// Apply multiplies the matrix by t.
func (m *Matrix) Apply(t Triple) Triple {
	return Triple{
		m[0][0]*t[0] + m[0][1]*t[1] + m[0][2]*t[2],
		m[1][0]*t[0] + m[1][1]*t[1] + m[1][2]*t[2],
		m[2][0]*t[0] + m[2][1]*t[1] + m[2][2]*t[2],
	}
}

// Clamp limits each component of t to [lo, hi].
func Clamp(t Triple, lo, hi float64) Triple {
	for i := range t {
		t[i] = max(lo, min(hi, t[i]))
	}
	return t
}
