package space

import "math"

// XYZToYxy converts XYZ to (Y, x, y).
//
// When X+Y+Z is zero the chromaticity is undefined; the D65 white point
// chromaticity is returned in that case.
func XYZToYxy(c Triple) Triple {
	sum := c[0] + c[1] + c[2]
	x, y := c[0]/sum, c[1]/sum
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return Triple{c[1], D65Chromaticity[0], D65Chromaticity[1]}
	}
	return Triple{c[1], x, y}
}

// YxyToXYZ converts (Y, x, y) to XYZ.
//
// A zero y chromaticity yields black. saturated reports whether any component
// exceeds the D65 white tristimulus value.
func YxyToXYZ(c Triple) (out Triple, saturated bool) {
	if c[2] == 0 {
		return Triple{}, false
	}
	out = Triple{
		c[1] * c[0] / c[2],
		c[0],
		(1 - c[1] - c[2]) * c[0] / c[2],
	}
	w := D65.XYZ()
	saturated = out[0] > w[0] || out[1] > w[1] || out[2] > w[2]
	return out, saturated
}
