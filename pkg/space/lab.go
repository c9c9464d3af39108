package space

import "math"

const (
	labE     = 216.0 / 24389.0 // (6/29)^3
	labSlope = 841.0 / 108.0   // (1/3)(29/6)^2
	labDelta = 6.0 / 29.0
	labInvK  = 108.0 / 841.0 // 3(6/29)^2
)

func labCompress(t float64) float64 {
	if t > labE {
		return math.Cbrt(t)
	}
	return labSlope*t + 16.0/116.0
}

func labUncompress(ft float64) float64 {
	if ft > labDelta {
		return ft * ft * ft
	}
	return (ft - 16.0/116.0) * labInvK
}

// XYZToLab converts CIE 1931 XYZ to CIELAB relative to the given white.
func XYZToLab(c Triple, w White) Triple {
	n := w.XYZ()
	fy := labCompress(c[1] / n[1])
	return Triple{
		116.0*fy - 16.0,
		500.0 * (labCompress(c[0]/n[0]) - fy),
		200.0 * (fy - labCompress(c[2]/n[2])),
	}
}

// LabToXYZ converts CIELAB to CIE 1931 XYZ relative to the given white.
func LabToXYZ(c Triple, w White) Triple {
	n := w.XYZ()
	fy := (c[0] + 16.0) / 116.0
	return Triple{
		labUncompress(fy+c[1]/500.0) * n[0],
		labUncompress(fy) * n[1],
		labUncompress(fy-c[2]/200.0) * n[2],
	}
}

// LightnessFromXYZ returns L* of c relative to the given white.
func LightnessFromXYZ(c Triple, w White) float64 {
	return 116.0*labCompress(c[1]/w.XYZ()[1]) - 16.0
}

// LabHue returns the a*b* hue angle in radians, in [0, 2π).
func LabHue(a, b float64) float64 {
	if b > 0 {
		return math.Atan2(b, a)
	}
	return math.Atan2(-b, -a) + math.Pi
}

// LabToPolar converts CIELAB to (L*, C*ab, hab) with the hue in degrees.
func LabToPolar(c Triple) Triple {
	return Triple{c[0], math.Hypot(c[1], c[2]), LabHue(c[1], c[2]) * 180.0 / math.Pi}
}

// PolarToLab converts (L*, C*ab, hab in degrees) back to CIELAB.
func PolarToLab(c Triple) Triple {
	rad := c[2] * math.Pi / 180.0
	return Triple{c[0], math.Cos(rad) * c[1], math.Sin(rad) * c[1]}
}
