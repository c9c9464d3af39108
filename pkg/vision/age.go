package vision

import (
	"math"

	"github.com/jmylchreest/chromat/pkg/space"
)

// Age-related change of colour appearance between a 20 and a 70 year old
// observer, excluding lightness. Okajima, IEICE TR 109(249), 43-48 (2009).

// hueShift returns the hue difference in degrees for a hue angle in degrees.
func hueShift(deg float64) float64 {
	return 4.5*math.Cos(2.0*math.Pi*(deg-28.8)/50.9) + 4.4
}

// chromaRatio returns the chroma attenuation factor for a chroma C*ab.
func chromaRatio(c float64) float64 {
	return 0.83*math.Exp(-c/13.3) - (1.0/8.0)*math.Exp(-(c-50)*(c-50)/(3000*3000)) + 1
}

func shiftAB(c space.Triple, sign float64) space.Triple {
	deg := space.LabHue(c[1], c[2]) * 180.0 / math.Pi
	chroma := math.Hypot(c[1], c[2])
	h := (deg + sign*hueShift(deg)) * math.Pi / 180.0
	if sign > 0 {
		chroma *= chromaRatio(chroma)
	} else {
		chroma /= chromaRatio(chroma)
	}
	return space.Triple{c[0], math.Cos(h) * chroma, math.Sin(h) * chroma}
}

// LabToElderly converts CIELAB seen by a young observer to the a*b* an
// elderly observer would perceive. L* is unchanged.
func LabToElderly(c space.Triple) space.Triple {
	return shiftAB(c, 1)
}

// LabToYoung is the approximate inverse of LabToElderly.
func LabToYoung(c space.Triple) space.Triple {
	return shiftAB(c, -1)
}
