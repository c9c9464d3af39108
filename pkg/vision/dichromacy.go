// Package vision simulates colour vision deficiencies and age-related changes
// in colour appearance.
package vision

import (
	"fmt"

	"github.com/jmylchreest/chromat/pkg/space"
)

// Vision names a colour vision characteristic.
type Vision int

const (
	Trichromacy Vision = iota
	Protanopia
	Deuteranopia
	Monochromacy
)

// String returns the lower-case name of the characteristic.
func (v Vision) String() string {
	switch v {
	case Trichromacy:
		return "trichromacy"
	case Protanopia:
		return "protanopia"
	case Deuteranopia:
		return "deuteranopia"
	case Monochromacy:
		return "monochromacy"
	default:
		return fmt.Sprintf("Vision(%d)", int(v))
	}
}

// Method selects the dichromat simulation formula.
type Method int

const (
	// Brettel1997 projects the LMS response onto the dichromat plane.
	// Brettel, Viénot and Mollon, JOSA A 14, 2647-2655 (1997).
	Brettel1997 Method = iota
	// Okajima2007 additionally rescales the projected response to keep the
	// remaining cone signal constant. Okajima and Kanbe, IEICE TR 107(117) (2007).
	Okajima2007
)

// String returns the option name of the method.
func (m Method) String() string {
	switch m {
	case Brettel1997:
		return "brettel1997"
	case Okajima2007:
		return "okajima2007"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the method with the given option name.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "brettel1997", "brettel":
		return Brettel1997, nil
	case "okajima2007", "okajima":
		return Okajima2007, nil
	}
	return Brettel1997, fmt.Errorf("unknown dichromacy method: %q (valid: brettel1997, okajima2007)", s)
}

// Okajima weights for the L and M terms.
const (
	okajimaAlpha = 1.0
	okajimaBeta  = 1.0
)

// Projection onto the dichromat planes in LMS space.
var (
	protanProjection = space.Matrix{
		{0, 2.02344, -2.52581},
		{0, 1, 0},
		{0, 0, 1},
	}
	deuteranProjection = space.Matrix{
		{1, 0, 0},
		{0.494207, 0, 1.24827},
		{0, 0, 1},
	}
)

// lmsBase is the LMS response of equal-energy white under m.
func lmsBase(m space.LMSMatrix) space.Triple {
	return space.XYZToLMS(space.Triple{1, 1, 1}, m)
}

// okajima rescales the projected response d so that the unchanged cone
// signal (index keep) of src is preserved, normalised by base.
func okajima(src, d, base space.Triple, keep int) space.Triple {
	dp := space.Triple{d[0] / base[0], d[1] / base[1], d[2] / base[2]}
	w := okajimaBeta
	if keep == 0 {
		w = okajimaAlpha
	}
	k := w * (src[keep] / base[keep]) / (okajimaAlpha*dp[0] + okajimaBeta*dp[1])
	return space.Triple{k * dp[0] * base[0], k * dp[1] * base[1], k * dp[2] * base[2]}
}

// LMSToProtanopia simulates protanopia on an LMS response. The LMS matrix is
// only used by Okajima2007 to normalise the cone signals.
func LMSToProtanopia(c space.Triple, method Method, m space.LMSMatrix) space.Triple {
	d := protanProjection.Apply(c)
	if method == Okajima2007 {
		return okajima(c, d, lmsBase(m), 1)
	}
	return d
}

// LMSToDeuteranopia simulates deuteranopia on an LMS response.
func LMSToDeuteranopia(c space.Triple, method Method, m space.LMSMatrix) space.Triple {
	d := deuteranProjection.Apply(c)
	if method == Okajima2007 {
		return okajima(c, d, lmsBase(m), 0)
	}
	return d
}

// Direct linear RGB simulation with the display-calibrated LMS transform of
// Viénot, Brettel and Mollon (1999).
var (
	rgbToLMS = space.Matrix{
		{17.8824, 43.5161, 4.11935},
		{3.45565, 27.1554, 3.86714},
		{0.0299566, 0.184309, 1.46709},
	}
	lmsToRGB = space.Matrix{
		{0.080944, -0.130504, 0.116721},
		{-0.0102485, 0.0540194, -0.113615},
		{-0.000365294, -0.00412163, 0.693513},
	}
	rgbLMSBase = space.Triple{
		17.8824 + 43.5161 + 4.11935,
		3.45565 + 27.1554 + 3.86714,
		0.0299566 + 0.184309 + 1.46709,
	}
)

func simulateLRGB(c space.Triple, scale, offset float64, proj *space.Matrix, keep int, method Method) space.Triple {
	in := space.Triple{scale*c[0] + offset, scale*c[1] + offset, scale*c[2] + offset}
	lms := rgbToLMS.Apply(in)
	d := proj.Apply(lms)
	if method == Okajima2007 {
		d = okajima(lms, d, rgbLMSBase, keep)
	}
	return lmsToRGB.Apply(d)
}

// LRGBToProtanopia simulates protanopia directly on linear RGB.
func LRGBToProtanopia(c space.Triple, method Method) space.Triple {
	return simulateLRGB(c, 0.992052, 0.003974, &protanProjection, 1, method)
}

// LRGBToDeuteranopia simulates deuteranopia directly on linear RGB.
func LRGBToDeuteranopia(c space.Triple, method Method) space.Triple {
	return simulateLRGB(c, 0.957237, 0.0213814, &deuteranProjection, 0, method)
}
