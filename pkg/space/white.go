package space

import "fmt"

// White identifies a reference white used for CIELAB.
type White int

const (
	// D65 is the default working white.
	D65 White = iota
	// D50 is the ICC profile connection white.
	D50
)

// Chromaticities of the supported whites (x, y).
var (
	D65Chromaticity = [2]float64{0.31273, 0.32902}
	D50Chromaticity = [2]float64{0.34567, 0.35850}
	CChromaticity   = [2]float64{0.3101, 0.3162}
)

// XYZ returns the tristimulus value of w with Y = 1.
func (w White) XYZ() Triple {
	xy := D65Chromaticity
	if w == D50 {
		xy = D50Chromaticity
	}
	return Triple{xy[0] / xy[1], 1.0, (1 - xy[0] - xy[1]) / xy[1]}
}

// String returns the conventional name of the white.
func (w White) String() string {
	switch w {
	case D65:
		return "d65"
	case D50:
		return "d50"
	default:
		return fmt.Sprintf("White(%d)", int(w))
	}
}

// ParseWhite returns the white named s ("d65" or "d50").
func ParseWhite(s string) (White, error) {
	switch s {
	case "d65", "D65":
		return D65, nil
	case "d50", "D50":
		return D50, nil
	}
	return D65, fmt.Errorf("unknown white point: %q (valid: d65, d50)", s)
}
