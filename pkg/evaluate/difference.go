// Package evaluate provides colour difference and conspicuity metrics over
// CIELAB triples.
package evaluate

import (
	"fmt"
	"math"

	"github.com/jmylchreest/chromat/pkg/space"
)

// Method selects the colour difference formula used by Difference.
type Method int

const (
	DeltaE2000 Method = iota
	DeltaE76
)

// String returns the option name of the method.
func (m Method) String() string {
	switch m {
	case DeltaE2000:
		return "ciede2000"
	case DeltaE76:
		return "cie76"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the method with the given option name.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "ciede2000", "de2000":
		return DeltaE2000, nil
	case "cie76", "de76":
		return DeltaE76, nil
	}
	return DeltaE2000, fmt.Errorf("unknown difference method: %q (valid: ciede2000, cie76)", s)
}

// NBS units for describing a colour difference.
const (
	NBSTrace       = 0.0
	NBSSlight      = 0.5
	NBSNoticeable  = 1.5
	NBSAppreciable = 3.0
	NBSMuch        = 6.0
	NBSVeryMuch    = 12.0
)

// DEToNBS converts a CIE76 or CIEDE2000 difference to NBS units.
const DEToNBS = 0.92

// Difference returns the difference between two Lab colours using m.
func Difference(m Method, a, b space.Triple) float64 {
	if m == DeltaE76 {
		return CIE76(a, b)
	}
	return CIEDE2000(a, b)
}

// CIE76 returns the Euclidean distance between two Lab colours.
func CIE76(a, b space.Triple) float64 {
	return Distance(a, b)
}

// Distance returns the Euclidean distance between two triples.
func Distance(a, b space.Triple) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// SquaredDistance returns the squared Euclidean distance between two triples.
func SquaredDistance(a, b space.Triple) float64 {
	d0, d1, d2 := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return d0*d0 + d1*d1 + d2*d2
}

func sq(v float64) float64 { return v * v }

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

// atanDeg returns atan2(y, x) in degrees within [0, 360).
func atanDeg(y, x float64) float64 {
	v := math.Atan2(y, x) * 180 / math.Pi
	if v < 0 {
		v += 360
	}
	return v
}

// pow7Ratio is sqrt(c^7 / (c^7 + 25^7)).
func pow7Ratio(c float64) float64 {
	c7 := math.Pow(c, 7)
	return math.Sqrt(c7 / (c7 + math.Pow(25, 7)))
}

// CIEDE2000 returns the CIEDE2000 colour difference with
// kL = kC = kH = 1. Sharma, Wu and Dalal, Color Res. Appl. 30(1) (2005).
func CIEDE2000(c1, c2 space.Triple) float64 {
	l1, a1, b1 := c1[0], c1[1], c1[2]
	l2, a2, b2 := c2[0], c2[1], c2[2]

	cb := (math.Hypot(a1, b1) + math.Hypot(a2, b2)) / 2
	g := 0.5 * (1 - pow7Ratio(cb))
	ap1, ap2 := (1+g)*a1, (1+g)*a2
	cp1, cp2 := math.Hypot(ap1, b1), math.Hypot(ap2, b2)

	var hp1, hp2 float64
	if b1 != 0 || ap1 != 0 {
		hp1 = atanDeg(b1, ap1)
	}
	if b2 != 0 || ap2 != 0 {
		hp2 = atanDeg(b2, ap2)
	}

	dLp := l2 - l1
	dCp := cp2 - cp1
	var dhp float64
	switch {
	case cp1*cp2 == 0:
		dhp = 0
	case math.Abs(hp2-hp1) <= 180:
		dhp = hp2 - hp1
	case hp2-hp1 > 180:
		dhp = hp2 - hp1 - 360
	default:
		dhp = hp2 - hp1 + 360
	}
	dHp := 2 * math.Sqrt(cp1*cp2) * sinDeg(dhp/2)

	lbp := (l1 + l2) / 2
	cbp := (cp1 + cp2) / 2
	var hbp float64
	switch {
	case cp1*cp2 == 0:
		hbp = hp1 + hp2
	case math.Abs(hp2-hp1) <= 180:
		hbp = (hp1 + hp2) / 2
	case hp1+hp2 < 360:
		hbp = (hp1 + hp2 + 360) / 2
	default:
		hbp = (hp1 + hp2 - 360) / 2
	}

	t := 1 - 0.17*cosDeg(hbp-30) + 0.24*cosDeg(2*hbp) + 0.32*cosDeg(3*hbp+6) - 0.2*cosDeg(4*hbp-63)
	dth := 30 * math.Exp(-sq((hbp-275)/25))
	rc := 2 * pow7Ratio(cbp)
	sl := 1 + 0.015*sq(lbp-50)/math.Sqrt(20+sq(lbp-50))
	sc := 1 + 0.045*cbp
	sh := 1 + 0.015*cbp*t
	rt := -sinDeg(2*dth) * rc

	return math.Sqrt(sq(dLp/sl) + sq(dCp/sc) + sq(dHp/sh) + rt*(dCp/sc)*(dHp/sh))
}

// Conspicuity returns how far the hue of a Lab colour lies from the least
// conspicuous hue angle, in degrees (0..180).
func Conspicuity(lab space.Triple) float64 {
	const a = 35.0
	h := space.LabHue(lab[1], lab[2]) * 180 / math.Pi
	if h < a {
		return math.Abs(180 - (360 + h - a))
	}
	return math.Abs(180 - (h - a))
}
