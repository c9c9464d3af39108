// Package pccs converts between Munsell HVC and the Practical Color
// Co-ordinate System (hue h 0..24, lightness l, saturation s).
//
// The relations follow Kobayashi and Yosiki, "Mathematical Relation among
// PCCS Tones, PCCS Color Attributes and Munsell Color Attributes", Journal
// of the Color Science Association of Japan 25(4), 249-261 (2001).
package pccs

import (
	"errors"
	"fmt"
	"math"

	"github.com/jmylchreest/chromat/pkg/munsell"
	"github.com/jmylchreest/chromat/pkg/space"
)

const (
	// MaxHue is the hue period; hue 24 is the same as hue 0.
	MaxHue = 24.0
	// MonoLimitSaturation is the saturation below which a colour is neutral.
	MonoLimitSaturation = 0.01
)

// ErrNonConvergence is returned when the accurate saturation solve fails.
var ErrNonConvergence = errors.New("pccs: saturation solve did not converge")

// Method selects between the concise and the accurate relations.
type Method int

const (
	Accurate Method = iota
	Concise
)

// String returns the option name of the method.
func (m Method) String() string {
	switch m {
	case Accurate:
		return "accurate"
	case Concise:
		return "concise"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the method with the given option name.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "accurate":
		return Accurate, nil
	case "concise":
		return Concise, nil
	}
	return Accurate, fmt.Errorf("unknown pccs method: %q (valid: accurate, concise)", s)
}

// munsellHue is the Munsell hue of every PCCS hue number; index 0 is the
// wrap-around from 24.
var munsellHue = [...]float64{
	96,
	0, 4, 7, 10, 14, 18, 22, 25, 28, 33, 38, 43,
	49, 55, 60, 65, 70, 73, 76, 79, 83, 87, 91, 96, 100,
}

// coefficients of the saturation/chroma cubic at even PCCS hues 0..24.
var coefficients = [...][3]float64{
	{0.853642, 0.084379, -0.002798},
	{1.042805, 0.046437, 0.001607},
	{1.079160, 0.025470, 0.003052},
	{1.039472, 0.054749, -0.000511},
	{0.925185, 0.050245, 0.000953},
	{0.968557, 0.012537, 0.003375},
	{1.070433, -0.047359, 0.007385},
	{1.087030, -0.051075, 0.006526},
	{1.089652, -0.050206, 0.006056},
	{0.880861, 0.060300, -0.001280},
	{0.897326, 0.053912, -0.000860},
	{0.887834, 0.055086, -0.000847},
	{0.853642, 0.084379, -0.002798},
}

const (
	solveTolerance = 0.001
	maxIterations  = 64
)

// FromMunsell converts Munsell HVC to PCCS hls. A negative Munsell hue is
// treated as neutral.
func FromMunsell(hvc space.Triple, m Method) (space.Triple, error) {
	mh, v, c := hvc[0], hvc[1], hvc[2]
	if mh < 0 {
		return space.Triple{0, v, 0}, nil
	}
	if mh >= munsell.MaxHue {
		mh = math.Mod(mh, munsell.MaxHue)
	}

	var h, s float64
	switch m {
	case Concise:
		h = conciseHue(mh)
		if c >= munsell.MonoLimitChroma && v > 0 {
			s = conciseSaturation(v, c, h)
		}
	default:
		h = accurateHue(mh)
		if c >= munsell.MonoLimitChroma && v > 0 {
			var err error
			if s, err = accurateSaturation(v, c, h); err != nil {
				return space.Triple{}, err
			}
		}
	}
	if h >= MaxHue {
		h -= MaxHue
	}
	return space.Triple{h, v, s}, nil
}

// ToMunsell converts PCCS hls to Munsell HVC.
func ToMunsell(hls space.Triple, m Method) space.Triple {
	h, l, s := wrapHue(hls[0]), hls[1], hls[2]

	var mh, c float64
	switch m {
	case Concise:
		mh = conciseMunsellHue(h)
		if s >= MonoLimitSaturation {
			c = conciseChroma(h, l, s)
		}
	default:
		mh = accurateMunsellHue(h)
		if s >= MonoLimitSaturation {
			c = accurateChroma(h, l, s)
		}
	}
	if mh < 0 {
		mh += munsell.MaxHue
	}
	if mh >= munsell.MaxHue {
		mh -= munsell.MaxHue
	}
	return space.Triple{mh, l, c}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, MaxHue)
	if h < 0 {
		h += MaxHue
	}
	return h
}

// accurateHue interpolates the PCCS hue number from the Munsell hue table.
func accurateHue(mh float64) float64 {
	h1, h2 := 1, len(munsellHue)-1
	for i := 1; i < len(munsellHue); i++ {
		if munsellHue[i] <= mh {
			h1 = i
		}
		if mh < munsellHue[i] {
			h2 = i
			break
		}
	}
	return float64(h1) + float64(h2-h1)*(mh-munsellHue[h1])/(munsellHue[h2]-munsellHue[h1])
}

func accurateMunsellHue(h float64) float64 {
	h1 := int(math.Floor(h))
	h2 := h1 + 1
	m1, m2 := munsellHue[h1], munsellHue[h2]
	if m1 > m2 {
		m2 = 100
	}
	return m1 + (m2-m1)*(h-float64(h1))/float64(h2-h1)
}

// cubic returns the coefficients (a1, a2, a3) interpolated at hue h.
func cubic(h float64) [3]float64 {
	if h > MaxHue {
		h -= MaxHue
	}
	hf := int(math.Floor(h))
	if hf%2 != 0 {
		hf--
	}
	hc := hf + 2
	if hc > int(MaxHue) {
		hc -= int(MaxHue)
	}

	af, ac := coefficients[hf/2], coefficients[hc/2]
	var a [3]float64
	for i := range a {
		a[i] = (h-float64(hf))/float64(hc-hf)*(ac[i]-af[i]) + af[i]
	}
	return a
}

func gamma(h float64) float64 {
	return 0.81 - 0.24*math.Sin((h-2.6)/12*math.Pi)
}

func accurateSaturation(v, c, h float64) (float64, error) {
	a := cubic(h)
	a0 := -c / (1 - math.Exp(-gamma(h)*v))

	x := conciseSaturation(v, c, h)
	for range maxIterations {
		y := a[2]*x*x*x + a[1]*x*x + a[0]*x + a0
		yp := 3*a[2]*x*x + 2*a[1]*x + a[0]
		next := x - y/yp
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		if math.Abs(next-x) < solveTolerance {
			return next, nil
		}
		x = next
	}
	return 0, fmt.Errorf("%w: V=%g C=%g", ErrNonConvergence, v, c)
}

func accurateChroma(h, l, s float64) float64 {
	a := cubic(h)
	return (a[2]*s*s*s + a[1]*s*s + a[0]*s) * (1 - math.Exp(-gamma(h)*l))
}

func conciseHue(mh float64) float64 {
	y := mh * math.Pi / 50
	return 24*y/(2*math.Pi) + 1.24 +
		0.02*math.Cos(y) - 0.10*math.Cos(2*y) - 0.11*math.Cos(3*y) +
		0.68*math.Sin(y) - 0.30*math.Sin(2*y) + 0.013*math.Sin(3*y)
}

func conciseSaturation(v, c, h float64) float64 {
	ct := 12 + 1.7*math.Sin((h+2.2)*math.Pi/12)
	const e2, e1 = 0.0040, 0.077
	e0 := -c / (ct * (1 - math.Exp(-gamma(h)*v)))
	return (-e1 + math.Sqrt(e1*e1-4*e2*e0)) / (2 * e2)
}

func conciseMunsellHue(h float64) float64 {
	x := (h - 1) * math.Pi / 12
	return 100*x/(2*math.Pi) - 1 +
		0.12*math.Cos(x) + 0.34*math.Cos(2*x) + 0.40*math.Cos(3*x) -
		2.7*math.Sin(x) + 1.5*math.Sin(2*x) - 0.4*math.Sin(3*x)
}

func conciseChroma(h, l, s float64) float64 {
	ct := 12 + 1.7*math.Sin((h+2.2)*math.Pi/12)
	return ct * (0.077*s + 0.0040*s*s) * (1 - math.Exp(-gamma(h)*l))
}
