package munsell

import (
	"fmt"
	"math"

	"github.com/jmylchreest/chromat/pkg/space"
)

// planeSnap is how close a computed value must be to the brightest plane to
// resolve on that plane alone.
const planeSnap = 1e-3

// Engine converts between Munsell HVC and XYZ over a Table. HVC triples hold
// (hue 0..100, value 0..10, chroma); a negative hue marks a neutral colour.
type Engine struct {
	table *Table
}

// NewEngine returns an engine over t.
func NewEngine(t *Table) *Engine {
	return &Engine{table: t}
}

// Table returns the table the engine reads.
func (e *Engine) Table() *Table {
	return e.table
}

// FromXYZ converts XYZ (D65, Y in 0..1) to HVC. saturated reports that the
// colour fell outside one of the two bracketing planes and was resolved on
// the other. ErrInterpolationMiss is returned when the table does not cover
// the chromaticity at all.
func (e *Engine) FromXYZ(xyz space.Triple) (hvc space.Triple, saturated bool, err error) {
	return e.FromYxy(space.XYZToYxy(space.XYZToIlluminantC(xyz)))
}

// FromYxy converts (Y, x, y) under illuminant C to HVC.
func (e *Engine) FromYxy(yxy space.Triple) (hvc space.Triple, saturated bool, err error) {
	q := point{yxy[1], yxy[2]}
	v, err := ValueFromLuminance(yxy[0])
	if err != nil {
		return space.Triple{}, false, err
	}

	if v < eps || isAchromatic(q) {
		return space.Triple{0, v, 0}, false, nil
	}

	top := len(planeValues) - 1
	if math.Abs(v-planeValues[top]) < planeSnap {
		h, c, ok := e.table.planes[top].hueChroma(q)
		if !ok {
			return space.Triple{}, false, fmt.Errorf("%w: x=%.4f y=%.4f at V=%.2f", ErrInterpolationMiss, q.x, q.y, v)
		}
		return result(h, v, c), false, nil
	}
	if v > planeValues[top] {
		return space.Triple{0, v, 0}, false, nil
	}

	lo := planeBelow(v)
	hi := lo + 1
	hu, cu, okU := e.table.planes[hi].hueChroma(q)

	var hl, cl float64
	switch {
	case lo < 0:
		// Below the darkest plane: the virtual plane at V=0 takes the upper
		// hue with zero chroma.
		if !okU {
			return space.Triple{}, false, fmt.Errorf("%w: x=%.4f y=%.4f at V=%.2f", ErrInterpolationMiss, q.x, q.y, v)
		}
		hl, cl = hu, 0
	default:
		var okL bool
		hl, cl, okL = e.table.planes[lo].hueChroma(q)
		switch {
		case !okL && !okU:
			return space.Triple{}, false, fmt.Errorf("%w: x=%.4f y=%.4f at V=%.2f", ErrInterpolationMiss, q.x, q.y, v)
		case !okL:
			hl, cl, saturated = hu, cu, true
		case !okU:
			hu, cu, saturated = hl, cl, true
		}
	}

	r := (v - valueOf(lo)) / (planeValues[hi] - valueOf(lo))
	return result(lerpHue(hl, hu, r), v, cl+(cu-cl)*r), saturated, nil
}

// ToXYZ converts HVC to XYZ (D65). saturated reports a contradictory or
// out-of-range input (V=0 with chroma, V above the brightest plane, chroma
// beyond the tabulated gamut, or chroma below the darkest plane) that was
// clamped to the nearest representable colour.
func (e *Engine) ToXYZ(hvc space.Triple) (xyz space.Triple, saturated bool) {
	yxy, saturated := e.ToYxy(hvc)
	xyz, _ = space.YxyToXYZ(yxy)
	return space.XYZFromIlluminantC(xyz), saturated
}

// ToYxy converts HVC to (Y, x, y) under illuminant C.
func (e *Engine) ToYxy(hvc space.Triple) (yxy space.Triple, saturated bool) {
	h, v, c := hvc[0], hvc[1], hvc[2]
	if h >= MaxHue {
		h = math.Mod(h, MaxHue)
	}
	y := LuminanceFromValue(v)

	if math.Abs(v) < eps || h < 0 || c < MonoLimitChroma {
		return space.Triple{y, illuminantC.x, illuminantC.y}, math.Abs(v) < eps && c > 0
	}

	top := len(planeValues) - 1
	if v >= planeValues[top] {
		xy, ok := e.table.planes[top].chromaticity(h, c)
		return space.Triple{y, xy.x, xy.y}, v > planeValues[top] || !ok
	}

	lo := planeBelow(v)
	if lo >= 0 && v == planeValues[lo] {
		xy, ok := e.table.planes[lo].chromaticity(h, c)
		return space.Triple{y, xy.x, xy.y}, !ok
	}
	hi := lo + 1

	xyL := illuminantC
	if lo >= 0 {
		var ok bool
		xyL, ok = e.table.planes[lo].chromaticity(h, c)
		saturated = !ok
	} else {
		saturated = true
	}
	xyU, ok := e.table.planes[hi].chromaticity(h, c)
	saturated = saturated || !ok

	r := (v - valueOf(lo)) / (planeValues[hi] - valueOf(lo))
	xy := lerp(xyL, xyU, r)
	return space.Triple{y, xy.x, xy.y}, saturated
}

// planeBelow returns the index of the brightest plane not above v, or -1.
func planeBelow(v float64) int {
	i := -1
	for i+1 < len(planeValues) && planeValues[i+1] <= v {
		i++
	}
	return i
}

func valueOf(i int) float64 {
	if i < 0 {
		return 0
	}
	return planeValues[i]
}

func isAchromatic(q point) bool {
	return math.Abs(q.x-illuminantC.x) < eps && math.Abs(q.y-illuminantC.y) < eps
}

// lerpHue interpolates hue along the shorter arc.
func lerpHue(from, to, t float64) float64 {
	switch {
	case to-from > MaxHue/2:
		from += MaxHue
	case from-to > MaxHue/2:
		to += MaxHue
	}
	return wrapHue(from + (to-from)*t)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, MaxHue)
	if h < 0 {
		h += MaxHue
	}
	return h
}

func result(h, v, c float64) space.Triple {
	if c < MonoLimitChroma {
		c = 0
	}
	return space.Triple{wrapHue(h), v, c}
}
