package munsell

import "math"

// Points within edgeTolerance (in xy units) of a cell edge count as inside
// the cell, and interpolation fractions may overshoot [0, 1] by
// fractionTolerance. Both sit well below the four-decimal precision of the
// tabulated samples.
const (
	edgeTolerance     = 1e-6
	fractionTolerance = 1e-4
)

func inUnit(t float64) bool {
	return t >= -fractionTolerance && t <= 1+fractionTolerance
}

func clampUnit(t float64) float64 {
	return math.Min(math.Max(t, 0), 1)
}

func cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

// rightOf reports whether q lies strictly to the right of the directed edge
// from a to b.
func rightOf(a, b, q point) bool {
	ex, ey := b.x-a.x, b.y-a.y
	return cross(q.x-a.x, q.y-a.y, ex, ey) < -edgeTolerance*math.Hypot(ex, ey)
}

// inside reports whether q lies in the clockwise triangle abc, boundary
// included.
func inside(a, b, c, q point) bool {
	return !rightOf(a, b, q) && !rightOf(b, c, q) && !rightOf(c, a, q)
}

// hueChroma finds the hue and chroma of chromaticity q on plane p.
//
// Each grid cell spans two adjacent hue sectors and two adjacent chroma
// steps. With hue increasing counter-clockwise and chroma outwards its
// corners are laid out as
//
//	B C
//	A D
//
// where A and B are on the inner chroma step and A and D on the lower hue.
// ok is false when no cell contains q.
func (p *plane) hueChroma(q point) (hue, chroma float64, ok bool) {
	for s := range hueSectors {
		for cl := 0; cl <= MaxChroma; cl += chromaStep {
			a, okA := p.xy(s, cl)
			b, okB := p.xy(s+1, cl)
			if !okA && !okB {
				break
			}
			d, okD := p.xy(s, cl+chromaStep)
			c, okC := p.xy(s+1, cl+chromaStep)
			if !okA || !okB || !okC || !okD {
				continue
			}

			// On the innermost step A and B are both the achromatic point
			// and the cell is the single triangle ACD.
			degenerate := a == b
			if !inside(a, c, d, q) && (degenerate || !inside(a, b, c, q)) {
				continue
			}
			fh, fc, found := cellFractions(q, a, d, b, c, degenerate)
			if !found {
				continue
			}
			h10 := float64(s*sectorWidth) + sectorWidth*fh
			return h10 / 10, float64(cl) + chromaStep*fc, true
		}
	}
	return 0, 0, false
}

// cellFractions inverts the bilinear patch over the cell a, d, b, c,
//
//	q = (1-fh)((1-fc)a + fc d) + fh((1-fc)b + fc c),
//
// returning the hue fraction fh and chroma fraction fc.
func cellFractions(q, a, d, b, c point, degenerate bool) (fh, fc float64, ok bool) {
	if degenerate && math.Abs(q.x-a.x) < eps && math.Abs(q.y-a.y) < eps {
		// The apex of the innermost cell has no hue.
		return 0, 0, true
	}
	// Quadratic in fc: ea fc^2 + eb fc + ec = 0.
	ea := (a.x-d.x)*(a.y+c.y-b.y-d.y) - (a.x+c.x-b.x-d.x)*(a.y-d.y)
	eb := (q.x-a.x)*(a.y+c.y-b.y-d.y) + (a.x-d.x)*(b.y-a.y) -
		(a.x+c.x-b.x-d.x)*(q.y-a.y) - (b.x-a.x)*(a.y-d.y)
	ec := (q.x-a.x)*(b.y-a.y) - (q.y-a.y)*(b.x-a.x)

	switch {
	case math.Abs(ea) < eps:
		if math.Abs(eb) < eps {
			return 0, 0, false
		}
		fc = -ec / eb
		ok = inUnit(fc)
	default:
		disc := eb*eb - 4*ea*ec
		if disc < 0 {
			return 0, 0, false
		}
		rt := math.Sqrt(disc)
		r1, r2 := (-eb+rt)/(2*ea), (-eb-rt)/(2*ea)
		switch {
		case degenerate:
			// r1 is the spurious root at the achromatic point.
			fc, ok = r2, inUnit(r2)
		case inUnit(r1):
			fc, ok = r1, true
		case inUnit(r2):
			fc, ok = r2, true
		}
	}
	if !ok {
		return 0, 0, false
	}
	fc = clampUnit(fc)

	// Solve for fh from whichever coordinate is well conditioned.
	dx := (a.x-d.x-b.x+c.x)*fc - a.x + b.x
	dy := (a.y-d.y-b.y+c.y)*fc - a.y + b.y
	if math.Abs(dx) >= eps {
		if h := ((a.x-d.x)*fc + q.x - a.x) / dx; inUnit(h) {
			return clampUnit(h), fc, true
		}
	}
	if math.Abs(dy) >= eps {
		if h := ((a.y-d.y)*fc + q.y - a.y) / dy; inUnit(h) {
			return clampUnit(h), fc, true
		}
	}
	return 0, 0, false
}

// chromaticity returns the chromaticity of (hue, chroma) on plane p. When
// the chroma exceeds the plane's gamut at that hue the boundary sample is
// used instead and inGamut is false.
func (p *plane) chromaticity(hue, chroma float64) (xy point, inGamut bool) {
	h10 := hue * 10
	sl := int(math.Floor(h10 / sectorWidth))
	fh := (h10 - float64(sl*sectorWidth)) / sectorWidth
	su := sl + 1
	if fh == 0 {
		su = sl
	}
	sl, su = wrapSector(sl), wrapSector(su)

	cl := int(math.Floor(chroma/chromaStep)) * chromaStep
	if cl > 0 && float64(cl) == chroma {
		// An exact step is the outer edge of the cell below, which exists
		// whenever that step is tabulated.
		cl -= chromaStep
	}
	cu := cl + chromaStep
	fc := (chroma - float64(cl)) / chromaStep

	maxL, maxU := p.maxChroma[sl], p.maxChroma[su]
	if cl < maxL && cl < maxU {
		a, okA := p.xy(sl, cl)
		d, okD := p.xy(sl, cu)
		b, okB := p.xy(su, cl)
		c, okC := p.xy(su, cu)
		if okA && okB && okC && okD {
			ab := lerp(a, b, fh)
			dc := lerp(d, c, fh)
			return lerp(ab, dc, fc), true
		}
	}

	// Out of gamut on at least one side: clamp that side to its boundary.
	edge := func(s, maxC int) point {
		if cl < maxC {
			a, okA := p.xy(s, cl)
			d, okD := p.xy(s, cu)
			if okA && okD {
				return lerp(a, d, fc)
			}
		}
		e, _ := p.xy(s, maxC)
		return e
	}
	return lerp(edge(sl, maxL), edge(su, maxU), fh), false
}

func lerp(a, b point, t float64) point {
	return point{a.x + (b.x-a.x)*t, a.y + (b.y-a.y)*t}
}
