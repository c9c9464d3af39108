// Package munsell converts between Munsell HVC and CIE XYZ.
//
// The Munsell system is defined by measured samples rather than a formula, so
// conversions interpolate a table of sampled chromaticities under illuminant
// C. The table is loaded once and is read-only afterwards; an Engine holds no
// state of its own and is safe for concurrent use.
package munsell

import (
	"math"

	"github.com/jmylchreest/chromat/pkg/space"
)

// Hue and chroma limits of the HVC representation.
const (
	// MaxHue is the hue period; hue 100 is the same as hue 0.
	MaxHue = 100.0
	// HueNeutral is the hue of an achromatic colour (N).
	HueNeutral = -1.0
	// MonoLimitChroma is the chroma below which a colour is treated as neutral.
	MonoLimitChroma = 0.05
	// MaxValue is the value of the brightest tabulated plane.
	MaxValue = 10.0
	// MaxChroma is the largest chroma a table row may carry.
	MaxChroma = 50
)

const (
	hueSectors  = 40
	sectorWidth = 25 // in tenths of a hue step
	chromaStep  = 2
	chromaSlots = MaxChroma/chromaStep + 1
)

var planeValues = [...]float64{0.2, 0.4, 0.6, 0.8, 1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0}

var illuminantC = point{space.CChromaticity[0], space.CChromaticity[1]}

type point struct{ x, y float64 }

type plane struct {
	samples   [hueSectors][chromaSlots]point
	present   [hueSectors][chromaSlots]bool
	maxChroma [hueSectors]int
}

// xy returns the sample at a sector and an even chroma. Chroma 0 is the
// illuminant C point on every sector.
func (p *plane) xy(sector, chroma int) (point, bool) {
	if chroma == 0 {
		return illuminantC, true
	}
	i := chroma / chromaStep
	if chroma < 0 || i >= chromaSlots {
		return point{}, false
	}
	sector = wrapSector(sector)
	return p.samples[sector][i], p.present[sector][i]
}

func wrapSector(s int) int {
	s %= hueSectors
	if s < 0 {
		s += hueSectors
	}
	return s
}

// PlaneStats reports how one value plane was loaded.
type PlaneStats struct {
	Value   float64
	Source  string
	Rows    int
	Skipped int
	Samples int
	Err     error
}

// Table holds the sampled chromaticities of every value plane.
type Table struct {
	planes [len(planeValues)]plane
	stats  [len(planeValues)]PlaneStats
}

// Values returns the value of every tabulated plane in ascending order.
func Values() []float64 {
	return append([]float64(nil), planeValues[:]...)
}

// Stats returns the load statistics of every plane.
func (t *Table) Stats() []PlaneStats {
	return append([]PlaneStats(nil), t.stats[:]...)
}

// Sample returns the chromaticity tabulated on the plane with index pi at the
// given hue and chroma. hue must lie on the 2.5 step grid and chroma must be
// even.
func (t *Table) Sample(pi int, hue float64, chroma int) (x, y float64, ok bool) {
	s, onGrid := sectorOf(hue)
	if pi < 0 || pi >= len(t.planes) || !onGrid || chroma%chromaStep != 0 {
		return 0, 0, false
	}
	p, ok := t.planes[pi].xy(s, chroma)
	return p.x, p.y, ok
}

// MaxChroma returns the largest chroma tabulated on plane pi at the given
// hue, or 0 when the hue is off the grid or the plane has no samples there.
func (t *Table) MaxChroma(pi int, hue float64) int {
	s, onGrid := sectorOf(hue)
	if pi < 0 || pi >= len(t.planes) || !onGrid {
		return 0
	}
	return t.planes[pi].maxChroma[s]
}

// sectorOf maps a hue on the 2.5 grid to its sector index.
func sectorOf(hue float64) (int, bool) {
	h10 := hue * 10
	n := math.Round(h10 / sectorWidth)
	if math.Abs(h10-n*sectorWidth) > 1e-6 {
		return 0, false
	}
	return wrapSector(int(n)), true
}
