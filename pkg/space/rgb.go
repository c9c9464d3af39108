package space

import "math"

// linearise converts one 0..255 sRGB channel to linear 0..1.
func linearise(v float64) float64 {
	v /= 255.0
	if v < 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// compand converts one linear channel back to the 0..1 gamma encoded range.
func compand(v float64) float64 {
	if v > 0.00304 {
		return math.Pow(v, 1.0/2.4)*1.055 - 0.055
	}
	return v * 12.92
}

// SRGBToLRGB converts sRGB (0..255) to linear RGB (0..1).
func SRGBToLRGB(c Triple) Triple {
	return Triple{linearise(c[0]), linearise(c[1]), linearise(c[2])}
}

// LRGBToSRGB converts linear RGB to sRGB (0..255).
//
// The result is clamped to the displayable range. saturated reports whether
// any channel had to be clamped.
func LRGBToSRGB(c Triple) (out Triple, saturated bool) {
	for i := range c {
		v := compand(c[i])
		n := int(v * 255.0)
		if n < 0 || n > 255 {
			saturated = true
		}
		out[i] = max(0, min(1, v)) * 255.0
	}
	return out, saturated
}

// FromColorInteger unpacks a 0xRRGGBB integer into sRGB components.
func FromColorInteger(rgb int) Triple {
	return Triple{
		float64((rgb >> 16) & 0xff),
		float64((rgb >> 8) & 0xff),
		float64(rgb & 0xff),
	}
}

// ToColorInteger packs sRGB components into an opaque 0xAARRGGBB integer.
// Components are truncated and expected to be in 0..255.
func ToColorInteger(c Triple) uint32 {
	r, g, b := uint32(c[0])&0xff, uint32(c[1])&0xff, uint32(c[2])&0xff
	return 0xff000000 | r<<16 | g<<8 | b
}
