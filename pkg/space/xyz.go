package space

// sRGB primaries with a D65 white, from Lindbloom's RGB/XYZ matrices.
var (
	lrgbToXYZ = Matrix{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToLRGB = Matrix{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// Von Kries adaptation between illuminant C and D65.
var (
	cToD65 = Matrix{
		{0.9972812, -0.0093756, -0.0154171},
		{-0.0010298, 1.0007636, 0.0002084},
		{0, 0, 0.9209267},
	}
	d65ToC = Matrix{
		{1.0027359, 0.0093941, 0.0167846},
		{0.0010319, 0.9992466, -0.0002089},
		{0, 0, 1.0858628},
	}
)

// LRGBToXYZ converts linear RGB to CIE 1931 XYZ (D65).
func LRGBToXYZ(c Triple) Triple {
	return lrgbToXYZ.Apply(c)
}

// XYZToLRGB converts CIE 1931 XYZ (D65) to linear RGB.
func XYZToLRGB(c Triple) Triple {
	return xyzToLRGB.Apply(c)
}

// XYZToIlluminantC adapts XYZ under D65 to XYZ under illuminant C.
func XYZToIlluminantC(c Triple) Triple {
	return d65ToC.Apply(c)
}

// XYZFromIlluminantC adapts XYZ under illuminant C to XYZ under D65.
func XYZFromIlluminantC(c Triple) Triple {
	return cToD65.Apply(c)
}
