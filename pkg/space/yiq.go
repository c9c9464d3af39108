package space

var (
	lrgbToYIQ = Matrix{
		{0.2990, 0.5870, 0.1140},
		{0.595716, -0.274453, -0.321263},
		{0.211456, -0.522591, 0.311135},
	}
	yiqToLRGB = Matrix{
		{1, 0.9563, 0.6210},
		{1, -0.2721, -0.6474},
		{1, -1.1070, 1.7046},
	}
)

// LRGBToYIQ converts linear RGB to YIQ.
// Y is in [0, 1], I in about ±0.5957 and Q in about ±0.5226.
func LRGBToYIQ(c Triple) Triple {
	return lrgbToYIQ.Apply(c)
}

// YIQToLRGB converts YIQ to linear RGB.
func YIQToLRGB(c Triple) Triple {
	return yiqToLRGB.Apply(c)
}
