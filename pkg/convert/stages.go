package convert

import (
	"github.com/jmylchreest/chromat/pkg/munsell"
	"github.com/jmylchreest/chromat/pkg/pccs"
	"github.com/jmylchreest/chromat/pkg/space"
	"github.com/jmylchreest/chromat/pkg/vision"
)

func pure(name string, f func(space.Triple) space.Triple) Stage {
	return Stage{Name: name, Fn: func(src, dst *space.Triple) (bool, error) {
		*dst = f(*src)
		return false, nil
	}}
}

func clamping(name string, f func(space.Triple) (space.Triple, bool)) Stage {
	return Stage{Name: name, Fn: func(src, dst *space.Triple) (bool, error) {
		var sat bool
		*dst, sat = f(*src)
		return sat, nil
	}}
}

// SRGBToLRGB converts 0..255 sRGB to linear RGB.
func SRGBToLRGB() Stage { return pure("rgb>lrgb", space.SRGBToLRGB) }

// LRGBToSRGB converts linear RGB to 0..255 sRGB, clamping out-of-range
// channels.
func LRGBToSRGB() Stage { return clamping("lrgb>rgb", space.LRGBToSRGB) }

func LRGBToXYZ() Stage { return pure("lrgb>xyz", space.LRGBToXYZ) }

func XYZToLRGB() Stage { return pure("xyz>lrgb", space.XYZToLRGB) }

func XYZToYxy() Stage { return pure("xyz>yxy", space.XYZToYxy) }

// YxyToXYZ reports saturation when the result exceeds the D65 white.
func YxyToXYZ() Stage { return clamping("yxy>xyz", space.YxyToXYZ) }

func LRGBToYIQ() Stage { return pure("lrgb>yiq", space.LRGBToYIQ) }

func YIQToLRGB() Stage { return pure("yiq>lrgb", space.YIQToLRGB) }

// XYZToLab converts XYZ to CIELAB relative to white.
func XYZToLab(w space.White) Stage {
	return pure("xyz>lab", func(c space.Triple) space.Triple { return space.XYZToLab(c, w) })
}

// LabToXYZ converts CIELAB relative to white to XYZ.
func LabToXYZ(w space.White) Stage {
	return pure("lab>xyz", func(c space.Triple) space.Triple { return space.LabToXYZ(c, w) })
}

// XYZToLightness keeps only the CIELAB lightness, giving (L*, 0, 0).
func XYZToLightness(w space.White) Stage {
	return pure("xyz>lab-l", func(c space.Triple) space.Triple {
		return space.Triple{space.LightnessFromXYZ(c, w), 0, 0}
	})
}

func XYZToLMS(m space.LMSMatrix) Stage {
	return pure("xyz>lms", func(c space.Triple) space.Triple { return space.XYZToLMS(c, m) })
}

func LMSToXYZ(m space.LMSMatrix) Stage {
	return pure("lms>xyz", func(c space.Triple) space.Triple { return space.LMSToXYZ(c, m) })
}

// LMSToProtanopia simulates protanopia on LMS cone responses.
func LMSToProtanopia(method vision.Method, m space.LMSMatrix) Stage {
	return pure("lms>lms-p", func(c space.Triple) space.Triple { return vision.LMSToProtanopia(c, method, m) })
}

// LMSToDeuteranopia simulates deuteranopia on LMS cone responses.
func LMSToDeuteranopia(method vision.Method, m space.LMSMatrix) Stage {
	return pure("lms>lms-d", func(c space.Triple) space.Triple { return vision.LMSToDeuteranopia(c, method, m) })
}

// LRGBToProtanopia simulates protanopia directly on linear RGB.
func LRGBToProtanopia(method vision.Method) Stage {
	return pure("lrgb>lrgb-p", func(c space.Triple) space.Triple { return vision.LRGBToProtanopia(c, method) })
}

// LRGBToDeuteranopia simulates deuteranopia directly on linear RGB.
func LRGBToDeuteranopia(method vision.Method) Stage {
	return pure("lrgb>lrgb-d", func(c space.Triple) space.Triple { return vision.LRGBToDeuteranopia(c, method) })
}

func LabToElderly() Stage { return pure("lab>lab-elderly", vision.LabToElderly) }

func LabToYoung() Stage { return pure("lab>lab-young", vision.LabToYoung) }

// XYZToMunsell fails with munsell.ErrInterpolationMiss when the colour lies
// outside the table.
func XYZToMunsell(e *munsell.Engine) Stage {
	return Stage{Name: "xyz>munsell", Fn: func(src, dst *space.Triple) (bool, error) {
		hvc, sat, err := e.FromXYZ(*src)
		if err != nil {
			return false, err
		}
		*dst = hvc
		return sat, nil
	}}
}

func MunsellToXYZ(e *munsell.Engine) Stage {
	return clamping("munsell>xyz", e.ToXYZ)
}

func MunsellToPCCS(method pccs.Method) Stage {
	return Stage{Name: "munsell>pccs", Fn: func(src, dst *space.Triple) (bool, error) {
		hls, err := pccs.FromMunsell(*src, method)
		if err != nil {
			return false, err
		}
		*dst = hls
		return false, nil
	}}
}

func PCCSToMunsell(method pccs.Method) Stage {
	return pure("pccs>munsell", func(c space.Triple) space.Triple { return pccs.ToMunsell(c, method) })
}

func PCCSToTone() Stage { return pure("pccs>tone", pccs.ToToneCoordinate) }

func ToneToPCCS() Stage { return pure("tone>pccs", pccs.ToNormalCoordinate) }
