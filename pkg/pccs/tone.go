package pccs

import (
	"fmt"
	"math"

	"github.com/jmylchreest/chromat/pkg/space"
)

// Tone is a PCCS tone category.
type Tone int

const (
	Pale Tone = iota
	PalePlus
	LightGrayish
	Grayish
	DarkGrayish
	Light
	LightPlus
	Soft
	Dull
	Dark
	Bright
	Strong
	Deep
	Vivid
	NoTone
)

var toneNames = [...]string{"p", "p+", "ltg", "g", "dkg", "lt", "lt+", "sf", "d", "dk", "b", "s", "dp", "v", "none"}

var hueNames = [...]string{"", "pR", "R", "yR", "rO", "O", "yO", "rY", "Y", "gY", "YG", "yG", "G", "bG", "GB", "GB", "gB", "B", "B", "pB", "V", "bP", "P", "rP", "RP"}

// String returns the PCCS abbreviation of the tone, e.g. "lt+".
func (t Tone) String() string {
	if t < 0 || int(t) >= len(toneNames) {
		return fmt.Sprintf("Tone(%d)", int(t))
	}
	return toneNames[t]
}

// ParseTone returns the tone with the given abbreviation.
func ParseTone(s string) (Tone, error) {
	for i, n := range toneNames {
		if n == s {
			return Tone(i), nil
		}
	}
	return NoTone, fmt.Errorf("unknown pccs tone: %q", s)
}

// ToneOf classifies a PCCS colour into a tone from its saturation and
// relative lightness.
func ToneOf(hls space.Triple) Tone {
	t, s := RelativeLightness(hls), hls[2]
	tu, td := s*-3/10+8.5, s*3/10+2.5

	switch {
	case s < 1:
		return NoTone
	case s < 4:
		switch {
		case t < td:
			return DarkGrayish
		case t < 5.5:
			return Grayish
		case t < tu:
			return LightGrayish
		case s < 2.5:
			return Pale
		}
		return PalePlus
	case s < 7:
		switch {
		case t < td:
			return Dark
		case t < 5.5:
			return Dull
		case t < tu:
			return Soft
		case s < 5.5:
			return Light
		}
		return LightPlus
	case s < 8.5:
		switch {
		case t < td:
			return Deep
		case t < tu:
			return Strong
		}
		return Bright
	}
	return Vivid
}

func lightnessOffset(h, s float64) float64 {
	return (0.25 - 0.34*math.Sqrt(1-math.Sin((h-2)*math.Pi/12))) * s
}

// RelativeLightness returns the lightness of hls in the tone coordinate
// system.
func RelativeLightness(hls space.Triple) float64 {
	return hls[1] - lightnessOffset(hls[0], hls[2])
}

// AbsoluteLightness returns the PCCS lightness of a tone coordinate colour.
func AbsoluteLightness(hLs space.Triple) float64 {
	return hLs[1] + lightnessOffset(hLs[0], hLs[2])
}

// ToToneCoordinate replaces the lightness of hls with its relative lightness.
func ToToneCoordinate(hls space.Triple) space.Triple {
	return space.Triple{hls[0], RelativeLightness(hls), hls[2]}
}

// ToNormalCoordinate is the inverse of ToToneCoordinate.
func ToNormalCoordinate(hLs space.Triple) space.Triple {
	return space.Triple{hLs[0], AbsoluteLightness(hLs), hLs[2]}
}

func hueNumber(h float64) int {
	n := int(math.Round(h))
	if n <= 0 {
		n = int(MaxHue)
	}
	if n > int(MaxHue) {
		n -= int(MaxHue)
	}
	return n
}

// Format returns the PCCS notation of hls, e.g. "lt+8.0 8.0:Y-7.5-6.0s" or
// "Gy-5.0 N-5.0" for neutrals.
func Format(hls space.Triple) string {
	h, l, s := hls[0], hls[1], hls[2]
	if s < MonoLimitSaturation {
		switch {
		case l >= 9.5:
			return fmt.Sprintf("W N-%.1f", l)
		case l <= 1.5:
			return fmt.Sprintf("Bk N-%.1f", l)
		}
		return fmt.Sprintf("Gy-%.1f N-%.1f", l, l)
	}

	name := hueNames[hueNumber(h)]
	if t := ToneOf(hls); t != NoTone {
		return fmt.Sprintf("%s%.1f %.1f:%s-%.1f-%.1fs", t, h, h, name, l, s)
	}
	return fmt.Sprintf("%.1f:%s-%.1f-%.1fs", h, name, l, s)
}

// HueString returns the PCCS hue name of hls, or "N" for neutrals.
func HueString(hls space.Triple) string {
	if hls[2] < MonoLimitSaturation {
		return "N"
	}
	return hueNames[hueNumber(hls[0])]
}

// ToneString returns the tone abbreviation of hls, or "W", "Gy" or "Bk" for
// neutrals.
func ToneString(hls space.Triple) string {
	if hls[2] < MonoLimitSaturation {
		switch {
		case hls[1] >= 9.5:
			return "W"
		case hls[1] <= 1.5:
			return "Bk"
		}
		return "Gy"
	}
	return ToneOf(hls).String()
}
