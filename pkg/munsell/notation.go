package munsell

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/chromat/pkg/space"
)

// hueFamilies in hue order; 1R is hue 1, 10RP is hue 100 (= 0).
var hueFamilies = [...]string{"R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}

// HueNameToValue converts a hue name such as "5R" or "2.5PB" to a hue in
// [0, 100). The neutral name "N" yields HueNeutral.
func HueNameToValue(name string) (float64, error) {
	name = strings.TrimSpace(name)
	if name == "N" {
		return HueNeutral, nil
	}

	family := -1
	var num string
	for i, f := range hueFamilies {
		// Two-letter families must win over their one-letter suffix (YR vs R).
		if before, ok := strings.CutSuffix(name, f); ok && (family == -1 || len(f) > len(hueFamilies[family])) {
			family, num = i, before
		}
	}
	if family == -1 || num == "" {
		return 0, fmt.Errorf("invalid hue name %q", name)
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 || v > 10 {
		return 0, fmt.Errorf("invalid hue name %q", name)
	}
	v += float64(family) * 10
	if v >= MaxHue {
		v -= MaxHue
	}
	return v, nil
}

// HueValueToName converts a hue to its name, e.g. 42.5 -> "2.5G". A neutral
// hue or a zero chroma yields "N".
func HueValueToName(hue, chroma float64) string {
	if hue == HueNeutral || math.Abs(chroma) < eps {
		return "N"
	}
	if hue < 0 {
		hue += MaxHue
	}
	f := int(hue / 10)
	if f >= len(hueFamilies) {
		f -= len(hueFamilies)
	}
	return fmt.Sprintf("%.1f%s", hue-float64(f)*10, hueFamilies[f])
}

// Format returns the notation of an HVC triple, e.g. "5.0R 4.0/14.0" or
// "N 5.0" for neutrals.
func Format(hvc space.Triple) string {
	if hvc[2] < MonoLimitChroma {
		return fmt.Sprintf("N %.1f", hvc[1])
	}
	return fmt.Sprintf("%s %.1f/%.1f", HueValueToName(hvc[0], hvc[2]), hvc[1], hvc[2])
}

// Parse reads the notation produced by Format. Neutrals ("N 5.0", "N5")
// parse to hue HueNeutral and chroma 0.
func Parse(s string) (space.Triple, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "N"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(rest, "/")), 64)
		if err != nil {
			return space.Triple{}, fmt.Errorf("invalid munsell notation %q: %w", s, err)
		}
		return space.Triple{HueNeutral, v, 0}, nil
	}

	hueName, vc, ok := strings.Cut(s, " ")
	if !ok {
		return space.Triple{}, fmt.Errorf("invalid munsell notation %q: want \"H V/C\"", s)
	}
	h, err := HueNameToValue(hueName)
	if err != nil {
		return space.Triple{}, fmt.Errorf("invalid munsell notation %q: %w", s, err)
	}
	vs, cs, ok := strings.Cut(strings.TrimSpace(vc), "/")
	if !ok {
		return space.Triple{}, fmt.Errorf("invalid munsell notation %q: want \"H V/C\"", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(vs), 64)
	if err != nil {
		return space.Triple{}, fmt.Errorf("invalid munsell value in %q: %w", s, err)
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(cs), 64)
	if err != nil {
		return space.Triple{}, fmt.Errorf("invalid munsell chroma in %q: %w", s, err)
	}
	return space.Triple{h, v, c}, nil
}
