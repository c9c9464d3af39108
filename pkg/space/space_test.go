package space

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	colorful "github.com/lucasb-eyer/go-colorful"
)

func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

func TestSRGBRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rgb  Triple
	}{
		{name: "black", rgb: Triple{0, 0, 0}},
		{name: "white", rgb: Triple{255, 255, 255}},
		{name: "red", rgb: Triple{255, 0, 0}},
		{name: "dark teal", rgb: Triple{10, 80, 90}},
		{name: "grey", rgb: Triple{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, saturated := LRGBToSRGB(XYZToLRGB(LRGBToXYZ(SRGBToLRGB(tt.rgb))))
			if saturated {
				t.Errorf("round trip of %v reported saturation", tt.rgb)
			}
			if diff := cmp.Diff(tt.rgb, got, approx(1e-3)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLRGBToSRGBSaturation(t *testing.T) {
	got, saturated := LRGBToSRGB(Triple{1.2, 0.5, -0.1})
	if !saturated {
		t.Error("expected saturation for out of range linear RGB")
	}
	if got[0] != 255 || got[2] != 0 {
		t.Errorf("expected clamped channels, got %v", got)
	}
}

func TestWhiteToLab(t *testing.T) {
	for _, w := range []White{D65, D50} {
		t.Run(w.String(), func(t *testing.T) {
			got := XYZToLab(w.XYZ(), w)
			if diff := cmp.Diff(Triple{100, 0, 0}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("white Lab mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabRoundTrip(t *testing.T) {
	labs := []Triple{{50, 20, -30}, {5, 1, 1}, {90, -40, 60}, {0.5, 0, 0}}
	for _, lab := range labs {
		got := XYZToLab(LabToXYZ(lab, D65), D65)
		if diff := cmp.Diff(lab, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("Lab round trip of %v (-want +got):\n%s", lab, diff)
		}
	}
}

func TestLabAgainstColorful(t *testing.T) {
	rgbs := []Triple{{255, 0, 0}, {0, 128, 255}, {200, 180, 20}, {30, 30, 30}}
	for _, rgb := range rgbs {
		ref := colorful.Color{R: rgb[0] / 255, G: rgb[1] / 255, B: rgb[2] / 255}
		l, a, b := ref.Lab()
		want := Triple{l * 100, a * 100, b * 100}
		got := XYZToLab(LRGBToXYZ(SRGBToLRGB(rgb)), D65)
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 0.5)); diff != "" {
			t.Errorf("Lab of %v differs from go-colorful (-want +got):\n%s", rgb, diff)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	lab := Triple{60, -12, 34}
	got := PolarToLab(LabToPolar(lab))
	if diff := cmp.Diff(lab, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("polar round trip (-want +got):\n%s", diff)
	}
	if h := LabToPolar(Triple{50, 0, -10})[2]; math.Abs(h-270) > 1e-9 {
		t.Errorf("hue of -b axis = %v, want 270", h)
	}
}

func TestLMSRoundTrip(t *testing.T) {
	xyz := Triple{0.4, 0.35, 0.2}
	for _, m := range []LMSMatrix{SmithPokorny, Bradford, VonKries} {
		t.Run(m.String(), func(t *testing.T) {
			got := LMSToXYZ(XYZToLMS(xyz, m), m)
			if diff := cmp.Diff(xyz, got, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
				t.Errorf("LMS round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYIQRoundTrip(t *testing.T) {
	lrgb := Triple{0.2, 0.6, 0.9}
	got := YIQToLRGB(LRGBToYIQ(lrgb))
	if diff := cmp.Diff(lrgb, got, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("YIQ round trip (-want +got):\n%s", diff)
	}
}

func TestYxy(t *testing.T) {
	t.Run("black falls back to D65 chromaticity", func(t *testing.T) {
		got := XYZToYxy(Triple{})
		want := Triple{0, D65Chromaticity[0], D65Chromaticity[1]}
		if got != want {
			t.Errorf("XYZToYxy(0) = %v, want %v", got, want)
		}
	})

	t.Run("zero y gives black", func(t *testing.T) {
		got, saturated := YxyToXYZ(Triple{0.5, 0.3, 0})
		if got != (Triple{}) || saturated {
			t.Errorf("YxyToXYZ with y=0 = %v, %v", got, saturated)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		xyz := Triple{0.3, 0.4, 0.5}
		got, saturated := YxyToXYZ(XYZToYxy(xyz))
		if saturated {
			t.Error("unexpected saturation")
		}
		if diff := cmp.Diff(xyz, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("Yxy round trip (-want +got):\n%s", diff)
		}
	})

	t.Run("brighter than white saturates", func(t *testing.T) {
		_, saturated := YxyToXYZ(Triple{1.2, D65Chromaticity[0], D65Chromaticity[1]})
		if !saturated {
			t.Error("expected saturation")
		}
	})
}

func TestIlluminantCRoundTrip(t *testing.T) {
	xyz := Triple{0.5, 0.45, 0.3}
	got := XYZFromIlluminantC(XYZToIlluminantC(xyz))
	if diff := cmp.Diff(xyz, got, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("illuminant C round trip (-want +got):\n%s", diff)
	}
}

func TestColorInteger(t *testing.T) {
	c := FromColorInteger(0x12ab7f)
	if c != (Triple{0x12, 0xab, 0x7f}) {
		t.Fatalf("FromColorInteger = %v", c)
	}
	if got := ToColorInteger(c); got != 0xff12ab7f {
		t.Errorf("ToColorInteger = %#x, want 0xff12ab7f", got)
	}
}

func TestParseOptions(t *testing.T) {
	if w, err := ParseWhite("d50"); err != nil || w != D50 {
		t.Errorf("ParseWhite(d50) = %v, %v", w, err)
	}
	if _, err := ParseWhite("a"); err == nil {
		t.Error("expected error for unknown white")
	}
	if m, err := ParseLMSMatrix("bradford"); err != nil || m != Bradford {
		t.Errorf("ParseLMSMatrix(bradford) = %v, %v", m, err)
	}
	if _, err := ParseLMSMatrix("hpe"); err == nil {
		t.Error("expected error for unknown matrix")
	}
}
