package vision

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jmylchreest/chromat/pkg/space"
)

func TestBrettelKeepsUnaffectedCones(t *testing.T) {
	lms := space.Triple{0.6, 0.4, 0.2}

	p := LMSToProtanopia(lms, Brettel1997, space.SmithPokorny)
	if p[1] != lms[1] || p[2] != lms[2] {
		t.Errorf("protanopia changed M or S: %v -> %v", lms, p)
	}
	d := LMSToDeuteranopia(lms, Brettel1997, space.SmithPokorny)
	if d[0] != lms[0] || d[2] != lms[2] {
		t.Errorf("deuteranopia changed L or S: %v -> %v", lms, d)
	}
}

func TestOkajimaPreservesConeSignal(t *testing.T) {
	lms := space.Triple{0.6, 0.4, 0.2}

	for _, m := range []space.LMSMatrix{space.SmithPokorny, space.Bradford, space.VonKries} {
		t.Run(m.String(), func(t *testing.T) {
			base := lmsBase(m)

			p := LMSToProtanopia(lms, Okajima2007, m)
			got := p[0]/base[0] + p[1]/base[1]
			if want := lms[1] / base[1]; math.Abs(got-want) > 1e-12 {
				t.Errorf("protanopia normalised L+M = %v, want %v", got, want)
			}

			d := LMSToDeuteranopia(lms, Okajima2007, m)
			got = d[0]/base[0] + d[1]/base[1]
			if want := lms[0] / base[0]; math.Abs(got-want) > 1e-12 {
				t.Errorf("deuteranopia normalised L+M = %v, want %v", got, want)
			}
		})
	}
}

func TestLRGBSimulationKeepsWhite(t *testing.T) {
	white := space.Triple{1, 1, 1}
	opt := cmpopts.EquateApprox(0, 2e-3)

	tests := []struct {
		name string
		fn   func(space.Triple, Method) space.Triple
		want float64
	}{
		{"protanopia", LRGBToProtanopia, 0.992052 + 0.003974},
		{"deuteranopia", LRGBToDeuteranopia, 0.957237 + 0.0213814},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(white, Brettel1997)
			want := space.Triple{tt.want, tt.want, tt.want}
			if diff := cmp.Diff(want, got, opt); diff != "" {
				t.Errorf("white mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLRGBOkajimaNormalisation(t *testing.T) {
	tests := []struct {
		name          string
		fn            func(space.Triple, Method) space.Triple
		scale, offset float64
		keep          int
		weight        float64
	}{
		{"protanopia", LRGBToProtanopia, 0.992052, 0.003974, 1, okajimaBeta},
		{"deuteranopia", LRGBToDeuteranopia, 0.957237, 0.0213814, 0, okajimaAlpha},
	}

	for _, tt := range tests {
		for _, c := range []space.Triple{{1, 1, 1}, {0.8, 0.2, 0.1}, {0.1, 0.4, 0.9}} {
			t.Run(tt.name, func(t *testing.T) {
				in := space.Triple{tt.scale*c[0] + tt.offset, tt.scale*c[1] + tt.offset, tt.scale*c[2] + tt.offset}
				src := rgbToLMS.Apply(in)
				out := rgbToLMS.Apply(tt.fn(c, Okajima2007))

				got := okajimaAlpha*out[0]/rgbLMSBase[0] + okajimaBeta*out[1]/rgbLMSBase[1]
				want := tt.weight * src[tt.keep] / rgbLMSBase[tt.keep]
				if math.Abs(got-want) > 1e-3*math.Abs(want) {
					t.Errorf("%v: normalised L+M = %v, want %v", c, got, want)
				}
			})
		}
	}
}

func TestLRGBSimulationInPlace(t *testing.T) {
	c := space.Triple{0.8, 0.2, 0.1}
	want := LRGBToDeuteranopia(c, Okajima2007)
	c = LRGBToDeuteranopia(c, Okajima2007)
	if c != want {
		t.Errorf("in-place result %v, want %v", c, want)
	}
}

func TestLabToElderly(t *testing.T) {
	const chroma = 10.0
	deg := 28.8
	r := deg * math.Pi / 180
	lab := space.Triple{62, chroma * math.Cos(r), chroma * math.Sin(r)}

	got := LabToElderly(lab)
	if got[0] != lab[0] {
		t.Errorf("L* changed: %v -> %v", lab[0], got[0])
	}

	polar := space.LabToPolar(got)
	if want := deg + 8.9; math.Abs(polar[2]-want) > 1e-9 {
		t.Errorf("hue = %v, want %v", polar[2], want)
	}
	if want := chroma * chromaRatio(chroma); math.Abs(polar[1]-want) > 1e-9 {
		t.Errorf("chroma = %v, want %v", polar[1], want)
	}
}

func TestAgeSimulationNeutral(t *testing.T) {
	grey := space.Triple{40, 0, 0}
	for name, fn := range map[string]func(space.Triple) space.Triple{
		"elderly": LabToElderly,
		"young":   LabToYoung,
	} {
		t.Run(name, func(t *testing.T) {
			got := fn(grey)
			if diff := cmp.Diff(grey, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("neutral moved (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{Brettel1997, Okajima2007} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMethod("machado"); err == nil {
		t.Error("ParseMethod(machado) expected error")
	}
}

func TestVisionString(t *testing.T) {
	if got := Deuteranopia.String(); got != "deuteranopia" {
		t.Errorf("Deuteranopia.String() = %q", got)
	}
}
