package evaluate

import (
	"math"
	"testing"

	"github.com/jmylchreest/chromat/pkg/space"
)

func TestCIEDE2000(t *testing.T) {
	// Pairs from Sharma, Wu and Dalal's published test data.
	tests := []struct {
		name string
		a, b space.Triple
		want float64
	}{
		{"pair 1", space.Triple{50, 2.6772, -79.7751}, space.Triple{50, 0, -82.7485}, 2.0425},
		{"pair 7", space.Triple{50, 0, 0}, space.Triple{50, -1, 2}, 2.3669},
		{"pair 17", space.Triple{50, 2.5, 0}, space.Triple{73, 25, -18}, 27.1492},
		{"pair 25", space.Triple{60.2574, -34.0099, 36.2677}, space.Triple{60.4626, -34.1751, 39.4387}, 1.2644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CIEDE2000(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("CIEDE2000() = %.4f, want %.4f", got, tt.want)
			}
			if rev := CIEDE2000(tt.b, tt.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("CIEDE2000 not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestDifference(t *testing.T) {
	a := space.Triple{50, 10, 10}
	b := space.Triple{53, 6, 10}

	if got := Difference(DeltaE76, a, b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Difference(DeltaE76) = %v, want 5", got)
	}
	if got, want := Difference(DeltaE2000, a, b), CIEDE2000(a, b); got != want {
		t.Errorf("Difference(DeltaE2000) = %v, want %v", got, want)
	}
	if got := Difference(DeltaE2000, a, a); got != 0 {
		t.Errorf("Difference of identical colours = %v, want 0", got)
	}
}

func TestDistance(t *testing.T) {
	a := space.Triple{1, 2, 3}
	b := space.Triple{4, 6, 3}
	if got := SquaredDistance(a, b); got != 25 {
		t.Errorf("SquaredDistance() = %v, want 25", got)
	}
	if got := Distance(a, b); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestConspicuity(t *testing.T) {
	polar := func(deg float64) space.Triple {
		r := deg * math.Pi / 180
		return space.Triple{50, 20 * math.Cos(r), 20 * math.Sin(r)}
	}

	tests := []struct {
		name string
		hue  float64
		want float64
	}{
		{"least conspicuous", 215, 0},
		{"most conspicuous", 35, 180},
		{"quarter turn", 125, 90},
		{"below reference", 10, 155},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Conspicuity(polar(tt.hue))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Conspicuity(hue %v) = %v, want %v", tt.hue, got, tt.want)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{DeltaE2000, DeltaE76} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMethod("cmc"); err == nil {
		t.Error("ParseMethod(cmc) expected error")
	}
}
