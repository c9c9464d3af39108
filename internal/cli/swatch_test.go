package cli

import (
	"testing"

	"github.com/jmylchreest/chromat/pkg/space"
)

func TestSwatch(t *testing.T) {
	tests := []struct {
		name  string
		c     space.Triple
		width int
		want  string
	}{
		{"default width", space.Triple{255, 0, 0}, 0, "\033[48;2;255;0;0m        \033[0m"},
		{"clamped", space.Triple{300, -5, 128.4}, 2, "\033[48;2;255;0;128m  \033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := swatch(tt.c, tt.width); got != tt.want {
				t.Errorf("swatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSwatchWithText(t *testing.T) {
	tests := []struct {
		name string
		c    space.Triple
		text string
		want string
	}{
		{"dark text on white", space.Triple{255, 255, 255}, "ab", "\033[48;2;255;255;255m\033[38;2;0;0;0m   ab   \033[0m"},
		{"light text on navy", space.Triple{0, 0, 128}, "ab", "\033[48;2;0;0;128m\033[38;2;255;255;255m   ab   \033[0m"},
		{"truncated", space.Triple{0, 0, 0}, "#0123456789", "\033[48;2;0;0;0m\033[38;2;255;255;255m#0123456\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := swatchWithText(tt.c, tt.text, 0); got != tt.want {
				t.Errorf("swatchWithText() = %q, want %q", got, tt.want)
			}
		})
	}
}
