package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/chromat/pkg/space"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

func rgbBytes(c space.Triple) (r, g, b uint8) {
	c = space.Clamp(c, 0, 255)
	return uint8(math.Round(c[0])), uint8(math.Round(c[1])), uint8(math.Round(c[2]))
}

// swatch returns a solid block of the sRGB colour c, width cells wide.
func swatch(c space.Triple, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	r, g, b := rgbBytes(c)
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix) + strings.Repeat(" ", width) + ansiReset
}

// swatchWithText centres text on the colour in black or white, whichever
// reads better.
func swatchWithText(c space.Triple, text string, width int) string {
	if width <= 0 {
		width = swatchWidth
	}

	var fg uint8 = 255
	if space.LRGBToXYZ(space.SRGBToLRGB(space.Clamp(c, 0, 255)))[1] > 0.18 {
		fg = 0
	}

	switch {
	case len(text) > width:
		text = text[:width]
	case len(text) < width:
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	r, g, b := rgbBytes(c)
	return fmt.Sprintf("%s%d;%d;%d%s%s%d;%d;%d%s%s%s",
		ansiBgPrefix, r, g, b, ansiSuffix,
		ansiFgPrefix, fg, fg, fg, ansiSuffix,
		text, ansiReset)
}
