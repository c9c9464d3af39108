package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/chromat/pkg/convert"
	"github.com/jmylchreest/chromat/pkg/munsell"
	"github.com/jmylchreest/chromat/pkg/pccs"
	"github.com/jmylchreest/chromat/pkg/space"
)

type convertFlags struct {
	preset   string
	hex      string
	munsell  string
	notation bool
	swatch   bool
}

func (a *app) newConvertCmd() *cobra.Command {
	var f convertFlags

	cmd := &cobra.Command{
		Use:   "convert --preset NAME (c1 c2 c3 | --hex RRGGBB | --munsell NOTATION)",
		Short: "Convert a colour with a preset pipeline",
		Long: `Convert one colour through a preset pipeline and print the result.

The input is three numbers in the preset's source space (sRGB components are
0..255), a hex colour for presets that start from sRGB, or a Munsell
notation such as "5R 4/14" for presets that start from Munsell HVC.

The embedded Munsell table is synthetic, so presets that need it (see the
TABLE column of 'chromat presets') give illustrative results only. Point
--table-dir at the Munsell renotation data (hc2xy(VV.V).csv files) for real
values.

Examples:
  # sRGB to CIELAB
  chromat convert --preset rgb-lab 255 128 0

  # Simulate deuteranopia on a hex colour
  chromat convert --preset rgb-deuteranopia --hex '#3a7bd5'

  # Munsell to sRGB, with the Munsell notation of the input
  chromat convert --preset munsell-rgb --notation 25 6 8

  # Munsell notation input
  chromat convert --preset munsell-rgb --munsell '2.5PB 3/8'

  # Use the concise PCCS relations
  chromat convert --preset munsell-pccs --pccs concise 5 4 14`,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.hex != "" || f.munsell != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "preset to run (see 'chromat presets')")
	cmd.Flags().StringVar(&f.hex, "hex", "", "sRGB input as a hex colour")
	cmd.Flags().StringVar(&f.munsell, "munsell", "", "Munsell HVC input as a notation, e.g. \"5R 4/14\"")
	cmd.MarkFlagsMutuallyExclusive("hex", "munsell")
	cmd.Flags().BoolVarP(&f.notation, "notation", "n", false, "also print the Munsell or PCCS notation")
	cmd.Flags().BoolVar(&f.swatch, "swatch", true, "show an ANSI colour swatch when writing to a terminal")
	_ = cmd.MarkFlagRequired("preset")

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, f convertFlags, args []string) error {
	// The catalog is built once to look the preset up, then again with the
	// table only if the preset needs it.
	c, err := a.catalog(cmd, false)
	if err != nil {
		return err
	}
	info, err := c.Describe(f.preset)
	if err != nil {
		return err
	}
	if info.NeedsTable {
		if c, err = a.catalog(cmd, true); err != nil {
			return err
		}
	}

	in, err := parseInput(info, f, args)
	if err != nil {
		return err
	}

	p, err := c.New(f.preset)
	if err != nil {
		return err
	}
	out, err := p.Convert(in)
	if err != nil {
		return err
	}
	a.logger.Debug("converted", "preset", f.preset, "stages", p.Stages(), "in", in, "out", out, "saturated", p.Saturated())

	w := cmd.OutOrStdout()
	swatches := f.swatch && isTerminal(w)
	printTriple(w, info.To, out, p.Saturated(), swatches)
	if swatches && info.From == convert.SpaceSRGB && info.To == convert.SpaceSRGB {
		fmt.Fprintf(w, "%s -> %s\n", swatchWithText(in, hexOf(in), 9), swatchWithText(out, hexOf(out), 9))
	}
	if f.notation {
		if n := notation(info.From, in); n != "" {
			fmt.Fprintf(w, "input:  %s\n", n)
		}
		if n := notation(info.To, out); n != "" {
			fmt.Fprintf(w, "output: %s\n", n)
		}
	}
	return nil
}

func parseInput(info convert.PresetInfo, f convertFlags, args []string) (space.Triple, error) {
	var in space.Triple
	if f.munsell != "" {
		if info.From != convert.SpaceMunsell {
			return in, fmt.Errorf("--munsell needs a preset that starts from Munsell HVC, %s starts from %s", info.Name, info.From)
		}
		return munsell.Parse(f.munsell)
	}
	if hex := f.hex; hex != "" {
		if info.From != convert.SpaceSRGB {
			return in, fmt.Errorf("--hex needs a preset that starts from sRGB, %s starts from %s", info.Name, info.From)
		}
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return in, fmt.Errorf("invalid hex colour %q: %w", hex, err)
		}
		return space.Triple{c.R * 255, c.G * 255, c.B * 255}, nil
	}

	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return in, fmt.Errorf("component %d: %w", i+1, err)
		}
		in[i] = v
	}
	return in, nil
}

func printTriple(w io.Writer, to string, c space.Triple, saturated, swatches bool) {
	fmt.Fprintf(w, "%s %.4f %.4f %.4f", to, c[0], c[1], c[2])
	if to == convert.SpaceSRGB {
		fmt.Fprintf(w, " %s", hexOf(c))
		if swatches {
			fmt.Fprintf(w, " %s", swatch(c, 0))
		}
	}
	if saturated {
		fmt.Fprint(w, " (saturated)")
	}
	fmt.Fprintln(w)
}

func hexOf(rgb space.Triple) string {
	return colorful.Color{R: rgb[0] / 255, G: rgb[1] / 255, B: rgb[2] / 255}.Clamped().Hex()
}

func notation(s string, c space.Triple) string {
	switch s {
	case convert.SpaceMunsell:
		return munsell.Format(c)
	case convert.SpacePCCS:
		return pccs.Format(c)
	case convert.SpaceTone:
		return pccs.ToneOf(pccs.ToNormalCoordinate(c)).String()
	}
	return ""
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
