package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromat/pkg/convert"
	"github.com/jmylchreest/chromat/pkg/evaluate"
	"github.com/jmylchreest/chromat/pkg/space"
)

func (a *app) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff COLOUR COLOUR",
		Short: "Print the colour difference of two hex colours",
		Long: `Print the CIELAB colour difference of two sRGB hex colours, together with the
difference in NBS units. The formula is selected with --difference.

Example:
  chromat diff '#3a7bd5' '#3a6073'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog(cmd, false)
			if err != nil {
				return err
			}
			p, err := c.New("rgb-lab")
			if err != nil {
				return err
			}

			info := convert.PresetInfo{Name: "diff", From: convert.SpaceSRGB}
			var labs [2]space.Triple
			for i, arg := range args {
				rgb, err := parseInput(info, convertFlags{hex: arg}, nil)
				if err != nil {
					return err
				}
				if labs[i], err = p.Convert(rgb); err != nil {
					return err
				}
			}

			d := c.Difference(labs[0], labs[1])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.4f (%.4f NBS)\n", c.Options().Difference, d, d*evaluate.DEToNBS)
			return nil
		},
	}
}
