package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newPresetsCmd() *cobra.Command {
	var showStages bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the conversion presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.catalog(cmd, false)
			if err != nil {
				return err
			}

			headers := []string{"PRESET", "FROM", "TO", "TABLE", "DESCRIPTION"}
			if showStages {
				headers = append(headers, "STAGES")
			}
			t := newTable(headers...)
			t.setMaxWidth(4, 48)

			for _, name := range c.List() {
				info, err := c.Describe(name)
				if err != nil {
					return err
				}
				needsTable := ""
				if info.NeedsTable {
					needsTable = "yes"
				}
				row := []string{info.Name, info.From, info.To, needsTable, info.Description}
				if showStages {
					row = append(row, strings.Join(info.Stages, " "))
				}
				t.addRow(row...)
			}

			fmt.Fprint(cmd.OutOrStdout(), t.render())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showStages, "stages", "s", false, "show the stages of each preset")
	return cmd
}
