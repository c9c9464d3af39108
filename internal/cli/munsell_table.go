package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *app) newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Load the Munsell table and report per-plane statistics",
		Long: `Load the Munsell renotation table and print, for each value plane, the
resource it was read from, the rows read and skipped, and the samples kept.

The embedded table is used unless --table-dir names a directory holding
hc2xy(VV.V).csv files (optionally .xz, .gz or .bz2 compressed).
The command fails if any plane could not be loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, loadErr := a.loadTable()
			if tbl == nil {
				return loadErr
			}

			t := newTable("VALUE", "SOURCE", "ROWS", "SKIPPED", "SAMPLES", "STATUS")
			for _, col := range []int{0, 2, 3, 4} {
				t.alignRight(col)
			}
			for _, st := range tbl.Stats() {
				status := "ok"
				if st.Err != nil {
					status = st.Err.Error()
				}
				t.addRow(
					strconv.FormatFloat(st.Value, 'f', 1, 64),
					st.Source,
					strconv.Itoa(st.Rows),
					strconv.Itoa(st.Skipped),
					strconv.Itoa(st.Samples),
					status,
				)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.render())

			return loadErr
		},
	}
}
