package main

import (
	"fmt"

	"bonus-reconciliation/internal/render"

	"github.com/spf13/cobra"
)

const chartWidth = 40

func newDuplicatesCmd() *cobra.Command {
	var (
		out   string
		save  bool
		chart bool
	)

	cmd := &cobra.Command{
		Use:   "duplicates FILE",
		Short: "List every row whose client id occurs more than once",
		Long: `Reads FILE and lists all rows sharing a client id with another row,
sorted by client id. Rows keep their file order within an id.

Example:
  bonuscheck duplicates bonus_march.csv --chart --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuplicates(cmd, args[0], outputPath(out, save, cfg.Export.DuplicatesFileName), chart)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the duplicated rows as CSV to this path")
	cmd.Flags().BoolVar(&save, "save", false, "Write the duplicated rows to the configured default file name")
	cmd.Flags().BoolVar(&chart, "chart", false, "Draw the number of rows per duplicated client id")
	return cmd
}

func runDuplicates(cmd *cobra.Command, path, out string, chart bool) error {
	report, err := newUseCase().CheckDuplicates(cmd.Context(), path)
	if err != nil {
		return reportFailure(cmd, err)
	}

	w := cmd.OutOrStdout()
	styles := render.DefaultStyles()

	if !report.Empty() {
		fmt.Fprint(w, render.Table("Duplicated client ids", report.Table(), styles))
		if chart {
			fmt.Fprintln(w)
			fmt.Fprint(w, render.Chart(render.DuplicateBars(report), chartWidth, styles))
		}
	}
	fmt.Fprint(w, render.Info(render.DuplicatesMessage(report), styles))

	if out == "" {
		return nil
	}
	if err := writeReport(out, report.Table()); err != nil {
		return err
	}
	fmt.Fprintf(w, "report written to %s\n", out)
	return nil
}
