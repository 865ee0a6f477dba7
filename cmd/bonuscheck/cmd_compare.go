package main

import (
	"fmt"
	"strings"

	"bonus-reconciliation/internal/domain"
	"bonus-reconciliation/internal/render"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		modeName string
		out      string
		save     bool
	)

	modes := make([]string, len(domain.Modes))
	for i, m := range domain.Modes {
		modes[i] = string(m)
	}

	cmd := &cobra.Command{
		Use:   "compare FILE_A FILE_B",
		Short: "Compare two bonus files by client id",
		Long: `Compares FILE_A and FILE_B by client id.

Modes:
  common-rows     rows of both files whose client id appears in both, tagged A or B
  classification  every client id tagged Both, PlanA (only in A) or PlanB (only in B)
  join            one row per matching pair, dates and amounts suffixed _A and _B

Example:
  bonuscheck compare plan_a.csv plan_b.csv --mode classification`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseMode(modeName)
			if err != nil {
				return err
			}
			return runCompare(cmd, mode, args[0], args[1], outputPath(out, save, cfg.ComparisonFile(mode)))
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "Comparison mode: "+strings.Join(modes, ", "))
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the comparison as CSV to this path")
	cmd.Flags().BoolVar(&save, "save", false, "Write the comparison to the configured default file name")
	_ = cmd.MarkFlagRequired("mode")
	return cmd
}

func runCompare(cmd *cobra.Command, mode domain.Mode, pathA, pathB, out string) error {
	report, err := newUseCase().CompareFiles(cmd.Context(), mode, pathA, pathB)
	if err != nil {
		return reportFailure(cmd, err)
	}

	w := cmd.OutOrStdout()
	styles := render.DefaultStyles()

	if !report.Empty() {
		fmt.Fprint(w, render.Table("Comparison: "+string(mode), report.Table(), styles))
	}
	fmt.Fprint(w, render.Info(render.ComparisonMessage(report), styles))

	if out == "" {
		return nil
	}
	if err := writeReport(out, report.Table()); err != nil {
		return err
	}
	fmt.Fprintf(w, "report written to %s\n", out)
	return nil
}
