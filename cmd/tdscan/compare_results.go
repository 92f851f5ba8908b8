package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tdscan/internal/clog"
	"tdscan/internal/resultsio"
	"tdscan/internal/topk"
)

// newCompareResultsCmd diffs two results files written by the default
// scoring command, reporting equivalence within an epsilon tolerance.
func newCompareResultsCmd(logger *clog.Logger) *cobra.Command {
	var eps float64

	cmd := &cobra.Command{
		Use:   "compare-results <baseline> <candidate>",
		Short: "diff two results files for equivalence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baselinePath, candidatePath := args[0], args[1]

			baseline, err := readResultsFile(baselinePath)
			if err != nil {
				return err
			}
			candidate, err := readResultsFile(candidatePath)
			if err != nil {
				return err
			}

			if resultsio.Equivalent(baseline, candidate, topk.Epsilon(eps)) {
				logger.Infof("%s and %s are equivalent within epsilon %g", baselinePath, candidatePath, eps)
				return nil
			}

			diff, err := resultsio.Diff(baselinePath, baseline, candidatePath, candidate)
			if err != nil {
				return fmt.Errorf("compare-results: computing diff: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return fmt.Errorf("compare-results: %s and %s differ", baselinePath, candidatePath)
		},
	}

	cmd.Flags().Float64Var(&eps, "epsilon", 1e-9, "tolerance for result cost equivalence")
	return cmd
}

func readResultsFile(path string) ([]topk.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return resultsio.Read(f)
}
