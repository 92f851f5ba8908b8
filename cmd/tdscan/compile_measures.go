package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tdscan/internal/clog"
	"tdscan/internal/measureplot"
	"tdscan/internal/resultsio"
)

// newCompileMeasuresCmd renders a cost-versus-start scatter for one segment
// length out of a results file.
func newCompileMeasuresCmd(logger *clog.Logger) *cobra.Command {
	var segmentLength uint
	var outPath, title string

	cmd := &cobra.Command{
		Use:   "compile-measures <results-file>",
		Short: "render a cost-vs-start plot from a results file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			results, err := resultsio.Read(f)
			if err != nil {
				return err
			}
			points := measureplot.FromResults(results, segmentLength)
			if len(points) == 0 {
				return fmt.Errorf("compile-measures: no results with segment length %d", segmentLength)
			}
			if outPath == "" {
				return fmt.Errorf("compile-measures: --out is required")
			}
			if err := measureplot.Render(title, points, outPath); err != nil {
				return err
			}
			logger.Infof("wrote %d points to %s", len(points), outPath)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.UintVar(&segmentLength, "segment-length", 0, "segment length to plot")
	flags.StringVarP(&outPath, "out", "o", "", "output image path")
	flags.StringVar(&title, "title", "cost by start", "plot title")
	return cmd
}
