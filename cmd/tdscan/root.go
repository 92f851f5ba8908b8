package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tdscan/internal/batch"
	"tdscan/internal/clog"
	"tdscan/internal/config"
	"tdscan/internal/nucleotide"
	"tdscan/internal/resultsio"
	"tdscan/internal/scorer"
	"tdscan/internal/seqio"
	"tdscan/internal/topk"
)

const version = "v0.1.0"

// hammingCost is the only cost function wired into the CLI today: unit
// cost for any mismatch, zero for an exact match, over the plain
// four-base alphabet. No flag selects a different cost function.
func hammingCost(a, b nucleotide.Nucleotide) float64 {
	if a == b {
		return 0
	}
	return 1
}

func newRootCmd(logger *clog.Logger) *cobra.Command {
	cfg := config.Default()
	var algoFlag string
	var outPath string

	root := &cobra.Command{
		Use:     "tdscan <fasta-file>",
		Short:   "score candidate tandem-duplication segment pairs in a sequence group",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, ok := algoResolve(algoFlag)
			if !ok {
				return fmt.Errorf("unknown algorithm %q", algoFlag)
			}
			cfg.Algorithm = algo
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runStandard(logger, cfg, args[0], outPath)
		},
	}

	flags := root.PersistentFlags()
	flags.UintVar((*uint)(&cfg.MinLength), "min-length", uint(cfg.MinLength), "smallest segment length tried")
	flags.UintVar((*uint)(&cfg.MaxLength), "max-length", uint(cfg.MaxLength), "largest segment length tried")
	flags.UintVar((*uint)(&cfg.LengthStep), "length-step", uint(cfg.LengthStep), "stride between tried segment lengths")
	flags.UintVar((*uint)(&cfg.Capacity), "capacity", uint(cfg.Capacity), "number of best results to keep")
	flags.Var(&cfg.Epsilon, "epsilon", "tolerance for result cost equivalence")
	flags.StringVar(&algoFlag, "algorithm", string(cfg.Algorithm), "scoring algorithm: standard, cache, patterns, cache_patterns")
	flags.UintVar(&cfg.Threads, "threads", cfg.Threads, "thread-count label for the batch runner")
	root.Flags().StringVarP(&outPath, "out", "o", "", "results output path (default: stdout)")

	root.AddCommand(
		newGenerateReferencesCmd(logger),
		newCompareResultsCmd(logger),
		newCompileMeasuresCmd(logger),
		newRunTestsCmd(logger, &cfg),
	)
	return root
}

func algoResolve(tag string) (scorer.Algorithm, bool) {
	algo, ok := scorer.Algorithms[tag]
	return algo, ok
}

func runStandard(logger *clog.Logger, cfg config.Config, fastaPath, outPath string) error {
	f, err := os.Open(fastaPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", fastaPath, err)
	}
	defer f.Close()

	group, err := seqio.Read(f)
	if err != nil {
		return err
	}
	logger.Infof("loaded %d sequences from %s", len(group.Sequences), fastaPath)

	sink := batch.NewCollector()
	triple := batch.Triple{
		Group:   batch.Group{Name: fastaPath, Sequences: group.Sequences},
		Algo:    cfg.Algorithm,
		Threads: cfg.Threads,
	}
	params := batch.Params{
		MinLength:  cfg.MinLength,
		MaxLength:  cfg.MaxLength,
		LengthStep: cfg.LengthStep,
		Capacity:   cfg.Capacity,
		Epsilon:    topk.Epsilon(cfg.Epsilon),
		States:     nucleotide.Bases[:],
		CostFn:     hammingCost,
	}
	if err := batch.Run(context.Background(), []batch.Triple{triple}, params, 1, sink); err != nil {
		return err
	}

	summaries := sink.Summaries()
	if len(summaries) == 0 {
		return fmt.Errorf("no results produced")
	}
	out := os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer file.Close()
		out = file
	}
	logger.Infof("scored in %s, writing %d results", summaries[0].Elapsed, len(summaries[0].Results))
	return resultsio.Write(out, summaries[0].Results)
}
