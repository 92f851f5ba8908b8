/*
tdscan detects candidate tandem duplications in a group of homologous DNA
sequences by scoring every pair of equal-length adjacent segments with a
Sankoff-style pre-speciation mutation cost, and reporting the best-scoring
segment pairs found.

usage: tdscan [command] [flags] <fasta-file>

commands:

	(default)            score a single sequence group read from a FASTA file
	generate-references  fetch a reference sequence set over FTP
	compare-results      diff two results files for equivalence
	compile-measures     render a cost-vs-start plot from a results file
	run-tests            interactive shell for exploratory batch runs

examples:

	tdscan --algorithm cache --min-length 10 --max-length 200 group.fasta > results.txt
	tdscan compare-results baseline.txt candidate.txt
*/
package main

import (
	"os"

	"tdscan/internal/clog"
)

func main() {
	logger := clog.New()
	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
