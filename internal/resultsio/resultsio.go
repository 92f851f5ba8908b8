// Package resultsio reads and writes the results file format (spec.md §6):
// newline-delimited (start, segment_length, cost) tuples, and compares two
// result streams for equivalence, producing a unified diff via
// pmezard/go-difflib when they disagree — the external collaborator behind
// the compare-results subcommand.
package resultsio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"tdscan/internal/topk"
)

// Write emits one line per result, tab-separated start, segment_length,
// cost, in the order given.
func Write(w io.Writer, results []topk.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%s\n", r.Start, r.SegmentLength, formatCost(r.Cost)); err != nil {
			return fmt.Errorf("resultsio: writing result: %w", err)
		}
	}
	return bw.Flush()
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// Read parses a results file, one (start, segment_length, cost) tuple per
// non-blank line.
func Read(r io.Reader) ([]topk.Result, error) {
	scanner := bufio.NewScanner(r)
	var out []topk.Result
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("resultsio: line %d: %w", lineNum, err)
		}
		out = append(out, result)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("resultsio: reading: %w", err)
	}
	return out, nil
}

func parseLine(line string) (topk.Result, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return topk.Result{}, fmt.Errorf("expected 3 tab-separated fields, got %d", len(fields))
	}
	start, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return topk.Result{}, fmt.Errorf("start: %w", err)
	}
	length, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return topk.Result{}, fmt.Errorf("segment_length: %w", err)
	}
	cost, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return topk.Result{}, fmt.Errorf("cost: %w", err)
	}
	return topk.Result{Start: uint(start), SegmentLength: uint(length), Cost: cost}, nil
}

// Equivalent reports whether a and b are the same length and every pair of
// corresponding results is Result-equivalent under eps (spec.md §6): equal
// start and segment_length, and costs within eps.
func Equivalent(a, b []topk.Result, eps topk.Epsilon) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Start != b[i].Start || a[i].SegmentLength != b[i].SegmentLength {
			return false
		}
		if absFloat(a[i].Cost-b[i].Cost) > float64(eps) {
			return false
		}
	}
	return true
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Diff renders a unified diff between the textual rendering of two result
// streams (as Write would produce them), for the compare-results
// subcommand to show a human a summary of where they disagree.
func Diff(fromName string, a []topk.Result, toName string, b []topk.Result) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(renderLines(a)),
		B:        difflib.SplitLines(renderLines(b)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

func renderLines(results []topk.Result) string {
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "%d\t%d\t%s\n", r.Start, r.SegmentLength, formatCost(r.Cost))
	}
	return sb.String()
}
