package batch

import (
	"context"
	"testing"

	"tdscan/internal/nucleotide"
	"tdscan/internal/scorer"
	"tdscan/internal/segment"
	"tdscan/internal/topk"
)

func hamming(a, b nucleotide.Nucleotide) float64 {
	if a == b {
		return 0
	}
	return 1
}

func decode(t *testing.T, s string) []nucleotide.Nucleotide {
	t.Helper()
	out := make([]nucleotide.Nucleotide, len(s))
	for i := 0; i < len(s); i++ {
		n, err := nucleotide.FromAbbreviation(s[i])
		if err != nil {
			t.Fatalf("decode %q at %d: %v", s, i, err)
		}
		out[i] = n
	}
	return out
}

func TestRunEmitsOneSummaryPerTriple(t *testing.T) {
	group := Group{
		Name: "g1",
		Sequences: segment.Sequences{
			decode(t, "acgtacgt"),
			decode(t, "acgtacct"),
		},
	}
	triples := []Triple{
		{Group: group, Algo: scorer.Standard, Threads: 1},
		{Group: group, Algo: scorer.Cache, Threads: 2},
		{Group: group, Algo: scorer.Patterns, Threads: 1},
		{Group: group, Algo: scorer.CachePatterns, Threads: 4},
	}
	params := Params{
		MinLength:  segment.NewLength(1),
		MaxLength:  segment.NewLength(3),
		LengthStep: segment.NewLength(1),
		Capacity:   topk.Capacity(2),
		Epsilon:    topk.Epsilon(1e-9),
		States:     nucleotide.Bases[:],
		CostFn:     hamming,
	}
	sink := NewCollector()
	if err := Run(context.Background(), triples, params, 2, sink); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	summaries := sink.Summaries()
	if len(summaries) != len(triples) {
		t.Fatalf("got %d summaries, want %d", len(summaries), len(triples))
	}
	for _, s := range summaries {
		if len(s.Results) == 0 {
			t.Fatalf("summary for algo %s produced no results", s.Algo)
		}
		if len(s.Results) > 2 {
			t.Fatalf("summary for algo %s exceeded capacity: %d results", s.Algo, len(s.Results))
		}
	}
}

func TestRunPropagatesScorerConstructionError(t *testing.T) {
	group := Group{Name: "g1", Sequences: segment.Sequences{decode(t, "ac"), decode(t, "ac")}}
	triples := []Triple{{Group: group, Algo: scorer.Algorithm("bogus"), Threads: 1}}
	params := Params{
		MinLength:  segment.NewLength(1),
		MaxLength:  segment.NewLength(1),
		LengthStep: segment.NewLength(1),
		Capacity:   topk.Capacity(1),
		Epsilon:    topk.Epsilon(1e-9),
		States:     nucleotide.Bases[:],
		CostFn:     hamming,
	}
	sink := NewCollector()
	if err := Run(context.Background(), triples, params, 1, sink); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}
