package scorer

import (
	"math"
	"testing"

	"tdscan/internal/nucleotide"
	"tdscan/internal/segment"
	"tdscan/internal/synth"
)

var bases = nucleotide.Bases[:]

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

// TestIdenticalSequencesScoreZero checks S2: every segment pair over two
// identical sequences costs 0 regardless of algorithm.
func TestIdenticalSequencesScoreZero(t *testing.T) {
	seqs := segment.Sequences{decode(t, "acgtac"), decode(t, "acgtac")}
	tr, _ := synth.Build(len(seqs))
	bounds := segment.Bounds{MinLength: 1, MaxLength: 3, LengthStep: 1, SeqLength: seqs.Length()}

	for name, algo := range Algorithms {
		sc, err := New(algo, tr, bases, hamming, seqs)
		if err != nil {
			t.Fatalf("%s: New() error = %v", name, err)
		}
		bounds.Enumerate(func(p segment.Pair) {
			got := sc.CostFor(p)
			if got != 0 {
				t.Fatalf("%s: CostFor(%+v) = %v, want 0", name, p, got)
			}
		})
	}
}

// TestAlgorithmsAgree checks the cross-variant contract of spec.md §4.8:
// for the same inputs, all four algorithms produce equal costs per pair.
func TestAlgorithmsAgree(t *testing.T) {
	seqs := segment.Sequences{
		decode(t, "acgtacgtac"),
		decode(t, "acttacctac"),
		decode(t, "acgaacgtaa"),
	}
	tr, _ := synth.Build(len(seqs))
	bounds := segment.Bounds{MinLength: 1, MaxLength: 4, LengthStep: 1, SeqLength: seqs.Length()}

	scorers := make(map[Algorithm]Scorer)
	for _, algo := range []Algorithm{Standard, Cache, Patterns, CachePatterns} {
		sc, err := New(algo, tr, bases, hamming, seqs)
		if err != nil {
			t.Fatalf("New(%s) error = %v", algo, err)
		}
		scorers[algo] = sc
	}

	var want map[Algorithm][]float64 = make(map[Algorithm][]float64)
	for algo, sc := range scorers {
		var got []float64
		bounds.Enumerate(func(p segment.Pair) {
			got = append(got, sc.CostFor(p))
		})
		want[algo] = got
	}

	reference := want[Standard]
	for algo, costs := range want {
		if len(costs) != len(reference) {
			t.Fatalf("%s: produced %d costs, want %d", algo, len(costs), len(reference))
		}
		for i := range costs {
			if math.Abs(costs[i]-reference[i]) > 1e-9 {
				t.Fatalf("%s: cost[%d] = %v, standard = %v", algo, i, costs[i], reference[i])
			}
		}
	}
}

func TestNewUnknownAlgorithm(t *testing.T) {
	seqs := segment.Sequences{decode(t, "ac"), decode(t, "ac")}
	tr, _ := synth.Build(len(seqs))
	if _, err := New(Algorithm("bogus"), tr, bases, hamming, seqs); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}
