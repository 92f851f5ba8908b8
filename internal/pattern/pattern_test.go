package pattern

import (
	"testing"

	"tdscan/internal/nucleotide"
)

func TestOfEqualVectorsProduceEqualKeys(t *testing.T) {
	a := []nucleotide.Nucleotide{nucleotide.Adenine, nucleotide.Cytosine, nucleotide.Guanine, nucleotide.Thymine}
	b := []nucleotide.Nucleotide{nucleotide.Adenine, nucleotide.Cytosine, nucleotide.Guanine, nucleotide.Thymine}
	if Of(a) != Of(b) {
		t.Fatal("expected equal vectors to produce equal keys")
	}
}

func TestOfDifferentVectorsProduceDifferentKeys(t *testing.T) {
	a := []nucleotide.Nucleotide{nucleotide.Adenine, nucleotide.Cytosine}
	b := []nucleotide.Nucleotide{nucleotide.Cytosine, nucleotide.Adenine}
	if Of(a) == Of(b) {
		t.Fatal("expected order-sensitive vectors to produce different keys")
	}
}

func TestOfWideVectorFallsBackButStaysComparable(t *testing.T) {
	wide := make([]nucleotide.Nucleotide, maxPackedStates+10)
	for i := range wide {
		wide[i] = nucleotide.Nucleotide(i % 4)
	}
	k1 := Of(wide)
	k2 := Of(append([]nucleotide.Nucleotide(nil), wide...))
	if k1 != k2 {
		t.Fatal("expected equal wide vectors to produce equal keys")
	}
	if !k1.isWide {
		t.Fatal("expected vector longer than maxPackedStates to take the wide path")
	}

	wide[0] = nucleotide.Gap
	k3 := Of(wide)
	if k1 == k3 {
		t.Fatal("expected mutated wide vector to produce a different key")
	}
}

func TestCacheLookupStore(t *testing.T) {
	c := NewCache()
	key := Of([]nucleotide.Nucleotide{nucleotide.Adenine, nucleotide.Thymine})
	if _, ok := c.Lookup(key); ok {
		t.Fatal("expected empty cache miss")
	}
	c.Store(key, 1.5)
	got, ok := c.Lookup(key)
	if !ok || got != 1.5 {
		t.Fatalf("Lookup() = (%v, %v), want (1.5, true)", got, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}
