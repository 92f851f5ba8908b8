package refset

import (
	"strings"
	"testing"
)

func TestFetchAndDecodeParsesFasta(t *testing.T) {
	fasta := ">seq1\nacgt\n>seq2\nacgg\n"
	group, err := fetchAndDecode(strings.NewReader(fasta))
	if err != nil {
		t.Fatalf("fetchAndDecode() error = %v", err)
	}
	if len(group.Sequences) != 2 {
		t.Fatalf("got %d sequences, want 2", len(group.Sequences))
	}
	if len(group.Sequences[0]) != 4 {
		t.Fatalf("sequence 0 length = %d, want 4", len(group.Sequences[0]))
	}
}

func TestFetchAndDecodeDoesNotPanicOnGarbage(t *testing.T) {
	if _, err := fetchAndDecode(strings.NewReader("this is not fasta")); err != nil {
		// A parser may tolerate headerless garbage as a zero-record
		// alignment rather than erroring; either outcome is acceptable as
		// long as it does not panic.
		return
	}
}
