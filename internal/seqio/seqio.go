// Package seqio reads a group of equal-length homologous sequences from a
// FASTA file, decoding each into the nucleotide alphabet (internal/nucleotide)
// that every other package operates on. It is the sole place in the
// repository allowed to depend on FASTA parsing, playing the role CAMUS's
// internal/prep.ReadInputFiles plays for Newick input: an external
// collaborator that turns a file on disk into the typed, validated shape
// the core algorithm needs, and nothing more.
package seqio

import (
	"fmt"
	"io"

	"github.com/evolbioinfo/goalign/io/fasta"

	"tdscan/internal/nucleotide"
)

// alignment is the narrow slice of goalign's align.Alignment interface this
// package actually uses. Depending on this local interface rather than the
// full external one keeps fromAlignment testable against a small fake.
type alignment interface {
	Iterate(it func(name string, sequence string))
}

// ErrSequenceLengthMismatch reports that a FASTA record's sequence length
// differs from the group's common length (C6/C4 both require equal-length
// input).
var ErrSequenceLengthMismatch = fmt.Errorf("seqio: sequence length mismatch")

// Group is a decoded, equal-length collection of sequences in file order,
// together with the names FASTA associated with them.
type Group struct {
	Names     []string
	Sequences [][]nucleotide.Nucleotide
}

// Read parses r as FASTA and decodes every record into nucleotide states,
// failing if any record's length disagrees with the first.
func Read(r io.Reader) (Group, error) {
	parser := fasta.NewParser(r)
	al, err := parser.Parse()
	if err != nil {
		return Group{}, fmt.Errorf("seqio: parsing FASTA: %w", err)
	}
	return fromAlignment(al)
}

func fromAlignment(al alignment) (Group, error) {
	var group Group
	var commonLength int
	var parseErr error
	al.Iterate(func(name string, sequence string) {
		if parseErr != nil {
			return
		}
		if commonLength == 0 {
			commonLength = len(sequence)
		} else if len(sequence) != commonLength {
			parseErr = fmt.Errorf("%w: %q has length %d, want %d", ErrSequenceLengthMismatch, name, len(sequence), commonLength)
			return
		}
		decoded, err := nucleotide.Decode([]byte(sequence))
		if err != nil {
			parseErr = fmt.Errorf("seqio: sequence %q: %w", name, err)
			return
		}
		group.Names = append(group.Names, name)
		group.Sequences = append(group.Sequences, decoded)
	})
	if parseErr != nil {
		return Group{}, parseErr
	}
	return group, nil
}
