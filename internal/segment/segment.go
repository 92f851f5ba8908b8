// Package segment enumerates candidate tandem-duplication segment pairs
// over a group of equal-length sequences and, for a fixed pair, the ordered
// columns of leaf states a scorer feeds into an SMTree update. This plays
// the role CAMUS's internal/graphs quartet enumeration plays for network
// inference: it is the thing the DP runs inside of, over and over, so it is
// written to allocate nothing per column.
package segment

import (
	"fmt"

	"tdscan/internal/nucleotide"
)

// Length is a segment length in bases. Always greater than zero once
// constructed via NewLength.
type Length uint

// NewLength validates and wraps a raw segment length.
func NewLength(v uint) Length {
	if v == 0 {
		panic("segment: length must be positive")
	}
	return Length(v)
}

// Start is a zero-based position within a sequence.
type Start uint

// Pair identifies one candidate tandem-duplication segment pair: a
// zero-based start position p and a segment length ℓ, comparing positions
// p..p+ℓ-1 against p+ℓ..p+2ℓ-1.
type Pair struct {
	Start         Start
	SegmentLength Length
}

// LastColumn returns ℓ-1, the index of this pair's final column.
func (p Pair) LastColumn() uint {
	return uint(p.SegmentLength) - 1
}

// Bounds describes the enumeration parameters: ℓ runs from MinLength to
// min(MaxLength, ⌊SeqLength/2⌋) in steps of LengthStep; for each ℓ, start p
// runs from 0 to SeqLength-2ℓ inclusive.
type Bounds struct {
	MinLength  Length
	MaxLength  Length
	LengthStep Length
	SeqLength  uint
}

// Validate checks the preconditions spec.md §4.6 places on Bounds:
// MinLength > 0, LengthStep > 0, MinLength <= MaxLength, and
// MinLength % LengthStep == 0.
func (b Bounds) Validate() error {
	if b.MinLength == 0 {
		return fmt.Errorf("segment: min_length must be positive")
	}
	if b.LengthStep == 0 {
		return fmt.Errorf("segment: length_step must be positive")
	}
	if b.MinLength > b.MaxLength {
		return fmt.Errorf("segment: min_length %d exceeds max_length %d", b.MinLength, b.MaxLength)
	}
	if uint(b.MinLength)%uint(b.LengthStep) != 0 {
		return fmt.Errorf("segment: min_length %d not a multiple of length_step %d", b.MinLength, b.LengthStep)
	}
	return nil
}

// effectiveMaxLength clamps MaxLength to floor(SeqLength/2).
func (b Bounds) effectiveMaxLength() uint {
	clamp := b.SeqLength / 2
	if uint(b.MaxLength) < clamp {
		return uint(b.MaxLength)
	}
	return clamp
}

// Lengths returns every segment length the outer enumeration tries, in
// ascending order.
func (b Bounds) Lengths() []Length {
	max := b.effectiveMaxLength()
	var out []Length
	for l := uint(b.MinLength); l <= max; l += uint(b.LengthStep) {
		out = append(out, Length(l))
	}
	return out
}

// Starts returns every start position tried for a fixed segment length, in
// ascending order.
func (b Bounds) Starts(length Length) []Start {
	if uint(length)*2 > b.SeqLength {
		return nil
	}
	last := b.SeqLength - 2*uint(length)
	out := make([]Start, 0, last+1)
	for p := uint(0); p <= last; p++ {
		out = append(out, Start(p))
	}
	return out
}

// Enumerate calls visit once per (length, start) pair, lengths ascending and,
// within a length, starts ascending — the order the Cache/CachePatterns
// scoring strategies require to keep their sliding window valid.
func (b Bounds) Enumerate(visit func(Pair)) {
	for _, length := range b.Lengths() {
		for _, start := range b.Starts(length) {
			visit(Pair{Start: start, SegmentLength: length})
		}
	}
}

// Sequences is the group of equal-length, already-decoded sequences a
// segment pair's columns are drawn from.
type Sequences [][]nucleotide.Nucleotide

// Length returns the shared sequence length, or 0 for an empty group.
func (s Sequences) Length() uint {
	if len(s) == 0 {
		return 0
	}
	return uint(len(s[0]))
}

// Column fills dst with the 2K-element ordered leaf-value vector for offset
// j within pair: sequences at position pair.Start+j, then the same
// sequences at pair.Start+pair.SegmentLength+j. len(dst) must equal 2*len(s).
func (s Sequences) Column(pair Pair, j uint, dst []nucleotide.Nucleotide) {
	k := len(s)
	if len(dst) != 2*k {
		panic("segment: destination column buffer has wrong length")
	}
	left := uint(pair.Start) + j
	right := uint(pair.Start) + uint(pair.SegmentLength) + j
	for i, seq := range s {
		dst[i] = seq[left]
		dst[k+i] = seq[right]
	}
}
