// Package nucleotide defines the DNA symbol alphabet shared by every other
// package in tdscan: the state space the Sankoff tree (internal/smtree)
// reconstructs over, and the character set sequence input is translated
// through (internal/seqio).
package nucleotide

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Nucleotide is a single symbol in the tdscan alphabet.
type Nucleotide uint8

const (
	Adenine Nucleotide = iota
	Cytosine
	Guanine
	Thymine
	Gap
	Any

	numStates = int(Any) + 1
)

var ErrUnknownAbbreviation = errors.New("unknown abbreviation")

var abbreviations = [numStates]byte{
	Adenine:  'a',
	Cytosine: 'c',
	Guanine:  'g',
	Thymine:  't',
	Gap:      '_',
	Any:      'n',
}

var names = [numStates]string{
	Adenine:  "Adenine",
	Cytosine: "Cytosine",
	Guanine:  "Guanine",
	Thymine:  "Thymine",
	Gap:      "Gap",
	Any:      "Any",
}

var fromAbbreviation map[byte]Nucleotide

var lowerCaser = cases.Lower(language.Und)

func init() {
	fromAbbreviation = make(map[byte]Nucleotide, numStates)
	for n, c := range abbreviations {
		fromAbbreviation[c] = Nucleotide(n)
	}
}

// Bases is the set of the four plain DNA bases, in canonical order. SMTree
// iterates states in this order when no IUPAC ambiguity is involved.
var Bases = [4]Nucleotide{Adenine, Cytosine, Guanine, Thymine}

// Abbreviation returns n's one-character lowercase abbreviation.
func (n Nucleotide) Abbreviation() byte {
	if int(n) >= numStates {
		panic(fmt.Sprintf("nucleotide: invalid state %d", n))
	}
	return abbreviations[n]
}

// Name returns n's full name.
func (n Nucleotide) Name() string {
	if int(n) >= numStates {
		panic(fmt.Sprintf("nucleotide: invalid state %d", n))
	}
	return names[n]
}

func (n Nucleotide) String() string {
	return string(n.Abbreviation())
}

// FromAbbreviation parses a single plain abbreviation character
// (case-insensitive). It does not accept IUPAC ambiguity codes; use
// FromExtendedAbbreviation for those.
func FromAbbreviation(c byte) (Nucleotide, error) {
	lc := foldByte(c)
	if n, ok := fromAbbreviation[lc]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAbbreviation, c)
}

// Decode translates a raw sequence of plain abbreviation characters into
// Nucleotide states, failing on the first unrecognized character.
func Decode(raw []byte) ([]Nucleotide, error) {
	out := make([]Nucleotide, len(raw))
	for i, c := range raw {
		n, err := FromAbbreviation(c)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

func foldByte(c byte) byte {
	folded := lowerCaser.String(string(c))
	if len(folded) == 0 {
		return c
	}
	return folded[0]
}
