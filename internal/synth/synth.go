// Package synth builds the fixed "mirror-pair comb" phylogeny tdscan scores
// segment pairs against: given K sequences it deterministically produces a
// 2K-leaf binary tree whose left half is a comb over the K sequences in
// order, and whose right half is a mirror of the same comb. This plays the
// role CAMUS's internal/prep.Preprocess / gr.MakeTreeData play for a
// constraint tree read from a file — except tdscan never reads a topology
// from input; it synthesizes one by a fixed rule (spec.md §4.4), so there
// is no Newick parsing involved (an explicit non-goal).
package synth

import (
	"fmt"

	"tdscan/internal/phylotree"
)

// SequenceIndex identifies one of the K input sequences a leaf corresponds
// to positionally (leaves are unnamed; see spec.md §4.4).
type SequenceIndex int

// Build constructs the mirror-pair comb for numSeqs sequences (numSeqs must
// be >= 2) and returns the tree together with, per leaf id in Leaves()
// order, the SequenceIndex it represents. The first numSeqs leaves belong
// to the "left" half (in sequence-index order), the second numSeqs leaves
// to the "right" half (also in sequence-index order).
func Build(numSeqs int) (*phylotree.Tree[SequenceIndex], []SequenceIndex) {
	if numSeqs < 2 {
		panic(fmt.Sprintf("synth: need at least 2 sequences, got %d", numSeqs))
	}
	tr := phylotree.New[SequenceIndex]()
	root := tr.SetRoot()
	leftCur := tr.AppendChild(root)
	rightCur := tr.AppendChild(root)

	for i := range numSeqs {
		l := tr.AppendChild(leftCur)
		r := tr.AppendChild(rightCur)
		tr.SetPayload(l, SequenceIndex(i))
		tr.SetPayload(r, SequenceIndex(i))
		if numSeqs-i-1 > 1 {
			newLeft := tr.AppendChild(leftCur)
			newRight := tr.AppendChild(rightCur)
			leftCur, rightCur = newLeft, newRight
		}
	}

	leaves := tr.Leaves()
	index := make([]SequenceIndex, len(leaves))
	for i, l := range leaves {
		v, ok := tr.Payload(l)
		if !ok {
			panic("synth: leaf missing sequence index payload")
		}
		index[i] = v
	}
	if len(leaves) != 2*numSeqs {
		panic(fmt.Sprintf("synth: expected %d leaves, got %d", 2*numSeqs, len(leaves)))
	}
	return tr, index
}
