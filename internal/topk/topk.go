// Package topk implements the bounded ordered results container: it keeps
// at most N Results, evicting the current worst whenever a strictly better
// one arrives once full. Grounded on the same "small fixed-capacity sorted
// slice, insert-and-evict" shape CAMUS's supp package uses for tracking
// running quartet-support statistics, generalized to the three-way Result
// ordering spec.md §3 defines.
package topk

import (
	"sort"
)

// Capacity is a validated top-K container size.
type Capacity uint

// Result is one scored segment pair: the average per-column pre-speciation
// cost over a segment of SegmentLength bases starting at Start.
type Result struct {
	Start         uint
	SegmentLength uint
	Cost          float64
}

// Epsilon is the tolerance cost comparisons treat as equality.
type Epsilon float64

// Less reports whether a sorts strictly before b under the ordering of
// spec.md §3: lower cost wins (within eps); ties broken by longer
// SegmentLength, then by lower Start.
func Less(a, b Result, eps Epsilon) bool {
	if d := a.Cost - b.Cost; absFloat(d) > float64(eps) {
		return d < 0
	}
	if a.SegmentLength != b.SegmentLength {
		return a.SegmentLength > b.SegmentLength
	}
	return a.Start < b.Start
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TopK is a fixed-capacity container of the best Results seen so far,
// ordered ascending (best first) per Less. Not safe for concurrent use; one
// TopK belongs to exactly one in-flight scoring triple (spec.md §5).
type TopK struct {
	capacity Capacity
	eps      Epsilon
	entries  []Result
}

// New builds an empty container with the given capacity and equality
// tolerance. A capacity of 0 makes every Insert a no-op.
func New(capacity Capacity, eps Epsilon) *TopK {
	return &TopK{capacity: capacity, eps: eps}
}

// Insert offers a candidate Result. If the container has room, it is added
// in sorted position. Otherwise, if it is strictly better than the current
// worst entry, the worst is evicted and the candidate inserted; if not, the
// container is left unchanged.
func (t *TopK) Insert(r Result) {
	if t.capacity == 0 {
		return
	}
	if uint(len(t.entries)) < uint(t.capacity) {
		t.insertSorted(r)
		return
	}
	worst := t.entries[len(t.entries)-1]
	if Less(r, worst, t.eps) {
		t.entries = t.entries[:len(t.entries)-1]
		t.insertSorted(r)
	}
}

func (t *TopK) insertSorted(r Result) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return Less(r, t.entries[i], t.eps)
	})
	t.entries = append(t.entries, Result{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = r
}

// Len reports how many Results are currently held.
func (t *TopK) Len() int {
	return len(t.entries)
}

// Snapshot returns a copy of the current contents, ascending (best first).
// The returned slice is safe to retain and iterate independently of further
// mutation of t.
func (t *TopK) Snapshot() []Result {
	out := make([]Result, len(t.entries))
	copy(out, t.entries)
	return out
}
