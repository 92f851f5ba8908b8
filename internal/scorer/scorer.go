// Package scorer implements the four segment-pair scoring strategies
// (Standard, Cache, Patterns, CachePatterns) behind a common interface,
// grounded on the Scorer[S]/Init/CalcScore contract in CAMUS's
// internal/score/scorers.go: a shared interface with several interchangeable
// implementations selected by a string tag, each wrapping the same
// underlying computation (there, quartet-total lookups; here, per-column
// pre-speciation cost) with a different strategy for totaling it up.
package scorer

import (
	"errors"
	"fmt"

	"tdscan/internal/nucleotide"
	"tdscan/internal/pattern"
	"tdscan/internal/phylotree"
	"tdscan/internal/prespeciation"
	"tdscan/internal/segment"
	"tdscan/internal/smtree"
	"tdscan/internal/synth"
)

// Algorithm names one of the four scoring strategies.
type Algorithm string

const (
	Standard      Algorithm = "standard"
	Cache         Algorithm = "cache"
	Patterns      Algorithm = "patterns"
	CachePatterns Algorithm = "cache_patterns"
)

// Algorithms maps the accepted command-line/config tag to its Algorithm.
var Algorithms = map[string]Algorithm{
	"standard":       Standard,
	"cache":          Cache,
	"patterns":       Patterns,
	"cache_patterns": CachePatterns,
}

// ErrUnknownAlgorithm is returned by New for an Algorithm outside Algorithms.
var ErrUnknownAlgorithm = errors.New("scorer: unknown algorithm")

// Scorer computes the average per-column pre-speciation cost of a segment
// pair. A Scorer owns an exclusive SMTree and (where applicable) an
// exclusive pattern cache and sliding-window state; it must not be shared
// across goroutines.
type Scorer interface {
	CostFor(pair segment.Pair) float64
}

// New builds a Scorer for algo over tree (the mirror-pair comb synthesized
// by internal/synth) and seqs (the decoded sequence group whose leaves tree
// was built for), using states as the candidate nucleotide alphabet and
// costFn as the edge mutation cost.
func New(
	algo Algorithm,
	tree *phylotree.Tree[synth.SequenceIndex],
	states []nucleotide.Nucleotide,
	costFn smtree.CostFunc,
	seqs segment.Sequences,
) (Scorer, error) {
	sm := smtree.Mimic(tree)
	leaves := tree.Leaves()
	cc := newColumnCoster(sm, leaves, states, costFn, seqs)

	switch algo {
	case Standard:
		return &standardScorer{cc: cc}, nil
	case Patterns:
		return &patternsScorer{cc: cc, cache: pattern.NewCache()}, nil
	case Cache:
		return &cacheScorer{cc: cc, acc: newSlidingAccumulator(seqs.Length())}, nil
	case CachePatterns:
		return &cachePatternsScorer{cc: cc, cache: pattern.NewCache(), acc: newSlidingAccumulator(seqs.Length())}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// columnCoster computes the pre-speciation cost of a single column: fix the
// SMTree's leaves to the column's states, update, and evaluate. It is
// shared by every scoring strategy since column cost itself never varies;
// only how its results get averaged and/or memoized does.
type columnCoster struct {
	sm     *smtree.SMTree
	leaves []phylotree.NodeID
	states []nucleotide.Nucleotide
	costFn smtree.CostFunc
	seqs   segment.Sequences
	buf    []nucleotide.Nucleotide
}

func newColumnCoster(
	sm *smtree.SMTree,
	leaves []phylotree.NodeID,
	states []nucleotide.Nucleotide,
	costFn smtree.CostFunc,
	seqs segment.Sequences,
) *columnCoster {
	return &columnCoster{
		sm:     sm,
		leaves: leaves,
		states: states,
		costFn: costFn,
		seqs:   seqs,
		buf:    make([]nucleotide.Nucleotide, 2*len(seqs)),
	}
}

// FillColumn loads this offset's leaf-state vector into cc's scratch buffer
// without touching the SMTree, so callers can key a pattern cache on it
// before deciding whether the expensive path below is needed.
func (cc *columnCoster) FillColumn(pair segment.Pair, j uint) {
	cc.seqs.Column(pair, j, cc.buf)
}

// CostFromBuf fixes the SMTree's leaves to whatever FillColumn last loaded,
// updates, and returns the pre-speciation cost. A leaf whose state is
// nucleotide.Any is cleared instead of fixed, so it acts as a wildcard.
func (cc *columnCoster) CostFromBuf() float64 {
	for i, leaf := range cc.leaves {
		if cc.buf[i] == nucleotide.Any {
			cc.sm.ClearLeaf(leaf)
			continue
		}
		cc.sm.FixState(leaf, cc.buf[i])
	}
	cc.sm.Update(cc.states, cc.costFn)
	return prespeciation.Cost(cc.sm, cc.states, cc.costFn)
}

// Cost is the non-memoized column cost: fill then evaluate.
func (cc *columnCoster) Cost(pair segment.Pair, j uint) float64 {
	cc.FillColumn(pair, j)
	return cc.CostFromBuf()
}

// patternMemoizedCost is the Patterns-strategy column cost: a pattern-cache
// lookup guarding the same CostFromBuf work.
func patternMemoizedCost(cc *columnCoster, cache *pattern.Cache, pair segment.Pair, j uint) float64 {
	cc.FillColumn(pair, j)
	key := pattern.Of(cc.buf)
	if v, ok := cache.Lookup(key); ok {
		return v
	}
	v := cc.CostFromBuf()
	cache.Store(key, v)
	return v
}

// plainAverage sums columnCost(0..length-1) and divides by length: the
// Standard/Patterns accumulation strategy.
func plainAverage(length uint, columnCost func(j uint) float64) float64 {
	var sum float64
	for j := uint(0); j < length; j++ {
		sum += columnCost(j)
	}
	return sum / float64(length)
}

type standardScorer struct {
	cc *columnCoster
}

func (s *standardScorer) CostFor(pair segment.Pair) float64 {
	return plainAverage(uint(pair.SegmentLength), func(j uint) float64 {
		return s.cc.Cost(pair, j)
	})
}

type patternsScorer struct {
	cc    *columnCoster
	cache *pattern.Cache
}

func (s *patternsScorer) CostFor(pair segment.Pair) float64 {
	return plainAverage(uint(pair.SegmentLength), func(j uint) float64 {
		return patternMemoizedCost(s.cc, s.cache, pair, j)
	})
}

// slidingAccumulator implements the Cache/CachePatterns sliding-window
// accumulation strategy: colCost[p] holds the cost of the column at
// sequence position p for the segment length currently in play, and sum is
// the running total over the current window. Correctness requires the
// driving enumeration to visit every start for a fixed length, in
// ascending start order, before moving to the next length (the order
// segment.Bounds.Enumerate produces).
type slidingAccumulator struct {
	colCost []float64
	sum     float64
}

func newSlidingAccumulator(seqLength uint) *slidingAccumulator {
	return &slidingAccumulator{colCost: make([]float64, seqLength)}
}

func (a *slidingAccumulator) CostFor(pair segment.Pair, columnCost func(j uint) float64) float64 {
	length := uint(pair.SegmentLength)
	if pair.Start == 0 {
		a.sum = 0
		for j := uint(0); j < length; j++ {
			c := columnCost(j)
			a.colCost[j] = c
			a.sum += c
		}
		return a.sum / float64(length)
	}
	a.sum -= a.colCost[uint(pair.Start)-1]
	newCost := columnCost(pair.LastColumn())
	a.colCost[uint(pair.Start)+length-1] = newCost
	a.sum += newCost
	return a.sum / float64(length)
}

type cacheScorer struct {
	cc  *columnCoster
	acc *slidingAccumulator
}

func (s *cacheScorer) CostFor(pair segment.Pair) float64 {
	return s.acc.CostFor(pair, func(j uint) float64 {
		return s.cc.Cost(pair, j)
	})
}

type cachePatternsScorer struct {
	cc    *columnCoster
	cache *pattern.Cache
	acc   *slidingAccumulator
}

func (s *cachePatternsScorer) CostFor(pair segment.Pair) float64 {
	return s.acc.CostFor(pair, func(j uint) float64 {
		return patternMemoizedCost(s.cc, s.cache, pair, j)
	})
}
