// Package smtree implements the Sankoff-style state-mutation tree: a
// bottom-up dynamic program that reconstructs, for every node and every
// candidate state, both the minimum mutation cost of the subtree below it
// and the number of distinct minimum-cost sub-reconstructions attaining
// that cost. This is CAMUS's small-parsimony dynamic program (see
// internal/infer/main_dp.go's id-indexed DP tables, and the nested-minimum
// bookkeeping in soniakeys/bio's DNA8MaxParsimonyRooted) generalized from a
// single optimum to a cost/count pair per state, as tdscan's
// pre-speciation cost (internal/prespeciation) needs to average over every
// minimum-cost reconstruction, not just one of them.
package smtree

import (
	"fmt"
	"math"

	"tdscan/internal/nucleotide"
	"tdscan/internal/phylotree"
)

// StateInfo is the {cost, count} pair Sankoff bookkeeping keeps per
// (node, state): the minimum mutation cost of the subtree below the node
// given that it is assigned this state, and the number of distinct
// sub-reconstructions of that subtree achieving that minimum.
type StateInfo struct {
	Cost  float64
	Count uint64
}

// CostFunc is the edge mutation cost between a parent and child state.
type CostFunc func(parent, child nucleotide.Nucleotide) float64

// SMTree mirrors the shape of a phylotree.Tree[T] but carries, per node, a
// table from nucleotide state to StateInfo instead of the original payload.
type SMTree struct {
	root     phylotree.NodeID
	children [][]phylotree.NodeID
	table    []map[nucleotide.Nucleotide]StateInfo
}

// Mimic builds an SMTree with the same topology as t, payloads replaced by
// empty state tables. t's structure must not change afterwards; SMTree
// never consults t again after Mimic returns.
func Mimic[T any](t *phylotree.Tree[T]) *SMTree {
	n := t.NumNodes()
	sm := &SMTree{
		root:     t.Root(),
		children: make([][]phylotree.NodeID, n),
		table:    make([]map[nucleotide.Nucleotide]StateInfo, n),
	}
	for id := range n {
		nid := phylotree.NodeID(id)
		sm.children[id] = t.Children(nid)
		sm.table[id] = make(map[nucleotide.Nucleotide]StateInfo)
	}
	return sm
}

// FixState sets leaf's table so that only state s is reachable, at
// {cost: 0, count: 1}. All other states are absent (treated as +Inf cost,
// 0 count).
func (sm *SMTree) FixState(leaf phylotree.NodeID, s nucleotide.Nucleotide) {
	sm.checkLeaf(leaf)
	sm.table[leaf] = map[nucleotide.Nucleotide]StateInfo{s: {Cost: 0, Count: 1}}
}

// ClearLeaf empties leaf's table; Update then treats it as a wildcard that
// can assume any state in the update's state set at zero cost (see the
// "Any" leaf semantics recorded in SPEC_FULL.md / DESIGN.md).
func (sm *SMTree) ClearLeaf(leaf phylotree.NodeID) {
	sm.checkLeaf(leaf)
	sm.table[leaf] = make(map[nucleotide.Nucleotide]StateInfo)
}

func (sm *SMTree) checkLeaf(id phylotree.NodeID) {
	if int(id) < 0 || int(id) >= len(sm.table) {
		panic("smtree: invalid node id")
	}
	if len(sm.children[id]) != 0 {
		panic("smtree: FixState/ClearLeaf called on an internal node")
	}
}

// Update recomputes every internal node's state table bottom-up, per node
// n and state s:
//
//	cost(n,s)  = sum over children c of min_s' (cost(c,s') + costFn(s,s'))
//	count(n,s) = product over children c of (count of s' attaining that min)
//
// Leaves with an empty table (never FixState'd, or explicitly cleared) are
// treated as able to assume any state in states at {cost: 0, count: 1}.
func (sm *SMTree) Update(states []nucleotide.Nucleotide, costFn CostFunc) {
	sm.defaultEmptyLeaves(states)
	sm.updateNode(sm.root, states, costFn)
}

func (sm *SMTree) defaultEmptyLeaves(states []nucleotide.Nucleotide) {
	for id, children := range sm.children {
		if len(children) != 0 {
			continue
		}
		if len(sm.table[id]) != 0 {
			continue
		}
		for _, s := range states {
			sm.table[id][s] = StateInfo{Cost: 0, Count: 1}
		}
	}
}

func (sm *SMTree) updateNode(id phylotree.NodeID, states []nucleotide.Nucleotide, costFn CostFunc) {
	children := sm.children[id]
	if len(children) == 0 {
		return
	}
	for _, c := range children {
		sm.updateNode(c, states, costFn)
	}
	table := make(map[nucleotide.Nucleotide]StateInfo, len(states))
	for _, s := range states {
		var totalCost float64
		var totalCount uint64 = 1
		for _, c := range children {
			bestCost, sumCount := childBest(sm.table[c], states, s, costFn)
			if sumCount == 0 {
				panic(fmt.Sprintf("smtree: zero reconstructions for child %d under parent state %v", c, s))
			}
			totalCost += bestCost
			totalCount *= sumCount
		}
		table[s] = StateInfo{Cost: totalCost, Count: totalCount}
	}
	sm.table[id] = table
}

// childBest finds min_s' (cost(c,s') + costFn(parentState,s')) and the sum
// of count(c,s') over every s' attaining that exact minimum.
func childBest(
	childTable map[nucleotide.Nucleotide]StateInfo,
	states []nucleotide.Nucleotide,
	parentState nucleotide.Nucleotide,
	costFn CostFunc,
) (bestCost float64, sumCount uint64) {
	bestCost = math.Inf(1)
	for _, sp := range states {
		info, ok := childTable[sp]
		if !ok {
			continue
		}
		augmented := info.Cost + costFn(parentState, sp)
		switch {
		case augmented < bestCost:
			bestCost = augmented
			sumCount = info.Count
		case augmented == bestCost:
			sumCount += info.Count
		}
	}
	return bestCost, sumCount
}

// Root returns the tree's root id.
func (sm *SMTree) Root() phylotree.NodeID {
	return sm.root
}

// Children returns id's child ids, in the same order as the topology it
// was mimicked from.
func (sm *SMTree) Children(id phylotree.NodeID) []phylotree.NodeID {
	return sm.children[id]
}

// IsLeaf reports whether id has no children.
func (sm *SMTree) IsLeaf(id phylotree.NodeID) bool {
	return len(sm.children[id]) == 0
}

// State returns the StateInfo recorded for (id, s), and whether s is
// reachable at id at all (false means effectively {+Inf, 0}).
func (sm *SMTree) State(id phylotree.NodeID, s nucleotide.Nucleotide) (StateInfo, bool) {
	info, ok := sm.table[id][s]
	return info, ok
}

// States returns every (state, info) pair recorded at id. The returned map
// must not be mutated.
func (sm *SMTree) States(id phylotree.NodeID) map[nucleotide.Nucleotide]StateInfo {
	return sm.table[id]
}

// MinCost returns min_s table[root][s].cost. Panics if root's table is
// empty (Update was never called, or every state is unreachable, which
// should never happen for a fully specified leaf set).
func (sm *SMTree) MinCost() float64 {
	min, _ := sm.minCostAt(sm.root)
	return min
}

func (sm *SMTree) minCostAt(id phylotree.NodeID) (float64, bool) {
	min := math.Inf(1)
	found := false
	for _, info := range sm.table[id] {
		if info.Cost < min {
			min = info.Cost
			found = true
		}
	}
	if !found {
		panic("smtree: empty state table, Update was never called or tree is not fully specified")
	}
	return min, found
}
