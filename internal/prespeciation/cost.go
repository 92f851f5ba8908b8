// Package prespeciation implements the pre-speciation cost evaluator: the
// expected number of mutations along edges from an updated SMTree's root to
// its direct children, averaged over every minimum-cost root
// reconstruction (spec.md §4.5). This is the quantity CAMUS's own small
// parsimony code (and soniakeys/bio's DNA8MaxParsimonyRooted) never needs
// to compute, since those only ever want a single optimal labeling; tdscan
// needs the full distribution over optimal labelings because several
// columns can be tied for best and all of them matter to the final score.
package prespeciation

import (
	"fmt"

	"tdscan/internal/nucleotide"
	"tdscan/internal/phylotree"
	"tdscan/internal/smtree"
)

// Cost returns the pre-speciation cost of an already-updated SMTree: the
// weighted average, over every minimum-cost root reconstruction, of the
// number of mutations on edges from the root to its direct children.
func Cost(sm *smtree.SMTree, states []nucleotide.Nucleotide, costFn smtree.CostFunc) float64 {
	root := sm.Root()
	minCost := sm.MinCost()

	var totalReconstructions uint64
	var rootCandidates []nucleotide.Nucleotide
	for _, s := range states {
		info, ok := sm.State(root, s)
		if !ok || info.Cost != minCost {
			continue
		}
		rootCandidates = append(rootCandidates, s)
		totalReconstructions += info.Count
	}
	if len(rootCandidates) == 0 {
		panic("prespeciation: no root state attains the minimum cost")
	}

	var costSum float64
	for _, s := range rootCandidates {
		rootInfo, _ := sm.State(root, s)
		for _, c := range sm.Children(root) {
			childMinCost, equivCount := childMinAndCount(sm, c, s, states, costFn)
			if equivCount == 0 {
				panic(fmt.Sprintf("prespeciation: no reconstructions for child %d under root state %v", c, s))
			}
			if rootInfo.Count%equivCount != 0 {
				panic(fmt.Sprintf("prespeciation: root count %d not divisible by child-equivalent count %d", rootInfo.Count, equivCount))
			}
			mult := rootInfo.Count / equivCount
			for _, sp := range states {
				info, ok := sm.State(c, sp)
				if !ok {
					continue
				}
				if info.Cost+costFn(s, sp) != childMinCost {
					continue
				}
				costSum += costFn(s, sp) * float64(info.Count) * float64(mult)
			}
		}
	}
	return costSum / float64(totalReconstructions)
}

func childMinAndCount(
	sm *smtree.SMTree,
	child phylotree.NodeID,
	parentState nucleotide.Nucleotide,
	states []nucleotide.Nucleotide,
	costFn smtree.CostFunc,
) (minCost float64, sumCount uint64) {
	minCost = -1
	for _, sp := range states {
		info, ok := sm.State(child, sp)
		if !ok {
			continue
		}
		augmented := info.Cost + costFn(parentState, sp)
		switch {
		case minCost < 0 || augmented < minCost:
			minCost = augmented
			sumCount = info.Count
		case augmented == minCost:
			sumCount += info.Count
		}
	}
	return minCost, sumCount
}
