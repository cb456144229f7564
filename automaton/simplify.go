// File: simplify.go
// Role: Simplification operations over a Builder: MergeParallelTransitions
// and PruneStatesWithLogEndWeightLessThan.
package automaton

import (
	"fmt"
	"sort"
)

// MergeParallelTransitions groups, within each state, live outgoing
// transitions by (destination, group) and replaces each group with one
// transition whose weight is the Sum of the group's weights. ε-transitions
// merge only with other ε-transitions (by weight alone); transitions
// carrying an element distribution merge with others in their group by
// summing weight and taking the weighted union of the element
// distributions, so every element keeps the total weight it had across
// the merged transitions.
//
// Complexity: O(states + transitions) plus, per merged non-ε group, the
// cost of unionDistributions (linear in the number of ranges involved).
func MergeParallelTransitions(b *Builder) {
	type key struct {
		dest  uint32
		group uint32
	}

	for s := range b.states {
		epsilonSeen := make(map[key]int32)
		distSeen := make(map[key]int32)
		for cur := b.states[s].firstTransition; cur != noIndex; cur = b.transitions[cur].next {
			lt := &b.transitions[cur]
			if lt.removed {
				continue
			}
			k := key{dest: lt.transition.DestinationState, group: lt.transition.Group}

			if lt.transition.IsEpsilon() {
				if keepIdx, ok := epsilonSeen[k]; ok {
					kept := &b.transitions[keepIdx].transition
					kept.Weight = Sum(kept.Weight, lt.transition.Weight)
					lt.removed = true
					b.removedCount++
				} else {
					epsilonSeen[k] = cur
				}
				continue
			}

			if keepIdx, ok := distSeen[k]; ok {
				kept := &b.transitions[keepIdx].transition
				kept.ElementDistribution = unionDistributions(kept.ElementDistribution, kept.Weight, lt.transition.ElementDistribution, lt.transition.Weight)
				kept.Weight = Sum(kept.Weight, lt.transition.Weight)
				lt.removed = true
				b.removedCount++
			} else {
				distSeen[k] = cur
			}
		}
	}
}

// unionDistributions combines two element distributions, carried by
// transitions of weight wa and wb, into one whose probability at any
// element is (wa·a + wb·b) / (wa + wb). It works purely through the
// ElementDistribution interface, so it applies to any implementation, not
// just DiscreteChar.
func unionDistributions(a ElementDistribution, wa Weight, b ElementDistribution, wb Weight) ElementDistribution {
	inv, _ := Sum(wa, wb).Inverse()
	bounds := make(map[int]struct{})
	for _, r := range a.Ranges() {
		bounds[r.StartInclusive] = struct{}{}
		bounds[r.EndExclusive] = struct{}{}
	}
	for _, r := range b.Ranges() {
		bounds[r.StartInclusive] = struct{}{}
		bounds[r.EndExclusive] = struct{}{}
	}

	sorted := make([]int, 0, len(bounds))
	for v := range bounds {
		sorted = append(sorted, v)
	}
	sort.Ints(sorted)

	ranges := make([]Range, 0, len(sorted))
	for i := 0; i+1 < len(sorted); i++ {
		start, end := sorted[i], sorted[i+1]
		ranges = append(ranges, Range{
			StartInclusive: start,
			EndExclusive:   end,
			Probability:    Product(Sum(Product(wa, a.Probability(start)), Product(wb, b.Probability(start))), inv),
		})
	}
	common := Product(Sum(Product(wa, a.ProbabilityOutsideRanges()), Product(wb, b.ProbabilityOutsideRanges())), inv)

	merged, err := NewDiscreteChar(ranges, common)
	if err != nil {
		// Unreachable: the boundaries come from each input's own disjoint,
		// ascending Ranges(), so the merged segments are disjoint too.
		panic(fmt.Sprintf("automaton: unionDistributions: %v", err))
	}

	return merged
}

// PruneStatesWithLogEndWeightLessThan removes every state from which no
// state with end_weight.log > threshold is reachable (including itself).
// Reachability is computed over live transitions; unreachable states are
// removed via RemoveStates. It returns the number of states removed.
func PruneStatesWithLogEndWeightLessThan(b *Builder, threshold float64) (int, error) {
	n := len(b.states)
	keep := make([]bool, n)
	queue := make([]uint32, 0, n)
	for i, st := range b.states {
		if st.endWeight.LogValue() > threshold {
			keep[i] = true
			queue = append(queue, uint32(i))
		}
	}

	reverse := make([][]uint32, n)
	for s := range b.states {
		for cur := b.states[s].firstTransition; cur != noIndex; cur = b.transitions[cur].next {
			lt := b.transitions[cur]
			if lt.removed {
				continue
			}
			d := lt.transition.DestinationState
			reverse[d] = append(reverse[d], uint32(s))
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range reverse[cur] {
			if !keep[p] {
				keep[p] = true
				queue = append(queue, p)
			}
		}
	}

	remove := make([]bool, n)
	for i := range remove {
		remove[i] = !keep[i]
	}

	return b.RemoveStates(remove)
}
