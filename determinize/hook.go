// File: hook.go
// Role: Hook, the abstract element-distribution-specific extension point
// the Determinizer's general path calls into.
package determinize

import "github.com/katalvlaran/wfsa/automaton"

// OutgoingTransition is one (distribution, weight, destination-set) triple
// a Hook produces for a given source WeightedStateSet.
type OutgoingTransition struct {
	Distribution automaton.ElementDistribution
	Weight       automaton.Weight
	Next         WeightedStateSet
}

// Hook computes the outgoing transitions of a determinized state, given
// the WeightedStateSet it represents, and the Determinizer's configured
// destination-weight pruning threshold (natural log scale; see
// Determinizer.LogEps). Implementations are specific to one
// ElementDistribution concrete type; DiscreteCharHook (see
// discretechar_hook.go) is the one this package ships.
type Hook interface {
	OutgoingTransitionsForSet(a *automaton.ImmutableAutomaton, set WeightedStateSet, logEps float64) []OutgoingTransition
}
