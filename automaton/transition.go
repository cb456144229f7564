// File: transition.go
// Role: Transition, the value record linking two states.
package automaton

// GroupNone is the sentinel Group value meaning "ungrouped".
const GroupNone uint32 = 0

// Transition links a source state (implicit: the state it is stored under)
// to DestinationState, consuming an element drawn from ElementDistribution
// with the given Weight. A nil ElementDistribution denotes an ε-transition:
// it contributes Weight but consumes no input element.
type Transition struct {
	// ElementDistribution is nil for an ε-transition.
	ElementDistribution ElementDistribution
	// Weight is the cost of taking this transition.
	Weight Weight
	// DestinationState is the index of the state this transition leads to.
	// It is a weak reference: storage is an arena of indices, so cyclic
	// automata (including self-loops) carry no ownership hazard.
	DestinationState uint32
	// Group tags transitions that must be treated as a unit by callers
	// that care about grouping (e.g. determinization refuses to proceed on
	// an automaton that declares itself group-bearing). GroupNone (0)
	// means ungrouped.
	Group uint32
}

// IsEpsilon reports whether t consumes no input element.
func (t Transition) IsEpsilon() bool { return t.ElementDistribution == nil }
