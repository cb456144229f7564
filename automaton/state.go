// File: state.go
// Role: internal arena bookkeeping shared by Builder and ImmutableAutomaton:
// stateData (reused for two different meanings, see below) and
// linkedTransition (the Builder-only tombstoned singly-linked pool entry).
//
// stateData is intentionally one struct serving two lifecycles:
//   - While a Builder owns it, firstTransition/lastTransition are indices
//     into the Builder's linkedTransition pool: the head and tail of that
//     state's singly-linked transition chain.
//   - After Finalize, the very same fields are reinterpreted as the bounds
//     of a half-open range [firstTransition, lastTransition) into the flat
//     Transition array of an ImmutableAutomaton.
//
// In both lifecycles firstTransition == -1 iff lastTransition == -1 iff the
// state has no transitions, and CanEnd is defined as EndWeight != Zero.
package automaton

// noIndex is the sentinel "absent" value for transition/state indices.
const noIndex = -1

// stateData is the per-state record shared by Builder and
// ImmutableAutomaton (see file doc comment for the reused dual meaning).
type stateData struct {
	firstTransition int32
	lastTransition  int32
	endWeight       Weight
}

// canEnd reports whether this state accepts (has non-zero end weight).
func (s stateData) canEnd() bool { return !s.endWeight.IsZero() }

// hasTransitions reports whether this state has at least one (possibly
// tombstoned, in the Builder lifecycle) transition recorded.
func (s stateData) hasTransitions() bool { return s.firstTransition != noIndex }

// linkedTransition is one entry in the Builder's transition arena: the
// stored Transition plus the index of the next entry in this state's
// singly-linked chain (noIndex if this is the tail) and a tombstone flag.
// Removal is logical so that previously-handed-out transition indices
// remain stable until Finalize.
type linkedTransition struct {
	transition Transition
	next       int32
	removed    bool
}
