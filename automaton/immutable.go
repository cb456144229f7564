// File: immutable.go
// Role: ImmutableAutomaton, the finalized, read-only form produced by
// Builder.Finalize and consumed by Simplification and the sibling
// determinize package.
package automaton

import "fmt"

// DeterminizationState records what, if anything, a determinization pass
// has established about an ImmutableAutomaton.
type DeterminizationState int

const (
	// DeterminizationUnknown is the state of every freshly finalized
	// automaton: no determinization attempt has run on it yet.
	DeterminizationUnknown DeterminizationState = iota
	// DeterminizationIsDeterminized marks an automaton produced by a
	// successful determinization pass.
	DeterminizationIsDeterminized
	// DeterminizationIsNonDeterminizable marks an automaton a
	// determinization pass refused (groups present). A pass that exhausts
	// its state budget leaves the automaton, and this state, unchanged.
	DeterminizationIsNonDeterminizable
)

// ImmutableAutomaton is a finalized automaton: a flat state array, a flat
// transition array, and per-state half-open ranges into the latter. It is
// read-only; Builder.FromAutomaton is the way back into a mutable form.
//
// determinizationState, pruneThreshold, and logValueOverride are caller-
// and determinizer-settable diagnostic annotations: the package itself
// only ever writes determinizationState (via SetDeterminizationState, used
// by the sibling determinize package) and never consults pruneThreshold or
// logValueOverride internally. They exist so a caller that runs its own
// pruning or analysis passes has somewhere canonical to record the
// threshold or override it used, without inventing a side channel.
type ImmutableAutomaton struct {
	states                []stateData
	transitions           []Transition
	startStateIndex       uint32
	isEpsilonFree         bool
	determinizationState  DeterminizationState
	pruneThreshold        *float64
	logValueOverride      *float64
	tag                   Tag
}

// StateCount returns the number of states.
func (a *ImmutableAutomaton) StateCount() int { return len(a.states) }

// StartStateIndex returns the start state's index.
func (a *ImmutableAutomaton) StartStateIndex() uint32 { return a.startStateIndex }

// IsEpsilonFree reports whether no transition in the automaton is an
// ε-transition. Computed once at Finalize time.
func (a *ImmutableAutomaton) IsEpsilonFree() bool { return a.isEpsilonFree }

// DeterminizationState reports what the last determinization attempt (if
// any) established about this automaton.
func (a *ImmutableAutomaton) DeterminizationState() DeterminizationState {
	return a.determinizationState
}

// SetDeterminizationState overwrites the recorded determinization state.
// Intended for use by the sibling determinize package.
func (a *ImmutableAutomaton) SetDeterminizationState(s DeterminizationState) {
	a.determinizationState = s
}

// PruneThreshold returns the threshold last recorded against this
// automaton by a pruning pass, and whether one was ever recorded.
func (a *ImmutableAutomaton) PruneThreshold() (float64, bool) {
	if a.pruneThreshold == nil {
		return 0, false
	}

	return *a.pruneThreshold, true
}

// SetPruneThreshold records threshold as the last pruning threshold
// applied to this automaton.
func (a *ImmutableAutomaton) SetPruneThreshold(threshold float64) {
	a.pruneThreshold = &threshold
}

// LogValueOverride returns the caller-supplied log-value override, and
// whether one was ever recorded.
func (a *ImmutableAutomaton) LogValueOverride() (float64, bool) {
	if a.logValueOverride == nil {
		return 0, false
	}

	return *a.logValueOverride, true
}

// SetLogValueOverride records v as a caller-supplied override value.
func (a *ImmutableAutomaton) SetLogValueOverride(v float64) {
	a.logValueOverride = &v
}

// EndWeight returns the end weight of the given state.
func (a *ImmutableAutomaton) EndWeight(state uint32) Weight {
	return a.states[state].endWeight
}

// CanEnd reports whether the given state has non-zero end weight.
func (a *ImmutableAutomaton) CanEnd(state uint32) bool {
	return a.states[state].canEnd()
}

// TransitionsForState returns the live transitions leaving state, in
// Finalize's insertion order. The returned slice aliases internal storage
// and must not be mutated.
func (a *ImmutableAutomaton) TransitionsForState(state uint32) []Transition {
	st := a.states[state]
	if st.firstTransition == noIndex {
		return nil
	}

	return a.transitions[st.firstTransition:st.lastTransition]
}

// TransitionCount returns the total number of live transitions.
func (a *ImmutableAutomaton) TransitionCount() int { return len(a.transitions) }

// CheckConsistency validates every structural invariant an
// ImmutableAutomaton is supposed to uphold: a valid start index, every
// state's [first, last) transition range inside the transition array, and
// every transition destination in range. It is intended for use in tests
// and debug assertions, not on every construction.
func (a *ImmutableAutomaton) CheckConsistency() error {
	if int(a.startStateIndex) >= len(a.states) {
		return fmt.Errorf("ImmutableAutomaton.CheckConsistency: %w", ErrInvalidStart)
	}
	for i, st := range a.states {
		badRange := st.firstTransition == noIndex && st.lastTransition != noIndex
		if st.firstTransition != noIndex {
			badRange = st.firstTransition < 0 || st.lastTransition < st.firstTransition ||
				int(st.lastTransition) > len(a.transitions)
		}
		if badRange {
			return fmt.Errorf("ImmutableAutomaton.CheckConsistency: state %d range: %w", i, ErrIndicesOutOfRange)
		}
		for _, t := range a.TransitionsForState(uint32(i)) {
			if int(t.DestinationState) >= len(a.states) {
				return fmt.Errorf("ImmutableAutomaton.CheckConsistency: state %d: %w", i, ErrIndicesOutOfRange)
			}
		}
	}

	return nil
}

// Swap exchanges the entire backing storage of a and other atomically (as
// seen by any holder of either pointer): both automata are mutated in
// place to hold each other's states, transitions, and start index.
func (a *ImmutableAutomaton) Swap(other *ImmutableAutomaton) {
	*a, *other = *other, *a
}

// Reassign overwrites a's backing storage with other's, leaving other
// unspecified (callers should not continue to use it).
func (a *ImmutableAutomaton) Reassign(other *ImmutableAutomaton) {
	*a = *other
}

// String renders a short human-readable summary, in the vein of a
// debugging aid rather than any wire format.
func (a *ImmutableAutomaton) String() string {
	return fmt.Sprintf("Automaton{states=%d, transitions=%d, start=%d, epsilonFree=%t}",
		len(a.states), len(a.transitions), a.startStateIndex, a.isEpsilonFree)
}
