// Package automaton provides an arena-backed weighted finite-state automaton
// (WFSA) representation together with a mutating builder that constructs and
// edits it.
//
// The package is split, in one directory, into:
//
//   - weight.go       — Weight, a log-space non-negative real.
//   - element.go       — ElementDistribution, the abstract per-element
//     probability interface automata are parameterized over.
//   - discretechar.go — DiscreteChar, a concrete ElementDistribution over
//     characters in [0, 65536) expressed as a union of weighted ranges plus
//     a background "common value".
//   - transition.go   — Transition, the value record linking states.
//   - state.go         — internal arena bookkeeping (stateData,
//     linkedTransition).
//   - builder.go       — Builder / StateBuilder / TransitionIterator, the
//     mutable construction surface.
//   - immutable.go     — ImmutableAutomaton, the finalized read-only form.
//   - simplify.go       — MergeParallelTransitions and
//     PruneStatesWithLogEndWeightLessThan.
//   - io.go             — the binary wire format.
//   - tag.go            — an optional debug-only identity decoration.
//
// Builder owns an append-only state vector and a singly-linked transition
// pool with logical removal (tombstones), so that transition indices stay
// stable across in-place edits until Finalize. Determinization itself lives
// in the sibling package determinize, which determinizes an
// *ImmutableAutomaton in place.
//
// The package opens no files, performs no network access, and starts no
// goroutines (io.go only encodes to and decodes from a caller-supplied
// io.Writer or io.Reader);
// every operation here is synchronous and single-threaded, and the caller
// owns all concurrency decisions (see package determinize for the same
// contract on the determinizer).
package automaton
