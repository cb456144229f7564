// SPDX-License-Identifier: MIT
// Package: wfsa/automaton
//
// errors.go — sentinel errors for the automaton package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("%s: %w", ...) instead.
//   - Builder.AddStates, Builder.RemoveState, Builder.RemoveStates and
//     Builder.Finalize check their arguments and return sentinels;
//     StateBuilder methods and the per-state accessors index directly and
//     panic on a state index that names no state.
package automaton

import "errors"

// ErrTooLarge indicates a Builder mutation would push the state count past
// MaxStates.
var ErrTooLarge = errors.New("automaton: too many states")

// ErrInvalidStart indicates Finalize was called with a start_state_index
// out of range for the builder's state vector.
var ErrInvalidStart = errors.New("automaton: start state index out of range")

// ErrIndicesOutOfRange indicates an index or count argument out of range
// for a Builder operation, or a transition or state range violation found
// by ImmutableAutomaton.CheckConsistency.
var ErrIndicesOutOfRange = errors.New("automaton: state or transition index out of range")

// ErrDomainError indicates Weight.Inverse was called on Zero.
var ErrDomainError = errors.New("automaton: domain error")

// ErrDoubleRemoval indicates a tombstoned transition was marked removed a
// second time, for example by calling TransitionIterator.Remove twice
// without an intervening Next.
var ErrDoubleRemoval = errors.New("automaton: transition already removed")

// ErrUnknownStateSet names a reference to a state that does not exist. No
// function in this package returns it; Finalize and Reassign do not check
// transition destinations.
var ErrUnknownStateSet = errors.New("automaton: unknown state reference")

// ErrWireFormat indicates malformed or version-mismatched binary input to
// ReadAutomatonFrom or ReadDiscreteChar.
var ErrWireFormat = errors.New("automaton: malformed wire data")
