// Package determinize implements weighted powerset determinization over
// automaton.ImmutableAutomaton, parameterized via the Hook interface, plus
// the DiscreteChar-specific line-sweep hook that makes StringAutomaton
// determinization concrete.
//
// The package depends on automaton but never the reverse, so that
// ImmutableAutomaton's "try_determinize" library-surface entry lives here
// as Determinizer.TryDeterminize instead of as a method on the automaton
// type itself — the same split the covered core keeps between its graph
// representation and the algorithms that operate read-only over it.
//
// Determinization is synchronous and single-threaded, like the rest of
// this module; it starts no goroutines and performs no I/O.
package determinize
