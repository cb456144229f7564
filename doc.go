// Package wfsa is your toolkit for building, simplifying, and
// determinizing weighted finite-state automata — from raw construction
// to a deterministic, wire-serializable result.
//
// 🚀 What is wfsa?
//
//	A modern, pure-Go library that brings together:
//		• Core primitives: states, ε-transitions, per-state end weights
//		• Log-space weights: Product, Sum, Inverse, AbsoluteDifference
//		• Element distributions: DiscreteChar, a weighted union of ranges
//		• A mutable Builder: constant_on, append, remove_states, finalize
//		• Simplification: merge parallel transitions, prune dead states
//		• Weighted determinization: the Mohri-style powerset construction
//		• A binary wire format for round-tripping a finalized automaton
//
// ✨ Why choose wfsa?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit error sentinels, in-code docs
//   - Pure Go – no cgo, a small and purposeful dependency list
//   - Extensible – plug in your own ElementDistribution and determinize.Hook
//
// Under the hood, everything is organized under two subpackages:
//
//	automaton/   — Weight, ElementDistribution/DiscreteChar, Transition,
//	               Builder/StateBuilder, ImmutableAutomaton, Simplification,
//	               binary I/O
//	determinize/ — WeightedStateSet, the Hook interface, Determinizer, and
//	               the DiscreteChar line-sweep hook
//
// Quick example: build a two-state automaton accepting the single
// character 'a', then determinize it.
//
//	b := automaton.NewBuilder()
//	next, _, err := b.State(0).AddTransitionNew(automaton.Point('a'), automaton.One())
//	...
//	a, err := b.Finalize()
//	...
//	d := determinize.NewDeterminizer(determinize.NewDiscreteCharHook())
//	d.TryDeterminize(a)
//
// Dive into SPEC_FULL.md and DESIGN.md for the full module map and the
// reasoning behind each package's shape.
//
//	go get github.com/katalvlaran/wfsa
package wfsa
