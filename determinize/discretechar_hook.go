// File: discretechar_hook.go
// Role: DiscreteCharHook, the line-sweep over character-range segment
// endpoints that implements Hook for automata whose transitions carry
// automaton.DiscreteChar element distributions.
//
// Algorithm (spec-mandated): for every (source, w_source) in the input
// set and every outgoing transition of source, decompose the transition's
// distribution into segment-bound events (one start/end pair per range,
// plus synthetic pairs for the common-value gaps between and after
// ranges). Sort all events by (bound ascending, is_start descending) so
// that, at a shared coordinate, newly opening segments are active before
// closing ones retire — an empty active set between distinct coordinates
// then emits nothing. Sweep left to right, emitting one output transition
// per sub-range between consecutive event coordinates where the active
// set is non-empty and its combined weight exceeds logEps.
package determinize

import (
	"math"
	"sort"

	"github.com/katalvlaran/wfsa/automaton"
)

// DiscreteCharHook is the Hook implementation for DiscreteChar-labeled
// automata (the "string automaton" specialization).
type DiscreteCharHook struct{}

// NewDiscreteCharHook returns the (stateless) DiscreteChar hook.
func NewDiscreteCharHook() DiscreteCharHook { return DiscreteCharHook{} }

// sweepEvent is one segment-bound event: the opening or closing edge of a
// weighted, destination-tagged sub-range.
type sweepEvent struct {
	bound   int
	isStart bool
	weight  automaton.Weight
	dest    uint32
}

// segmentBound keys the sweep's active set by the event's (weight,
// destination) value rather than by a unique per-event identity, so two
// open segments that carry identical weight and destination are held as
// one entry, and the first of them to close removes it. Only the rebuild
// after a +Inf-weight end reads the set, so there such duplicates count
// once.
type segmentBound struct {
	weight automaton.Weight
	dest   uint32
}

// OutgoingTransitionsForSet implements Hook.
func (DiscreteCharHook) OutgoingTransitionsForSet(a *automaton.ImmutableAutomaton, set WeightedStateSet, logEps float64) []OutgoingTransition {
	var events []sweepEvent
	for _, e := range set.Entries() {
		for _, t := range a.TransitionsForState(e.State) {
			dc, ok := t.ElementDistribution.(automaton.DiscreteChar)
			if !ok {
				continue
			}
			events = append(events, segmentEventsForTransition(dc, t, e.Weight)...)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].bound != events[j].bound {
			return events[i].bound < events[j].bound
		}

		return events[i].isStart && !events[j].isStart
	})

	return sweep(events, logEps)
}

// segmentEventsForTransition decomposes one transition's distribution
// into start/end events, inserting synthetic events for any gap covered
// by the common value: before the first range if it doesn't start at the
// universe minimum, between ranges, and after the last range up to the
// universe maximum.
func segmentEventsForTransition(dc automaton.DiscreteChar, t automaton.Transition, wSource automaton.Weight) []sweepEvent {
	var events []sweepEvent
	commonStart := automaton.CharUniverseMin
	commonValue := dc.ProbabilityOutsideRanges()

	for _, r := range dc.Ranges() {
		if r.StartInclusive > commonStart && !commonValue.IsZero() {
			w := automaton.Product(automaton.Product(commonValue, t.Weight), wSource)
			events = append(events,
				sweepEvent{bound: commonStart, isStart: true, weight: w, dest: t.DestinationState},
				sweepEvent{bound: r.StartInclusive, isStart: false, weight: w, dest: t.DestinationState},
			)
		}
		if !r.Probability.IsZero() {
			w := automaton.Product(automaton.Product(r.Probability, t.Weight), wSource)
			events = append(events,
				sweepEvent{bound: r.StartInclusive, isStart: true, weight: w, dest: t.DestinationState},
				sweepEvent{bound: r.EndExclusive, isStart: false, weight: w, dest: t.DestinationState},
			)
		}
		commonStart = r.EndExclusive
	}

	if !commonValue.IsZero() && commonStart < automaton.CharUniverseMax {
		w := automaton.Product(automaton.Product(commonValue, t.Weight), wSource)
		events = append(events,
			sweepEvent{bound: commonStart, isStart: true, weight: w, dest: t.DestinationState},
			sweepEvent{bound: automaton.CharUniverseMax, isStart: false, weight: w, dest: t.DestinationState},
		)
	}

	return events
}

// sweep runs the left-to-right line sweep over sorted events, emitting
// one OutgoingTransition per qualifying sub-range between consecutive
// event coordinates.
func sweep(events []sweepEvent, logEps float64) []OutgoingTransition {
	active := make(map[segmentBound]struct{})
	perDestWeight := make(map[uint32]automaton.Weight)
	perDestCount := make(map[uint32]int)
	totalCount := 0
	totalWeight := automaton.Zero()
	currentStart := 0
	haveStart := false

	var out []OutgoingTransition

	emit := func(b int) {
		if !haveStart || b <= currentStart || totalCount == 0 || totalWeight.LogValue() <= logEps {
			return
		}

		builder := NewWeightedStateSetBuilder()
		invTotal, _ := totalWeight.Inverse()
		for dest, w := range perDestWeight {
			if w.LogValue() <= logEps {
				continue
			}
			builder.Add(dest, automaton.Product(w, invTotal))
		}
		nextSet, normalizer := builder.Get()
		if nextSet.Len() == 0 {
			return
		}

		length := automaton.FromValue(float64(b - currentStart))
		weight := automaton.Product(automaton.Product(length, totalWeight), normalizer)
		dist, err := automaton.NewDiscreteChar(
			[]automaton.Range{{StartInclusive: currentStart, EndExclusive: b, Probability: automaton.One()}},
			automaton.Zero(),
		)
		if err != nil {
			return
		}
		out = append(out, OutgoingTransition{Distribution: dist, Weight: weight, Next: nextSet})
	}

	for _, ev := range events {
		emit(ev.bound)
		currentStart = ev.bound
		haveStart = true

		key := segmentBound{weight: ev.weight, dest: ev.dest}
		if ev.isStart {
			active[key] = struct{}{}
			totalCount++
			totalWeight = automaton.Sum(totalWeight, ev.weight)
			perDestCount[ev.dest]++
			if cur, ok := perDestWeight[ev.dest]; ok {
				perDestWeight[ev.dest] = automaton.Sum(cur, ev.weight)
			} else {
				perDestWeight[ev.dest] = ev.weight
			}

			continue
		}

		delete(active, key)
		totalCount--

		if math.IsInf(ev.weight.LogValue(), 1) {
			newTotal := automaton.Zero()
			newDestWeight := automaton.Zero()
			for k := range active {
				newTotal = automaton.Sum(newTotal, k.weight)
				if k.dest == ev.dest {
					newDestWeight = automaton.Sum(newDestWeight, k.weight)
				}
			}
			totalWeight = newTotal
			perDestWeight[ev.dest] = newDestWeight
		} else {
			totalWeight = automaton.AbsoluteDifference(totalWeight, ev.weight)
			perDestWeight[ev.dest] = automaton.AbsoluteDifference(perDestWeight[ev.dest], ev.weight)
		}

		perDestCount[ev.dest]--
		if perDestCount[ev.dest] <= 0 {
			delete(perDestCount, ev.dest)
			delete(perDestWeight, ev.dest)
		}
	}

	return out
}
